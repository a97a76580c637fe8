package game

import "fmt"

// Player represents a seated player. Hand shrinks as cards are played.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Hand     []Card `json:"hand,omitempty"`
}

// NewPlayer creates a player with an empty hand
func NewPlayer(id, name string, position int) Player {
	return Player{ID: id, Name: name, Position: position}
}

// WithHand returns a copy of the player holding the given cards
func (p Player) WithHand(hand []Card) Player {
	p.Hand = cloneCards(hand)
	return p
}

// HasCard reports whether the card is in the player's hand
func (p Player) HasCard(card Card) bool {
	return containsCard(p.Hand, card)
}

// FindCard looks up a card in hand by ID
func (p Player) FindCard(cardID string) (Card, bool) {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// Team represents a partnership of two seats
type Team struct {
	Name      string `json:"name"`
	Positions [2]int `json:"positions"`
}

// NewTeams returns the fixed pairing: seats 0 and 2 against seats 1 and 3
func NewTeams() [2]Team {
	return [2]Team{
		{Name: "north-south", Positions: [2]int{0, 2}},
		{Name: "east-west", Positions: [2]int{1, 3}},
	}
}

// NoPosition marks an unset seat, e.g. the winner of an unfinished trick
const NoPosition = -1

// NextPosition returns the next seat clockwise
func NextPosition(current int) int {
	return (current + 1) % 4
}

// TeamOf returns the team index (0 or 1) for a seat
func TeamOf(position int) int {
	return position % 2
}

// IsOnSameTeam reports whether two seats are partners (or the same seat)
func IsOnSameTeam(a, b int) bool {
	return TeamOf(a) == TeamOf(b)
}

// PartnerOf returns the seat across the table
func PartnerOf(position int) int {
	return (position + 2) % 4
}

func validPosition(position int) error {
	if position < 0 || position > 3 {
		return InvariantError(fmt.Sprintf("invalid seat index %d", position))
	}
	return nil
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

func containsCard(cards []Card, card Card) bool {
	return indexOfCard(cards, card) >= 0
}

func indexOfCard(cards []Card, card Card) int {
	for i, c := range cards {
		if c.Same(card) {
			return i
		}
	}
	return -1
}

func clonePlayers(players [4]Player) [4]Player {
	var out [4]Player
	for i, p := range players {
		out[i] = p.WithHand(p.Hand)
	}
	return out
}
