package game

import (
	"fmt"
	"slices"
)

// TrickState is the state of a single trick
type TrickState string

const (
	TrickInProgress TrickState = "in_progress"
	TrickCompleted  TrickState = "completed"
)

// PlayedCard represents a card played in a trick with the seat that played it
type PlayedCard struct {
	Card     Card `json:"card"`
	Position int  `json:"position"`
}

// Trick is an immutable snapshot of one trick
type Trick struct {
	ID              string       `json:"id"`
	LeadingPosition int          `json:"leadingPosition"`
	TrumpSuit       Suit         `json:"trumpSuit"`
	Plays           []PlayedCard `json:"plays"`
	State           TrickState   `json:"state"`
	WinnerPosition  int          `json:"winnerPosition"` // NoPosition until completed
}

// NewTrick starts an empty trick led by leaderPosition
func NewTrick(id string, leaderPosition int, trump Suit) Trick {
	return Trick{
		ID:              id,
		LeadingPosition: leaderPosition,
		TrumpSuit:       trump,
		Plays:           []PlayedCard{},
		State:           TrickInProgress,
		WinnerPosition:  NoPosition,
	}
}

// ExpectedPosition returns the seat due to play next
func (t Trick) ExpectedPosition() int {
	if len(t.Plays) == 0 {
		return t.LeadingPosition
	}
	return NextPosition(t.Plays[len(t.Plays)-1].Position)
}

// LeadSuit returns the suit of the first card, if any
func (t Trick) LeadSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// BestTrump returns the strongest trump on the table, if any
func (t Trick) BestTrump() (PlayedCard, bool) {
	var best PlayedCard
	found := false
	for _, p := range t.Plays {
		if !p.Card.IsTrump(t.TrumpSuit) {
			continue
		}
		if !found || p.Card.Order(t.TrumpSuit) > best.Card.Order(t.TrumpSuit) {
			best = p
			found = true
		}
	}
	return best, found
}

// CurrentWinner returns the play currently holding the trick
func (t Trick) CurrentWinner() (PlayedCard, bool) {
	if len(t.Plays) == 0 {
		return PlayedCard{}, false
	}
	leadSuit := t.Plays[0].Card.Suit
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Beats(best.Card, t.TrumpSuit, leadSuit) {
			best = p
		}
	}
	return best, true
}

// IsValidPlay reports whether position may play card from hand into the trick
func IsValidPlay(trick Trick, card Card, position int, hand []Card) bool {
	return ValidatePlay(trick, card, position, hand) == nil
}

// ValidatePlay checks turn order, possession, and the follow/trump/overtrump
// obligations, returning a *RuleError naming the first broken rule.
func ValidatePlay(trick Trick, card Card, position int, hand []Card) error {
	reject := func(err error) error {
		return &RuleError{
			Action:           "play " + card.String(),
			Position:         position,
			ExpectedPosition: trick.ExpectedPosition(),
			State:            string(trick.State),
			Err:              err,
		}
	}

	if trick.State != TrickInProgress {
		return reject(ErrTrickClosed)
	}
	if position != trick.ExpectedPosition() {
		return reject(ErrNotYourTurn)
	}
	if !containsCard(hand, card) {
		return reject(ErrCardNotInHand)
	}
	if len(trick.Plays) == 0 {
		return nil
	}

	trump := trick.TrumpSuit
	leadSuit := trick.Plays[0].Card.Suit

	// Plain suit led: follow if able
	if leadSuit != trump && hasSuit(hand, leadSuit) {
		if card.Suit != leadSuit {
			return reject(ErrMustFollowSuit)
		}
		return nil
	}

	if !hasSuit(hand, trump) {
		return nil
	}

	best, trumpPlayed := trick.BestTrump()
	if !trumpPlayed {
		if !card.IsTrump(trump) {
			return reject(ErrMustTrump)
		}
		return nil
	}

	if holdsHigherTrump(hand, best.Card, trump) {
		if !card.IsTrump(trump) || card.Order(trump) <= best.Card.Order(trump) {
			return reject(ErrMustOvertrump)
		}
	}
	return nil
}

// PlayCard returns the trick with card added. When the fourth card lands the
// winner is resolved and the trick completes.
func PlayCard(trick Trick, card Card, position int, hand []Card) (Trick, error) {
	if err := ValidatePlay(trick, card, position, hand); err != nil {
		return trick, err
	}

	next := trick
	next.Plays = append(slices.Clone(trick.Plays), PlayedCard{Card: card, Position: position})

	if len(next.Plays) == 4 {
		winner, _ := next.CurrentWinner()
		next.WinnerPosition = winner.Position
		next.State = TrickCompleted
	}
	return next, nil
}

// ValidPlays filters hand down to the cards position may legally play
func ValidPlays(trick Trick, position int, hand []Card) []Card {
	var valid []Card
	for _, c := range hand {
		if IsValidPlay(trick, c, position, hand) {
			valid = append(valid, c)
		}
	}
	return valid
}

// TrickWinner returns the seat that took a completed trick
func TrickWinner(trick Trick) (int, error) {
	if trick.State != TrickCompleted {
		return NoPosition, InvariantError(fmt.Sprintf("trick %s has no winner yet", trick.ID))
	}
	return trick.WinnerPosition, nil
}

// RemoveCardFromHand returns a copy of the player without card
func RemoveCardFromHand(player Player, card Card) (Player, error) {
	idx := indexOfCard(player.Hand, card)
	if idx < 0 {
		return player, InvariantError(fmt.Sprintf("seat %d does not hold %s", player.Position, card))
	}
	hand := make([]Card, 0, len(player.Hand)-1)
	hand = append(hand, player.Hand[:idx]...)
	hand = append(hand, player.Hand[idx+1:]...)
	player.Hand = hand
	return player, nil
}

func hasSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func holdsHigherTrump(hand []Card, best Card, trump Suit) bool {
	for _, c := range hand {
		if c.IsTrump(trump) && c.Order(trump) > best.Order(trump) {
			return true
		}
	}
	return false
}
