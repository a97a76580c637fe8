package game

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return fmt.Sprintf("suit(%d)", int(s))
	}
}

// ParseSuit converts a suit name back to a Suit
func ParseSuit(name string) (Suit, error) {
	for _, s := range AllSuits() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// AllSuits returns all suits in order
func AllSuits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Rank represents a card rank (7-14, where 11=J, 12=Q, 13=K, 14=A)
type Rank int

const (
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		return fmt.Sprintf("%d", r)
	}
}

// AllRanks returns the eight ranks of the piquet deck (7-A)
func AllRanks() []Rank {
	return []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// DeckSize is the number of cards in a belote deck
const DeckSize = 32

// HandSize is the number of cards dealt to each seat
const HandSize = 8

// Point values when the card belongs to the trump suit.
// J=20, 9=14, A=11, 10=10, K=4, Q=3, 8 and 7 are worth nothing.
var trumpPoints = map[Rank]int{
	Jack: 20, Nine: 14, Ace: 11, Ten: 10, King: 4, Queen: 3, Eight: 0, Seven: 0,
}

// Point values for the three plain suits.
var plainPoints = map[Rank]int{
	Ace: 11, Ten: 10, King: 4, Queen: 3, Jack: 2, Nine: 0, Eight: 0, Seven: 0,
}

// Strength tables, low to high. Trump promotes the jack and the nine above the ace.
var trumpOrder = map[Rank]int{
	Seven: 0, Eight: 1, Queen: 2, King: 3, Ten: 4, Ace: 5, Nine: 6, Jack: 7,
}

var plainOrder = map[Rank]int{
	Seven: 0, Eight: 1, Nine: 2, Jack: 3, Queen: 4, King: 5, Ten: 6, Ace: 7,
}

// Card represents a playing card
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// NewCard creates a card whose ID is derived from its face, e.g. "jack_hearts"
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		ID:   fmt.Sprintf("%s_%s", rank.String(), suit.String()),
		Suit: suit,
		Rank: rank,
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Same reports whether two cards have the same face, ignoring IDs
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// IsTrump returns true if this card belongs to the trump suit
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump
}

// Points returns the card's point value under the given trump suit
func (c Card) Points(trump Suit) int {
	if c.IsTrump(trump) {
		return trumpPoints[c.Rank]
	}
	return plainPoints[c.Rank]
}

// Order returns the card's strength within its own suit. Trump cards use the
// trump table, everything else the plain one.
func (c Card) Order(trump Suit) int {
	if c.IsTrump(trump) {
		return trumpOrder[c.Rank]
	}
	return plainOrder[c.Rank]
}

// Beats returns true if this card beats the other card given the trump suit and lead suit
func (c Card) Beats(other Card, trump Suit, leadSuit Suit) bool {
	cIsTrump := c.IsTrump(trump)
	otherIsTrump := other.IsTrump(trump)

	if cIsTrump && !otherIsTrump {
		return true
	}
	if !cIsTrump && otherIsTrump {
		return false
	}

	if c.Suit == other.Suit {
		return c.Order(trump) > other.Order(trump)
	}

	// Different non-trump suits - only the lead suit can win
	return c.Suit == leadSuit
}

// ShuffleSource yields floats in [0,1). Supplying a seeded source makes deals reproducible.
type ShuffleSource func() float64

// NewSeededSource returns a deterministic shuffle source
func NewSeededSource(seed int64) ShuffleSource {
	rng := mathrand.New(mathrand.NewSource(seed))
	return rng.Float64
}

// DefaultSource returns a source seeded from cryptographically secure randomness
func DefaultSource() ShuffleSource {
	var seed int64
	binary.Read(rand.Reader, binary.LittleEndian, &seed)
	return NewSeededSource(seed)
}

// Deck represents a deck of cards
type Deck struct {
	Cards []Card `json:"cards"`
}

// NewDeck creates the 32-card belote deck, stamping each card with an ID from ids
func NewDeck(ids IDGenerator) Deck {
	d := Deck{Cards: make([]Card, 0, DeckSize)}
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks() {
			d.Cards = append(d.Cards, Card{
				ID:   ids.Next("card"),
				Suit: suit,
				Rank: rank,
			})
		}
	}
	return d
}

// Shuffle returns a shuffled copy of the deck (Fisher-Yates driven by src)
func (d Deck) Shuffle(src ShuffleSource) Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	for i := len(cards) - 1; i > 0; i-- {
		j := int(src() * float64(i+1))
		if j > i {
			j = i
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
	return Deck{Cards: cards}
}

// Deal splits a full deck into four hands of eight, seat 0 first.
// The deck itself is left untouched.
func (d Deck) Deal() ([4][]Card, error) {
	var hands [4][]Card
	if len(d.Cards) != DeckSize {
		return hands, InvariantError(fmt.Sprintf("deal needs %d cards, deck has %d", DeckSize, len(d.Cards)))
	}
	for seat := 0; seat < 4; seat++ {
		hand := make([]Card, HandSize)
		copy(hand, d.Cards[seat*HandSize:(seat+1)*HandSize])
		hands[seat] = hand
	}
	return hands, nil
}

// Remaining returns how many cards are left
func (d Deck) Remaining() int {
	return len(d.Cards)
}
