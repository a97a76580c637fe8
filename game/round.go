package game

import (
	"fmt"
	"slices"
)

// Phase represents the current round phase
type Phase string

const (
	PhaseBidding   Phase = "bidding"
	PhasePlaying   Phase = "playing"
	PhaseCompleted Phase = "completed"
	PhaseCancelled Phase = "cancelled"
)

// Round is an immutable snapshot of one deal, from bidding to scoring.
// Every transition returns a new Round; earlier snapshots stay valid.
type Round struct {
	ID             string       `json:"id"`
	Number         int          `json:"number"`
	DealerPosition int          `json:"dealerPosition"`
	Players        [4]Player    `json:"players"`
	Bidding        BiddingRound `json:"bidding"`
	Contract       *Contract    `json:"contract"`
	Tricks         []Trick      `json:"tricks"`
	CurrentTrick   *Trick       `json:"currentTrick"`
	Score          *RoundScore  `json:"score"`
	Phase          Phase        `json:"phase"`
}

// NewRound deals a shuffled deck eight cards per seat and opens the bidding
func NewRound(ids IDGenerator, number int, dealerPosition int, players [4]Player, deck Deck) (Round, error) {
	if err := validPosition(dealerPosition); err != nil {
		return Round{}, err
	}
	hands, err := deck.Deal()
	if err != nil {
		return Round{}, err
	}

	var seated [4]Player
	for i, p := range players {
		if p.Position != i {
			return Round{}, InvariantError(fmt.Sprintf("player %s sits at %d but was passed as seat %d", p.ID, p.Position, i))
		}
		seated[i] = p.WithHand(hands[i])
	}

	return Round{
		ID:             ids.Next("round"),
		Number:         number,
		DealerPosition: dealerPosition,
		Players:        seated,
		Bidding:        NewBiddingRound(dealerPosition),
		Tricks:         []Trick{},
		Phase:          PhaseBidding,
	}, nil
}

// CurrentPosition returns the seat expected to act, or NoPosition once the round is over
func (r Round) CurrentPosition() int {
	switch r.Phase {
	case PhaseBidding:
		return r.Bidding.CurrentPosition
	case PhasePlaying:
		if r.CurrentTrick != nil {
			return r.CurrentTrick.ExpectedPosition()
		}
	}
	return NoPosition
}

// IsOver reports whether the round reached a terminal phase
func (r Round) IsOver() bool {
	return r.Phase == PhaseCompleted || r.Phase == PhaseCancelled
}

// PlaceBidInRound feeds a bid to the auction. A completed auction moves the
// round to playing with the first trick led by the dealer's left; an
// all-pass auction cancels it.
func PlaceBidInRound(round Round, bid Bid, ids IDGenerator) (Round, error) {
	if round.Phase != PhaseBidding {
		return round, InvariantError(fmt.Sprintf("cannot bid: round %s is %s", round.ID, round.Phase))
	}

	bidding, err := PlaceBid(round.Bidding, bid)
	if err != nil {
		return round, err
	}

	next := round.clone()
	next.Bidding = bidding

	switch bidding.State {
	case BiddingCompleted:
		contract, err := GetContract(bidding, ids)
		if err != nil {
			return round, err
		}
		trick := NewTrick(ids.Next("trick"), NextPosition(round.DealerPosition), contract.Suit)
		next.Contract = &contract
		next.CurrentTrick = &trick
		next.Phase = PhasePlaying
	case BiddingAllPassed:
		next.Phase = PhaseCancelled
	}
	return next, nil
}

// PlayCardInRound plays card for position into the current trick. When the
// eighth trick completes the round is scored.
func PlayCardInRound(round Round, position int, card Card, ids IDGenerator) (Round, error) {
	if round.Phase != PhasePlaying || round.CurrentTrick == nil || round.Contract == nil {
		return round, InvariantError(fmt.Sprintf("cannot play: round %s is %s", round.ID, round.Phase))
	}
	if err := validPosition(position); err != nil {
		return round, err
	}

	trick, err := PlayCard(*round.CurrentTrick, card, position, round.Players[position].Hand)
	if err != nil {
		return round, err
	}
	player, err := RemoveCardFromHand(round.Players[position], card)
	if err != nil {
		return round, err
	}

	next := round.clone()
	next.Players[position] = player

	if trick.State != TrickCompleted {
		next.CurrentTrick = &trick
		return next, nil
	}

	next.Tricks = append(next.Tricks, trick)
	if len(next.Tricks) < TricksPerRound {
		following := NewTrick(ids.Next("trick"), trick.WinnerPosition, round.Contract.Suit)
		next.CurrentTrick = &following
		return next, nil
	}

	score, err := CalculateRoundScore(next.Tricks, *round.Contract)
	if err != nil {
		return round, err
	}
	next.CurrentTrick = nil
	next.Score = &score
	next.Phase = PhaseCompleted
	return next, nil
}

func (r Round) clone() Round {
	next := r
	next.Players = clonePlayers(r.Players)
	next.Tricks = slices.Clone(r.Tricks)
	if r.Contract != nil {
		contract := *r.Contract
		next.Contract = &contract
	}
	if r.CurrentTrick != nil {
		trick := *r.CurrentTrick
		next.CurrentTrick = &trick
	}
	if r.Score != nil {
		score := *r.Score
		next.Score = &score
	}
	return next
}
