package game

import (
	"fmt"
	"slices"
)

// BidType tags the bid variants
type BidType string

const (
	BidPass       BidType = "pass"
	BidSuit       BidType = "suit"
	BidCoinche    BidType = "coinche"
	BidSurcoinche BidType = "surcoinche"
)

// BidValues is the bidding ladder, 80 to 160 in steps of 10
var BidValues = []int{80, 90, 100, 110, 120, 130, 140, 150, 160}

// Bid is a single bidding action. Value and Suit only carry meaning for BidSuit.
type Bid struct {
	ID       string  `json:"id"`
	Type     BidType `json:"type"`
	Position int     `json:"position"`
	Value    int     `json:"value,omitempty"`
	Suit     Suit    `json:"suit,omitempty"`
}

// NewPass creates a pass
func NewPass(id string, position int) Bid {
	return Bid{ID: id, Type: BidPass, Position: position}
}

// NewSuitBid creates a contract bid of value in suit
func NewSuitBid(id string, position int, value int, suit Suit) Bid {
	return Bid{ID: id, Type: BidSuit, Position: position, Value: value, Suit: suit}
}

// NewCoinche creates a double
func NewCoinche(id string, position int) Bid {
	return Bid{ID: id, Type: BidCoinche, Position: position}
}

// NewSurcoinche creates a redouble
func NewSurcoinche(id string, position int) Bid {
	return Bid{ID: id, Type: BidSurcoinche, Position: position}
}

func (b Bid) String() string {
	if b.Type == BidSuit {
		return fmt.Sprintf("%d %s", b.Value, b.Suit)
	}
	return string(b.Type)
}

// BiddingState is the state of the bidding machine
type BiddingState string

const (
	BiddingInProgress BiddingState = "in_progress"
	BiddingCompleted  BiddingState = "completed"
	BiddingAllPassed  BiddingState = "all_passed"
)

// BiddingRound is an immutable snapshot of the auction
type BiddingRound struct {
	DealerPosition    int          `json:"dealerPosition"`
	Bids              []Bid        `json:"bids"`
	CurrentPosition   int          `json:"currentPosition"`
	State             BiddingState `json:"state"`
	ConsecutivePasses int          `json:"consecutivePasses"`
	HighestBid        *Bid         `json:"highestBid"`
	Coinched          bool         `json:"coinched"`
	Surcoinched       bool         `json:"surcoinched"`
}

// Contract is the accepted bid a partnership must meet
type Contract struct {
	ID             string `json:"id"`
	Suit           Suit   `json:"suit"`
	Value          int    `json:"value"`
	BidderPosition int    `json:"bidderPosition"`
	CoincheLevel   int    `json:"coincheLevel"`
}

// NewBiddingRound opens the auction; the seat after the dealer speaks first
func NewBiddingRound(dealerPosition int) BiddingRound {
	return BiddingRound{
		DealerPosition:  dealerPosition,
		Bids:            []Bid{},
		CurrentPosition: NextPosition(dealerPosition),
		State:           BiddingInProgress,
	}
}

// IsValidBid reports whether bid may be placed on the round
func IsValidBid(round BiddingRound, bid Bid) bool {
	return ValidateBid(round, bid) == nil
}

// ValidateBid checks the bidding rules in priority order and explains the
// first one that fails.
func ValidateBid(round BiddingRound, bid Bid) error {
	reject := func(err error) error {
		return &RuleError{
			Action:           "bid " + bid.String(),
			Position:         bid.Position,
			ExpectedPosition: round.CurrentPosition,
			State:            string(round.State),
			Err:              err,
		}
	}

	if round.State != BiddingInProgress {
		return reject(ErrBiddingClosed)
	}
	if bid.Position != round.CurrentPosition {
		return reject(ErrNotYourTurn)
	}

	// After a coinche only the contracting team may act, by redoubling or passing.
	// The pass stays legal even once surcoinched.
	if round.Coinched {
		switch bid.Type {
		case BidPass:
			return nil
		case BidSurcoinche:
			if !round.Surcoinched && round.HighestBid != nil && IsOnSameTeam(bid.Position, round.HighestBid.Position) {
				return nil
			}
			return reject(fmt.Errorf("%w: only the contracting team may surcoinche", ErrIllegalBid))
		default:
			return reject(fmt.Errorf("%w: only pass or surcoinche after a coinche", ErrIllegalBid))
		}
	}

	switch bid.Type {
	case BidPass:
		return nil
	case BidSuit:
		if !slices.Contains(BidValues, bid.Value) {
			return reject(fmt.Errorf("%w: %d is not on the ladder", ErrIllegalBid, bid.Value))
		}
		if round.HighestBid != nil && bid.Value <= round.HighestBid.Value {
			return reject(fmt.Errorf("%w: must bid higher than %d", ErrIllegalBid, round.HighestBid.Value))
		}
		return nil
	case BidCoinche:
		if round.HighestBid == nil {
			return reject(fmt.Errorf("%w: nothing to coinche", ErrIllegalBid))
		}
		if IsOnSameTeam(bid.Position, round.HighestBid.Position) {
			return reject(fmt.Errorf("%w: cannot coinche your own team", ErrIllegalBid))
		}
		return nil
	case BidSurcoinche:
		return reject(fmt.Errorf("%w: surcoinche requires a coinche", ErrIllegalBid))
	default:
		return reject(fmt.Errorf("%w: unknown bid type %q", ErrIllegalBid, bid.Type))
	}
}

// PlaceBid returns the round with bid applied. An illegal bid returns the
// input round untouched together with a *RuleError.
func PlaceBid(round BiddingRound, bid Bid) (BiddingRound, error) {
	if err := ValidateBid(round, bid); err != nil {
		return round, err
	}

	next := round
	next.Bids = append(slices.Clone(round.Bids), bid)
	if round.HighestBid != nil {
		highest := *round.HighestBid
		next.HighestBid = &highest
	}

	if bid.Type == BidPass {
		next.ConsecutivePasses++
	} else {
		next.ConsecutivePasses = 0
	}

	switch bid.Type {
	case BidSuit:
		highest := bid
		next.HighestBid = &highest
	case BidCoinche:
		next.Coinched = true
	case BidSurcoinche:
		next.Surcoinched = true
	}

	switch {
	case bid.Type == BidSurcoinche:
		next.State = BiddingCompleted
	case next.HighestBid != nil && next.ConsecutivePasses >= 3:
		next.State = BiddingCompleted
	case next.HighestBid == nil && next.ConsecutivePasses >= 4:
		next.State = BiddingAllPassed
	case next.Coinched && !next.Surcoinched && bid.Type == BidPass && IsOnSameTeam(bid.Position, next.HighestBid.Position):
		// contracting team declines to surcoinche
		next.State = BiddingCompleted
	default:
		next.CurrentPosition = NextPosition(round.CurrentPosition)
	}

	return next, nil
}

// CoincheLevel returns the stake multiplier: 4 surcoinched, 2 coinched, else 1
func (r BiddingRound) CoincheLevel() int {
	switch {
	case r.Surcoinched:
		return 4
	case r.Coinched:
		return 2
	default:
		return 1
	}
}

// GetContract extracts the contract from a completed auction
func GetContract(round BiddingRound, ids IDGenerator) (Contract, error) {
	if round.State != BiddingCompleted {
		return Contract{}, InvariantError(fmt.Sprintf("no contract: bidding is %s", round.State))
	}
	if round.HighestBid == nil {
		return Contract{}, InvariantError("no contract: bidding completed without a suit bid")
	}
	return Contract{
		ID:             ids.Next("contract"),
		Suit:           round.HighestBid.Suit,
		Value:          round.HighestBid.Value,
		BidderPosition: round.HighestBid.Position,
		CoincheLevel:   round.CoincheLevel(),
	}, nil
}

// ValidBids enumerates every bid position could legally place right now
func ValidBids(round BiddingRound, position int, ids IDGenerator) []Bid {
	candidates := []Bid{NewPass("", position)}
	for _, suit := range AllSuits() {
		for _, value := range BidValues {
			candidates = append(candidates, NewSuitBid("", position, value, suit))
		}
	}
	candidates = append(candidates, NewCoinche("", position), NewSurcoinche("", position))

	var valid []Bid
	for _, b := range candidates {
		if IsValidBid(round, b) {
			b.ID = ids.Next("bid")
			valid = append(valid, b)
		}
	}
	return valid
}
