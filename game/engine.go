package game

import "fmt"

// ActionType names what a seat is trying to do
type ActionType string

const (
	ActionPlaceBid ActionType = "placeBid"
	ActionPlayCard ActionType = "playCard"
)

// Action represents a seat's move against a round
type Action struct {
	Type     ActionType `json:"type"`
	Position int        `json:"position"`
	Bid      Bid        `json:"bid,omitzero"`
	CardID   string     `json:"cardId,omitempty"`
}

// ApplyAction applies an action to the round and returns the new snapshot.
// The input round is never modified.
func ApplyAction(round Round, action Action, ids IDGenerator) (Round, error) {
	switch action.Type {
	case ActionPlaceBid:
		return applyPlaceBid(round, action, ids)
	case ActionPlayCard:
		return applyPlayCard(round, action, ids)
	default:
		return round, phaseViolation(round, action)
	}
}

func applyPlaceBid(round Round, action Action, ids IDGenerator) (Round, error) {
	if round.Phase != PhaseBidding {
		return round, phaseViolation(round, action)
	}
	bid := action.Bid
	bid.Position = action.Position
	if bid.ID == "" {
		bid.ID = ids.Next("bid")
	}
	return PlaceBidInRound(round, bid, ids)
}

func applyPlayCard(round Round, action Action, ids IDGenerator) (Round, error) {
	if round.Phase != PhasePlaying {
		return round, phaseViolation(round, action)
	}
	if err := validPosition(action.Position); err != nil {
		return round, err
	}
	card, ok := round.Players[action.Position].FindCard(action.CardID)
	if !ok {
		return round, &RuleError{
			Action:           fmt.Sprintf("play %s", action.CardID),
			Position:         action.Position,
			ExpectedPosition: round.CurrentPosition(),
			State:            string(round.Phase),
			Err:              ErrCardNotInHand,
		}
	}
	return PlayCardInRound(round, action.Position, card, ids)
}

func phaseViolation(round Round, action Action) error {
	return &RuleError{
		Action:           string(action.Type),
		Position:         action.Position,
		ExpectedPosition: round.CurrentPosition(),
		State:            string(round.Phase),
		Err:              ErrInvalidAction,
	}
}
