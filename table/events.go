package table

import "belote/game"

// EventKind identifies a semantic event raised by a transition
type EventKind string

const (
	EventGameStarted      EventKind = "game_started"
	EventRoundStarted     EventKind = "round_started"
	EventBidPlaced        EventKind = "bid_placed"
	EventBiddingCompleted EventKind = "bidding_completed"
	EventCardPlayed       EventKind = "card_played"
	EventTrickCompleted   EventKind = "trick_completed"
	EventRoundCompleted   EventKind = "round_completed"
	EventRoundCancelled   EventKind = "round_cancelled"
	EventGameCompleted    EventKind = "game_completed"
)

// Event carries what a listener needs to react to one transition.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind       EventKind        `json:"kind"`
	GameID     string           `json:"gameId"`
	RoundID    string           `json:"roundId,omitempty"`
	Position   int              `json:"position"`
	Bid        *game.Bid        `json:"bid,omitempty"`
	Card       *game.Card       `json:"card,omitempty"`
	Contract   *game.Contract   `json:"contract,omitempty"`
	Trick      *game.Trick      `json:"trick,omitempty"`
	Score      *game.RoundScore `json:"score,omitempty"`
	Scores     [2]int           `json:"scores"`
	WinnerTeam *int             `json:"winnerTeam,omitempty"`
}

// deriveEvents compares two round snapshots around an accepted action
func deriveEvents(gameID string, scores [2]int, action game.Action, prev, next game.Round) []Event {
	base := Event{GameID: gameID, RoundID: next.ID, Position: action.Position, Scores: scores}
	var events []Event

	switch action.Type {
	case game.ActionPlaceBid:
		bid := next.Bidding.Bids[len(next.Bidding.Bids)-1]
		ev := base
		ev.Kind = EventBidPlaced
		ev.Bid = &bid
		events = append(events, ev)

		switch next.Phase {
		case game.PhasePlaying:
			ev := base
			ev.Kind = EventBiddingCompleted
			ev.Contract = next.Contract
			ev.Position = next.Contract.BidderPosition
			events = append(events, ev)
		case game.PhaseCancelled:
			ev := base
			ev.Kind = EventRoundCancelled
			events = append(events, ev)
		}

	case game.ActionPlayCard:
		var card game.Card
		if len(next.Tricks) > len(prev.Tricks) {
			last := next.Tricks[len(next.Tricks)-1]
			card = last.Plays[len(last.Plays)-1].Card
		} else {
			card = next.CurrentTrick.Plays[len(next.CurrentTrick.Plays)-1].Card
		}
		ev := base
		ev.Kind = EventCardPlayed
		ev.Card = &card
		events = append(events, ev)

		if len(next.Tricks) > len(prev.Tricks) {
			trick := next.Tricks[len(next.Tricks)-1]
			ev := base
			ev.Kind = EventTrickCompleted
			ev.Trick = &trick
			ev.Position = trick.WinnerPosition
			events = append(events, ev)
		}

		if next.Phase == game.PhaseCompleted {
			ev := base
			ev.Kind = EventRoundCompleted
			ev.Score = next.Score
			ev.Contract = next.Contract
			ev.Position = next.Contract.BidderPosition
			events = append(events, ev)
		}
	}
	return events
}
