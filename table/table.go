// Package table keeps the canonical game snapshot for one table, applies seat
// actions through the engine and reports the resulting events.
package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"belote/ai"
	"belote/game"
)

var (
	ErrGameOver   = errors.New("game is over")
	ErrRoundLimit = errors.New("round limit reached before a winner")
)

// Options configures a table. Zero values fall back to sensible defaults.
type Options struct {
	TargetScore int
	Names       [4]string
	IDs         game.IDGenerator
	Source      game.ShuffleSource
	Logger      *log.Logger
}

// Table holds the current game and round snapshots
type Table struct {
	game   game.Game
	round  game.Round
	ids    game.IDGenerator
	source game.ShuffleSource
	logger *log.Logger
}

// New seats four players, deals the first round and returns the opening events
func New(opts Options) (*Table, []Event, error) {
	if opts.TargetScore == 0 {
		opts.TargetScore = game.DefaultTargetScore
	}
	if opts.IDs == nil {
		opts.IDs = game.NewRandomIDs()
	}
	if opts.Source == nil {
		opts.Source = game.DefaultSource()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	var players [4]game.Player
	for seat := range players {
		name := opts.Names[seat]
		if name == "" {
			name = fmt.Sprintf("Seat %d", seat)
		}
		players[seat] = game.NewPlayer(opts.IDs.Next("player"), name, seat)
	}

	g, err := game.NewGame(opts.IDs, players, opts.TargetScore)
	if err != nil {
		return nil, nil, err
	}

	t := &Table{game: g, ids: opts.IDs, source: opts.Source, logger: opts.Logger}
	events := []Event{{Kind: EventGameStarted, GameID: g.ID, Position: g.DealerPosition}}
	t.logger.Info("game started", "game", g.ID, "target", g.TargetScore)

	started, err := t.dealNext()
	if err != nil {
		return nil, nil, err
	}
	return t, append(events, started), nil
}

// Game returns the current game snapshot
func (t *Table) Game() game.Game { return t.game }

// Round returns the current round snapshot
func (t *Table) Round() game.Round { return t.round }

// Handle applies a seat action. A rejected action leaves the table untouched.
func (t *Table) Handle(action game.Action) ([]Event, error) {
	if t.game.IsOver() {
		return nil, ErrGameOver
	}

	prev := t.round
	next, err := game.ApplyAction(prev, action, t.ids)
	if err != nil {
		t.logger.Warn("action rejected", "round", prev.Number, "seat", action.Position, "action", action.Type, "err", err)
		return nil, fmt.Errorf("seat %d %s: %w", action.Position, action.Type, err)
	}
	t.round = next

	events := deriveEvents(t.game.ID, t.game.Scores, action, prev, next)
	for _, ev := range events {
		t.logEvent(ev)
	}

	if !next.IsOver() {
		return events, nil
	}

	g, err := game.AddCompletedRound(t.game, next)
	if err != nil {
		return events, err
	}
	t.game = g

	if g.IsOver() {
		ev := Event{Kind: EventGameCompleted, GameID: g.ID, RoundID: next.ID, Position: g.DealerPosition, Scores: g.Scores, WinnerTeam: g.WinnerTeam}
		t.logEvent(ev)
		return append(events, ev), nil
	}

	started, err := t.dealNext()
	if err != nil {
		return events, err
	}
	return append(events, started), nil
}

// Autoplay lets agents play every seat until the game ends or maxRounds
// rounds have been played.
func (t *Table) Autoplay(agents [4]ai.Agent, maxRounds int) ([]Event, error) {
	var events []Event
	for !t.game.IsOver() {
		if maxRounds > 0 && len(t.game.Rounds) >= maxRounds {
			return events, ErrRoundLimit
		}

		seat := t.round.CurrentPosition()
		agent := agents[seat]
		player := t.round.Players[seat]

		var action game.Action
		switch t.round.Phase {
		case game.PhaseBidding:
			bid := agent.ChooseBid(t.round.Bidding, seat, player.Hand, t.ids)
			action = game.Action{Type: game.ActionPlaceBid, Position: seat, Bid: bid}
		case game.PhasePlaying:
			card, err := agent.ChooseCard(*t.round.CurrentTrick, seat, player.Hand)
			if err != nil {
				return events, fmt.Errorf("%s at seat %d: %w", agent.Name(), seat, err)
			}
			action = game.Action{Type: game.ActionPlayCard, Position: seat, CardID: card.ID}
		default:
			return events, game.InvariantError(fmt.Sprintf("round %s left in phase %s", t.round.ID, t.round.Phase))
		}

		evs, err := t.Handle(action)
		if err != nil {
			return events, fmt.Errorf("%s at seat %d: %w", agent.Name(), seat, err)
		}
		events = append(events, evs...)
	}
	return events, nil
}

func (t *Table) dealNext() (Event, error) {
	deck := game.NewDeck(t.ids).Shuffle(t.source)
	round, err := t.game.NextRound(t.ids, deck)
	if err != nil {
		return Event{}, err
	}
	t.round = round
	ev := Event{Kind: EventRoundStarted, GameID: t.game.ID, RoundID: round.ID, Position: round.DealerPosition, Scores: t.game.Scores}
	t.logEvent(ev)
	return ev, nil
}

func (t *Table) logEvent(ev Event) {
	switch ev.Kind {
	case EventBidPlaced:
		t.logger.Debug("bid placed", "round", t.round.Number, "seat", ev.Position, "bid", ev.Bid.String())
	case EventCardPlayed:
		t.logger.Debug("card played", "round", t.round.Number, "seat", ev.Position, "card", ev.Card.String())
	case EventTrickCompleted:
		t.logger.Debug("trick completed", "round", t.round.Number, "winner", ev.Position)
	case EventBiddingCompleted:
		t.logger.Debug("bidding completed", "round", t.round.Number, "bidder", ev.Contract.BidderPosition,
			"value", ev.Contract.Value, "suit", ev.Contract.Suit.String(), "coinche", ev.Contract.CoincheLevel)
	case EventRoundStarted:
		t.logger.Debug("round started", "round", t.round.Number, "dealer", ev.Position)
	case EventRoundCancelled:
		t.logger.Info("round cancelled", "round", t.round.Number)
	case EventRoundCompleted:
		t.logger.Info("round completed", "round", t.round.Number, "contract_met", ev.Score.ContractMet,
			"contracting", ev.Score.ContractingTeamFinalScore, "opponents", ev.Score.OpponentTeamFinalScore)
	case EventGameCompleted:
		t.logger.Info("game completed", "game", ev.GameID, "winner", *ev.WinnerTeam, "scores", ev.Scores)
	}
}
