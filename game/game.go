package game

import (
	"fmt"
	"slices"
)

// GameState represents whether a game is still being played
type GameState string

const (
	GameInProgress GameState = "in_progress"
	GameCompleted  GameState = "completed"
)

// DefaultTargetScore is the usual score to reach
const DefaultTargetScore = 1000

// Game accumulates finished rounds into team totals
type Game struct {
	ID             string    `json:"id"`
	Players        [4]Player `json:"players"`
	Teams          [2]Team   `json:"teams"`
	TargetScore    int       `json:"targetScore"`
	Rounds         []Round   `json:"rounds"`
	Scores         [2]int    `json:"scores"`
	DealerPosition int       `json:"dealerPosition"`
	State          GameState `json:"state"`
	WinnerTeam     *int      `json:"winnerTeam"`
}

// NewGame seats four players; seat 0 deals first
func NewGame(ids IDGenerator, players [4]Player, targetScore int) (Game, error) {
	if targetScore <= 0 {
		return Game{}, InvariantError(fmt.Sprintf("target score must be positive, got %d", targetScore))
	}
	var seated [4]Player
	for i, p := range players {
		if p.Position != i {
			return Game{}, InvariantError(fmt.Sprintf("player %s sits at %d but was passed as seat %d", p.ID, p.Position, i))
		}
		seated[i] = p.WithHand(nil)
	}
	return Game{
		ID:             ids.Next("game"),
		Players:        seated,
		Teams:          NewTeams(),
		TargetScore:    targetScore,
		Rounds:         []Round{},
		DealerPosition: 0,
		State:          GameInProgress,
	}, nil
}

// NextRound deals the next round for the current dealer
func (g Game) NextRound(ids IDGenerator, deck Deck) (Round, error) {
	if g.State != GameInProgress {
		return Round{}, InvariantError(fmt.Sprintf("game %s is %s", g.ID, g.State))
	}
	return NewRound(ids, len(g.Rounds)+1, g.DealerPosition, g.Players, deck)
}

// AddCompletedRound folds a finished or cancelled round into the game.
// The contracting team is checked for victory first, so it wins ties over
// the target. The dealer always moves one seat on.
func AddCompletedRound(g Game, round Round) (Game, error) {
	if g.State != GameInProgress {
		return g, InvariantError(fmt.Sprintf("game %s is %s", g.ID, g.State))
	}
	if !round.IsOver() {
		return g, InvariantError(fmt.Sprintf("round %s is still %s", round.ID, round.Phase))
	}

	next := g
	next.Rounds = append(slices.Clone(g.Rounds), round)

	if round.Phase == PhaseCompleted {
		if round.Contract == nil || round.Score == nil {
			return g, InvariantError(fmt.Sprintf("completed round %s has no score", round.ID))
		}
		gained := round.Score.TeamScores(round.Contract.BidderPosition)
		next.Scores[0] += gained[0]
		next.Scores[1] += gained[1]

		contractingTeam := TeamOf(round.Contract.BidderPosition)
		for _, team := range []int{contractingTeam, 1 - contractingTeam} {
			if next.Scores[team] >= next.TargetScore {
				winner := team
				next.WinnerTeam = &winner
				next.State = GameCompleted
				break
			}
		}
	}

	next.DealerPosition = NextPosition(g.DealerPosition)
	return next, nil
}

// IsOver reports whether a team has reached the target
func (g Game) IsOver() bool {
	return g.State == GameCompleted
}
