// Package ai contains computer players. Agents only read engine snapshots and
// return a candidate bid or card; applying it is the caller's job.
package ai

import (
	"errors"
	"math/rand"

	"belote/game"
)

// ErrNoLegalMove is returned when an agent is asked to act out of turn
var ErrNoLegalMove = errors.New("no legal move")

// Agent decides bids and plays for one seat
type Agent interface {
	Name() string
	ChooseBid(round game.BiddingRound, position int, hand []game.Card, ids game.IDGenerator) game.Bid
	ChooseCard(trick game.Trick, position int, hand []game.Card) (game.Card, error)
}

// Random picks uniformly among legal moves
type Random struct {
	BotName string
	rng     *rand.Rand
}

// NewRandom returns a random agent driven by a seeded source
func NewRandom(name string, seed int64) *Random {
	return &Random{BotName: name, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return r.BotName
}

func (r *Random) ChooseBid(round game.BiddingRound, position int, hand []game.Card, ids game.IDGenerator) game.Bid {
	legal := game.ValidBids(round, position, ids)
	if len(legal) == 0 {
		return game.NewPass(ids.Next("bid"), position)
	}
	return legal[r.rng.Intn(len(legal))]
}

func (r *Random) ChooseCard(trick game.Trick, position int, hand []game.Card) (game.Card, error) {
	legal := game.ValidPlays(trick, position, hand)
	if len(legal) == 0 {
		return game.Card{}, ErrNoLegalMove
	}
	return legal[r.rng.Intn(len(legal))], nil
}
