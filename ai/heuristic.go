package ai

import (
	"belote/game"
)

// Tuning for hand evaluation
const (
	AceBonus         = 10 // per ace held outside the candidate trump
	TrumpLengthBonus = 5  // per card held in the candidate trump
)

// Heuristic is a simple rule-of-thumb player
type Heuristic struct {
	BotName string
}

// NewHeuristic returns a heuristic agent
func NewHeuristic(name string) Heuristic {
	return Heuristic{BotName: name}
}

func (h Heuristic) Name() string {
	return h.BotName
}

func (h Heuristic) ChooseBid(round game.BiddingRound, position int, hand []game.Card, ids game.IDGenerator) game.Bid {
	return ChooseBid(round, position, hand, ids)
}

func (h Heuristic) ChooseCard(trick game.Trick, position int, hand []game.Card) (game.Card, error) {
	return ChooseCard(trick, position, hand)
}

// EvaluateHandForSuit scores how well hand would play with suit as trump
func EvaluateHandForSuit(hand []game.Card, suit game.Suit) int {
	score := 0
	for _, c := range hand {
		if c.Suit == suit {
			score += c.Points(suit) + TrumpLengthBonus
		} else if c.Rank == game.Ace {
			score += AceBonus
		}
	}
	return score
}

// ChooseBid never surcoinches: once coinched it passes. Otherwise it bids the
// strongest suit at the highest ladder value its evaluation supports.
func ChooseBid(round game.BiddingRound, position int, hand []game.Card, ids game.IDGenerator) game.Bid {
	pass := game.NewPass(ids.Next("bid"), position)
	if round.State != game.BiddingInProgress || round.Coinched {
		return pass
	}

	bestSuit, bestScore := game.Spades, -1
	for _, suit := range game.AllSuits() {
		if s := EvaluateHandForSuit(hand, suit); s > bestScore {
			bestSuit, bestScore = suit, s
		}
	}

	minimum := game.BidValues[0]
	if round.HighestBid != nil {
		minimum = round.HighestBid.Value + 10
	}
	if minimum > game.BidValues[len(game.BidValues)-1] || bestScore < minimum {
		return pass
	}

	value := minimum
	for _, v := range game.BidValues {
		if v >= minimum && v <= bestScore {
			value = v
		}
	}
	return game.NewSuitBid(pass.ID, position, value, bestSuit)
}

// ChooseCard picks a legal card for position
func ChooseCard(trick game.Trick, position int, hand []game.Card) (game.Card, error) {
	legal := game.ValidPlays(trick, position, hand)
	switch len(legal) {
	case 0:
		return game.Card{}, ErrNoLegalMove
	case 1:
		return legal[0], nil
	}

	trump := trick.TrumpSuit
	leadSuit, ok := trick.LeadSuit()
	if !ok {
		// Lead the best plain card and keep trumps back
		if plain := filter(legal, func(c game.Card) bool { return !c.IsTrump(trump) }); len(plain) > 0 {
			return highest(plain, trump), nil
		}
		return lowest(legal, trump), nil
	}

	if following := filter(legal, func(c game.Card) bool { return c.Suit == leadSuit }); len(following) > 0 {
		winner, _ := trick.CurrentWinner()
		_, trumped := trick.BestTrump()
		if winner.Position == game.PartnerOf(position) && !trumped {
			return lowest(following, trump), nil
		}
		if best, ok := bestOfSuit(trick, leadSuit); ok {
			beaters := filter(following, func(c game.Card) bool { return c.Order(trump) > best.Order(trump) })
			if len(beaters) > 0 {
				return lowest(beaters, trump), nil
			}
		}
		return lowest(following, trump), nil
	}

	if trumps := filter(legal, func(c game.Card) bool { return c.IsTrump(trump) }); len(trumps) > 0 {
		best, trumped := trick.BestTrump()
		if !trumped {
			return lowest(trumps, trump), nil
		}
		over := filter(trumps, func(c game.Card) bool { return c.Order(trump) > best.Card.Order(trump) })
		if len(over) > 0 {
			return lowest(over, trump), nil
		}
		return lowest(trumps, trump), nil
	}

	return cheapest(legal, trump), nil
}

func bestOfSuit(trick game.Trick, suit game.Suit) (game.Card, bool) {
	var best game.Card
	found := false
	for _, p := range trick.Plays {
		if p.Card.Suit != suit {
			continue
		}
		if !found || p.Card.Order(trick.TrumpSuit) > best.Order(trick.TrumpSuit) {
			best, found = p.Card, true
		}
	}
	return best, found
}

func filter(cards []game.Card, keep func(game.Card) bool) []game.Card {
	var out []game.Card
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func lowest(cards []game.Card, trump game.Suit) game.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Order(trump) < low.Order(trump) {
			low = c
		}
	}
	return low
}

func highest(cards []game.Card, trump game.Suit) game.Card {
	high := cards[0]
	for _, c := range cards[1:] {
		if c.Order(trump) > high.Order(trump) {
			high = c
		}
	}
	return high
}

// cheapest prefers the fewest points, then the weakest rank
func cheapest(cards []game.Card, trump game.Suit) game.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		cp, lp := c.Points(trump), low.Points(trump)
		if cp < lp || (cp == lp && c.Order(trump) < low.Order(trump)) {
			low = c
		}
	}
	return low
}
