package game

import "fmt"

const (
	// TotalCardPoints is the value of all 32 cards, whatever the trump
	TotalCardPoints = 152
	// LastTrickBonus goes to the team taking the eighth trick
	LastTrickBonus = 10
	// TotalRoundPoints is everything a round can distribute
	TotalRoundPoints = TotalCardPoints + LastTrickBonus
	// BeloteBonus is earned by one partnership playing both king and queen of trump
	BeloteBonus = 20
	// TricksPerRound is the number of tricks in a round
	TricksPerRound = 8
)

// BeloteOwner says which side, relative to the bidder, holds belote/rebelote
type BeloteOwner string

const (
	BeloteNone        BeloteOwner = ""
	BeloteContracting BeloteOwner = "contracting"
	BeloteOpponent    BeloteOwner = "opponent"
)

// RoundScore contains the scoring breakdown for a round
type RoundScore struct {
	ContractingTeamPoints     int         `json:"contractingTeamPoints"` // raw points incl. last trick
	OpponentTeamPoints        int         `json:"opponentTeamPoints"`
	ContractMet               bool        `json:"contractMet"`
	ContractingTeamScore      int         `json:"contractingTeamScore"` // after multiplier, before belote
	OpponentTeamScore         int         `json:"opponentTeamScore"`
	Belote                    BeloteOwner `json:"belote,omitempty"`
	ContractingTeamFinalScore int         `json:"contractingTeamFinalScore"`
	OpponentTeamFinalScore    int         `json:"opponentTeamFinalScore"`
}

// TrickPoints sums the card values of a completed trick
func TrickPoints(trick Trick, trump Suit) (int, error) {
	if trick.State != TrickCompleted {
		return 0, InvariantError(fmt.Sprintf("cannot score trick %s before it completes", trick.ID))
	}
	points := 0
	for _, p := range trick.Plays {
		points += p.Card.Points(trump)
	}
	return points, nil
}

// TeamPoints returns the raw points of the contracting team and of its
// opponents over a full round, last-trick bonus included.
func TeamPoints(tricks []Trick, trump Suit, bidderPosition int) (contracting, opponent int, err error) {
	if len(tricks) != TricksPerRound {
		return 0, 0, InvariantError(fmt.Sprintf("need %d tricks to score, got %d", TricksPerRound, len(tricks)))
	}
	for i, trick := range tricks {
		points, err := TrickPoints(trick, trump)
		if err != nil {
			return 0, 0, err
		}
		if i == len(tricks)-1 {
			points += LastTrickBonus
		}
		if IsOnSameTeam(trick.WinnerPosition, bidderPosition) {
			contracting += points
		} else {
			opponent += points
		}
	}
	return contracting, opponent, nil
}

// DetectBelote finds who played the king and queen of trump. The bonus only
// exists when both went to the same partnership.
func DetectBelote(tricks []Trick, trump Suit, bidderPosition int) BeloteOwner {
	king, queen := NoPosition, NoPosition
	for _, trick := range tricks {
		for _, p := range trick.Plays {
			if !p.Card.IsTrump(trump) {
				continue
			}
			switch p.Card.Rank {
			case King:
				king = p.Position
			case Queen:
				queen = p.Position
			}
		}
	}
	if king == NoPosition || queen == NoPosition || !IsOnSameTeam(king, queen) {
		return BeloteNone
	}
	if IsOnSameTeam(king, bidderPosition) {
		return BeloteContracting
	}
	return BeloteOpponent
}

// CalculateRoundScore scores a finished round against its contract.
// A failed contract hands the whole pot to the opponents. The belote bonus is
// added after the coinche multiplier and is never multiplied.
func CalculateRoundScore(tricks []Trick, contract Contract) (RoundScore, error) {
	contracting, opponent, err := TeamPoints(tricks, contract.Suit, contract.BidderPosition)
	if err != nil {
		return RoundScore{}, err
	}

	level := contract.CoincheLevel
	if level == 0 {
		level = 1
	}

	result := RoundScore{
		ContractingTeamPoints: contracting,
		OpponentTeamPoints:    opponent,
		ContractMet:           contracting >= contract.Value,
		Belote:                DetectBelote(tricks, contract.Suit, contract.BidderPosition),
	}

	if result.ContractMet {
		result.ContractingTeamScore = contracting * level
		result.OpponentTeamScore = opponent * level
	} else {
		result.ContractingTeamScore = 0
		result.OpponentTeamScore = TotalRoundPoints * level
	}

	result.ContractingTeamFinalScore = result.ContractingTeamScore
	result.OpponentTeamFinalScore = result.OpponentTeamScore
	switch result.Belote {
	case BeloteContracting:
		result.ContractingTeamFinalScore += BeloteBonus
	case BeloteOpponent:
		result.OpponentTeamFinalScore += BeloteBonus
	}

	return result, nil
}

// TeamScores maps the contracting/opponent split back onto team indexes
func (s RoundScore) TeamScores(bidderPosition int) [2]int {
	var scores [2]int
	bidderTeam := TeamOf(bidderPosition)
	scores[bidderTeam] = s.ContractingTeamFinalScore
	scores[1-bidderTeam] = s.OpponentTeamFinalScore
	return scores
}
