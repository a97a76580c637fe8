package game

import (
	"errors"
	"testing"
)

// rankTricks builds the eight tricks of a round where trick i holds the four
// cards of AllRanks()[i]. suitBySeat picks which suit each seat plays and
// winners picks who takes each trick. With hearts as trump the tricks are
// worth 0, 0, 14, 40, 26, 12, 16 and 44 points.
func rankTricks(trump Suit, suitBySeat [4]Suit, winners [8]int) []Trick {
	tricks := make([]Trick, 0, TricksPerRound)
	for i, rank := range AllRanks() {
		trick := NewTrick("t", 0, trump)
		for seat := 0; seat < 4; seat++ {
			trick.Plays = append(trick.Plays, PlayedCard{Card: NewCard(suitBySeat[seat], rank), Position: seat})
		}
		trick.State = TrickCompleted
		trick.WinnerPosition = winners[i]
		tricks = append(tricks, trick)
	}
	return tricks
}

var seatSuits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

func TestTrickPoints(t *testing.T) {
	tricks := rankTricks(Hearts, seatSuits, [8]int{})
	want := []int{0, 0, 14, 40, 26, 12, 16, 44}
	for i, trick := range tricks {
		got, err := TrickPoints(trick, Hearts)
		if err != nil {
			t.Fatalf("trick %d: %v", i, err)
		}
		if got != want[i] {
			t.Errorf("Trick %d: expected %d points, got %d", i, want[i], got)
		}
	}

	if _, err := TrickPoints(NewTrick("t", 0, Hearts), Hearts); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected an invariant error for an open trick, got %v", err)
	}
}

func TestTeamPoints(t *testing.T) {
	// Seat 1 (bidder) team takes the 9, 10, J and Q tricks: 14+40+26+12
	tricks := rankTricks(Hearts, seatSuits, [8]int{0, 2, 1, 3, 1, 3, 0, 2})

	contracting, opponent, err := TeamPoints(tricks, Hearts, 1)
	if err != nil {
		t.Fatalf("team points: %v", err)
	}
	if contracting != 92 {
		t.Errorf("Expected contracting team 92, got %d", contracting)
	}
	// 16 + 44 + last trick
	if opponent != 70 {
		t.Errorf("Expected opponents 70, got %d", opponent)
	}
	if contracting+opponent != TotalRoundPoints {
		t.Errorf("Expected %d points in play, got %d", TotalRoundPoints, contracting+opponent)
	}

	if _, _, err := TeamPoints(tricks[:7], Hearts, 1); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected an invariant error for seven tricks, got %v", err)
	}
}

func TestDetectBelote(t *testing.T) {
	winners := [8]int{}

	// Seat 1 plays every heart, so both king and queen of trump
	if got := DetectBelote(rankTricks(Hearts, seatSuits, winners), Hearts, 1); got != BeloteContracting {
		t.Errorf("Expected contracting belote, got %q", got)
	}
	if got := DetectBelote(rankTricks(Hearts, seatSuits, winners), Hearts, 2); got != BeloteOpponent {
		t.Errorf("Expected opponent belote, got %q", got)
	}

	// Split king and queen across partnerships: no bonus
	tricks := rankTricks(Hearts, seatSuits, winners)
	queenTrick := tricks[5]
	plays := make([]PlayedCard, len(queenTrick.Plays))
	copy(plays, queenTrick.Plays)
	plays[0].Card, plays[1].Card = plays[1].Card, plays[0].Card // seat 0 now plays the queen of hearts
	tricks[5].Plays = plays
	if got := DetectBelote(tricks, Hearts, 1); got != BeloteNone {
		t.Errorf("Expected no belote, got %q", got)
	}

	// Partners sharing king and queen still earn it
	plays2 := make([]PlayedCard, len(plays))
	copy(plays2, plays)
	plays2[0].Card, plays2[3].Card = plays2[3].Card, plays2[0].Card // seat 3 plays the queen
	tricks[5].Plays = plays2
	if got := DetectBelote(tricks, Hearts, 1); got != BeloteContracting {
		t.Errorf("Expected contracting belote across partners, got %q", got)
	}
}

func TestRoundScoreScenarioD_ContractMet(t *testing.T) {
	// Seat 0 plays hearts so nobody on the contracting side holds belote
	suits := [4]Suit{Hearts, Spades, Diamonds, Clubs}
	tricks := rankTricks(Hearts, suits, [8]int{0, 2, 1, 3, 1, 3, 0, 2})

	for _, level := range []int{1, 2, 4} {
		contract := Contract{Suit: Hearts, Value: 80, BidderPosition: 1, CoincheLevel: level}
		score, err := CalculateRoundScore(tricks, contract)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if !score.ContractMet {
			t.Fatalf("Expected contract met with %d points", score.ContractingTeamPoints)
		}
		if score.ContractingTeamScore != 92*level {
			t.Errorf("Level %d: expected contracting %d, got %d", level, 92*level, score.ContractingTeamScore)
		}
		if score.OpponentTeamScore != 70*level {
			t.Errorf("Level %d: expected opponents %d, got %d", level, 70*level, score.OpponentTeamScore)
		}
		if score.Belote != BeloteOpponent {
			t.Errorf("Expected opponents to hold belote, got %q", score.Belote)
		}
		// belote is added after the multiplier
		if score.OpponentTeamFinalScore != 70*level+BeloteBonus {
			t.Errorf("Level %d: expected opponents final %d, got %d", level, 70*level+BeloteBonus, score.OpponentTeamFinalScore)
		}
		if score.ContractingTeamFinalScore != score.ContractingTeamScore {
			t.Errorf("Expected no bonus for the contracting team, got %d", score.ContractingTeamFinalScore)
		}
	}
}

func TestRoundScoreScenarioE_ContractFailed(t *testing.T) {
	// Contracting team takes the 9, 10 and K tricks: 14+40+16 = 70
	tricks := rankTricks(Hearts, seatSuits, [8]int{0, 0, 1, 3, 0, 2, 1, 2})

	for _, level := range []int{1, 2, 4} {
		contract := Contract{Suit: Hearts, Value: 80, BidderPosition: 1, CoincheLevel: level}
		score, err := CalculateRoundScore(tricks, contract)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if score.ContractingTeamPoints != 70 {
			t.Fatalf("Expected 70 contracting points, got %d", score.ContractingTeamPoints)
		}
		if score.ContractMet {
			t.Fatal("Expected contract failed")
		}
		if score.ContractingTeamScore != 0 {
			t.Errorf("Expected contracting 0, got %d", score.ContractingTeamScore)
		}
		if score.OpponentTeamScore != TotalRoundPoints*level {
			t.Errorf("Level %d: expected opponents %d, got %d", level, TotalRoundPoints*level, score.OpponentTeamScore)
		}
		// seat 1 played king and queen of hearts: the bonus survives a failed contract
		if score.ContractingTeamFinalScore != BeloteBonus {
			t.Errorf("Expected contracting final %d, got %d", BeloteBonus, score.ContractingTeamFinalScore)
		}
	}
}

func TestRoundScoreExactlyAtValue(t *testing.T) {
	// 14+40+26 = 80 with the 9, 10 and J tricks
	tricks := rankTricks(Hearts, seatSuits, [8]int{0, 0, 1, 1, 3, 0, 0, 2})
	score, err := CalculateRoundScore(tricks, Contract{Suit: Hearts, Value: 80, BidderPosition: 3, CoincheLevel: 1})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score.ContractingTeamPoints != 80 || !score.ContractMet {
		t.Errorf("Expected 80 points to meet an 80 contract, got %d met=%v", score.ContractingTeamPoints, score.ContractMet)
	}
}

func TestRoundScoreTeamScores(t *testing.T) {
	score := RoundScore{ContractingTeamFinalScore: 120, OpponentTeamFinalScore: 42}
	if got := score.TeamScores(1); got != [2]int{42, 120} {
		t.Errorf("Expected [42 120], got %v", got)
	}
	if got := score.TeamScores(2); got != [2]int{120, 42} {
		t.Errorf("Expected [120 42], got %v", got)
	}
}
