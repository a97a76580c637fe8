package game

import (
	"errors"
	"reflect"
	"testing"
)

// playSequence plays each card from a one-card hand, which is always legal
func playSequence(t *testing.T, trick Trick, cards ...Card) Trick {
	t.Helper()
	for _, card := range cards {
		seat := trick.ExpectedPosition()
		next, err := PlayCard(trick, card, seat, []Card{card})
		if err != nil {
			t.Fatalf("seat %d playing %s: %v", seat, card, err)
		}
		trick = next
	}
	return trick
}

func TestNewTrick(t *testing.T) {
	trick := NewTrick("t1", 2, Hearts)
	if trick.State != TrickInProgress {
		t.Errorf("Expected in_progress, got %s", trick.State)
	}
	if trick.ExpectedPosition() != 2 {
		t.Errorf("Expected the leader to play first, got %d", trick.ExpectedPosition())
	}
	if trick.WinnerPosition != NoPosition {
		t.Errorf("Expected no winner, got %d", trick.WinnerPosition)
	}
	if _, err := TrickWinner(trick); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected an invariant error, got %v", err)
	}
}

func TestPlayOrderIsClockwiseFromLeader(t *testing.T) {
	trick := NewTrick("t1", 3, Hearts)
	trick = playSequence(t, trick,
		NewCard(Spades, Seven), NewCard(Spades, Eight), NewCard(Spades, Nine), NewCard(Spades, Ten))

	want := []int{3, 0, 1, 2}
	for i, p := range trick.Plays {
		if p.Position != want[i] {
			t.Errorf("Play %d: expected seat %d, got %d", i, want[i], p.Position)
		}
	}
}

func TestPlayValidation(t *testing.T) {
	trump := Hearts
	spadeLed := playSequence(t, NewTrick("t1", 0, trump), NewCard(Spades, Ace))
	trumped := playSequence(t, spadeLed, NewCard(Hearts, Nine))
	trumpLed := playSequence(t, NewTrick("t2", 0, trump), NewCard(Hearts, Ten))

	tests := []struct {
		name     string
		trick    Trick
		card     Card
		position int
		hand     []Card
		want     error
	}{
		{
			name: "leader may lead anything",
			trick: NewTrick("t0", 0, trump), card: NewCard(Clubs, Seven), position: 0,
			hand: []Card{NewCard(Clubs, Seven), NewCard(Hearts, Jack)},
		},
		{
			name: "wrong seat", trick: NewTrick("t0", 0, trump), card: NewCard(Clubs, Seven), position: 1,
			hand: []Card{NewCard(Clubs, Seven)}, want: ErrNotYourTurn,
		},
		{
			name: "card not held", trick: NewTrick("t0", 0, trump), card: NewCard(Clubs, Seven), position: 0,
			hand: []Card{NewCard(Clubs, Eight)}, want: ErrCardNotInHand,
		},
		{
			name: "must follow suit", trick: spadeLed, card: NewCard(Hearts, Jack), position: 1,
			hand: []Card{NewCard(Spades, Seven), NewCard(Hearts, Jack)}, want: ErrMustFollowSuit,
		},
		{
			name: "following with a low card is fine", trick: spadeLed, card: NewCard(Spades, Seven), position: 1,
			hand: []Card{NewCard(Spades, Seven), NewCard(Hearts, Jack)},
		},
		{
			name: "must trump when void", trick: spadeLed, card: NewCard(Clubs, Ace), position: 1,
			hand: []Card{NewCard(Hearts, Seven), NewCard(Clubs, Ace)}, want: ErrMustTrump,
		},
		{
			name: "any trump when none played", trick: spadeLed, card: NewCard(Hearts, Seven), position: 1,
			hand: []Card{NewCard(Hearts, Seven), NewCard(Hearts, Jack)},
		},
		{
			name: "void in both suits discards freely", trick: spadeLed, card: NewCard(Clubs, Ace), position: 1,
			hand: []Card{NewCard(Diamonds, Seven), NewCard(Clubs, Ace)},
		},
		{
			name: "must overtrump", trick: trumped, card: NewCard(Hearts, Seven), position: 2,
			hand: []Card{NewCard(Hearts, Seven), NewCard(Hearts, Jack)}, want: ErrMustOvertrump,
		},
		{
			name: "overtrump accepted", trick: trumped, card: NewCard(Hearts, Jack), position: 2,
			hand: []Card{NewCard(Hearts, Seven), NewCard(Hearts, Jack)},
		},
		{
			name: "discard instead of overtrump refused", trick: trumped, card: NewCard(Clubs, Ace), position: 2,
			hand: []Card{NewCard(Clubs, Ace), NewCard(Hearts, Jack)}, want: ErrMustOvertrump,
		},
		{
			name: "cannot overtrump so any card", trick: trumped, card: NewCard(Clubs, Ace), position: 2,
			hand: []Card{NewCard(Clubs, Ace), NewCard(Hearts, Seven)},
		},
		{
			name: "trump led requires a higher trump", trick: trumpLed, card: NewCard(Hearts, Seven), position: 1,
			hand: []Card{NewCard(Hearts, Seven), NewCard(Hearts, Ace), NewCard(Spades, King)}, want: ErrMustOvertrump,
		},
		{
			name: "trump led overtrumped", trick: trumpLed, card: NewCard(Hearts, Ace), position: 1,
			hand: []Card{NewCard(Hearts, Seven), NewCard(Hearts, Ace), NewCard(Spades, King)},
		},
		{
			name: "trump led without trump", trick: trumpLed, card: NewCard(Spades, King), position: 1,
			hand: []Card{NewCard(Spades, King), NewCard(Clubs, Seven)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlay(tt.trick, tt.card, tt.position, tt.hand)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Expected a legal play, got %v", err)
				}
				if !IsValidPlay(tt.trick, tt.card, tt.position, tt.hand) {
					t.Error("IsValidPlay disagrees with ValidatePlay")
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if !IsRuleViolation(err) {
				t.Errorf("Expected a rule violation, got %v", err)
			}
			next, playErr := PlayCard(tt.trick, tt.card, tt.position, tt.hand)
			if playErr == nil {
				t.Fatal("PlayCard accepted an illegal card")
			}
			if !reflect.DeepEqual(next, tt.trick) {
				t.Error("Rejected play modified the trick")
			}
		})
	}
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name   string
		leader int
		cards  []Card
		want   int
	}{
		{
			name: "highest of led suit", leader: 0,
			cards: []Card{NewCard(Spades, King), NewCard(Spades, Ten), NewCard(Clubs, Ace), NewCard(Spades, Seven)},
			want:  1,
		},
		{
			name: "off-suit ace never wins", leader: 2,
			cards: []Card{NewCard(Diamonds, Seven), NewCard(Clubs, Ace), NewCard(Spades, Ace), NewCard(Clubs, Ten)},
			want:  2,
		},
		{
			name: "any trump beats the led suit", leader: 0,
			cards: []Card{NewCard(Spades, Ace), NewCard(Hearts, Seven), NewCard(Spades, Ten), NewCard(Spades, King)},
			want:  1,
		},
		{
			name: "jack is the top trump", leader: 1,
			cards: []Card{NewCard(Hearts, Ace), NewCard(Hearts, Nine), NewCard(Hearts, Jack), NewCard(Hearts, Ten)},
			want:  3,
		},
		{
			name: "nine beats ace in trump", leader: 0,
			cards: []Card{NewCard(Hearts, Ace), NewCard(Hearts, Nine), NewCard(Hearts, King), NewCard(Hearts, Ten)},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trick := playSequence(t, NewTrick("t", tt.leader, Hearts), tt.cards...)
			if trick.State != TrickCompleted {
				t.Fatalf("Expected completed, got %s", trick.State)
			}
			winner, err := TrickWinner(trick)
			if err != nil {
				t.Fatalf("winner: %v", err)
			}
			if winner != tt.want {
				t.Errorf("Expected seat %d to win, got %d", tt.want, winner)
			}

			matches := 0
			for _, p := range trick.Plays {
				if p.Position == winner {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("Expected exactly one play by the winner, got %d", matches)
			}
		})
	}
}

func TestCompletedTrickRejectsPlays(t *testing.T) {
	trick := playSequence(t, NewTrick("t1", 0, Hearts),
		NewCard(Spades, Seven), NewCard(Spades, Eight), NewCard(Spades, Nine), NewCard(Spades, Ten))

	card := NewCard(Clubs, Ace)
	if _, err := PlayCard(trick, card, 0, []Card{card}); !errors.Is(err, ErrTrickClosed) {
		t.Errorf("Expected %v, got %v", ErrTrickClosed, err)
	}
}

func TestPlayCardDoesNotAlias(t *testing.T) {
	base := playSequence(t, NewTrick("t1", 0, Hearts), NewCard(Spades, Seven))
	a := playSequence(t, base, NewCard(Spades, Eight))
	b := playSequence(t, base, NewCard(Spades, Ace))

	if len(base.Plays) != 1 {
		t.Errorf("Expected base trick to keep 1 play, got %d", len(base.Plays))
	}
	if a.Plays[1].Card.Same(b.Plays[1].Card) {
		t.Error("Sibling tricks share play storage")
	}
}

func TestValidPlays(t *testing.T) {
	trick := playSequence(t, NewTrick("t1", 0, Hearts), NewCard(Spades, Ace))
	hand := []Card{NewCard(Spades, Seven), NewCard(Spades, King), NewCard(Hearts, Jack), NewCard(Clubs, Ace)}

	got := ValidPlays(trick, 1, hand)
	if len(got) != 2 || !got[0].Same(NewCard(Spades, Seven)) || !got[1].Same(NewCard(Spades, King)) {
		t.Errorf("Expected only spades, got %v", got)
	}
	if got := ValidPlays(trick, 2, hand); len(got) != 0 {
		t.Errorf("Expected nothing for an out-of-turn seat, got %v", got)
	}
}

func TestRemoveCardFromHand(t *testing.T) {
	player := NewPlayer("p1", "Ana", 0).WithHand([]Card{NewCard(Spades, Seven), NewCard(Hearts, Jack)})

	next, err := RemoveCardFromHand(player, NewCard(Hearts, Jack))
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(next.Hand) != 1 || !next.Hand[0].Same(NewCard(Spades, Seven)) {
		t.Errorf("Expected only the seven of spades left, got %v", next.Hand)
	}
	if len(player.Hand) != 2 {
		t.Errorf("Expected the original hand untouched, got %v", player.Hand)
	}

	if _, err := RemoveCardFromHand(next, NewCard(Hearts, Jack)); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected an invariant error, got %v", err)
	}
}
