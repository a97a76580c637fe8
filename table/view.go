package table

import "belote/game"

// View is the table as one seat is allowed to see it
type View struct {
	Phase           game.Phase     `json:"phase"`
	Seat            int            `json:"seat"`
	Hand            []game.Card    `json:"hand,omitempty"`
	LegalCards      []game.Card    `json:"legalCards,omitempty"`
	Players         []PublicPlayer `json:"players"`
	Scores          [2]int         `json:"scores"`
	TargetScore     int            `json:"targetScore"`
	Dealer          int            `json:"dealer"`
	CurrentPosition int            `json:"currentPosition"`
	Bids            []game.Bid     `json:"bids"`
	Contract        *game.Contract `json:"contract"`
	CurrentTrick    *game.Trick    `json:"currentTrick"`
	LastTrick       *game.Trick    `json:"lastTrick"`
	TricksPlayed    int            `json:"tricksPlayed"`
	WinnerTeam      *int           `json:"winnerTeam"`
}

// PublicPlayer is player info visible to all
type PublicPlayer struct {
	Name      string `json:"name"`
	Position  int    `json:"position"`
	CardCount int    `json:"cardCount"`
}

// View builds the public state for seat; a seat outside 0-3 sees no hand
func (t *Table) View(seat int) View {
	r := t.round
	v := View{
		Phase:           r.Phase,
		Seat:            seat,
		Players:         make([]PublicPlayer, 0, 4),
		Scores:          t.game.Scores,
		TargetScore:     t.game.TargetScore,
		Dealer:          r.DealerPosition,
		CurrentPosition: r.CurrentPosition(),
		Bids:            r.Bidding.Bids,
		Contract:        r.Contract,
		CurrentTrick:    r.CurrentTrick,
		TricksPlayed:    len(r.Tricks),
		WinnerTeam:      t.game.WinnerTeam,
	}

	for _, p := range r.Players {
		v.Players = append(v.Players, PublicPlayer{
			Name:      p.Name,
			Position:  p.Position,
			CardCount: len(p.Hand),
		})
	}

	if len(r.Tricks) > 0 {
		last := r.Tricks[len(r.Tricks)-1]
		v.LastTrick = &last
	}

	if seat >= 0 && seat < 4 {
		v.Hand = r.Players[seat].Hand
		if r.Phase == game.PhasePlaying && r.CurrentTrick != nil {
			v.LegalCards = game.ValidPlays(*r.CurrentTrick, seat, v.Hand)
		}
	}
	return v
}
