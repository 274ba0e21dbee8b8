package engine

// PlayView is one card of the current trick as seen by any observer.
type PlayView struct {
	Seat Seat   `json:"seat"`
	Card string `json:"card"`
}

// View is a visibility-filtered snapshot of the game for one observer.
// Only the viewer's own hand is listed card by card; other seats expose
// hand sizes. Pass NoSeat for a spectator view with no hand contents.
type View struct {
	Viewer Seat   `json:"viewer"`
	Phase  string `json:"phase"`
	Dealer Seat   `json:"dealer"`
	Turn   Seat   `json:"turn"`

	Trump     *string `json:"trump,omitempty"`
	Maker     *Seat   `json:"maker,omitempty"`
	MakerTeam *int    `json:"makerTeam,omitempty"`
	Lone      *Seat   `json:"lone,omitempty"`

	Upcard           *string `json:"upcard,omitempty"`
	ForcedDealerPick bool    `json:"forcedDealerPick"`

	Hand      []string `json:"hand,omitempty"`
	Legal     []string `json:"legal,omitempty"`
	HandSizes [4]int   `json:"handSizes"`

	Trick       []PlayView `json:"trick"`
	TrickCounts [4]int     `json:"trickCounts"`
	TeamTricks  [2]int     `json:"teamTricks"`

	Scores   [2]int `json:"scores"`
	GameOver bool   `json:"gameOver"`

	Events []string `json:"events"`
}

// ViewFor builds the snapshot visible to the given seat.
func (g *GameState) ViewFor(viewer Seat) View {
	v := View{
		Viewer:           viewer,
		Phase:            g.Phase.String(),
		Dealer:           g.Dealer,
		Turn:             g.Turn,
		ForcedDealerPick: g.ForcedDealerPick,
		TrickCounts:      g.TrickCounts,
		TeamTricks:       g.TeamTricks,
		Scores:           g.Scores,
		GameOver:         g.GameOver,
		Events:           append([]string(nil), g.Events...),
	}
	if g.Trump != nil {
		t := g.Trump.Code()
		v.Trump = &t
		maker := *g.Maker
		team := maker.Team()
		v.Maker = &maker
		v.MakerTeam = &team
	}
	if g.Lone != nil {
		lone := *g.Lone
		v.Lone = &lone
	}
	if g.UpcardLive {
		u := g.Upcard.Code()
		v.Upcard = &u
	}
	for s := range g.Hands {
		v.HandSizes[s] = len(g.Hands[s])
	}
	if viewer != NoSeat {
		for _, c := range g.Hands[viewer] {
			v.Hand = append(v.Hand, c.Code())
		}
		if g.Phase == PhasePlaying && g.Turn == viewer {
			for _, c := range g.LegalPlays(viewer) {
				v.Legal = append(v.Legal, c.Code())
			}
		}
	}
	v.Trick = make([]PlayView, 0, len(g.Trick.Plays))
	for _, p := range g.Trick.Plays {
		v.Trick = append(v.Trick, PlayView{Seat: p.Seat, Card: p.Card.Code()})
	}
	return v
}
