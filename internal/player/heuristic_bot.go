package player

import (
	"math/rand"
	"strconv"

	"euchre/internal/engine"
)

// Params holds the tuning values for the heuristic bot. They are
// playing-strength knobs, not rules; DefaultParams gives a competent
// opponent.
type Params struct {
	OrderUpThreshold        float64 // ordinary seat, round one
	DealerOrderUpThreshold  float64 // dealer acts last and keeps the upcard
	PartnerOrderUpThreshold float64 // dealer's partner benefits from the pickup
	CallThreshold           float64 // round two, any seat not forced
	AloneMinTrump           int     // trump count needed with the right bower
	AloneBackstopTrump      int     // trump count when both bowers plus a side ace
}

// DefaultParams returns the stock thresholds.
func DefaultParams() Params {
	return Params{
		OrderUpThreshold:        7.0,
		DealerOrderUpThreshold:  5.5,
		PartnerOrderUpThreshold: 6.0,
		CallThreshold:           7.5,
		AloneMinTrump:           4,
		AloneBackstopTrump:      3,
	}
}

// HeuristicBot plays by hand-strength scoring and cheap-winner card
// selection. It sees only its own hand and public state.
type HeuristicBot struct {
	BotName string
	Params  Params
}

func NewHeuristicBot() Player {
	return &HeuristicBot{Params: DefaultParams()}
}

func (b *HeuristicBot) Name() string {
	if b.BotName == "" {
		b.BotName = "EuchreBot_" + strconv.Itoa(rand.Intn(100))
	}
	return b.BotName
}

// HandStrength scores a hand for a candidate trump suit. Right bower 9,
// left bower 7, other trump 2 + 0.35 per rank step, off-suit aces 1.2,
// off-suit kings 0.4.
func HandStrength(hand []engine.Card, trump engine.Suit) float64 {
	var score float64
	for _, c := range hand {
		switch {
		case engine.IsRightBower(c, trump):
			score += 9
		case engine.IsLeftBower(c, trump):
			score += 7
		case c.Suit == trump:
			score += 2 + 0.35*float64(c.Rank.Value())
		case c.Rank == engine.Ace:
			score += 1.2
		case c.Rank == engine.King:
			score += 0.4
		}
	}
	return score
}

// BestSuitChoice returns the highest-scoring trump candidate, skipping
// the excluded suit (the turned-down upcard suit in round two).
func BestSuitChoice(hand []engine.Card, exclude *engine.Suit) (engine.Suit, float64) {
	best := engine.Spades
	bestScore := -1.0
	for _, s := range engine.Suits {
		if exclude != nil && s == *exclude {
			continue
		}
		if score := HandStrength(hand, s); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best, bestScore
}

func (b *HeuristicBot) OrderUp(hand []engine.Card, ctx BidContext) (bool, bool, error) {
	trump := ctx.Upcard.Suit
	eval := hand
	if ctx.Seat == ctx.Dealer {
		// The dealer would pick the upcard up, so count it.
		eval = append(append([]engine.Card(nil), hand...), ctx.Upcard)
	}
	threshold := b.Params.OrderUpThreshold
	switch {
	case ctx.Seat == ctx.Dealer:
		threshold = b.Params.DealerOrderUpThreshold
	case ctx.Seat.Partner() == ctx.Dealer:
		threshold = b.Params.PartnerOrderUpThreshold
	}
	if HandStrength(eval, trump) < threshold {
		return false, false, nil
	}
	return true, b.goAlone(eval, trump), nil
}

func (b *HeuristicBot) CallSuit(hand []engine.Card, ctx BidContext) (*engine.Suit, bool, error) {
	turnedDown := ctx.Upcard.Suit
	best, score := BestSuitChoice(hand, &turnedDown)
	if !ctx.Forced && score < b.Params.CallThreshold {
		return nil, false, nil
	}
	return &best, b.goAlone(hand, best), nil
}

// goAlone is deliberately strict: the right bower plus a healthy trump
// holding, or both bowers with a side ace to fall back on.
func (b *HeuristicBot) goAlone(hand []engine.Card, trump engine.Suit) bool {
	var trumps, sideAces int
	var hasRight, hasLeft bool
	for _, c := range hand {
		if engine.EffectiveSuit(c, &trump) == trump {
			trumps++
			hasRight = hasRight || engine.IsRightBower(c, trump)
			hasLeft = hasLeft || engine.IsLeftBower(c, trump)
			continue
		}
		if c.Rank == engine.Ace {
			sideAces++
		}
	}
	if !hasRight {
		return false
	}
	if trumps >= b.Params.AloneMinTrump {
		return true
	}
	return hasLeft && sideAces >= 1 && trumps >= b.Params.AloneBackstopTrump
}

// ChooseDiscard returns the lowest keep-value card after the pickup.
// Bowers never go; weak trump ranks below solid off-suit honors so a
// lone trump nine is shed before an off-suit king.
func (b *HeuristicBot) ChooseDiscard(hand []engine.Card, trump engine.Suit) (engine.Card, error) {
	keep := func(c engine.Card) int {
		switch {
		case engine.IsRightBower(c, trump):
			return 100
		case engine.IsLeftBower(c, trump):
			return 90
		case c.Suit == trump:
			return c.Rank.Value() + 3
		default:
			return c.Rank.Value()
		}
	}
	worst := hand[0]
	for _, c := range hand[1:] {
		if keep(c) < keep(worst) {
			worst = c
		}
	}
	return worst, nil
}

func (b *HeuristicBot) ChoosePlay(hand, legal []engine.Card, ctx PlayContext) (engine.Card, error) {
	trump := ctx.Trump
	if len(ctx.Trick.Plays) == 0 {
		return b.chooseLead(legal, trump), nil
	}

	led := ctx.Trick.LedSuit
	bestIdx := 0
	for i := 1; i < len(ctx.Trick.Plays); i++ {
		a := engine.CardPower(ctx.Trick.Plays[i].Card, &trump, led)
		old := engine.CardPower(ctx.Trick.Plays[bestIdx].Card, &trump, led)
		if a > old {
			bestIdx = i
		}
	}
	bestPlay := ctx.Trick.Plays[bestIdx]
	bestPower := engine.CardPower(bestPlay.Card, &trump, led)

	active := 4
	if ctx.Lone != nil {
		active = 3
	}
	lastToAct := len(ctx.Trick.Plays) == active-1
	partnerHolds := bestPlay.Seat == ctx.Seat.Partner() &&
		engine.EffectiveSuit(bestPlay.Card, &trump) != trump
	if lastToAct && partnerHolds {
		// Partner already has the trick; keep trump in pocket.
		return lowestThrowaway(legal, trump), nil
	}

	var cheapest *engine.Card
	for i, c := range legal {
		p := engine.CardPower(c, &trump, led)
		if p <= bestPower {
			continue
		}
		if cheapest == nil || p < engine.CardPower(*cheapest, &trump, led) {
			cheapest = &legal[i]
		}
	}
	if cheapest != nil {
		return *cheapest, nil
	}
	return lowestThrowaway(legal, trump), nil
}

// chooseLead takes control with a bower or the trump ace when held,
// probes with a side ace otherwise, and leads cheap as a last resort.
func (b *HeuristicBot) chooseLead(legal []engine.Card, trump engine.Suit) engine.Card {
	var strongest *engine.Card
	for i, c := range legal {
		strong := engine.IsRightBower(c, trump) || engine.IsLeftBower(c, trump) ||
			(c.Suit == trump && c.Rank == engine.Ace)
		if !strong {
			continue
		}
		if strongest == nil ||
			engine.CardPower(c, &trump, nil) > engine.CardPower(*strongest, &trump, nil) {
			strongest = &legal[i]
		}
	}
	if strongest != nil {
		return *strongest
	}
	for _, c := range legal {
		if c.Rank == engine.Ace && engine.EffectiveSuit(c, &trump) != trump {
			return c
		}
	}
	lowest := legal[0]
	for _, c := range legal[1:] {
		if engine.CardPower(c, &trump, nil) < engine.CardPower(lowest, &trump, nil) {
			lowest = c
		}
	}
	return lowest
}

// lowestThrowaway dumps the weakest legal card, shedding non-trump
// before trump since trump carries the +100 power bonus.
func lowestThrowaway(legal []engine.Card, trump engine.Suit) engine.Card {
	lowest := legal[0]
	for _, c := range legal[1:] {
		if engine.CardPower(c, &trump, nil) < engine.CardPower(lowest, &trump, nil) {
			lowest = c
		}
	}
	return lowest
}
