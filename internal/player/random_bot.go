package player

import (
	"math/rand"
	"strconv"

	"euchre/internal/engine"
)

// RandomBot always passes unless forced and plays a uniformly random
// legal card. It is the baseline opponent for simulation runs.
type RandomBot struct {
	BotName string
}

func NewRandomBot() Player {
	return &RandomBot{}
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(rand.Intn(100))
	}
	return b.BotName
}

func (b *RandomBot) OrderUp(hand []engine.Card, ctx BidContext) (bool, bool, error) {
	return false, false, nil
}

func (b *RandomBot) CallSuit(hand []engine.Card, ctx BidContext) (*engine.Suit, bool, error) {
	if !ctx.Forced {
		return nil, false, nil
	}
	var candidates []engine.Suit
	for _, s := range engine.Suits {
		if s != ctx.Upcard.Suit {
			candidates = append(candidates, s)
		}
	}
	suit := candidates[rand.Intn(len(candidates))]
	return &suit, false, nil
}

func (b *RandomBot) ChooseDiscard(hand []engine.Card, trump engine.Suit) (engine.Card, error) {
	return hand[rand.Intn(len(hand))], nil
}

func (b *RandomBot) ChoosePlay(hand, legal []engine.Card, ctx PlayContext) (engine.Card, error) {
	return legal[rand.Intn(len(legal))], nil
}
