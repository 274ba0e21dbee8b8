package player

import "euchre/internal/engine"

// BidContext is the public information available when bidding.
type BidContext struct {
	Seat   engine.Seat
	Dealer engine.Seat
	Upcard engine.Card
	Forced bool // screw the dealer: a call is mandatory
}

// PlayContext is the public information available when playing a card.
type PlayContext struct {
	Seat   engine.Seat
	Dealer engine.Seat
	Trump  engine.Suit
	Lone   *engine.Seat
	Trick  engine.Trick
}

// Player decides actions for one seat. Implementations see only their
// own hand plus public state; they must always produce a legal action.
type Player interface {
	Name() string
	OrderUp(hand []engine.Card, ctx BidContext) (orderUp, alone bool, err error)
	CallSuit(hand []engine.Card, ctx BidContext) (suit *engine.Suit, alone bool, err error)
	ChooseDiscard(hand []engine.Card, trump engine.Suit) (engine.Card, error)
	ChoosePlay(hand, legal []engine.Card, ctx PlayContext) (engine.Card, error)
}

type PlayerFactory func() Player
