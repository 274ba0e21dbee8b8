package handler

import (
	"sync"

	"go.uber.org/zap"

	"euchre/internal/engine"
	"euchre/internal/player"
)

// Game binds one engine state to the bots filling its non-human seats.
// All access goes through the mutex; after every accepted human action
// the bots are driven synchronously until the human is up again, so
// there is no wall-clock polling anywhere.
type Game struct {
	ID    string
	Human engine.Seat

	mu    sync.Mutex
	state *engine.GameState
	bots  map[engine.Seat]player.Player
	log   *zap.Logger

	onChange func(*Game) // called after each accepted action, lock held
}

// NewGame creates a session with the human at the given seat and bots
// everywhere else, deals the first hand, and lets the bots bid up to
// the human.
func NewGame(id string, human engine.Seat, newBot player.PlayerFactory, log *zap.Logger) *Game {
	gm := &Game{
		ID:    id,
		Human: human,
		state: engine.NewGame(engine.GameParams{}, engine.Seat(0)),
		bots:  map[engine.Seat]player.Player{},
		log:   log,
	}
	for s := engine.Seat(0); s < 4; s++ {
		if s != human {
			gm.bots[s] = newBot()
		}
	}
	return gm
}

// SetOnChange installs the post-action hook used for spectator pushes.
func (gm *Game) SetOnChange(fn func(*Game)) { gm.onChange = fn }

// Start deals the first hand and runs bots up to the human's turn.
func (gm *Game) Start() error {
	return gm.apply(func(st *engine.GameState) error { return st.DealNewHand() })
}

// View returns the human-seat snapshot.
func (gm *Game) View() engine.View {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.state.ViewFor(gm.Human)
}

// SpectatorView returns the snapshot with no hand contents.
func (gm *Game) SpectatorView() engine.View {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.state.ViewFor(engine.NoSeat)
}

// OrderUp applies the human's round-one order-up.
func (gm *Game) OrderUp(alone bool) error {
	return gm.apply(func(st *engine.GameState) error { return st.OrderUp(gm.Human, alone) })
}

// Pass applies the human's pass in either bid round.
func (gm *Game) Pass() error {
	return gm.apply(func(st *engine.GameState) error { return st.Pass(gm.Human) })
}

// CallSuit applies the human's round-two call.
func (gm *Game) CallSuit(suit engine.Suit, alone bool) error {
	return gm.apply(func(st *engine.GameState) error { return st.CallSuit(gm.Human, suit, alone) })
}

// Discard applies the human dealer's discard after picking up.
func (gm *Game) Discard(card engine.Card) error {
	return gm.apply(func(st *engine.GameState) error { return st.DealerDiscard(gm.Human, card) })
}

// Play plays a card from the human's hand.
func (gm *Game) Play(card engine.Card) error {
	return gm.apply(func(st *engine.GameState) error { return st.PlayCard(gm.Human, card) })
}

// NextHand advances the deal after a finished hand.
func (gm *Game) NextHand() error {
	return gm.apply(func(st *engine.GameState) error { return st.AdvanceAfterHand() })
}

func (gm *Game) apply(action func(*engine.GameState) error) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if err := action(gm.state); err != nil {
		return err
	}
	gm.runBots()
	if gm.onChange != nil {
		gm.onChange(gm)
	}
	return nil
}

// runBots acts for bot seats until the human is up, the hand is over,
// or the game ends. Bots never fail by contract; a rejected bot action
// is a bug, logged and left for the next human action to surface.
func (gm *Game) runBots() {
	st := gm.state
	for !st.GameOver {
		if st.Phase == engine.PhaseIdle || st.Phase == engine.PhaseHandOver {
			return
		}
		bot, ok := gm.bots[st.Turn]
		if !ok {
			return
		}
		seat := st.Turn
		if err := RunBotAction(st, seat, bot); err != nil {
			gm.log.Error("bot action rejected",
				zap.String("game", gm.ID),
				zap.Int("seat", int(seat)),
				zap.String("phase", st.Phase.String()),
				zap.Error(err))
			return
		}
	}
}

// RunBotAction asks the bot at seat for its decision in the current
// phase and applies it. Shared by the HTTP driver and simulation mode.
func RunBotAction(st *engine.GameState, seat engine.Seat, bot player.Player) error {
	hand := append([]engine.Card(nil), st.Hands[seat]...)
	switch st.Phase {
	case engine.PhaseBidRoundOne:
		orderUp, alone, err := bot.OrderUp(hand, bidContext(st, seat))
		if err != nil {
			return err
		}
		if orderUp {
			return st.OrderUp(seat, alone)
		}
		return st.Pass(seat)
	case engine.PhaseDealerDiscard:
		card, err := bot.ChooseDiscard(hand, *st.Trump)
		if err != nil {
			return err
		}
		return st.DealerDiscard(seat, card)
	case engine.PhaseBidRoundTwo:
		suit, alone, err := bot.CallSuit(hand, bidContext(st, seat))
		if err != nil {
			return err
		}
		if suit != nil {
			return st.CallSuit(seat, *suit, alone)
		}
		return st.Pass(seat)
	case engine.PhasePlaying:
		legal := st.LegalPlays(seat)
		card, err := bot.ChoosePlay(hand, legal, playContext(st, seat))
		if err != nil {
			return err
		}
		return st.PlayCard(seat, card)
	default:
		return engine.RuleError("no bot action in phase " + st.Phase.String())
	}
}

func bidContext(st *engine.GameState, seat engine.Seat) player.BidContext {
	return player.BidContext{
		Seat:   seat,
		Dealer: st.Dealer,
		Upcard: st.Upcard,
		Forced: st.ForcedDealerPick,
	}
}

func playContext(st *engine.GameState, seat engine.Seat) player.PlayContext {
	return player.PlayContext{
		Seat:   seat,
		Dealer: st.Dealer,
		Trump:  *st.Trump,
		Lone:   st.Lone,
		Trick:  st.Trick,
	}
}
