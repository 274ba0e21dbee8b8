package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// RuleError reports an action the rules reject: out of turn, wrong phase,
// illegal card. State is unchanged when one is returned.
type RuleError string

func (e RuleError) Error() string { return string(e) }

// NewGame creates a match with the given first dealer. Scores start at
// zero; the first hand is dealt with DealNewHand.
func NewGame(params GameParams, dealer Seat) *GameState {
	if params.HandCards == 0 {
		params.HandCards = 5
	}
	if params.MaxScore == 0 {
		params.MaxScore = 10
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &GameState{
		Phase:   PhaseIdle,
		Params:  params,
		Dealer:  dealer,
		shuffle: func(cards []Card) { Shuffle(cards, rng) },
	}
}

// SetShuffle overrides the shuffle used by DealNewHand. Tests install a
// fixed permutation here to rig deals.
func (g *GameState) SetShuffle(fn func([]Card)) { g.shuffle = fn }

// DealNewHand shuffles a fresh deck and deals the next hand for the
// current dealer: five cards to each seat round-robin starting left of
// the dealer, the next card turned up, the rest buried. Phase moves to
// the first bid round with the seat left of the dealer to act.
func (g *GameState) DealNewHand() error {
	if g.Phase != PhaseIdle && g.Phase != PhaseHandOver {
		return RuleError("cannot deal mid-hand")
	}
	if g.GameOver {
		return RuleError("game is over")
	}
	deck := NewDeck()
	g.shuffle(deck)
	return g.dealFrom(deck)
}

// dealFrom distributes an ordered 24-card deck. Card i goes to seat
// (dealer+1+i) mod 4 so the deal is strict round-robin from the dealer's
// left; card 20 is the upcard, the last three are buried.
func (g *GameState) dealFrom(deck []Card) error {
	if len(deck) != DeckSize {
		return fmt.Errorf("deck has %d cards, want %d", len(deck), DeckSize)
	}
	seen := map[Card]bool{}
	for _, c := range deck {
		if seen[c] {
			return fmt.Errorf("duplicate card in deck: %v", c)
		}
		seen[c] = true
	}

	for s := range g.Hands {
		g.Hands[s] = nil
	}
	dealt := 4 * g.Params.HandCards
	for i := 0; i < dealt; i++ {
		seat := (g.Dealer + 1 + Seat(i)) % 4
		g.Hands[seat] = append(g.Hands[seat], deck[i])
	}
	g.Upcard = deck[dealt]
	g.UpcardLive = true
	g.Buried = append([]Card(nil), deck[dealt+1:]...)

	g.Trump = nil
	g.Maker = nil
	g.Lone = nil
	g.ForcedDealerPick = false
	g.Trick = Trick{}
	g.LastTrick = nil
	g.TricksPlayed = 0
	g.TrickCounts = [4]int{}
	g.TeamTricks = [2]int{}

	g.Phase = PhaseBidRoundOne
	g.bidStart = g.Dealer.Next()
	g.Turn = g.bidStart
	g.logf("seat %d deals, %v turned up", g.Dealer, g.Upcard)
	return nil
}

// OrderUp accepts the upcard's suit as trump during the first bid round.
// The dealer picks the upcard up and discards, except when the ordering
// seat plays alone and its partner is the dealer: the sidelined dealer
// never picks up and play starts immediately.
func (g *GameState) OrderUp(seat Seat, alone bool) error {
	if g.Phase != PhaseBidRoundOne {
		return RuleError("not in bid round one")
	}
	if seat != g.Turn {
		return RuleError(fmt.Sprintf("not seat %d's turn", seat))
	}
	trump := g.Upcard.Suit
	g.Trump = &trump
	maker := seat
	g.Maker = &maker
	if alone {
		lone := seat
		g.Lone = &lone
		g.logf("seat %d orders up %v alone", seat, trump)
	} else {
		g.logf("seat %d orders up %v", seat, trump)
	}

	if alone && seat.Partner() == g.Dealer {
		// Dealer sits out; the upcard is buried untouched.
		g.Buried = append(g.Buried, g.Upcard)
		g.UpcardLive = false
		g.startPlay()
		return nil
	}
	g.Hands[g.Dealer] = append(g.Hands[g.Dealer], g.Upcard)
	g.Phase = PhaseDealerDiscard
	g.Turn = g.Dealer
	return nil
}

// DealerDiscard completes the pickup: the dealer returns one card face
// down and play begins.
func (g *GameState) DealerDiscard(seat Seat, card Card) error {
	if g.Phase != PhaseDealerDiscard {
		return RuleError("not in dealer discard")
	}
	if seat != g.Dealer {
		return RuleError("only the dealer discards")
	}
	hand, ok := removeCard(g.Hands[seat], card)
	if !ok {
		return RuleError(fmt.Sprintf("%v not in hand", card))
	}
	g.Hands[seat] = hand
	g.Buried = append(g.Buried, card)
	g.UpcardLive = false
	g.logf("seat %d picks up and discards", seat)
	g.startPlay()
	return nil
}

// CallSuit names trump during the second bid round. The upcard's suit
// was already turned down and may not be called.
func (g *GameState) CallSuit(seat Seat, suit Suit, alone bool) error {
	if g.Phase != PhaseBidRoundTwo {
		return RuleError("not in bid round two")
	}
	if seat != g.Turn {
		return RuleError(fmt.Sprintf("not seat %d's turn", seat))
	}
	if suit == g.Upcard.Suit {
		return RuleError(fmt.Sprintf("%v was turned down and cannot be called", suit))
	}
	trump := suit
	g.Trump = &trump
	maker := seat
	g.Maker = &maker
	if alone {
		lone := seat
		g.Lone = &lone
		g.logf("seat %d calls %v alone", seat, suit)
	} else {
		g.logf("seat %d calls %v", seat, suit)
	}
	g.startPlay()
	return nil
}

// Pass declines to bid. When the deal passes all the way around in round
// one, bidding moves to round two; in round two the dealer is stuck and
// must call ("screw the dealer").
func (g *GameState) Pass(seat Seat) error {
	switch g.Phase {
	case PhaseBidRoundOne:
		if seat != g.Turn {
			return RuleError(fmt.Sprintf("not seat %d's turn", seat))
		}
		g.logf("seat %d passes", seat)
		next := g.Turn.Next()
		if next == g.bidStart {
			g.UpcardLive = false
			g.Buried = append(g.Buried, g.Upcard)
			g.Phase = PhaseBidRoundTwo
			g.Turn = g.bidStart
			g.logf("%v turned down", g.Upcard)
			return nil
		}
		g.Turn = next
		return nil
	case PhaseBidRoundTwo:
		if seat != g.Turn {
			return RuleError(fmt.Sprintf("not seat %d's turn", seat))
		}
		if g.ForcedDealerPick {
			return RuleError("dealer must call a suit")
		}
		g.logf("seat %d passes", seat)
		next := g.Turn.Next()
		if next == g.bidStart {
			g.ForcedDealerPick = true
			g.Turn = g.Dealer
			g.logf("seat %d is stuck and must call", g.Dealer)
			return nil
		}
		g.Turn = next
		return nil
	default:
		return RuleError("nothing to pass on")
	}
}

// startPlay enters the playing phase with the first active seat left of
// the dealer leading.
func (g *GameState) startPlay() {
	g.Phase = PhasePlaying
	lead := g.nextActive(g.Dealer)
	g.Turn = lead
	g.Trick = Trick{Leader: lead}
}

// nextActive returns the next seat clockwise from s that is playing this
// hand, skipping the lone seat's partner.
func (g *GameState) nextActive(s Seat) Seat {
	n := s.Next()
	if g.Lone != nil && n == g.Lone.Partner() {
		n = n.Next()
	}
	return n
}

// activeSeats is the number of participants per trick: 3 when someone
// plays alone, else 4.
func (g *GameState) activeSeats() int {
	if g.Lone != nil {
		return 3
	}
	return 4
}

// PlayCard plays a card from a seat's hand into the current trick,
// resolving the trick once every active seat has contributed.
func (g *GameState) PlayCard(seat Seat, card Card) error {
	if g.Phase != PhasePlaying {
		return RuleError("not in playing phase")
	}
	if seat != g.Turn {
		return RuleError(fmt.Sprintf("not seat %d's turn", seat))
	}
	if g.Lone != nil && seat == g.Lone.Partner() {
		return RuleError("seat is sitting out")
	}
	if _, ok := indexOfCard(g.Hands[seat], card); !ok {
		return RuleError(fmt.Sprintf("%v not in hand", card))
	}
	if _, ok := indexOfCard(g.LegalPlays(seat), card); !ok {
		return RuleError(fmt.Sprintf("%v does not follow suit", card))
	}

	g.Hands[seat], _ = removeCard(g.Hands[seat], card)
	if len(g.Trick.Plays) == 0 {
		led := EffectiveSuit(card, g.Trump)
		g.Trick.LedSuit = &led
		g.Trick.Leader = seat
	}
	g.Trick.Plays = append(g.Trick.Plays, Play{Seat: seat, Card: card})
	g.logf("seat %d plays %v", seat, card)

	if len(g.Trick.Plays) < g.activeSeats() {
		g.Turn = g.nextActive(seat)
		return nil
	}
	g.resolveTrick()
	return nil
}

// resolveTrick picks the winner of the completed trick, credits it, and
// either starts the next trick or scores the hand after the fifth.
func (g *GameState) resolveTrick() {
	best := 0
	for i := 1; i < len(g.Trick.Plays); i++ {
		a := CardPower(g.Trick.Plays[i].Card, g.Trump, g.Trick.LedSuit)
		b := CardPower(g.Trick.Plays[best].Card, g.Trump, g.Trick.LedSuit)
		if a > b {
			best = i
		}
	}
	winner := g.Trick.Plays[best].Seat
	g.Trick.Winner = winner
	g.TrickCounts[winner]++
	g.TeamTricks[winner.Team()]++
	g.TricksPlayed++
	g.logf("seat %d takes trick %d with %v", winner, g.TricksPlayed, g.Trick.Plays[best].Card)

	done := g.Trick
	g.LastTrick = &done
	if g.TricksPlayed < g.Params.HandCards {
		g.Trick = Trick{Leader: winner}
		g.Turn = winner
		return
	}
	g.scoreHand()
}

// HandPoints returns the points awarded for a hand: maker points and
// defender points given the maker team's trick count.
func HandPoints(makerTricks int, alone bool) (maker, defenders int) {
	switch {
	case makerTricks == 5 && alone:
		return 4, 0
	case makerTricks == 5:
		return 2, 0
	case makerTricks >= 3:
		return 1, 0
	default:
		return 0, 2
	}
}

// scoreHand applies the scoring table and ends the hand, or the game
// when a team reaches the winning score.
func (g *GameState) scoreHand() {
	makerTeam := g.Maker.Team()
	makerPts, defPts := HandPoints(g.TeamTricks[makerTeam], g.Lone != nil)
	switch {
	case makerPts > 0:
		g.Scores[makerTeam] += makerPts
		g.logf("makers take %d tricks for %d point(s)", g.TeamTricks[makerTeam], makerPts)
	default:
		g.Scores[1-makerTeam] += defPts
		g.logf("makers euchred, defenders score %d", defPts)
	}
	g.Phase = PhaseHandOver
	if g.Scores[0] >= g.Params.MaxScore || g.Scores[1] >= g.Params.MaxScore {
		g.GameOver = true
		g.logf("game over %d-%d", g.Scores[0], g.Scores[1])
	}
}

// AdvanceAfterHand rotates the deal one seat clockwise and deals the
// next hand. It fails once the game is over.
func (g *GameState) AdvanceAfterHand() error {
	if g.Phase != PhaseHandOver {
		return RuleError("hand is not over")
	}
	if g.GameOver {
		return RuleError("game is over")
	}
	g.Dealer = g.Dealer.Next()
	return g.DealNewHand()
}

// Winner reports whether the game has been won and by which team.
func (g *GameState) Winner() (bool, int) {
	for team, pts := range g.Scores {
		if pts >= g.Params.MaxScore {
			return true, team
		}
	}
	return false, 0
}

func (g *GameState) logf(format string, args ...any) {
	g.Events = append(g.Events, fmt.Sprintf(format, args...))
}
