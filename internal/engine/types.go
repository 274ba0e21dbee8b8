package engine

import "fmt"

// Suit represents a card suit.
type Suit int

const (
	Spades   Suit = iota // ♠
	Clubs                // ♣
	Diamonds             // ♦
	Hearts               // ♥
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Code returns the ASCII letter used on the wire (S, C, D, H).
func (s Suit) Code() string {
	return [...]string{"S", "C", "D", "H"}[s]
}

// SameColor reports whether two suits share a color
// (spades/clubs are black, hearts/diamonds are red).
func SameColor(a, b Suit) bool {
	black := func(s Suit) bool { return s == Spades || s == Clubs }
	return black(a) == black(b)
}

// Suits lists all four suits in deck order.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Rank represents a card rank. Euchre uses nine through ace.
type Rank int

const (
	Nine  Rank = iota // 9
	Ten               // 10
	Jack              // J
	Queen             // Q
	King              // K
	Ace               // A
)

func (r Rank) String() string {
	return [...]string{"9", "10", "J", "Q", "K", "A"}[r]
}

// Value returns the base rank value used for power ordering (9=1 .. A=6).
func (r Rank) Value() int { return int(r) + 1 }

// Ranks lists all six ranks in deck order.
var Ranks = []Rank{Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Code returns the ASCII form of the card, e.g. "JH" or "10S".
func (c Card) Code() string { return c.Rank.String() + c.Suit.Code() }

// ParseCard parses the ASCII form produced by Code.
func ParseCard(code string) (Card, error) {
	for _, s := range Suits {
		for _, r := range Ranks {
			if r.String()+s.Code() == code {
				return Card{Suit: s, Rank: r}, nil
			}
		}
	}
	return Card{}, fmt.Errorf("unknown card code %q", code)
}

// Seat identifies a position at the table, 0 through 3, rotating clockwise.
type Seat int

// Team returns the seat's team (0 or 1). Seats 0/2 are partners, as are 1/3.
func (s Seat) Team() int { return int(s) % 2 }

// Partner returns the seat sitting across.
func (s Seat) Partner() Seat { return (s + 2) % 4 }

// Next returns the seat to the left (clockwise).
func (s Seat) Next() Seat { return (s + 1) % 4 }

// NoSeat marks an unset seat value in views.
const NoSeat Seat = -1

// Phase represents the game phase.
type Phase int

const (
	PhaseIdle          Phase = iota // idle
	PhaseBidRoundOne                // bid1
	PhaseDealerDiscard              // dealer_discard
	PhaseBidRoundTwo                // bid2
	PhasePlaying                    // playing
	PhaseHandOver                   // hand_over
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBidRoundOne:
		return "bid1"
	case PhaseDealerDiscard:
		return "dealer_discard"
	case PhaseBidRoundTwo:
		return "bid2"
	case PhasePlaying:
		return "playing"
	case PhaseHandOver:
		return "hand_over"
	default:
		return "unknown"
	}
}

// Play represents a single card played into a trick.
type Play struct {
	Seat Seat
	Card Card
}

// Trick holds the state of the trick being built up.
type Trick struct {
	Leader  Seat
	Plays   []Play
	LedSuit *Suit // effective suit of the first card, nil until led
	Winner  Seat  // set when the trick resolves
}

// GameParams parameterizes game rules.
type GameParams struct {
	HandCards int // cards dealt per seat
	MaxScore  int // cumulative score that ends the game
}

// GameState is the root state container for one match. It is the single
// owner of all mutable game data; callers interact with it only through
// its methods.
type GameState struct {
	Phase  Phase
	Params GameParams

	Dealer Seat
	Turn   Seat

	Upcard     Card
	UpcardLive bool // upcard still face-up (undecided or awaiting discard)

	Trump *Suit
	Maker *Seat
	Lone  *Seat // seat playing alone; its partner sits out

	ForcedDealerPick bool // all passed twice: dealer must call
	bidStart         Seat // seat left of dealer when the bid round began

	Hands  [4][]Card
	Buried []Card // face-down kitty plus any discard

	Trick        Trick
	LastTrick    *Trick
	TricksPlayed int

	TrickCounts [4]int // tricks won per seat this hand
	TeamTricks  [2]int // tricks won per team this hand
	Scores      [2]int // cumulative game score per team
	GameOver    bool

	Events []string // append-only narrative of accepted actions

	shuffle func([]Card)
}
