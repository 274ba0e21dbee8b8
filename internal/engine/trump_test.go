package engine

import "testing"

func TestBowerExclusivity(t *testing.T) {
	for _, trump := range Suits {
		for _, c := range NewDeck() {
			right := IsRightBower(c, trump)
			left := IsLeftBower(c, trump)
			if right && left {
				t.Fatalf("%v is both bowers under %v", c, trump)
			}
			if right && c != (Card{Suit: trump, Rank: Jack}) {
				t.Fatalf("%v wrongly right bower under %v", c, trump)
			}
			if left && (c.Rank != Jack || c.Suit == trump || !SameColor(c.Suit, trump)) {
				t.Fatalf("%v wrongly left bower under %v", c, trump)
			}
		}
	}
}

func TestEffectiveSuit(t *testing.T) {
	hearts := Hearts
	cases := []struct {
		name  string
		card  Card
		trump *Suit
		want  Suit
	}{
		{"right bower counts as trump", Card{Hearts, Jack}, &hearts, Hearts},
		{"left bower counts as trump", Card{Diamonds, Jack}, &hearts, Hearts},
		{"off-color jack keeps its suit", Card{Spades, Jack}, &hearts, Spades},
		{"plain card keeps its suit", Card{Clubs, Ace}, &hearts, Clubs},
		{"no trump set", Card{Diamonds, Jack}, nil, Diamonds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EffectiveSuit(tc.card, tc.trump); got != tc.want {
				t.Fatalf("EffectiveSuit(%v) = %v, want %v", tc.card, got, tc.want)
			}
		})
	}
}

func TestCardPowerValues(t *testing.T) {
	hearts, spades := Hearts, Spades
	cases := []struct {
		name string
		card Card
		want int
	}{
		{"right bower", Card{Hearts, Jack}, 200},
		{"left bower", Card{Diamonds, Jack}, 190},
		{"trump ace", Card{Hearts, Ace}, 106},
		{"trump ten", Card{Hearts, Ten}, 102},
		{"lead suit ace", Card{Spades, Ace}, 56},
		{"lead suit king", Card{Spades, King}, 55},
		{"off suit cannot win", Card{Clubs, Ace}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CardPower(tc.card, &hearts, &spades); got != tc.want {
				t.Fatalf("CardPower(%v, ♥, ♠) = %d, want %d", tc.card, got, tc.want)
			}
		})
	}
}

// Any two distinct cards that can still win the trick must compare
// strictly, for every trump/lead combination.
func TestCardPowerTotalOrder(t *testing.T) {
	deck := NewDeck()
	for _, trump := range Suits {
		for _, lead := range Suits {
			seen := map[int]Card{}
			for _, c := range deck {
				p := CardPower(c, &trump, &lead)
				if p == 0 {
					continue
				}
				if prev, ok := seen[p]; ok {
					t.Fatalf("trump %v lead %v: %v and %v tie at %d", trump, lead, prev, c, p)
				}
				seen[p] = c
			}
		}
	}
}

func TestLegalPlays(t *testing.T) {
	hearts := Hearts
	spades := Spades
	hand := []Card{{Spades, Nine}, {Spades, King}, {Diamonds, Jack}, {Clubs, Ace}, {Hearts, Ten}}

	t.Run("leading allows anything", func(t *testing.T) {
		if got := legalPlays(hand, &hearts, nil); len(got) != len(hand) {
			t.Fatalf("got %d legal cards, want %d", len(got), len(hand))
		}
	})
	t.Run("must follow led suit", func(t *testing.T) {
		got := legalPlays(hand, &hearts, &spades)
		if len(got) != 2 || got[0] != (Card{Spades, Nine}) || got[1] != (Card{Spades, King}) {
			t.Fatalf("got %v, want the two spades", got)
		}
	})
	t.Run("left bower follows trump", func(t *testing.T) {
		got := legalPlays(hand, &hearts, &hearts)
		if len(got) != 2 {
			t.Fatalf("got %v, want left bower and hearts ten", got)
		}
		for _, c := range got {
			if EffectiveSuit(c, &hearts) != Hearts {
				t.Fatalf("%v is not effective trump", c)
			}
		}
	})
	t.Run("void frees the whole hand", func(t *testing.T) {
		clubsOnly := []Card{{Clubs, Nine}, {Clubs, Ten}}
		if got := legalPlays(clubsOnly, &hearts, &spades); len(got) != 2 {
			t.Fatalf("got %v, want full hand", got)
		}
	})
}
