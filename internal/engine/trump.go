package engine

// Bowers are the Euchre-specific wrinkle: the jack of trump (right bower)
// and the jack of the same-color suit (left bower) are the two strongest
// cards, and the left bower counts as trump for follow-suit purposes.
// Every ranking and legality question funnels through this file so the
// bidding, play, and AI layers can never disagree about what a card is.

// Power values for the two bowers.
const (
	rightBowerPower = 200
	leftBowerPower  = 190
	trumpBonus      = 100
	followBonus     = 50
)

// IsRightBower reports whether c is the jack of trump.
func IsRightBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether c is the jack of the same-color non-trump suit.
func IsLeftBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit != trump && SameColor(c.Suit, trump)
}

// EffectiveSuit returns the suit a card counts as under trump: trump for
// both bowers, the card's own suit otherwise. With trump nil (pre-bid)
// the card's own suit is returned.
func EffectiveSuit(c Card, trump *Suit) Suit {
	if trump != nil && (IsRightBower(c, *trump) || IsLeftBower(c, *trump)) {
		return *trump
	}
	return c.Suit
}

// CardPower ranks a card for trick resolution; higher wins. lead is the
// effective suit led in the current trick, or nil when leading. A card
// that neither follows the lead nor is trump has power 0 and can never
// win the trick.
func CardPower(c Card, trump *Suit, lead *Suit) int {
	if trump != nil {
		if IsRightBower(c, *trump) {
			return rightBowerPower
		}
		if IsLeftBower(c, *trump) {
			return leftBowerPower
		}
	}
	eff := EffectiveSuit(c, trump)
	isTrump := trump != nil && eff == *trump
	if lead != nil && eff != *lead && !isTrump {
		return 0
	}
	power := c.Rank.Value()
	if isTrump {
		power += trumpBonus
	} else if lead != nil && eff == *lead {
		power += followBonus
	}
	return power
}

// LegalPlays returns the cards a seat may play into the current trick.
// When leading the whole hand is legal; otherwise the cards following
// the led effective suit, or the whole hand if the seat is void.
func (g *GameState) LegalPlays(seat Seat) []Card {
	if g.Phase != PhasePlaying {
		return nil
	}
	return legalPlays(g.Hands[seat], g.Trump, g.Trick.LedSuit)
}

func legalPlays(hand []Card, trump *Suit, lead *Suit) []Card {
	if lead == nil {
		return append([]Card(nil), hand...)
	}
	var out []Card
	for _, c := range hand {
		if EffectiveSuit(c, trump) == *lead {
			out = append(out, c)
		}
	}
	if out == nil {
		return append([]Card(nil), hand...)
	}
	return out
}
