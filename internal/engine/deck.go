package engine

import "math/rand"

// DeckSize is the number of cards in a Euchre deck.
const DeckSize = 24

// NewDeck returns all 24 cards in deck order, each exactly once.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes cards in place using the given source.
func Shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func indexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

func removeCard(cards []Card, target Card) ([]Card, bool) {
	idx, ok := indexOfCard(cards, target)
	if !ok {
		return cards, false
	}
	return append(cards[:idx], cards[idx+1:]...), true
}
