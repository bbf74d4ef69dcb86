package engine

import "math/rand/v2"

// Deck is a stack of wisdom cards.
type Deck struct {
	cards []CardKind
}

// NewWisdomDeck creates a shuffled deck with the standard distribution.
func NewWisdomDeck(rng *rand.Rand) *Deck {
	var cards []CardKind
	for _, kind := range []CardKind{
		CardGuerreroNaoma, CardAbundancia, CardSabiduriaMama,
		CardNuevosCaminos, CardAvanceAncestral,
	} {
		for i := 0; i < deckDistribution[kind]; i++ {
			cards = append(cards, kind)
		}
	}
	d := &Deck{cards: cards}
	d.shuffle(rng)
	return d
}

// RestoreDeck rebuilds a deck with an explicit card order, used when loading
// a serialized game.
func RestoreDeck(cards []CardKind) *Deck {
	d := &Deck{cards: make([]CardKind, len(cards))}
	copy(d.cards, cards)
	return d
}

func (d *Deck) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. Reports false if the deck is empty.
func (d *Deck) Draw() (CardKind, bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	top := d.cards[0]
	d.cards = d.cards[1:]
	return top, true
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []CardKind {
	out := make([]CardKind, len(d.cards))
	copy(out, d.cards)
	return out
}
