package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWisdomDeckComposition(t *testing.T) {
	d := NewWisdomDeck(testRNG(30))
	require.Equal(t, 25, d.Len())

	counts := make(map[CardKind]int)
	for _, c := range d.Cards() {
		counts[c]++
	}
	assert.Equal(t, deckDistribution, counts)
}

func TestDeckDrawOrder(t *testing.T) {
	d := NewWisdomDeck(testRNG(31))
	order := d.Cards()

	for i := 0; i < 25; i++ {
		card, ok := d.Draw()
		require.True(t, ok)
		assert.Equal(t, order[i], card)
	}
	_, ok := d.Draw()
	assert.False(t, ok)
	assert.Zero(t, d.Len())
}

func TestRestoreDeckPreservesOrder(t *testing.T) {
	want := []CardKind{CardAbundancia, CardGuerreroNaoma, CardAvanceAncestral}
	d := RestoreDeck(want)
	assert.Equal(t, want, d.Cards())

	first, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, CardAbundancia, first)
	assert.Equal(t, 2, d.Len())
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	a := NewWisdomDeck(testRNG(32))
	b := NewWisdomDeck(testRNG(32))
	c := NewWisdomDeck(testRNG(33))
	assert.Equal(t, a.Cards(), b.Cards())
	assert.NotEqual(t, a.Cards(), c.Cards(), "different seeds should give different orders")
}
