package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicViewHidesHands(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	p.Cards = append(p.Cards, CardGuerreroNaoma, CardAvanceAncestral)
	p.Resources.Grant(ResourceWood, 3)

	view := g.View()
	assert.Equal(t, StatusActive, view.Status)
	assert.Equal(t, "action", view.Phase)
	assert.Equal(t, p.ID, view.Current)
	assert.Equal(t, 25, view.DeckSize)

	var pub *PublicPlayer
	for i := range view.Players {
		if view.Players[i].ID == p.ID {
			pub = &view.Players[i]
		}
	}
	require.NotNil(t, pub)
	assert.Equal(t, 2, pub.CardCount)
	assert.Equal(t, 3, pub.Resources[ResourceWood], "resource counts are open information")
	assert.Equal(t, 0, pub.VisiblePoints, "hidden point cards stay hidden")
}

func TestViewForExposesOwnHand(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	q := opponentOf(g, p.ID)
	p.Cards = append(p.Cards, CardAvanceAncestral)

	view := g.ViewFor(p.ID)
	assert.Equal(t, []CardKind{CardAvanceAncestral}, view.Cards)
	assert.Equal(t, 1, view.Points)
	assert.True(t, view.IsMyTurn)
	require.NotNil(t, view.ExchangeRates)
	for _, r := range AllResources() {
		assert.Equal(t, bankRate, view.ExchangeRates[r])
	}

	other := g.ViewFor(q.ID)
	assert.False(t, other.IsMyTurn)
	assert.Nil(t, other.ExchangeRates, "rates are shown to the active player only")
}

func TestViewForUnknownPlayerIsSpectator(t *testing.T) {
	g := actionGame(t)
	view := g.ViewFor("stranger")
	assert.Empty(t, view.Cards)
	assert.False(t, view.IsMyTurn)
	assert.Zero(t, view.Points)
}

func TestViewForShowsPendingDiscard(t *testing.T) {
	g := startedGame(t, func(c *GameConfig) { c.DiscardPolicy = DiscardManual })
	rich := g.Players[0]
	rich.Resources.Grant(ResourceWood, 8)

	_, err := g.beginRaider()
	require.NoError(t, err)

	assert.Equal(t, 4, g.ViewFor(rich.ID).MustDiscard)
	assert.Zero(t, g.ViewFor(g.Players[1].ID).MustDiscard)
}

func TestViewShowsSetupPlacer(t *testing.T) {
	g := startedGame(t, func(c *GameConfig) { c.SetupRounds = 1 })
	view := g.View()
	assert.Equal(t, "setup", view.Phase)
	assert.Equal(t, g.SetupPlacer(), view.SetupBy)
	assert.NotEmpty(t, view.SetupBy)
}
