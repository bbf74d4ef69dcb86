package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// claimPerimeter hands the first n perimeter edges of a hex to owner.
func claimPerimeter(t *testing.T, g *Game, hexID, n int, owner string) {
	t.Helper()
	corners := g.Board.HexVertices(hexID)
	for i := 0; i < n; i++ {
		edge := g.Board.edgeIDBetween(corners[i], corners[(i+1)%6])
		require.GreaterOrEqual(t, edge, 0)
		g.Board.Edges[edge].Owner = owner
	}
}

func TestLongestRoadChain(t *testing.T) {
	b, _ := GenerateBoard(testRNG(20), false)
	assert.Equal(t, 0, longestRoad(b, "p1"))

	corners := b.HexVertices(4)
	for i := 0; i < 3; i++ {
		b.Edges[b.edgeIDBetween(corners[i], corners[i+1])].Owner = "p1"
	}
	assert.Equal(t, 3, longestRoad(b, "p1"))

	// A stub branching off mid-chain cannot be glued onto the main walk.
	var branch int
	found := false
	for _, eid := range b.VertexEdges(corners[1]) {
		e := b.Edges[eid]
		if e.Owner == "" {
			other := e.A
			if other == corners[1] {
				other = e.B
			}
			if other != corners[0] && other != corners[2] {
				branch = eid
				found = true
			}
		}
	}
	if found {
		b.Edges[branch].Owner = "p1"
		assert.Equal(t, 3, longestRoad(b, "p1"))
		b.Edges[branch].Owner = ""
	}

	// A disconnected edge elsewhere does not extend the chain. Neighboring
	// hexes share corners, so the holder hex must be at distance > 1.
	require.Greater(t, hexDistance(b.Hexes[4], b.Hexes[9]), 1)
	far := b.HexVertices(9)
	b.Edges[b.edgeIDBetween(far[0], far[1])].Owner = "p1"
	assert.Equal(t, 3, longestRoad(b, "p1"))
}

func TestLongestRoadCycle(t *testing.T) {
	b, _ := GenerateBoard(testRNG(21), false)
	corners := b.HexVertices(4)
	for i := 0; i < 6; i++ {
		b.Edges[b.edgeIDBetween(corners[i], corners[(i+1)%6])].Owner = "p1"
	}
	// A closed loop counts every edge once.
	assert.Equal(t, 6, longestRoad(b, "p1"))
}

func TestLongestPathTitleTransfer(t *testing.T) {
	g := actionGame(t)
	a := g.Players[0]
	b := g.Players[1]

	// Four edges stay below the qualifying minimum.
	claimPerimeter(t, g, 0, 4, a.ID)
	assert.Empty(t, g.recomputeAchievements())
	assert.Empty(t, g.LongestPathBy)

	claimPerimeter(t, g, 0, 5, a.ID)
	events := g.recomputeAchievements()
	require.Len(t, events, 1)
	assert.Equal(t, EventAchievement, events[0].Type)
	assert.Equal(t, a.ID, g.LongestPathBy)
	assert.Equal(t, 5, g.LongestPathLen)
	assert.True(t, a.HasLongestPath)
	assert.Equal(t, 2, g.Score(a), "the title is worth two points")

	// Recomputing with no intervening mutation changes nothing.
	assert.Empty(t, g.recomputeAchievements())

	// An equal challenger leaves the incumbent in place.
	claimPerimeter(t, g, 13, 5, b.ID)
	assert.Empty(t, g.recomputeAchievements())
	assert.Equal(t, a.ID, g.LongestPathBy)
	assert.False(t, b.HasLongestPath)

	// A strictly longer chain takes the title.
	claimPerimeter(t, g, 13, 6, b.ID)
	events = g.recomputeAchievements()
	require.Len(t, events, 1)
	assert.Equal(t, b.ID, g.LongestPathBy)
	assert.Equal(t, 6, g.LongestPathLen)
	assert.True(t, b.HasLongestPath)
	assert.False(t, a.HasLongestPath)
	assert.Equal(t, 0, g.Score(a))
	assert.Equal(t, 2, g.Score(b))
}

func TestLargestArmyTitle(t *testing.T) {
	g := actionGame(t)
	a := g.Players[0]
	b := g.Players[1]

	a.WarriorsPlayed = 2
	assert.Empty(t, g.recomputeAchievements())
	assert.Empty(t, g.LargestArmyBy)

	a.WarriorsPlayed = 3
	events := g.recomputeAchievements()
	require.Len(t, events, 1)
	assert.Equal(t, a.ID, g.LargestArmyBy)
	assert.Equal(t, 3, g.LargestArmyLen)
	assert.True(t, a.HasLargestArmy)

	b.WarriorsPlayed = 3
	assert.Empty(t, g.recomputeAchievements())
	assert.Equal(t, a.ID, g.LargestArmyBy)

	b.WarriorsPlayed = 4
	events = g.recomputeAchievements()
	require.Len(t, events, 1)
	assert.Equal(t, b.ID, g.LargestArmyBy)
	assert.True(t, b.HasLargestArmy)
	assert.False(t, a.HasLargestArmy)
}

func TestResolveTitle(t *testing.T) {
	players := testPlayers()

	holder, v := resolveTitle(players, map[string]int{"p1": 4, "p2": 4}, "", 5)
	assert.Empty(t, holder)
	assert.Zero(t, v)

	holder, v = resolveTitle(players, map[string]int{"p1": 5, "p2": 3}, "", 5)
	assert.Equal(t, "p1", holder)
	assert.Equal(t, 5, v)

	// Tie keeps the incumbent.
	holder, _ = resolveTitle(players, map[string]int{"p1": 5, "p2": 5}, "p1", 5)
	assert.Equal(t, "p1", holder)

	// Strictly ahead transfers.
	holder, v = resolveTitle(players, map[string]int{"p1": 5, "p2": 6}, "p1", 5)
	assert.Equal(t, "p2", holder)
	assert.Equal(t, 6, v)

	// An incumbent below the minimum loses the title to a qualifier.
	holder, _ = resolveTitle(players, map[string]int{"p1": 2, "p2": 5}, "p1", 5)
	assert.Equal(t, "p2", holder)

	// Nobody qualifies, nobody holds.
	holder, _ = resolveTitle(players, map[string]int{"p1": 2}, "p1", 5)
	assert.Empty(t, holder)
}
