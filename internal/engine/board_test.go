package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerateBoardShape(t *testing.T) {
	b, ceremonial := GenerateBoard(testRNG(1), false)

	require.Len(t, b.Hexes, 19)
	require.Len(t, b.Vertices, 54)
	require.Len(t, b.Edges, 72)

	require.True(t, b.ValidHex(ceremonial))
	assert.Equal(t, TerrainCeremonial, b.Hexes[ceremonial].Terrain)
	assert.Zero(t, b.Hexes[ceremonial].Token)

	require.NoError(t, b.checkDegrees())
}

func TestGenerateBoardTokens(t *testing.T) {
	b, _ := GenerateBoard(testRNG(2), false)

	counts := make(map[int]int)
	for _, h := range b.Hexes {
		if h.Terrain == TerrainCeremonial {
			continue
		}
		counts[h.Token]++
	}

	want := make(map[int]int)
	for _, tok := range numberTokens {
		want[tok]++
	}
	assert.Equal(t, want, counts)
	assert.Zero(t, counts[7], "no hex may carry a 7")
}

func TestGenerateBoardTerrains(t *testing.T) {
	b, _ := GenerateBoard(testRNG(3), false)

	counts := make(map[Terrain]int)
	for _, h := range b.Hexes {
		counts[h.Terrain]++
	}
	assert.Equal(t, 4, counts[TerrainSelva])
	assert.Equal(t, 4, counts[TerrainCanteras])
	assert.Equal(t, 4, counts[TerrainValles])
	assert.Equal(t, 3, counts[TerrainTierrasAltas])
	assert.Equal(t, 3, counts[TerrainSierra])
	assert.Equal(t, 1, counts[TerrainCeremonial])
}

func TestBalancedTokensSeparatesHotHexes(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b, _ := GenerateBoard(testRNG(seed), true)
		assert.False(t, hasHotTokenCluster(b.Hexes), "seed %d", seed)
	}
}

func TestAdjacencyIndexes(t *testing.T) {
	b, _ := GenerateBoard(testRNG(4), false)

	for _, h := range b.Hexes {
		corners := b.HexVertices(h.ID)
		require.Len(t, corners, 6)
		for _, vid := range corners {
			assert.Contains(t, b.VertexHexes(vid), h.ID)
		}
	}

	for _, e := range b.Edges {
		a, c := b.EdgeVertices(e.ID)
		assert.NotEqual(t, a, c)
		assert.Contains(t, b.VertexEdges(a), e.ID)
		assert.Contains(t, b.VertexEdges(c), e.ID)
	}
}

func TestCoastalEdges(t *testing.T) {
	b, _ := GenerateBoard(testRNG(5), false)
	coast := b.coastalEdges()
	assert.Len(t, coast, 30)
}

func TestPortPlacement(t *testing.T) {
	b, _ := GenerateBoard(testRNG(6), false)

	counts := make(map[PortKind]int)
	vertices := 0
	for _, v := range b.Vertices {
		if v.Port == PortNone {
			continue
		}
		vertices++
		counts[v.Port]++
	}
	// Nine disjoint port pairs on the coastline.
	assert.Equal(t, 18, vertices)
	assert.Equal(t, 8, counts[PortGeneral])
	for _, kind := range []PortKind{PortGold, PortStone, PortCotton, PortMaize, PortWood} {
		assert.Equal(t, 2, counts[kind], "port %s", kind)
	}

	// Ports live on the coastline: never on an inner vertex shared by 3 hexes.
	for _, v := range b.Vertices {
		if v.Port != PortNone {
			assert.LessOrEqual(t, len(b.VertexHexes(v.ID)), 2, "vertex %d", v.ID)
		}
	}
}

func TestGenerateBoardDeterministic(t *testing.T) {
	a, _ := GenerateBoard(testRNG(7), false)
	b, _ := GenerateBoard(testRNG(7), false)
	assert.Equal(t, a.Hexes, b.Hexes)
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Equal(t, a.Edges, b.Edges)
}

func TestEdgeConnects(t *testing.T) {
	b, _ := GenerateBoard(testRNG(8), false)

	corners := b.HexVertices(0)
	e1 := b.edgeIDBetween(corners[0], corners[1])
	e2 := b.edgeIDBetween(corners[1], corners[2])
	require.GreaterOrEqual(t, e1, 0)
	require.GreaterOrEqual(t, e2, 0)

	assert.False(t, b.EdgeConnects(e2, "p1"))

	b.Edges[e1].Owner = "p1"
	assert.True(t, b.EdgeConnects(e2, "p1"), "edge sharing a vertex with an owned camino")
	assert.False(t, b.EdgeConnects(e2, "p2"))

	b.Edges[e1].Owner = ""
	b.Vertices[corners[1]].Building = BuildingBohio
	b.Vertices[corners[1]].Owner = "p1"
	assert.True(t, b.EdgeConnects(e2, "p1"), "edge touching an owned building")
	assert.False(t, b.TouchesRoadNetwork(corners[0], "p1"))
}

func TestHexDistance(t *testing.T) {
	assert.Equal(t, 0, hexDistance(Hex{Q: 1, R: -1}, Hex{Q: 1, R: -1}))
	assert.Equal(t, 1, hexDistance(Hex{Q: 0, R: 0}, Hex{Q: 1, R: -1}))
	assert.Equal(t, 2, hexDistance(Hex{Q: -1, R: 0}, Hex{Q: 1, R: 0}))
	assert.Equal(t, 4, hexDistance(Hex{Q: -2, R: 0}, Hex{Q: 2, R: 0}))
}
