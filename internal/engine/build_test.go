package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaminoThenBohio(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()

	corners := g.Board.HexVertices(0)
	g.Board.Vertices[corners[0]].Building = BuildingBohio
	g.Board.Vertices[corners[0]].Owner = p.ID

	edge := g.Board.edgeIDBetween(corners[0], corners[1])
	require.GreaterOrEqual(t, edge, 0)
	p.Resources.Add(ResourceSet{ResourceStone: 2, ResourceWood: 2, ResourceCotton: 1, ResourceMaize: 1})

	events, err := g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: edge})
	require.NoError(t, err)
	assert.Equal(t, p.ID, g.Board.Edges[edge].Owner)
	assert.Equal(t, EventBuilt, events[0].Type)
	assert.Equal(t, 1, p.Resources[ResourceStone])
	assert.Equal(t, 1, p.Resources[ResourceWood])

	// The far end of the new camino is now buildable.
	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingBohio, PositionID: corners[1]})
	require.NoError(t, err)
	assert.Equal(t, BuildingBohio, g.Board.Vertices[corners[1]].Building)
	assert.Equal(t, p.ID, g.Board.Vertices[corners[1]].Owner)
	assert.Equal(t, 0, p.Resources.Total())
}

func TestBuildRequiresConnection(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	p.Resources.Add(ResourceSet{ResourceStone: 5, ResourceWood: 5, ResourceCotton: 5, ResourceMaize: 5})

	corners := g.Board.HexVertices(5)
	edge := g.Board.edgeIDBetween(corners[0], corners[1])

	_, err := g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: edge})
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Empty(t, g.Board.Edges[edge].Owner)

	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingBohio, PositionID: corners[0]})
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, 20, p.Resources.Total(), "a rejected build must not charge")
}

func TestBuildInsufficientResources(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()

	corners := g.Board.HexVertices(0)
	g.Board.Vertices[corners[0]].Building = BuildingBohio
	g.Board.Vertices[corners[0]].Owner = p.ID
	edge := g.Board.edgeIDBetween(corners[0], corners[1])

	p.Resources.Grant(ResourceStone, 1) // missing the wood
	_, err := g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: edge})
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Empty(t, g.Board.Edges[edge].Owner)
	assert.Equal(t, 1, p.Resources.Total())
}

func TestBuildOccupiedAndInvalidPositions(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	q := opponentOf(g, p.ID)
	p.Resources.Add(ResourceSet{ResourceStone: 5, ResourceWood: 5, ResourceCotton: 5, ResourceMaize: 5, ResourceGold: 5})

	corners := g.Board.HexVertices(0)
	g.Board.Vertices[corners[0]].Building = BuildingBohio
	g.Board.Vertices[corners[0]].Owner = q.ID
	edge := g.Board.edgeIDBetween(corners[0], corners[1])
	g.Board.Edges[edge].Owner = q.ID

	_, err := g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: edge})
	assert.ErrorIs(t, err, ErrOccupied)

	// An occupied vertex rejects even when the builder is connected to it.
	near := g.Board.edgeIDBetween(corners[1], corners[2])
	g.Board.Edges[near].Owner = p.ID
	g.Board.Vertices[corners[1]].Building = BuildingBohio
	g.Board.Vertices[corners[1]].Owner = q.ID
	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingBohio, PositionID: corners[1]})
	assert.ErrorIs(t, err, ErrOccupied)

	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: len(g.Board.Edges)})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: "pyramid", PositionID: 0})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestUpgradeTemplo(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	q := opponentOf(g, p.ID)
	p.Resources.Add(ResourceSet{ResourceGold: 6, ResourceMaize: 4})

	corners := g.Board.HexVertices(3)
	g.Board.Vertices[corners[0]].Building = BuildingBohio
	g.Board.Vertices[corners[0]].Owner = p.ID
	g.Board.Vertices[corners[1]].Building = BuildingBohio
	g.Board.Vertices[corners[1]].Owner = q.ID

	_, err := g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingTemplo, PositionID: corners[0]})
	require.NoError(t, err)
	assert.Equal(t, BuildingTemplo, g.Board.Vertices[corners[0]].Building)
	assert.Equal(t, 3, p.Resources[ResourceGold])
	assert.Equal(t, 2, p.Resources[ResourceMaize])

	// Only the owner's own bohio can be upgraded, and only once.
	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingTemplo, PositionID: corners[1]})
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingTemplo, PositionID: corners[0]})
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestBuildOutsideActionPhase(t *testing.T) {
	g := startedGame(t, nil)
	p := g.CurrentPlayer()
	p.Resources.Add(BuildingCost(BuildingCamino))

	_, err := g.Apply(p.ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: 0})
	assert.ErrorIs(t, err, ErrWrongPhase)

	g.Phase = PhaseAction
	_, err = g.Apply(opponentOf(g, p.ID).ID, Action{Type: ActionBuild, Building: BuildingCamino, PositionID: 0})
	assert.ErrorIs(t, err, ErrNotYourTurn)
}
