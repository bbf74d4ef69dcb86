package engine

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	q := opponentOf(g, p.ID)

	// Dirty the state a little before snapshotting.
	corners := g.Board.HexVertices(2)
	g.Board.Vertices[corners[0]].Building = BuildingBohio
	g.Board.Vertices[corners[0]].Owner = p.ID
	g.Board.Edges[g.Board.edgeIDBetween(corners[0], corners[1])].Owner = p.ID
	p.Resources.Add(ResourceSet{ResourceWood: 3, ResourceGold: 1})
	p.Cards = append(p.Cards, CardGuerreroNaoma, CardAvanceAncestral)
	q.WarriorsPlayed = 2
	g.LastRoll = []int{3, 5}
	_, err := g.Apply(p.ID, Action{
		Type: ActionProposeTrade,
		Give: ResourceSet{ResourceWood: 1},
		Want: ResourceSet{ResourceMaize: 1},
	})
	require.NoError(t, err)

	snap := g.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored := Restore(decoded, zerolog.Nop())
	assert.Equal(t, snap, restored.Snapshot())

	// The rebuilt adjacency indexes answer queries again.
	assert.Len(t, restored.Board.HexVertices(0), 6)
	require.NoError(t, restored.Board.checkDegrees())
	assert.True(t, restored.Board.TouchesRoadNetwork(corners[0], p.ID))
}

func TestSnapshotIsDetached(t *testing.T) {
	g := actionGame(t)
	p := g.CurrentPlayer()
	p.Resources.Grant(ResourceWood, 2)

	snap := g.Snapshot()
	p.Resources.Grant(ResourceWood, 5)
	g.Board.Vertices[0].Owner = p.ID
	g.Board.Vertices[0].Building = BuildingTemplo

	var snapped *Player
	for _, sp := range snap.Players {
		if sp.ID == p.ID {
			snapped = sp
		}
	}
	require.NotNil(t, snapped)
	assert.Equal(t, 2, snapped.Resources[ResourceWood])
	assert.Equal(t, BuildingNone, snap.Board.Vertices[0].Building)
}

func TestRestoredGameKeepsPlaying(t *testing.T) {
	g := startedGame(t, nil)
	restored := Restore(g.Snapshot(), zerolog.Nop())

	p := restored.CurrentPlayer()
	_, err := restored.Apply(p.ID, Action{Type: ActionRoll})
	require.NoError(t, err)
	require.Len(t, restored.LastRoll, 2)
}

func TestSnapshotCarriesPendingDiscards(t *testing.T) {
	g := startedGame(t, func(c *GameConfig) { c.DiscardPolicy = DiscardManual })
	g.Players[0].Resources.Grant(ResourceWood, 9)
	_, err := g.beginRaider()
	require.NoError(t, err)

	restored := Restore(g.Snapshot(), zerolog.Nop())
	assert.Equal(t, PhaseRaiderDiscard, restored.Phase)
	assert.Equal(t, map[string]int{g.Players[0].ID: 4}, restored.PendingDiscards)

	_, err = restored.Apply(g.Players[0].ID, Action{Type: ActionDiscard, Give: ResourceSet{ResourceWood: 4}})
	require.NoError(t, err)
	assert.Equal(t, PhaseRaiderMove, restored.Phase)
}

func TestPhaseTextRoundTrip(t *testing.T) {
	for phase := PhaseLobby; phase <= PhaseBroken; phase++ {
		text, err := phase.MarshalText()
		require.NoError(t, err)

		var back GamePhase
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, phase, back)
	}

	var p GamePhase
	assert.Error(t, p.UnmarshalText([]byte("limbo")))
}
