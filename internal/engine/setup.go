package engine

// SetupState tracks the initial placement phase: each player places one free
// bohio plus an adjacent free camino per round, in snake order.
type SetupState struct {
	Round int `json:"round"` // 0-based
	Index int `json:"index"` // position within the round
}

// placerIndex returns the index into the players slice of whoever places
// next, reversing direction on odd rounds.
func (s *SetupState) placerIndex(numPlayers int) int {
	if s.Round%2 == 0 {
		return s.Index
	}
	return numPlayers - 1 - s.Index
}

// advance steps to the next placement. Reports true when all rounds are done.
func (s *SetupState) advance(numPlayers, rounds int) bool {
	s.Index++
	if s.Index == numPlayers {
		s.Index = 0
		s.Round++
	}
	return s.Round >= rounds
}

// applyPlaceSetup places a free bohio and an adjacent free camino in one
// atomic step. Connectivity and cost checks are bypassed; on the last setup
// round the new bohio is seeded with one resource per adjacent producing hex.
func (g *Game) applyPlaceSetup(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseSetup || g.Setup == nil {
		return nil, ErrWrongPhase
	}
	p := g.player(playerID)
	if g.Players[g.Setup.placerIndex(len(g.Players))].ID != playerID {
		return nil, ErrNotYourTurn
	}
	if !g.Board.ValidVertex(a.VertexID) || !g.Board.ValidEdge(a.EdgeID) {
		return nil, ErrInvalidPosition
	}

	vert := &g.Board.Vertices[a.VertexID]
	if vert.Building != BuildingNone {
		return nil, ErrOccupied
	}
	edge := &g.Board.Edges[a.EdgeID]
	if edge.Owner != "" {
		return nil, ErrOccupied
	}
	if edge.A != a.VertexID && edge.B != a.VertexID {
		return nil, ErrNotConnected
	}

	vert.Building = BuildingBohio
	vert.Owner = playerID
	edge.Owner = playerID

	events := []Event{{
		Type:   EventSetupPlaced,
		Player: playerID,
		Data:   map[string]any{"vertex": a.VertexID, "edge": a.EdgeID},
	}}

	if g.Setup.Round == g.Config.SetupRounds-1 {
		granted := NewResourceSet()
		for _, hexID := range g.Board.VertexHexes(a.VertexID) {
			if hexID == g.RaiderHex {
				continue
			}
			if res, ok := g.Board.Hexes[hexID].Terrain.Resource(); ok {
				granted.Grant(res, 1)
			}
		}
		if granted.Total() > 0 {
			p.Resources.Add(granted)
			events = append(events, Event{
				Type:   EventDistributed,
				Player: playerID,
				Data:   map[string]any{"granted": granted},
			})
		}
	}

	if g.Setup.advance(len(g.Players), g.Config.SetupRounds) {
		g.Setup = nil
		g.Current = 0
		g.Phase = PhaseAwaitingRoll
		events = append(events, phaseEvent(g.Phase))
	}
	return events, nil
}

// SetupPlacer returns the ID of the player who places next during setup, or
// empty outside the setup phase.
func (g *Game) SetupPlacer() string {
	if g.Phase != PhaseSetup || g.Setup == nil {
		return ""
	}
	return g.Players[g.Setup.placerIndex(len(g.Players))].ID
}
