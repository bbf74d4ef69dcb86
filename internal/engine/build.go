package engine

// applyBuild validates and executes a paid construction during the action
// phase. On success it debits the cost, mutates the board, recomputes the
// achievements the mutation can affect, and runs the victory check.
func (g *Game) applyBuild(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}
	p := g.player(playerID)

	cost := BuildingCost(a.Building)
	if len(cost) == 0 {
		return nil, ErrInvalidAction
	}
	if !p.Resources.Covers(cost) {
		return nil, ErrInsufficient
	}

	var place func() error
	switch a.Building {
	case BuildingCamino:
		place = func() error { return g.placeRoad(playerID, a.PositionID, true) }
	case BuildingBohio:
		place = func() error { return g.placeBohio(playerID, a.PositionID) }
	case BuildingTemplo:
		place = func() error { return g.upgradeTemplo(playerID, a.PositionID) }
	}
	if err := place(); err != nil {
		return nil, err
	}
	if !p.Resources.Sub(cost) {
		// Covers was checked above; reaching this means state tore mid-apply.
		return nil, invariantf("build cost debit failed for player %s", playerID)
	}

	events := []Event{{
		Type:   EventBuilt,
		Player: playerID,
		Data:   map[string]any{"building": a.Building, "position": a.PositionID},
	}}
	events = append(events, g.recomputeAchievements()...)
	events = append(events, g.checkVictory()...)
	return events, nil
}

// placeRoad claims an unowned edge. With requireConnect set the edge must
// touch the player's road network or one of their buildings; the free-roads
// card and normal builds both require it, only setup bypasses it.
func (g *Game) placeRoad(playerID string, edgeID int, requireConnect bool) error {
	if !g.Board.ValidEdge(edgeID) {
		return ErrInvalidPosition
	}
	e := &g.Board.Edges[edgeID]
	if e.Owner != "" {
		return ErrOccupied
	}
	if requireConnect && !g.Board.EdgeConnects(edgeID, playerID) {
		return ErrNotConnected
	}
	e.Owner = playerID
	return nil
}

// removeRoad undoes a placeRoad, used to keep multi-road card plays atomic.
func (g *Game) removeRoad(edgeID int) {
	g.Board.Edges[edgeID].Owner = ""
}

// placeBohio claims an unowned vertex connected to the player's road network.
func (g *Game) placeBohio(playerID string, vertexID int) error {
	if !g.Board.ValidVertex(vertexID) {
		return ErrInvalidPosition
	}
	v := &g.Board.Vertices[vertexID]
	if v.Building != BuildingNone {
		if v.Owner == "" {
			return invariantf("vertex %d has a building with no owner", vertexID)
		}
		return ErrOccupied
	}
	if !g.Board.TouchesRoadNetwork(vertexID, playerID) {
		return ErrNotConnected
	}
	v.Building = BuildingBohio
	v.Owner = playerID
	return nil
}

// upgradeTemplo replaces the player's own bohio with a templo.
func (g *Game) upgradeTemplo(playerID string, vertexID int) error {
	if !g.Board.ValidVertex(vertexID) {
		return ErrInvalidPosition
	}
	v := &g.Board.Vertices[vertexID]
	if v.Building != BuildingBohio || v.Owner != playerID {
		return ErrInvalidPosition
	}
	v.Building = BuildingTemplo
	return nil
}
