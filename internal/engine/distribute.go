package engine

// distribute credits every player owning a building adjacent to a hex whose
// token matches the dice total: 1 unit per bohio, 2 per templo. The hex under
// the conquistador produces nothing. The bank is unbounded, so distribution
// never fails.
func (g *Game) distribute(total int) []Event {
	grants := make(map[string]ResourceSet)

	for _, h := range g.Board.Hexes {
		if h.Token != total || h.ID == g.RaiderHex {
			continue
		}
		res, ok := h.Terrain.Resource()
		if !ok {
			continue
		}
		for _, vid := range g.Board.HexVertices(h.ID) {
			v := g.Board.Vertices[vid]
			if v.Building == BuildingNone {
				continue
			}
			amount := 1
			if v.Building == BuildingTemplo {
				amount = 2
			}
			set, ok := grants[v.Owner]
			if !ok {
				set = NewResourceSet()
				grants[v.Owner] = set
			}
			set.Grant(res, amount)
		}
	}

	var events []Event
	for _, p := range g.Players {
		set, ok := grants[p.ID]
		if !ok {
			continue
		}
		p.Resources.Add(set)
		events = append(events, Event{
			Type:   EventDistributed,
			Player: p.ID,
			Data:   map[string]any{"granted": set, "total": total},
		})
	}
	return events
}
