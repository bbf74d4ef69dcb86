package engine

// recomputeAchievements re-derives both dynamic titles from current state.
// It is deterministic and idempotent: with no intervening mutation a second
// run changes nothing. Ties always leave the incumbent in place.
func (g *Game) recomputeAchievements() []Event {
	var events []Event
	if ev := g.recomputeLongestPath(); ev != nil {
		events = append(events, *ev)
	}
	if ev := g.recomputeLargestArmy(); ev != nil {
		events = append(events, *ev)
	}
	return events
}

func (g *Game) recomputeLongestPath() *Event {
	lengths := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		lengths[p.ID] = longestRoad(g.Board, p.ID)
	}
	holder, length := resolveTitle(g.Players, lengths, g.LongestPathBy, longestPathMin)
	if holder == g.LongestPathBy {
		g.LongestPathLen = length
		return nil
	}

	g.LongestPathBy = holder
	g.LongestPathLen = length
	for _, p := range g.Players {
		p.HasLongestPath = p.ID == holder
	}
	return &Event{
		Type:   EventAchievement,
		Player: holder,
		Data:   map[string]any{"title": "longest_path", "holder": holder, "length": length},
	}
}

func (g *Game) recomputeLargestArmy() *Event {
	counts := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		counts[p.ID] = p.WarriorsPlayed
	}
	holder, count := resolveTitle(g.Players, counts, g.LargestArmyBy, largestArmyMin)
	if holder == g.LargestArmyBy {
		g.LargestArmyLen = count
		return nil
	}

	g.LargestArmyBy = holder
	g.LargestArmyLen = count
	for _, p := range g.Players {
		p.HasLargestArmy = p.ID == holder
	}
	return &Event{
		Type:   EventAchievement,
		Player: holder,
		Data:   map[string]any{"title": "largest_army", "holder": holder, "count": count},
	}
}

// resolveTitle applies the shared transfer rule: below the qualifying
// minimum nobody holds the title; the incumbent keeps it unless a challenger
// is strictly ahead of the incumbent's current value; without an incumbent
// the best qualifier in turn order takes it.
func resolveTitle(players []*Player, values map[string]int, incumbent string, minimum int) (string, int) {
	incumbentValue := 0
	if incumbent != "" {
		incumbentValue = values[incumbent]
	}
	if incumbent != "" && incumbentValue >= minimum {
		best, bestValue := incumbent, incumbentValue
		for _, p := range players {
			if v := values[p.ID]; v > bestValue {
				best, bestValue = p.ID, v
			}
		}
		return best, bestValue
	}

	best, bestValue := "", 0
	for _, p := range players {
		if v := values[p.ID]; v >= minimum && v > bestValue {
			best, bestValue = p.ID, v
		}
	}
	return best, bestValue
}

// longestRoad computes the longest simple path, in edges, through the
// player's camino subgraph. The walk may branch at shared vertices but never
// reuses an edge. Road counts stay small (15 per player at most), so the
// exhaustive DFS is cheap.
func longestRoad(b *Board, owner string) int {
	roads := b.RoadsOf(owner)
	if len(roads) == 0 {
		return 0
	}
	owned := make(map[int]bool, len(roads))
	starts := make(map[int]bool)
	for _, eid := range roads {
		owned[eid] = true
		a, c := b.EdgeVertices(eid)
		starts[a] = true
		starts[c] = true
	}

	used := make(map[int]bool, len(roads))
	var walk func(vertex int) int
	walk = func(vertex int) int {
		best := 0
		for _, eid := range b.VertexEdges(vertex) {
			if !owned[eid] || used[eid] {
				continue
			}
			used[eid] = true
			a, c := b.EdgeVertices(eid)
			next := a
			if next == vertex {
				next = c
			}
			if length := 1 + walk(next); length > best {
				best = length
			}
			used[eid] = false
		}
		return best
	}

	best := 0
	for vertex := range starts {
		if length := walk(vertex); length > best {
			best = length
		}
	}
	return best
}
