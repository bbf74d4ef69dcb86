package engine

// beginRaider starts the roll-of-7 sequence: discards first, then the move.
// Under the auto policy the engine discards on the spot; under the manual
// policy the phase waits for every over-limit player's discard action.
func (g *Game) beginRaider() ([]Event, error) {
	var events []Event

	over := make(map[string]int)
	for _, p := range g.Players {
		if total := p.Resources.Total(); total > g.Config.HandLimit {
			over[p.ID] = total / 2
		}
	}

	if len(over) > 0 && g.Config.DiscardPolicy == DiscardManual {
		g.PendingDiscards = over
		g.Phase = PhaseRaiderDiscard
		return append(events, phaseEvent(g.Phase)), nil
	}

	for _, p := range g.Players {
		count, ok := over[p.ID]
		if !ok {
			continue
		}
		dropped := g.randomDiscard(p, count)
		events = append(events, Event{
			Type:   EventDiscarded,
			Player: p.ID,
			Data:   map[string]any{"discarded": dropped},
		})
	}

	g.Phase = PhaseRaiderMove
	return append(events, phaseEvent(g.Phase)), nil
}

// randomDiscard removes count uniformly chosen cards from the player's stock.
func (g *Game) randomDiscard(p *Player, count int) ResourceSet {
	dropped := NewResourceSet()
	for i := 0; i < count; i++ {
		cards := p.Resources.Flatten()
		if len(cards) == 0 {
			break
		}
		pick := cards[g.rng.IntN(len(cards))]
		p.Resources.Sub(ResourceSet{pick: 1})
		dropped.Grant(pick, 1)
	}
	return dropped
}

// applyDiscard resolves one player's manual discard. Unlike almost every
// other action it is accepted from non-current players: all over-limit hands
// shed cards before the raider moves.
func (g *Game) applyDiscard(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseRaiderDiscard {
		return nil, ErrWrongPhase
	}
	required, ok := g.PendingDiscards[playerID]
	if !ok {
		return nil, ErrInvalidAction
	}
	if a.Give.Total() != required {
		return nil, ErrInvalidAction
	}
	p := g.player(playerID)
	if !p.Resources.Covers(a.Give) {
		return nil, ErrInsufficient
	}

	p.Resources.Sub(a.Give)
	delete(g.PendingDiscards, playerID)

	events := []Event{{
		Type:   EventDiscarded,
		Player: playerID,
		Data:   map[string]any{"discarded": a.Give},
	}}
	if len(g.PendingDiscards) == 0 {
		g.PendingDiscards = nil
		g.Phase = PhaseRaiderMove
		events = append(events, phaseEvent(g.Phase))
	}
	return events, nil
}

// applyMoveRaider relocates the conquistador and steals one random resource
// from a qualifying opponent. The active player may name the victim; left
// unnamed, the engine picks among opponents with a building adjacent to the
// target hex. No qualifying victim, or an empty-handed one, means no theft.
func (g *Game) applyMoveRaider(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseRaiderMove {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}
	if !g.Board.ValidHex(a.HexID) || a.HexID == g.RaiderHex {
		return nil, ErrInvalidPosition
	}

	victims := g.raiderVictims(playerID, a.HexID)
	var victim *Player
	if a.TargetPlayer != "" {
		for _, v := range victims {
			if v.ID == a.TargetPlayer {
				victim = v
				break
			}
		}
		if victim == nil {
			return nil, ErrInvalidAction
		}
	} else if len(victims) > 0 {
		// Prefer someone actually holding cards.
		var holding []*Player
		for _, v := range victims {
			if v.Resources.Total() > 0 {
				holding = append(holding, v)
			}
		}
		if len(holding) > 0 {
			victim = holding[g.rng.IntN(len(holding))]
		}
	}

	g.RaiderHex = a.HexID
	events := []Event{{
		Type:   EventRaiderMoved,
		Player: playerID,
		Data:   map[string]any{"hex": a.HexID},
	}}

	if victim != nil && victim.Resources.Total() > 0 {
		cards := victim.Resources.Flatten()
		stolen := cards[g.rng.IntN(len(cards))]
		victim.Resources.Sub(ResourceSet{stolen: 1})
		g.player(playerID).Resources.Grant(stolen, 1)
		events = append(events, Event{
			Type:   EventStolen,
			Player: playerID,
			Data:   map[string]any{"from": victim.ID, "resource": stolen},
		})
	}

	g.Phase = PhaseAction
	return append(events, phaseEvent(g.Phase)), nil
}

// raiderVictims lists opponents owning a building adjacent to the hex.
func (g *Game) raiderVictims(playerID string, hexID int) []*Player {
	seen := make(map[string]bool)
	var out []*Player
	for _, vid := range g.Board.HexVertices(hexID) {
		v := g.Board.Vertices[vid]
		if v.Building == BuildingNone || v.Owner == playerID || seen[v.Owner] {
			continue
		}
		seen[v.Owner] = true
		if p := g.player(v.Owner); p != nil {
			out = append(out, p)
		}
	}
	return out
}
