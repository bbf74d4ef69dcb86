package engine

// applyBuyCard draws one wisdom card for the fixed price. Fails when the
// deck is exhausted. Hidden point cards can end the game on the spot, so the
// victory check runs here too.
func (g *Game) applyBuyCard(playerID string) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}
	p := g.player(playerID)

	cost := WisdomCardCost()
	if !p.Resources.Covers(cost) {
		return nil, ErrInsufficient
	}
	if g.Deck.Len() == 0 {
		return nil, ErrDeckEmpty
	}

	card, _ := g.Deck.Draw()
	p.Resources.Sub(cost)
	p.Cards = append(p.Cards, card)

	// The card kind stays hidden; the broadcast only says a card was bought.
	events := []Event{{
		Type:   EventCardBought,
		Player: playerID,
		Data:   map[string]any{"deck_remaining": g.Deck.Len()},
	}}
	events = append(events, g.checkVictory()...)
	return events, nil
}

// applyPlayCard resolves a held wisdom card. The card set is closed: each
// kind has exactly one resolver below, and the hidden point card is never
// playable — it is counted at the victory check instead.
func (g *Game) applyPlayCard(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}
	p := g.player(playerID)
	if !ValidCard(a.Card) || a.Card == CardAvanceAncestral {
		return nil, ErrInvalidAction
	}
	if !p.HasCard(a.Card) {
		return nil, ErrInvalidAction
	}

	var events []Event
	var err error
	switch a.Card {
	case CardGuerreroNaoma:
		events, err = g.playWarrior(p)
	case CardAbundancia:
		events, err = g.playAbundancia(p, a)
	case CardSabiduriaMama:
		events, err = g.playSabiduria(p, a)
	case CardNuevosCaminos:
		events, err = g.playNuevosCaminos(p, a)
	}
	if err != nil {
		return nil, err
	}

	p.RemoveCard(a.Card)
	played := Event{
		Type:   EventCardPlayed,
		Player: playerID,
		Data:   map[string]any{"card": a.Card},
	}
	return append([]Event{played}, events...), nil
}

// playWarrior counts the warrior and hands control to the raider-move phase.
// No discard step: that belongs to the rolled 7 only.
func (g *Game) playWarrior(p *Player) ([]Event, error) {
	p.WarriorsPlayed++
	events := g.recomputeAchievements()
	events = append(events, g.checkVictory()...)
	if g.Phase == PhaseFinished {
		return events, nil
	}

	g.Phase = PhaseRaiderMove
	return append(events, phaseEvent(g.Phase)), nil
}

// playAbundancia grants any two resources of the player's choice.
func (g *Game) playAbundancia(p *Player, a Action) ([]Event, error) {
	if len(a.Resources) != 2 {
		return nil, ErrInvalidAction
	}
	granted := NewResourceSet()
	for _, r := range a.Resources {
		if !ValidResource(r) {
			return nil, ErrInvalidAction
		}
		granted.Grant(r, 1)
	}
	p.Resources.Add(granted)
	return []Event{{
		Type:   EventDistributed,
		Player: p.ID,
		Data:   map[string]any{"granted": granted},
	}}, nil
}

// playSabiduria names one resource kind; every opponent surrenders all of it.
// Empty-handed opponents simply contribute nothing.
func (g *Game) playSabiduria(p *Player, a Action) ([]Event, error) {
	if !ValidResource(a.GiveKind) {
		return nil, ErrInvalidAction
	}
	collected := 0
	for _, other := range g.Players {
		if other.ID == p.ID {
			continue
		}
		n := other.Resources[a.GiveKind]
		if n == 0 {
			continue
		}
		other.Resources.Sub(ResourceSet{a.GiveKind: n})
		collected += n
	}
	p.Resources.Grant(a.GiveKind, collected)
	return []Event{{
		Type:   EventDistributed,
		Player: p.ID,
		Data:   map[string]any{"monopoly": a.GiveKind, "collected": collected},
	}}, nil
}

// playNuevosCaminos places up to two free caminos under the normal
// connectivity rule. The whole play is atomic: if any edge is rejected, the
// ones already placed are rolled back.
func (g *Game) playNuevosCaminos(p *Player, a Action) ([]Event, error) {
	if len(a.EdgeIDs) == 0 || len(a.EdgeIDs) > 2 {
		return nil, ErrInvalidAction
	}
	var placed []int
	for _, edgeID := range a.EdgeIDs {
		if err := g.placeRoad(p.ID, edgeID, true); err != nil {
			for _, undo := range placed {
				g.removeRoad(undo)
			}
			return nil, err
		}
		placed = append(placed, edgeID)
	}

	events := []Event{{
		Type:   EventBuilt,
		Player: p.ID,
		Data:   map[string]any{"building": BuildingCamino, "edges": placed, "free": true},
	}}
	events = append(events, g.recomputeAchievements()...)
	events = append(events, g.checkVictory()...)
	return events, nil
}
