package engine

import "github.com/google/uuid"

// TradeProposal is the single outstanding player-trade offer of the active
// player. To is empty for an open offer any opponent may accept. Proposals
// die with the proposer's turn.
type TradeProposal struct {
	ID   string      `json:"id"`
	From string      `json:"from"`
	To   string      `json:"to,omitempty"`
	Give ResourceSet `json:"give"`
	Want ResourceSet `json:"want"`
}

// applyProposeTrade registers a trade offer from the active player. A new
// proposal supersedes any outstanding one.
func (g *Game) applyProposeTrade(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}
	if a.Give.Total() == 0 || a.Want.Total() == 0 {
		return nil, ErrInvalidAction
	}
	p := g.player(playerID)
	if !p.Resources.Covers(a.Give) {
		return nil, ErrInsufficient
	}
	if a.TargetPlayer != "" {
		if a.TargetPlayer == playerID || g.player(a.TargetPlayer) == nil {
			return nil, ErrInvalidAction
		}
	}

	var events []Event
	if g.PendingTrade != nil {
		events = append(events, Event{
			Type:   EventTradeClosed,
			Player: playerID,
			Data:   map[string]any{"trade_id": g.PendingTrade.ID, "outcome": "superseded"},
		})
	}
	g.PendingTrade = &TradeProposal{
		ID:   uuid.NewString(),
		From: playerID,
		To:   a.TargetPlayer,
		Give: a.Give.Clone(),
		Want: a.Want.Clone(),
	}
	events = append(events, Event{
		Type:   EventTradeOffered,
		Player: playerID,
		Data: map[string]any{
			"trade_id": g.PendingTrade.ID,
			"to":       g.PendingTrade.To,
			"give":     g.PendingTrade.Give,
			"want":     g.PendingTrade.Want,
		},
	})
	return events, nil
}

// applyRespondTrade closes the outstanding proposal. An accept swaps the two
// bundles atomically: if either side can no longer cover its half, the trade
// is rejected and nothing moves.
func (g *Game) applyRespondTrade(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	t := g.PendingTrade
	if t == nil || (a.TradeID != "" && a.TradeID != t.ID) {
		return nil, ErrNoSuchTrade
	}
	if playerID == t.From {
		return nil, ErrInvalidAction
	}
	if t.To != "" && playerID != t.To {
		return nil, ErrInvalidAction
	}

	if !a.Accept {
		g.PendingTrade = nil
		return []Event{{
			Type:   EventTradeClosed,
			Player: playerID,
			Data:   map[string]any{"trade_id": t.ID, "outcome": "rejected"},
		}}, nil
	}

	proposer := g.player(t.From)
	acceptor := g.player(playerID)
	if !proposer.Resources.Covers(t.Give) {
		return nil, ErrInsufficient
	}
	if !acceptor.Resources.Covers(t.Want) {
		return nil, ErrInsufficient
	}

	proposer.Resources.Sub(t.Give)
	acceptor.Resources.Add(t.Give)
	acceptor.Resources.Sub(t.Want)
	proposer.Resources.Add(t.Want)
	g.PendingTrade = nil

	return []Event{{
		Type:   EventTradeClosed,
		Player: playerID,
		Data: map[string]any{
			"trade_id": t.ID,
			"outcome":  "accepted",
			"from":     t.From,
			"give":     t.Give,
			"want":     t.Want,
		},
	}}, nil
}

// applyBankTrade exchanges N of one resource for 1 of another at the best
// rate the player's port holdings allow: 2:1 on a matching resource port,
// 3:1 on a general port, 4:1 against the bank.
func (g *Game) applyBankTrade(playerID string, a Action) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}
	if !ValidResource(a.GiveKind) || !ValidResource(a.WantKind) || a.GiveKind == a.WantKind {
		return nil, ErrInvalidAction
	}

	p := g.player(playerID)
	rate := g.exchangeRate(playerID, a.GiveKind)
	if p.Resources[a.GiveKind] < rate {
		return nil, ErrInsufficient
	}

	p.Resources.Sub(ResourceSet{a.GiveKind: rate})
	p.Resources.Grant(a.WantKind, 1)

	return []Event{{
		Type:   EventBankTraded,
		Player: playerID,
		Data: map[string]any{
			"gave": a.GiveKind, "rate": rate, "got": a.WantKind,
		},
	}}, nil
}

// exchangeRate returns the cheapest rate the player can trade the given
// resource at, based on port ownership.
func (g *Game) exchangeRate(playerID string, give Resource) int {
	if g.Board.OwnsPort(playerID, PortKind(give)) {
		return specificPortRate
	}
	if g.Board.OwnsPort(playerID, PortGeneral) {
		return generalPortRate
	}
	return bankRate
}
