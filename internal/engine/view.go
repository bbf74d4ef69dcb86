package engine

// PublicPlayer is the opponent-visible slice of a player: resource counts
// are open information, held wisdom cards are a count only.
type PublicPlayer struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Color          Color       `json:"color"`
	Order          int         `json:"order"`
	Resources      ResourceSet `json:"resources"`
	CardCount      int         `json:"card_count"`
	WarriorsPlayed int         `json:"warriors_played"`
	HasLongestPath bool        `json:"has_longest_path"`
	HasLargestArmy bool        `json:"has_largest_army"`
	VisiblePoints  int         `json:"visible_points"`
}

// PublicView is the game state every connected client may see.
type PublicView struct {
	Status    Status         `json:"status"`
	Phase     string         `json:"phase"`
	Current   string         `json:"current_player"`
	LastRoll  []int          `json:"last_roll,omitempty"`
	RaiderHex int            `json:"raider_hex"`
	Winner    string         `json:"winner,omitempty"`
	Board     *Board         `json:"board"`
	Players   []PublicPlayer `json:"players"`
	DeckSize  int            `json:"deck_size"`
	Trade     *TradeProposal `json:"trade,omitempty"`
	SetupBy   string         `json:"setup_by,omitempty"`
}

// PlayerView extends the public view with the calling player's hidden state.
type PlayerView struct {
	PublicView
	Cards         []CardKind       `json:"cards"`
	Points        int              `json:"points"` // including hidden point cards
	IsMyTurn      bool             `json:"is_my_turn"`
	MustDiscard   int              `json:"must_discard,omitempty"`
	ExchangeRates map[Resource]int `json:"exchange_rates,omitempty"`
}

// View returns the spectator view of the game.
func (g *Game) View() PublicView {
	pv := PublicView{
		Status:    g.Status(),
		Phase:     g.Phase.String(),
		Current:   g.CurrentPlayer().ID,
		RaiderHex: g.RaiderHex,
		Winner:    g.Winner,
		Board:     g.Board,
		DeckSize:  g.Deck.Len(),
		Trade:     g.PendingTrade,
		SetupBy:   g.SetupPlacer(),
	}
	if g.LastRoll != nil {
		pv.LastRoll = append([]int(nil), g.LastRoll...)
	}
	for _, p := range g.Players {
		pv.Players = append(pv.Players, PublicPlayer{
			ID:             p.ID,
			Name:           p.Name,
			Color:          p.Color,
			Order:          p.Order,
			Resources:      p.Resources.Clone(),
			CardCount:      len(p.Cards),
			WarriorsPlayed: p.WarriorsPlayed,
			HasLongestPath: p.HasLongestPath,
			HasLargestArmy: p.HasLargestArmy,
			VisiblePoints:  g.PublicScore(p),
		})
	}
	return pv
}

// ViewFor returns the game state as seen by one player.
func (g *Game) ViewFor(playerID string) PlayerView {
	view := PlayerView{PublicView: g.View()}
	p := g.player(playerID)
	if p == nil {
		return view
	}

	view.Cards = append([]CardKind(nil), p.Cards...)
	view.Points = g.Score(p)
	view.IsMyTurn = g.isCurrent(playerID)
	if g.Phase == PhaseRaiderDiscard {
		view.MustDiscard = g.PendingDiscards[playerID]
	}
	if g.Phase == PhaseAction && view.IsMyTurn {
		rates := make(map[Resource]int, 5)
		for _, r := range AllResources() {
			rates[r] = g.exchangeRate(playerID, r)
		}
		view.ExchangeRates = rates
	}
	return view
}
