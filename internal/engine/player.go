package engine

// Color identifies a player color, drawn from Tayrona cultural elements.
type Color string

const (
	ColorGold       Color = "gold"
	ColorTerracotta Color = "terracotta"
	ColorJade       Color = "jade"
	ColorObsidian   Color = "obsidian"
)

// AllColors returns the four player colors in assignment order.
func AllColors() []Color {
	return []Color{ColorGold, ColorTerracotta, ColorJade, ColorObsidian}
}

// Player holds one player's state. Victory points are never stored: they are
// derived from the board, achievements, and hidden point cards on demand.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Order int    `json:"order"`

	Resources ResourceSet `json:"resources"`
	Cards     []CardKind  `json:"cards"` // held wisdom cards, hidden from opponents

	WarriorsPlayed int  `json:"warriors_played"`
	HasLongestPath bool `json:"has_longest_path"`
	HasLargestArmy bool `json:"has_largest_army"`
}

// NewPlayer creates a player with empty stock.
func NewPlayer(id, name string, color Color, order int) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Color:     color,
		Order:     order,
		Resources: NewResourceSet(),
	}
}

// HasCard reports whether the player holds a wisdom card of the given kind.
func (p *Player) HasCard(kind CardKind) bool {
	for _, c := range p.Cards {
		if c == kind {
			return true
		}
	}
	return false
}

// RemoveCard removes one card of the given kind from the hand. Reports false
// if none is held.
func (p *Player) RemoveCard(kind CardKind) bool {
	for i, c := range p.Cards {
		if c == kind {
			p.Cards = append(p.Cards[:i], p.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// HiddenPoints counts held avance_ancestral cards. They stay secret until the
// victory check sums them.
func (p *Player) HiddenPoints() int {
	n := 0
	for _, c := range p.Cards {
		if c == CardAvanceAncestral {
			n++
		}
	}
	return n
}
