package engine

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Snapshot is the complete serializable state of one game. Its shape mirrors
// the live entities one to one, so persisting and shipping it to clients is
// a plain JSON encode. The randomness stream is not part of the state; a
// restored game draws from a fresh one.
type Snapshot struct {
	Config    GameConfig `json:"config"`
	Status    Status     `json:"status"`
	Phase     GamePhase  `json:"phase"`
	Current   int        `json:"current"`
	LastRoll  []int      `json:"last_roll,omitempty"`
	RaiderHex int        `json:"raider_hex"`
	Winner    string     `json:"winner,omitempty"`

	Board   *Board     `json:"board"`
	Players []*Player  `json:"players"`
	Deck    []CardKind `json:"deck"`

	LongestPathBy  string `json:"longest_path_by,omitempty"`
	LongestPathLen int    `json:"longest_path_len,omitempty"`
	LargestArmyBy  string `json:"largest_army_by,omitempty"`
	LargestArmyLen int    `json:"largest_army_len,omitempty"`

	Setup           *SetupState    `json:"setup,omitempty"`
	PendingDiscards map[string]int `json:"pending_discards,omitempty"`
	PendingTrade    *TradeProposal `json:"pending_trade,omitempty"`
}

// Snapshot captures a deep copy of the game state. Mutating the game after
// the call leaves the snapshot untouched.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Config:         g.Config,
		Status:         g.Status(),
		Phase:          g.Phase,
		Current:        g.Current,
		RaiderHex:      g.RaiderHex,
		Winner:         g.Winner,
		Board:          cloneBoard(g.Board),
		Deck:           g.Deck.Cards(),
		LongestPathBy:  g.LongestPathBy,
		LongestPathLen: g.LongestPathLen,
		LargestArmyBy:  g.LargestArmyBy,
		LargestArmyLen: g.LargestArmyLen,
	}
	if g.LastRoll != nil {
		s.LastRoll = append([]int(nil), g.LastRoll...)
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, clonePlayer(p))
	}
	if g.Setup != nil {
		setup := *g.Setup
		s.Setup = &setup
	}
	if g.PendingDiscards != nil {
		s.PendingDiscards = make(map[string]int, len(g.PendingDiscards))
		for id, n := range g.PendingDiscards {
			s.PendingDiscards[id] = n
		}
	}
	if g.PendingTrade != nil {
		s.PendingTrade = &TradeProposal{
			ID:   g.PendingTrade.ID,
			From: g.PendingTrade.From,
			To:   g.PendingTrade.To,
			Give: g.PendingTrade.Give.Clone(),
			Want: g.PendingTrade.Want.Clone(),
		}
	}
	return s
}

// Restore reconstructs a live game from a snapshot, rebuilding the board's
// adjacency indexes.
func Restore(s Snapshot, log zerolog.Logger) *Game {
	seed := s.Config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g := &Game{
		Config:         s.Config,
		Phase:          s.Phase,
		Current:        s.Current,
		RaiderHex:      s.RaiderHex,
		Winner:         s.Winner,
		Board:          cloneBoard(s.Board),
		Deck:           RestoreDeck(s.Deck),
		LongestPathBy:  s.LongestPathBy,
		LongestPathLen: s.LongestPathLen,
		LargestArmyBy:  s.LargestArmyBy,
		LargestArmyLen: s.LargestArmyLen,
		rng:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:            log,
	}
	g.Board.reindex()
	if s.LastRoll != nil {
		g.LastRoll = append([]int(nil), s.LastRoll...)
	}
	for _, p := range s.Players {
		g.Players = append(g.Players, clonePlayer(p))
	}
	if s.Setup != nil {
		setup := *s.Setup
		g.Setup = &setup
	}
	if s.PendingDiscards != nil {
		g.PendingDiscards = make(map[string]int, len(s.PendingDiscards))
		for id, n := range s.PendingDiscards {
			g.PendingDiscards[id] = n
		}
	}
	if s.PendingTrade != nil {
		g.PendingTrade = &TradeProposal{
			ID:   s.PendingTrade.ID,
			From: s.PendingTrade.From,
			To:   s.PendingTrade.To,
			Give: s.PendingTrade.Give.Clone(),
			Want: s.PendingTrade.Want.Clone(),
		}
	}
	return g
}

func cloneBoard(b *Board) *Board {
	out := &Board{
		Hexes:    append([]Hex(nil), b.Hexes...),
		Vertices: append([]Vertex(nil), b.Vertices...),
		Edges:    append([]Edge(nil), b.Edges...),
	}
	out.reindex()
	return out
}

func clonePlayer(p *Player) *Player {
	out := *p
	out.Resources = p.Resources.Clone()
	out.Cards = append([]CardKind(nil), p.Cards...)
	return &out
}
