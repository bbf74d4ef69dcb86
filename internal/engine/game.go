package engine

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Status summarizes the game lifecycle for listings and persistence.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
	StatusBroken   Status = "broken"
)

// Game holds the entire authoritative state of one match. It is not safe for
// concurrent use: callers (the hub) serialize Apply calls per game.
type Game struct {
	Players []*Player
	Board   *Board
	Deck    *Deck
	Config  GameConfig

	Phase     GamePhase
	Current   int   // index into Players of the player whose turn it is
	LastRoll  []int // the two dice of the current turn, nil before the roll
	RaiderHex int
	Winner    string

	// Achievement holders and the lengths they held the title at. Player
	// flags mirror the holder fields; achieve.go keeps them in sync.
	LongestPathBy  string
	LongestPathLen int
	LargestArmyBy  string
	LargestArmyLen int

	Setup           *SetupState
	PendingDiscards map[string]int
	PendingTrade    *TradeProposal

	rng *rand.Rand
	log zerolog.Logger
}

// NewGame creates a game with a freshly generated board. Players must already
// carry their colors and join order; Start shuffles turn order.
func NewGame(players []*Player, cfg GameConfig, log zerolog.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	board, ceremonial := GenerateBoard(rng, cfg.BalancedTokens)
	return &Game{
		Players:   players,
		Board:     board,
		Deck:      NewWisdomDeck(rng),
		Config:    cfg,
		Phase:     PhaseLobby,
		RaiderHex: ceremonial,
		rng:       rng,
		log:       log,
	}
}

// Start randomizes turn order and opens either the setup phase or the first
// roll. Valid only once, from the lobby phase.
func (g *Game) Start() ([]Event, error) {
	if g.Phase != PhaseLobby {
		return nil, ErrWrongPhase
	}
	if len(g.Players) < MinPlayers || len(g.Players) > MaxPlayers {
		return nil, ErrInvalidAction
	}

	g.rng.Shuffle(len(g.Players), func(i, j int) {
		g.Players[i], g.Players[j] = g.Players[j], g.Players[i]
	})
	for i, p := range g.Players {
		p.Order = i
	}
	g.Current = 0

	order := make([]string, len(g.Players))
	for i, p := range g.Players {
		order[i] = p.ID
	}
	events := []Event{{Type: EventGameStart, Data: map[string]any{"turn_order": order}}}

	if g.Config.SetupRounds > 0 {
		g.Setup = &SetupState{}
		g.Phase = PhaseSetup
	} else {
		g.Phase = PhaseAwaitingRoll
	}
	events = append(events, phaseEvent(g.Phase))
	return events, nil
}

// Status derives the lifecycle status from the phase.
func (g *Game) Status() Status {
	switch g.Phase {
	case PhaseLobby:
		return StatusWaiting
	case PhaseFinished:
		return StatusFinished
	case PhaseBroken:
		return StatusBroken
	default:
		return StatusActive
	}
}

// Apply is the single entry point for player actions. It validates against
// the current phase and actor, applies the mutation atomically, and returns
// the emitted events. On a validation error nothing has changed.
func (g *Game) Apply(playerID string, a Action) ([]Event, error) {
	switch g.Phase {
	case PhaseLobby, PhaseFinished, PhaseBroken:
		return nil, ErrGameNotActive
	}
	if g.player(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	var events []Event
	var err error
	switch a.Type {
	case ActionPlaceSetup:
		events, err = g.applyPlaceSetup(playerID, a)
	case ActionRoll:
		events, err = g.applyRoll(playerID)
	case ActionDiscard:
		events, err = g.applyDiscard(playerID, a)
	case ActionMoveRaider:
		events, err = g.applyMoveRaider(playerID, a)
	case ActionBuild:
		events, err = g.applyBuild(playerID, a)
	case ActionProposeTrade:
		events, err = g.applyProposeTrade(playerID, a)
	case ActionRespondTrade:
		events, err = g.applyRespondTrade(playerID, a)
	case ActionBankTrade:
		events, err = g.applyBankTrade(playerID, a)
	case ActionBuyCard:
		events, err = g.applyBuyCard(playerID)
	case ActionPlayCard:
		events, err = g.applyPlayCard(playerID, a)
	case ActionEndTurn:
		events, err = g.applyEndTurn(playerID)
	default:
		return nil, ErrInvalidAction
	}

	if err != nil && !IsValidation(err) {
		g.markBroken(err)
	}
	return events, err
}

// applyRoll resolves the dice for the current turn: either resource
// distribution or the raider sequence, never both.
func (g *Game) applyRoll(playerID string) ([]Event, error) {
	if g.Phase != PhaseAwaitingRoll {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}

	d1 := g.rng.IntN(6) + 1
	d2 := g.rng.IntN(6) + 1
	total := d1 + d2
	g.LastRoll = []int{d1, d2}

	events := []Event{{
		Type:   EventDiceRolled,
		Player: playerID,
		Data:   map[string]any{"dice": []int{d1, d2}, "total": total},
	}}

	if total == raiderTrigger {
		more, err := g.beginRaider()
		if err != nil {
			return nil, err
		}
		return append(events, more...), nil
	}

	events = append(events, g.distribute(total)...)
	g.Phase = PhaseAction
	return append(events, phaseEvent(g.Phase)), nil
}

// applyEndTurn hands the turn to the next player and implicitly cancels any
// outstanding trade proposal.
func (g *Game) applyEndTurn(playerID string) ([]Event, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if !g.isCurrent(playerID) {
		return nil, ErrNotYourTurn
	}

	var events []Event
	if g.PendingTrade != nil {
		events = append(events, Event{
			Type:   EventTradeClosed,
			Player: playerID,
			Data:   map[string]any{"trade_id": g.PendingTrade.ID, "outcome": "cancelled"},
		})
		g.PendingTrade = nil
	}

	g.LastRoll = nil
	g.Current = (g.Current + 1) % len(g.Players)
	g.Phase = PhaseAwaitingRoll

	events = append(events,
		Event{Type: EventTurnEnded, Player: playerID, Data: map[string]any{"next": g.CurrentPlayer().ID}},
		phaseEvent(g.Phase),
	)
	return events, nil
}

// Score computes a player's victory points from first principles: 1 per
// bohio, 2 per templo, 2 per held achievement, 1 per hidden point card.
func (g *Game) Score(p *Player) int {
	bohios, templos := g.Board.BuildingsOf(p.ID)
	score := bohios + 2*templos
	if p.HasLongestPath {
		score += 2
	}
	if p.HasLargestArmy {
		score += 2
	}
	return score + p.HiddenPoints()
}

// PublicScore is Score minus hidden point cards, the total opponents can see.
func (g *Game) PublicScore(p *Player) int {
	return g.Score(p) - p.HiddenPoints()
}

// checkVictory flips the game to finished the moment any player's recomputed
// total reaches the threshold. Runs inside the same critical section as the
// mutation that changed the totals.
func (g *Game) checkVictory() []Event {
	for _, p := range g.Players {
		score := g.Score(p)
		if score < g.Config.WinThreshold {
			continue
		}
		g.Winner = p.ID
		g.Phase = PhaseFinished
		g.PendingTrade = nil
		return []Event{
			{Type: EventGameOver, Player: p.ID, Data: map[string]any{"winner": p.ID, "points": score}},
			phaseEvent(g.Phase),
		}
	}
	return nil
}

// markBroken records an invariant violation: the game is unusable from here.
func (g *Game) markBroken(err error) {
	g.log.Error().Err(err).Msg("game state corrupted")
	g.Phase = PhaseBroken
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.Current]
}

func (g *Game) isCurrent(playerID string) bool {
	return g.CurrentPlayer().ID == playerID
}

func (g *Game) player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
