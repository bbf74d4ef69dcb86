package engine

// DiscardPolicy controls who picks the cards surrendered on a raider roll.
type DiscardPolicy string

const (
	// DiscardAuto lets the engine discard uniformly at random.
	DiscardAuto DiscardPolicy = "auto"
	// DiscardManual makes each over-limit player choose their own discard.
	DiscardManual DiscardPolicy = "manual"
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	// WinThreshold is the victory point total that ends the game.
	WinThreshold int `json:"win_threshold"`
	// SetupRounds is how many free bohio+camino placements each player makes
	// before the first roll, in snake order. Zero skips the setup phase and
	// makes road connectivity mandatory from the first settlement.
	SetupRounds int `json:"setup_rounds"`
	// HandLimit is the card count above which a raider roll forces a discard.
	HandLimit int `json:"hand_limit"`
	// DiscardPolicy selects engine-chosen or player-chosen discards.
	DiscardPolicy DiscardPolicy `json:"discard_policy"`
	// BalancedTokens redraws the number layout until no two of {6,8} are on
	// adjacent hexes. Off by default: the base rules place tokens freely.
	BalancedTokens bool `json:"balanced_tokens"`
	// Seed fixes the randomness stream (board, deck, dice). Zero means a
	// random seed.
	Seed uint64 `json:"seed,omitempty"`
}

// DefaultConfig returns the standard 3-4 player configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		WinThreshold:  10,
		SetupRounds:   2,
		HandLimit:     7,
		DiscardPolicy: DiscardAuto,
	}
}

// Fixed rule constants that are part of the game's identity rather than
// anything configurable.
const (
	// raiderTrigger is the dice total that wakes the conquistador.
	raiderTrigger = 7
	// longestPathMin is the shortest road chain that can claim the title.
	longestPathMin = 5
	// largestArmyMin is the fewest warrior plays that can claim the title.
	largestArmyMin = 3
	// Bank and port exchange rates.
	bankRate         = 4
	generalPortRate  = 3
	specificPortRate = 2

	MinPlayers = 3
	MaxPlayers = 4
)
