package engine

import "fmt"

// GamePhase represents the current phase of the turn state machine.
type GamePhase int

const (
	PhaseLobby         GamePhase = iota // waiting for players
	PhaseSetup                          // initial free placements, snake order
	PhaseAwaitingRoll                   // current player must roll
	PhaseRaiderDiscard                  // over-limit players must discard (manual policy)
	PhaseRaiderMove                     // current player must relocate the conquistador
	PhaseAction                         // trade / build / buy / play, any order
	PhaseFinished                       // a player reached the victory threshold
	PhaseBroken                         // invariant violation; game unusable
)

var phaseNames = map[GamePhase]string{
	PhaseLobby:         "lobby",
	PhaseSetup:         "setup",
	PhaseAwaitingRoll:  "awaiting_roll",
	PhaseRaiderDiscard: "raider_discard",
	PhaseRaiderMove:    "raider_move",
	PhaseAction:        "action",
	PhaseFinished:      "finished",
	PhaseBroken:        "broken",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// MarshalText serializes the phase by name so snapshots stay readable.
func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText restores a phase from its name.
func (p *GamePhase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}
