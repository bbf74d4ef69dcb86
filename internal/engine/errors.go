package engine

import (
	"errors"
	"fmt"
)

// Validation errors: the action is illegal and nothing was mutated.
var (
	ErrNotYourTurn     = errors.New("not your turn")
	ErrWrongPhase      = errors.New("wrong phase for this action")
	ErrInvalidAction   = errors.New("invalid action")
	ErrGameNotActive   = errors.New("game is not active")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrInsufficient    = errors.New("insufficient resources")
	ErrOccupied        = errors.New("position already occupied")
	ErrNotConnected    = errors.New("not connected to your road network")
	ErrInvalidPosition = errors.New("invalid position")
	ErrDeckEmpty       = errors.New("wisdom deck is empty")
	ErrNoSuchTrade     = errors.New("no matching trade proposal")
)

// InvariantError marks a state that validated actions should never be able to
// reach. When one surfaces, the game flips to the broken phase and rejects
// everything from then on.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Reason
}

// invariantf builds an InvariantError with a formatted reason.
func invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is an ordinary rejected move, as opposed
// to an internal defect.
func IsValidation(err error) bool {
	var inv *InvariantError
	return err != nil && !errors.As(err, &inv)
}
