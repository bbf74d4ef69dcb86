package server

import "github.com/google/uuid"

// GeneratePlayerID creates a unique player identity. Clients keep it across
// reconnects to resume their seat.
func GeneratePlayerID() string {
	return uuid.NewString()
}
