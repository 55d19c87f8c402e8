package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidRoll is the kind shared by every rejected roll
var ErrInvalidRoll = errors.New("invalid roll")

// Reasons a roll can be rejected
const (
	ReasonPinsOutOfRange = "pins must be between 0 and 10"
	ReasonFrameClosed    = "frame is already closed"
	ReasonTooManyPins    = "rolls in the frame knock down more than 10 pins"
	ReasonGameComplete   = "game is already complete"
	ReasonTooManyFrames  = "a game has at most 10 frames"
)

// RollError describes why a roll was rejected. It matches ErrInvalidRoll with errors.Is.
type RollError struct {
	// Frame is the 1-based frame the roll was aimed at
	Frame int

	// Pins is the rejected pin count
	Pins int

	// Reason is a human readable explanation
	Reason string
}

// Error implements the error interface
func (e *RollError) Error() string {
	return fmt.Sprintf("invalid roll of %d in frame %d: %s", e.Pins, e.Frame, e.Reason)
}

// Unwrap returns ErrInvalidRoll
func (e *RollError) Unwrap() error {
	return ErrInvalidRoll
}
