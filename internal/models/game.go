package models

import (
	"time"
)

// FrameCount is the number of frames in a game of ten-pin bowling
const FrameCount = 10

// MaxPins is the number of pins standing at the start of a frame
const MaxPins = 10

// Game represents a single ten-pin bowling game for one player
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// PlayerID is the ID of the player bowling the game
	PlayerID string

	// PlayerName is the display name of the player at creation time
	PlayerName string

	// CurrentFrame is the 0-indexed frame the next roll lands in (0-9)
	CurrentFrame int

	// Complete is set once the tenth frame is closed
	Complete bool

	// Version is bumped on every stored update
	Version int64

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time

	// Frames holds frames 1-10 in order. Stored separately from the game record.
	Frames []Frame `json:"-"`
}

// Frame holds the rolls of one frame
type Frame struct {
	// Number is the 1-based frame number (1-10)
	Number int

	// Rolls holds the pins knocked down by each roll, in roll order
	Rolls []int
}

// Sum returns the total pins knocked down in the frame
func (f Frame) Sum() int {
	total := 0
	for _, pins := range f.Rolls {
		total += pins
	}
	return total
}

// IsTenth reports whether this is the final frame
func (f Frame) IsTenth() bool {
	return f.Number == FrameCount
}

// Clone returns a deep copy of the frame
func (f Frame) Clone() Frame {
	rolls := make([]int, len(f.Rolls))
	copy(rolls, f.Rolls)
	return Frame{Number: f.Number, Rolls: rolls}
}
