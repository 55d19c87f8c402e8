package models

import (
	"time"
)

// Player represents a bowler
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// CurrentGameID is the ID of the game the player is currently bowling
	CurrentGameID string

	// CreatedAt is when the player was first seen
	CreatedAt time.Time

	// UpdatedAt is when the player was last updated
	UpdatedAt time.Time
}
