package game

import (
	"github.com/KirkDiggler/strikeout/internal/ledger"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrPlayerNotFound   GameError = "player not found"
	ErrInvalidInput     GameError = "invalid input"
	ErrPersistence      GameError = "game store failure"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilPlayerRepo    GameError = "player repository cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)

// ErrInvalidRoll is returned, wrapped in a *ledger.RollError, when a roll breaks the rules
var ErrInvalidRoll = ledger.ErrInvalidRoll
