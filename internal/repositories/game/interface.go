package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/strikeout/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/strikeout/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame stores a new game and its frames
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves a game with all of its frames
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// UpdateGame applies a read-modify-write to a game atomically. Frames are
	// upserted by frame number.
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error)

	// GetGamesByPlayer retrieves every game bowled by a player, oldest first
	GetGamesByPlayer(ctx context.Context, input *GetGamesByPlayerInput) ([]*models.Game, error)
}
