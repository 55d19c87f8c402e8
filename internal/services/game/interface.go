package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/strikeout/internal/services/game Service

import "context"

// Service defines the interface for bowling game operations
type Service interface {
	// CreateGame starts a new game for a player
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// RecordRoll appends a roll to the game's current frame
	RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error)

	// ReplaceFrames overwrites frames of a game in bulk
	ReplaceFrames(ctx context.Context, input *ReplaceFramesInput) (*ReplaceFramesOutput, error)

	// GetGame returns a game with its score
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetScore returns the current score of a game
	GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error)

	// GetGameStatistics returns the aggregates the summarizer consumes
	GetGameStatistics(ctx context.Context, input *GetGameStatisticsInput) (*GetGameStatisticsOutput, error)

	// GetCurrentGame returns the game a player is currently bowling
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetGameOutput, error)

	// GetPlayerStatistics folds the scores of all of a player's games
	GetPlayerStatistics(ctx context.Context, input *GetPlayerStatisticsInput) (*GetPlayerStatisticsOutput, error)
}
