package game

import (
	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	"github.com/KirkDiggler/strikeout/internal/models"
	gameRepo "github.com/KirkDiggler/strikeout/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/strikeout/internal/repositories/player"
	"github.com/KirkDiggler/strikeout/internal/scoring"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// ScoreSnapshot is the scored state of a game at a point in time
type ScoreSnapshot struct {
	// Score is the game score, nil while bonus rolls are pending
	Score *int

	// Complete indicates the game is over and Score is final
	Complete bool

	// CurrentFrame is the 1-based frame the next roll lands in
	CurrentFrame int

	// Frames holds the per-frame breakdown
	Frames []scoring.FrameScore
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerID identifies the bowler. A new ID is generated when empty.
	PlayerID string

	// PlayerName is the display name of the bowler
	PlayerName string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string

	// Game is the stored game
	Game *models.Game
}

// RecordRollInput contains parameters for recording a roll
type RecordRollInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Pins is the number of pins knocked down
	Pins int
}

// RecordRollOutput contains the result of recording a roll
type RecordRollOutput struct {
	// Game is the game after the roll
	Game *models.Game

	// Score is the score after the roll
	Score *ScoreSnapshot
}

// ReplaceFramesInput contains parameters for a bulk frame update
type ReplaceFramesInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Frames holds the rolls for frames 1..len(Frames)
	Frames [][]int
}

// ReplaceFramesOutput contains the result of a bulk frame update
type ReplaceFramesOutput struct {
	// Game is the game after the update
	Game *models.Game

	// Score is the score after the update
	Score *ScoreSnapshot
}

// GetGameInput defines the input for retrieving a game by ID
type GetGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// GetGameOutput contains the result of retrieving a game
type GetGameOutput struct {
	// Game is the retrieved game
	Game *models.Game

	// Score is the current score of the game
	Score *ScoreSnapshot
}

// GetScoreInput defines the input for scoring a game
type GetScoreInput struct {
	GameID string
}

// GetScoreOutput contains the score of a game
type GetScoreOutput struct {
	GameID string
	Score  *ScoreSnapshot
}

// GetGameStatisticsInput defines the input for game statistics
type GetGameStatisticsInput struct {
	GameID string
}

// GetGameStatisticsOutput contains the statistics of a game
type GetGameStatisticsOutput struct {
	GameID     string
	PlayerName string
	Statistics *scoring.Statistics
}

// GetCurrentGameInput defines the input for looking up a player's active game
type GetCurrentGameInput struct {
	PlayerID string
}

// GetPlayerStatisticsInput defines the input for a player's aggregate statistics
type GetPlayerStatisticsInput struct {
	PlayerID string
}

// GetPlayerStatisticsOutput contains a player's aggregate statistics.
// Score aggregates cover completed games only.
type GetPlayerStatisticsOutput struct {
	PlayerID   string
	PlayerName string

	// GamesPlayed counts every game the player started
	GamesPlayed int

	// GamesCompleted counts the games with a final score
	GamesCompleted int

	TotalScore   int
	AverageScore float64
	HighScore    int
	LowScore     int
}
