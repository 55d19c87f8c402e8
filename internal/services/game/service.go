package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	"github.com/KirkDiggler/strikeout/internal/ledger"
	"github.com/KirkDiggler/strikeout/internal/models"
	gameRepo "github.com/KirkDiggler/strikeout/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/strikeout/internal/repositories/player"
	"github.com/KirkDiggler/strikeout/internal/scoring"
)

// errCorruptFrames marks stored frames that no longer pass validation
var errCorruptFrames = errors.New("stored frames are corrupt")

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.Generator
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGame creates a new game and makes it the player's current game
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	playerName := strings.TrimSpace(input.PlayerName)
	playerID := input.PlayerID

	var player *models.Player
	if playerID != "" {
		existing, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: playerID})
		switch {
		case err == nil:
			player = existing
		case errors.Is(err, playerRepo.ErrPlayerNotFound):
		default:
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	} else {
		playerID = s.uuidGenerator.NewID()
	}

	if playerName == "" && player != nil {
		playerName = player.Name
	}
	if playerName == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	now := s.clock.Now()
	l := ledger.New()
	game := &models.Game{
		ID:           s.uuidGenerator.NewID(),
		PlayerID:     playerID,
		PlayerName:   playerName,
		CurrentFrame: l.CurrentFrame(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Frames:       l.Frames(),
	}

	if err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if player == nil {
		player = &models.Player{ID: playerID, CreatedAt: now}
	}
	player.Name = playerName
	player.CurrentGameID = game.ID
	player.UpdatedAt = now

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return &CreateGameOutput{
		GameID: game.ID,
		Game:   game,
	}, nil
}

// RecordRoll appends a roll to the current frame of a game
func (s *service) RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.updateLedger(ctx, input.GameID, func(l *ledger.Ledger) error {
		return l.AppendRoll(input.Pins)
	})
	if err != nil {
		return nil, err
	}

	return &RecordRollOutput{
		Game:  game,
		Score: snapshot(game),
	}, nil
}

// ReplaceFrames overwrites the leading frames of a game. Nothing is stored
// when any frame is invalid.
func (s *service) ReplaceFrames(ctx context.Context, input *ReplaceFramesInput) (*ReplaceFramesOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.updateLedger(ctx, input.GameID, func(l *ledger.Ledger) error {
		return l.ReplaceFrames(input.Frames)
	})
	if err != nil {
		return nil, err
	}

	return &ReplaceFramesOutput{
		Game:  game,
		Score: snapshot(game),
	}, nil
}

// GetGame retrieves a game and scores it
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:  game,
		Score: snapshot(game),
	}, nil
}

// GetScore scores a game from its stored frames
func (s *service) GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetScoreOutput{
		GameID: game.ID,
		Score:  snapshot(game),
	}, nil
}

// GetGameStatistics returns the strike, spare and open-frame counts of a game
func (s *service) GetGameStatistics(ctx context.Context, input *GetGameStatisticsInput) (*GetGameStatisticsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameStatisticsOutput{
		GameID:     game.ID,
		PlayerName: game.PlayerName,
		Statistics: scoring.Summarize(game.Frames),
	}, nil
}

// GetCurrentGame returns the most recently created game of a player
func (s *service) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	player, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if player.CurrentGameID == "" {
		return nil, ErrGameNotFound
	}

	return s.GetGame(ctx, &GetGameInput{GameID: player.CurrentGameID})
}

// GetPlayerStatistics folds the final scores of a player's games
func (s *service) GetPlayerStatistics(ctx context.Context, input *GetPlayerStatisticsInput) (*GetPlayerStatisticsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	player, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	games, err := s.gameRepo.GetGamesByPlayer(ctx, &gameRepo.GetGamesByPlayerInput{PlayerID: player.ID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	output := &GetPlayerStatisticsOutput{
		PlayerID:    player.ID,
		PlayerName:  player.Name,
		GamesPlayed: len(games),
	}

	for _, game := range games {
		result := scoring.Score(game.Frames)
		if !result.Complete || result.Total == nil {
			continue
		}

		total := *result.Total
		if output.GamesCompleted == 0 || total > output.HighScore {
			output.HighScore = total
		}
		if output.GamesCompleted == 0 || total < output.LowScore {
			output.LowScore = total
		}
		output.GamesCompleted++
		output.TotalScore += total
	}

	if output.GamesCompleted > 0 {
		output.AverageScore = float64(output.TotalScore) / float64(output.GamesCompleted)
	}

	return output, nil
}

// updateLedger rebuilds the ledger from the stored frames, applies fn and
// writes the result back. The store retries fn when another writer got in first.
func (s *service) updateLedger(ctx context.Context, gameID string, fn func(l *ledger.Ledger) error) (*models.Game, error) {
	game, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: gameID,
		Update: func(game *models.Game) error {
			l, err := ledger.FromFrames(game.Frames)
			if err != nil {
				return fmt.Errorf("%w: game %s: %v", errCorruptFrames, game.ID, err)
			}
			if err := fn(l); err != nil {
				return err
			}

			game.Frames = l.Frames()
			game.CurrentFrame = l.CurrentFrame()
			game.Complete = l.Complete()
			game.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, translateError(err)
	}

	return game, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		return nil, translateError(err)
	}
	return game, nil
}

func (s *service) getPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: playerID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return player, nil
}

// translateError maps repository errors onto service errors. Roll rejections
// pass through untouched so callers can inspect the *ledger.RollError.
func translateError(err error) error {
	var rollErr *ledger.RollError
	switch {
	case errors.As(err, &rollErr):
		return rollErr
	case errors.Is(err, gameRepo.ErrGameNotFound):
		return ErrGameNotFound
	default:
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
}

// snapshot scores a game
func snapshot(game *models.Game) *ScoreSnapshot {
	result := scoring.Score(game.Frames)
	return &ScoreSnapshot{
		Score:        result.Total,
		Complete:     result.Complete,
		CurrentFrame: game.CurrentFrame + 1,
		Frames:       result.Frames,
	}
}
