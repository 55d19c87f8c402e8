package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/strikeout/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix        = "game:"
	framesKeyPrefix      = "game_frames:"
	playerGamesKeyPrefix = "player_games:"

	defaultMaxRetries = 10
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrGameAlreadyExists is returned when creating a game whose ID is taken
	ErrGameAlreadyExists = errors.New("game already exists")

	// ErrConcurrentUpdate is returned when an update keeps losing to other writers
	ErrConcurrentUpdate = errors.New("game was modified concurrently")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxRetries bounds how often an update is retried after losing a race
	MaxRetries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxRetries int
}

// reader is the read side shared by *redis.Client and *redis.Tx
type reader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxRetries: maxRetries,
	}, nil
}

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func framesKey(gameID string) string {
	return framesKeyPrefix + gameID
}

func playerGamesKey(playerID string) string {
	return playerGamesKeyPrefix + playerID
}

// CreateGame persists a new game to Redis
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	// Claim the ID first so an existing game is never overwritten
	created, err := r.client.SetNX(ctx, gameKey(game.ID), gameJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	if !created {
		return ErrGameAlreadyExists
	}

	pipe := r.client.TxPipeline()

	if err := writeFrames(ctx, pipe, game); err != nil {
		return err
	}

	if game.PlayerID != "" {
		pipe.ZAdd(ctx, playerGamesKey(game.PlayerID), redis.Z{
			Score:  float64(game.CreatedAt.UnixNano()),
			Member: game.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game frames: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return readGame(ctx, r.client, input.GameID)
}

// UpdateGame runs the update inside an optimistic WATCH/MULTI transaction on
// the game and its frames. A lost race is retried from a fresh read.
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	var updated *models.Game
	txf := func(tx *redis.Tx) error {
		game, err := readGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		if err := input.Update(game); err != nil {
			return err
		}
		game.Version++

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
			return writeFrames(ctx, pipe, game)
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, gameKey(input.GameID), framesKey(input.GameID))
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrConcurrentUpdate
}

// GetGamesByPlayer retrieves all games for a player from Redis
func (r *redisRepository) GetGamesByPlayer(ctx context.Context, input *GetGamesByPlayerInput) ([]*models.Game, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	gameIDs, err := r.client.ZRange(ctx, playerGamesKey(input.PlayerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		game, err := readGame(ctx, r.client, gameID)
		if err != nil {
			// Skip games that can't be found
			if errors.Is(err, ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

// readGame loads the game record and its frame hash
func readGame(ctx context.Context, rd reader, gameID string) (*models.Game, error) {
	gameJSON, err := rd.Get(ctx, gameKey(gameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	fields, err := rd.HGetAll(ctx, framesKey(gameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get frames: %w", err)
	}

	game.Frames = make([]models.Frame, models.FrameCount)
	for i := range game.Frames {
		game.Frames[i] = models.Frame{Number: i + 1, Rolls: []int{}}
	}

	for field, value := range fields {
		number, err := strconv.Atoi(field)
		if err != nil || number < 1 || number > models.FrameCount {
			return nil, fmt.Errorf("invalid frame number %q for game %s", field, gameID)
		}

		var rolls []int
		if err := json.Unmarshal([]byte(value), &rolls); err != nil {
			return nil, fmt.Errorf("failed to unmarshal frame %d: %w", number, err)
		}
		game.Frames[number-1].Rolls = rolls
	}

	return &game, nil
}

// writeFrames queues an upsert per frame keyed by frame number. Emptied
// frames are removed from the hash.
func writeFrames(ctx context.Context, pipe redis.Pipeliner, game *models.Game) error {
	key := framesKey(game.ID)
	for _, frame := range game.Frames {
		field := strconv.Itoa(frame.Number)
		if len(frame.Rolls) == 0 {
			pipe.HDel(ctx, key, field)
			continue
		}

		rollsJSON, err := json.Marshal(frame.Rolls)
		if err != nil {
			return fmt.Errorf("failed to marshal frame %d: %w", frame.Number, err)
		}
		pipe.HSet(ctx, key, field, rollsJSON)
	}
	return nil
}
