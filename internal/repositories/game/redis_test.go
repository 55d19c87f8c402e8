package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/strikeout/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		MaxRetries:  100,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newGame(id, playerID string, createdAt time.Time) *models.Game {
	frames := make([]models.Frame, models.FrameCount)
	for i := range frames {
		frames[i] = models.Frame{Number: i + 1, Rolls: []int{}}
	}
	return &models.Game{
		ID:         id,
		PlayerID:   playerID,
		PlayerName: "Test Player",
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		Frames:     frames,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGame() {
	game := s.newGame("test-game-id", "test-player-id", s.testNow)
	game.Frames[0].Rolls = []int{10}
	game.Frames[1].Rolls = []int{7, 2}

	err := s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-game-id", retrieved.ID)
	s.Equal("test-player-id", retrieved.PlayerID)
	s.Equal("Test Player", retrieved.PlayerName)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
	s.Require().Len(retrieved.Frames, models.FrameCount)
	s.Equal([]int{10}, retrieved.Frames[0].Rolls)
	s.Equal([]int{7, 2}, retrieved.Frames[1].Rolls)
	s.Empty(retrieved.Frames[2].Rolls)
	s.Equal(3, retrieved.Frames[2].Number)

	// Only recorded frames are stored
	count, err := s.client.HLen(context.Background(), framesKey("test-game-id")).Result()
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *RedisRepositoryTestSuite) TestCreateGameAlreadyExists() {
	game := s.newGame("test-game-id", "test-player-id", s.testNow)
	s.Require().NoError(s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game}))

	err := s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game})
	s.ErrorIs(err, ErrGameAlreadyExists)
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameUpsertsFrames() {
	game := s.newGame("test-game-id", "test-player-id", s.testNow)
	game.Frames[0].Rolls = []int{3, 4}
	s.Require().NoError(s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game}))

	updated, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Update: func(g *models.Game) error {
			g.Frames[0].Rolls = []int{}
			g.Frames[4].Rolls = []int{5, 5}
			g.CurrentFrame = 5
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), updated.Version)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Empty(retrieved.Frames[0].Rolls)
	s.Equal([]int{5, 5}, retrieved.Frames[4].Rolls)
	s.Equal(5, retrieved.CurrentFrame)
	s.Equal(int64(1), retrieved.Version)
	fields, err := s.client.HKeys(context.Background(), framesKey("test-game-id")).Result()
	s.Require().NoError(err)
	s.Equal([]string{"5"}, fields)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameAbortsOnError() {
	game := s.newGame("test-game-id", "test-player-id", s.testNow)
	s.Require().NoError(s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game}))

	rejected := errors.New("rejected")
	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Update: func(g *models.Game) error {
			g.Frames[0].Rolls = []int{1}
			return rejected
		},
	})
	s.ErrorIs(err, rejected)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Empty(retrieved.Frames[0].Rolls)
	s.Equal(int64(0), retrieved.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameNotFound() {
	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "missing",
		Update: func(g *models.Game) error { return nil },
	})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameSerializesConcurrentWriters() {
	game := s.newGame("test-game-id", "test-player-id", s.testNow)
	s.Require().NoError(s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game}))

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
				GameID: "test-game-id",
				Update: func(g *models.Game) error {
					g.Frames[0].Rolls = append(g.Frames[0].Rolls, 1)
					return nil
				},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Len(retrieved.Frames[0].Rolls, writers)
	s.Equal(int64(writers), retrieved.Version)
}

func (s *RedisRepositoryTestSuite) TestGetGamesByPlayer() {
	first := s.newGame("first-game", "test-player-id", s.testNow)
	second := s.newGame("second-game", "test-player-id", s.testNow.Add(time.Hour))
	other := s.newGame("other-game", "other-player-id", s.testNow)

	// Insert out of order to check the index sorts by creation time
	for _, g := range []*models.Game{second, other, first} {
		s.Require().NoError(s.repo.CreateGame(context.Background(), &CreateGameInput{Game: g}))
	}

	games, err := s.repo.GetGamesByPlayer(context.Background(), &GetGamesByPlayerInput{PlayerID: "test-player-id"})
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("first-game", games[0].ID)
	s.Equal("second-game", games[1].ID)

	games, err = s.repo.GetGamesByPlayer(context.Background(), &GetGamesByPlayerInput{PlayerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *RedisRepositoryTestSuite) TestGetGamesByPlayerSkipsMissingGames() {
	game := s.newGame("test-game-id", "test-player-id", s.testNow)
	s.Require().NoError(s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game}))
	s.Require().NoError(s.client.Del(context.Background(), gameKey("test-game-id")).Err())

	games, err := s.repo.GetGamesByPlayer(context.Background(), &GetGamesByPlayerInput{PlayerID: "test-player-id"})
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	ctx := context.Background()

	s.Error(s.repo.CreateGame(ctx, nil))
	s.Error(s.repo.CreateGame(ctx, &CreateGameInput{Game: &models.Game{}}))

	_, err := s.repo.GetGame(ctx, &GetGameInput{})
	s.Error(err)

	_, err = s.repo.UpdateGame(ctx, &UpdateGameInput{GameID: "test-game-id"})
	s.Error(err)

	_, err = s.repo.GetGamesByPlayer(ctx, &GetGamesByPlayerInput{})
	s.Error(err)
}
