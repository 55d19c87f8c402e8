package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	gameRepo "github.com/KirkDiggler/strikeout/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/strikeout/internal/repositories/player"
	"github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/KirkDiggler/strikeout/internal/services/summary"
	summaryMocks "github.com/KirkDiggler/strikeout/internal/services/summary/mocks"
)

type ServerTestSuite struct {
	suite.Suite
	mr          *miniredis.Miniredis
	client      *redis.Client
	mockCtrl    *gomock.Controller
	mockSummary *summaryMocks.MockService
	server      *Server
}

func (s *ServerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	gameService, err := game.New(&game.Config{
		GameRepo:      games,
		PlayerRepo:    players,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSummary = summaryMocks.NewMockService(s.mockCtrl)

	server, err := New(&Config{
		GameService:    gameService,
		SummaryService: s.mockSummary,
		Logger:         zerolog.Nop(),
		CORSOrigin:     "http://localhost:3000",
	})
	s.Require().NoError(err)
	s.server = server
}

func (s *ServerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.server.Router().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(dst), rec.Body.String())
}

func (s *ServerTestSuite) createGame() createGameRes {
	rec := s.do(http.MethodPost, "/games", `{"player":"Dude"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var res createGameRes
	s.decode(rec, &res)
	return res
}

func (s *ServerTestSuite) roll(gameID string, pins int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]int{"pins": pins})
	return s.do(http.MethodPost, "/games/"+gameID+"/roll", string(body))
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true}`, rec.Body.String())
	s.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerTestSuite) TestPreflight() {
	rec := s.do(http.MethodOptions, "/games", "")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func (s *ServerTestSuite) TestCreateGame() {
	res := s.createGame()
	s.NotEmpty(res.ID)
	s.NotEmpty(res.PlayerID)
	s.Equal("Dude", res.Player)
	s.False(res.CreatedAt.IsZero())

	rec := s.do(http.MethodGet, "/games/"+res.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var view gameView
	s.decode(rec, &view)
	s.Equal(res.ID, view.ID)
	s.Equal(1, view.CurrentFrame)
	s.Len(view.Frames, 10)
	s.Require().NotNil(view.Score)
	s.Equal(0, *view.Score)
}

func (s *ServerTestSuite) TestCreateGame_Validation() {
	rec := s.do(http.MethodPost, "/games", `{"player":""}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/games", `{"player":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	var body errorBody
	s.decode(rec, &body)
	s.Equal("bad_json", body.Error)
}

func (s *ServerTestSuite) TestRecordRoll() {
	created := s.createGame()

	rec := s.roll(created.ID, 10)
	s.Require().Equal(http.StatusOK, rec.Code)

	var view scoreView
	s.decode(rec, &view)
	s.Nil(view.Score)
	s.False(view.Complete)
	s.Equal(2, view.CurrentFrame)
	s.Equal("strike", string(view.Frames[0].Kind))
	s.Nil(view.Frames[0].Score)

	s.Equal(http.StatusOK, s.roll(created.ID, 3).Code)
	rec = s.roll(created.ID, 4)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.decode(rec, &view)
	s.Require().NotNil(view.Score)
	s.Equal(24, *view.Score)
	s.Require().NotNil(view.Frames[0].Score)
	s.Equal(17, *view.Frames[0].Score)
}

func (s *ServerTestSuite) TestRecordRoll_Invalid() {
	created := s.createGame()
	s.Require().Equal(http.StatusOK, s.roll(created.ID, 7).Code)

	rec := s.roll(created.ID, 4)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var body errorBody
	s.decode(rec, &body)
	s.Equal("invalid_roll", body.Error)
	s.Equal(1, body.Frame)
	s.NotEmpty(body.Reason)

	rec = s.roll(created.ID, 11)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPost, "/games/"+created.ID+"/roll", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestRecordRoll_GameNotFound() {
	rec := s.roll("missing", 3)
	s.Equal(http.StatusNotFound, rec.Code)

	var body errorBody
	s.decode(rec, &body)
	s.Equal("game_not_found", body.Error)
}

func (s *ServerTestSuite) TestReplaceFrames() {
	created := s.createGame()

	rec := s.do(http.MethodPost, "/games/"+created.ID+"/rolls", `{"frames":[[10],[7,3],[9,0]]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var view scoreView
	s.decode(rec, &view)
	s.Require().NotNil(view.Score)
	s.Equal(20+19+9, *view.Score)
	s.Equal(4, view.CurrentFrame)

	rec = s.do(http.MethodPost, "/games/"+created.ID+"/rolls", `{"frames":[[10],[7,4]]}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodGet, "/games/"+created.ID+"/score", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &view)
	s.Equal(created.ID, view.GameID)
	s.Equal(48, *view.Score)
}

func (s *ServerTestSuite) TestPerfectGame() {
	created := s.createGame()
	for i := 0; i < 12; i++ {
		s.Require().Equal(http.StatusOK, s.roll(created.ID, 10).Code)
	}

	rec := s.do(http.MethodGet, "/games/"+created.ID+"/score", "")
	var view scoreView
	s.decode(rec, &view)
	s.True(view.Complete)
	s.Equal(300, *view.Score)

	s.Equal(http.StatusUnprocessableEntity, s.roll(created.ID, 10).Code)
}

func (s *ServerTestSuite) TestStatistics() {
	created := s.createGame()
	s.do(http.MethodPost, "/games/"+created.ID+"/rolls", `{"frames":[[10],[5,5],[3,4]]}`)

	rec := s.do(http.MethodGet, "/games/"+created.ID+"/statistics", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var view statisticsView
	s.decode(rec, &view)
	s.Equal(1, view.Strikes)
	s.Equal(1, view.Spares)
	s.Equal(1, view.OpenFrames)
	s.Require().NotNil(view.TotalScore)
	s.Equal(20+13+7, *view.TotalScore)
	s.Equal([]int{5, 5}, view.Rolls[2])
}

func (s *ServerTestSuite) TestSummary() {
	created := s.createGame()
	s.do(http.MethodPost, "/games/"+created.ID+"/rolls", `{"frames":[[10]]}`)

	s.mockSummary.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *summary.SummarizeInput) (*summary.SummarizeOutput, error) {
			s.Equal(created.ID, input.GameID)
			s.Equal("Dude", input.PlayerName)
			s.Equal("gpt", input.Model)
			s.Nil(input.Statistics.TotalScore)
			return &summary.SummarizeOutput{Summary: "Opened with a strike.", Model: "gpt"}, nil
		})

	rec := s.do(http.MethodGet, "/games/"+created.ID+"/summary?model=gpt", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var res summaryRes
	s.decode(rec, &res)
	s.Equal("Opened with a strike.", res.Summary)
	s.Equal("gpt", res.Model)
	s.Equal(1, res.Statistics.Strikes)
	s.Nil(res.Statistics.TotalScore)
}

func (s *ServerTestSuite) TestSummary_Unavailable() {
	created := s.createGame()
	s.do(http.MethodPost, "/games/"+created.ID+"/rolls", `{"frames":[[3,4]]}`)

	s.mockSummary.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(summary.ErrSummaryUnavailable, errors.New("quota")))

	rec := s.do(http.MethodGet, "/games/"+created.ID+"/summary", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var res summaryErrorRes
	s.decode(rec, &res)
	s.Equal("summary_unavailable", res.Error)
	s.Require().NotNil(res.Statistics.TotalScore)
	s.Equal(7, *res.Statistics.TotalScore)

	// Game state is untouched by the failed summary
	s.Equal(http.StatusOK, s.roll(created.ID, 5).Code)
}

func (s *ServerTestSuite) TestSummary_UnsupportedModel() {
	created := s.createGame()

	s.mockSummary.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		Return(nil, summary.ErrUnsupportedModel)

	rec := s.do(http.MethodGet, "/games/"+created.ID+"/summary?model=palm", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.True(strings.Contains(rec.Body.String(), "unsupported_model"))
}

func (s *ServerTestSuite) TestSummary_GameNotFound() {
	rec := s.do(http.MethodGet, "/games/missing/summary", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestPlayerEndpoints() {
	created := s.createGame()
	s.do(http.MethodPost, "/games/"+created.ID+"/rolls",
		`{"frames":[[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0]]}`)

	rec := s.do(http.MethodGet, "/players/"+created.PlayerID+"/game", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var view gameView
	s.decode(rec, &view)
	s.Equal(created.ID, view.ID)
	s.True(view.Complete)

	rec = s.do(http.MethodGet, "/players/"+created.PlayerID+"/statistics", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var stats playerStatisticsView
	s.decode(rec, &stats)
	s.Equal("Dude", stats.Player)
	s.Equal(1, stats.GamesPlayed)
	s.Equal(1, stats.GamesCompleted)
	s.Equal(90, stats.HighScore)
	s.InDelta(90.0, stats.AverageScore, 0.001)

	rec = s.do(http.MethodGet, "/players/nobody/statistics", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestNotFoundRoute() {
	rec := s.do(http.MethodGet, "/nope", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "not_found")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilGameService)
}
