package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/KirkDiggler/strikeout/internal/services/summary"
)

type createGameReq struct {
	PlayerID string `json:"playerId"`
	Player   string `json:"player"`
}

type createGameRes struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"playerId"`
	Player    string    `json:"player"`
	CreatedAt time.Time `json:"createdAt"`
}

type rollReq struct {
	Pins *int `json:"pins"`
}

type replaceFramesReq struct {
	Frames [][]int `json:"frames"`
}

type summaryRes struct {
	Summary    string         `json:"summary"`
	Model      string         `json:"model"`
	Statistics statisticsView `json:"statistics"`
}

type summaryErrorRes struct {
	Error      string         `json:"error"`
	Message    string         `json:"message"`
	Statistics statisticsView `json:"statistics"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameReq
	if !decodeJSON(w, r, &req) {
		return
	}

	output, err := s.games.CreateGame(r.Context(), &game.CreateGameInput{
		PlayerID:   req.PlayerID,
		PlayerName: req.Player,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/games/"+output.GameID)
	writeJSON(w, http.StatusCreated, createGameRes{
		ID:        output.GameID,
		PlayerID:  output.Game.PlayerID,
		Player:    output.Game.PlayerName,
		CreatedAt: output.Game.CreatedAt,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	output, err := s.games.GetGame(r.Context(), &game.GetGameInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameView(output.Game, output.Score))
}

func (s *Server) handleRecordRoll(w http.ResponseWriter, r *http.Request) {
	var req rollReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Pins == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_json", Message: "pins is required"})
		return
	}

	gameID := chi.URLParam(r, "gameID")
	output, err := s.games.RecordRoll(r.Context(), &game.RecordRollInput{
		GameID: gameID,
		Pins:   *req.Pins,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newScoreView(gameID, output.Score))
}

func (s *Server) handleReplaceFrames(w http.ResponseWriter, r *http.Request) {
	var req replaceFramesReq
	if !decodeJSON(w, r, &req) {
		return
	}

	gameID := chi.URLParam(r, "gameID")
	output, err := s.games.ReplaceFrames(r.Context(), &game.ReplaceFramesInput{
		GameID: gameID,
		Frames: req.Frames,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newScoreView(gameID, output.Score))
}

func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	output, err := s.games.GetScore(r.Context(), &game.GetScoreInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newScoreView(output.GameID, output.Score))
}

func (s *Server) handleGetStatistics(w http.ResponseWriter, r *http.Request) {
	output, err := s.games.GetGameStatistics(r.Context(), &game.GetGameStatisticsInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newStatisticsView(output.Statistics))
}

// handleGetSummary reports summarizer failures as 503 but still returns the statistics
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := s.games.GetGameStatistics(r.Context(), &game.GetGameStatisticsInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	output, err := s.summaries.Summarize(r.Context(), &summary.SummarizeInput{
		GameID:     stats.GameID,
		PlayerName: stats.PlayerName,
		Model:      r.URL.Query().Get("model"),
		Statistics: stats.Statistics,
	})
	if err != nil {
		code := "summary_unavailable"
		status := http.StatusServiceUnavailable
		switch {
		case errors.Is(err, summary.ErrUnsupportedModel):
			code = "unsupported_model"
		case !errors.Is(err, summary.ErrSummaryUnavailable):
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, summaryErrorRes{
			Error:      code,
			Message:    err.Error(),
			Statistics: newStatisticsView(stats.Statistics),
		})
		return
	}

	writeJSON(w, http.StatusOK, summaryRes{
		Summary:    output.Summary,
		Model:      output.Model,
		Statistics: newStatisticsView(stats.Statistics),
	})
}

func (s *Server) handleGetCurrentGame(w http.ResponseWriter, r *http.Request) {
	output, err := s.games.GetCurrentGame(r.Context(), &game.GetCurrentGameInput{PlayerID: chi.URLParam(r, "playerID")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameView(output.Game, output.Score))
}

func (s *Server) handleGetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	output, err := s.games.GetPlayerStatistics(r.Context(), &game.GetPlayerStatisticsInput{PlayerID: chi.URLParam(r, "playerID")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playerStatisticsView{
		PlayerID:       output.PlayerID,
		Player:         output.PlayerName,
		GamesPlayed:    output.GamesPlayed,
		GamesCompleted: output.GamesCompleted,
		TotalScore:     output.TotalScore,
		AverageScore:   output.AverageScore,
		HighScore:      output.HighScore,
		LowScore:       output.LowScore,
	})
}
