package api

import (
	"time"

	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/KirkDiggler/strikeout/internal/scoring"
	"github.com/KirkDiggler/strikeout/internal/services/game"
)

type frameView struct {
	Frame   int          `json:"frame"`
	Rolls   []int        `json:"rolls"`
	Kind    scoring.Kind `json:"kind"`
	Closed  bool         `json:"closed"`
	Score   *int         `json:"score"`
	Running *int         `json:"running"`
}

type scoreView struct {
	GameID       string      `json:"gameId,omitempty"`
	Score        *int        `json:"score"`
	Complete     bool        `json:"complete"`
	CurrentFrame int         `json:"currentFrame"`
	Frames       []frameView `json:"frames"`
}

type gameView struct {
	ID           string      `json:"id"`
	PlayerID     string      `json:"playerId"`
	Player       string      `json:"player"`
	CurrentFrame int         `json:"currentFrame"`
	Complete     bool        `json:"complete"`
	Score        *int        `json:"score"`
	Frames       []frameView `json:"frames"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type statisticsView struct {
	TotalScore *int          `json:"totalScore"`
	Complete   bool          `json:"complete"`
	Strikes    int           `json:"strikes"`
	Spares     int           `json:"spares"`
	OpenFrames int           `json:"openFrames"`
	Rolls      map[int][]int `json:"rolls"`
}

type playerStatisticsView struct {
	PlayerID       string  `json:"playerId"`
	Player         string  `json:"player"`
	GamesPlayed    int     `json:"gamesPlayed"`
	GamesCompleted int     `json:"gamesCompleted"`
	TotalScore     int     `json:"totalScore"`
	AverageScore   float64 `json:"averageScore"`
	HighScore      int     `json:"highScore"`
	LowScore       int     `json:"lowScore"`
}

func newFrameViews(frames []scoring.FrameScore) []frameView {
	views := make([]frameView, 0, len(frames))
	for _, f := range frames {
		rolls := f.Rolls
		if rolls == nil {
			rolls = []int{}
		}
		views = append(views, frameView{
			Frame:   f.Number,
			Rolls:   rolls,
			Kind:    f.Kind,
			Closed:  f.Closed,
			Score:   f.Score,
			Running: f.Running,
		})
	}
	return views
}

func newScoreView(gameID string, snap *game.ScoreSnapshot) scoreView {
	return scoreView{
		GameID:       gameID,
		Score:        snap.Score,
		Complete:     snap.Complete,
		CurrentFrame: snap.CurrentFrame,
		Frames:       newFrameViews(snap.Frames),
	}
}

func newGameView(g *models.Game, snap *game.ScoreSnapshot) gameView {
	return gameView{
		ID:           g.ID,
		PlayerID:     g.PlayerID,
		Player:       g.PlayerName,
		CurrentFrame: snap.CurrentFrame,
		Complete:     snap.Complete,
		Score:        snap.Score,
		Frames:       newFrameViews(snap.Frames),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func newStatisticsView(stats *scoring.Statistics) statisticsView {
	rolls := stats.Rolls
	if rolls == nil {
		rolls = map[int][]int{}
	}
	return statisticsView{
		TotalScore: stats.TotalScore,
		Complete:   stats.Complete,
		Strikes:    stats.Strikes,
		Spares:     stats.Spares,
		OpenFrames: stats.OpenFrames,
		Rolls:      rolls,
	}
}
