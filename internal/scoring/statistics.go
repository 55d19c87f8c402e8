package scoring

import (
	"github.com/KirkDiggler/strikeout/internal/models"
)

// Statistics aggregates a game for consumers such as the summarizer
type Statistics struct {
	// TotalScore is the game score, nil while bonus rolls are pending
	TotalScore *int

	// Complete indicates the game is finished
	Complete bool

	// Strikes counts closed frames that opened with a strike
	Strikes int

	// Spares counts closed frames that were spared
	Spares int

	// OpenFrames counts closed frames that left pins standing
	OpenFrames int

	// Rolls maps frame number to the rolls recorded in that frame.
	// Frames without rolls are omitted.
	Rolls map[int][]int
}

// Statistics derives the strike, spare and open-frame counts of the result.
// Only closed frames are counted.
func (r *Result) Statistics() *Statistics {
	stats := &Statistics{
		TotalScore: r.Total,
		Complete:   r.Complete,
		Rolls:      make(map[int][]int),
	}

	for _, fs := range r.Frames {
		if len(fs.Rolls) > 0 {
			rolls := make([]int, len(fs.Rolls))
			copy(rolls, fs.Rolls)
			stats.Rolls[fs.Number] = rolls
		}
		if !fs.Closed {
			continue
		}
		switch fs.Kind {
		case KindStrike:
			stats.Strikes++
		case KindSpare:
			stats.Spares++
		default:
			stats.OpenFrames++
		}
	}

	return stats
}

// Summarize is shorthand for Score(frames).Statistics()
func Summarize(frames []models.Frame) *Statistics {
	return Score(frames).Statistics()
}
