// Package scoring computes ten-pin bowling scores frame by frame.
//
// Bonus rolls for strikes and spares are looked up in the frames that follow.
// When a bonus roll has not been bowled yet the frame's score is left unset,
// and so is every running total from that frame on. Nothing is guessed.
package scoring

import (
	"github.com/KirkDiggler/strikeout/internal/models"
)

// FrameScore is the scored view of a single frame
type FrameScore struct {
	// Number is the 1-based frame number
	Number int

	// Rolls are the pins knocked down by each roll of the frame
	Rolls []int

	// Kind classifies the frame
	Kind Kind

	// Closed indicates the frame can take no further rolls
	Closed bool

	// Score is the frame's contribution, nil while bonus rolls are pending
	Score *int

	// Running is the cumulative score through this frame, nil once any frame
	// up to here is pending
	Running *int
}

// Result is the score of a whole game
type Result struct {
	// Frames holds the ten scored frames in order
	Frames []FrameScore

	// Total is the game score, nil while any bonus roll is pending
	Total *int

	// Complete indicates every frame is closed and the total is final
	Complete bool
}

// Score computes the score of a game from its frames. Frames are matched by
// number, so missing frames count as empty. Score never modifies its input.
func Score(frames []models.Frame) *Result {
	sheet := normalize(frames)

	result := &Result{
		Frames:   make([]FrameScore, 0, models.FrameCount),
		Complete: true,
	}

	total := 0
	pending := false
	for i := range sheet {
		f := sheet[i]
		fs := FrameScore{
			Number: f.Number,
			Rolls:  f.Clone().Rolls,
			Kind:   Classify(f),
			Closed: Closed(f),
		}
		if !fs.Closed {
			result.Complete = false
		}

		if value, ok := frameValue(&sheet, i); ok {
			fs.Score = intPtr(value)
			if !pending {
				total += value
				fs.Running = intPtr(total)
			}
		} else {
			pending = true
		}

		result.Frames = append(result.Frames, fs)
	}

	if pending {
		result.Complete = false
		return result
	}
	result.Total = intPtr(total)
	return result
}

// frameValue returns the contribution of frame i and whether it is known
func frameValue(sheet *[models.FrameCount]models.Frame, i int) (int, bool) {
	f := sheet[i]

	if f.IsTenth() {
		// Frame 10 carries its own bonus rolls
		if (IsStrike(f) || IsSpare(f)) && len(f.Rolls) < 3 {
			return 0, false
		}
		return f.Sum(), true
	}

	switch Classify(f) {
	case KindStrike:
		bonus, ok := bonusRolls(sheet, i, 2)
		if !ok {
			return 0, false
		}
		return models.MaxPins + sum(bonus), true
	case KindSpare:
		bonus, ok := bonusRolls(sheet, i, 1)
		if !ok {
			return 0, false
		}
		return models.MaxPins + sum(bonus), true
	default:
		return f.Sum(), true
	}
}

// bonusRolls collects the next n rolls after frame i. Lookahead stops at the
// first frame that is still open, since no later frame can hold rolls bowled
// before it.
func bonusRolls(sheet *[models.FrameCount]models.Frame, i, n int) ([]int, bool) {
	rolls := make([]int, 0, n)
	for j := i + 1; j < models.FrameCount && len(rolls) < n; j++ {
		next := sheet[j]
		for _, pins := range next.Rolls {
			if len(rolls) == n {
				break
			}
			rolls = append(rolls, pins)
		}
		if !Closed(next) {
			break
		}
	}
	return rolls, len(rolls) == n
}

func sum(rolls []int) int {
	total := 0
	for _, pins := range rolls {
		total += pins
	}
	return total
}

func intPtr(v int) *int {
	return &v
}
