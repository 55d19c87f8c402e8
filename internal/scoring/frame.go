package scoring

import (
	"github.com/KirkDiggler/strikeout/internal/models"
)

// Kind classifies a frame by how its pins went down
type Kind string

const (
	// KindEmpty indicates no rolls have been recorded for the frame
	KindEmpty Kind = "empty"

	// KindInProgress indicates the frame has rolls but its outcome is not yet decided
	KindInProgress Kind = "in_progress"

	// KindStrike indicates all ten pins fell on the first roll
	KindStrike Kind = "strike"

	// KindSpare indicates all ten pins fell across the first two rolls
	KindSpare Kind = "spare"

	// KindOpen indicates pins were left standing after two rolls
	KindOpen Kind = "open"
)

// IsStrike reports whether the first roll of the frame knocked down every pin
func IsStrike(f models.Frame) bool {
	return len(f.Rolls) >= 1 && f.Rolls[0] == models.MaxPins
}

// IsSpare reports whether the first two rolls of the frame knocked down every pin
// without the first being a strike
func IsSpare(f models.Frame) bool {
	return len(f.Rolls) >= 2 && !IsStrike(f) && f.Rolls[0]+f.Rolls[1] == models.MaxPins
}

// Closed reports whether the frame can take no further rolls.
//
// Frames 1-9 close on a strike or after two rolls. Frame 10 closes after two
// rolls that leave pins standing, or after the third roll earned by a strike
// or spare.
func Closed(f models.Frame) bool {
	if f.IsTenth() {
		switch len(f.Rolls) {
		case 3:
			return true
		case 2:
			return f.Rolls[0]+f.Rolls[1] < models.MaxPins
		default:
			return false
		}
	}
	return IsStrike(f) || len(f.Rolls) >= 2
}

// Classify returns the kind of the frame. The tenth frame is classified by its
// first two rolls; its bonus roll does not change the kind.
func Classify(f models.Frame) Kind {
	switch {
	case len(f.Rolls) == 0:
		return KindEmpty
	case IsStrike(f):
		return KindStrike
	case len(f.Rolls) == 1:
		return KindInProgress
	case IsSpare(f):
		return KindSpare
	default:
		return KindOpen
	}
}

// normalize places frames by number into a fixed ten-slot array. Frames with
// numbers outside 1-10 are ignored.
func normalize(frames []models.Frame) [models.FrameCount]models.Frame {
	var out [models.FrameCount]models.Frame
	for i := range out {
		out[i] = models.Frame{Number: i + 1}
	}
	for _, f := range frames {
		if f.Number < 1 || f.Number > models.FrameCount {
			continue
		}
		out[f.Number-1] = f.Clone()
	}
	return out
}
