// Package ledger records the rolls of a single game and rejects illegal ones.
package ledger

import (
	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/KirkDiggler/strikeout/internal/scoring"
)

// Ledger is the authoritative roll record of one game. It is not safe for
// concurrent use; callers serialize access per game.
type Ledger struct {
	frames   [models.FrameCount]models.Frame
	current  int
	complete bool
}

// New creates an empty ledger positioned at the first frame
func New() *Ledger {
	l := &Ledger{}
	for i := range l.frames {
		l.frames[i] = models.Frame{Number: i + 1, Rolls: []int{}}
	}
	return l
}

// FromFrames rebuilds a ledger from stored frames, validating each of them
func FromFrames(frames []models.Frame) (*Ledger, error) {
	l := New()
	for _, f := range frames {
		if f.Number < 1 || f.Number > models.FrameCount {
			return nil, &RollError{Frame: f.Number, Reason: ReasonTooManyFrames}
		}
		if err := validateFrame(f.Number, f.Rolls); err != nil {
			return nil, err
		}
		l.frames[f.Number-1] = f.Clone()
	}
	l.advance()
	return l, nil
}

// AppendRoll records a roll in the current frame. The cursor moves on when the
// frame closes. Closing the tenth frame completes the game.
func (l *Ledger) AppendRoll(pins int) error {
	frame := &l.frames[l.current]

	if l.complete {
		return &RollError{Frame: frame.Number, Pins: pins, Reason: ReasonGameComplete}
	}
	if err := validateRoll(*frame, pins); err != nil {
		return err
	}

	frame.Rolls = append(frame.Rolls, pins)
	l.advance()
	return nil
}

// ReplaceFrames overwrites frames by position: entry i replaces the rolls of
// frame i+1. Frames past the end of the list are untouched. Every entry is
// validated before anything changes.
func (l *Ledger) ReplaceFrames(frameRolls [][]int) error {
	if len(frameRolls) > models.FrameCount {
		return &RollError{Frame: len(frameRolls), Reason: ReasonTooManyFrames}
	}

	for i, rolls := range frameRolls {
		if err := validateFrame(i+1, rolls); err != nil {
			return err
		}
	}

	for i, rolls := range frameRolls {
		l.frames[i] = models.Frame{Number: i + 1, Rolls: append([]int{}, rolls...)}
	}
	l.advance()
	return nil
}

// Frames returns a copy of the ten frames in order
func (l *Ledger) Frames() []models.Frame {
	out := make([]models.Frame, 0, models.FrameCount)
	for _, f := range l.frames {
		out = append(out, f.Clone())
	}
	return out
}

// CurrentFrame returns the 0-indexed frame the next roll lands in
func (l *Ledger) CurrentFrame() int {
	return l.current
}

// Complete reports whether every frame is closed
func (l *Ledger) Complete() bool {
	return l.complete
}

// TenthFrameState returns the state of the final frame
func (l *Ledger) TenthFrameState() TenthFrameState {
	return tenthState(l.frames[models.FrameCount-1].Rolls)
}

// Score scores the current frames
func (l *Ledger) Score() *scoring.Result {
	return scoring.Score(l.Frames())
}

// advance moves the cursor to the first frame that can still take a roll
func (l *Ledger) advance() {
	for i, f := range l.frames {
		if !scoring.Closed(f) {
			l.current = i
			l.complete = false
			return
		}
	}
	l.current = models.FrameCount - 1
	l.complete = true
}

// validateRoll checks a single roll against the frame it would be added to
func validateRoll(f models.Frame, pins int) error {
	if pins < 0 || pins > models.MaxPins {
		return &RollError{Frame: f.Number, Pins: pins, Reason: ReasonPinsOutOfRange}
	}

	if f.IsTenth() {
		state := tenthState(f.Rolls)
		if _, reason := state.next(f.Rolls, pins); reason != "" {
			return &RollError{Frame: f.Number, Pins: pins, Reason: reason}
		}
		return nil
	}

	if scoring.Closed(f) {
		return &RollError{Frame: f.Number, Pins: pins, Reason: ReasonFrameClosed}
	}
	if len(f.Rolls) == 1 && f.Rolls[0]+pins > models.MaxPins {
		return &RollError{Frame: f.Number, Pins: pins, Reason: ReasonTooManyPins}
	}
	return nil
}

// validateFrame replays a full roll list for a frame
func validateFrame(number int, rolls []int) error {
	f := models.Frame{Number: number, Rolls: make([]int, 0, len(rolls))}
	for _, pins := range rolls {
		if err := validateRoll(f, pins); err != nil {
			return err
		}
		f.Rolls = append(f.Rolls, pins)
	}
	return nil
}
