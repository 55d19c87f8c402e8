package ledger

import (
	"github.com/KirkDiggler/strikeout/internal/models"
)

// TenthFrameState is the position of the final frame's state machine
type TenthFrameState string

const (
	// TenthAwaitingRoll1 indicates no rolls in the tenth frame yet
	TenthAwaitingRoll1 TenthFrameState = "awaiting_roll_1"

	// TenthAwaitingRoll2 indicates the first roll is in
	TenthAwaitingRoll2 TenthFrameState = "awaiting_roll_2"

	// TenthAwaitingBonusRoll indicates a strike or spare earned a third roll
	TenthAwaitingBonusRoll TenthFrameState = "awaiting_bonus_roll"

	// TenthClosed is terminal
	TenthClosed TenthFrameState = "closed"
)

// tenthState replays the rolls through the state machine and returns where it
// ends up. Rolls are assumed legal.
func tenthState(rolls []int) TenthFrameState {
	state := TenthAwaitingRoll1
	for i := range rolls {
		state, _ = state.next(rolls[:i], rolls[i])
	}
	return state
}

// next returns the state after rolling pins given the prior rolls of the frame.
// The returned reason is empty when the roll is legal.
func (s TenthFrameState) next(prior []int, pins int) (TenthFrameState, string) {
	switch s {
	case TenthAwaitingRoll1:
		return TenthAwaitingRoll2, ""

	case TenthAwaitingRoll2:
		first := prior[0]
		if first == models.MaxPins {
			// Fresh rack after a strike
			return TenthAwaitingBonusRoll, ""
		}
		switch total := first + pins; {
		case total > models.MaxPins:
			return s, ReasonTooManyPins
		case total == models.MaxPins:
			return TenthAwaitingBonusRoll, ""
		default:
			return TenthClosed, ""
		}

	case TenthAwaitingBonusRoll:
		if standing := standingForBonus(prior); pins > standing {
			return s, ReasonTooManyPins
		}
		return TenthClosed, ""

	default:
		return s, ReasonFrameClosed
	}
}

// standingForBonus returns how many pins are up for the third roll
func standingForBonus(prior []int) int {
	first, second := prior[0], prior[1]
	if first == models.MaxPins && second < models.MaxPins {
		// Second roll was the first ball at a fresh rack
		return models.MaxPins - second
	}
	return models.MaxPins
}
