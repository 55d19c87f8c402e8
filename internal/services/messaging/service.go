package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/strikeout/internal/ledger"
)

// ErrNilInput is returned when a message is requested without input
var ErrNilInput = errors.New("input cannot be nil")

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick returns a random entry. rand.Rand is not safe for concurrent use.
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetGameStartMessage returns a message for when a bowler starts a game
func (s *service) GetGameStartMessage(ctx context.Context, input *GetGameStartMessageInput) (*GetGameStartMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := []string{
		"Shoes laced, ball polished. Record each roll with `/bowl roll pins:<0-10>`.",
		"Fresh sheet, ten frames. Record each roll with `/bowl roll pins:<0-10>`.",
		"The pinsetter is ready when you are. Record each roll with `/bowl roll pins:<0-10>`.",
		"Mind the foul line. Record each roll with `/bowl roll pins:<0-10>`.",
	}

	return &GetGameStartMessageOutput{
		Title:   fmt.Sprintf("%s steps up to the lane", input.PlayerName),
		Message: s.pick(messages),
	}, nil
}

// GetRollMessage returns a call-out for a recorded roll
func (s *service) GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.FinalScore != nil {
		return &GetRollMessageOutput{Message: s.gameOverMessage(input.PlayerName, *input.FinalScore)}, nil
	}

	var messages []string
	switch input.Outcome {
	case OutcomeStrike:
		messages = []string{
			"STRIKE! Every pin in the pit.",
			fmt.Sprintf("Right in the pocket, %s. Strike!", input.PlayerName),
			"X marks the spot.",
			"That rack never stood a chance.",
		}
	case OutcomeSpare:
		messages = []string{
			"Spare! Picked up clean.",
			fmt.Sprintf("Nice conversion, %s.", input.PlayerName),
			"Mopped up the leftovers. Spare.",
		}
	case OutcomeGutter:
		messages = []string{
			"Gutter ball. It happens to the best of us.",
			"That one took the scenic route.",
			fmt.Sprintf("Shake it off, %s.", input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%d down.", input.Pins),
			fmt.Sprintf("%d pins. Keep it rolling.", input.Pins),
			fmt.Sprintf("Chalk up %d.", input.Pins),
		}
	}

	return &GetRollMessageOutput{Message: s.pick(messages)}, nil
}

func (s *service) gameOverMessage(playerName string, score int) string {
	var messages []string
	switch {
	case score == 300:
		messages = []string{
			"PERFECT GAME. Twelve strikes. Frame that sheet.",
			fmt.Sprintf("300! %s, that is as good as it gets.", playerName),
		}
	case score >= 200:
		messages = []string{
			fmt.Sprintf("%d. That is a big night on the lanes.", score),
			fmt.Sprintf("Over 200, %s. Take a bow.", playerName),
		}
	case score == 0:
		messages = []string{
			"Zero. Bold strategy.",
			"A clean sheet, in the worst way.",
		}
	default:
		messages = []string{
			fmt.Sprintf("Game over. %d on the board.", score),
			fmt.Sprintf("That's a wrap, %s: %d.", playerName, score),
			fmt.Sprintf("Final frame in the books. %d.", score),
		}
	}
	return s.pick(messages)
}

// GetRejectedRollMessage returns a message for a roll the lane refused
func (s *service) GetRejectedRollMessage(ctx context.Context, input *GetRejectedRollMessageInput) (*GetRejectedRollMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch input.Reason {
	case ledger.ReasonTooManyPins:
		messages = []string{
			fmt.Sprintf("There aren't %d pins left standing in frame %d.", input.Pins, input.Frame),
			fmt.Sprintf("Frame %d can't take %d more. Count again?", input.Frame, input.Pins),
		}
	case ledger.ReasonGameComplete, ledger.ReasonTooManyFrames:
		messages = []string{
			"This game is in the books. Start a new one with `/bowl start`.",
			"No frames left. `/bowl start` for another game.",
		}
	case ledger.ReasonPinsOutOfRange:
		messages = []string{
			"A rack has ten pins. Pick a number from 0 to 10.",
		}
	default:
		messages = []string{
			fmt.Sprintf("Frame %d: %s.", input.Frame, input.Reason),
		}
	}

	return &GetRejectedRollMessageOutput{
		Title:   "That roll doesn't count",
		Message: s.pick(messages),
	}, nil
}
