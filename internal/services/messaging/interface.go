package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGameStartMessage returns a message for when a bowler starts a game
	GetGameStartMessage(ctx context.Context, input *GetGameStartMessageInput) (*GetGameStartMessageOutput, error)

	// GetRollMessage returns a call-out for a recorded roll
	GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error)

	// GetRejectedRollMessage returns a message for a roll the lane refused
	GetRejectedRollMessage(ctx context.Context, input *GetRejectedRollMessageInput) (*GetRejectedRollMessageOutput, error)
}
