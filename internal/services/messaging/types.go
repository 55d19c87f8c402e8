package messaging

// RollOutcome is what a single roll did to its frame
type RollOutcome string

const (
	// OutcomeStrike is ten pins on the first ball of a rack
	OutcomeStrike RollOutcome = "strike"

	// OutcomeSpare clears the rack with the second ball
	OutcomeSpare RollOutcome = "spare"

	// OutcomeGutter knocks nothing down
	OutcomeGutter RollOutcome = "gutter"

	// OutcomeCount is any other roll
	OutcomeCount RollOutcome = "count"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64
}

// GetGameStartMessageInput contains the input for GetGameStartMessage
type GetGameStartMessageInput struct {
	PlayerName string
}

// GetGameStartMessageOutput contains the output for GetGameStartMessage
type GetGameStartMessageOutput struct {
	Title   string
	Message string
}

// GetRollMessageInput contains the input for GetRollMessage
type GetRollMessageInput struct {
	PlayerName string
	Pins       int
	Outcome    RollOutcome

	// FinalScore is set when the roll finished the game
	FinalScore *int
}

// GetRollMessageOutput contains the output for GetRollMessage
type GetRollMessageOutput struct {
	Message string
}

// GetRejectedRollMessageInput contains the input for GetRejectedRollMessage
type GetRejectedRollMessageInput struct {
	PlayerName string
	Frame      int
	Pins       int

	// Reason is the ledger's rejection reason
	Reason string
}

// GetRejectedRollMessageOutput contains the output for GetRejectedRollMessage
type GetRejectedRollMessageOutput struct {
	Title   string
	Message string
}
