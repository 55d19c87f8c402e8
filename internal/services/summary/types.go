package summary

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/strikeout/internal/scoring"
)

// Model keys callers can ask for
const (
	ModelGPT   = "gpt"
	ModelBERT  = "bert"
	ModelT5    = "t5"
	ModelLlama = "llama"
)

// KnownModels lists every model key the service recognizes
var KnownModels = []string{ModelGPT, ModelBERT, ModelT5, ModelLlama}

// Config holds configuration for the summary service
type Config struct {
	// Summarizers maps model keys to implementations. Known keys without an
	// entry report ErrSummaryUnavailable.
	Summarizers map[string]Summarizer

	// DefaultModel is used when the caller names no model
	DefaultModel string

	// Timeout bounds a single summarizer call. Zero means no extra bound.
	Timeout time.Duration

	Logger zerolog.Logger
}

// SummarizeInput contains the game to summarize
type SummarizeInput struct {
	GameID     string
	PlayerName string

	// Model is the model key, DefaultModel when empty
	Model string

	Statistics *scoring.Statistics
}

// SummarizeOutput contains the generated commentary
type SummarizeOutput struct {
	Summary string

	// Model is the model key that produced the summary
	Model string
}
