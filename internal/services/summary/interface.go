package summary

//go:generate mockgen -package=mocks -destination=mocks/mock_summarizer.go github.com/KirkDiggler/strikeout/internal/services/summary Summarizer,Service

import "context"

// Summarizer turns a prompt into commentary using one language model
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Service picks a summarizer by model key and summarizes a game with it
type Service interface {
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)
}
