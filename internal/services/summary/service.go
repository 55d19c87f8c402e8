package summary

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	summarizers  map[string]Summarizer
	defaultModel string
	timeout      time.Duration
	logger       zerolog.Logger
}

// New creates a new summary service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	defaultModel := normalizeModel(cfg.DefaultModel)
	if defaultModel == "" {
		defaultModel = ModelGPT
	}
	if !isKnownModel(defaultModel) {
		return nil, fmt.Errorf("%w: default model %q", ErrUnsupportedModel, cfg.DefaultModel)
	}

	summarizers := make(map[string]Summarizer, len(cfg.Summarizers))
	for key, summarizer := range cfg.Summarizers {
		model := normalizeModel(key)
		if !isKnownModel(model) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, key)
		}
		if summarizer == nil {
			continue
		}
		summarizers[model] = summarizer
	}

	return &service{
		summarizers:  summarizers,
		defaultModel: defaultModel,
		timeout:      cfg.Timeout,
		logger:       cfg.Logger.With().Str("component", "summary").Logger(),
	}, nil
}

// Summarize asks the requested model for commentary on a game. Any failure is
// reported as ErrSummaryUnavailable.
func (s *service) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if input == nil || input.Statistics == nil {
		return nil, ErrMissingStatistics
	}

	model := normalizeModel(input.Model)
	if model == "" {
		model = s.defaultModel
	}
	if !isKnownModel(model) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, input.Model)
	}

	summarizer, ok := s.summarizers[model]
	if !ok {
		return nil, fmt.Errorf("%w: model %q is not implemented", ErrSummaryUnavailable, model)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := summarizer.Summarize(ctx, buildPrompt(input))
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("game_id", input.GameID).
			Str("model", model).
			Dur("elapsed", time.Since(start)).
			Msg("summarizer failed")
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: model %q returned no text", ErrSummaryUnavailable, model)
	}

	s.logger.Debug().
		Str("game_id", input.GameID).
		Str("model", model).
		Dur("elapsed", time.Since(start)).
		Msg("summary generated")

	return &SummarizeOutput{
		Summary: text,
		Model:   model,
	}, nil
}

func normalizeModel(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func isKnownModel(key string) bool {
	return slices.Contains(KnownModels, key)
}
