package summary

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultOpenAIModel     = "gpt-4o"
	defaultOpenAIMaxTokens = 300
)

// ErrMissingAPIKey is returned when the OpenAI summarizer has no credentials
var ErrMissingAPIKey = errors.New("openai api key is required")

// errNoChoices is returned when a completion carries no message
var errNoChoices = errors.New("completion returned no choices")

// OpenAIConfig configures the chat-completions summarizer
type OpenAIConfig struct {
	APIKey string

	// Model is the chat model, gpt-4o when empty
	Model string

	// BaseURL overrides the API endpoint
	BaseURL string

	// MaxTokens caps the completion length
	MaxTokens int64

	// MaxRetries is handed to the client's own retry loop
	MaxRetries int

	HTTPClient *http.Client
}

// openAISummarizer implements Summarizer on the chat completions API
type openAISummarizer struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// NewOpenAI creates a summarizer backed by OpenAI chat completions
func NewOpenAI(cfg *OpenAIConfig) (*openAISummarizer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultOpenAIMaxTokens
	}

	return &openAISummarizer{
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Summarize sends the prompt as a single user message
func (o *openAISummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:               openai.ChatModel(o.model),
		MaxCompletionTokens: openai.Int(o.maxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errNoChoices
	}

	return completion.Choices[0].Message.Content, nil
}
