// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every setting the server reads at startup
type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	Redis Redis

	OpenAI  OpenAI
	Summary Summary

	// UpdateMaxRetries bounds the compare-and-swap retries of a game update
	UpdateMaxRetries int `env:"UPDATE_MAX_RETRIES" envDefault:"10"`

	Discord Discord
}

// Redis configures the game store
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// OpenAI configures the gpt summarizer. It is disabled without an API key.
type OpenAI struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	BaseURL string `env:"OPENAI_BASE_URL"`
}

// Summary configures model selection for summaries
type Summary struct {
	Timeout      time.Duration `env:"SUMMARY_TIMEOUT" envDefault:"15s"`
	DefaultModel string        `env:"SUMMARY_DEFAULT_MODEL" envDefault:"gpt"`
}

// Discord configures the optional chat bot. It is disabled without a token.
type Discord struct {
	Token         string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"DISCORD_APPLICATION_ID"`
	GuildID       string `env:"DISCORD_GUILD_ID"`
}

// Load reads an optional .env file and parses the environment. Values already
// set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.UpdateMaxRetries < 1 {
		return nil, fmt.Errorf("UPDATE_MAX_RETRIES must be at least 1, got %d", cfg.UpdateMaxRetries)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level returns the configured log level
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// OpenAIEnabled reports whether the gpt summarizer can be built
func (c *Config) OpenAIEnabled() bool {
	return c.OpenAI.APIKey != ""
}

// DiscordEnabled reports whether the chat bot should start
func (c *Config) DiscordEnabled() bool {
	return c.Discord.Token != ""
}
