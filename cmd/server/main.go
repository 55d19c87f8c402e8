package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	"github.com/KirkDiggler/strikeout/internal/config"
	"github.com/KirkDiggler/strikeout/internal/handlers/api"
	"github.com/KirkDiggler/strikeout/internal/handlers/discord"
	"github.com/KirkDiggler/strikeout/internal/repositories/game"
	"github.com/KirkDiggler/strikeout/internal/repositories/player"
	gameService "github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/KirkDiggler/strikeout/internal/services/summary"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, _ := cfg.Level()
	logger = logger.Level(level)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
		MaxRetries:  cfg.UpdateMaxRetries,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game repository")
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create player repository")
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		PlayerRepo:    playerRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game service")
	}

	// Initialize summarizers. Models without a backend report unavailable.
	summarizers := map[string]summary.Summarizer{}
	if cfg.OpenAIEnabled() {
		gpt, err := summary.NewOpenAI(&summary.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create OpenAI summarizer")
		}
		summarizers[summary.ModelGPT] = gpt
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, summaries are unavailable")
	}

	summarySvc, err := summary.New(&summary.Config{
		Summarizers:  summarizers,
		DefaultModel: cfg.Summary.DefaultModel,
		Timeout:      cfg.Summary.Timeout,
		Logger:       logger.With().Str("component", "summary").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create summary service")
	}

	apiServer, err := api.New(&api.Config{
		GameService:    gameSvc,
		SummaryService: summarySvc,
		Logger:         logger.With().Str("component", "http").Logger(),
		CORSOrigin:     cfg.CORSOrigin,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create HTTP server")
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Start the Discord bot when configured
	var bot *discord.Bot
	if cfg.DiscordEnabled() {
		bot, err = discord.New(&discord.Config{
			Token:          cfg.Discord.Token,
			ApplicationID:  cfg.Discord.ApplicationID,
			GuildID:        cfg.Discord.GuildID,
			GameService:    gameSvc,
			SummaryService: summarySvc,
			Logger:         logger.With().Str("component", "discord").Logger(),
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Discord bot")
		}
		if err := bot.Start(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to start Discord bot")
		}
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case <-sc:
	case err := <-serveErr:
		if err != nil {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}

	logger.Info().Msg("Shutting down")

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.Error().Err(err).Msg("Error stopping bot")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error stopping HTTP server")
	}
}
