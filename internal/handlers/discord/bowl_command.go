package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/strikeout/internal/ledger"
	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/KirkDiggler/strikeout/internal/services/messaging"
	"github.com/KirkDiggler/strikeout/internal/services/summary"
)

const (
	subcommandStart   = "start"
	subcommandRoll    = "roll"
	subcommandScore   = "score"
	subcommandSummary = "summary"
	subcommandStats   = "stats"

	optionPins  = "pins"
	optionModel = "model"

	commandTimeout = 30 * time.Second
)

// BowlCommand handles the /bowl command
type BowlCommand struct {
	BaseCommand
	gameService      game.Service
	summaryService   summary.Service
	messagingService messaging.Service
	logger           zerolog.Logger
}

// bowlRequest is a parsed /bowl invocation
type bowlRequest struct {
	Subcommand string
	UserID     string
	Username   string
	Pins       int
	Model      string
}

// NewBowlCommand creates a new bowl command handler
func NewBowlCommand(gameService game.Service, summaryService summary.Service, messagingService messaging.Service, logger zerolog.Logger) *BowlCommand {
	minPins := float64(0)

	modelChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(summary.KnownModels))
	for _, model := range summary.KnownModels {
		modelChoices = append(modelChoices, &discordgo.ApplicationCommandOptionChoice{Name: model, Value: model})
	}

	return &BowlCommand{
		BaseCommand: BaseCommand{
			Name:        "bowl",
			Description: "Ten-pin bowling scorekeeper",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStart,
					Description: "Start a new game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRoll,
					Description: "Record a roll in your current game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionPins,
							Description: "Pins knocked down",
							Required:    true,
							MinValue:    &minPins,
							MaxValue:    models.MaxPins,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandScore,
					Description: "Show your scoresheet",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSummary,
					Description: "Get a commentary on your current game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionModel,
							Description: "Model to summarize with",
							Choices:     modelChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStats,
					Description: "Show your statistics across games",
				},
			},
		},
		gameService:      gameService,
		summaryService:   summaryService,
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the bowl command
func (c *BowlCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	req := parseRequest(i, data.Options[0])

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	// Summaries can outlast the interaction deadline
	deferred := req.Subcommand == subcommandSummary
	if deferred {
		if err := RespondDeferred(s, i); err != nil {
			return err
		}
	}

	r, err := c.execute(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).Str("subcommand", req.Subcommand).Str("user_id", req.UserID).Msg("bowl command failed")
		r = &reply{
			Title:       "Error",
			Description: "Something went wrong keeping score. Try again in a moment.",
			Color:       colorError,
			Ephemeral:   true,
		}
	}

	if deferred {
		return EditDeferred(s, i, r)
	}
	return Respond(s, i, r)
}

func parseRequest(i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) *bowlRequest {
	req := &bowlRequest{Subcommand: sub.Name}

	switch {
	case i.Member != nil && i.Member.User != nil:
		req.UserID = i.Member.User.ID
		req.Username = i.Member.User.Username
		if i.Member.Nick != "" {
			req.Username = i.Member.Nick
		}
	case i.User != nil:
		req.UserID = i.User.ID
		req.Username = i.User.Username
	}

	for _, opt := range sub.Options {
		switch opt.Name {
		case optionPins:
			req.Pins = int(opt.IntValue())
		case optionModel:
			req.Model = opt.StringValue()
		}
	}

	return req
}

// execute runs a subcommand. Expected failures become ephemeral replies; the
// returned error is reserved for store failures.
func (c *BowlCommand) execute(ctx context.Context, req *bowlRequest) (*reply, error) {
	switch req.Subcommand {
	case subcommandStart:
		return c.start(ctx, req)
	case subcommandRoll:
		return c.roll(ctx, req)
	case subcommandScore:
		return c.score(ctx, req)
	case subcommandSummary:
		return c.summarize(ctx, req)
	case subcommandStats:
		return c.stats(ctx, req)
	default:
		return nil, fmt.Errorf("unknown subcommand %q", req.Subcommand)
	}
}

func (c *BowlCommand) start(ctx context.Context, req *bowlRequest) (*reply, error) {
	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		PlayerID:   req.UserID,
		PlayerName: req.Username,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messagingService.GetGameStartMessage(ctx, &messaging.GetGameStartMessageInput{
		PlayerName: output.Game.PlayerName,
	})
	if err != nil {
		return nil, err
	}

	return &reply{
		Title:       msg.Title,
		Description: msg.Message,
	}, nil
}

func (c *BowlCommand) roll(ctx context.Context, req *bowlRequest) (*reply, error) {
	current, r, err := c.currentGame(ctx, req)
	if r != nil || err != nil {
		return r, err
	}

	output, err := c.gameService.RecordRoll(ctx, &game.RecordRollInput{
		GameID: current.Game.ID,
		Pins:   req.Pins,
	})
	var rollErr *ledger.RollError
	if errors.As(err, &rollErr) {
		msg, err := c.messagingService.GetRejectedRollMessage(ctx, &messaging.GetRejectedRollMessageInput{
			PlayerName: current.Game.PlayerName,
			Frame:      rollErr.Frame,
			Pins:       rollErr.Pins,
			Reason:     rollErr.Reason,
		})
		if err != nil {
			return nil, err
		}
		return &reply{
			Title:       msg.Title,
			Description: msg.Message,
			Color:       colorWarn,
			Ephemeral:   true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	input := &messaging.GetRollMessageInput{
		PlayerName: output.Game.PlayerName,
		Pins:       req.Pins,
		Outcome:    lastRollOutcome(output.Score.Frames),
	}
	if output.Score.Complete {
		input.FinalScore = output.Score.Score
	}
	callout, err := c.messagingService.GetRollMessage(ctx, input)
	if err != nil {
		return nil, err
	}

	r = renderScore(output.Game.PlayerName, output.Score)
	r.Description = callout.Message + "\n" + r.Description
	return r, nil
}

func (c *BowlCommand) score(ctx context.Context, req *bowlRequest) (*reply, error) {
	current, r, err := c.currentGame(ctx, req)
	if r != nil || err != nil {
		return r, err
	}

	return renderScore(current.Game.PlayerName, current.Score), nil
}

func (c *BowlCommand) summarize(ctx context.Context, req *bowlRequest) (*reply, error) {
	current, r, err := c.currentGame(ctx, req)
	if r != nil || err != nil {
		return r, err
	}

	stats, err := c.gameService.GetGameStatistics(ctx, &game.GetGameStatisticsInput{GameID: current.Game.ID})
	if err != nil {
		return nil, err
	}

	output, err := c.summaryService.Summarize(ctx, &summary.SummarizeInput{
		GameID:     stats.GameID,
		PlayerName: stats.PlayerName,
		Model:      req.Model,
		Statistics: stats.Statistics,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("game_id", stats.GameID).Str("model", req.Model).Msg("summary unavailable")
		return &reply{
			Title:       "No commentary right now",
			Description: "The summarizer is unavailable. Your score is safe.",
			Fields:      renderStatistics(stats.Statistics),
			Color:       colorWarn,
		}, nil
	}

	return renderSummary(stats.PlayerName, output, stats.Statistics), nil
}

func (c *BowlCommand) stats(ctx context.Context, req *bowlRequest) (*reply, error) {
	output, err := c.gameService.GetPlayerStatistics(ctx, &game.GetPlayerStatisticsInput{PlayerID: req.UserID})
	if errors.Is(err, game.ErrPlayerNotFound) {
		return noGameReply(), nil
	}
	if err != nil {
		return nil, err
	}

	return renderPlayerStatistics(output), nil
}

// currentGame looks up the invoking user's game. A non-nil reply means there
// is nothing to act on.
func (c *BowlCommand) currentGame(ctx context.Context, req *bowlRequest) (*game.GetGameOutput, *reply, error) {
	output, err := c.gameService.GetCurrentGame(ctx, &game.GetCurrentGameInput{PlayerID: req.UserID})
	switch {
	case errors.Is(err, game.ErrGameNotFound), errors.Is(err, game.ErrPlayerNotFound), errors.Is(err, game.ErrInvalidInput):
		return nil, noGameReply(), nil
	case err != nil:
		return nil, nil, err
	}
	return output, nil, nil
}

func noGameReply() *reply {
	return &reply{
		Title:       "No game in progress",
		Description: "Start one with `/bowl start`.",
		Color:       colorWarn,
		Ephemeral:   true,
	}
}
