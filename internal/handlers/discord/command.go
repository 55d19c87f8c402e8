package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorInfo  = 0x00ff00
	colorWarn  = 0xffa500
	colorError = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// reply is the transport-free result of a command
type reply struct {
	Title       string
	Description string
	Fields      []*discordgo.MessageEmbedField
	Color       int

	// Ephemeral replies are only shown to the invoking user
	Ephemeral bool
}

func (r *reply) embed() *discordgo.MessageEmbed {
	color := r.Color
	if color == 0 {
		color = colorInfo
	}
	return &discordgo.MessageEmbed{
		Title:       r.Title,
		Description: r.Description,
		Color:       color,
		Fields:      r.Fields,
	}
}

// Respond sends a reply as the interaction response
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, r *reply) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{r.embed()},
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondDeferred acknowledges an interaction whose reply will take a while
func RespondDeferred(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// EditDeferred replaces the placeholder of a deferred response
func EditDeferred(s *discordgo.Session, i *discordgo.InteractionCreate, r *reply) error {
	embeds := []*discordgo.MessageEmbed{r.embed()}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &embeds,
	})
	return err
}

