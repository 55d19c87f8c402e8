package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/KirkDiggler/strikeout/internal/scoring"
	"github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/KirkDiggler/strikeout/internal/services/messaging"
	"github.com/KirkDiggler/strikeout/internal/services/summary"
)

// frameMarks renders rolls in scoresheet notation: X for a strike, / for a
// spare and - for a miss
func frameMarks(rolls []int) string {
	var b strings.Builder
	standing := models.MaxPins
	fresh := true

	for _, pins := range rolls {
		switch {
		case fresh && pins == models.MaxPins:
			b.WriteString("X")
		case !fresh && pins == standing:
			b.WriteString("/")
			standing = models.MaxPins
			fresh = true
		default:
			if pins == 0 {
				b.WriteString("-")
			} else {
				b.WriteString(strconv.Itoa(pins))
			}
			if fresh {
				standing = models.MaxPins - pins
				fresh = false
			} else {
				standing = models.MaxPins
				fresh = true
			}
		}
	}

	return b.String()
}

// lastRollOutcome classifies the most recent roll on the sheet
func lastRollOutcome(frames []scoring.FrameScore) messaging.RollOutcome {
	for i := len(frames) - 1; i >= 0; i-- {
		marks := frameMarks(frames[i].Rolls)
		if marks == "" {
			continue
		}
		switch marks[len(marks)-1] {
		case 'X':
			return messaging.OutcomeStrike
		case '/':
			return messaging.OutcomeSpare
		case '-':
			return messaging.OutcomeGutter
		default:
			return messaging.OutcomeCount
		}
	}
	return messaging.OutcomeCount
}

// renderSheet renders the ten frames as a fixed-width scoresheet
func renderSheet(frames []scoring.FrameScore) string {
	var header, marks, totals strings.Builder
	header.WriteString("Frame ")
	marks.WriteString("Rolls ")
	totals.WriteString("Total ")

	for _, f := range frames {
		width := 4
		if f.Number == models.FrameCount {
			width = 5
		}

		running := ""
		if f.Running != nil && len(f.Rolls) > 0 {
			running = strconv.Itoa(*f.Running)
		}

		fmt.Fprintf(&header, "%-*d", width, f.Number)
		fmt.Fprintf(&marks, "%-*s", width, frameMarks(f.Rolls))
		fmt.Fprintf(&totals, "%-*s", width, running)
	}

	return "```\n" +
		strings.TrimRight(header.String(), " ") + "\n" +
		strings.TrimRight(marks.String(), " ") + "\n" +
		strings.TrimRight(totals.String(), " ") + "\n```"
}

func scoreText(snap *game.ScoreSnapshot) string {
	switch {
	case snap.Score == nil:
		return "waiting on bonus rolls"
	case snap.Complete:
		return fmt.Sprintf("%d (final)", *snap.Score)
	default:
		return strconv.Itoa(*snap.Score)
	}
}

func renderScore(playerName string, snap *game.ScoreSnapshot) *reply {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Score", Value: scoreText(snap), Inline: true},
	}
	if !snap.Complete {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Up next",
			Value:  fmt.Sprintf("Frame %d", snap.CurrentFrame),
			Inline: true,
		})
	}

	title := fmt.Sprintf("%s's game", playerName)
	if snap.Complete {
		title = fmt.Sprintf("%s finished!", playerName)
	}

	return &reply{
		Title:       title,
		Description: renderSheet(snap.Frames),
		Fields:      fields,
	}
}

func renderStatistics(stats *scoring.Statistics) []*discordgo.MessageEmbedField {
	total := "in progress"
	if stats.TotalScore != nil {
		total = strconv.Itoa(*stats.TotalScore)
	}
	return []*discordgo.MessageEmbedField{
		{Name: "Score", Value: total, Inline: true},
		{Name: "Strikes", Value: strconv.Itoa(stats.Strikes), Inline: true},
		{Name: "Spares", Value: strconv.Itoa(stats.Spares), Inline: true},
		{Name: "Open frames", Value: strconv.Itoa(stats.OpenFrames), Inline: true},
	}
}

func renderSummary(playerName string, output *summary.SummarizeOutput, stats *scoring.Statistics) *reply {
	return &reply{
		Title:       fmt.Sprintf("%s's game, as told by %s", playerName, output.Model),
		Description: output.Summary,
		Fields:      renderStatistics(stats),
	}
}

func renderPlayerStatistics(output *game.GetPlayerStatisticsOutput) *reply {
	if output.GamesCompleted == 0 {
		return &reply{
			Title:       fmt.Sprintf("%s's stats", output.PlayerName),
			Description: fmt.Sprintf("%d games started, none finished yet.", output.GamesPlayed),
		}
	}

	return &reply{
		Title: fmt.Sprintf("%s's stats", output.PlayerName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Games", Value: fmt.Sprintf("%d finished of %d", output.GamesCompleted, output.GamesPlayed), Inline: true},
			{Name: "Average", Value: fmt.Sprintf("%.1f", output.AverageScore), Inline: true},
			{Name: "High", Value: strconv.Itoa(output.HighScore), Inline: true},
			{Name: "Low", Value: strconv.Itoa(output.LowScore), Inline: true},
		},
	}
}
