package summary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const promptIntro = "You are a bowling commentator. Summarize the game below in a few short sentences. " +
	"Call out strikes, spares and any trend in the rolls."

// buildPrompt renders the frames and statistics of a game as plain text
func buildPrompt(input *SummarizeInput) string {
	stats := input.Statistics

	var b strings.Builder
	b.WriteString(promptIntro)
	b.WriteString("\n\n")

	if input.PlayerName != "" {
		fmt.Fprintf(&b, "Bowler: %s\n", input.PlayerName)
	}

	b.WriteString("Frames:\n")
	writeFrames(&b, stats.Rolls)

	switch {
	case stats.TotalScore == nil:
		b.WriteString("Total score: in progress\n")
	case stats.Complete:
		fmt.Fprintf(&b, "Final score: %d\n", *stats.TotalScore)
	default:
		fmt.Fprintf(&b, "Score so far: %d\n", *stats.TotalScore)
	}

	fmt.Fprintf(&b, "Strikes: %d\n", stats.Strikes)
	fmt.Fprintf(&b, "Spares: %d\n", stats.Spares)
	fmt.Fprintf(&b, "Open frames: %d\n", stats.OpenFrames)

	return b.String()
}

func writeFrames(b *strings.Builder, rolls map[int][]int) {
	if len(rolls) == 0 {
		b.WriteString("  no rolls yet\n")
		return
	}

	numbers := make([]int, 0, len(rolls))
	for n := range rolls {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		marks := make([]string, 0, len(rolls[n]))
		for _, pins := range rolls[n] {
			marks = append(marks, strconv.Itoa(pins))
		}
		fmt.Fprintf(b, "  %d: %s\n", n, strings.Join(marks, ", "))
	}
}

