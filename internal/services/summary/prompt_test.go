package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/strikeout/internal/scoring"
)

func intPtr(v int) *int { return &v }

func TestBuildPrompt(t *testing.T) {
	testCases := []struct {
		name     string
		input    *SummarizeInput
		contains []string
		excludes []string
	}{
		{
			name: "game in progress with pending bonus",
			input: &SummarizeInput{
				PlayerName: "Walter",
				Statistics: &scoring.Statistics{
					Strikes: 1,
					Rolls:   map[int][]int{2: {10}, 1: {3, 4}},
				},
			},
			contains: []string{"Bowler: Walter", "  1: 3, 4\n  2: 10\n", "Total score: in progress", "Strikes: 1", "Spares: 0", "Open frames: 0"},
		},
		{
			name: "finished game",
			input: &SummarizeInput{
				Statistics: &scoring.Statistics{
					TotalScore: intPtr(300),
					Complete:   true,
					Strikes:    10,
					Rolls:      map[int][]int{10: {10, 10, 10}},
				},
			},
			contains: []string{"Final score: 300", "  10: 10, 10, 10"},
			excludes: []string{"Bowler:", "in progress"},
		},
		{
			name: "partial score",
			input: &SummarizeInput{
				Statistics: &scoring.Statistics{TotalScore: intPtr(7), OpenFrames: 1, Rolls: map[int][]int{1: {3, 4}}},
			},
			contains: []string{"Score so far: 7", "Open frames: 1"},
		},
		{
			name:     "no rolls",
			input:    &SummarizeInput{Statistics: &scoring.Statistics{TotalScore: intPtr(0), Rolls: map[int][]int{}}},
			contains: []string{"no rolls yet"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prompt := buildPrompt(tc.input)
			assert.Contains(t, prompt, promptIntro)
			for _, want := range tc.contains {
				assert.Contains(t, prompt, want)
			}
			for _, unwanted := range tc.excludes {
				assert.NotContains(t, prompt, unwanted)
			}
		})
	}
}
