package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/strikeout/internal/models"
)

func frames(rolls ...[]int) []models.Frame {
	out := make([]models.Frame, 0, len(rolls))
	for i, r := range rolls {
		out = append(out, models.Frame{Number: i + 1, Rolls: r})
	}
	return out
}

func repeat(n int, rolls []int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = rolls
	}
	return out
}

func TestScore_FinishedGames(t *testing.T) {
	tests := []struct {
		name     string
		frames   [][]int
		expected int
	}{
		{
			name:     "perfect game",
			frames:   append(repeat(9, []int{10}), []int{10, 10, 10}),
			expected: 300,
		},
		{
			name:     "gutter game",
			frames:   repeat(10, []int{0, 0}),
			expected: 0,
		},
		{
			name:     "all nines",
			frames:   repeat(10, []int{9, 0}),
			expected: 90,
		},
		{
			name:     "all spares with five",
			frames:   append(repeat(9, []int{5, 5}), []int{5, 5, 5}),
			expected: 150,
		},
		{
			name:     "spare in first frame then gutters",
			frames:   append([][]int{{5, 5}, {3, 0}}, repeat(8, []int{0, 0})...),
			expected: 16,
		},
		{
			name:     "strike spare open then gutters",
			frames:   append([][]int{{10}, {5, 5}, {4, 3}}, repeat(7, []int{0, 0})...),
			expected: 41,
		},
		{
			name:     "strike in ninth with open tenth",
			frames:   append(repeat(8, []int{0, 0}), []int{10}, []int{3, 4}),
			expected: 24,
		},
		{
			name:     "spare in ninth takes first roll of tenth",
			frames:   append(repeat(8, []int{0, 0}), []int{6, 4}, []int{10, 2, 3}),
			expected: 35,
		},
		{
			name:     "strikes into tenth",
			frames:   append(repeat(7, []int{0, 0}), []int{10}, []int{10}, []int{10, 7, 2}),
			expected: 30 + 27 + 19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(frames(tt.frames...))
			require.NotNil(t, result.Total)
			assert.Equal(t, tt.expected, *result.Total)
			assert.True(t, result.Complete)
			require.Len(t, result.Frames, models.FrameCount)
			require.NotNil(t, result.Frames[9].Running)
			assert.Equal(t, tt.expected, *result.Frames[9].Running)
		})
	}
}

func TestScore_RunningTotals(t *testing.T) {
	result := Score(frames([]int{10}, []int{5, 5}, []int{4, 3}))

	require.NotNil(t, result.Total)
	assert.Equal(t, 41, *result.Total)
	assert.False(t, result.Complete)

	assert.Equal(t, 20, *result.Frames[0].Score)
	assert.Equal(t, 14, *result.Frames[1].Score)
	assert.Equal(t, 7, *result.Frames[2].Score)
	assert.Equal(t, 20, *result.Frames[0].Running)
	assert.Equal(t, 34, *result.Frames[1].Running)
	assert.Equal(t, 41, *result.Frames[2].Running)

	assert.Equal(t, KindStrike, result.Frames[0].Kind)
	assert.Equal(t, KindSpare, result.Frames[1].Kind)
	assert.Equal(t, KindOpen, result.Frames[2].Kind)
	assert.Equal(t, KindEmpty, result.Frames[3].Kind)
}

func TestScore_PendingBonus(t *testing.T) {
	tests := []struct {
		name        string
		frames      [][]int
		pendingFrom int
	}{
		{
			name:        "strike with no follow-up",
			frames:      [][]int{{10}},
			pendingFrom: 0,
		},
		{
			name:        "strike with one follow-up roll",
			frames:      [][]int{{10}, {4}},
			pendingFrom: 0,
		},
		{
			name:        "double strike waits on third frame",
			frames:      [][]int{{10}, {10}},
			pendingFrom: 0,
		},
		{
			name:        "spare with no follow-up",
			frames:      [][]int{{3, 4}, {6, 4}},
			pendingFrom: 1,
		},
		{
			name:        "strike in ninth and nothing in tenth",
			frames:      append(repeat(8, []int{1, 1}), []int{10}),
			pendingFrom: 8,
		},
		{
			name:        "strike in tenth waiting on bonus rolls",
			frames:      append(repeat(9, []int{1, 1}), []int{10, 4}),
			pendingFrom: 9,
		},
		{
			name:        "spare in tenth waiting on bonus roll",
			frames:      append(repeat(9, []int{1, 1}), []int{7, 3}),
			pendingFrom: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(frames(tt.frames...))
			assert.Nil(t, result.Total)
			assert.False(t, result.Complete)
			assert.Nil(t, result.Frames[tt.pendingFrom].Score)
			for i := tt.pendingFrom; i < models.FrameCount; i++ {
				assert.Nil(t, result.Frames[i].Running, "frame %d", i+1)
			}
			for i := 0; i < tt.pendingFrom; i++ {
				assert.NotNil(t, result.Frames[i].Running, "frame %d", i+1)
			}
		})
	}
}

func TestScore_LaterFramesKeepTheirOwnScore(t *testing.T) {
	result := Score(frames([]int{10}, []int{10}, []int{3}))

	assert.Nil(t, result.Total)
	require.NotNil(t, result.Frames[0].Score)
	assert.Equal(t, 23, *result.Frames[0].Score)
	assert.Equal(t, 23, *result.Frames[0].Running)
	assert.Nil(t, result.Frames[1].Score)
	assert.Nil(t, result.Frames[1].Running)
	require.NotNil(t, result.Frames[2].Score)
	assert.Equal(t, 3, *result.Frames[2].Score)
	assert.Nil(t, result.Frames[2].Running)
}

func TestScore_PartialOpenFrameIsNotPending(t *testing.T) {
	result := Score(frames([]int{3, 4}, []int{5}))

	require.NotNil(t, result.Total)
	assert.Equal(t, 12, *result.Total)
	assert.False(t, result.Complete)
	assert.Equal(t, KindInProgress, result.Frames[1].Kind)
}

func TestScore_LookaheadStopsAtOpenFrame(t *testing.T) {
	// Frame 2 still needs its second roll, so frame 3 cannot feed frame 1
	input := []models.Frame{
		{Number: 1, Rolls: []int{10}},
		{Number: 2, Rolls: []int{3}},
		{Number: 3, Rolls: []int{4, 5}},
	}

	result := Score(input)

	assert.Nil(t, result.Total)
	assert.Nil(t, result.Frames[0].Score)
}

func TestScore_FramesMatchedByNumber(t *testing.T) {
	input := []models.Frame{
		{Number: 2, Rolls: []int{4, 3}},
		{Number: 1, Rolls: []int{5, 5}},
	}

	result := Score(input)

	require.NotNil(t, result.Total)
	assert.Equal(t, 14+7, *result.Total)
	assert.Equal(t, 1, result.Frames[0].Number)
	assert.Equal(t, []int{5, 5}, result.Frames[0].Rolls)
}

func TestScore_Empty(t *testing.T) {
	result := Score(nil)

	require.NotNil(t, result.Total)
	assert.Equal(t, 0, *result.Total)
	assert.False(t, result.Complete)
	assert.Len(t, result.Frames, models.FrameCount)
}

func TestScore_Idempotent(t *testing.T) {
	input := frames([]int{10}, []int{7, 3}, []int{9, 0}, []int{10})

	first := Score(input)
	second := Score(input)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{10}, input[0].Rolls)
}

func TestClosed(t *testing.T) {
	tests := []struct {
		name     string
		frame    models.Frame
		expected bool
	}{
		{"empty", models.Frame{Number: 1}, false},
		{"single roll", models.Frame{Number: 1, Rolls: []int{4}}, false},
		{"strike", models.Frame{Number: 1, Rolls: []int{10}}, true},
		{"two rolls", models.Frame{Number: 5, Rolls: []int{4, 2}}, true},
		{"tenth strike", models.Frame{Number: 10, Rolls: []int{10}}, false},
		{"tenth strike and one bonus", models.Frame{Number: 10, Rolls: []int{10, 3}}, false},
		{"tenth spare", models.Frame{Number: 10, Rolls: []int{6, 4}}, false},
		{"tenth open", models.Frame{Number: 10, Rolls: []int{6, 3}}, true},
		{"tenth with bonus", models.Frame{Number: 10, Rolls: []int{6, 4, 8}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Closed(tt.frame))
		})
	}
}

func TestStatistics(t *testing.T) {
	input := frames(
		[]int{10},
		[]int{5, 5},
		[]int{4, 3},
		[]int{10},
		[]int{0, 10},
		[]int{2, 2},
		[]int{8},
	)

	stats := Summarize(input)

	assert.Equal(t, 2, stats.Strikes)
	assert.Equal(t, 2, stats.Spares)
	assert.Equal(t, 2, stats.OpenFrames)
	require.NotNil(t, stats.TotalScore)
	assert.False(t, stats.Complete)
	assert.Len(t, stats.Rolls, 7)
	assert.Equal(t, []int{8}, stats.Rolls[7])
}

func TestStatistics_TenthFrameCountsOnce(t *testing.T) {
	input := frames(append(repeat(9, []int{10}), []int{10, 10, 10})...)

	stats := Summarize(input)

	assert.Equal(t, 10, stats.Strikes)
	assert.Equal(t, 0, stats.Spares)
	assert.Equal(t, 0, stats.OpenFrames)
	assert.Equal(t, 300, *stats.TotalScore)
	assert.True(t, stats.Complete)
}
