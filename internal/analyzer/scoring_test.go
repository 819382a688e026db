package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePolarity(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "single positive word",
			text:     "good",
			expected: 1,
		},
		{
			name:     "single negative word",
			text:     "bad",
			expected: -1,
		},
		{
			name:     "negation flips sign",
			text:     "not good",
			expected: -1,
		},
		{
			name:     "negated negative turns positive",
			text:     "not bad",
			expected: 1,
		},
		{
			name:     "intensifier amplifies then clamps",
			text:     "very good",
			expected: 1,
		},
		{
			name:     "intensified word among plain words averages above one per-token",
			text:     "very good bad",
			expected: 0.25, // (1.5 - 1) / 2
		},
		{
			name:     "double negation compounds rather than cancels",
			text:     "not good not",
			expected: 1, // flipped to -1 by the leading negator, flipped back by the pair
		},
		{
			name:     "double negation on a negative word",
			text:     "not bad no",
			expected: -1,
		},
		{
			name:     "no sentiment words",
			text:     "the quick brown fox",
			expected: 0,
		},
		{
			name:     "balanced sentiment",
			text:     "good bad",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.scorePolarity(Normalize(tt.text))
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("scorePolarity(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestIntensifierScalesMagnitude(t *testing.T) {
	a := newTestAnalyzer()

	plain := a.Analyze("good").Score
	intensified := a.Analyze("very good").Score

	assert.GreaterOrEqual(t, math.Abs(intensified), math.Abs(plain))
}

func TestEstimateConfidence(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name     string
		text     string
		score    float64
		expected float64
	}{
		{
			name:     "dense short positive",
			text:     "good",
			score:    1,
			expected: 1, // 0.5 + 0.3 density + 0.2 magnitude
		},
		{
			name:     "no sentiment words",
			text:     "the quick brown fox",
			score:    0,
			expected: 0.5,
		},
		{
			name:  "long text bonus",
			text:  "one two three four five six seven eight nine ten eleven",
			score: 0,
			// 11 tokens, no sentiment words: base plus flat bonus only.
			expected: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.estimateConfidence(Normalize(tt.text), tt.score)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("estimateConfidence(%q, %v) = %v, want %v", tt.text, tt.score, got, tt.expected)
			}
		})
	}
}

func TestDetectEmotions(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("scaled counts", func(t *testing.T) {
		emotions := a.detectEmotions(Normalize("happy happy happy"))
		assert.InDelta(t, 0.3, emotions["joy"], 1e-9)
	})

	t.Run("capped at one", func(t *testing.T) {
		text := ""
		for i := 0; i < 12; i++ {
			text += "angry "
		}
		emotions := a.detectEmotions(Normalize(text))
		assert.Equal(t, 1.0, emotions["anger"])
	})

	t.Run("zero matches omitted", func(t *testing.T) {
		emotions := a.detectEmotions(Normalize("the quick brown fox"))
		assert.Empty(t, emotions)
	})

	t.Run("keyword must match whole word", func(t *testing.T) {
		emotions := a.detectEmotions(Normalize("enjoyable joyride"))
		_, ok := emotions["joy"]
		assert.False(t, ok, "substring matches should not count: %v", emotions)
	})
}
