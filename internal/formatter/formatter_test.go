package formatter

import (
	"strings"
	"testing"

	"github.com/feedbackloop/sentiment/internal/analyzer"
	"github.com/feedbackloop/sentiment/internal/trend"
)

func TestMoodWord(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{
			name:     "most negative",
			score:    -1.0,
			expected: "hostile",
		},
		{
			name:     "neutral maps into the middle of the ladder",
			score:    0.0,
			expected: "calm",
		},
		{
			name:     "most positive",
			score:    1.0,
			expected: "elated",
		},
		{
			name:     "out of range clamps",
			score:    5.0,
			expected: "elated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodWord(tt.score); got != tt.expected {
				t.Errorf("MoodWord(%f) = %s, expected %s", tt.score, got, tt.expected)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	result := analyzer.Result{
		Score:      0.5,
		Confidence: 0.8,
		Emotions:   map[string]float64{"joy": 0.2},
		KeyPhrases: []string{"really great update"},
		Language:   "en",
		Sentiment:  analyzer.LabelPositive,
	}

	out := FormatResult("Really great update", result)

	for _, want := range []string{"+0.500", "positive", "0.800", "joy=0.20", "really great update"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatResult() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatBatchSummary(t *testing.T) {
	results := []analyzer.Result{
		{Score: 1, Sentiment: analyzer.LabelPositive},
		{Score: -1, Sentiment: analyzer.LabelNegative},
		{Score: 0, Sentiment: analyzer.LabelNeutral},
	}

	out := FormatBatchSummary(results)

	for _, want := range []string{"Analyzed 3", "positive: 1", "neutral: 1", "negative: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatBatchSummary() missing %q in:\n%s", want, out)
		}
	}

	if out := FormatBatchSummary(nil); !strings.Contains(out, "No feedback") {
		t.Errorf("FormatBatchSummary(nil) = %q", out)
	}
}

func TestFormatTopPhrasesLimit(t *testing.T) {
	phrases := trend.TopPhrases{
		Positive: []trend.PhraseStat{
			{Phrase: "great export feature", Frequency: 3, AvgSentiment: 0.7},
			{Phrase: "love the dashboard", Frequency: 2, AvgSentiment: 0.9},
		},
	}

	out := FormatTopPhrases(phrases, 1)

	if !strings.Contains(out, "great export feature") {
		t.Errorf("FormatTopPhrases() missing top phrase:\n%s", out)
	}
	if strings.Contains(out, "love the dashboard") {
		t.Errorf("FormatTopPhrases() ignored limit:\n%s", out)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("FormatTopPhrases() missing empty bucket marker:\n%s", out)
	}
}
