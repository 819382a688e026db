// Package formatter renders analysis output as plain text for the command
// line tools.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/feedbackloop/sentiment/internal/analyzer"
	"github.com/feedbackloop/sentiment/internal/trend"
)

// FormatResult renders a single analysis result.
func FormatResult(text string, result analyzer.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%q\n", text)
	fmt.Fprintf(&b, "  score:      %+.3f (%s, #%s)\n", result.Score, result.Sentiment, MoodWord(result.Score))
	fmt.Fprintf(&b, "  confidence: %.3f\n", result.Confidence)

	if len(result.Emotions) > 0 {
		names := make([]string, 0, len(result.Emotions))
		for name := range result.Emotions {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%.2f", name, result.Emotions[name]))
		}
		fmt.Fprintf(&b, "  emotions:   %s\n", strings.Join(parts, " "))
	}

	if len(result.KeyPhrases) > 0 {
		fmt.Fprintf(&b, "  phrases:    %s\n", strings.Join(result.KeyPhrases, " | "))
	}

	return b.String()
}

// FormatBatchSummary renders counts and the average score across a batch.
func FormatBatchSummary(results []analyzer.Result) string {
	if len(results) == 0 {
		return "No feedback analyzed.\n"
	}

	var sum float64
	counts := map[analyzer.Label]int{}
	for _, r := range results {
		sum += r.Score
		counts[r.Sentiment]++
	}
	average := sum / float64(len(results))

	var b strings.Builder
	fmt.Fprintf(&b, "Analyzed %d feedback items\n", len(results))
	fmt.Fprintf(&b, "  positive: %d  neutral: %d  negative: %d\n",
		counts[analyzer.LabelPositive], counts[analyzer.LabelNeutral], counts[analyzer.LabelNegative])
	fmt.Fprintf(&b, "  average score: %+.3f (#%s)\n", average, MoodWord(average))
	return b.String()
}

// FormatTrend renders the trend comparison between the two halves of a
// corpus.
func FormatTrend(result trend.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sentiment trend: %s\n", result.Trend)
	fmt.Fprintf(&b, "  change:   %.1f%%\n", result.ChangePercentage)
	fmt.Fprintf(&b, "  current:  %+.3f (#%s)\n", result.CurrentSentiment, MoodWord(result.CurrentSentiment))
	fmt.Fprintf(&b, "  previous: %+.3f (#%s)\n", result.PreviousSentiment, MoodWord(result.PreviousSentiment))
	return b.String()
}

// FormatTopPhrases renders the ranked phrase buckets, at most limit entries
// per bucket. A limit of 0 or less shows every entry.
func FormatTopPhrases(phrases trend.TopPhrases, limit int) string {
	var b strings.Builder
	b.WriteString("Top positive phrases:\n")
	writePhraseList(&b, phrases.Positive, limit)
	b.WriteString("Top negative phrases:\n")
	writePhraseList(&b, phrases.Negative, limit)
	return b.String()
}

func writePhraseList(b *strings.Builder, stats []trend.PhraseStat, limit int) {
	if len(stats) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	for i, stat := range stats {
		fmt.Fprintf(b, "  %d. %q x%d (avg %+.3f)\n", i+1, stat.Phrase, stat.Frequency, stat.AvgSentiment)
	}
}
