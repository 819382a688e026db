// Package trend compares sentiment across a timestamped feedback corpus and
// ranks the key phrases of an already-scored corpus. Inputs are transient
// caller-supplied slices; nothing is persisted.
package trend

import (
	"math"
	"sort"

	"github.com/feedbackloop/sentiment/internal/analyzer"
)

// Direction labels the movement of sentiment between the two halves of a
// corpus.
type Direction string

const (
	DirectionImproving Direction = "improving"
	DirectionDeclining Direction = "declining"
	DirectionStable    Direction = "stable"
)

// directionThreshold is the signed percentage change, in points, beyond
// which the trend stops being stable.
const directionThreshold = 5.0

// maxTopPhrases caps each bucket of TopPhrases.
const maxTopPhrases = 10

// Item is one piece of timestamped feedback.
type Item struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ScoredItem is one piece of feedback with a sentiment score already
// attached by a prior analysis.
type ScoredItem struct {
	Text           string  `json:"text"`
	SentimentScore float64 `json:"sentiment_score"`
}

// Result summarizes sentiment movement between the chronological first and
// second halves of a corpus. ChangePercentage is always non-negative;
// direction is conveyed only through Trend.
type Result struct {
	Trend             Direction `json:"trend"`
	ChangePercentage  float64   `json:"changePercentage"`
	CurrentSentiment  float64   `json:"currentSentiment"`
	PreviousSentiment float64   `json:"previousSentiment"`
}

// PhraseStat is one ranked key phrase within a bucket.
type PhraseStat struct {
	Phrase       string  `json:"phrase"`
	Frequency    int     `json:"frequency"`
	AvgSentiment float64 `json:"avgSentiment"`
}

// TopPhrases holds the ranked phrases of the positively and negatively
// scored portions of a corpus.
type TopPhrases struct {
	Positive []PhraseStat `json:"positive"`
	Negative []PhraseStat `json:"negative"`
}

// Analyzer runs trend and aggregate analyses on top of the scoring engine.
type Analyzer struct {
	engine *analyzer.Analyzer
}

// New creates a trend analyzer over the given scoring engine.
func New(engine *analyzer.Analyzer) *Analyzer {
	return &Analyzer{engine: engine}
}

// SentimentTrend sorts items chronologically, splits them at the midpoint,
// and compares mean polarity between the halves. Fewer than two items yield
// the stable zero result.
func (a *Analyzer) SentimentTrend(items []Item) Result {
	if len(items) < 2 {
		return Result{Trend: DirectionStable}
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	// RFC3339 timestamps sort chronologically as strings, and comparing the
	// raw strings keeps malformed timestamps from introducing an error path.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	// Odd counts put the extra item in the second half.
	mid := len(sorted) / 2
	previous := a.meanPolarity(sorted[:mid])
	current := a.meanPolarity(sorted[mid:])

	// Substitute 1 for a zero baseline to avoid dividing by zero. The
	// percentage scale is inconsistent near zero baselines as a result.
	denominator := math.Abs(previous)
	if denominator == 0 {
		denominator = 1
	}
	signedChange := (current - previous) / denominator * 100

	direction := DirectionStable
	switch {
	case signedChange > directionThreshold:
		direction = DirectionImproving
	case signedChange < -directionThreshold:
		direction = DirectionDeclining
	}

	return Result{
		Trend:             direction,
		ChangePercentage:  math.Abs(signedChange),
		CurrentSentiment:  current,
		PreviousSentiment: previous,
	}
}

// TopPhrases extracts key phrases from each item, routes them into the
// positive or negative bucket by the item's score, and ranks each bucket by
// frequency.
func (a *Analyzer) TopPhrases(items []ScoredItem) TopPhrases {
	type bucket struct {
		frequency    int
		sentimentSum float64
		firstSeen    int
	}

	positive := make(map[string]*bucket)
	negative := make(map[string]*bucket)
	order := 0

	for _, item := range items {
		result := a.engine.Analyze(item.Text)
		for _, phrase := range result.KeyPhrases {
			target := negative
			if item.SentimentScore >= 0 {
				target = positive
			}
			b, ok := target[phrase]
			if !ok {
				b = &bucket{firstSeen: order}
				order++
				target[phrase] = b
			}
			b.frequency++
			b.sentimentSum += item.SentimentScore
		}
	}

	rank := func(phrases map[string]*bucket) []PhraseStat {
		stats := make([]PhraseStat, 0, len(phrases))
		for phrase, b := range phrases {
			stats = append(stats, PhraseStat{
				Phrase:       phrase,
				Frequency:    b.frequency,
				AvgSentiment: b.sentimentSum / float64(b.frequency),
			})
		}
		sort.SliceStable(stats, func(i, j int) bool {
			if stats[i].Frequency != stats[j].Frequency {
				return stats[i].Frequency > stats[j].Frequency
			}
			return phrases[stats[i].Phrase].firstSeen < phrases[stats[j].Phrase].firstSeen
		})
		if len(stats) > maxTopPhrases {
			stats = stats[:maxTopPhrases]
		}
		return stats
	}

	return TopPhrases{
		Positive: rank(positive),
		Negative: rank(negative),
	}
}

func (a *Analyzer) meanPolarity(items []Item) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += a.engine.Analyze(item.Text).Score
	}
	return sum / float64(len(items))
}
