package formatter

import "math"

// MoodWord maps a polarity score to a descriptive word. Each word covers an
// equal slice of the -1 to +1 range.
func MoodWord(score float64) string {
	clamped := math.Max(-1, math.Min(1, score))

	// -1 maps to 0, 0 to the middle of the ladder, +1 to the last index.
	index := int((clamped + 1) / 2 * float64(len(moodWords)))
	if index >= len(moodWords) {
		index = len(moodWords) - 1
	}

	return moodWords[index]
}

// moodWords covers the polarity range from most negative to most positive,
// each word spanning 0.1 of the score scale.
var moodWords = []string{
	// -1.0 to -0.5: strong negative
	"hostile", "bitter", "frustrated", "unhappy", "disappointed",

	// -0.5 to 0: mild negative
	"doubtful", "uneasy", "lukewarm", "indifferent", "neutral",

	// 0 to +0.5: mild positive
	"calm", "content", "pleased", "satisfied", "upbeat",

	// +0.5 to +1.0: strong positive
	"happy", "enthusiastic", "delighted", "thrilled", "elated",
}
