package analyzer

import (
	"math"
	"strings"
)

const (
	intensifierMultiplier = 1.5
	emotionScaleDivisor   = 10.0

	baseConfidence       = 0.5
	densityWeight        = 0.3
	magnitudeWeight      = 0.2
	longTextBonus        = 0.1
	longTextTokenMinimum = 10
)

// scorePolarity walks the tokens of normalized text, looks up each token's
// base polarity, applies neighbor modifiers, and averages over the
// sentiment-bearing tokens. Tokens outside the lexicon contribute nothing and
// are not counted in the denominator.
func (a *Analyzer) scorePolarity(normalized string) float64 {
	tokens := strings.Fields(normalized)

	var sum float64
	var count int

	for i, token := range tokens {
		var polarity float64
		switch {
		case a.lex.IsPositive(token):
			polarity = 1
		case a.lex.IsNegative(token):
			polarity = -1
		default:
			continue
		}

		// Modifier order is fixed: intensifier first, then the preceding
		// negator, then the double-negation flip when both neighbors are
		// negators. The double flip compounds with the single flip rather
		// than cancelling it.
		if i > 0 && a.lex.IsIntensifier(tokens[i-1]) {
			polarity *= intensifierMultiplier
		}
		if i > 0 && a.lex.IsNegator(tokens[i-1]) {
			polarity = -polarity
		}
		if i > 0 && i+1 < len(tokens) && a.lex.IsNegator(tokens[i-1]) && a.lex.IsNegator(tokens[i+1]) {
			polarity = -polarity
		}

		sum += polarity
		count++
	}

	if count == 0 {
		return 0
	}
	return clamp(sum/float64(count), -1, 1)
}

// detectEmotions counts whole-word emotion keyword occurrences, scales each
// emotion's count by a fixed divisor capped at 1.0, and omits emotions with
// no matches.
func (a *Analyzer) detectEmotions(normalized string) map[string]float64 {
	emotions := make(map[string]float64)
	for emotion, count := range a.lex.EmotionCounts(normalized) {
		emotions[emotion] = math.Min(float64(count)/emotionScaleDivisor, 1.0)
	}
	return emotions
}

// estimateConfidence combines sentiment-word density, score magnitude, and a
// flat long-text bonus on top of the base confidence.
func (a *Analyzer) estimateConfidence(normalized string, score float64) float64 {
	tokens := strings.Fields(normalized)

	confidence := baseConfidence

	if len(tokens) > 0 {
		var sentimentWords int
		for _, token := range tokens {
			if a.lex.IsSentiment(token) {
				sentimentWords++
			}
		}
		confidence += float64(sentimentWords) / float64(len(tokens)) * densityWeight
	}

	confidence += math.Abs(score) * magnitudeWeight

	if len(tokens) > longTextTokenMinimum {
		confidence += longTextBonus
	}

	return clamp(confidence, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
