// Package analyzer scores free-text feedback against an injected lexicon.
// Every method is a pure function of the input text and the immutable
// lexicon: no I/O, no caching, and no error path. Any string input, including
// empty or non-ASCII text, produces a well-formed Result.
package analyzer

import (
	"sync"

	"github.com/feedbackloop/sentiment/internal/lexicon"
)

// DefaultLanguage is the language code attached to every result. The engine
// performs no language detection.
const DefaultLanguage = "en"

// Label classification thresholds on the clamped polarity score.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Label is the discrete sentiment category derived from the polarity score.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Result holds the full analysis of a single text.
type Result struct {
	Score      float64            `json:"score"`      // polarity, -1 to +1
	Confidence float64            `json:"confidence"` // 0 to 1
	Emotions   map[string]float64 `json:"emotions"`   // only detected emotions, each 0 to 1
	KeyPhrases []string           `json:"keyPhrases"` // at most 5, first-seen order
	Language   string             `json:"language"`
	Sentiment  Label              `json:"sentimentLabel"`
}

// Analyzer scores text against a lexicon fixed at construction.
type Analyzer struct {
	lex      *lexicon.Lexicon
	language string
}

// New creates an analyzer over the given lexicon with the default language.
func New(lex *lexicon.Lexicon) *Analyzer {
	return NewWithLanguage(lex, DefaultLanguage)
}

// NewWithLanguage creates an analyzer that tags results with the given
// language code. No detection is performed; the code is attached verbatim.
func NewWithLanguage(lex *lexicon.Lexicon, language string) *Analyzer {
	if language == "" {
		language = DefaultLanguage
	}
	return &Analyzer{lex: lex, language: language}
}

// Analyze scores a single text. Empty or whitespace-only input returns the
// fixed neutral zero-value result without further processing.
func (a *Analyzer) Analyze(text string) Result {
	normalized := Normalize(text)
	if normalized == "" {
		return Result{
			Emotions:   map[string]float64{},
			KeyPhrases: []string{},
			Language:   a.language,
			Sentiment:  LabelNeutral,
		}
	}

	score := a.scorePolarity(normalized)

	return Result{
		Score:      score,
		Confidence: a.estimateConfidence(normalized, score),
		Emotions:   a.detectEmotions(normalized),
		KeyPhrases: a.extractKeyPhrases(normalized),
		Language:   a.language,
		Sentiment:  classify(score),
	}
}

// AnalyzeBatch scores each text independently and returns results in input
// order. Analyses share only the immutable lexicon, so they fan out across
// goroutines without coordination.
func (a *Analyzer) AnalyzeBatch(texts []string) []Result {
	results := make([]Result, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i] = a.Analyze(text)
		}(i, text)
	}
	wg.Wait()

	return results
}

func classify(score float64) Label {
	switch {
	case score > positiveThreshold:
		return LabelPositive
	case score < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
