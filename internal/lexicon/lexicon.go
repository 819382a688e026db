// Package lexicon holds the word lists the sentiment engine scores against:
// positive and negative polarity words, per-emotion keyword lists, and the
// intensifier and negator modifier words. A Lexicon is built once, optionally
// merged with YAML overrides, and is immutable afterwards, so it is safe for
// unsynchronized concurrent reads.
package lexicon

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

type Lexicon struct {
	positive     map[string]struct{}
	negative     map[string]struct{}
	intensifiers map[string]struct{}
	negators     map[string]struct{}
	emotions     map[string][]string

	// One compiled word-boundary pattern per emotion keyword, built at
	// construction so analysis never compiles regexps.
	emotionPatterns map[string][]*regexp.Regexp
}

// Overrides is the YAML shape accepted by Load. Every list is additive:
// entries are merged into the built-in defaults, never replacing them.
type Overrides struct {
	Positive     []string            `yaml:"positive"`
	Negative     []string            `yaml:"negative"`
	Intensifiers []string            `yaml:"intensifiers"`
	Negators     []string            `yaml:"negators"`
	Emotions     map[string][]string `yaml:"emotions"`
}

// Default returns the built-in English lexicon.
func Default() *Lexicon {
	return build(Overrides{})
}

// Load builds the default lexicon merged with YAML overrides from path.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon overrides: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon overrides: %w", err)
	}

	return build(ov), nil
}

// WithOverrides builds the default lexicon merged with in-memory overrides.
func WithOverrides(ov Overrides) *Lexicon {
	return build(ov)
}

func build(ov Overrides) *Lexicon {
	lex := &Lexicon{
		positive:        toSet(defaultPositive, ov.Positive),
		negative:        toSet(defaultNegative, ov.Negative),
		intensifiers:    toSet(defaultIntensifiers, ov.Intensifiers),
		negators:        toSet(defaultNegators, ov.Negators),
		emotions:        make(map[string][]string, len(defaultEmotions)),
		emotionPatterns: make(map[string][]*regexp.Regexp, len(defaultEmotions)),
	}

	for emotion, keywords := range defaultEmotions {
		lex.emotions[emotion] = append(lex.emotions[emotion], keywords...)
	}
	for emotion, keywords := range ov.Emotions {
		lex.emotions[emotion] = append(lex.emotions[emotion], keywords...)
	}

	for emotion, keywords := range lex.emotions {
		patterns := make([]*regexp.Regexp, 0, len(keywords))
		for _, kw := range keywords {
			patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		lex.emotionPatterns[emotion] = patterns
	}

	return lex
}

func toSet(defaults, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(defaults)+len(extra))
	for _, w := range defaults {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[w] = struct{}{}
	}
	return set
}

// IsPositive reports whether the word carries positive polarity.
func (l *Lexicon) IsPositive(word string) bool {
	_, ok := l.positive[word]
	return ok
}

// IsNegative reports whether the word carries negative polarity.
func (l *Lexicon) IsNegative(word string) bool {
	_, ok := l.negative[word]
	return ok
}

// IsSentiment reports whether the word appears in either polarity list.
func (l *Lexicon) IsSentiment(word string) bool {
	return l.IsPositive(word) || l.IsNegative(word)
}

// IsIntensifier reports whether the word amplifies an adjacent sentiment word.
func (l *Lexicon) IsIntensifier(word string) bool {
	_, ok := l.intensifiers[word]
	return ok
}

// IsNegator reports whether the word inverts an adjacent sentiment word.
func (l *Lexicon) IsNegator(word string) bool {
	_, ok := l.negators[word]
	return ok
}

// EmotionCounts returns, per emotion, the total number of whole-word keyword
// occurrences in text. Emotions with no matches are omitted.
func (l *Lexicon) EmotionCounts(text string) map[string]int {
	counts := make(map[string]int)
	for emotion, patterns := range l.emotionPatterns {
		total := 0
		for _, p := range patterns {
			total += len(p.FindAllStringIndex(text, -1))
		}
		if total > 0 {
			counts[emotion] = total
		}
	}
	return counts
}

// Emotions returns the emotion names known to the lexicon, sorted.
func (l *Lexicon) Emotions() []string {
	names := make([]string, 0, len(l.emotions))
	for name := range l.emotions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
