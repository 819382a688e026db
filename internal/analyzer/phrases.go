package analyzer

import "strings"

const (
	phraseWindowSize = 3
	maxKeyPhrases    = 5
)

// extractKeyPhrases slides a window of up to three tokens across normalized
// text and keeps windows containing at least one sentiment word. The trailing
// window is shorter when fewer tokens remain. Phrases are deduplicated in
// first-seen order and capped.
func (a *Analyzer) extractKeyPhrases(normalized string) []string {
	tokens := strings.Fields(normalized)

	phrases := []string{}
	seen := make(map[string]bool)

	for i := 0; i+1 < len(tokens); i++ {
		end := i + phraseWindowSize
		if end > len(tokens) {
			end = len(tokens)
		}
		window := tokens[i:end]

		hasSentiment := false
		for _, token := range window {
			if a.lex.IsSentiment(token) {
				hasSentiment = true
				break
			}
		}
		if !hasSentiment {
			continue
		}

		phrase := strings.Join(window, " ")
		if seen[phrase] {
			continue
		}
		seen[phrase] = true

		phrases = append(phrases, phrase)
		if len(phrases) == maxKeyPhrases {
			break
		}
	}

	return phrases
}
