// Diagnostic that scores a corpus with both the lexicon engine and VADER and
// prints the two side by side. Useful for sanity-checking lexicon changes
// against an established baseline; the engine's own scoring is unaffected.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/feedbackloop/sentiment/internal/analyzer"
	"github.com/feedbackloop/sentiment/internal/lexicon"
)

var sampleCorpus = []string{
	"I love this new feature! It's amazing!",
	"This is terrible. I hate it so much.",
	"The export screen is okay, nothing special.",
	"Not good at all, the dashboard keeps crashing.",
	"Very happy with the latest update, really smooth.",
	"Confusing settings page, hard to find anything.",
}

func main() {
	input := flag.String("input", "", "Optional file of texts, one per line (default: built-in samples)")
	flag.Parse()

	texts := sampleCorpus
	if *input != "" {
		loaded, err := readLines(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
			os.Exit(1)
		}
		texts = loaded
	}

	engine := analyzer.New(lexicon.Default())
	vader := govader.NewSentimentIntensityAnalyzer()

	agreements := 0
	for _, text := range texts {
		result := engine.Analyze(text)
		compound := vader.PolarityScores(text).Compound

		vaderLabel := labelFor(compound)
		marker := " "
		if string(result.Sentiment) == vaderLabel {
			agreements++
			marker = "="
		}

		fmt.Printf("%s engine %+0.3f (%-8s) vader %+0.3f (%-8s) %q\n",
			marker, result.Score, result.Sentiment, compound, vaderLabel, text)
	}

	fmt.Printf("\nLabel agreement: %d/%d\n", agreements, len(texts))
}

// labelFor applies the engine's own thresholds to the VADER compound score
// so the comparison is over a common label scheme.
func labelFor(compound float64) string {
	switch {
	case compound > 0.1:
		return "positive"
	case compound < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
