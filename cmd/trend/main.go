package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/feedbackloop/sentiment/internal/analyzer"
	"github.com/feedbackloop/sentiment/internal/config"
	"github.com/feedbackloop/sentiment/internal/formatter"
	"github.com/feedbackloop/sentiment/internal/lexicon"
	"github.com/feedbackloop/sentiment/internal/trend"
)

// feedbackRecord is one entry of the input corpus. SentimentScore is
// optional; records without one are scored by the engine before phrase
// ranking.
type feedbackRecord struct {
	Text           string   `json:"text"`
	Timestamp      string   `json:"timestamp"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
}

func main() {
	var (
		input      = flag.String("input", "", "JSON file with an array of {text, timestamp, sentiment_score} records")
		configPath = flag.String("config", "", "Path to config.yaml")
		jsonOut    = flag.Bool("json", false, "Emit results as JSON instead of a text report")
	)
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage:")
		fmt.Println("  trend -input feedback.json")
		fmt.Println()
		fmt.Println("The input file holds a JSON array of records:")
		fmt.Println(`  [{"text":"loved it","timestamp":"2026-08-01T10:00:00Z"}, ...]`)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	if cfg.Settings.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	records, err := readRecords(*input)
	if err != nil {
		logger.Fatalf("Failed to read input: %v", err)
	}
	logger.WithField("count", len(records)).Debug("loaded feedback corpus")

	lex := lexicon.Default()
	if cfg.Engine.LexiconPath != "" {
		lex, err = lexicon.Load(cfg.Engine.LexiconPath)
		if err != nil {
			logger.Fatalf("Failed to load lexicon: %v", err)
		}
	}

	engine := analyzer.NewWithLanguage(lex, cfg.Engine.Language)
	trends := trend.New(engine)

	items := make([]trend.Item, len(records))
	scored := make([]trend.ScoredItem, len(records))
	for i, record := range records {
		items[i] = trend.Item{Text: record.Text, Timestamp: record.Timestamp}

		score := 0.0
		if record.SentimentScore != nil {
			score = *record.SentimentScore
		} else {
			score = engine.Analyze(record.Text).Score
		}
		scored[i] = trend.ScoredItem{Text: record.Text, SentimentScore: score}
	}

	trendResult := trends.SentimentTrend(items)
	topPhrases := trends.TopPhrases(scored)

	if *jsonOut {
		output := struct {
			Trend      trend.Result     `json:"trend"`
			TopPhrases trend.TopPhrases `json:"topPhrases"`
		}{trendResult, topPhrases}

		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			logger.Fatalf("Failed to marshal results: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(formatter.FormatTrend(trendResult))
	fmt.Println()
	fmt.Print(formatter.FormatTopPhrases(topPhrases, cfg.Settings.TopPhraseCount))
}

func readRecords(path string) ([]feedbackRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var records []feedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	return records, nil
}
