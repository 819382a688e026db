package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/feedbackloop/sentiment/internal/analyzer"
	"github.com/feedbackloop/sentiment/internal/config"
	"github.com/feedbackloop/sentiment/internal/formatter"
	"github.com/feedbackloop/sentiment/internal/lexicon"
)

func main() {
	var (
		text       = flag.String("text", "", "Analyze a single feedback text")
		input      = flag.String("input", "", "Analyze feedback texts from a file, one per line (\"-\" for stdin)")
		configPath = flag.String("config", "", "Path to config.yaml")
		jsonOut    = flag.Bool("json", false, "Emit results as JSON instead of a text report")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	if cfg.Settings.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		logger.Fatalf("Failed to load lexicon: %v", err)
	}

	engine := analyzer.NewWithLanguage(lex, cfg.Engine.Language)

	switch {
	case *text != "":
		result := engine.Analyze(*text)
		if *jsonOut {
			printJSON(logger, result)
			return
		}
		fmt.Print(formatter.FormatResult(*text, result))

	case *input != "":
		texts, err := readTexts(*input)
		if err != nil {
			logger.Fatalf("Failed to read input: %v", err)
		}
		logger.WithField("count", len(texts)).Debug("analyzing feedback batch")

		results := engine.AnalyzeBatch(texts)
		if *jsonOut {
			printJSON(logger, results)
			return
		}
		for i, result := range results {
			fmt.Print(formatter.FormatResult(texts[i], result))
		}
		fmt.Print(formatter.FormatBatchSummary(results))

	default:
		fmt.Println("Usage:")
		fmt.Println("  Analyze one text:        analyze -text \"loved the new dashboard\"")
		fmt.Println("  Analyze a file of texts: analyze -input feedback.txt")
		fmt.Println("  Analyze stdin:           analyze -input -")
		os.Exit(1)
	}
}

func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	if cfg.Engine.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(cfg.Engine.LexiconPath)
}

func readTexts(path string) ([]string, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var texts []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return texts, nil
}

func printJSON(logger *logrus.Logger, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to marshal results: %v", err)
	}
	fmt.Println(string(data))
}
