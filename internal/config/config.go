package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Settings SettingsConfig `yaml:"settings"`
}

type EngineConfig struct {
	Language    string `yaml:"language"`
	LexiconPath string `yaml:"lexicon_path"`
}

type SettingsConfig struct {
	TopPhraseCount int  `yaml:"top_phrase_count"`
	Verbose        bool `yaml:"verbose"`
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// optional fields. A missing file is not an error: the defaults are used so
// the tools run without any configuration present.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// LoadConfigFromEnv loads configuration from environment variables (fallback)
func LoadConfigFromEnv() *Config {
	config := &Config{
		Engine: EngineConfig{
			Language:    os.Getenv("SENTIMENT_LANGUAGE"),
			LexiconPath: os.Getenv("SENTIMENT_LEXICON_PATH"),
		},
		Settings: SettingsConfig{
			Verbose: os.Getenv("SENTIMENT_VERBOSE") == "true",
		},
	}

	if count, err := strconv.Atoi(os.Getenv("SENTIMENT_TOP_PHRASES")); err == nil {
		config.Settings.TopPhraseCount = count
	}

	applyDefaults(config)
	return config
}

func defaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Engine.Language == "" {
		config.Engine.Language = "en"
	}
	if config.Settings.TopPhraseCount == 0 {
		config.Settings.TopPhraseCount = 10
	}
}
