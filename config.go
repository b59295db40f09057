package spellchecker

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of spec.md §6 ("CLI defaults") so they can be
// overridden from a YAML file rather than recompiled.
type Config struct {
	Iterations    int `yaml:"iterations"`
	MaxCandidates int `yaml:"max_candidates"`

	UnigramAlpha float64 `yaml:"unigram_alpha"`

	CorpusPath       string `yaml:"corpus_path"`
	TyposPath        string `yaml:"typos_path"`
	LanguageModelOut string `yaml:"language_model_path"`
	ErrorModelOut    string `yaml:"error_model_path"`
}

// DefaultConfig returns the CLI's built-in defaults (spec.md §6): two
// rewrite rounds, five candidates per needs-correction token.
func DefaultConfig() *Config {
	return &Config{
		Iterations:       2,
		MaxCandidates:    5,
		UnigramAlpha:     unigramAlpha,
		LanguageModelOut: "lm.gob",
		ErrorModelOut:    "em.gob",
	}
}

// LoadConfig reads a YAML config file, starting from DefaultConfig and
// overlaying whatever fields the file sets.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Iterations <= 0 {
		return nil, errors.New("spellchecker: config iterations must be positive")
	}
	if cfg.MaxCandidates <= 0 {
		return nil, errors.New("spellchecker: config max_candidates must be positive")
	}
	return cfg, nil
}
