package main

import spellchecker "github.com/tarasenkoyv/Spellchecker"

// loadConfigOrDefault reads --config when set, otherwise falls back to the
// built-in defaults (spec.md §6).
func loadConfigOrDefault() (*spellchecker.Config, error) {
	if configPath == "" {
		return spellchecker.DefaultConfig(), nil
	}
	return spellchecker.LoadConfig(configPath)
}
