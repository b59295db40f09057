package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spellchecker "github.com/tarasenkoyv/Spellchecker"
)

var (
	correctLMPath string
	correctEMPath string

	correctCmd = &cobra.Command{
		Use:   "correct",
		Short: "Read queries from stdin, one per line, and print the corrected query to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrDefault()
			if err != nil {
				return err
			}
			if correctLMPath != "" {
				cfg.LanguageModelOut = correctLMPath
			}
			if correctEMPath != "" {
				cfg.ErrorModelOut = correctEMPath
			}

			log.Info("loading language model")
			lm, err := loadLanguageModel(cfg.LanguageModelOut)
			if err != nil {
				return fmt.Errorf("loading language model: %w", err)
			}

			log.Info("loading error model")
			em, err := loadErrorModel(cfg.ErrorModelOut)
			if err != nil {
				return fmt.Errorf("loading error model: %w", err)
			}

			log.Info("building trie")
			trie := spellchecker.NewTrie(lm, em)
			trie.Build()

			corrector := spellchecker.NewCorrector(lm, em, trie)

			log.Info("ready")
			scanner := bufio.NewScanner(os.Stdin)
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			for scanner.Scan() {
				query := scanner.Text()
				result := corrector.SafeCorrect(query, cfg.Iterations, cfg.MaxCandidates)
				fmt.Fprintln(out, result)
			}
			return scanner.Err()
		},
	}
)

func init() {
	correctCmd.Flags().StringVar(&correctLMPath, "lm", "", "path to the language model gob (default from config)")
	correctCmd.Flags().StringVar(&correctEMPath, "em", "", "path to the error model gob (default from config)")
	rootCmd.AddCommand(correctCmd)
}

func loadLanguageModel(path string) (*spellchecker.LanguageModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return spellchecker.LanguageModelFromGob(f)
}

func loadErrorModel(path string) (*spellchecker.ErrorModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return spellchecker.ErrorModelFromGob(f)
}
