package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	spellchecker "github.com/tarasenkoyv/Spellchecker"
)

var (
	buildCorpusPath string
	buildTyposPath  string
	buildLMOut      string
	buildEMOut      string

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build a language model and error model from a corpus and a typo-pair file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrDefault()
			if err != nil {
				return err
			}
			if buildCorpusPath != "" {
				cfg.CorpusPath = buildCorpusPath
			}
			if buildTyposPath != "" {
				cfg.TyposPath = buildTyposPath
			}
			if buildLMOut != "" {
				cfg.LanguageModelOut = buildLMOut
			}
			if buildEMOut != "" {
				cfg.ErrorModelOut = buildEMOut
			}
			if cfg.CorpusPath == "" || cfg.TyposPath == "" {
				return errors.New("spellcheck build: --corpus and --typos are required")
			}

			log.Infof("building language model from %s", cfg.CorpusPath)
			lm := spellchecker.NewLanguageModelWithAlpha(cfg.UnigramAlpha)
			if err := lm.BuildFromFile(cfg.CorpusPath); err != nil {
				return err
			}
			if err := dumpBinary(lm, cfg.LanguageModelOut); err != nil {
				return err
			}

			log.Infof("building error model from %s", cfg.TyposPath)
			em := spellchecker.NewErrorModel()
			if err := em.BuildFromFile(cfg.TyposPath); err != nil {
				return err
			}
			if err := dumpBinary(em, cfg.ErrorModelOut); err != nil {
				return err
			}

			log.Infof("wrote %s and %s", cfg.LanguageModelOut, cfg.ErrorModelOut)
			return nil
		},
	}
)

func init() {
	buildCmd.Flags().StringVar(&buildCorpusPath, "corpus", "", "path to the tab-separated query corpus")
	buildCmd.Flags().StringVar(&buildTyposPath, "typos", "", "path to the tab-separated (typo, correction) pair file")
	buildCmd.Flags().StringVar(&buildLMOut, "lm-out", "", "output path for the language model gob (default from config)")
	buildCmd.Flags().StringVar(&buildEMOut, "em-out", "", "output path for the error model gob (default from config)")
	rootCmd.AddCommand(buildCmd)
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

func dumpBinary(m binaryMarshaler, path string) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
