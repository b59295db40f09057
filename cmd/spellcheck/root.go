package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "spellcheck",
		Short:        "spellcheck",
		SilenceUsage: true,
		Long:         `Bilingual (RU/EN) noisy-channel query spellchecker.`,
	}

	configPath string
	log        = logrus.New()
)

// Execute runs the command tree; the caller is responsible for os.Exit on
// a non-nil error.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a spellcheck.yaml config file (optional)")
	return rootCmd.Execute()
}
