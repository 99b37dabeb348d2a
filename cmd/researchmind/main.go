// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the researchmind CLI, a conversational
// research assistant over an arXiv paper corpus. The chat and ask subcommands
// drive the LLM-backed assistant; corpus, export, and config provide the
// supporting surface for inspecting data and producing reports.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/researchmind/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the researchmind CLI.
var rootCmd = &cobra.Command{
	Use:   "researchmind",
	Short: "Conversational AI research assistant over an arXiv corpus",
	Long: `researchmind is a conversational research assistant backed by a local or
remote LLM. It retrieves relevant papers from an arXiv metadata corpus,
grounds the model's answers in that context, and can export research
summaries as PDF reports.

Start an interactive session with chat, or ask a single question with ask.
The corpus subcommands inspect and search the dataset directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./researchmind.yaml or ~/.config/researchmind/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("researchmind")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "researchmind"))
		}
	}

	viper.SetEnvPrefix("RESEARCHMIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
