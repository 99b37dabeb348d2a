package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/researchmind/pkg/types"
)

// loadAppConfig merges viper-resolved settings over the built-in defaults.
func loadAppConfig() types.AppConfig {
	cfg := types.DefaultAppConfig()

	if v := viper.GetString("corpus.path"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := viper.GetString("corpus.format"); v != "" {
		cfg.Corpus.Format = types.CorpusFormat(v)
	}
	if v := viper.GetString("corpus.table"); v != "" {
		cfg.Corpus.Table = v
	}
	if v := viper.GetInt("retrieval.top_k"); v > 0 {
		cfg.Retrieval.TopK = v
	}
	if v := viper.GetString("retrieval.category"); v != "" {
		cfg.Retrieval.Category = types.CategoryFilter(v)
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = types.LLMProvider(v)
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if viper.IsSet("llm.temperature") {
		cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	}
	if v := viper.GetInt("llm.max_tokens"); v > 0 {
		cfg.LLM.MaxTokens = v
	}
	if v := viper.GetString("llm.api_key"); v != "" {
		cfg.LLM.APIKey = v
	}
	if viper.IsSet("report.enabled") {
		cfg.Report.Enabled = viper.GetBool("report.enabled")
	}
	if v := viper.GetString("report.output_dir"); v != "" {
		cfg.Report.OutputDir = v
	}
	if v := viper.GetString("image.base_url"); v != "" {
		cfg.Image.BaseURL = v
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = loadedSecrets["openai-api-key"]
	}
	return cfg
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage researchmind configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default researchmind.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "researchmind.yaml"
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		data, err := yaml.Marshal(types.DefaultAppConfig())
		if err != nil {
			return fmt.Errorf("encoding default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
