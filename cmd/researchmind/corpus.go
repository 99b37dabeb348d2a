package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/researchmind/internal/corpus"
	"github.com/pdiddy/researchmind/internal/rank"
	"github.com/pdiddy/researchmind/pkg/types"
)

// corpusStats summarizes the loaded dataset for corpus info.
type corpusStats struct {
	Path       string         `json:"path" yaml:"path"`
	Records    int            `json:"records" yaml:"records"`
	Categories map[string]int `json:"categories" yaml:"categories"`
	Untagged   int            `json:"untagged" yaml:"untagged"`
}

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and search the paper corpus",
}

var corpusInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print corpus record counts by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadAppConfig()
		records, err := loadCorpus(cfg.Corpus, false)
		if err != nil {
			return err
		}

		stats := collectStats(cfg.Corpus.Path, records)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			data, err := yaml.Marshal(stats)
			if err != nil {
				return fmt.Errorf("encoding stats: %w", err)
			}
			fmt.Print(string(data))
			return nil
		}

		fmt.Printf("Corpus:  %s\n", stats.Path)
		fmt.Printf("Records: %d\n", stats.Records)
		for _, f := range types.Filters() {
			if f == types.FilterAll {
				continue
			}
			fmt.Printf("  %-20s %d\n", f, stats.Categories[string(f)])
		}
		if stats.Untagged > 0 {
			fmt.Printf("  %-20s %d\n", "untagged", stats.Untagged)
		}
		return nil
	},
}

// collectStats counts records per category filter. A record counts toward
// every filter whose prefixes match one of its tags, and toward untagged
// when it has no parseable tags at all.
func collectStats(path string, records []types.PaperRecord) corpusStats {
	stats := corpusStats{Path: path, Records: len(records), Categories: map[string]int{}}
	for _, rec := range records {
		tags := corpus.ParseTerms(rec.RawTerms)
		if len(tags) == 0 {
			stats.Untagged++
			continue
		}
		for _, f := range types.Filters() {
			if f == types.FilterAll {
				continue
			}
			if tagsMatch(tags, f.Prefixes()) {
				stats.Categories[string(f)]++
			}
		}
	}
	return stats
}

func tagsMatch(tags, prefixes []string) bool {
	for _, tag := range tags {
		for _, p := range prefixes {
			if strings.HasPrefix(tag, p) {
				return true
			}
		}
	}
	return false
}

var corpusSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Score corpus records against a keyword query",
	Long: `Search ranks corpus records against the query using the same keyword
scorer the assistant uses for retrieval, and prints the top matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadAppConfig()
		top, _ := cmd.Flags().GetInt("top")
		if v, _ := cmd.Flags().GetString("category"); v != "" {
			cfg.Retrieval.Category = types.CategoryFilter(v)
		}
		if !cfg.Retrieval.Category.IsValid() {
			return fmt.Errorf("unknown category filter %q", cfg.Retrieval.Category)
		}

		records, err := loadCorpus(cfg.Corpus, false)
		if err != nil {
			return err
		}

		matches := rank.Matches(strings.Join(args, " "), records, cfg.Retrieval.Category)
		if top > 0 && len(matches) > top {
			matches = matches[:top]
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return rank.FormatJSON(matches, os.Stdout)
		}
		rank.FormatTable(matches, os.Stdout)
		return nil
	},
}

func init() {
	corpusInfoCmd.Flags().Bool("json", false, "output stats as JSON")
	corpusInfoCmd.Flags().Bool("yaml", false, "output stats as YAML")

	corpusSearchCmd.Flags().Int("top", 10, "maximum number of matches to print")
	corpusSearchCmd.Flags().String("category", "", "restrict matches to a category filter")
	corpusSearchCmd.Flags().Bool("json", false, "output matches as JSON")

	corpusCmd.AddCommand(corpusInfoCmd)
	corpusCmd.AddCommand(corpusSearchCmd)
	rootCmd.AddCommand(corpusCmd)
}
