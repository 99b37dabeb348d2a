package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchmind/internal/chat"
	"github.com/pdiddy/researchmind/pkg/types"
)

// askResult is the JSON shape of a one-shot answer.
type askResult struct {
	Text       string   `json:"text"`
	Research   bool     `json:"research"`
	Retrieved  []string `json:"retrieved,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	ReportPath string   `json:"report_path,omitempty"`
}

var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Ask the research assistant a single question",
	Long: `Ask sends one query through the assistant and prints the answer. Research
questions are grounded in corpus context; a query that requests a PDF also
writes the report to the configured output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadAppConfig()
		if v, _ := cmd.Flags().GetString("category"); v != "" {
			cfg.Retrieval.Category = types.CategoryFilter(v)
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		records, err := loadCorpus(cfg.Corpus, false)
		if err != nil {
			return err
		}
		engine, err := buildEngine(cfg, records)
		if err != nil {
			return err
		}

		session := chat.NewSession(cfg.Retrieval.Category)
		turn := engine.Respond(cmd.Context(), session, strings.Join(args, " "))

		var reportPath string
		if len(turn.Document) > 0 {
			reportPath, err = writeDocument(cfg.Report.OutputDir, turn)
			if err != nil {
				return err
			}
		}

		if asJSON {
			result := askResult{
				Text:       turn.Text,
				Research:   turn.Research,
				ImageURL:   turn.ImageURL,
				ReportPath: reportPath,
			}
			for _, r := range turn.Retrieved {
				result.Retrieved = append(result.Retrieved, r.Title)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Println(turn.Text)
		if turn.ImageURL != "" {
			fmt.Fprintf(os.Stderr, "image: %s\n", turn.ImageURL)
		}
		if reportPath != "" {
			fmt.Fprintf(os.Stderr, "report saved: %s\n", reportPath)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("category", "", "restrict retrieval to a category filter")
	askCmd.Flags().Bool("json", false, "output the answer as JSON")

	rootCmd.AddCommand(askCmd)
}
