package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchmind/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <markdown-file>",
	Short: "Render a markdown answer as a PDF report",
	Long: `Export renders a markdown file through the report generator, producing
the same styled PDF the assistant attaches to research answers. Use --text
to pass the body inline instead of a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		out, _ := cmd.Flags().GetString("out")
		text, _ := cmd.Flags().GetString("text")

		var body string
		switch {
		case text != "":
			body = text
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			body = string(data)
		default:
			return fmt.Errorf("provide a markdown file or --text")
		}

		if topic == "" {
			topic = "Research Summary"
		}
		if out == "" {
			out = topicSlug(topic) + ".pdf"
		}
		if !strings.HasSuffix(out, ".pdf") {
			out += ".pdf"
		}

		pdf, err := report.NewRenderer().Render(topic, body, nil)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("topic", "", "report topic shown on the cover page")
	exportCmd.Flags().String("out", "", "output PDF path (default: derived from topic)")
	exportCmd.Flags().String("text", "", "inline markdown body instead of a file")

	rootCmd.AddCommand(exportCmd)
}
