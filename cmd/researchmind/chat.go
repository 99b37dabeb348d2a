package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/researchmind/internal/chat"
	"github.com/pdiddy/researchmind/internal/llm"
	"github.com/pdiddy/researchmind/pkg/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive research assistant session",
	Long: `Chat starts an interactive session with the research assistant. Queries
classified as research questions are answered with context retrieved from
the configured arXiv corpus; casual queries get a plain conversational
reply. Ask for a PDF to export the most recent research answer as a report.

Session commands: /filter <category> restricts retrieval, /filters lists
categories, /history replays the conversation, /quit exits.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().String("category", "", "restrict retrieval to a category filter")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := loadAppConfig()
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		cfg.Retrieval.Category = types.CategoryFilter(v)
	}

	records, err := loadCorpus(cfg.Corpus, true)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		color.Yellow("Corpus %s not found or empty; answering without retrieval context.", cfg.Corpus.Path)
	} else {
		fmt.Fprintf(os.Stderr, "Corpus loaded: %d papers\n", len(records))
	}

	engine, err := buildEngine(cfg, records)
	if err != nil {
		return err
	}
	if err := llm.Ping(cmd.Context(), cfg.LLM.BaseURL); err != nil {
		color.Yellow("Could not reach LLM at %s: %v", cfg.LLM.BaseURL, err)
		if cfg.LLM.Provider == types.ProviderOllama {
			color.Yellow("Is `ollama serve` running?")
		}
	}

	session := chat.NewSession(cfg.Retrieval.Category)
	repl(cmd.Context(), engine, session, cfg)
	return nil
}

// repl runs the read-eval-print loop until EOF or /quit.
func repl(ctx context.Context, engine *chat.Engine, session *chat.Session, cfg types.AppConfig) {
	userLabel := color.New(color.FgCyan, color.Bold).SprintFunc()
	botLabel := color.New(color.FgGreen, color.Bold).SprintFunc()
	meta := color.New(color.FgHiBlack).SprintFunc()

	fmt.Println("ResearchMind AI. Ask about papers, or /quit to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s ", userLabel("you>"))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.HasPrefix(query, "/") {
			if quit := replCommand(query, session, meta); quit {
				return
			}
			continue
		}

		turn := engine.Respond(ctx, session, query)

		fmt.Printf("%s %s\n", botLabel("assistant>"), turn.Text)
		if len(turn.Retrieved) > 0 {
			fmt.Println(meta(fmt.Sprintf("  [%d papers retrieved]", len(turn.Retrieved))))
			for _, r := range turn.Retrieved {
				fmt.Println(meta("   - " + r.Title))
			}
		}
		if turn.ImageURL != "" {
			fmt.Println(meta("  image: " + turn.ImageURL))
		}
		if len(turn.Document) > 0 {
			path, err := writeDocument(cfg.Report.OutputDir, turn)
			if err != nil {
				color.Red("  could not save report: %v", err)
			} else {
				fmt.Println(meta("  report saved: " + path))
			}
		}
	}
}

// replCommand handles slash commands; it reports whether the loop should
// exit.
func replCommand(input string, session *chat.Session, meta func(...interface{}) string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/filters":
		for _, f := range types.Filters() {
			fmt.Println(meta(string(f)))
		}
	case "/filter":
		if len(fields) < 2 {
			fmt.Println(meta("current filter: " + string(session.Filter)))
			break
		}
		f := types.CategoryFilter(fields[1])
		if !f.IsValid() {
			color.Red("unknown filter %q (see /filters)", fields[1])
			break
		}
		session.Filter = f
		fmt.Println(meta("filter set to " + string(f)))
	case "/history":
		for _, t := range session.Turns() {
			fmt.Printf("%s: %s\n", t.Role, t.Text)
		}
	default:
		color.Red("unknown command %s", fields[0])
	}
	return false
}
