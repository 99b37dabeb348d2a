package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/pdiddy/researchmind/internal/chat"
	"github.com/pdiddy/researchmind/internal/corpus"
	"github.com/pdiddy/researchmind/internal/imageref"
	"github.com/pdiddy/researchmind/internal/llm"
	"github.com/pdiddy/researchmind/internal/report"
	"github.com/pdiddy/researchmind/pkg/types"
)

// loadCorpus reads the configured corpus. CSV loads go through a byte
// progress bar on stderr; SQLite loads delegate to the corpus package
// directly since row counts are not known up front.
func loadCorpus(cfg types.CorpusConfig, showProgress bool) ([]types.PaperRecord, error) {
	if cfg.Format != types.CorpusCSV || !showProgress {
		return corpus.Load(cfg)
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening corpus %s: %w", cfg.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat corpus %s: %w", cfg.Path, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "loading corpus")
	records, err := corpus.ReadCSV(io.TeeReader(f, bar))
	_ = bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", cfg.Path, err)
	}
	return records, nil
}

// buildEngine assembles the chat engine from configuration: the LLM
// client, the optional PDF renderer, and the image reference resolver.
func buildEngine(cfg types.AppConfig, records []types.PaperRecord) (*chat.Engine, error) {
	gen, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("configuring llm: %w", err)
	}

	e := &chat.Engine{
		Corpus: records,
		Gen:    gen,
		Images: imageref.Resolver(cfg.Image.BaseURL),
		TopK:   cfg.Retrieval.TopK,
	}
	if cfg.Report.Enabled {
		e.Renderer = report.NewRenderer()
	}
	return e, nil
}

// writeDocument saves an attached PDF under dir using a slug derived from
// the document topic. It returns the written path.
func writeDocument(dir string, turn types.ConversationTurn) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s-%s.pdf", topicSlug(turn.DocumentTopic), time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, turn.Document, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// topicSlug converts a topic into a filesystem-friendly name, capped at
// 40 characters.
func topicSlug(topic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(topic) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "research-summary"
	}
	if len(slug) > 40 {
		slug = strings.Trim(slug[:40], "-")
	}
	return slug
}
