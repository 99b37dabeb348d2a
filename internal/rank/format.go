// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/researchmind/internal/corpus"
	"github.com/pdiddy/researchmind/pkg/types"
)

// FormatTable writes matches as a human-readable table to w.
func FormatTable(matches []types.ScoredMatch, w io.Writer) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matching papers.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-6s  %-60s  %s\n", "Rank", "Score", "Title", "Categories")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, m := range matches {
		title := m.Record.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		tags := strings.Join(corpus.ParseTerms(m.Record.RawTerms), ", ")
		fmt.Fprintf(w, "%-4d  %-6d  %-60s  %s\n", i+1, m.Score, title, tags)
	}

	fmt.Fprintf(w, "\n%d matching paper(s)\n", len(matches))
}

// FormatJSON writes matches as indented JSON to w.
func FormatJSON(matches []types.ScoredMatch, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}
