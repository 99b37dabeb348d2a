// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/researchmind/pkg/types"
)

func testCorpus() []types.PaperRecord {
	return []types.PaperRecord{
		{
			Title:    "Deep Learning Survey",
			Summary:  "A broad review of deep learning methods and architectures.",
			RawTerms: "['cs.LG']",
		},
		{
			Title:    "Cooking Tips",
			Summary:  "Recipes and kitchen technique for home cooks.",
			RawTerms: "['misc']",
		},
		{
			Title:    "Vision Transformers",
			Summary:  "Transformers applied to image classification.",
			RawTerms: "['cs.CV']",
		},
	}
}

// --- QueryTerms ---

func TestQueryTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercases and dedupes", "Deep DEEP deep learning", []string{"deep", "learning"}},
		{"drops short tokens", "ml is ok", nil},
		{"drops stop words", "please tell me about the transformers", []string{"transformers"}},
		{"only stop words", "what does the have", nil},
		{"empty query", "", nil},
		{"whitespace query", "   \t  ", nil},
		{"keeps order of first occurrence", "gradient descent gradient", []string{"gradient", "descent"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QueryTerms(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QueryTerms(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// --- Rank ---

func TestRankReturnsOnlyMatchingRecords(t *testing.T) {
	got := Rank("deep learning", testCorpus(), 5, types.FilterAll)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Title != "Deep Learning Survey" {
		t.Errorf("got %q, want the deep learning record", got[0].Title)
	}
}

func TestRankEmptyInputs(t *testing.T) {
	corpus := testCorpus()
	tests := []struct {
		name   string
		query  string
		corpus []types.PaperRecord
		topK   int
	}{
		{"empty corpus", "deep learning", nil, 5},
		{"empty query", "", corpus, 5},
		{"whitespace query", "   ", corpus, 5},
		{"stop words only", "please tell me about the", corpus, 5},
		{"zero topK", "deep learning", corpus, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rank(tt.query, tt.corpus, tt.topK, types.FilterAll); len(got) != 0 {
				t.Errorf("Rank() returned %d records, want 0", len(got))
			}
		})
	}
}

func TestRankRespectsTopK(t *testing.T) {
	records := []types.PaperRecord{
		{Title: "Transformer A", Summary: "transformer", RawTerms: "[]"},
		{Title: "Transformer B", Summary: "transformer", RawTerms: "[]"},
		{Title: "Transformer C", Summary: "transformer", RawTerms: "[]"},
	}
	got := Rank("transformer", records, 2, types.FilterAll)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestRankTitleBonusOrdersResults(t *testing.T) {
	records := []types.PaperRecord{
		{
			Title:    "Unrelated Title",
			Summary:  "attention attention attention attention attention",
			RawTerms: "[]",
		},
		{
			Title:    "Attention Mechanisms",
			Summary:  "attention",
			RawTerms: "[]",
		},
	}
	// Body-only: score 5. Title match: 2 occurrences + bonus 5 = 7.
	got := Matches("attention", records, types.FilterAll)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Record.Title != "Attention Mechanisms" {
		t.Errorf("first = %q, want title-matching record first", got[0].Record.Title)
	}
	if got[0].Score != 7 || got[1].Score != 5 {
		t.Errorf("scores = %d, %d, want 7, 5", got[0].Score, got[1].Score)
	}
}

func TestRankSubstringCounting(t *testing.T) {
	records := []types.PaperRecord{
		{Title: "On Hyperparameters", Summary: "tuning hyperparameters", RawTerms: "[]"},
	}
	// "parameter" is a substring of "hyperparameters" and counts.
	got := Matches("parameter", records, types.FilterAll)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: substring matches must score", len(got))
	}
	// Two occurrences in text plus the title bonus.
	if got[0].Score != 2+titleBonus {
		t.Errorf("score = %d, want %d", got[0].Score, 2+titleBonus)
	}
}

func TestRankStableTies(t *testing.T) {
	records := []types.PaperRecord{
		{Title: "Graph Paper One", Summary: "graph", RawTerms: "[]"},
		{Title: "Graph Paper Two", Summary: "graph", RawTerms: "[]"},
		{Title: "Graph Paper Three", Summary: "graph", RawTerms: "[]"},
	}
	got := Rank("graph", records, 5, types.FilterAll)
	want := []string{"Graph Paper One", "Graph Paper Two", "Graph Paper Three"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d = %q, want %q (ties must keep corpus order)", i, got[i].Title, title)
		}
	}
}

func TestRankCategoryFilterIsHardExclusion(t *testing.T) {
	// The cooking record would score highest for this query, but its tags
	// share no allowed prefix, so it is excluded, not penalized.
	records := []types.PaperRecord{
		{
			Title:    "Transformer Cooking Masterclass",
			Summary:  "transformer transformer transformer",
			RawTerms: "['misc']",
		},
		{
			Title:    "Transformer Models",
			Summary:  "A study of transformer models.",
			RawTerms: "['cs.LG']",
		},
	}
	got := Rank("transformer", records, 5, types.FilterMachineLearning)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Title != "Transformer Models" {
		t.Errorf("got %q, want the cs.LG record only", got[0].Title)
	}
}

func TestRankFilterWithMalformedTags(t *testing.T) {
	records := []types.PaperRecord{
		{Title: "Broken Tags", Summary: "transformer", RawTerms: "not a list"},
	}
	// Malformed tags decode to none, so any active filter excludes the record.
	if got := Rank("transformer", records, 5, types.FilterAI); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	// With no filter the record still ranks.
	if got := Rank("transformer", records, 5, types.FilterAll); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestRankIdempotent(t *testing.T) {
	records := testCorpus()
	first := Rank("transformers image classification", records, 5, types.FilterAll)
	second := Rank("transformers image classification", records, 5, types.FilterAll)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated ranking differs: %v vs %v", first, second)
	}
}

func TestRankEveryResultContainsAQueryTerm(t *testing.T) {
	got := Rank("learning transformers", testCorpus(), 5, types.FilterAll)
	if len(got) == 0 {
		t.Fatal("expected matches")
	}
	for _, rec := range got {
		text := strings.ToLower(rec.Title + " " + rec.Summary)
		if !strings.Contains(text, "learning") && !strings.Contains(text, "transformers") {
			t.Errorf("record %q contains no query term", rec.Title)
		}
	}
}

// --- formatters ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Matches("deep learning", testCorpus(), types.FilterAll), &buf)
	out := buf.String()
	if !strings.Contains(out, "Deep Learning Survey") {
		t.Errorf("table output missing title:\n%s", out)
	}
	if !strings.Contains(out, "cs.LG") {
		t.Errorf("table output missing categories:\n%s", out)
	}

	buf.Reset()
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No matching papers.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(Matches("deep learning", testCorpus(), types.FilterAll), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"score"`) {
		t.Errorf("json output missing score field:\n%s", buf.String())
	}
}
