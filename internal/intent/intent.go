// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent derives per-turn boolean intents from a raw query
// string. Each detector is a pure predicate over a fixed keyword table;
// there is no weighting and no NLP. The detectors are independent, so any
// combination of flags can fire on one query. False positives are a known
// and accepted property of this design, not a bug.
package intent

import (
	"strings"

	"github.com/pdiddy/researchmind/pkg/types"
)

// researchKeywords is the academic and technical vocabulary that marks a
// query as a research question.
var researchKeywords = []string{
	"research", "study", "paper", "literature", "review", "analysis", "explain",
	"what is", "how does", "theory", "algorithm", "model", "neural", "machine learning",
	"deep learning", "nlp", "llm", "transformer", "attention", "rag", "agent",
	"multi-agent", "embedding", "dataset", "benchmark", "methodology", "findings",
	"abstract", "introduction", "conclusion", "survey", "overview", "compare",
	"difference between", "advantages", "disadvantages", "applications", "future",
	"challenges", "limitations", "quantum", "blockchain", "computer vision",
	"reinforcement", "fine-tuning", "prompt", "vector", "knowledge graph",
	"semantic", "ontology", "arxiv", "find papers", "search papers",
}

var pdfKeywords = []string{
	"pdf", "download", "export", "report", "document", "save",
}

var summaryKeywords = []string{
	"summarise", "summarize", "summary", "summarization",
	"brief", "overview of papers", "tldr", "tl;dr",
}

var imageKeywords = []string{
	"image", "picture", "diagram", "figure", "show me", "visualize",
}

// containsAny reports whether the lowercased query contains any keyword.
func containsAny(query string, keywords []string) bool {
	q := strings.ToLower(query)
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// IsResearch reports whether the query reads like an academic question.
func IsResearch(query string) bool { return containsAny(query, researchKeywords) }

// WantsPDF reports whether the query asks for a document export.
func WantsPDF(query string) bool { return containsAny(query, pdfKeywords) }

// WantsSummary reports whether the query asks for a multi-paper summary.
func WantsSummary(query string) bool { return containsAny(query, summaryKeywords) }

// WantsImage reports whether the query asks for an illustration.
func WantsImage(query string) bool { return containsAny(query, imageKeywords) }

// Classify runs all four detectors over the query.
func Classify(query string) types.IntentFlags {
	return types.IntentFlags{
		Research: IsResearch(query),
		PDF:      WantsPDF(query),
		Summary:  WantsSummary(query),
		Image:    WantsImage(query),
	}
}
