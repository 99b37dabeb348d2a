// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ResearchMind chat
// engine: the corpus record model, ranking results, conversation turns,
// intent flags, and stage configuration.
package types

// PaperRecord holds the metadata for one paper in the corpus. Records are
// immutable once loaded; the corpus keeps them in source order and a
// record has no identity beyond its position (titles are not unique).
type PaperRecord struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Summary is the paper abstract.
	Summary string `json:"summary" yaml:"summary"`

	// RawTerms is the serialized category-tag list exactly as read from
	// the source, e.g. "['cs.LG', 'stat.ML']". It is decoded on demand;
	// malformed values decode to no tags, never to an error.
	RawTerms string `json:"raw_terms" yaml:"raw_terms"`
}

// ScoredMatch pairs a record with its relevance score for one ranking
// call. Scores are not comparable across queries.
type ScoredMatch struct {
	Score  int         `json:"score" yaml:"score"`
	Record PaperRecord `json:"record" yaml:"record"`
}

// CategoryFilter restricts retrieval to records carrying at least one tag
// with an allowed prefix. FilterAll disables filtering.
type CategoryFilter string

const (
	FilterAll             CategoryFilter = "All"
	FilterMachineLearning CategoryFilter = "Machine Learning"
	FilterComputerVision  CategoryFilter = "Computer Vision"
	FilterNLP             CategoryFilter = "NLP"
	FilterRobotics        CategoryFilter = "Robotics"
	FilterAI              CategoryFilter = "AI"
	FilterSystems         CategoryFilter = "Systems"
)

// categoryPrefixes maps each filter to its allowed tag prefixes.
var categoryPrefixes = map[CategoryFilter][]string{
	FilterMachineLearning: {"cs.LG", "stat.ML"},
	FilterComputerVision:  {"cs.CV"},
	FilterNLP:             {"cs.CL", "cs.IR"},
	FilterRobotics:        {"cs.RO"},
	FilterAI:              {"cs.AI"},
	FilterSystems:         {"cs.DC", "cs.OS", "cs.NI"},
}

// Prefixes returns the allowed tag prefixes for the filter. FilterAll and
// unknown filters return nil, meaning no restriction.
func (f CategoryFilter) Prefixes() []string {
	return categoryPrefixes[f]
}

// IsValid reports whether f is one of the known filters.
func (f CategoryFilter) IsValid() bool {
	if f == FilterAll {
		return true
	}
	_, ok := categoryPrefixes[f]
	return ok
}

// Filters lists all known category filters in display order.
func Filters() []CategoryFilter {
	return []CategoryFilter{
		FilterAll,
		FilterMachineLearning,
		FilterComputerVision,
		FilterNLP,
		FilterAI,
		FilterRobotics,
		FilterSystems,
	}
}
