// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores corpus records against a free-text query and
// returns the most relevant ones. Scoring is deliberately simple: raw
// substring counts over the case-folded title and summary, with a fixed
// bonus for terms that also appear in the title. A query term that is a
// substring of a longer corpus word still counts; tests depend on this
// exact behavior, so it must not be "improved" into whole-word matching.
package rank

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/researchmind/internal/corpus"
	"github.com/pdiddy/researchmind/pkg/types"
)

// titleBonus is added once per query term found in the title. Title
// relevance is a stronger signal than body frequency.
const titleBonus = 5

// wordPattern extracts lowercase query tokens of length >= 3.
var wordPattern = regexp.MustCompile(`\b\w{3,}\b`)

// stopWords are dropped from the query-term set before scoring. The list
// covers articles, auxiliary verbs and conversational filler; a query
// reduced to nothing by this step retrieves nothing rather than falling
// back to unranked results.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "that": true, "this": true,
	"with": true, "are": true, "from": true, "have": true, "what": true,
	"how": true, "does": true, "explain": true, "tell": true, "me": true,
	"about": true, "please": true,
}

// QueryTerms tokenizes query into its deduplicated, stop-word-free term
// set, in first-occurrence order.
func QueryTerms(query string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(query), -1) {
		if stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// Matches scores every record against the query and returns the scoring
// ones in descending score order, ties broken by corpus order. An active
// category filter is a hard exclusion: a record whose decoded tags share
// no allowed prefix is discarded no matter how well it scores.
func Matches(query string, records []types.PaperRecord, filter types.CategoryFilter) []types.ScoredMatch {
	terms := QueryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	prefixes := filter.Prefixes()

	var scored []types.ScoredMatch
	for _, rec := range records {
		if prefixes != nil && !tagsAllowed(corpus.ParseTerms(rec.RawTerms), prefixes) {
			continue
		}

		text := strings.ToLower(rec.Title + " " + rec.Summary)
		title := strings.ToLower(rec.Title)

		score := 0
		for _, term := range terms {
			count := strings.Count(text, term)
			if count == 0 {
				continue
			}
			score += count
			if strings.Contains(title, term) {
				score += titleBonus
			}
		}
		if score > 0 {
			scored = append(scored, types.ScoredMatch{Score: score, Record: rec})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Rank returns the topK most relevant records for the query. Empty query,
// empty corpus, a query-term set emptied by stop-word removal, and
// non-positive topK each yield an empty result, not an error.
func Rank(query string, records []types.PaperRecord, topK int, filter types.CategoryFilter) []types.PaperRecord {
	if topK <= 0 {
		return nil
	}
	scored := Matches(query, records, filter)
	if len(scored) > topK {
		scored = scored[:topK]
	}
	out := make([]types.PaperRecord, 0, len(scored))
	for _, m := range scored {
		out = append(out, m.Record)
	}
	return out
}

func tagsAllowed(tags, prefixes []string) bool {
	for _, tag := range tags {
		for _, p := range prefixes {
			if strings.HasPrefix(tag, p) {
				return true
			}
		}
	}
	return false
}
