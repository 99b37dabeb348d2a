// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imageref derives external image-lookup references from user
// queries. References are plain URL strings; the engine never fetches or
// validates them.
package imageref

import "strings"

// DefaultBaseURL is the lookup prefix used when configuration does not
// override it.
const DefaultBaseURL = "https://source.unsplash.com/800x400/?"

// fillerWords are dropped from the query before building a search term.
var fillerWords = map[string]bool{
	"show": true, "image": true, "picture": true, "diagram": true,
	"figure": true, "of": true, "me": true, "a": true, "an": true,
	"the": true,
}

// SearchTerm reduces a query to a comma-joined search term: lowercase
// words, punctuation trimmed, filler words removed. Empty output means no
// usable term survived.
func SearchTerm(query string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word == "" || fillerWords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, ",")
}

// URL builds the image-lookup reference for the query, or "" when no
// search term could be derived.
func URL(baseURL, query string) string {
	term := SearchTerm(query)
	if term == "" {
		return ""
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return baseURL + term
}

// Resolver returns an image resolver bound to baseURL, suitable for
// wiring into the chat engine.
func Resolver(baseURL string) func(query string) string {
	return func(query string) string {
		return URL(baseURL, query)
	}
}
