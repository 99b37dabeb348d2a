// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat owns per-session conversation state and orchestrates one
// user turn: intent classification, retrieval, generation path selection,
// and attachment handling. A session is single-writer by construction;
// the caller serializes turns, so no locking is needed.
package chat

import "github.com/pdiddy/researchmind/pkg/types"

// Session holds the mutable state of one conversation: the append-only
// turn history, the selected category filter, and the two-slot cache of
// the most recent research answer used by later export-only requests.
type Session struct {
	// Filter is the active category filter for retrieval.
	Filter types.CategoryFilter

	turns       []types.ConversationTurn
	lastTopic   string
	lastContent string
}

// NewSession creates a session with the given retrieval filter. An
// invalid or empty filter falls back to FilterAll.
func NewSession(filter types.CategoryFilter) *Session {
	if !filter.IsValid() || filter == "" {
		filter = types.FilterAll
	}
	return &Session{Filter: filter}
}

// Append records a turn. Turns are never edited in place.
func (s *Session) Append(t types.ConversationTurn) {
	s.turns = append(s.turns, t)
}

// Turns returns the recorded turns in order. The returned slice must be
// treated as read-only.
func (s *Session) Turns() []types.ConversationTurn {
	return s.turns
}

// CacheResearch stores the most recent research topic and answer so a
// later export-only turn can recover the content to render.
func (s *Session) CacheResearch(topic, content string) {
	s.lastTopic = topic
	s.lastContent = content
}

// LastResearch returns the cached research topic and answer, empty when
// no research turn has completed yet.
func (s *Session) LastResearch() (topic, content string) {
	return s.lastTopic, s.lastContent
}
