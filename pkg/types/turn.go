// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Role tags a conversation message by its author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged message sent to the generation collaborator.
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// IntentFlags holds the four independent boolean intents derived from one
// user query. All four may fire together or not at all; detection is
// keyword-based and deliberately approximate, so false positives are
// expected.
type IntentFlags struct {
	// Research indicates the query reads like an academic or technical
	// question and should receive a literature-grounded answer.
	Research bool `json:"research" yaml:"research"`

	// PDF indicates the query asks for a document export.
	PDF bool `json:"pdf" yaml:"pdf"`

	// Summary indicates the query asks for a multi-paper summary.
	Summary bool `json:"summary" yaml:"summary"`

	// Image indicates the query asks for an illustration.
	Image bool `json:"image" yaml:"image"`
}

// ConversationTurn is one user query or assistant response. Turns are
// append-only: the session records them in order and never edits one in
// place.
type ConversationTurn struct {
	// Role is RoleUser or RoleAssistant.
	Role Role `json:"role" yaml:"role"`

	// Text is the query or answer text.
	Text string `json:"text" yaml:"text"`

	// Research marks the turn as a literature-grounded deliverable,
	// eligible for document export.
	Research bool `json:"research" yaml:"research"`

	// Retrieved lists the corpus records that backed this turn, if any.
	Retrieved []PaperRecord `json:"retrieved,omitempty" yaml:"retrieved,omitempty"`

	// ImageURL is an external image-lookup reference attached to the
	// turn. It is never fetched or validated by the engine.
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`

	// Document holds rendered PDF bytes when a document was attached.
	Document []byte `json:"document,omitempty" yaml:"document,omitempty"`

	// DocumentTopic is the topic the attached document was built for.
	DocumentTopic string `json:"document_topic,omitempty" yaml:"document_topic,omitempty"`
}
