// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"context"
	"fmt"

	"github.com/pdiddy/researchmind/internal/intent"
	"github.com/pdiddy/researchmind/internal/prompt"
	"github.com/pdiddy/researchmind/internal/rank"
	"github.com/pdiddy/researchmind/pkg/types"
)

// Generator produces text from an ordered sequence of role-tagged
// messages. Implementations block until generation completes; the engine
// imposes no timeout of its own, so callers bound latency via ctx.
type Generator interface {
	Generate(ctx context.Context, msgs []types.Message) (string, error)
}

// Renderer turns an answer into document bytes. A nil Renderer on the
// engine means the capability is unavailable in this runtime; the engine
// then appends an advisory notice instead of failing the turn.
type Renderer interface {
	Render(title, body string, appendix []types.PaperRecord) ([]byte, error)
}

// ImageResolver derives an external image-lookup reference from the raw
// query. An empty result means no image could be derived; that is not an
// error.
type ImageResolver func(query string) string

const defaultTopK = 5

// Engine processes user turns against a read-only corpus using external
// generation and rendering collaborators.
type Engine struct {
	// Corpus is the read-only record collection available for retrieval.
	Corpus []types.PaperRecord

	// Gen is the text-generation collaborator. Required.
	Gen Generator

	// Renderer is the document-rendering collaborator, nil when PDF
	// output is unavailable.
	Renderer Renderer

	// Images derives image-lookup references, nil to disable.
	Images ImageResolver

	// TopK caps retrieval per turn. Zero means the default of 5.
	TopK int
}

// turnState carries one turn through the generation paths.
type turnState struct {
	query     string
	flags     types.IntentFlags
	prior     []types.ConversationTurn
	retrieved []types.PaperRecord

	text        string
	research    bool
	summaryPath bool
}

// generationPath is one guarded generation branch. Paths are evaluated in
// order and exactly one runs per turn.
type generationPath struct {
	name string
	when func(st *turnState) bool
	run  func(e *Engine, ctx context.Context, st *turnState)
}

// generationPaths is the ordered decision table for one turn. The
// summarization path wins whenever a summary was requested and retrieval
// found anything; everything else falls through to conversation.
var generationPaths = []generationPath{
	{
		name: "summarize",
		when: func(st *turnState) bool { return st.flags.Summary && len(st.retrieved) > 0 },
		run:  (*Engine).runSummarize,
	},
	{
		name: "converse",
		when: func(st *turnState) bool { return true },
		run:  (*Engine).runConverse,
	},
}

// Respond processes one user turn: classifies intents, retrieves records,
// runs exactly one generation path, computes the image and document
// attachments, and appends both the user and assistant turns to the
// session. It never returns an error; every failure is folded into the
// assistant turn per the error policy.
func (e *Engine) Respond(ctx context.Context, s *Session, query string) types.ConversationTurn {
	st := &turnState{
		query: query,
		flags: intent.Classify(query),
		prior: s.Turns(),
	}
	st.research = st.flags.Research

	if len(e.Corpus) > 0 && (st.flags.Research || st.flags.Summary) {
		st.retrieved = rank.Rank(query, e.Corpus, e.topK(), s.Filter)
	}

	s.Append(types.ConversationTurn{Role: types.RoleUser, Text: query})

	for _, p := range generationPaths {
		if p.when(st) {
			p.run(e, ctx, st)
			break
		}
	}

	if st.research {
		s.CacheResearch(st.query, st.text)
	}

	turn := types.ConversationTurn{
		Role:      types.RoleAssistant,
		Text:      st.text,
		Research:  st.research,
		Retrieved: st.retrieved,
	}

	e.attachImage(st, &turn)
	e.attachDocument(s, st, &turn)

	s.Append(turn)
	return turn
}

// runSummarize asks the model for a structured summary of the retrieved
// papers. A successful summary is promoted to research mode regardless of
// the original research flag: it counts as a research deliverable and
// becomes eligible for document export.
func (e *Engine) runSummarize(ctx context.Context, st *turnState) {
	msgs := []types.Message{
		{Role: types.RoleSystem, Content: prompt.SummarizeSystem},
		{Role: types.RoleUser, Content: prompt.SummarizeUser(st.retrieved)},
	}

	text, err := e.Gen.Generate(ctx, msgs)
	if err != nil {
		e.failTurn(st, err)
		return
	}
	st.text = text
	st.research = true
	st.summaryPath = true
}

// runConverse handles the research and casual conversation paths. The
// full prior history is replayed in order, with the current query
// appended as the final message.
func (e *Engine) runConverse(ctx context.Context, st *turnState) {
	system := prompt.CasualSystem
	if st.flags.Research {
		system = prompt.ResearchSystem(prompt.InlineContext(st.retrieved))
	}

	msgs := make([]types.Message, 0, len(st.prior)+2)
	msgs = append(msgs, types.Message{Role: types.RoleSystem, Content: system})
	for _, t := range st.prior {
		msgs = append(msgs, types.Message{Role: t.Role, Content: t.Text})
	}
	msgs = append(msgs, types.Message{Role: types.RoleUser, Content: st.query})

	text, err := e.Gen.Generate(ctx, msgs)
	if err != nil {
		e.failTurn(st, err)
		return
	}
	st.text = text
}

// failTurn converts a generation failure into a user-visible advisory and
// rolls the turn back to a non-research, no-papers state: the retrieval
// context was never used by a successful generation, so the research
// framing would be unbacked.
func (e *Engine) failTurn(st *turnState, err error) {
	st.text = fmt.Sprintf(
		"Could not reach the language model backend. Make sure the server is running and the configured model is available.\n\nError: %v", err)
	st.research = false
	st.retrieved = nil
	st.summaryPath = false
}

// attachImage derives and attaches an image-lookup reference when the
// query asked for one. Failure to derive a reference is swallowed; the
// turn simply has no image.
func (e *Engine) attachImage(st *turnState, turn *types.ConversationTurn) {
	if !st.flags.Image || e.Images == nil {
		return
	}
	turn.ImageURL = e.Images(st.query)
}

// pdfUnavailableNotice is appended to the answer when a document was
// requested but rendering is unavailable or failed.
const pdfUnavailableNotice = "\n\n> PDF generation is unavailable: enable the report renderer in the configuration."

// attachDocument renders and attaches a PDF when one was requested, or
// automatically after a successful summarization. The document is built
// from the cached last research answer when one exists, so a later
// "export that as PDF" turn with no retrieval of its own still exports
// the most recent research content.
func (e *Engine) attachDocument(s *Session, st *turnState, turn *types.ConversationTurn) {
	wanted := st.flags.PDF || (st.summaryPath && st.research && st.text != "")
	if !wanted {
		return
	}

	topic, content := s.LastResearch()
	if topic == "" {
		topic = st.query
	}
	if content == "" {
		content = st.text
	}

	var doc []byte
	var err error
	if e.Renderer != nil {
		doc, err = e.Renderer.Render(topic, content, st.retrieved)
	}
	if err != nil || len(doc) == 0 {
		turn.Text += pdfUnavailableNotice
		return
	}
	turn.Document = doc
	turn.DocumentTopic = topic
}

func (e *Engine) topK() int {
	if e.TopK > 0 {
		return e.TopK
	}
	return defaultTopK
}
