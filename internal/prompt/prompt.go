// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt renders retrieval context blocks and the system
// instructions for each generation path.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pdiddy/researchmind/internal/corpus"
	"github.com/pdiddy/researchmind/pkg/types"
)

// inlineSummaryBudget caps the abstract length when papers are embedded
// as inline context. The summarization path uses full abstracts instead;
// the two call sites deliberately use different truncation policies.
const inlineSummaryBudget = 600

// InlineContext renders ranked records into the context block embedded in
// a research-mode system instruction. Abstracts are truncated to the
// inline budget. Empty input yields an empty string, which signals "no
// retrieval context" to the orchestrator.
func InlineContext(papers []types.PaperRecord) string {
	if len(papers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("RELEVANT PAPERS FROM ARXIV DATASET:\n\n")
	for i, p := range papers {
		writePaper(&b, i+1, p, truncateRunes(p.Summary, inlineSummaryBudget)+"...")
	}
	return b.String()
}

// FullContext renders ranked records with untruncated abstracts for the
// summarization path.
func FullContext(papers []types.PaperRecord) string {
	var b strings.Builder
	for i, p := range papers {
		writePaper(&b, i+1, p, p.Summary)
	}
	return b.String()
}

func writePaper(b *strings.Builder, n int, p types.PaperRecord, abstract string) {
	fmt.Fprintf(b, "[Paper %d] %s\n", n, p.Title)
	fmt.Fprintf(b, "Categories: %s\n", strings.Join(corpus.ParseTerms(p.RawTerms), ", "))
	fmt.Fprintf(b, "Abstract: %s\n\n", abstract)
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// CasualSystem is the system instruction for non-research conversation.
const CasualSystem = `You are ResearchMind AI -- a smart, friendly assistant specialised in academic research.
For casual conversation, respond naturally and concisely. Be warm, clear, and helpful.`

// researchSystemTemplate embeds the retrieval context block and directs
// the model to produce the six research report sections.
const researchSystemTemplate = `You are ResearchMind AI -- an expert academic research assistant powered by a database of 51,000+ ArXiv papers.

%s

Using the papers above (if any were found) AND your own knowledge, answer the user's question in this structure:

## Overview
[2-3 sentence summary]

## Key Concepts
[Bullet points of main ideas]

## Detailed Explanation
[In-depth explanation with examples]

## Insights from ArXiv Dataset
[Reference the provided papers where relevant, mention their titles]

## Applications & Current Research
[Recent developments, trends, benchmarks]

## References & Further Reading
[Suggest key papers or resources]

Be thorough, academic, yet accessible. Always connect findings to the retrieved ArXiv papers.`

// noContextNotice replaces the context block when retrieval found nothing.
const noContextNotice = "No papers retrieved from dataset for this query."

// ResearchSystem returns the research-mode system instruction with the
// given context block embedded, or with a literal no-papers notice when
// the block is empty.
func ResearchSystem(contextBlock string) string {
	if contextBlock == "" {
		contextBlock = noContextNotice
	}
	return fmt.Sprintf(researchSystemTemplate, contextBlock)
}

// SummarizeSystem is the system instruction for the summarization path.
// It demands the six fixed output sections.
const SummarizeSystem = `You are ResearchMind AI -- an expert academic summariser.

Given one or more ArXiv paper abstracts, produce a clean structured summary in this format:

## Executive Summary
[3-4 sentence high-level summary of all retrieved papers combined]

## Papers Covered
[Numbered list: paper title -- one-line description]

## Core Themes & Findings
[Bullet points of the most important shared or distinct findings]

## Key Contributions
[What is novel or significant about these works]

## Practical Implications
[Real-world relevance and applications]

## Conclusion
[2-3 sentence closing synthesis]

Be concise, accurate, and academic. Only use what is in the provided abstracts -- do not hallucinate.`

// SummarizeUser builds the user message carrying the full-text paper
// block for the summarization path.
func SummarizeUser(papers []types.PaperRecord) string {
	return fmt.Sprintf(
		"Please summarise the following %d ArXiv paper(s):\n\n%s\nProduce the full structured summary as instructed.",
		len(papers), FullContext(papers))
}
