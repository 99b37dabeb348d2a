// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockBlank blockKind = iota
	blockHeading
	blockSubheading
	blockBullet
	blockNumbered
	blockParagraph
)

type block struct {
	kind blockKind
	text string
}

var numberedPattern = regexp.MustCompile(`^\d+\.\s`)

// parseBlocks classifies each line of loosely-structured markdown text.
// #/## become headings, ### a subheading, -/* bullets, "N. " numbered
// lines; everything else is a paragraph.
func parseBlocks(content string) []block {
	var blocks []block
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			blocks = append(blocks, block{kind: blockBlank})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, block{kind: blockSubheading, text: strings.TrimSpace(line[4:])})
		case strings.HasPrefix(line, "## "), strings.HasPrefix(line, "# "):
			blocks = append(blocks, block{kind: blockHeading, text: strings.TrimSpace(strings.TrimLeft(line, "#"))})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			blocks = append(blocks, block{kind: blockBullet, text: line[2:]})
		case numberedPattern.MatchString(line):
			blocks = append(blocks, block{kind: blockNumbered, text: line})
		default:
			blocks = append(blocks, block{kind: blockParagraph, text: line})
		}
	}
	return blocks
}

type inlineSpan struct {
	text   string
	bold   bool
	italic bool
}

// parseInline splits a line into spans at **bold** and *italic* markers.
// Markers toggle state; an unclosed marker simply styles the rest of the
// line, which is how the source models typically emit it.
func parseInline(line string) []inlineSpan {
	var (
		spans        []inlineSpan
		current      strings.Builder
		bold, italic bool
	)

	flush := func() {
		if current.Len() > 0 {
			spans = append(spans, inlineSpan{text: current.String(), bold: bold, italic: italic})
			current.Reset()
		}
	}

	i := 0
	for i < len(line) {
		if strings.HasPrefix(line[i:], "**") {
			flush()
			bold = !bold
			i += 2
			continue
		}
		if line[i] == '*' {
			flush()
			italic = !italic
			i++
			continue
		}
		current.WriteByte(line[i])
		i++
	}
	flush()

	if len(spans) == 0 {
		spans = append(spans, inlineSpan{text: ""})
	}
	return spans
}
