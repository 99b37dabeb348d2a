// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders answers into A4 PDF documents. The body text is
// loosely structured markdown: #/##/### headers, -/* bullets, numbered
// lines, and inline **bold** / *italic* markers. Retrieved paper metadata
// can be appended as an appendix.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/researchmind/internal/corpus"
	"github.com/pdiddy/researchmind/pkg/types"
)

const (
	pageMargin = 25.0
	bodyLineHt = 6.5
)

type color struct{ r, g, b int }

var (
	colorBlue    = color{26, 115, 232}
	colorGreen   = color{52, 168, 83}
	colorGrey    = color{95, 99, 104}
	colorDivider = color{218, 220, 224}
	colorBody    = color{33, 33, 33}
)

// Renderer builds PDF documents. The zero value is usable.
type Renderer struct{}

// NewRenderer returns a document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces a PDF with a cover block, the structured body, and an
// optional appendix of retrieved papers.
func (r *Renderer) Render(title, body string, appendix []types.PaperRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	writeCover(pdf, tr, title)
	writeBody(pdf, tr, body)
	if len(appendix) > 0 {
		writeAppendix(pdf, tr, appendix)
	}
	writeFooter(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return buf.Bytes(), nil
}

type translator func(string) string

func writeCover(pdf *fpdf.Fpdf, tr translator, title string) {
	setColor := func(c color) { pdf.SetTextColor(c.r, c.g, c.b) }

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 22)
	setColor(colorBlue)
	pdf.CellFormat(0, 12, tr("ResearchMind AI"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "BI", 12)
	pdf.CellFormat(0, 7, tr("ArXiv Research Summary Report"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 10)
	setColor(colorGrey)
	pdf.CellFormat(0, 6, tr("Topic: "+title), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("Generated: "+time.Now().Format("January 2, 2006  15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	divider(pdf, colorBlue, 0.5)
	pdf.Ln(5)
}

func writeBody(pdf *fpdf.Fpdf, tr translator, body string) {
	for _, b := range parseBlocks(body) {
		switch b.kind {
		case blockBlank:
			pdf.Ln(2)
		case blockHeading:
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetTextColor(colorBlue.r, colorBlue.g, colorBlue.b)
			pdf.MultiCell(0, 8, tr(b.text), "", "L", false)
			pdf.Ln(1)
		case blockSubheading:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(colorGreen.r, colorGreen.g, colorGreen.b)
			pdf.MultiCell(0, 7, tr(b.text), "", "L", false)
		case blockBullet:
			writeInline(pdf, tr, "• "+b.text, 11)
		case blockNumbered, blockParagraph:
			writeInline(pdf, tr, b.text, 11)
		}
	}
}

func writeAppendix(pdf *fpdf.Fpdf, tr translator, papers []types.PaperRecord) {
	pdf.Ln(6)
	divider(pdf, colorDivider, 0.3)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(colorBlue.r, colorBlue.g, colorBlue.b)
	pdf.MultiCell(0, 8, tr("Appendix: Retrieved ArXiv Papers"), "", "L", false)
	pdf.Ln(2)

	for i, p := range papers {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(colorGreen.r, colorGreen.g, colorGreen.b)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", i+1, p.Title)), "", "L", false)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(colorGrey.r, colorGrey.g, colorGrey.b)
		tags := strings.Join(corpus.ParseTerms(p.RawTerms), ", ")
		pdf.MultiCell(0, 5, tr("Categories: "+tags), "", "L", false)
		pdf.MultiCell(0, 5, tr(strings.ReplaceAll(p.Summary, "\n", " ")), "", "L", false)
		pdf.Ln(2)
	}
}

func writeFooter(pdf *fpdf.Fpdf, tr translator) {
	pdf.Ln(5)
	divider(pdf, colorDivider, 0.2)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorGrey.r, colorGrey.g, colorGrey.b)
	pdf.CellFormat(0, 6, tr("Generated by ResearchMind AI"), "", 1, "C", false, 0, "")
}

func divider(pdf *fpdf.Fpdf, c color, width float64) {
	pdf.SetDrawColor(c.r, c.g, c.b)
	pdf.SetLineWidth(width)
	pageW, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageW-pageMargin, y)
}

// writeInline renders one line with inline bold/italic markers, wrapping
// at the right margin.
func writeInline(pdf *fpdf.Fpdf, tr translator, text string, size float64) {
	pdf.SetTextColor(colorBody.r, colorBody.g, colorBody.b)
	for _, s := range parseInline(text) {
		style := ""
		if s.bold {
			style += "B"
		}
		if s.italic {
			style += "I"
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.Write(bodyLineHt, tr(s.text))
	}
	pdf.Ln(bodyLineHt)
}
