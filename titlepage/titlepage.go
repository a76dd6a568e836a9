// Package titlepage renders single-page separator documents bearing a
// centered title, used during directory merges to label each source
// file.
package titlepage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/imposa/geom"
)

const (
	fontFamily = "Helvetica"
	fontStyle  = "B"
	fontSize   = 32

	// lineHeight is the baseline step between wrapped lines.
	lineHeight = fontSize * 1.2

	// widthBudget is the fraction of the sheet width a line may occupy
	// before wrapping.
	widthBudget = 0.8
)

// Page is a rendered one-page PDF document held in memory.
type Page struct {
	data []byte
}

// Bytes returns the serialized PDF.
func (p *Page) Bytes() []byte {
	return p.data
}

// Reader returns a fresh reader over the serialized PDF.
func (p *Page) Reader() *bytes.Reader {
	return bytes.NewReader(p.data)
}

// Generate renders text centered on a single page of the given size.
//
// Empty or whitespace-only text yields (nil, nil): no page is produced
// and that is not an error. Text wider than 80% of the page width is
// word-wrapped greedily; the wrapped block is vertically centered.
// Rendering failures are returned as errors for the caller to degrade
// to "no title page".
func Generate(text string, size geom.Size) (*Page, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: size.W, Ht: size.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(fontFamily, fontStyle, fontSize)

	maxWidth := size.W * widthBudget
	lines := wrap(text, maxWidth, pdf.GetStringWidth)

	// Vertical centering of the block; a single line lands on the
	// exact page midpoint. Coordinates here are baseline-from-bottom,
	// flipped for fpdf on output.
	startY := size.H/2 + float64(len(lines)-1)*lineHeight/2
	for i, line := range lines {
		y := startY - float64(i)*lineHeight
		x := (size.W - pdf.GetStringWidth(line)) / 2
		pdf.Text(x, size.H-y, line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render title page for %q: %w", text, err)
	}
	return &Page{data: buf.Bytes()}, nil
}

// wrap splits text into lines whose measured width stays within
// maxWidth. Words are accumulated greedily; a single word wider than
// the budget is kept whole on its own line, never truncated. Text that
// already fits is returned unmodified as a single line.
func wrap(text string, maxWidth float64, width func(string) float64) []string {
	if width(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if width(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
		if width(current) > maxWidth {
			lines = append(lines, current)
			current = ""
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
