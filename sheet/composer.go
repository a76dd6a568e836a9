// Package sheet composes rotated source pages onto fixed-size output
// sheets.
//
// A [Composer] owns one output document. Source pages are imported as
// form XObject templates via gofpdi, then drawn rotated 90 degrees
// counter-clockwise into the slots computed by the geom package. The
// source document is never modified.
package sheet

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/tsawler/imposa/geom"
)

// Composer builds an output document one sheet at a time. It is owned
// by a single caller; methods must not be invoked concurrently.
type Composer struct {
	pdf    *fpdf.Fpdf
	imp    *gofpdi.Importer
	size   geom.Size
	sheets int
}

// NewComposer creates a composer producing sheets of the given size.
func NewComposer(size geom.Size) *Composer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: size.W, Ht: size.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	return &Composer{
		pdf:  pdf,
		imp:  gofpdi.NewImporter(),
		size: size,
	}
}

// ComposeSheet adds one sheet and places the given source pages
// (1-based page numbers of file) into its slots, in order. Fewer pages
// than the layout capacity leave the trailing slots blank.
//
// All source pages are imported and measured before the sheet is
// added, so a failed sheet leaves no trace in the output document. The
// underlying importer panics on malformed page streams; that is
// recovered here and reported as an error for this sheet only, leaving
// the composer usable for the remaining sheets.
func (c *Composer) ComposeSheet(file string, pageNums []int, layout geom.Layout, gap, sizeFactor float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compose sheet from pages %v: %v", pageNums, r)
		}
	}()

	slots, err := geom.Slots(c.size, layout, gap, len(pageNums))
	if err != nil {
		return err
	}

	type imported struct {
		tpl  int
		w, h float64
	}
	pages := make([]imported, 0, len(pageNums))
	for _, n := range pageNums {
		tpl := c.imp.ImportPage(c.pdf, file, n, "/MediaBox")
		w, h := c.pageDims(n)
		if w <= 0 || h <= 0 {
			return fmt.Errorf("page %d of %s has no media box", n, file)
		}
		pages = append(pages, imported{tpl: tpl, w: w, h: h})
	}

	c.pdf.AddPage()
	c.sheets++

	for i, p := range pages {
		c.place(p.tpl, p.w, p.h, slots[i], sizeFactor)
	}

	if c.pdf.Err() {
		return fmt.Errorf("compose sheet: %w", c.pdf.Error())
	}
	return nil
}

// pageDims returns the media box dimensions recorded by the importer
// for the most recently imported source file.
func (c *Composer) pageDims(pageNum int) (w, h float64) {
	sizes := c.imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	return w, h
}

// place draws one imported template rotated 90 degrees counter-clockwise
// into its slot. The template is drawn upright at its scaled source
// size, centered on the slot's content center, then rotated about that
// center; the rotated footprint is exactly the placement computed by
// geom.Fit.
func (c *Composer) place(tpl int, srcW, srcH float64, slot geom.Rect, sizeFactor float64) {
	p := geom.Fit(srcW, srcH, slot, sizeFactor)

	// fpdf's y axis runs top-down.
	cx := p.TX + p.ContentW()/2
	cy := c.size.H - (p.TY + p.ContentH()/2)

	drawW := srcW * p.Scale
	drawH := srcH * p.Scale

	c.pdf.TransformBegin()
	c.pdf.TransformRotate(90, cx, cy)
	c.imp.UseImportedTemplate(c.pdf, tpl, cx-drawW/2, cy-drawH/2, drawW, drawH)
	c.pdf.TransformEnd()
}

// Sheets returns the number of sheets added so far.
func (c *Composer) Sheets() int {
	return c.sheets
}

// Write serializes the composed document to w.
func (c *Composer) Write(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("write composed document: %w", err)
	}
	return nil
}
