// Package testpdf builds small PDF fixtures for tests.
package testpdf

import (
	"fmt"
	"testing"

	"github.com/go-pdf/fpdf"
)

// WriteFile creates an n-page A4 PDF at path, each page carrying its
// page number as text.
func WriteFile(t *testing.T, path string, pages int) {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.Text(72, 72, fmt.Sprintf("page %d", i))
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}
