package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/imposa/document"
	"github.com/tsawler/imposa/geom"
	"github.com/tsawler/imposa/internal/testpdf"
)

func TestComposeSheets(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.pdf")
	testpdf.WriteFile(t, src, 3)

	c := NewComposer(geom.PageSizeA4)

	if err := c.ComposeSheet(src, []int{1, 2}, geom.SideBySide, 20, 1.0); err != nil {
		t.Fatalf("ComposeSheet(1,2) error: %v", err)
	}
	if err := c.ComposeSheet(src, []int{3}, geom.SideBySide, 20, 1.0); err != nil {
		t.Fatalf("ComposeSheet(3) error: %v", err)
	}
	if c.Sheets() != 2 {
		t.Errorf("Sheets() = %d, want 2", c.Sheets())
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with %PDF header")
	}
}

func TestComposeSheetTooManyPages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.pdf")
	testpdf.WriteFile(t, src, 3)

	c := NewComposer(geom.PageSizeA4)
	if err := c.ComposeSheet(src, []int{1, 2, 3}, geom.SideBySide, 20, 1.0); err == nil {
		t.Error("placing 3 pages in a 2-slot layout should fail")
	}
}

func TestComposeSheetRecoversFromBadSource(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pdf")
	testpdf.WriteFile(t, good, 1)

	c := NewComposer(geom.PageSizeA4)

	// The importer panics on files it cannot parse; the composer must
	// turn that into an error and stay usable.
	if err := c.ComposeSheet(filepath.Join(dir, "missing.pdf"), []int{1}, geom.SideBySide, 20, 1.0); err == nil {
		t.Fatal("composing from a missing source should fail")
	}
	if c.Sheets() != 0 {
		t.Errorf("Sheets() after failed compose = %d, want 0", c.Sheets())
	}

	if err := c.ComposeSheet(good, []int{1}, geom.SideBySide, 20, 1.0); err != nil {
		t.Fatalf("composer unusable after failed sheet: %v", err)
	}

	// The failed sheet must not survive as a blank page in the output.
	if c.Sheets() != 1 {
		t.Errorf("Sheets() after 1 failed + 1 good compose = %d, want 1", c.Sheets())
	}
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	path := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	if n, err := document.PageCount(path); err != nil || n != 1 {
		t.Errorf("output page count = %d, %v; want 1", n, err)
	}
}
