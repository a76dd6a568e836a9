// Package imposa provides a fluent API for batch PDF manipulation:
// merging a directory of PDFs with generated filename title pages, and
// rotating pages 90 degrees to pack 2-3 of them per printable sheet.
//
// Merging a directory:
//
//	merged, warnings, err := imposa.OpenDir("scans/").Merge("scans-merged.pdf")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", imposa.FormatWarnings(warnings))
//	}
//
// Rotating and imposing a single document:
//
//	pages, _, err := imposa.Open("slides.pdf").
//	    Layout(geom.TopBottom3).
//	    Gap(24).
//	    Impose("slides-sheets.pdf")
//
// PDF reading, writing and composition are delegated to pdfcpu and
// fpdf; this package orchestrates them around the geometry computed by
// the geom package.
package imposa

import (
	"github.com/tsawler/imposa/geom"
)

// Open prepares a Job for a single PDF file, the input of [Job.Impose].
func Open(filename string) *Job {
	return &Job{
		filename: filename,
		options:  defaultOptions(),
	}
}

// OpenDir prepares a Job for a directory of PDFs, the input of
// [Job.Merge].
func OpenDir(dir string) *Job {
	return &Job{
		dir:     dir,
		options: defaultOptions(),
	}
}

// Layouts re-exported for convenience so simple callers need only this
// package.
const (
	SideBySide = geom.SideBySide
	TopBottom  = geom.TopBottom
	TopBottom3 = geom.TopBottom3
)

// Must is a helper that wraps a call to a function returning
// (T, []Warning, error) and panics if the error is non-nil. It is
// intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	pages := imposa.Must(imposa.Open("in.pdf").Impose("out.pdf"))
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
