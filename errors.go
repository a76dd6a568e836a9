package imposa

import "errors"

// Terminal failure classes, distinguishable from each other and from
// ordinary write errors via errors.Is.
var (
	// ErrNoInputs means the input directory held no PDF files at all.
	ErrNoInputs = errors.New("imposa: no PDF inputs found")

	// ErrAllInputsFailed means inputs existed but none could be
	// processed.
	ErrAllInputsFailed = errors.New("imposa: no inputs could be processed")

	// ErrNotPDF means the input file is not a PDF document.
	ErrNotPDF = errors.New("imposa: input is not a PDF")
)
