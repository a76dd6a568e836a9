package imposa

import (
	"fmt"
	"path/filepath"

	"github.com/tsawler/imposa/document"
	"github.com/tsawler/imposa/format"
	"github.com/tsawler/imposa/geom"
	"github.com/tsawler/imposa/sheet"
)

// Impose rotates every page of the job's input file 90 degrees
// counter-clockwise and packs them onto fixed-size sheets written to
// outFile, 2 or 3 pages per sheet depending on the configured layout.
//
// It returns the number of source pages placed. Sheets whose pages
// cannot be read are skipped and reported as warnings; input and
// output errors are fatal.
func (j *Job) Impose(outFile string) (int, []Warning, error) {
	if j.err != nil {
		return 0, nil, j.err
	}
	if j.filename == "" {
		return 0, nil, fmt.Errorf("imposa: Impose requires a file input; use Open")
	}

	base := filepath.Base(j.filename)
	if f, err := format.DetectFile(j.filename); err != nil {
		return 0, nil, err
	} else if f != format.PDF {
		return 0, nil, fmt.Errorf("%w: %s", ErrNotPDF, base)
	}

	j.options.notify("reading " + base)
	if err := document.Validate(j.filename); err != nil {
		return 0, nil, err
	}

	total, err := document.PageCount(j.filename)
	if err != nil {
		return 0, nil, err
	}
	if total == 0 {
		return 0, nil, fmt.Errorf("imposa: %s has no pages", base)
	}
	j.options.notify(fmt.Sprintf("found %d pages to process", total))

	size := j.options.sheet(geom.PageSizeA4)
	step := j.options.layout.Capacity()
	comp := sheet.NewComposer(size)

	var warnings []Warning
	placed := 0
	for start := 0; start < total; start += step {
		end := start + step
		if end > total {
			end = total
		}
		nums := make([]int, 0, end-start)
		for n := start + 1; n <= end; n++ {
			nums = append(nums, n)
		}

		j.options.notify(fmt.Sprintf("processing pages %d-%d of %d", start+1, end, total))
		if err := comp.ComposeSheet(j.filename, nums, j.options.layout, j.options.gap, j.options.sizeFactor); err != nil {
			warnings = append(warnings, Warning{
				Stage:   "compose",
				Source:  fmt.Sprintf("%s pages %d-%d", base, start+1, end),
				Message: err.Error(),
			})
			continue
		}
		placed += len(nums)
	}

	if placed == 0 {
		return 0, warnings, ErrAllInputsFailed
	}

	j.options.notify("saving output")
	if err := writeOutput(outFile, comp.Write); err != nil {
		return 0, warnings, err
	}

	j.options.notify(fmt.Sprintf("processed %d pages into %d sheets", placed, comp.Sheets()))
	return placed, warnings, nil
}

// SuggestImposeOutput returns the conventional output path for an
// imposed document: the input path with a -rotated-layout suffix.
func SuggestImposeOutput(inputFile string) string {
	ext := filepath.Ext(inputFile)
	stem := inputFile[:len(inputFile)-len(ext)]
	return stem + "-rotated-layout.pdf"
}
