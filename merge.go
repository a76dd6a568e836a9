package imposa

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/imposa/document"
	"github.com/tsawler/imposa/format"
	"github.com/tsawler/imposa/geom"
	"github.com/tsawler/imposa/natsort"
	"github.com/tsawler/imposa/titlepage"
)

// Merge combines every PDF in the job's input directory into outFile,
// in natural filename order, preceding each document with a generated
// title page bearing its filename stem.
//
// It returns the number of source documents merged. Unreadable sources
// are skipped with a warning after one lenient retry; a failed title
// page degrades to merging the document without a separator. Returns
// ErrNoInputs when the directory holds no PDFs and ErrAllInputsFailed
// when none survive validation.
func (j *Job) Merge(outFile string) (int, []Warning, error) {
	if j.err != nil {
		return 0, nil, j.err
	}
	if j.dir == "" {
		return 0, nil, fmt.Errorf("imposa: Merge requires a directory input; use OpenDir")
	}

	names, err := listPDFs(j.dir)
	if err != nil {
		return 0, nil, err
	}
	if len(names) == 0 {
		return 0, nil, fmt.Errorf("%w in %s", ErrNoInputs, j.dir)
	}

	j.options.notify(fmt.Sprintf("starting merge of %d PDF(s)", len(names)))

	size := j.options.sheet(geom.PageSizeLetter)

	var warnings []Warning
	var parts []io.ReadSeeker
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()

	merged := 0
	for i, name := range names {
		path := filepath.Join(j.dir, name)
		j.options.notify(fmt.Sprintf("processing (%d/%d): %s", i+1, len(names), name))

		if err := document.Validate(path); err != nil {
			warnings = append(warnings, Warning{Stage: "read", Source: name, Message: err.Error()})
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		title, err := titlepage.Generate(stem, size)
		if err != nil {
			// Degrade to merging without a separator page.
			warnings = append(warnings, Warning{Stage: "title", Source: name, Message: err.Error()})
		} else if title != nil {
			parts = append(parts, title.Reader())
		}

		f, err := os.Open(path)
		if err != nil {
			warnings = append(warnings, Warning{Stage: "read", Source: name, Message: err.Error()})
			if title != nil {
				parts = parts[:len(parts)-1]
			}
			continue
		}
		open = append(open, f)
		parts = append(parts, f)
		merged++
	}

	if merged == 0 {
		return 0, warnings, ErrAllInputsFailed
	}

	j.options.notify("saving output")
	err = writeOutput(outFile, func(w io.Writer) error {
		return document.Merge(parts, w)
	})
	if err != nil {
		return 0, warnings, err
	}

	j.options.notify(fmt.Sprintf("merged %d PDF(s) into %s", merged, filepath.Base(outFile)))
	return merged, warnings, nil
}

// listPDFs returns the PDF filenames in dir in natural order.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("imposa: read input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if format.Detect(e.Name()) == format.PDF {
			names = append(names, e.Name())
		}
	}
	natsort.Strings(names)
	return names, nil
}

// SuggestMergeOutput returns the conventional output path for a merged
// directory: a sibling file named after the directory.
func SuggestMergeOutput(dir string) string {
	clean := filepath.Clean(dir)
	return filepath.Join(filepath.Dir(clean), filepath.Base(clean)+"-merged.pdf")
}
