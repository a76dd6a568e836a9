// Package document wraps the pdfcpu collaborator: opening documents,
// counting pages, validating sources and concatenating documents.
// Nothing here interprets page content; pdfcpu owns the wire format.
package document

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var configOnce sync.Once

// newConfiguration returns a pdfcpu configuration with the given
// validation mode, keeping pdfcpu away from any on-disk config dir.
func newConfiguration(mode int) *model.Configuration {
	configOnce.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = mode
	return conf
}

// Validate checks that the document at path parses cleanly. A document
// failing strict validation is retried once in relaxed mode before
// being reported unreadable.
func Validate(path string) error {
	if err := api.ValidateFile(path, newConfiguration(model.ValidationStrict)); err == nil {
		return nil
	}
	if err := api.ValidateFile(path, newConfiguration(model.ValidationRelaxed)); err != nil {
		return fmt.Errorf("validate %s: %w", filepath.Base(path), err)
	}
	return nil
}

// PageCount returns the number of pages in the document at path.
func PageCount(path string) (int, error) {
	configOnce.Do(api.DisableConfigDir)
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count of %s: %w", filepath.Base(path), err)
	}
	return n, nil
}

// Merge concatenates the given documents, in order, into a single
// document written to w. Parts may be open files or in-memory
// documents; the caller retains ownership and closes them.
func Merge(parts []io.ReadSeeker, w io.Writer) error {
	if len(parts) == 0 {
		return fmt.Errorf("merge: no documents to merge")
	}
	if err := api.MergeRaw(parts, w, false, newConfiguration(model.ValidationRelaxed)); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	return nil
}
