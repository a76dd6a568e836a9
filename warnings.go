package imposa

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered during processing.
// Warnings never stop a run; they are returned alongside results so
// callers can surface them.
type Warning struct {
	// Stage identifies where the issue arose: "read", "title",
	// "compose".
	Stage string

	// Source names the file or page range involved.
	Source string

	// Message is the human-readable description.
	Message string
}

// String returns the warning as a single line.
func (w Warning) String() string {
	if w.Source == "" {
		return fmt.Sprintf("[%s] %s", w.Stage, w.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", w.Stage, w.Source, w.Message)
}

// FormatWarnings joins warnings into a readable multi-line block.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
