package imposa

import (
	"github.com/tsawler/imposa/geom"
	"github.com/tsawler/imposa/progress"
)

// Options holds configuration for composition and merging.
type Options struct {
	// Gap between slots, in points.
	gap float64

	// Sheet layout for Impose.
	layout geom.Layout

	// Size factor applied on top of fit-to-slot scaling; clamped to
	// [0.1, 1.0] at use, never rejected.
	sizeFactor float64

	// Output sheet / title page size. The zero value means "pick the
	// pipeline default": A4 for Impose, Letter for Merge.
	pageSize geom.Size

	// Progress callback; nil means no reporting.
	report progress.Func
}

// defaultOptions returns the default job options.
func defaultOptions() Options {
	return Options{
		gap:        20,
		layout:     geom.SideBySide,
		sizeFactor: 1.0,
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		gap:        o.gap,
		layout:     o.layout,
		sizeFactor: o.sizeFactor,
		pageSize:   o.pageSize,
		report:     o.report,
	}
}

// sheet resolves the output sheet size, falling back to def when the
// caller never chose one.
func (o Options) sheet(def geom.Size) geom.Size {
	if o.pageSize == (geom.Size{}) {
		return def
	}
	return o.pageSize
}

// notify invokes the progress callback if one is set.
func (o Options) notify(message string) {
	if o.report != nil {
		o.report(message)
	}
}
