package imposa

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tsawler/imposa/geom"
	"github.com/tsawler/imposa/progress"
)

// Job is the fluent handle for one unit of work: a single-file
// impose run or a directory merge. Each configuration method returns a
// new Job instance, making chains safe to reuse and share.
type Job struct {
	// Source: exactly one of filename (Impose) or dir (Merge).
	filename string
	dir      string

	// Configuration
	options Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Job with a copy of its options.
func (j *Job) clone() *Job {
	return &Job{
		filename: j.filename,
		dir:      j.dir,
		options:  j.options.clone(),
		err:      j.err,
	}
}

// Gap sets the gap between slots in points. Negative gaps are invalid.
func (j *Job) Gap(points float64) *Job {
	nj := j.clone()
	if points < 0 {
		nj.err = fmt.Errorf("imposa: gap must be non-negative, got %g", points)
		return nj
	}
	nj.options.gap = points
	return nj
}

// Layout selects the sheet layout used by Impose.
func (j *Job) Layout(l geom.Layout) *Job {
	nj := j.clone()
	if l.Capacity() == 0 {
		nj.err = fmt.Errorf("imposa: unsupported layout %v", l)
		return nj
	}
	nj.options.layout = l
	return nj
}

// SizeFactor sets the size factor applied on top of fit-to-slot
// scaling. Values outside [0.1, 1.0] are clamped at use, not rejected.
func (j *Job) SizeFactor(f float64) *Job {
	nj := j.clone()
	nj.options.sizeFactor = f
	return nj
}

// PageSize sets the output sheet (and title page) size.
func (j *Job) PageSize(s geom.Size) *Job {
	nj := j.clone()
	nj.options.pageSize = s
	return nj
}

// Progress registers a callback receiving status messages during the
// run. Messages are immutable strings; the callback must not block for
// long.
func (j *Job) Progress(report progress.Func) *Job {
	nj := j.clone()
	nj.options.report = report
	return nj
}

// writeOutput creates the parent directory of path if needed and
// streams the document into it. On any failure the partial output is
// removed so a broken file never survives the run.
func writeOutput(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
