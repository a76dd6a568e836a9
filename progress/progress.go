// Package progress runs a whole pipeline on a single background worker
// and streams status messages back over a one-directional channel.
//
// Only immutable message strings and the final result cross the
// channel; no other state is shared with the worker. Cancellation
// mid-run is not supported: callers needing responsiveness offload the
// entire call.
package progress

// Func receives status messages during a run.
type Func func(message string)

// Result carries the terminal outcome of a background run.
type Result struct {
	// Units is the number of units of work completed (pages or files,
	// depending on the pipeline).
	Units int
	Err   error
}

// Run executes task on its own goroutine. Status messages arrive on
// the first returned channel, which is closed when the task finishes;
// the final result is then delivered on the second channel. If the
// caller falls behind, messages are dropped rather than blocking the
// worker.
func Run(task func(report Func) (int, error)) (<-chan string, <-chan Result) {
	status := make(chan string, 64)
	result := make(chan Result, 1)

	go func() {
		report := func(message string) {
			select {
			case status <- message:
			default:
			}
		}
		units, err := task(report)
		close(status)
		result <- Result{Units: units, Err: err}
	}()

	return status, result
}
