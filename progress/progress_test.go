package progress

import (
	"errors"
	"testing"
)

func TestRunDeliversMessagesAndResult(t *testing.T) {
	status, result := Run(func(report Func) (int, error) {
		report("first")
		report("second")
		return 7, nil
	})

	var messages []string
	for msg := range status {
		messages = append(messages, msg)
	}

	res := <-result
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Units != 7 {
		t.Errorf("Units = %d, want 7", res.Units)
	}
	if len(messages) != 2 || messages[0] != "first" || messages[1] != "second" {
		t.Errorf("messages = %v, want [first second]", messages)
	}
}

func TestRunPropagatesError(t *testing.T) {
	wantErr := errors.New("processing failed")
	status, result := Run(func(report Func) (int, error) {
		return 0, wantErr
	})

	for range status {
	}

	res := <-result
	if !errors.Is(res.Err, wantErr) {
		t.Errorf("Err = %v, want %v", res.Err, wantErr)
	}
}

func TestRunNeverBlocksWorker(t *testing.T) {
	// Nobody drains status; the worker must still finish.
	status, result := Run(func(report Func) (int, error) {
		for i := 0; i < 1000; i++ {
			report("spam")
		}
		return 1, nil
	})

	res := <-result
	if res.Units != 1 {
		t.Errorf("Units = %d, want 1", res.Units)
	}
	_ = status
}
