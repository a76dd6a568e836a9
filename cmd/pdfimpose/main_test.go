package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirmOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(existing, []byte("%PDF"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		answer string
		want   bool
	}{
		{"missing file needs no prompt", filepath.Join(dir, "new.pdf"), "", true},
		{"yes", existing, "y\n", true},
		{"yes spelled out", existing, "YES\n", true},
		{"no", existing, "n\n", false},
		{"default is no", existing, "\n", false},
		{"closed stdin is no", existing, "", false},
	}

	for _, tt := range tests {
		if got := confirmOverwrite(tt.path, strings.NewReader(tt.answer)); got != tt.want {
			t.Errorf("%s: confirmOverwrite() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
