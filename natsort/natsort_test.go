package natsort

import (
	"reflect"
	"testing"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"digit runs as integers",
			[]string{"a10.pdf", "a2.pdf", "a1.pdf"},
			[]string{"a1.pdf", "a2.pdf", "a10.pdf"},
		},
		{
			"mixed names",
			[]string{"b.pdf", "a.pdf", "c10.pdf"},
			[]string{"a.pdf", "b.pdf", "c10.pdf"},
		},
		{
			"numbers beat lexical order",
			[]string{"file100.pdf", "file20.pdf", "file3.pdf"},
			[]string{"file3.pdf", "file20.pdf", "file100.pdf"},
		},
		{
			"case-insensitive elsewhere",
			[]string{"Beta.pdf", "alpha.pdf", "GAMMA.pdf"},
			[]string{"alpha.pdf", "Beta.pdf", "GAMMA.pdf"},
		},
		{
			"empty input",
			[]string{},
			[]string{},
		},
	}

	for _, tt := range tests {
		got := append([]string{}, tt.in...)
		Strings(got)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Strings(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"file2.pdf", "file10.pdf", true},
		{"file10.pdf", "file2.pdf", false},
		{"a.pdf", "b.pdf", true},
	}

	for _, tt := range tests {
		if got := Less(tt.a, tt.b); got != tt.want {
			t.Errorf("Less(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareEqual(t *testing.T) {
	if Compare("scan1.pdf", "scan1.pdf") != 0 {
		t.Error("identical names should compare equal")
	}
}
