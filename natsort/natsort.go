// Package natsort orders filenames naturally: embedded digit runs
// compare as integers and everything else compares case-insensitively,
// so file2.pdf sorts before file10.pdf.
package natsort

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}

// Compare returns -1, 0 or 1 according to the natural order of a and b.
func Compare(a, b string) int {
	return newCollator().CompareString(a, b)
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts names in place in natural order. The sort is stable, so
// names comparing equal (differing only in case) keep their relative
// order.
func Strings(names []string) {
	c := newCollator()
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}
