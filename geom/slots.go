package geom

import "fmt"

// Layout selects how rotated source pages are arranged on a sheet.
type Layout int

const (
	// SideBySide places two rotated pages in left and right columns.
	SideBySide Layout = iota
	// TopBottom stacks two rotated pages in upper and lower rows.
	TopBottom
	// TopBottom3 stacks three rotated pages in equal-height rows.
	TopBottom3
)

// String returns the string representation of the layout.
func (l Layout) String() string {
	switch l {
	case SideBySide:
		return "side-by-side"
	case TopBottom:
		return "top-bottom"
	case TopBottom3:
		return "top-bottom-3"
	default:
		return "unknown"
	}
}

// Capacity returns the number of slots a sheet holds under this layout.
func (l Layout) Capacity() int {
	switch l {
	case SideBySide, TopBottom:
		return 2
	case TopBottom3:
		return 3
	default:
		return 0
	}
}

// ParseLayout maps a layout name to a Layout. Names match the CLI
// surface: side-by-side, top-bottom, top-bottom-3.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "side-by-side":
		return SideBySide, nil
	case "top-bottom":
		return TopBottom, nil
	case "top-bottom-3":
		return TopBottom3, nil
	default:
		return 0, fmt.Errorf("unsupported layout %q", name)
	}
}

// Slots partitions a sheet into n slots for the given layout. Slots are
// separated by gap points, never overlap, and jointly fit within the
// sheet. n may be less than the layout capacity when fewer source pages
// remain; trailing slots are simply not produced. Any combination
// outside the three enumerated layouts, or n exceeding the layout
// capacity, is unsupported configuration and returns an error.
func Slots(sheet Size, layout Layout, gap float64, n int) ([]Rect, error) {
	if n < 1 || n > layout.Capacity() {
		return nil, fmt.Errorf("layout %s holds at most %d pages per sheet, got %d", layout, layout.Capacity(), n)
	}
	if gap < 0 {
		return nil, fmt.Errorf("gap must be non-negative, got %g", gap)
	}

	slots := make([]Rect, 0, n)
	switch layout {
	case SideBySide:
		w := (sheet.W - gap) / 2
		for i := 0; i < n; i++ {
			x := float64(i) * (w + gap)
			slots = append(slots, NewRect(x, 0, w, sheet.H))
		}
	case TopBottom:
		h := (sheet.H - gap) / 2
		// Slot 0 occupies the upper region.
		for i := 0; i < n; i++ {
			y := 0.0
			if i == 0 {
				y = h + gap
			}
			slots = append(slots, NewRect(0, y, sheet.W, h))
		}
	case TopBottom3:
		h := (sheet.H - 2*gap) / 3
		// Row 0 is topmost.
		for i := 0; i < n; i++ {
			y := sheet.H - float64(i+1)*h - float64(i)*gap
			slots = append(slots, NewRect(0, y, sheet.W, h))
		}
	}
	return slots, nil
}
