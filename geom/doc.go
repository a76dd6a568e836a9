// Package geom computes the sheet geometry for rotated page layout.
//
// All coordinates are in PDF points with the origin at the bottom-left
// of the sheet. The package is pure math: it decides where content
// goes, never how it is drawn.
//
// # Slots
//
// A sheet is partitioned into rectangular slots by [Slots], one slot
// per source page. Three layouts are supported:
//
//   - [SideBySide] - two columns, left to right
//   - [TopBottom] - two rows, top first
//   - [TopBottom3] - three equal-height rows, top first
//
// Slots never overlap and jointly fit within the sheet minus the
// configured gaps.
//
// # Placement
//
// [Fit] computes a [Placement] for one source page within one slot.
// The source page is rotated 90 degrees counter-clockwise, scaled
// uniformly so the rotated content fits the slot (optionally shrunk
// further by a clamped size factor), and centered:
//
//	slots, _ := geom.Slots(geom.PageSizeA4, geom.SideBySide, 20, 2)
//	p := geom.Fit(pageW, pageH, slots[0], 1.0)
//	m := p.Matrix() // transform for source-page coordinates
//
// # Geometry Primitives
//
//   - [Rect] - rectangle with overlap and containment checks
//   - [Point] - 2D point
//   - [Matrix] - 2D affine transformation matrix
package geom
