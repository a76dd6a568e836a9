package geom

import "math"

// Size is a page size in PDF points.
type Size struct {
	W, H float64
}

// Standard output sheet sizes.
var (
	PageSizeA4     = Size{W: 595.28, H: 841.89}
	PageSizeLetter = Size{W: 612, H: 792}
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Rect represents a rectangle in PDF coordinates
type Rect struct {
	X float64 // Left
	Y float64 // Bottom (PDF coordinate system)
	W float64
	H float64
}

// NewRect creates a rectangle from coordinates
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.W/2,
		Y: r.Y + r.H/2,
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Overlaps checks if two rectangles overlap with positive area.
// Rectangles that merely share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Right() > other.Left() &&
		r.Left() < other.Right() &&
		r.Top() > other.Bottom() &&
		r.Bottom() < other.Top()
}

// Within checks if r lies entirely inside outer, within tolerance.
func (r Rect) Within(outer Rect, tol float64) bool {
	return r.Left() >= outer.Left()-tol &&
		r.Right() <= outer.Right()+tol &&
		r.Bottom() >= outer.Bottom()-tol &&
		r.Top() <= outer.Top()+tol
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.W * r.H
}

// IsValid returns true if the rectangle has positive dimensions
func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0
}

// Matrix represents a 2D affine transformation matrix
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices. The result applies m first,
// then other, matching PDF row-vector convention.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians, counter-clockwise)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
