package geom

import "math"

// Size factor bounds applied on top of fit-to-slot scaling.
const (
	MinSizeFactor = 0.1
	MaxSizeFactor = 1.0
)

// ClampSizeFactor clamps a user-supplied size factor to
// [MinSizeFactor, MaxSizeFactor]. Out-of-range values are clamped
// silently, not rejected.
func ClampSizeFactor(f float64) float64 {
	return math.Max(MinSizeFactor, math.Min(MaxSizeFactor, f))
}

// Placement describes how one source page maps onto a slot. Rotation is
// fixed at 90 degrees counter-clockwise, so the effective content
// dimensions are the source dimensions swapped. Scale is uniform:
// aspect ratio is always preserved.
type Placement struct {
	SrcW, SrcH float64
	Scale      float64
	TX, TY     float64 // bottom-left corner of the placed content
}

// ContentW returns the placed content width (rotated width scaled).
func (p Placement) ContentW() float64 {
	return p.SrcH * p.Scale
}

// ContentH returns the placed content height (rotated height scaled).
func (p Placement) ContentH() float64 {
	return p.SrcW * p.Scale
}

// Matrix returns the composed transform to apply to source-page
// coordinates: rotate 90 degrees counter-clockwise about the origin,
// translate by (+SrcH, 0) to bring the rotated content into the
// positive quadrant, scale, then translate into the slot.
func (p Placement) Matrix() Matrix {
	return Rotate(math.Pi / 2).
		Multiply(Translate(p.SrcH, 0)).
		Multiply(Scale(p.Scale, p.Scale)).
		Multiply(Translate(p.TX, p.TY))
}

// Fit computes the placement of a rotated source page within slot.
// The fit scale is the largest uniform scale keeping the rotated
// content inside the slot; sizeFactor (clamped) shrinks it further.
// Content is centered in the slot. A zero rotated dimension
// contributes a ratio of 1 rather than dividing by zero.
func Fit(srcW, srcH float64, slot Rect, sizeFactor float64) Placement {
	rotW, rotH := srcH, srcW

	rw := 1.0
	if rotW != 0 {
		rw = slot.W / rotW
	}
	rh := 1.0
	if rotH != 0 {
		rh = slot.H / rotH
	}
	fit := math.Min(rw, rh)

	scale := ClampSizeFactor(sizeFactor) * fit
	contentW := rotW * scale
	contentH := rotH * scale

	return Placement{
		SrcW:  srcW,
		SrcH:  srcH,
		Scale: scale,
		TX:    slot.X + (slot.W-contentW)/2,
		TY:    slot.Y + (slot.H-contentH)/2,
	}
}
