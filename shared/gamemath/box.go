// Package gamemath holds the geometry shared by the AI and combat code.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Box is an axis-aligned rectangle in world pixels. X, Y is the top-left
// corner. A zero-width box is treated as a point.
type Box struct {
	X, Y, W, H float64
}

// PointBox returns a zero-size box at (x, y).
func PointBox(x, y float64) Box {
	return Box{X: x, Y: y}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the midpoint of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Translate returns b moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Overlaps reports whether the two rectangles overlap or share an edge.
func (b Box) Overlaps(o Box) bool {
	return b.X <= o.Right() && o.X <= b.Right() &&
		b.Y <= o.Bottom() && o.Y <= b.Bottom()
}

// Distance returns the box-aware distance between a and b, truncated to an
// integer. If either side has zero width the raw coordinate delta is used,
// otherwise the per-axis gap between nearest edges (0 when the boxes
// overlap on that axis).
func Distance(a, b Box) int {
	var dx, dy float64
	if a.W == 0 || b.W == 0 {
		dx = b.X - a.X
		dy = b.Y - a.Y
	} else {
		dx = axisGap(a.X, a.Right(), b.X, b.Right())
		dy = axisGap(a.Y, a.Bottom(), b.Y, b.Bottom())
	}
	return int(math.Sqrt(dx*dx + dy*dy))
}

func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	switch {
	case aMax < bMin:
		return bMin - aMax
	case bMax < aMin:
		return aMin - bMax
	}
	return 0
}
