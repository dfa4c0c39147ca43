package gm

import (
	"fmt"
	"math"
)

// Rect is an axis aligned rectangle. Min holds the smaller coordinates.
type Rect struct {
	Min, Max Point
}

func RectWithPoints(a, b Point) Rect {
	return Rect{
		Min: Point{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Point{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithOriginAndSize(origin, size Point) Rect {
	return RectWithPoints(origin, origin.Add(size))
}

// BoundsOf returns the smallest Rect containing all points.
// The bounds of no points at all is the empty Rect at the origin.
func BoundsOf(points ...Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	bounds := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}

	for _, p := range points {
		bounds.Min.X = min(bounds.Min.X, p.X)
		bounds.Min.Y = min(bounds.Min.Y, p.Y)
		bounds.Max.X = max(bounds.Max.X, p.X)
		bounds.Max.Y = max(bounds.Max.Y, p.Y)
	}

	return bounds
}

func (r Rect) Center() Point {
	return r.Min.Middle(r.Max)
}

func (r Rect) Size() Point {
	return r.Max.Sub(r.Min)
}

// Corners returns the four corners, clockwise starting at Min in a y-down
// coordinate system.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func (r Rect) Translate(offset Point) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Equal compares both corners with tolerance.
func (r Rect) Equal(other Rect) bool {
	return r.Min.Equal(other.Min) && r.Max.Equal(other.Max)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
