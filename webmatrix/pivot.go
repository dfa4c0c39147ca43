package webmatrix

import "github.com/dwfe/tools/gm"

// AxisRange describes the length of the same segment on one axis, measured in
// the source and in the target coordinate system.
type AxisRange struct {
	FromSegment float64
	ToSegment   float64
}

// Ratio returns ToSegment / FromSegment.
func (r AxisRange) Ratio() float64 {
	return r.ToSegment / r.FromSegment
}

// PointPair holds a point in the source coordinate system and the point it
// must be mapped to in the target coordinate system.
type PointPair struct {
	FromPoint gm.Point
	ToPoint   gm.Point
}

// ScaleAtPoint returns a matrix scaling by sx, sy around the pivot instead
// of around the origin. The pivot is a fixed point of the result.
func ScaleAtPoint(pivot gm.Point, sx, sy float64) Matrix {
	return atPoint(pivot, Scaling(sx, sy))
}

// RotateAtPoint returns a matrix rotating by angle around the pivot.
func RotateAtPoint(pivot gm.Point, angle float64, unit gm.AngleType) Matrix {
	return atPoint(pivot, Rotation(angle, unit))
}

// atPoint moves the pivot to the origin, applies the primitive and moves the
// origin back to the pivot.
func atPoint(pivot gm.Point, primitive Matrix) Matrix {
	return MultiplySequence(
		Translation(pivot.X, pivot.Y),
		primitive,
		Translation(-pivot.X, -pivot.Y),
	)
}

// ToNewCoordinateSystem returns a matrix mapping the source coordinate system
// into the target one. The axis are scaled independently by the ratio of the
// given segments, and the result maps pair.FromPoint exactly onto pair.ToPoint.
//
// A FromSegment of zero yields infinite values, no error is reported.
func ToNewCoordinateSystem(x, y AxisRange, pair PointPair) Matrix {
	return MultiplySequence(
		Translation(pair.ToPoint.X, pair.ToPoint.Y),
		Scaling(x.Ratio(), y.Ratio()),
		Translation(-pair.FromPoint.X, -pair.FromPoint.Y),
	)
}
