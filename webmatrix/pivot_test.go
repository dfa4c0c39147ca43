package webmatrix

import (
	"testing"

	"github.com/dwfe/tools/gm"
	"github.com/stretchr/testify/require"
)

func TestScaleAtPoint(t *testing.T) {
	expected := Matrix{1.25, 0, 0, 1.25, -10, -10}

	m := ScaleAtPoint(gm.PointOf(40, 40), 1.25, 1.25)
	requireMatrixEqual(t, expected, m)
	require.False(t, IsEqual(Matrix{1.25, 0, 0, 1.25, -10, 0}, m))

	requireMatrixEqual(t, expected, MultiplySequence(
		Matrix{1, 0, 0, 1, 40, 40},
		Scaling(1.25, 1.25),
		Matrix{1, 0, 0, 1, -40, -40},
	))

	requireMatrixEqual(t, expected, New().Translate(40, 40).ScaleUniform(1.25).Translate(-40, -40).Matrix())

	// the pivot does not move
	require.True(t, gm.PointOf(40, 40).Equal(Apply(m, gm.PointOf(40, 40))))
}

func TestRotateAtPoint(t *testing.T) {
	expected := Matrix{0.707107, 0.707107, -0.707107, 0.707107, 46.4645, -22.1751}

	m := RotateAtPoint(gm.PointOf(50, 45), 45, gm.Deg)
	requireMatrixEqual(t, expected, m)
	require.False(t, IsEqual(Matrix{0.717107, 0.707107, -0.707107, 0.707107, 46.4645, -22.1751}, m))

	requireMatrixEqual(t, expected, MultiplySequence(
		Matrix{1, 0, 0, 1, 50, 45},
		Rotation(45, gm.Deg),
		Matrix{1, 0, 0, 1, -50, -45},
	))

	requireMatrixEqual(t, expected, New().Translate(50, 45).Rotate(45).Translate(-50, -45).Matrix())

	require.True(t, gm.PointOf(50, 45).Equal(Apply(m, gm.PointOf(50, 45))))
}

func TestPivotRandom(t *testing.T) {
	for range 100 {
		pivot := gm.PointOf(gm.RandomIn(-500, 500), gm.RandomIn(-500, 500))
		p := gm.PointOf(gm.RandomIn(-500, 500), gm.RandomIn(-500, 500))

		rotated := Apply(RotateAtPoint(pivot, gm.RandomAngle(gm.Rad), gm.Rad), p)
		require.InDelta(t, pivot.Distance(p), pivot.Distance(rotated), 1e-6)

		scaled := Apply(ScaleAtPoint(pivot, 2, 2), p)
		require.InDelta(t, 2*pivot.Distance(p), pivot.Distance(scaled), 1e-6)
	}
}

func TestToNewCoordinateSystem(t *testing.T) {
	valueToPixel := ToNewCoordinateSystem(
		AxisRange{FromSegment: 2, ToSegment: 28},
		AxisRange{FromSegment: 3, ToSegment: 42},
		PointPair{FromPoint: gm.PointOf(15, 1), ToPoint: gm.PointOf(210, 14)},
	)

	pixelToValue, err := Invert(valueToPixel)
	require.NoError(t, err)

	pairs := []struct{ value, pixel gm.Point }{
		{gm.PointOf(0, 0), gm.PointOf(0, 0)},
		{gm.PointOf(2, 3), gm.PointOf(28, 42)},
		{gm.PointOf(6, 14), gm.PointOf(84, 196)},
		{gm.PointOf(10, 5), gm.PointOf(140, 70)},
		{gm.PointOf(15, 1), gm.PointOf(210, 14)},
		{gm.PointOf(21, 7), gm.PointOf(294, 98)},
		{gm.PointOf(27, 9), gm.PointOf(378, 126)},
	}

	for _, pair := range pairs {
		require.True(t, pair.pixel.Equal(Apply(valueToPixel, pair.value)), "value %s", pair.value)
		require.True(t, pair.value.Equal(Apply(pixelToValue, pair.pixel)), "pixel %s", pair.pixel)
	}
}

func TestToNewCoordinateSystem_Anchor(t *testing.T) {
	// different ratio per axis, from point maps to to point
	pair := PointPair{FromPoint: gm.PointOf(-3, 8), ToPoint: gm.PointOf(100, 50)}
	m := ToNewCoordinateSystem(
		AxisRange{FromSegment: 4, ToSegment: 10},
		AxisRange{FromSegment: 5, ToSegment: -1},
		pair,
	)

	require.True(t, pair.ToPoint.Equal(Apply(m, pair.FromPoint)))
	requireMatrixEqual(t, Matrix{2.5, 0, 0, -0.2, 107.5, 51.6}, m)
}
