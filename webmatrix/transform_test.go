package webmatrix

import (
	"testing"

	"github.com/dwfe/tools/gm"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	m := TranslateY(TranslateX(Translate(Identity(), 1, 10), -10), -5)
	requireMatrixEqual(t, Matrix{1, 0, 0, 1, -9, 5}, m)
	require.False(t, IsIdentity(m))
}

func TestScale(t *testing.T) {
	m := ScaleY(ScaleX(Scale(Identity(), 1.5, 1.5), -0.7), 1.1)
	requireMatrixEqual(t, Matrix{-1.05, 0, 0, 1.65, 0, 0}, m)
}

func TestRotate(t *testing.T) {
	m := Rotate(Identity(), -10, gm.Deg)
	requireMatrixEqual(t, Matrix{0.984808, -0.173648, 0.173648, 0.984808, 0, 0}, m)

	t.Run("units", func(t *testing.T) {
		quarter := Rotation(90, gm.Deg)
		requireMatrixEqual(t, quarter, Rotation(0.25, gm.Turn))
		requireMatrixEqual(t, quarter, Rotation(100, gm.Grad))
		requireMatrixEqual(t, quarter, Rotation(gm.ToRadians(90, gm.Deg), gm.Rad))
		requireMatrixEqual(t, Matrix{0, 1, -1, 0, 0, 0}, quarter)
	})

	t.Run("invalid unit", func(t *testing.T) {
		require.Panics(t, func() {
			Rotate(Identity(), 10, gm.AngleType(99))
		})
	})
}

func TestSkew(t *testing.T) {
	m := Identity()
	m = Skew(m, 5, 5, gm.Deg)
	m = SkewX(m, -5, gm.Deg)
	m = SkewY(m, -2, gm.Deg)
	requireMatrixEqual(t, Matrix{1, 0.0528352, 0, 0.992346, 0, 0}, m)

	requireMatrixEqual(t, Matrix{1, 0, 1, 1, 0, 0}, Skewing(45, 0, gm.Deg))
	requireMatrixEqual(t, Matrix{1, 1, 0, 1, 0, 0}, Skewing(0, 45, gm.Deg))
}

func TestTransformList(t *testing.T) {
	// translate(1px, 10px) translateX(-10px) translateY(-5px)
	// scale(1.5) scaleX(-0.7) scaleY(1.1) rotate(-10deg)
	// skew(5deg, 5deg) skewX(-5deg) skewY(-2deg)
	m := Identity()
	m = Translate(m, 1, 10)
	m = TranslateX(m, -10)
	m = TranslateY(m, -5)
	m = Scale(m, 1.5, 1.5)
	m = ScaleX(m, -0.7)
	m = ScaleY(m, 1.1)
	m = Rotate(m, -10, gm.Deg)
	m = Skew(m, 5, 5, gm.Deg)
	m = SkewX(m, -5, gm.Deg)
	m = SkewY(m, -2, gm.Deg)

	requireMatrixEqual(t, Matrix{-1.04368, -0.200666, -0.180935, 1.6125, -9, 5}, m)
}

func TestPrimitivesAppend(t *testing.T) {
	m := randomMatrix()
	require.Equal(t, Multiply(m, Translation(3, 4)), Translate(m, 3, 4))
	require.Equal(t, Multiply(m, Scaling(3, 4)), Scale(m, 3, 4))
	require.Equal(t, Multiply(m, Rotation(3, gm.Rad)), Rotate(m, 3, gm.Rad))
	require.Equal(t, Multiply(m, Skewing(3, 4, gm.Deg)), Skew(m, 3, 4, gm.Deg))
}
