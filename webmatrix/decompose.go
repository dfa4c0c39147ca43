package webmatrix

import (
	"fmt"
	"math"

	"github.com/dwfe/tools/gm"
)

// Decomposition describes a matrix as the transform list
//
//	translate(TranslateX, TranslateY) rotate(Rotate) skewX(SkewX) scale(ScaleX, ScaleY)
//
// Angles are in degrees.
type Decomposition struct {
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
	Rotate                 float64
	SkewX                  float64
}

// Decompose splits m into translation, rotation, skew and scale, following
// the 2d unmatrix procedure of CSS transforms. A mirrored matrix (negative
// determinant) is reported with a negative ScaleX.
//
// A singular matrix has no unique decomposition, the error wraps ErrNonInvertible.
func Decompose(m Matrix) (Decomposition, error) {
	det := Determinant(m)
	if det == 0 {
		return Decomposition{}, fmt.Errorf("decompose %s: %w", m, ErrNonInvertible)
	}

	col0 := gm.PointOf(m[0], m[1])
	col1 := gm.PointOf(m[2], m[3])

	scaleX := col0.Length()
	if det < 0 {
		scaleX = -scaleX
	}

	col0 = col0.Mul(1 / scaleX)

	// remove the part of col1 parallel to col0, what is left is orthogonal
	shear := col0.X*col1.X + col0.Y*col1.Y
	col1 = col1.Sub(col0.Mul(shear))

	scaleY := col1.Length()

	return Decomposition{
		TranslateX: m[4],
		TranslateY: m[5],
		ScaleX:     scaleX,
		ScaleY:     scaleY,
		Rotate:     gm.ToDegrees(math.Atan2(col0.Y, col0.X), gm.Rad),
		SkewX:      gm.ToDegrees(math.Atan(shear/scaleY), gm.Rad),
	}, nil
}

// Compose builds the matrix described by d. For an invertible m,
// Compose(Decompose(m)) is equal to m.
func Compose(d Decomposition) Matrix {
	m := Translate(Identity(), d.TranslateX, d.TranslateY)
	m = Rotate(m, d.Rotate, gm.Deg)
	m = SkewX(m, d.SkewX, gm.Deg)
	return Scale(m, d.ScaleX, d.ScaleY)
}

// String returns d as a CSS transform list, which Parse turns back into
// the matrix d was computed from.
func (d Decomposition) String() string {
	return fmt.Sprintf("translate(%spx, %spx) rotate(%sdeg) skewX(%sdeg) scale(%s, %s)",
		formatValue(d.TranslateX), formatValue(d.TranslateY),
		formatValue(d.Rotate),
		formatValue(d.SkewX),
		formatValue(d.ScaleX), formatValue(d.ScaleY),
	)
}
