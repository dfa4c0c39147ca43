package webmatrix

import (
	"errors"
	"fmt"

	"github.com/dwfe/tools/gm"
)

// ErrNonInvertible is returned when inverting a matrix with a determinant of zero.
var ErrNonInvertible = errors.New("matrix is not invertible")

// Matrix is an affine transformation in the order a, b, c, d, e, f.
// See the package documentation for the layout.
type Matrix [6]float64

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Determinant returns a*d - b*c. The bottom row (0, 0, 1) does not
// contribute anything else to the Laplace expansion.
func Determinant(m Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// IsInvertible reports whether the determinant of m is not zero.
func IsInvertible(m Matrix) bool {
	return Determinant(m) != 0
}

// Invert returns the inverse of m, computed as the adjugate scaled by 1/det.
// For the implicit bottom row (0, 0, 1) the adjugate is
//
//	 d  -c  c*f-d*e
//	-b   a  b*e-a*f
//	 0   0  det
//
// Invert returns an error wrapping ErrNonInvertible if the determinant is zero.
func Invert(m Matrix) (Matrix, error) {
	det := Determinant(m)
	if det == 0 {
		return Matrix{}, fmt.Errorf("invert %s: %w", m, ErrNonInvertible)
	}

	adjugate := Matrix{
		m[3],
		-m[1],
		-m[2],
		m[0],
		m[2]*m[5] - m[3]*m[4],
		m[1]*m[4] - m[0]*m[5],
	}

	return MultiplyByScalar(adjugate, 1/det), nil
}

// Multiply returns m1 * m2. Applying the result to a point is the same as
// applying m2 first and m1 second. Multiplication is not commutative.
//
//	a1 c1 e1     a2 c2 e2     a1*a2+c1*b2  a1*c2+c1*d2  a1*e2+c1*f2+e1
//	b1 d1 f1  *  b2 d2 f2  =  b1*a2+d1*b2  b1*c2+d1*d2  b1*e2+d1*f2+f1
//	0  0  1      0  0  1      0            0            1
func Multiply(m1, m2 Matrix) Matrix {
	return Matrix{
		m1[0]*m2[0] + m1[2]*m2[1],
		m1[1]*m2[0] + m1[3]*m2[1],
		m1[0]*m2[2] + m1[2]*m2[3],
		m1[1]*m2[2] + m1[3]*m2[3],
		m1[0]*m2[4] + m1[2]*m2[5] + m1[4],
		m1[1]*m2[4] + m1[3]*m2[5] + m1[5],
	}
}

// Multiply3 returns m1 * m2 * m3.
func Multiply3(m1, m2, m3 Matrix) Matrix {
	return Multiply(Multiply(m1, m2), m3)
}

// MultiplySequence folds the matrices from left to right, starting with the
// identity: ((I * ms[0]) * ms[1]) * ... An empty sequence yields the identity.
func MultiplySequence(ms ...Matrix) Matrix {
	result := Identity()
	for _, m := range ms {
		result = Multiply(result, m)
	}

	return result
}

// MultiplyByScalar multiplies all six values, including the translation, by k.
// This is not a scale transform, use Scale for that.
func MultiplyByScalar(m Matrix, k float64) Matrix {
	for idx := range m {
		m[idx] *= k
	}

	return m
}

// Apply maps the point p through m.
func Apply(m Matrix, p gm.Point) gm.Point {
	return gm.Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Convert applies m to the point (x, 0) and returns the resulting x coordinate.
// This is useful for matrices that only map a single axis, like a value to
// pixel mapping.
func Convert(m Matrix, x float64) float64 {
	return Apply(m, gm.Point{X: x}).X
}

// ApplyVector maps both end points of v through m.
func ApplyVector(m Matrix, v gm.Vector) gm.Vector {
	return gm.Vector{
		Start: Apply(m, v.Start),
		End:   Apply(m, v.End),
	}
}

// ApplyRect returns the bounds of the four corners of r mapped through m.
func ApplyRect(m Matrix, r gm.Rect) gm.Rect {
	corners := r.Corners()
	for idx, corner := range corners {
		corners[idx] = Apply(m, corner)
	}

	return gm.BoundsOf(corners[:]...)
}

// IsEqual reports whether all six values of m1 and m2 differ by less than gm.Accuracy.
func IsEqual(m1, m2 Matrix) bool {
	for idx := range m1 {
		if !gm.ApproxEqual(m1[idx], m2[idx]) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is equal to the identity, within gm.Accuracy.
func IsIdentity(m Matrix) bool {
	return IsEqual(m, Identity())
}
