package webmatrix

import (
	"math"

	"github.com/dwfe/tools/gm"
)

// Translation returns the primitive translate(tx, ty) matrix.
func Translation(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scaling returns the primitive scale(sx, sy) matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotation returns the primitive rotate(angle) matrix.
//
//	cos -sin 0
//	sin  cos 0
//	0    0   1
//
// rotateX and rotateY have no counterpart here, their result can only be
// described by a 3d matrix.
func Rotation(angle float64, unit gm.AngleType) Matrix {
	sin, cos := math.Sincos(gm.ToRadians(angle, unit))
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Skewing returns the primitive skew(ax, ay) matrix.
//
//	1        tan(ax)  0
//	tan(ay)  1        0
//	0        0        1
func Skewing(ax, ay float64, unit gm.AngleType) Matrix {
	return Matrix{
		1,
		math.Tan(gm.ToRadians(ay, unit)),
		math.Tan(gm.ToRadians(ax, unit)),
		1,
		0, 0,
	}
}

// Translate appends a translation to m.
func Translate(m Matrix, tx, ty float64) Matrix {
	return Multiply(m, Translation(tx, ty))
}

func TranslateX(m Matrix, tx float64) Matrix {
	return Translate(m, tx, 0)
}

func TranslateY(m Matrix, ty float64) Matrix {
	return Translate(m, 0, ty)
}

// Scale appends a scale to m. Use sx == sy for a uniform scale.
func Scale(m Matrix, sx, sy float64) Matrix {
	return Multiply(m, Scaling(sx, sy))
}

func ScaleX(m Matrix, sx float64) Matrix {
	return Scale(m, sx, 1)
}

func ScaleY(m Matrix, sy float64) Matrix {
	return Scale(m, 1, sy)
}

// Rotate appends a rotation by angle to m.
func Rotate(m Matrix, angle float64, unit gm.AngleType) Matrix {
	return Multiply(m, Rotation(angle, unit))
}

// Skew appends a skew along both axis to m.
func Skew(m Matrix, ax, ay float64, unit gm.AngleType) Matrix {
	return Multiply(m, Skewing(ax, ay, unit))
}

func SkewX(m Matrix, angle float64, unit gm.AngleType) Matrix {
	return Skew(m, angle, 0, unit)
}

func SkewY(m Matrix, angle float64, unit gm.AngleType) Matrix {
	return Skew(m, 0, angle, unit)
}
