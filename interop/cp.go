package interop

import (
	"github.com/dwfe/tools/gm"
	"github.com/dwfe/tools/webmatrix"
	"github.com/jakecoffman/cp/v2"
)

// ToCP converts m into a chipmunk physics transform.
func ToCP(m webmatrix.Matrix) cp.Transform {
	return cp.NewTransformTranspose(
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	)
}

// FromCP reads the basis vectors and the translation of t.
func FromCP(t cp.Transform) webmatrix.Matrix {
	xAxis := t.Vect(cp.Vector{X: 1})
	yAxis := t.Vect(cp.Vector{Y: 1})
	translation := t.Point(cp.Vector{})

	return webmatrix.Matrix{
		xAxis.X, xAxis.Y,
		yAxis.X, yAxis.Y,
		translation.X, translation.Y,
	}
}

// ToCPVector converts a point into a chipmunk vector.
func ToCPVector(p gm.Point) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func FromCPVector(v cp.Vector) gm.Point {
	return gm.Point{X: v.X, Y: v.Y}
}
