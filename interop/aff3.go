package interop

import (
	"github.com/dwfe/tools/gm"
	"github.com/dwfe/tools/webmatrix"
	"golang.org/x/image/math/f64"
)

// ToAff3 converts m into the row major f64.Aff3 used by golang.org/x/image/draw.
func ToAff3(m webmatrix.Matrix) f64.Aff3 {
	return f64.Aff3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}
}

func FromAff3(a f64.Aff3) webmatrix.Matrix {
	return webmatrix.Matrix{
		a[0], a[3],
		a[1], a[4],
		a[2], a[5],
	}
}

func ToVec2(p gm.Point) f64.Vec2 {
	return f64.Vec2{p.X, p.Y}
}

func FromVec2(v f64.Vec2) gm.Point {
	return gm.Point{X: v[0], Y: v[1]}
}
