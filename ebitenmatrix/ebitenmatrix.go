// Package ebitenmatrix converts between webmatrix.Matrix and ebiten.GeoM.
//
// It lives in its own package so that importing webmatrix never pulls in a
// graphics driver.
package ebitenmatrix

import (
	"github.com/dwfe/tools/webmatrix"
	"github.com/hajimehoshi/ebiten/v2"
)

// ToGeoM returns a GeoM describing the same transformation as m.
func ToGeoM(m webmatrix.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// FromGeoM reads the six elements of g.
func FromGeoM(g ebiten.GeoM) webmatrix.Matrix {
	return webmatrix.Matrix{
		g.Element(0, 0),
		g.Element(1, 0),
		g.Element(0, 1),
		g.Element(1, 1),
		g.Element(0, 2),
		g.Element(1, 2),
	}
}

// Concat appends m to g, like webmatrix.Multiply(FromGeoM(g), m) would.
func Concat(g ebiten.GeoM, m webmatrix.Matrix) ebiten.GeoM {
	return ToGeoM(webmatrix.Multiply(FromGeoM(g), m))
}
