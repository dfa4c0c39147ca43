package webmatrix

import (
	"encoding/json"

	"github.com/dwfe/tools/gm"
)

// WebMatrix is an immutable wrapper around a Matrix offering a fluent API.
// Every method returns a new value and leaves the receiver untouched.
//
//	m := New().Translate(40, 40).ScaleUniform(1.25).Translate(-40, -40)
//
// is the same as ScaleAtPoint(gm.PointOf(40, 40), 1.25, 1.25).
//
// The zero value wraps the zero matrix, not the identity. Use New.
type WebMatrix struct {
	m Matrix
}

// New returns a WebMatrix holding the identity.
func New() WebMatrix {
	return WebMatrix{m: Identity()}
}

// Of wraps the given matrix.
func Of(m Matrix) WebMatrix {
	return WebMatrix{m: m}
}

// Matrix returns the wrapped value.
func (w WebMatrix) Matrix() Matrix {
	return w.m
}

func (w WebMatrix) Determinant() float64 {
	return Determinant(w.m)
}

// Invert returns the inverse. The error wraps ErrNonInvertible if
// the determinant is zero.
func (w WebMatrix) Invert() (WebMatrix, error) {
	inverse, err := Invert(w.m)
	if err != nil {
		return WebMatrix{}, err
	}

	return Of(inverse), nil
}

// Multiply returns w * other, see Multiply.
func (w WebMatrix) Multiply(other WebMatrix) WebMatrix {
	return Of(Multiply(w.m, other.m))
}

func (w WebMatrix) MultiplyByScalar(k float64) WebMatrix {
	return Of(MultiplyByScalar(w.m, k))
}

func (w WebMatrix) Translate(tx, ty float64) WebMatrix {
	return Of(Translate(w.m, tx, ty))
}

func (w WebMatrix) TranslateX(tx float64) WebMatrix {
	return Of(TranslateX(w.m, tx))
}

func (w WebMatrix) TranslateY(ty float64) WebMatrix {
	return Of(TranslateY(w.m, ty))
}

func (w WebMatrix) Scale(sx, sy float64) WebMatrix {
	return Of(Scale(w.m, sx, sy))
}

// ScaleUniform scales both axis by s.
func (w WebMatrix) ScaleUniform(s float64) WebMatrix {
	return Of(Scale(w.m, s, s))
}

func (w WebMatrix) ScaleX(sx float64) WebMatrix {
	return Of(ScaleX(w.m, sx))
}

func (w WebMatrix) ScaleY(sy float64) WebMatrix {
	return Of(ScaleY(w.m, sy))
}

// Rotate rotates by angle given in degrees.
func (w WebMatrix) Rotate(angle float64) WebMatrix {
	return w.RotateIn(angle, gm.Deg)
}

func (w WebMatrix) RotateIn(angle float64, unit gm.AngleType) WebMatrix {
	return Of(Rotate(w.m, angle, unit))
}

// Skew skews by ax and ay given in degrees.
func (w WebMatrix) Skew(ax, ay float64) WebMatrix {
	return w.SkewIn(ax, ay, gm.Deg)
}

func (w WebMatrix) SkewIn(ax, ay float64, unit gm.AngleType) WebMatrix {
	return Of(Skew(w.m, ax, ay, unit))
}

// SkewX skews along the x axis by angle given in degrees.
func (w WebMatrix) SkewX(angle float64) WebMatrix {
	return w.SkewXIn(angle, gm.Deg)
}

func (w WebMatrix) SkewXIn(angle float64, unit gm.AngleType) WebMatrix {
	return Of(SkewX(w.m, angle, unit))
}

// SkewY skews along the y axis by angle given in degrees.
func (w WebMatrix) SkewY(angle float64) WebMatrix {
	return w.SkewYIn(angle, gm.Deg)
}

func (w WebMatrix) SkewYIn(angle float64, unit gm.AngleType) WebMatrix {
	return Of(SkewY(w.m, angle, unit))
}

func (w WebMatrix) Apply(p gm.Point) gm.Point {
	return Apply(w.m, p)
}

func (w WebMatrix) Convert(x float64) float64 {
	return Convert(w.m, x)
}

func (w WebMatrix) IsEqual(other WebMatrix) bool {
	return IsEqual(w.m, other.m)
}

func (w WebMatrix) ToArray() [6]float64 {
	return ToArray(w.m)
}

func (w WebMatrix) ToObject() Object {
	return ToObject(w.m)
}

func (w WebMatrix) String() string {
	return w.m.String()
}

func (w WebMatrix) StyleValue() string {
	return w.m.StyleValue()
}

// MarshalJSON encodes the wrapped matrix as an array of six numbers.
func (w WebMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.m)
}

func (w *WebMatrix) UnmarshalJSON(data []byte) error {
	return w.m.UnmarshalJSON(data)
}
