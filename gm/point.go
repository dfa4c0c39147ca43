package gm

import (
	"fmt"
	"math"
)

// Accuracy is the tolerance used by every equality check in gm and webmatrix.
// Two numbers are equal if they differ by less than Accuracy.
const Accuracy = 0.0001

// ApproxEqual reports whether a and b differ by less than Accuracy.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Accuracy
}

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

var PointZero = Point{}

func PointOf(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

func (p Point) Sub(other Point) Point {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

// Mul multiplies both coordinates with the same factor.
func (p Point) Mul(k float64) Point {
	p.X *= k
	p.Y *= k
	return p
}

// Scale multiplies each coordinate with its own factor.
func (p Point) Scale(kx, ky float64) Point {
	p.X *= kx
	p.Y *= ky
	return p
}

// Middle returns the point halfway between p and other.
func (p Point) Middle(other Point) Point {
	return p.Add(other).Mul(0.5)
}

// Distance returns the euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Length returns the distance of p to the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Equal reports whether both coordinates are within Accuracy of each other.
func (p Point) Equal(other Point) bool {
	return ApproxEqual(p.X, other.X) && ApproxEqual(p.Y, other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("point(x=%v, y=%v)", p.X, p.Y)
}
