package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle,
// expressed in the given unit.
func RandomAngle(unit AngleType) float64 {
	return ToDegrees(RandomIn(0, 2*math.Pi), Rad) / ToDegrees(1, unit)
}

// RandomPointIn returns a point uniformly sampled from within the rect.
func RandomPointIn(r Rect) Point {
	return Point{
		X: RandomIn(r.Min.X, r.Max.X),
		Y: RandomIn(r.Min.Y, r.Max.Y),
	}
}
