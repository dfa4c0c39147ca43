package gm

import (
	"fmt"
	"math"
	"strings"
)

// AngleType is the unit of an angle value. The zero value is Deg, which makes
// degrees the default unit wherever an AngleType is left unset.
type AngleType uint8

const (
	Deg AngleType = iota
	Rad
	Grad
	Turn
)

// String returns the CSS unit suffix of the angle type.
func (t AngleType) String() string {
	switch t {
	case Deg:
		return "deg"
	case Rad:
		return "rad"
	case Grad:
		return "grad"
	case Turn:
		return "turn"
	default:
		return fmt.Sprintf("AngleType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of Deg, Rad, Grad or Turn.
func (t AngleType) Valid() bool {
	return t <= Turn
}

// ParseAngleType parses a CSS angle unit suffix like "deg" or "turn".
func ParseAngleType(unit string) (AngleType, error) {
	switch strings.ToLower(unit) {
	case "deg":
		return Deg, nil
	case "rad":
		return Rad, nil
	case "grad":
		return Grad, nil
	case "turn":
		return Turn, nil
	default:
		return 0, fmt.Errorf("unknown angle unit %q", unit)
	}
}

// ToRadians converts value given in unit into radians.
// It panics if unit is not a valid AngleType.
func ToRadians(value float64, unit AngleType) float64 {
	switch unit {
	case Rad:
		return value
	case Deg:
		return value * math.Pi / 180
	case Grad:
		return value * math.Pi / 200
	case Turn:
		return value * 2 * math.Pi
	default:
		panic(fmt.Sprintf("can not get radians for angle type %s", unit))
	}
}

// ToDegrees converts value given in unit into degrees.
// It panics if unit is not a valid AngleType.
func ToDegrees(value float64, unit AngleType) float64 {
	switch unit {
	case Deg:
		return value
	case Rad:
		return value * 180 / math.Pi
	case Grad:
		return value * 9 / 10
	case Turn:
		return value * 360
	default:
		panic(fmt.Sprintf("can not get degrees for angle type %s", unit))
	}
}
