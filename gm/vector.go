package gm

import "fmt"

// Vector is a directed segment from Start to End.
// Length and Middle are derived from the two points, nothing is cached.
type Vector struct {
	Start, End Point
}

func VectorOf(start, end Point) Vector {
	return Vector{Start: start, End: end}
}

// Delta returns End - Start.
func (v Vector) Delta() Point {
	return v.End.Sub(v.Start)
}

func (v Vector) Length() float64 {
	return v.Start.Distance(v.End)
}

func (v Vector) Middle() Point {
	return v.Start.Middle(v.End)
}

func (v Vector) Equal(other Vector) bool {
	return v.Start.Equal(other.Start) && v.End.Equal(other.End)
}

func (v Vector) String() string {
	return fmt.Sprintf("vector(start=%s, end=%s)", v.Start, v.End)
}
