package webmatrix

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Object is the named field form of a Matrix.
type Object struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
	F float64 `json:"f"`
}

// ToArray returns the six values of m in a, b, c, d, e, f order.
func ToArray(m Matrix) [6]float64 {
	return m
}

func ToObject(m Matrix) Object {
	return Object{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
}

func FromObject(o Object) Matrix {
	return Matrix{o.A, o.B, o.C, o.D, o.E, o.F}
}

// String joins the six values with ", ".
func (m Matrix) String() string {
	var sb strings.Builder
	for idx, value := range m {
		if idx > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(formatValue(value))
	}

	return sb.String()
}

// StyleValue returns m in the syntax of the CSS matrix() transform function,
// e.g. "matrix(1, 0, 0, 1, -9, 5)".
func (m Matrix) StyleValue() string {
	return "matrix(" + m.String() + ")"
}

// UnmarshalJSON decodes the array form written by json.Marshal.
// The array must hold exactly six numbers.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode matrix: %w", err)
	}

	if len(values) != len(m) {
		return fmt.Errorf("decode matrix: expected %d values, got %d", len(m), len(values))
	}

	copy(m[:], values)
	return nil
}

// formatValue prints the shortest decimal representation that parses back
// into the same float64. Negative zero is printed as 0.
func formatValue(value float64) string {
	if value == 0 {
		value = 0
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}
