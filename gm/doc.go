// Package gm (stands for geometry math) provides the 2d primitives the matrix
// engine in package webmatrix operates on.
//
// It includes a point type called Point, a Vector made of two points, an
// axis aligned Rect and the AngleType unit tag together with the conversion
// functions ToRadians and ToDegrees.
//
// All values are immutable: every method returns a new value. Equality is
// always tolerance based, see Accuracy.
package gm
