// Package webmatrix implements the 2d affine transformation matrix used by
// CSS transforms.
//
// A Matrix stores the six values a, b, c, d, e, f of the homogeneous matrix
//
//	a c e
//	b d f
//	0 0 1
//
// where a, b, c, d is the linear part (rotation, scale, skew) and e, f is the
// translation. The last row is implicit and never stored.
//
// The package offers the operations as pure functions taking and returning
// Matrix values, and as the fluent, immutable WebMatrix wrapper:
//
//	m := webmatrix.New().Translate(1, 10).Scale(1.5, 1.5).Rotate(-10)
//	fmt.Println(m.StyleValue()) // matrix(...)
//
// Transforms are appended the way a CSS transform list is read: the last
// call in a chain is the transform applied to a point first.
//
// A singular matrix can not be inverted. Every function that needs an inverse
// reports this with an error wrapping ErrNonInvertible.
package webmatrix
