// Package interop converts webmatrix.Matrix values from and into the affine
// transform types of other libraries.
//
// All of them store the same six values, only the order differs.
package interop
