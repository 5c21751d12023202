/*Package v3 implements a row-major Nx3 Matrix type used to represent
cartesian coordinates, wrapping gonum.org/v1/gonum/mat.Dense, and the
3x3 determinant used to reject a singular gonum matrix before turning it
into an nlist.Cell.

mat.Dense needs no backend registration: gonum.org/v1/gonum/blas/gonum,
the pure-Go BLAS implementation, is wired in by mat itself as its
default. Callers who link cgo-backed cblas64 and want it used instead
can still call blas64.Use(cblas64.Implementation{}) from their own main
package; this package takes no position on that choice.
*/
package v3
