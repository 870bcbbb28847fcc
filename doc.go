// Package linsolve is a small numerical utility for dense systems of linear
// equations: load an augmented matrix [A | b] from text, reduce it to
// row-echelon form with Gaussian elimination and pivoting, back-substitute,
// and optionally print every intermediate state.
//
// What is inside:
//
//   - matrix/       : generic growable row-major Dense[T] (any integer or float
//     type), row swaps/views, a whitespace text codec and a gonum bridge
//   - gauss/        : Solver[T]: pivot reordering, forward elimination,
//     back-substitution, verbose trace, residual checks
//   - cmd/linsolve/ : command-line driver
//   - examples/     : a worked scenario (mesh currents of a resistor network)
//
// Quick example (file with one equation per line):
//
//	0 1 3
//	1 0 2
//
// solves to { x1 = 2; x2 = 3 }.
//
// Single-threaded: a Solver mutates its matrix in place and neither
// type carries internal locking.
//
//	go install github.com/katalvlaran/linsolve/cmd/linsolve@latest
package linsolve
