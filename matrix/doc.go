// Package matrix offers a small, generic, row-major dense matrix.
//
// The matrix package provides:
//
//   - Dense[T], a resizable grid over any integer or floating-point type,
//     backed by one flat slice (offset = row*cols + col).
//   - Row-level editing used by elimination algorithms: AddRow (which may
//     widen every row), SwapRows, ForEachRow and bounds-checked Row views.
//   - A plain-text codec (LoadText/ParseText/ReadFile and Text) for
//     whitespace-separated numeric files.
//   - Validators for augmented systems and a bridge to gonum's mat.Dense.
//
// Dense is not safe for concurrent use; it is meant for a single owner and
// at most one mutating consumer (such as gauss.Solver) at a time.
//
// See the examples in this package and gauss for usage patterns.
package matrix
