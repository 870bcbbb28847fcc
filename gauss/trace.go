// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"io"
	"strings"
)

// Section headers printed after each matrix dump in verbose mode.
const (
	headerPivot    = "Moving rows with max elements to the main diagonal:"
	headerEchelon  = "Transforming system matrix into row echelon form:"
	headerSolution = "System solution:"
)

// textMatrix is the slice of *matrix.Dense[T] the tracer needs; it keeps the
// tracer free of type parameters.
type textMatrix interface{ Text() string }

// tracer writes the verbose trace. A disabled tracer is a no-op.
// Write errors are ignored: the trace is diagnostic output and must not turn a
// successful solve into a failure.
type tracer struct {
	w  io.Writer
	on bool
}

func newTracer(w io.Writer, on bool) *tracer { return &tracer{w: w, on: on} }

// dump prints the matrix, an empty line, then the header of the next phase.
func (t *tracer) dump(m textMatrix, header string) {
	if !t.on {
		return
	}
	fmt.Fprintf(t.w, "%s\n%s\n", m.Text(), header)
}

// swap prints one row exchange with 1-based row numbers.
func (t *tracer) swap(src, dst int, pivot any) {
	if !t.on {
		return
	}
	fmt.Fprintf(t.w, "  row %d -> row %d, pivot = %v\n", src+1, dst+1, pivot)
}

// solutionLine prints the final "{ x1 = ...; ... }" line.
func solutionLine[T any](t *tracer, x []T) {
	if !t.on {
		return
	}
	fmt.Fprintln(t.w, FormatSolution(x))
}

// FormatSolution renders x as "{ x1 = v1; x2 = v2; ... xn = vn }".
// An empty vector renders as "{ }".
func FormatSolution[T any](x []T) string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, v := range x {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "x%d = %v", i+1, v)
	}
	if len(x) > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte('}')

	return b.String()
}
