// Package gauss solves dense systems of linear equations A·x = b given as an
// augmented N×(N+1) matrix [A | b], using Gaussian elimination with pivot
// selection followed by back-substitution.
//
// Workflow:
//
//	m, _ := matrix.ReadFile[float64]("system.txt")
//	s, _ := gauss.New(m)
//	x, err := s.Solve(true) // verbose: dumps every phase to os.Stdout
//
// The Solver works IN PLACE on the caller's matrix. Three pivot policies are
// available (see PivotPolicy); the default is classic partial pivoting by
// magnitude. Near-zero pivots are reported as ErrSingular rather than
// producing Inf/NaN, for integer and floating element types alike.
//
// Residual, MaxResidual and Verify check a solution against an untouched
// copy of the system.
package gauss
