// Command linsolve solves the linear system stored in a text file as an
// augmented matrix [A | b], one equation per line.
//
// Usage:
//
//	linsolve [flags] path/to/matrix_file.ext
//
// Exit codes: 0 on success, 1 when the file cannot be parsed or the system
// cannot be solved, -1 (255) on usage errors or an unopenable file.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
)

var log = logging.Logger("linsolve")

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = -1
)

const usageLine = "Usage: linsolve [flags] path/to/matrix_file.ext"

// config is the resolved command line.
type config struct {
	path    string
	verbose bool
	asInt   bool
	check   bool
	pivot   gauss.PivotPolicy
	eps     float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}

	var (
		quiet    = fs.Bool("quiet", false, "Print only the solution, without the elimination trace")
		asInt    = fs.Bool("int", false, "Parse matrix elements as integers instead of floating point")
		pivot    = fs.String("pivot", gauss.DefaultPivot.String(), "Pivot policy (partial, once, positive)")
		eps      = fs.Float64("eps", gauss.DefaultEpsilon, "Relative tolerance below which a pivot counts as zero")
		check    = fs.Bool("check", false, "Print the largest residual |A*x - b| of the solution")
		logLevel = fs.String("log-level", "error", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// Set log level for all subsystems
	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q, using error\n", *logLevel)
		level = logging.LevelError
	}
	logging.SetAllLoggers(level)

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, usageLine)
		return exitUsage
	}
	policy, err := gauss.ParsePivotPolicy(*pivot)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if math.IsNaN(*eps) || math.IsInf(*eps, 0) || *eps < 0 {
		fmt.Fprintf(stderr, "-eps must be finite and non-negative, got %g\n", *eps)
		return exitUsage
	}

	cfg := config{
		path:    fs.Arg(0),
		verbose: !*quiet,
		asInt:   *asInt,
		check:   *check,
		pivot:   policy,
		eps:     *eps,
	}

	f, err := os.Open(cfg.path)
	if err != nil {
		log.Debugw("open failed", "path", cfg.path, "err", err)
		fmt.Fprintf(stderr, "Unable to open file %q\n", cfg.path)
		return exitUsage
	}
	defer f.Close()

	if cfg.asInt {
		return solve[int64](f, cfg, stdout, stderr)
	}

	return solve[float64](f, cfg, stdout, stderr)
}

// solve loads, solves and reports one system. Domain failures (format,
// dimension, singular) are printed to stderr and mapped to exitFailure.
func solve[T matrix.Number](r io.Reader, cfg config, stdout, stderr io.Writer) int {
	m, err := matrix.ParseText[T](r)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	log.Infow("loaded system", "path", cfg.path, "rows", m.Rows(), "cols", m.Cols())

	var orig *matrix.Dense[T]
	if cfg.check {
		orig = m.Clone() // Solve works in place
	}

	solver, err := gauss.New(m,
		gauss.WithPivot(cfg.pivot),
		gauss.WithEpsilon(cfg.eps),
		gauss.WithTrace(stdout),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	fmt.Fprintf(stdout, "Solving System of Linear Equations [%s]:\n", cfg.path)
	x, err := solver.Solve(cfg.verbose)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	if !cfg.verbose {
		fmt.Fprintln(stdout, gauss.FormatSolution(x))
	}

	if cfg.check {
		worst, err := gauss.MaxResidual(orig, x)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
		fmt.Fprintf(stdout, "max residual: %g\n", worst)
	}

	return exitOK
}
