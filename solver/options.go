package solver

import (
	"io"
	"log/slog"
)

// Default tuning values.
const (
	// DefaultTolerance is passed to lp.Simplex as its reduced-cost tolerance.
	DefaultTolerance = 1e-10

	// DefaultIntegralityTolerance is the distance from an integer under which
	// an Integer or Binary column counts as integral.
	DefaultIntegralityTolerance = 1e-6

	// DefaultMaxNodes bounds the number of LP relaxations per Solve.
	DefaultMaxNodes = 10000

	// feasibilityTolerance is the slack allowed when re-checking rows.
	feasibilityTolerance = 1e-6

	// rankTolerance decides when an eliminated row counts as zero.
	rankTolerance = 1e-9
)

// Options holds the configuration of a Simplex solver.
type Options struct {
	Tolerance            float64
	IntegralityTolerance float64
	MaxNodes             int
	Logger               *slog.Logger
}

// Option configures a Simplex solver.
type Option func(*Options)

// WithTolerance sets the simplex reduced-cost tolerance. Values <= 0 are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithIntegralityTolerance sets the integrality tolerance. Values <= 0 or >= 0.5 are ignored.
func WithIntegralityTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 && tol < 0.5 {
			o.IntegralityTolerance = tol
		}
	}
}

// WithMaxNodes bounds branch and bound. Values <= 0 are ignored.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// WithLogger routes solver progress (Debug level) to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the tuning used when no Option is given.
// Solver output is discarded by default.
func DefaultOptions() Options {
	return Options{
		Tolerance:            DefaultTolerance,
		IntegralityTolerance: DefaultIntegralityTolerance,
		MaxNodes:             DefaultMaxNodes,
		Logger:               slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
