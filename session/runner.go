package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvopt/config"
	"github.com/katalvlaran/lvopt/dijkstra"
	"github.com/katalvlaran/lvopt/metrics"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/shortestpath"
	"github.com/katalvlaran/lvopt/solver"
)

// routeTolerance bounds the accepted gap between the LP route total and the
// Dijkstra distance.
const routeTolerance = 1e-6

// Runner builds, solves and interprets problems one at a time.
type Runner struct {
	solver  solver.Solver
	diag    solver.Diagnoser
	logger  *slog.Logger
	outOpts []outcome.Option
	verify  bool
	record  bool

	mu    sync.Mutex
	phase Phase
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSolver replaces the default simplex adapter. If s also implements
// solver.Diagnoser it becomes the IIS source too.
func WithSolver(s solver.Solver) RunnerOption {
	return func(r *Runner) {
		if s == nil {
			return
		}
		r.solver = s
		if d, ok := s.(solver.Diagnoser); ok {
			r.diag = d
		} else {
			r.diag = nil
		}
	}
}

// WithDiagnoser sets the IIS source; nil disables conflict reporting.
func WithDiagnoser(d solver.Diagnoser) RunnerOption {
	return func(r *Runner) { r.diag = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOutcomeOptions passes display options to outcome.Interpret.
func WithOutcomeOptions(opts ...outcome.Option) RunnerOption {
	return func(r *Runner) { r.outOpts = append(r.outOpts, opts...) }
}

// WithRouteCheck cross-checks optimal shortest-path totals against Dijkstra.
func WithRouteCheck(on bool) RunnerOption {
	return func(r *Runner) { r.verify = on }
}

// WithMetrics records every run in the Prometheus collectors.
func WithMetrics(on bool) RunnerOption {
	return func(r *Runner) { r.record = on }
}

// NewRunner returns a Runner over a default solver.New() adapter that also
// computes IIS, logging nowhere.
func NewRunner(opts ...RunnerOption) *Runner {
	s := solver.New()
	r := &Runner{
		solver: s,
		diag:   s,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FromConfig builds a Runner from loaded settings.
func FromConfig(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := []RunnerOption{
		WithSolver(solver.New(cfg.SolverOptions(logger.With("component", "solver"))...)),
		WithLogger(logger),
		WithOutcomeOptions(cfg.OutcomeOptions()...),
		WithRouteCheck(cfg.VerifyWithDijkstra),
		WithMetrics(cfg.Metrics),
	}
	if !cfg.IISEnabled() {
		opts = append(opts, WithDiagnoser(nil))
	}

	return NewRunner(opts...)
}

// Phase reports where the current run is.
func (r *Runner) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.phase
}

func (r *Runner) enter(log *slog.Logger, p Phase) {
	r.mu.Lock()
	r.phase = p
	r.mu.Unlock()
	log.Debug("phase", "phase", p.String())
}

// Solve runs p to completion. It never panics and never returns an error:
// every failure becomes a BuildError or SolverError outcome.
func (r *Runner) Solve(ctx context.Context, p Problem) (out outcome.Outcome) {
	if p == nil {
		return outcome.FromBuildError(ErrNilProblem)
	}

	runID := uuid.NewString()
	kind := p.Kind()
	log := r.logger.With("run_id", runID, "problem", kind)
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("run panicked", "panic", rec)
			out = outcome.FromSolverError(fmt.Errorf("%w: %v", ErrPanic, rec))
		}
		elapsed := time.Since(start)
		out.RunID, out.Problem = runID, kind
		r.enter(log, Idle)

		attrs := []any{"outcome", out.Kind.String(), "status", out.Status.String(), "duration", elapsed}
		switch out.Kind {
		case outcome.BuildError, outcome.SolverError:
			log.Warn("run failed", append(attrs, "err", out.Err)...)
		default:
			log.Info("run finished", attrs...)
		}
		if r.record {
			metrics.Record(kind, out, elapsed)
		}
	}()

	r.enter(log, Building)
	m, err := p.Build()
	if err != nil {
		return outcome.FromBuildError(err)
	}
	log.Debug("model built", "vars", m.NumVars(), "constraints", m.NumConstraints())

	r.enter(log, Solving)
	res, err := r.solver.Solve(ctx, m)
	if err != nil {
		return outcome.FromSolverError(err)
	}
	out = outcome.Interpret(ctx, m, res, r.diag, r.outOpts...)
	if out.IISErr != nil {
		log.Warn("conflict search failed", "err", out.IISErr)
	}
	if f, ok := p.(Finisher); ok {
		if err := f.Finish(m, res, &out); err != nil {
			return outcome.FromSolverError(err)
		}
	}
	if r.verify {
		r.checkRoute(log, p, out)
	}

	return out
}

// checkRoute compares an optimal LP route with Dijkstra on the same graph.
func (r *Runner) checkRoute(log *slog.Logger, p Problem, out outcome.Outcome) {
	sp, ok := p.(shortestpath.Problem)
	if !ok || out.Kind != outcome.Optimal {
		return
	}
	path, dist, err := dijkstra.ShortestPath(sp.Graph, sp.Start, sp.End)
	if err != nil {
		log.Warn("route check failed", "err", err)

		return
	}
	if math.Abs(dist-out.Total) > routeTolerance*math.Max(1, dist) {
		log.Warn("route check mismatch", "lp_total", out.Total, "dijkstra_total", dist, "dijkstra_path", path)

		return
	}
	log.Debug("route check passed", "total", dist)
}
