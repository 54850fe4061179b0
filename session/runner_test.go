package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvopt/allocation"
	"github.com/katalvlaran/lvopt/config"
	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/session"
	"github.com/katalvlaran/lvopt/shortestpath"
	"github.com/katalvlaran/lvopt/solver"
)

// countingSolver records calls and fails or panics on demand.
type countingSolver struct {
	calls int
	err   error
	boom  interface{}
}

func (c *countingSolver) Solve(context.Context, *model.Model) (*solver.Result, error) {
	c.calls++
	if c.boom != nil {
		panic(c.boom)
	}

	return nil, c.err
}

type RunnerSuite struct {
	suite.Suite
	logs   *bytes.Buffer
	runner *session.Runner
}

func (s *RunnerSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.runner = session.NewRunner(session.WithLogger(logger), session.WithRouteCheck(true))
}

func (s *RunnerSuite) allocation(demand string) *session.AllocationEditor {
	e := session.NewAllocationEditor()
	s.Require().NoError(e.AddCost("2"))
	s.Require().NoError(e.AddCost("3"))
	s.Require().NoError(e.AddConstraint("1, 1", "10"))
	s.Require().NoError(e.SetDemand(demand))

	return e
}

func (s *RunnerSuite) TestOptimalAllocation() {
	out := s.runner.Solve(context.Background(), s.allocation("4").Instance())

	s.Require().Equal(outcome.Optimal, out.Kind)
	s.InDelta(8, out.Objective, 1e-6)
	s.Equal("Total Cost", out.ObjectiveLabel)
	s.Equal(allocation.Kind, out.Problem)
	_, err := uuid.Parse(out.RunID)
	s.NoError(err)
	s.Equal(session.Idle, s.runner.Phase())

	s.Contains(s.logs.String(), `"run_id":"`+out.RunID+`"`)
	s.Contains(s.logs.String(), `"phase":"building"`)
	s.Contains(s.logs.String(), `"outcome":"optimal"`)
	s.NotContains(s.logs.String(), `"phase":"optimal"`)
}

func (s *RunnerSuite) TestInfeasibleCarriesConflicts() {
	out := s.runner.Solve(context.Background(), s.allocation("15").Instance())
	s.Require().Equal(outcome.Infeasible, out.Kind)
	s.Equal([]string{"demand", "constr_0"}, out.Conflicts)
	s.Contains(out.Report(), "Conflicting constraints: demand, constr_0")
}

func (s *RunnerSuite) TestRepeatedSolveIsStable() {
	in := s.allocation("4").Instance()
	first := s.runner.Solve(context.Background(), in)
	second := s.runner.Solve(context.Background(), in)

	s.NotEqual(first.RunID, second.RunID)
	first.RunID, second.RunID = "", ""
	s.Equal(first, second)
}

func (s *RunnerSuite) TestMismatchNeverReachesSolver() {
	stub := &countingSolver{}
	r := session.NewRunner(session.WithSolver(stub))
	in := s.allocation("4").Instance()
	in.Constraints = append(in.Constraints, allocation.Row{Coefs: []float64{1, 2, 3}, RHS: 1})

	out := r.Solve(context.Background(), in)
	s.Require().Equal(outcome.BuildError, out.Kind)
	var mismatch *allocation.ConstraintLengthMismatchError
	s.Require().True(errors.As(out.Err, &mismatch))
	s.Equal(1, mismatch.Row)
	s.Equal(0, stub.calls)
	s.Contains(out.Message(), "Invalid input")
}

func (s *RunnerSuite) TestSolverFailuresBecomeOutcomes() {
	stub := &countingSolver{err: errors.New("license expired")}
	out := session.NewRunner(session.WithSolver(stub)).Solve(context.Background(), s.allocation("4").Instance())
	s.Equal(outcome.SolverError, out.Kind)
	s.EqualError(out.Err, "license expired")

	stub = &countingSolver{boom: "index out of range"}
	r := session.NewRunner(session.WithSolver(stub))
	out = r.Solve(context.Background(), s.allocation("4").Instance())
	s.Equal(outcome.SolverError, out.Kind)
	s.ErrorIs(out.Err, session.ErrPanic)
	s.NotEmpty(out.RunID)
	s.Equal(session.Idle, r.Phase())
}

func (s *RunnerSuite) TestNilProblem() {
	out := s.runner.Solve(context.Background(), nil)
	s.Equal(outcome.BuildError, out.Kind)
	s.ErrorIs(out.Err, session.ErrNilProblem)
}

func (s *RunnerSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := s.runner.Solve(ctx, s.allocation("4").Instance())
	s.Equal(outcome.SolverError, out.Kind)
	s.ErrorIs(out.Err, context.Canceled)
}

func (s *RunnerSuite) TestShortestPathWithRouteCheck() {
	e := session.NewGraphEditor()
	for _, n := range []string{"A", "B", "C"} {
		s.Require().NoError(e.AddNode(n))
	}
	s.Require().NoError(e.AddEdge("A", "B", "1"))
	s.Require().NoError(e.AddEdge("B", "C", "2"))
	s.Require().NoError(e.AddEdge("A", "C", "5"))
	s.Require().NoError(e.SetStart("A"))
	s.Require().NoError(e.SetEnd("C"))

	out := s.runner.Solve(context.Background(), e.Problem())
	s.Require().Equal(outcome.Optimal, out.Kind)
	s.Equal(shortestpath.Kind, out.Problem)
	s.InDelta(3, out.Total, 1e-9)
	s.Equal("A → B (Weight: 1)\nB → C (Weight: 2)\nTotal: 3", out.Report())
	s.Contains(s.logs.String(), "route check passed")
	s.NotContains(s.logs.String(), "route check mismatch")
}

func (s *RunnerSuite) TestMissingEndpointsIsBuildError() {
	e := session.NewGraphEditor()
	s.Require().NoError(e.AddNode("A"))
	out := s.runner.Solve(context.Background(), e.Problem())
	s.Equal(outcome.BuildError, out.Kind)
	s.ErrorIs(out.Err, shortestpath.ErrMissingEndpoints)
}

func (s *RunnerSuite) TestFromConfigWithoutIIS() {
	cfg := config.DefaultConfig()
	off := false
	cfg.Solver.IIS = &off

	out := session.FromConfig(cfg, nil).Solve(context.Background(), s.allocation("15").Instance())
	s.Equal(outcome.Infeasible, out.Kind)
	s.Empty(out.Conflicts)
	s.Equal("The problem is infeasible. No solution exists.", out.Report())
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", session.Idle.String())
	assert.Equal(t, "building", session.Building.String())
	assert.Equal(t, "solving", session.Solving.String())
	assert.Equal(t, "unknown", session.Phase(9).String())
}

func TestRunnerDefaultsAreQuiet(t *testing.T) {
	r := session.NewRunner()
	e := session.NewBlendEditor()
	out := r.Solve(context.Background(), e.Problem())
	require.Equal(t, outcome.Optimal, out.Kind)
	assert.InDelta(t, 17, out.Objective, 1e-6)
	assert.Equal(t, 4, out.Precision)
}
