package metrics_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/metrics"
	"github.com/katalvlaran/lvopt/outcome"
)

func counter(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))

	return m.GetCounter().GetValue()
}

func TestRecord(t *testing.T) {
	const problem = "metrics_test_record"
	before := counter(t, metrics.SolvesTotal.WithLabelValues(problem, "infeasible"))

	metrics.Record(problem, outcome.Outcome{Kind: outcome.Infeasible, Nodes: 3, Conflicts: []string{"a", "b"}}, 2*time.Millisecond)
	metrics.Record(problem, outcome.FromBuildError(errors.New("bad")), time.Millisecond)

	assert.Equal(t, before+1, counter(t, metrics.SolvesTotal.WithLabelValues(problem, "infeasible")))
	assert.Equal(t, 1.0, counter(t, metrics.SolvesTotal.WithLabelValues(problem, "build_error")))

	var h dto.Metric
	require.NoError(t, metrics.IISSize.WithLabelValues(problem).(prometheus.Histogram).Write(&h))
	assert.Equal(t, uint64(1), h.GetHistogram().GetSampleCount())
	assert.Equal(t, 2.0, h.GetHistogram().GetSampleSum())
}

func TestDumpKeepsOwnFamilies(t *testing.T) {
	metrics.Record("metrics_test_dump", outcome.Outcome{Kind: outcome.Optimal, Nodes: 1}, time.Millisecond)

	reg := prometheus.NewRegistry()
	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "unrelated_total", Help: "x"})
	reg.MustRegister(other, metrics.SolvesTotal, metrics.BranchNodes)

	var buf bytes.Buffer
	require.NoError(t, metrics.Dump(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `lvopt_solves_total{outcome="optimal",problem="metrics_test_dump"} 1`)
	assert.Contains(t, out, "lvopt_branch_nodes_bucket")
	assert.NotContains(t, out, "unrelated_total")
}
