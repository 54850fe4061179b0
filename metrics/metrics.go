// Package metrics holds the Prometheus collectors for solve runs.
//
// Collectors are registered on the default registry through promauto, so any
// component can record into them without setup. Dump writes the lvopt
// families in the text exposition format.
package metrics

import (
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvopt/outcome"
)

// Namespace prefixes every lvopt metric name.
const Namespace = "lvopt"

var (
	// SolvesTotal counts finished runs by problem kind and outcome kind.
	SolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solves_total",
			Help:      "Total number of solve runs by outcome",
		},
		[]string{"problem", "outcome"},
	)

	// SolveDuration measures build + solve + interpretation time.
	SolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solve_duration_seconds",
			Help:      "Duration of solve runs in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"problem"},
	)

	// BranchNodes records how many relaxations each run evaluated.
	BranchNodes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "branch_nodes",
			Help:      "LP relaxations evaluated per solve",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"problem"},
	)

	// IISSize records the number of conflicting constraints reported.
	IISSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "iis_size",
			Help:      "Constraints in the reported irreducible infeasible subsystem",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		},
		[]string{"problem"},
	)
)

// Record stores one finished run.
func Record(problem string, out outcome.Outcome, elapsed time.Duration) {
	SolvesTotal.WithLabelValues(problem, out.Kind.String()).Inc()
	SolveDuration.WithLabelValues(problem).Observe(elapsed.Seconds())
	if out.Nodes > 0 {
		BranchNodes.WithLabelValues(problem).Observe(float64(out.Nodes))
	}
	if out.Kind == outcome.Infeasible && len(out.Conflicts) > 0 {
		IISSize.WithLabelValues(problem).Observe(float64(len(out.Conflicts)))
	}
}

// Dump writes the lvopt metric families gathered from g in text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range Own(mfs) {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}

// Own keeps only the families in the lvopt namespace.
func Own(mfs []*dto.MetricFamily) []*dto.MetricFamily {
	var out []*dto.MetricFamily
	for _, mf := range mfs {
		if strings.HasPrefix(mf.GetName(), Namespace+"_") {
			out = append(out, mf)
		}
	}

	return out
}
