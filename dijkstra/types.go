package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors for Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was configured.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex is missing.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be >= 0")

	// ErrBadInfThreshold indicates an impassable-edge threshold that is not positive.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be > 0")

	// ErrNoPath indicates that the target cannot be reached.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures a single run.
type Options struct {
	// Source is the start vertex. Required.
	Source string

	// ReturnPath enables the predecessor map.
	ReturnPath bool

	// MaxDistance caps exploration; vertices farther away stay at +Inf.
	MaxDistance float64

	// InfEdgeThreshold marks edges with weight >= threshold as impassable.
	InfEdgeThreshold float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with no cap, no threshold and no path recording.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Source sets the start vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance limits exploration to vertices within d of the source.
// Invalid values are reported by Dijkstra as ErrBadMaxDistance.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// WithInfEdgeThreshold makes every edge with weight >= t impassable.
// Invalid values are reported by Dijkstra as ErrBadInfThreshold.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) { o.InfEdgeThreshold = t }
}

func (o Options) validate() error {
	if o.Source == "" {
		return ErrEmptySource
	}
	if math.IsNaN(o.MaxDistance) || o.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if math.IsNaN(o.InfEdgeThreshold) || o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}

	return nil
}
