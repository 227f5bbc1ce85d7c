package sphere

import (
	"runtime"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Strategy selects how the hull of a point set is computed.
type Strategy int

const (
	// BruteForce tests every triple of points. This is the reference.
	BruteForce Strategy = iota

	// Parallel runs the brute force scan on several goroutines. The output is
	// identical to BruteForce.
	Parallel

	// QuickHullStrategy uses the quickhull algorithm. Faces with more than
	// three coplanar points are triangulated instead of left open.
	QuickHullStrategy
)

func (s Strategy) String() string {
	switch s {
	case BruteForce:
		return "brute"
	case Parallel:
		return "parallel"
	case QuickHullStrategy:
		return "quickhull"
	default:
		return "unknown"
	}
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{BruteForce, Parallel, QuickHullStrategy} {
		if s.String() == name {
			return s, nil
		}
	}

	return BruteForce, errors.Errorf("unknown hull strategy %q", name)
}

type options struct {
	center   geom.Vec3
	workers  int
	strategy Strategy
	logger   *zap.Logger
}

type Option func(*options)

// WithCenter sets the point the triangles are oriented away from.
func WithCenter(center geom.Vec3) Option {
	return func(o *options) {
		o.center = center
	}
}

// WithWorkers sets the number of goroutines used by the Parallel strategy.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

func WithStrategy(strategy Strategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.strategy == Parallel && o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
