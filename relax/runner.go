package relax

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrRunning = errors.New("relaxation is already running")

// Runner ticks a Simulation periodically on its own goroutine. A tick always
// completes before the next one starts, ticks that would overlap are
// skipped.
type Runner struct {
	sim    *Simulation
	logger *zap.Logger

	// OnTick is called on the runner goroutine after every tick. Set it
	// before calling Start.
	OnTick func(TickResult)

	latest atomic.Pointer[sphere.Mesh]

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(sim *Simulation, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{
		sim:    sim,
		logger: logger,
	}

	r.latest.Store(sim.Mesh())

	return r
}

// Mesh returns the mesh produced by the most recent tick.
func (r *Runner) Mesh() *sphere.Mesh {
	return r.latest.Load()
}

// Start begins ticking every interval until Stop is called, ctx is cancelled,
// the simulation converges or its tick limit is reached.
func (r *Runner) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick interval must be positive, got %s", interval)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running() {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)

	done := make(chan struct{})

	r.cancel = cancel
	r.done = done

	go func() {
		defer close(done)
		defer cancel()

		r.loop(ctx, interval)
	}()

	return nil
}

// Stop cancels the ticking and waits for a tick in progress to finish.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Running reports whether the runner is ticking.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.running()
}

func (r *Runner) running() bool {
	if r.done == nil {
		return false
	}

	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// Done is closed when the current run ends. Before the first Start it
// returns a closed channel.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}

	return r.done
}

func (r *Runner) loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("relaxation started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("relaxation stopped", zap.Int("ticks", r.sim.Ticks()))
			return

		case <-ticker.C:
			result := r.sim.Tick()
			r.latest.Store(result.Mesh)

			if r.OnTick != nil {
				r.OnTick(result)
			}

			if result.Converged {
				r.logger.Info("relaxation converged",
					zap.Int("ticks", result.Tick),
					zap.Float64("displacement", result.MaxDisplacement))
				return
			}

			if r.sim.Done() {
				r.logger.Info("relaxation reached tick limit", zap.Int("ticks", result.Tick))
				return
			}
		}
	}
}
