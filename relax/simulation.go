package relax

import (
	"math"
	"time"

	"github.com/fogleman/ease"
	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/oliverbestmann/thomson-sphere/tween"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid relaxation config")

type Config struct {
	// Strength scales the repulsion force.
	Strength float64

	// Interval is the time between two ticks.
	Interval time.Duration

	// Neighbours restricts the repulsion to points sharing an edge.
	Neighbours bool

	// Anneal eases the strength from Strength to FinalStrength over the given
	// amount of ticked time, after holding it for Warmup. Zero disables it.
	Anneal        time.Duration
	Warmup        time.Duration
	FinalStrength float64

	// Epsilon stops the relaxation once no point moves further than this
	// within a tick. Zero runs until stopped.
	Epsilon float64

	// MaxTicks stops the relaxation after this many ticks. Zero means no limit.
	MaxTicks int
}

func DefaultConfig() Config {
	return Config{
		Strength: 0.01,
		Interval: 100 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	if math.IsNaN(c.Strength) || math.IsInf(c.Strength, 0) {
		return errors.Wrapf(ErrInvalidConfig, "strength %v is not finite", c.Strength)
	}

	if c.Interval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick interval must be positive, got %s", c.Interval)
	}

	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) {
		return errors.Wrapf(ErrInvalidConfig, "epsilon must not be negative, got %v", c.Epsilon)
	}

	if c.MaxTicks < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative tick limit %d", c.MaxTicks)
	}

	return nil
}

// TickResult describes one relaxation step.
type TickResult struct {
	Tick            int
	Mesh            *sphere.Mesh
	Strength        float64
	MaxDisplacement float64

	// Converged is set when MaxDisplacement fell below the configured epsilon.
	Converged bool
}

// Simulation advances a mesh one relaxation step at a time. It is not safe
// for concurrent use, the Runner serializes the ticks.
type Simulation struct {
	cfg    Config
	opts   []sphere.Option
	logger *zap.Logger

	mesh     *sphere.Mesh
	strength float64
	tweens   tween.Tweens
	ticks    int
}

// NewSimulation starts a simulation from mesh. The sphere options are used
// for the triangulation after every step.
func NewSimulation(mesh *sphere.Mesh, cfg Config, logger *zap.Logger, opts ...sphere.Option) (*Simulation, error) {
	if mesh == nil {
		return nil, errors.New("simulation needs a mesh")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	sim := &Simulation{
		cfg:      cfg,
		opts:     append([]sphere.Option{sphere.WithLogger(logger)}, opts...),
		logger:   logger,
		mesh:     mesh,
		strength: cfg.Strength,
	}

	if cfg.Anneal > 0 {
		sim.tweens.Add(tween.Delay(cfg.Warmup, &tween.Simple{
			Duration: cfg.Anneal,
			Ease:     ease.InOutQuad,
			Target:   tween.LerpValue(&sim.strength, cfg.Strength, cfg.FinalStrength),
		}))
	}

	return sim, nil
}

func (s *Simulation) Mesh() *sphere.Mesh {
	return s.mesh
}

func (s *Simulation) Strength() float64 {
	return s.strength
}

func (s *Simulation) Ticks() int {
	return s.ticks
}

// Velocities computes the repulsion for the current mesh.
func (s *Simulation) Velocities() []geom.Vec3 {
	if s.cfg.Neighbours {
		return Neighbours(s.mesh.Points, s.mesh.Adjacency, s.strength)
	}

	return Full(s.mesh.Points, s.strength)
}

// Tick moves the points once and rebuilds the mesh from the new positions.
func (s *Simulation) Tick() TickResult {
	strength := s.strength

	velocities := s.Velocities()

	cfg := s.mesh.Config
	points, displacement := Apply(s.mesh.Points, velocities, cfg.Radius, cfg.Center)

	s.mesh = sphere.Rebuild(cfg, points, s.opts...)
	s.ticks++

	s.tweens.Update(s.cfg.Interval)

	result := TickResult{
		Tick:            s.ticks,
		Mesh:            s.mesh,
		Strength:        strength,
		MaxDisplacement: displacement,
		Converged:       s.cfg.Epsilon > 0 && displacement < s.cfg.Epsilon,
	}

	s.logger.Debug("relaxation tick",
		zap.Int("tick", result.Tick),
		zap.Float64("strength", strength),
		zap.Float64("displacement", displacement),
		zap.Int("triangles", len(s.mesh.Triangles)))

	return result
}

// Done reports whether the configured tick limit has been reached.
func (s *Simulation) Done() bool {
	return s.cfg.MaxTicks > 0 && s.ticks >= s.cfg.MaxTicks
}
