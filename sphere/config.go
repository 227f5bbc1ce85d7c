package sphere

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/pkg/errors"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config describes the sphere the points are distributed on. It is comparable
// and doubles as the key of the mesh cache.
type Config struct {
	// N is the number of points on the sphere.
	N      int
	Radius float64
	Center geom.Vec3

	// Jitter displaces the lattice points by seeded noise, as a fraction of
	// the radius. Zero keeps the plain Fibonacci lattice.
	Jitter float64
	Seed   uint64
}

func (c Config) Validate() error {
	if c.N < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "negative point count %d", c.N)
	}

	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) || c.Radius <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "radius must be positive and finite, got %v", c.Radius)
	}

	if !geom.IsFinite(c.Center) {
		return errors.Wrapf(ErrInvalidConfiguration, "center %v is not finite", c.Center)
	}

	if math.IsNaN(c.Jitter) || math.IsInf(c.Jitter, 0) || c.Jitter < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "jitter must be a non-negative number, got %v", c.Jitter)
	}

	return nil
}

// SurfaceArea is the area of the ideal sphere, 4πr².
func (c Config) SurfaceArea() float64 {
	return 4 * math.Pi * c.Radius * c.Radius
}
