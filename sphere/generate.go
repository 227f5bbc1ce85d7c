package sphere

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/quasilyte/gmath"
)

// goldenAngle is π(√5−1), the angular increment between lattice points.
var goldenAngle = gmath.Rad(math.Pi * (math.Sqrt(5) - 1))

// Generate distributes cfg.N points over the sphere along a Fibonacci spiral.
// The result only depends on cfg.
func Generate(cfg Config) ([]geom.Vec3, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	directions := make([]geom.Vec3, cfg.N)
	for i := range directions {
		directions[i] = latticeDirection(i, cfg.N)
	}

	if cfg.Jitter > 0 {
		jitter(directions, cfg.Jitter, cfg.Seed)
	}

	points := make([]geom.Vec3, cfg.N)
	for i, dir := range directions {
		points[i] = dir.Mul(cfg.Radius).Add(cfg.Center)
	}

	return points, nil
}

// latticeDirection returns the unit direction of point i of n. y runs from 1
// towards -1.
func latticeDirection(i, n int) geom.Vec3 {
	y := 1 - (float64(i)/float64(n))*2
	r := math.Sqrt(max(0, 1-y*y))

	theta := goldenAngle * gmath.Rad(i)

	return geom.V3(
		math.Cos(float64(theta))*r,
		y,
		math.Sin(float64(theta))*r,
	)
}
