package metrics

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/geom"
)

// MinDistance returns the smallest distance between two points, the quantity
// the Tammes problem maximizes. Less than two points yield +Inf.
func MinDistance(points []geom.Vec3) float64 {
	best := math.Inf(1)

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			best = min(best, points[i].Distance(points[j]))
		}
	}

	return best
}

// LogEnergy returns −Σ log d(i, j) over all pairs. A repulsion force of
// strength/distance is the negative gradient of this energy, so relaxation
// drives it down.
func LogEnergy(points []geom.Vec3) float64 {
	var energy float64

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			dist := points[i].Distance(points[j])
			if dist == 0 {
				return math.Inf(1)
			}

			energy -= math.Log(dist)
		}
	}

	return energy
}
