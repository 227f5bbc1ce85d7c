// Package relax spreads the points of a sphere mesh apart with a pairwise
// repulsion force, re-projecting them onto the sphere after every step.
package relax

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/sphere"
)

// Full accumulates the repulsion between every pair of points. The force
// pushing i away from j has magnitude strength/distance. O(n²).
func Full(points []geom.Vec3, strength float64) []geom.Vec3 {
	velocities := make([]geom.Vec3, len(points))

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			force := repulsion(points[i], points[j], strength, 1)

			velocities[i] = velocities[i].Add(force)
			velocities[j] = velocities[j].Sub(force)
		}
	}

	return velocities
}

// Neighbours only lets points repel their direct neighbours in the mesh.
// Every edge is visited from both of its ends, so each visit applies half
// of the force.
func Neighbours(points []geom.Vec3, adjacency sphere.Adjacency, strength float64) []geom.Vec3 {
	velocities := make([]geom.Vec3, len(points))

	for i := range points {
		if i >= len(adjacency) {
			break
		}

		for _, j := range adjacency.Neighbours(i) {
			force := repulsion(points[i], points[j], strength, 2)

			velocities[i] = velocities[i].Add(force)
			velocities[j] = velocities[j].Sub(force)
		}
	}

	return velocities
}

// repulsion returns the force pushing a away from b. Coincident points and
// non finite distances produce no force.
func repulsion(a, b geom.Vec3, strength, share float64) geom.Vec3 {
	dir := a.Sub(b)

	dist := dir.Norm()
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return geom.Vec3{}
	}

	f := strength / (dist * share)

	return geom.Normalize(dir).Mul(f)
}

// Apply moves every point by its velocity and projects it back onto the
// sphere. It returns the new positions and the largest distance a point
// moved.
func Apply(points, velocities []geom.Vec3, radius float64, center geom.Vec3) ([]geom.Vec3, float64) {
	moved := make([]geom.Vec3, len(points))

	var maxDisplacement float64
	for idx, point := range points {
		offset := point.Sub(center)
		if idx < len(velocities) {
			offset = offset.Add(velocities[idx])
		}

		dir := geom.Normalize(offset)
		if dir == (geom.Vec3{}) || !geom.IsFinite(dir) {
			// the velocity cancelled the position, keep the point in place
			moved[idx] = point
			continue
		}

		moved[idx] = dir.Mul(radius).Add(center)
		maxDisplacement = max(maxDisplacement, moved[idx].Distance(point))
	}

	return moved, maxDisplacement
}
