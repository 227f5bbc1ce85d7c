// Package geom holds the small geometric primitives shared by the sphere,
// metrics and relax packages.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is the 3D vector used everywhere in this module.
type Vec3 = r3.Vector

var Origin = Vec3{}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Normalize divides every component by the length of v. The zero vector
// stays the zero vector.
func Normalize(v Vec3) Vec3 {
	length := v.Norm()
	if length == 0 {
		return Vec3{}
	}

	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Sum3 returns a+b+c, the unnormalized centroid of a triangle.
func Sum3(a, b, c Vec3) Vec3 {
	return a.Add(b).Add(c)
}

func IsFinite(v Vec3) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Flatten packs the vectors into a float32 slice, three values per vector.
func Flatten(vs []Vec3) []float32 {
	flat := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		flat = append(flat, float32(v.X), float32(v.Y), float32(v.Z))
	}

	return flat
}

// Tangential removes the component of v along the unit direction n.
func Tangential(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}
