// Package metrics derives scalar quality signals from a triangulated sphere.
// None of them feed back into triangulation or relaxation.
package metrics

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/pkg/errors"
	"github.com/quasilyte/gmath"
)

// Mode selects which quality metric is computed.
type Mode int

const (
	// AreaQuality rates every triangle by how close its area is to the mean
	// area of a perfectly uniform mesh.
	AreaQuality Mode = iota

	// ConnectivityQuality rates every vertex by its number of neighbours.
	ConnectivityQuality
)

func (m Mode) String() string {
	switch m {
	case AreaQuality:
		return "area"
	case ConnectivityQuality:
		return "connectivity"
	default:
		return "unknown"
	}
}

func ParseMode(name string) (Mode, error) {
	for _, m := range []Mode{AreaQuality, ConnectivityQuality} {
		if m.String() == name {
			return m, nil
		}
	}

	return AreaQuality, errors.Errorf("unknown metric mode %q", name)
}

// TriangleArea returns the area of the triangle (v0, v1, v2).
func TriangleArea(v0, v1, v2 geom.Vec3) float64 {
	u := v1.Sub(v0)
	v := v2.Sub(v0)
	return u.Cross(v).Norm() / 2
}

// OptimalArea is the area every triangle would have if the sphere surface was
// split evenly between triangleCount triangles.
func OptimalArea(radius float64, triangleCount int) float64 {
	if triangleCount <= 0 {
		return 0
	}

	return 4 * math.Pi * radius * radius / float64(triangleCount)
}

// QualityRatio returns min(area, optimal) / max(area, optimal). One means the
// triangle has exactly the optimal area.
func QualityRatio(area, optimal float64) float64 {
	hi := max(area, optimal)
	if hi <= 0 {
		return 0
	}

	return gmath.Clamp(min(area, optimal)/hi, 0, 1)
}

// Areas returns the area of every triangle of the mesh.
func Areas(mesh *sphere.Mesh) []float64 {
	areas := make([]float64, len(mesh.Triangles))
	for idx, t := range mesh.Triangles {
		areas[idx] = TriangleArea(mesh.Vertices(t))
	}

	return areas
}

// TriangleQuality returns the area quality ratio of every triangle.
func TriangleQuality(mesh *sphere.Mesh) []float64 {
	optimal := OptimalArea(mesh.Config.Radius, len(mesh.Triangles))

	quality := Areas(mesh)
	for idx, area := range quality {
		quality[idx] = QualityRatio(area, optimal)
	}

	return quality
}

// Connectivity returns 1 − degree/maxDegree for every vertex. Vertices with
// many neighbours go towards 0, vertices with few towards 1.
func Connectivity(mesh *sphere.Mesh) []float64 {
	values := make([]float64, len(mesh.Points))

	maxDegree := mesh.Adjacency.MaxDegree()
	for idx := range values {
		if maxDegree == 0 {
			values[idx] = 1
			continue
		}

		values[idx] = 1 - float64(mesh.Adjacency.Degree(idx))/float64(maxDegree)
	}

	return values
}

// Compute returns per-triangle values for AreaQuality and per-vertex values
// for ConnectivityQuality.
func Compute(mesh *sphere.Mesh, mode Mode) []float64 {
	switch mode {
	case ConnectivityQuality:
		return Connectivity(mesh)
	default:
		return TriangleQuality(mesh)
	}
}
