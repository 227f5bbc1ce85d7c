package metrics

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/sphere"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Distribution struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func distributionOf(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	mean, stdDev := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		stdDev = 0
	}

	return Distribution{
		Mean:   mean,
		StdDev: stdDev,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

type Summary struct {
	Points     int
	Triangles  int
	Edges      int
	Degenerate int

	Area    Distribution
	Quality Distribution
	Degree  Distribution

	// Coverage is the hull surface area divided by the sphere surface area.
	Coverage float64

	MinDistance float64
	Energy      float64
}

// Summarize collects statistics about the mesh.
func Summarize(mesh *sphere.Mesh) Summary {
	areas := Areas(mesh)

	degrees := make([]float64, len(mesh.Points))
	for idx := range degrees {
		degrees[idx] = float64(mesh.Adjacency.Degree(idx))
	}

	summary := Summary{
		Points:     len(mesh.Points),
		Triangles:  len(mesh.Triangles),
		Edges:      len(mesh.EdgeUse()),
		Degenerate: mesh.Degenerate,

		Area:    distributionOf(areas),
		Quality: distributionOf(TriangleQuality(mesh)),
		Degree:  distributionOf(degrees),

		MinDistance: MinDistance(mesh.Points),
		Energy:      LogEnergy(mesh.Points),
	}

	if surface := mesh.Config.SurfaceArea(); surface > 0 && !math.IsInf(surface, 0) {
		summary.Coverage = floats.Sum(areas) / surface
	}

	return summary
}
