package metrics

import (
	"math"
	"testing"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, n int) *sphere.Mesh {
	t.Helper()

	mesh, err := sphere.Build(sphere.Config{N: n, Radius: 1})
	require.NoError(t, err)

	return mesh
}

func TestTriangleArea(t *testing.T) {
	a, b, c := geom.V3(0, 0, 0), geom.V3(2, 0, 0), geom.V3(0, 3, 0)
	require.InDelta(t, 3, TriangleArea(a, b, c), 1e-15)

	for _, perm := range [][3]geom.Vec3{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	} {
		assert.InDelta(t, 3, TriangleArea(perm[0], perm[1], perm[2]), 1e-15)
	}

	offset := geom.V3(-7, 11, 0.25)
	require.InDelta(t, 3, TriangleArea(a.Add(offset), b.Add(offset), c.Add(offset)), 1e-12)

	// collinear points span no area
	require.Zero(t, TriangleArea(a, b, geom.V3(4, 0, 0)))
}

func TestOptimalArea(t *testing.T) {
	require.InDelta(t, math.Pi, OptimalArea(1, 4), 1e-15)
	require.InDelta(t, 4*math.Pi*4/8, OptimalArea(2, 8), 1e-12)
	require.Zero(t, OptimalArea(1, 0))
}

func TestQualityRatio(t *testing.T) {
	for _, tc := range []struct {
		area, optimal, expected float64
	}{
		{1, 1, 1},
		{1, 2, 0.5},
		{2, 1, 0.5},
		{0, 1, 0},
		{0, 0, 0},
	} {
		require.InDelta(t, tc.expected, QualityRatio(tc.area, tc.optimal), 1e-15)
	}
}

func TestTriangleQualityTetrahedron(t *testing.T) {
	mesh := sphere.Rebuild(sphere.Config{Radius: math.Sqrt(3)}, []geom.Vec3{
		geom.V3(1, 1, 1),
		geom.V3(1, -1, -1),
		geom.V3(-1, 1, -1),
		geom.V3(-1, -1, 1),
	})

	quality := TriangleQuality(mesh)
	require.Len(t, quality, 4)

	for _, q := range quality {
		require.InDelta(t, quality[0], q, 1e-12)
		require.Greater(t, q, 0.0)
		require.LessOrEqual(t, q, 1.0)
	}

	for _, c := range Connectivity(mesh) {
		require.Zero(t, c)
	}
}

func TestConnectivity(t *testing.T) {
	mesh := build(t, 40)

	values := Connectivity(mesh)
	require.Len(t, values, 40)

	maxDegree := mesh.Adjacency.MaxDegree()
	for idx, value := range values {
		require.InDelta(t, 1-float64(mesh.Adjacency.Degree(idx))/float64(maxDegree), value, 1e-15)
		require.GreaterOrEqual(t, value, 0.0)
		require.Less(t, value, 1.0)
	}

	require.Equal(t, []float64{1, 1}, Connectivity(build(t, 2)))
}

func TestCompute(t *testing.T) {
	mesh := build(t, 20)

	require.Len(t, Compute(mesh, AreaQuality), len(mesh.Triangles))
	require.Equal(t, TriangleQuality(mesh), Compute(mesh, AreaQuality))
	require.Equal(t, Connectivity(mesh), Compute(mesh, ConnectivityQuality))
	require.Len(t, Compute(mesh, ConnectivityQuality), len(mesh.Points))
}

func TestHeap(t *testing.T) {
	h := MakeHeap(func(a, b int) bool { return a < b })
	require.True(t, h.IsEmpty())

	for _, value := range []int{5, 1, 4, 2, 3} {
		h.Push(value)
	}

	var popped []int
	for !h.IsEmpty() {
		popped = append(popped, h.Pop())
	}

	require.Equal(t, []int{1, 2, 3, 4, 5}, popped)
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{AreaQuality, ConnectivityQuality} {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}

	_, err := ParseMode("curvature")
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	small := Summarize(build(t, 20))
	large := Summarize(build(t, 100))

	require.Equal(t, 100, large.Points)
	require.Equal(t, 196, large.Triangles)
	require.Equal(t, 294, large.Edges)
	require.Zero(t, large.Degenerate)

	// an inscribed polytope never covers the whole sphere, but gets closer
	// with more points
	require.Less(t, large.Coverage, 1.0)
	require.Greater(t, large.Coverage, 0.9)
	require.Greater(t, large.Coverage, small.Coverage)

	require.InDelta(t, large.Area.Mean*float64(large.Triangles)/(4*math.Pi), large.Coverage, 1e-12)
	require.Greater(t, large.Quality.Mean, 0.5)
	require.LessOrEqual(t, large.Quality.Max, 1.0)
	require.InDelta(t, 2*294.0/100, large.Degree.Mean, 1e-12)

	require.Greater(t, small.MinDistance, large.MinDistance)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(build(t, 1))

	require.Equal(t, 1, summary.Points)
	require.Zero(t, summary.Triangles)
	require.Zero(t, summary.Coverage)
	require.Equal(t, Distribution{}, summary.Area)
	require.True(t, math.IsInf(summary.MinDistance, 1))
}

func TestWorst(t *testing.T) {
	mesh := build(t, 50)
	quality := TriangleQuality(mesh)

	worst := Worst(mesh, 5)
	require.Len(t, worst, 5)

	for idx := 1; idx < len(worst); idx++ {
		require.LessOrEqual(t, worst[idx-1].Quality, worst[idx].Quality)
	}

	for _, rated := range worst {
		require.Equal(t, quality[rated.Index], rated.Quality)
		require.Equal(t, mesh.Triangles[rated.Index], rated.Triangle)
	}

	// nothing outside the result is worse than its best entry
	var worse int
	for _, q := range quality {
		if q < worst[len(worst)-1].Quality {
			worse++
		}
	}

	require.LessOrEqual(t, worse, 4)

	require.Empty(t, Worst(mesh, 0))
	require.Empty(t, Worst(build(t, 2), 3))
	require.Len(t, Worst(mesh, 1000), len(mesh.Triangles))
}

func TestEnergy(t *testing.T) {
	points := []geom.Vec3{geom.V3(1, 0, 0), geom.V3(-1, 0, 0)}

	require.InDelta(t, 2, MinDistance(points), 1e-15)
	require.InDelta(t, -math.Log(2), LogEnergy(points), 1e-15)

	require.True(t, math.IsInf(LogEnergy([]geom.Vec3{points[0], points[0]}), 1))
	require.True(t, math.IsInf(MinDistance(points[:1]), 1))
}
