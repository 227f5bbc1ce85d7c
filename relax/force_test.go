package relax

import (
	"math"
	"testing"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/stretchr/testify/require"
)

func tetrahedron() []geom.Vec3 {
	return []geom.Vec3{
		geom.V3(1, 1, 1),
		geom.V3(1, -1, -1),
		geom.V3(-1, 1, -1),
		geom.V3(-1, -1, 1),
	}
}

func requireVecInDelta(t *testing.T, expected, actual geom.Vec3, delta float64) {
	t.Helper()

	require.InDelta(t, expected.X, actual.X, delta)
	require.InDelta(t, expected.Y, actual.Y, delta)
	require.InDelta(t, expected.Z, actual.Z, delta)
}

func TestFullTwoPoints(t *testing.T) {
	points := []geom.Vec3{geom.V3(1, 0, 0), geom.V3(-1, 0, 0)}

	velocities := Full(points, 0.5)

	// strength / distance along the line between the points
	requireVecInDelta(t, geom.V3(0.25, 0, 0), velocities[0], 1e-15)
	requireVecInDelta(t, geom.V3(-0.25, 0, 0), velocities[1], 1e-15)
}

func TestNeighboursMatchesFullOnCompleteGraph(t *testing.T) {
	points := []geom.Vec3{geom.V3(1, 0, 0), geom.V3(-1, 0, 0)}

	adjacency := sphere.NewAdjacency(2)
	adjacency.Link(0, 1)

	full := Full(points, 0.5)
	neighbours := Neighbours(points, adjacency, 0.5)

	for idx := range points {
		requireVecInDelta(t, full[idx], neighbours[idx], 1e-15)
	}

	// the tetrahedron connects every pair
	mesh := sphere.Rebuild(sphere.Config{Radius: math.Sqrt(3)}, tetrahedron())

	full = Full(mesh.Points, 0.1)
	neighbours = Neighbours(mesh.Points, mesh.Adjacency, 0.1)

	for idx := range mesh.Points {
		requireVecInDelta(t, full[idx], neighbours[idx], 1e-15)
	}
}

func TestNeighboursIgnoresDistantPoints(t *testing.T) {
	points := []geom.Vec3{geom.V3(1, 0, 0), geom.V3(0, 1, 0), geom.V3(-1, 0, 0)}

	adjacency := sphere.NewAdjacency(3)
	adjacency.Link(0, 1)

	velocities := Neighbours(points, adjacency, 1)
	require.Equal(t, geom.Vec3{}, velocities[2])
	require.NotEqual(t, geom.Vec3{}, velocities[0])
}

func TestTetrahedronIsBalanced(t *testing.T) {
	mesh := sphere.Rebuild(sphere.Config{Radius: math.Sqrt(3)}, tetrahedron())

	for name, velocities := range map[string][]geom.Vec3{
		"full":       Full(mesh.Points, 0.1),
		"neighbours": Neighbours(mesh.Points, mesh.Adjacency, 0.1),
	} {
		t.Run(name, func(t *testing.T) {
			// the forces on a vertex cancel except for the part pointing away
			// from the center, which the projection removes again
			var sum geom.Vec3
			for idx, v := range velocities {
				sum = sum.Add(v)
				requireVecInDelta(t, geom.Vec3{}, geom.Tangential(v, geom.Normalize(mesh.Points[idx])), 1e-15)
			}

			requireVecInDelta(t, geom.Vec3{}, sum, 1e-15)

			moved, _ := Apply(mesh.Points, velocities, mesh.Config.Radius, mesh.Config.Center)
			for idx := range moved {
				requireVecInDelta(t, mesh.Points[idx], moved[idx], 1e-12)
			}
		})
	}
}

func TestCoincidentPointsDoNotRepel(t *testing.T) {
	p := geom.V3(0, 0, 1)

	velocities := Full([]geom.Vec3{p, p}, 1)
	require.Equal(t, []geom.Vec3{{}, {}}, velocities)

	velocities = Full([]geom.Vec3{p, geom.V3(math.NaN(), 0, 0)}, 1)
	require.Equal(t, geom.Vec3{}, velocities[0])
}

func TestApplyStaysOnSphere(t *testing.T) {
	center := geom.V3(3, -1, 0.5)

	mesh, err := sphere.Build(sphere.Config{N: 20, Radius: 2, Center: center})
	require.NoError(t, err)

	velocities := make([]geom.Vec3, len(mesh.Points))
	for idx := range velocities {
		velocities[idx] = geom.V3(0.1, float64(idx)*0.01, -0.05)
	}

	moved, displacement := Apply(mesh.Points, velocities, 2, center)
	require.Len(t, moved, 20)
	require.Greater(t, displacement, 0.0)

	for idx, p := range moved {
		require.InDelta(t, 2, p.Distance(center), 1e-12)
		require.LessOrEqual(t, p.Distance(mesh.Points[idx]), displacement)
	}
}

func TestApplyWithoutVelocity(t *testing.T) {
	points := []geom.Vec3{geom.V3(1, 0, 0), geom.V3(0, 0, -1)}

	moved, displacement := Apply(points, make([]geom.Vec3, 2), 1, geom.Origin)
	require.Equal(t, points, moved)
	require.Zero(t, displacement)
}

func TestApplyCancelledPosition(t *testing.T) {
	points := []geom.Vec3{geom.V3(1, 0, 0)}

	moved, displacement := Apply(points, []geom.Vec3{geom.V3(-1, 0, 0)}, 1, geom.Origin)
	require.Equal(t, points, moved)
	require.Zero(t, displacement)
}
