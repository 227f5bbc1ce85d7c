package sphere

import (
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/oliverbestmann/thomson-sphere/geom"
	"go.uber.org/zap"
)

// quickHullEpsilon is the plane distance below which quickhull treats a point
// as lying on a face.
const quickHullEpsilon = 1e-12

// QuickHull computes the hull with the quickhull algorithm. It runs in
// O(n log n) on average but, unlike Triangulate, it also splits faces with
// more than three coplanar points into triangles.
func QuickHull(points []geom.Vec3, opts ...Option) Result {
	return quickHull(points, newOptions(opts))
}

func quickHull(points []geom.Vec3, o options) Result {
	// quickhull needs an initial tetrahedron
	if len(points) < 4 {
		return triangulate(points, o)
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(points, true, true, quickHullEpsilon)

	result := Result{Adjacency: NewAdjacency(len(points))}

	for idx := 0; idx+2 < len(hull.Indices); idx += 3 {
		i, j, k := hull.Indices[idx], hull.Indices[idx+1], hull.Indices[idx+2]

		normal := faceNormal(points, i, j, k)
		result.Triangles = append(result.Triangles, orient(points, o.center, normal, i, j, k))
	}

	result.Adjacency.LinkTriangles(result.Triangles)

	o.logger.Debug("quickhull finished",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(result.Triangles)))

	return result
}
