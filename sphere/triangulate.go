package sphere

import (
	"math"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxBruteForce is the point count above which the O(n⁴) scan logs a warning.
// The scan still runs.
const MaxBruteForce = 400

// Triangle holds three point indices, wound so that its normal points away
// from the sphere center.
type Triangle [3]int

// Result is the outcome of a hull computation.
type Result struct {
	Triangles []Triangle
	Adjacency Adjacency

	// Degenerate counts the candidate triangles dropped because their plane
	// carries more than three points. Every such face leaves a gap.
	Degenerate int
}

type verdict int

const (
	faceRejected verdict = iota
	faceCoplanar
	faceAccepted
)

// scan holds the faces found for a range of first indices.
type scan struct {
	triangles  []Triangle
	degenerate int
}

// Hull triangulates the points with the strategy selected in opts.
func Hull(points []geom.Vec3, opts ...Option) Result {
	o := newOptions(opts)

	if o.strategy == QuickHullStrategy {
		return quickHull(points, o)
	}

	return triangulate(points, o)
}

// Triangulate finds every triangle whose plane has all other points strictly
// on one side by testing all triples. Points lying exactly on a candidate
// plane are compared with exact floating point equality.
func Triangulate(points []geom.Vec3, opts ...Option) Result {
	return triangulate(points, newOptions(opts))
}

func triangulate(points []geom.Vec3, o options) Result {
	n := len(points)

	result := Result{Adjacency: NewAdjacency(n)}
	if n < 3 {
		return result
	}

	if n > MaxBruteForce {
		o.logger.Warn("brute force triangulation of a large point set",
			zap.Int("points", n),
			zap.Int("limit", MaxBruteForce))
	}

	var scans []scan
	if o.workers > 1 {
		scans = scanParallel(points, o.center, o.workers)
	} else {
		scans = []scan{scanRange(points, o.center, 0, n)}
	}

	for _, s := range scans {
		result.Triangles = append(result.Triangles, s.triangles...)
		result.Degenerate += s.degenerate
	}

	result.Adjacency.LinkTriangles(result.Triangles)

	if result.Degenerate > 0 {
		o.logger.Debug("coplanar faces left open",
			zap.Int("candidates", result.Degenerate),
			zap.Int("triangles", len(result.Triangles)))
	}

	return result
}

// scanParallel gives every first index its own task. Each task writes only
// its own slot, the slots are merged in index order afterwards.
func scanParallel(points []geom.Vec3, center geom.Vec3, workers int) []scan {
	scans := make([]scan, len(points))

	var g errgroup.Group
	g.SetLimit(workers)

	for i := range points {
		g.Go(func() error {
			scans[i] = scanRange(points, center, i, i+1)
			return nil
		})
	}

	_ = g.Wait()

	return scans
}

func scanRange(points []geom.Vec3, center geom.Vec3, from, to int) scan {
	var s scan

	n := len(points)
	for i := from; i < to; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				tri, v := classify(points, center, i, j, k)

				switch v {
				case faceAccepted:
					s.triangles = append(s.triangles, tri)
				case faceCoplanar:
					s.degenerate++
				}
			}
		}
	}

	return s
}

func classify(points []geom.Vec3, center geom.Vec3, i, j, k int) (Triangle, verdict) {
	// collinear or repeated points span no plane
	normal := faceNormal(points, i, j, k)
	if normal == (geom.Vec3{}) {
		return Triangle{}, faceRejected
	}

	origin := points[i]

	var sign float64
	var coplanar int

	for x, point := range points {
		if x == i || x == j || x == k {
			continue
		}

		cosTheta := normal.Dot(point.Sub(origin))
		if cosTheta == 0 {
			coplanar++
			continue
		}

		side := math.Copysign(1, cosTheta)
		switch {
		case sign == 0:
			sign = side
		case side != sign:
			return Triangle{}, faceRejected
		}
	}

	if coplanar > 0 {
		return Triangle{}, faceCoplanar
	}

	return orient(points, center, normal, i, j, k), faceAccepted
}

// faceNormal returns the unit normal of (i, j, k), or the zero vector if the
// three points do not span a plane.
func faceNormal(points []geom.Vec3, i, j, k int) geom.Vec3 {
	origin := points[i]
	return geom.Normalize(points[j].Sub(origin).Cross(points[k].Sub(origin)))
}

// orient winds (i, j, k) so that normal, the normal of (i, j, k), points away
// from center.
func orient(points []geom.Vec3, center, normal geom.Vec3, i, j, k int) Triangle {
	mid := geom.Sum3(points[i], points[j], points[k]).Sub(center.Mul(3))
	if normal.Dot(mid) < 0 {
		return Triangle{i, k, j}
	}

	return Triangle{i, j, k}
}
