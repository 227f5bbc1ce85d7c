package sphere

import (
	"github.com/oliverbestmann/thomson-sphere/geom"
)

// Mesh is a triangulated point set on a sphere. Meshes are never modified
// after they were built, relaxation produces a new Mesh every step.
type Mesh struct {
	Config    Config
	Points    []geom.Vec3
	Triangles []Triangle
	Adjacency Adjacency

	// Degenerate is the number of candidate triangles dropped because they
	// lie on a face with more than three coplanar points.
	Degenerate int
}

// Build generates the points described by cfg and triangulates them.
func Build(cfg Config, opts ...Option) (*Mesh, error) {
	points, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	return Rebuild(cfg, points, opts...), nil
}

// Rebuild triangulates points that lie on the sphere of cfg. The points
// slice is owned by the returned mesh.
func Rebuild(cfg Config, points []geom.Vec3, opts ...Option) *Mesh {
	opts = append([]Option{WithCenter(cfg.Center)}, opts...)

	result := Hull(points, opts...)

	cfg.N = len(points)

	return &Mesh{
		Config:     cfg,
		Points:     points,
		Triangles:  result.Triangles,
		Adjacency:  result.Adjacency,
		Degenerate: result.Degenerate,
	}
}

func (m *Mesh) Vertices(t Triangle) (a, b, c geom.Vec3) {
	return m.Points[t[0]], m.Points[t[1]], m.Points[t[2]]
}

// Positions returns the point coordinates, three per point.
func (m *Mesh) Positions() []float32 {
	return geom.Flatten(m.Points)
}

// Indices returns the triangle indices, three per triangle.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}

	return indices
}
