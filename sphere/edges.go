package sphere

import (
	"cmp"
	"maps"
	"slices"
)

// Edge is an undirected edge between two points, One < Two.
type Edge struct {
	One int
	Two int
}

func MakeEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{One: a, Two: b}
}

// EdgeUse counts how many triangles use every edge of the mesh.
func (m *Mesh) EdgeUse() map[Edge]int {
	use := make(map[Edge]int, len(m.Triangles)*3/2)

	for _, t := range m.Triangles {
		use[MakeEdge(t[0], t[1])]++
		use[MakeEdge(t[1], t[2])]++
		use[MakeEdge(t[2], t[0])]++
	}

	return use
}

// Edges returns the unique edges of the mesh, sorted.
func (m *Mesh) Edges() []Edge {
	return slices.SortedFunc(maps.Keys(m.EdgeUse()), func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.One, b.One), cmp.Compare(a.Two, b.Two))
	})
}
