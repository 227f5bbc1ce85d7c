package sphere

import (
	"github.com/pkg/errors"
)

var ErrOpenMesh = errors.New("mesh is not a closed surface")

// Validate checks that the mesh is a closed triangulated surface: every edge
// is shared by exactly two triangles, V − E + F = 2 and all points are
// connected. Meshes with less than four points only get their indices
// checked.
func (m *Mesh) Validate() error {
	n := len(m.Points)

	for idx, t := range m.Triangles {
		for _, v := range t {
			if v < 0 || v >= n {
				return errors.Errorf("triangle %d references point %d of %d", idx, v, n)
			}
		}

		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return errors.Errorf("triangle %d repeats a point: %v", idx, t)
		}
	}

	if n < 4 {
		return nil
	}

	use := m.EdgeUse()
	for edge, count := range use {
		if count != 2 {
			return errors.Wrapf(ErrOpenMesh, "edge %d-%d is used by %d triangles", edge.One, edge.Two, count)
		}
	}

	if euler := n - len(use) + len(m.Triangles); euler != 2 {
		return errors.Wrapf(ErrOpenMesh, "euler characteristic is %d", euler)
	}

	uf := NewUnionFind(n)
	for edge := range use {
		uf.Union(edge.One, edge.Two)
	}

	if components := uf.Components(); components != 1 {
		return errors.Wrapf(ErrOpenMesh, "mesh has %d components", components)
	}

	return nil
}

type UnionFind struct {
	parent []int
}

func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
	}

	for idx := range uf.parent {
		uf.parent[idx] = idx
	}

	return uf
}

func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	for x != uf.parent[x] {
		parent := uf.parent[x]
		uf.parent[x] = root
		x = parent
	}

	return root
}

func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)

	if rootX == rootY {
		return false
	}

	uf.parent[rootY] = rootX
	return true
}

func (uf *UnionFind) Components() int {
	var count int
	for idx := range uf.parent {
		if uf.Find(idx) == idx {
			count++
		}
	}

	return count
}
