package sphere

import (
	"github.com/oliverbestmann/thomson-sphere/geom"
)

// Adjacency maps every point index to the indices it shares a triangle edge
// with.
type Adjacency []geom.Set[int]

func NewAdjacency(n int) Adjacency {
	return make(Adjacency, n)
}

// Link registers i and j as neighbours of each other.
func (a Adjacency) Link(i, j int) {
	if i == j {
		return
	}

	a[i].Insert(j)
	a[j].Insert(i)
}

func (a Adjacency) LinkTriangles(triangles []Triangle) {
	for _, t := range triangles {
		a.Link(t[0], t[1])
		a.Link(t[1], t[2])
		a.Link(t[2], t[0])
	}
}

// Neighbours returns the neighbours of i in ascending order.
func (a Adjacency) Neighbours(i int) []int {
	return geom.Sorted(&a[i])
}

func (a Adjacency) Degree(i int) int {
	return a[i].Len()
}

func (a Adjacency) MaxDegree() int {
	var maxDegree int
	for i := range a {
		maxDegree = max(maxDegree, a.Degree(i))
	}

	return maxDegree
}
