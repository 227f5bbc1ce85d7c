package metrics

import (
	goheap "container/heap"
	"slices"

	"github.com/oliverbestmann/thomson-sphere/sphere"
)

type Heap[T any] struct {
	heap heap[T]
}

func MakeHeap[T any](less func(T, T) bool) Heap[T] {
	return Heap[T]{
		heap: heap[T]{
			less: less,
		},
	}
}

func (h *Heap[T]) Len() int {
	return len(h.heap.values)
}

func (h *Heap[T]) Pop() T {
	return goheap.Pop(&h.heap).(T)
}

func (h *Heap[T]) Push(value T) {
	goheap.Push(&h.heap, value)
}

func (h *Heap[T]) IsEmpty() bool {
	return len(h.heap.values) == 0
}

type heap[T any] struct {
	values []T
	less   func(T, T) bool
}

func (h *heap[T]) Len() int {
	return len(h.values)
}

func (h *heap[T]) Less(i, j int) bool {
	return h.less(h.values[i], h.values[j])
}

func (h *heap[T]) Swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *heap[T]) Push(x any) {
	h.values = append(h.values, x.(T))
}

func (h *heap[T]) Pop() any {
	n := len(h.values)
	value := h.values[n-1]
	h.values = h.values[0 : n-1]
	return value
}

// Rated is a triangle together with its area quality.
type Rated struct {
	Index    int
	Triangle sphere.Triangle
	Quality  float64
}

// Worst returns the k triangles with the lowest area quality, worst first.
func Worst(mesh *sphere.Mesh, k int) []Rated {
	// keep the k worst triangles, the best of them on top
	h := MakeHeap(func(a, b Rated) bool {
		return a.Quality > b.Quality
	})

	for idx, quality := range TriangleQuality(mesh) {
		h.Push(Rated{Index: idx, Triangle: mesh.Triangles[idx], Quality: quality})

		if h.Len() > k {
			h.Pop()
		}
	}

	// the heap yields the best of the kept triangles first
	worst := make([]Rated, 0, h.Len())
	for !h.IsEmpty() {
		worst = append(worst, h.Pop())
	}

	slices.Reverse(worst)

	return worst
}
