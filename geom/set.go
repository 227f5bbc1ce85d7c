package geom

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

type Set[T comparable] struct {
	values map[T]struct{}
}

func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	if _, ok := s.values[value]; ok {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

func (s *Set[T]) Remove(value T) {
	delete(s.values, value)
}

func (s *Set[T]) Has(value T) bool {
	_, ok := s.values[value]
	return ok
}

func (s *Set[T]) Iter() iter.Seq[T] {
	return maps.Keys(s.values)
}

func (s *Set[T]) Clear() {
	clear(s.values)
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

// Sorted returns the values of the set in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	return slices.Sorted(s.Iter())
}
