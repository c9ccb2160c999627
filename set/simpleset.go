package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// SimpleSet keeps distinct, non-nil items in insertion order.
// The zero value is an empty set. It is not safe for concurrent use.
//
// When T is an interface type, every item must hold a comparable dynamic
// value: inserting a slice, map or func wrapped in an interface panics,
// the same as using it as a map key.
type SimpleSet[T comparable] struct {
	items []T
	index map[T]nothing
}

var _ Set[int] = (*SimpleSet[int])(nil)

// New creates a set from items. Duplicates and nil values are dropped,
// the first occurrence of an item decides its position.
func New[T comparable](items ...T) *SimpleSet[T] {
	return FromSlice(items)
}

func FromSlice[T comparable](items []T) *SimpleSet[T] {
	s := &SimpleSet[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]nothing, len(items)),
	}

	for _, item := range items {
		s.Insert(item)
	}

	return s
}

func (s *SimpleSet[T]) Insert(item T) (modified bool) {
	if isAbsent(item) || s.Has(item) {
		return false
	}

	if s.index == nil {
		s.index = make(map[T]nothing)
	}

	s.items = append(s.items, item)
	s.index[item] = nothing{}
	return true
}

// InsertSlice grows the backing sequence once and appends every item
// that is neither nil nor already present.
func (s *SimpleSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	s.items = slices.Grow(s.items, len(sourceSlice))
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *SimpleSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	if isNilSet(sourceSet) {
		return false
	}

	return s.InsertSlice(sourceSet.Items())
}

func (s *SimpleSet[T]) Remove(item T) bool {
	if !s.Has(item) {
		return false
	}

	delete(s.index, item)
	i := slices.Index(s.items, item)
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *SimpleSet[T]) Clear() {
	s.items = nil
	s.index = make(map[T]nothing)
}

func (s *SimpleSet[T]) Has(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Contains is the same as Has.
func (s *SimpleSet[T]) Contains(item T) bool {
	return s.Has(item)
}

func (s *SimpleSet[T]) Len() int {
	return len(s.items)
}

func (s *SimpleSet[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the backing sequence in insertion order.
func (s *SimpleSet[T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *SimpleSet[T]) ForEach(f func(item T, order int)) {
	for i, item := range s.items {
		f(item, i)
	}
}

func (s *SimpleSet[T]) Clone() *SimpleSet[T] {
	return FromSlice(s.items)
}

func (s *SimpleSet[T]) Equals(other Set[T]) (bool, error) {
	return Equal[T](s, other)
}

func (s *SimpleSet[T]) IsSubset(other Set[T]) (bool, error) {
	return Subset[T](s, other)
}

// Union returns a new set with the receiver's items followed by
// the items of other that the receiver lacks.
func (s *SimpleSet[T]) Union(other Set[T]) (*SimpleSet[T], error) {
	if err := mustBeSet("union", other); err != nil {
		return nil, err
	}

	result := s.Clone()
	result.InsertSlice(other.Items())
	return result, nil
}

func (s *SimpleSet[T]) Intersection(other Set[T]) (*SimpleSet[T], error) {
	if err := mustBeSet("intersection", other); err != nil {
		return nil, err
	}

	return s.filter(other.Has), nil
}

func (s *SimpleSet[T]) Difference(other Set[T]) (*SimpleSet[T], error) {
	if err := mustBeSet("difference", other); err != nil {
		return nil, err
	}

	return s.filter(func(item T) bool {
		return !other.Has(item)
	}), nil
}

// SymmetricDifference returns the items found in exactly one of the two sets.
func (s *SimpleSet[T]) SymmetricDifference(other Set[T]) (*SimpleSet[T], error) {
	if err := mustBeSet("symmetric difference", other); err != nil {
		return nil, err
	}

	result := s.filter(func(item T) bool {
		return !other.Has(item)
	})

	for _, item := range other.Items() {
		if !s.Has(item) {
			result.Insert(item)
		}
	}

	return result, nil
}

func (s *SimpleSet[T]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, item := range s.items {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(item))
	}
	b.WriteString("}")
	return b.String()
}

func (s *SimpleSet[T]) filter(preserve func(item T) bool) *SimpleSet[T] {
	result := &SimpleSet[T]{
		items: make([]T, 0, len(s.items)),
		index: make(map[T]nothing, len(s.items)),
	}

	for _, item := range s.items {
		if preserve(item) {
			result.items = append(result.items, item)
			result.index[item] = nothing{}
		}
	}

	return result
}
