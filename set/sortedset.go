package set

import (
	"cmp"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/simpleset/utils"
)

const DefaultDegree = 32

type (
	sortedConfig struct {
		degree int
	}

	SortedOption func(sc *sortedConfig)
)

// WithDegree sets the degree of the underlying b-tree.
// Values below 2 fall back to DefaultDegree.
func WithDegree(n int) SortedOption {
	return func(sc *sortedConfig) {
		if n >= 2 {
			sc.degree = n
		}
	}
}

// SortedSet keeps its items in ascending order. NaN is never stored.
// The zero value is an empty set with DefaultDegree.
type SortedSet[T constraints.Ordered] struct {
	tree *btree.BTreeG[T]
}

var _ Set[int] = (*SortedSet[int])(nil)

func NewSortedSet[T constraints.Ordered](options ...SortedOption) *SortedSet[T] {
	sc := sortedConfig{
		degree: DefaultDegree,
	}

	for _, o := range options {
		o(&sc)
	}

	return &SortedSet[T]{
		tree: btree.NewG[T](sc.degree, cmp.Less[T]),
	}
}

func (s *SortedSet[T]) ensureTree() *btree.BTreeG[T] {
	if s.tree == nil {
		s.tree = btree.NewG[T](DefaultDegree, cmp.Less[T])
	}
	return s.tree
}

func (s *SortedSet[T]) Insert(item T) (modified bool) {
	if isAbsent(item) {
		return false
	}

	_, replaced := s.ensureTree().ReplaceOrInsert(item)
	return !replaced
}

func (s *SortedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *SortedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	if isNilSet(sourceSet) {
		return false
	}

	return s.InsertSlice(sourceSet.Items())
}

func (s *SortedSet[T]) Remove(item T) bool {
	_, found := s.ensureTree().Delete(item)
	return found
}

func (s *SortedSet[T]) Clear() {
	s.ensureTree().Clear(false)
}

func (s *SortedSet[T]) Has(item T) bool {
	return s.ensureTree().Has(item)
}

func (s *SortedSet[T]) Len() int {
	return s.ensureTree().Len()
}

func (s *SortedSet[T]) IsEmpty() bool {
	return s.ensureTree().Len() == 0
}

// Items returns the items in ascending order.
func (s *SortedSet[T]) Items() []T {
	return s.collect(utils.AscOrder)
}

func (s *SortedSet[T]) Descending() []T {
	return s.collect(utils.DescOrder)
}

func (s *SortedSet[T]) Min() (T, bool) {
	return s.ensureTree().Min()
}

func (s *SortedSet[T]) Max() (T, bool) {
	return s.ensureTree().Max()
}

func (s *SortedSet[T]) collect(order utils.Order) []T {
	tree := s.ensureTree()
	items := make([]T, 0, tree.Len())
	iter := func(item T) bool {
		items = append(items, item)
		return true
	}

	if order == utils.DescOrder {
		tree.Descend(iter)
	} else {
		tree.Ascend(iter)
	}

	return items
}
