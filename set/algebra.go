package set

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/denismitr/simpleset/utils"
)

// Equal reports whether a and b hold the same elements, regardless of order.
func Equal[T comparable](a, b Set[T]) (bool, error) {
	if err := mustBeSet("equal", a); err != nil {
		return false, err
	}
	if err := mustBeSet("equal", b); err != nil {
		return false, err
	}

	if a.Len() != b.Len() {
		return false, nil
	}

	for _, item := range a.Items() {
		if !b.Has(item) {
			return false, nil
		}
	}

	return true, nil
}

// EqualSorted compares a and b by sorting both element lists and checking
// them pairwise.
func EqualSorted[T constraints.Ordered](a, b Set[T]) (bool, error) {
	if err := mustBeSet("equal sorted", a); err != nil {
		return false, err
	}
	if err := mustBeSet("equal sorted", b); err != nil {
		return false, err
	}

	if a.Len() != b.Len() {
		return false, nil
	}

	return slices.Equal(Sorted(a, utils.AscOrder), Sorted(b, utils.AscOrder)), nil
}

// Subset reports whether every element of a is in b.
func Subset[T comparable](a, b Set[T]) (bool, error) {
	if err := mustBeSet("subset", a); err != nil {
		return false, err
	}
	if err := mustBeSet("subset", b); err != nil {
		return false, err
	}

	if a.Len() > b.Len() {
		return false, nil
	}

	for _, item := range a.Items() {
		if !b.Has(item) {
			return false, nil
		}
	}

	return true, nil
}

// Sorted returns a sorted snapshot of s. A nil set yields nil.
func Sorted[T constraints.Ordered](s Set[T], order utils.Order) []T {
	if isNilSet(s) {
		return nil
	}

	items := s.Items()
	slices.Sort(items)
	if order == utils.DescOrder {
		slices.Reverse(items)
	}

	return items
}
