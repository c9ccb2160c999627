package set

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

type nothing struct{}

// Set is implemented by every set in this package. Binary operations accept
// any Set of the same element type, so implementations can be mixed freely.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertSlice(items []T) (modified bool)
	InsertSet(sourceSet Set[T]) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	IsEmpty() bool
	Items() []T
}

// isAbsent reports whether item is a nil pointer, channel or interface,
// or a value that is not equal to itself (NaN) and so could never be found again.
func isAbsent[T comparable](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return item != item
	}
}

func isNilSet[T comparable](s Set[T]) bool {
	if s == nil {
		return true
	}

	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func mustBeSet[T comparable](op string, other Set[T]) error {
	if isNilSet(other) {
		return errors.Wrapf(ErrInvalidArgument, "%s: set is nil", op)
	}
	return nil
}

// As converts v into a Set[T], failing with ErrInvalidArgument when v is not
// a non-nil set of T.
func As[T comparable](v any) (Set[T], error) {
	s, ok := v.(Set[T])
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "%T is not a set of %s", v, typeName[T]())
	}

	if isNilSet(s) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%T is a nil set", v)
	}

	return s, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
