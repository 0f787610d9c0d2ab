package array

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/vector"
)

// Array is a fixed-capacity sequence. It is a vector whose growth policy is
// pinned to core.GrowFixed: the capacity chosen at construction never
// changes and writes past it fail with core.ErrCapacityExceeded.
type Array[T any] struct {
	items *vector.Vector[T]
}

// New returns an empty array with room for n values.
func New[T any](n int, opts ...core.Option) (*Array[T], error) {
	if n <= 0 {
		return nil, core.ArgumentError("array.New", "capacity must be > 0: %d", n)
	}
	opts = append(opts[:len(opts):len(opts)], core.WithGrowth(core.GrowFixed))
	items, err := vector.WithCapacity[T](n, opts...)
	if err != nil {
		return nil, err
	}
	return &Array[T]{items: items}, nil
}

// FromSlice returns an array with room for n values holding the first
// min(n, len(values)) of values.
func FromSlice[T any](n int, values []T, opts ...core.Option) (*Array[T], error) {
	a, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) > n {
		values = values[:n]
	}
	if err := a.items.InsertSlice(0, values...); err != nil {
		return nil, err
	}
	return a, nil
}

// At returns the value at pos.
func (a *Array[T]) At(pos int) (T, error) {
	v, err := a.items.At(pos)
	return v, errors.Wrap(err, "array.At")
}

// Set replaces the value at pos.
func (a *Array[T]) Set(pos int, value T) error {
	return errors.Wrap(a.items.Set(pos, value), "array.Set")
}

// Front returns the first value.
func (a *Array[T]) Front() (T, error) {
	v, err := a.items.Front()
	return v, errors.Wrap(err, "array.Front")
}

// Back returns the last value.
func (a *Array[T]) Back() (T, error) {
	v, err := a.items.Back()
	return v, errors.Wrap(err, "array.Back")
}

// Push appends value while capacity remains.
func (a *Array[T]) Push(value T) error {
	return errors.Wrap(a.items.PushBack(value), "array.Push")
}

// Fill sets every slot, up to the capacity, to value.
func (a *Array[T]) Fill(value T) {
	_ = a.items.Assign(a.items.Cap(), value)
}

// Swap exchanges the values at i and j.
func (a *Array[T]) Swap(i, j int) error {
	return errors.Wrap(a.items.Swap(i, j), "array.Swap")
}

// Values returns a copy of the stored values.
func (a *Array[T]) Values() []T {
	return a.items.Values()
}

func (a *Array[T]) Len() int    { return a.items.Len() }
func (a *Array[T]) Cap() int    { return a.items.Cap() }
func (a *Array[T]) Empty() bool { return a.items.Empty() }

// Equal reports whether a and b hold the same values in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Values(), b.Values())
}

// Compare orders a and b lexicographically and returns -1, 0 or +1. When
// one array is a prefix of the other, the shorter one sorts first.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Values(), b.Values())
}
