package vector

import (
	"github.com/cwbudde/algo-ds/ds/core"
)

// Vector is a contiguous, growable sequence of T.
//
// The zero value is an empty strict vector with doubling growth.
type Vector[T any] struct {
	// slots is the backing storage; len(slots) is the capacity.
	// Slots in [size, len(slots)) always hold the zero value.
	slots []T
	size  int
	cfg   core.Config
}

// New returns an empty vector with capacity 0.
func New[T any](opts ...core.Option) *Vector[T] {
	return &Vector[T]{cfg: core.ApplyOptions(opts...)}
}

// WithCapacity returns an empty vector with n preallocated slots.
func WithCapacity[T any](n int, opts ...core.Option) (*Vector[T], error) {
	if n < 0 {
		return nil, core.ArgumentError("vector.WithCapacity", "capacity must be >= 0: %d", n)
	}
	v := New[T](opts...)
	if n > 0 {
		v.slots = make([]T, n)
	}
	return v, nil
}

// FromSlice returns a vector holding a copy of values. The capacity equals
// len(values).
func FromSlice[T any](values []T, opts ...core.Option) *Vector[T] {
	v := New[T](opts...)
	if len(values) > 0 {
		v.slots = make([]T, len(values))
		copy(v.slots, values)
		v.size = len(values)
	}
	return v
}

// Of returns a vector holding the given values.
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// Clone returns a deep copy sharing no storage with v. The clone keeps v's
// capacity and configuration.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size, cfg: v.cfg}
	if len(v.slots) > 0 {
		c.slots = make([]T, len(v.slots))
		copy(c.slots, v.slots[:v.size])
	}
	return c
}

// Len returns the number of occupied slots.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.slots)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at pos.
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T
		return zero, v.cfg.Check("vector.At", core.IndexError("vector.At", pos, v.size))
	}
	return v.slots[pos], nil
}

// Set replaces the element at pos.
func (v *Vector[T]) Set(pos int, value T) error {
	if pos < 0 || pos >= v.size {
		return v.cfg.Check("vector.Set", core.IndexError("vector.Set", pos, v.size))
	}
	v.slots[pos] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, v.cfg.Check("vector.Front", core.EmptyError("vector.Front"))
	}
	return v.slots[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, v.cfg.Check("vector.Back", core.EmptyError("vector.Back"))
	}
	return v.slots[v.size-1], nil
}

// Values returns a copy of the occupied elements in order.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.size)
	copy(out, v.slots[:v.size])
	return out
}

// Swap exchanges the elements at i and j.
func (v *Vector[T]) Swap(i, j int) error {
	if i < 0 || i >= v.size {
		return v.cfg.Check("vector.Swap", core.IndexError("vector.Swap", i, v.size))
	}
	if j < 0 || j >= v.size {
		return v.cfg.Check("vector.Swap", core.IndexError("vector.Swap", j, v.size))
	}
	v.slots[i], v.slots[j] = v.slots[j], v.slots[i]
	return nil
}

// SwapWith exchanges storage and length with other in O(1). Each vector
// keeps its own configuration.
func (v *Vector[T]) SwapWith(other *Vector[T]) {
	if other == nil || other == v {
		return
	}
	v.slots, other.slots = other.slots, v.slots
	v.size, other.size = other.size, v.size
}
