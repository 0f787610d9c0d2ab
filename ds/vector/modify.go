package vector

import (
	"github.com/cwbudde/algo-ds/ds/core"
)

// PushBack appends value, growing the storage first when it is full.
func (v *Vector[T]) PushBack(value T) error {
	if err := v.ensure("vector.PushBack", v.size+1); err != nil {
		return v.cfg.Check("vector.PushBack", err)
	}
	v.slots[v.size] = value
	v.size++
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, v.cfg.Check("vector.PopBack", core.EmptyError("vector.PopBack"))
	}
	v.size--
	value := v.slots[v.size]
	v.slots[v.size] = zero
	return value, nil
}

// Insert places value at pos, shifting [pos, Len()) one slot to the right.
// pos may equal Len(), which appends.
func (v *Vector[T]) Insert(pos int, value T) error {
	if pos < 0 || pos > v.size {
		return v.cfg.Check("vector.Insert", core.IndexError("vector.Insert", pos, v.size+1))
	}
	if v.size == len(v.slots) {
		next, ok := v.cfg.Growth.Next(len(v.slots), v.size+1)
		if !ok {
			return v.cfg.Check("vector.Insert", core.CapacityError("vector.Insert", len(v.slots)))
		}
		// Reallocate and merge prefix, value and suffix in a single pass.
		slots := make([]T, next)
		copy(slots, v.slots[:pos])
		slots[pos] = value
		copy(slots[pos+1:], v.slots[pos:v.size])
		v.logRealloc(len(v.slots), next)
		v.slots = slots
		v.size++
		return nil
	}
	// copy is overlap-safe, so the suffix moves as if walked from the end.
	copy(v.slots[pos+1:v.size+1], v.slots[pos:v.size])
	v.slots[pos] = value
	v.size++
	return nil
}

// InsertSlice places values at pos, keeping their order, and shifts the
// existing suffix right by len(values).
func (v *Vector[T]) InsertSlice(pos int, values ...T) error {
	if pos < 0 || pos > v.size {
		return v.cfg.Check("vector.InsertSlice", core.IndexError("vector.InsertSlice", pos, v.size+1))
	}
	n := len(values)
	if n == 0 {
		return nil
	}
	need := v.size + n
	if need > len(v.slots) {
		next, ok := v.cfg.Growth.Next(len(v.slots), need)
		if !ok {
			return v.cfg.Check("vector.InsertSlice", core.CapacityError("vector.InsertSlice", len(v.slots)))
		}
		slots := make([]T, next)
		copy(slots, v.slots[:pos])
		copy(slots[pos:], values)
		copy(slots[pos+n:], v.slots[pos:v.size])
		v.logRealloc(len(v.slots), next)
		v.slots = slots
		v.size = need
		return nil
	}
	copy(v.slots[pos+n:need], v.slots[pos:v.size])
	copy(v.slots[pos:pos+n], values)
	v.size = need
	return nil
}

// InsertVector inserts the elements of other at pos. other may be v itself.
func (v *Vector[T]) InsertVector(pos int, other *Vector[T]) error {
	if other == nil {
		return v.cfg.Check("vector.InsertVector", core.ArgumentError("vector.InsertVector", "nil source vector"))
	}
	return v.InsertSlice(pos, other.Values()...)
}

// Erase removes the element at pos, shifting the suffix left.
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= v.size {
		return v.cfg.Check("vector.Erase", core.IndexError("vector.Erase", pos, v.size))
	}
	copy(v.slots[pos:], v.slots[pos+1:v.size])
	v.size--
	var zero T
	v.slots[v.size] = zero
	return nil
}

// EraseRange removes the elements in the inclusive range [from, to].
func (v *Vector[T]) EraseRange(from, to int) error {
	if from < 0 || to < 0 || from > to || from >= v.size || to >= v.size {
		return v.cfg.Check("vector.EraseRange", core.RangeError("vector.EraseRange", from, to, v.size))
	}
	n := to - from + 1
	copy(v.slots[from:], v.slots[to+1:v.size])
	clear(v.slots[v.size-n : v.size])
	v.size -= n
	return nil
}

// Assign replaces the contents with count copies of value. The capacity
// becomes exactly count, except under GrowFixed where the storage is kept
// and count may not exceed it.
func (v *Vector[T]) Assign(count int, value T) error {
	if count < 0 {
		return v.cfg.Check("vector.Assign", core.ArgumentError("vector.Assign", "count must be >= 0: %d", count))
	}
	if err := v.replaceStorage("vector.Assign", count); err != nil {
		return v.cfg.Check("vector.Assign", err)
	}
	for i := 0; i < count; i++ {
		v.slots[i] = value
	}
	v.size = count
	return nil
}

// AssignSlice replaces the contents with a copy of values, with the same
// capacity rules as Assign.
func (v *Vector[T]) AssignSlice(values []T) error {
	if err := v.replaceStorage("vector.AssignSlice", len(values)); err != nil {
		return v.cfg.Check("vector.AssignSlice", err)
	}
	copy(v.slots, values)
	v.size = len(values)
	return nil
}

// Clear removes every element and releases the storage. A GrowFixed
// vector keeps its slots so it can be refilled.
func (v *Vector[T]) Clear() {
	if v.cfg.Growth == core.GrowFixed {
		clear(v.slots[:v.size])
		v.size = 0
		return
	}
	v.slots = nil
	v.size = 0
}

func (v *Vector[T]) replaceStorage(op string, n int) error {
	if v.cfg.Growth == core.GrowFixed {
		if n > len(v.slots) {
			return core.CapacityError(op, len(v.slots))
		}
		clear(v.slots)
		return nil
	}
	if n == 0 {
		v.slots = nil
		return nil
	}
	v.slots = make([]T, n)
	return nil
}
