package vector

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-ds/ds/core"
)

// Reserve ensures the capacity is at least n, preserving existing data.
// It never shrinks the storage.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return v.cfg.Check("vector.Reserve", core.ArgumentError("vector.Reserve", "capacity must be >= 0: %d", n))
	}
	if n <= len(v.slots) {
		return nil
	}
	if v.cfg.Growth == core.GrowFixed {
		return v.cfg.Check("vector.Reserve", core.CapacityError("vector.Reserve", len(v.slots)))
	}
	v.realloc(n)
	return nil
}

// ShrinkToFit reallocates the storage to exactly Len() slots.
func (v *Vector[T]) ShrinkToFit() {
	if v.size == len(v.slots) {
		return
	}
	v.realloc(v.size)
}

// Resize sets the length to n. Shrinking drops the trailing elements and
// then shrinks the storage to fit; growing appends zero values.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return v.cfg.Check("vector.Resize", core.ArgumentError("vector.Resize", "size must be >= 0: %d", n))
	case n == 0:
		v.Clear()
		return nil
	case n < v.size:
		clear(v.slots[n:v.size])
		v.size = n
		if v.cfg.Growth != core.GrowFixed {
			v.ShrinkToFit()
		}
		return nil
	}
	return v.extend("vector.Resize", n, *new(T))
}

// ResizeFill grows the vector to n elements, filling new slots with value.
// It cannot shrink: n below Len() fails with ErrInvalidArgument.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	if n < v.size {
		return v.cfg.Check("vector.ResizeFill",
			core.ArgumentError("vector.ResizeFill", "cannot shrink from %d to %d, use Resize", v.size, n))
	}
	return v.extend("vector.ResizeFill", n, value)
}

func (v *Vector[T]) extend(op string, n int, value T) error {
	if n > len(v.slots) {
		if v.cfg.Growth == core.GrowFixed {
			return v.cfg.Check(op, core.CapacityError(op, len(v.slots)))
		}
		v.realloc(n)
	}
	for i := v.size; i < n; i++ {
		v.slots[i] = value
	}
	v.size = n
	return nil
}

// ensure makes room for need elements according to the growth policy.
func (v *Vector[T]) ensure(op string, need int) error {
	next, ok := v.cfg.Growth.Next(len(v.slots), need)
	if !ok {
		return core.CapacityError(op, len(v.slots))
	}
	if next != len(v.slots) {
		v.realloc(next)
	}
	return nil
}

func (v *Vector[T]) realloc(n int) {
	v.logRealloc(len(v.slots), n)
	if n == 0 {
		v.slots = nil
		return
	}
	slots := make([]T, n)
	copy(slots, v.slots[:v.size])
	v.slots = slots
}

func (v *Vector[T]) logRealloc(from, to int) {
	if ce := v.cfg.Log().Check(zap.DebugLevel, "vector realloc"); ce != nil {
		ce.Write(zap.Int("from", from), zap.Int("to", to))
	}
}
