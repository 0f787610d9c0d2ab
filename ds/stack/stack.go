package stack

import (
	"github.com/cockroachdb/errors"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/vector"
)

// Stack is a LIFO stack on a vector. The top is the vector's back.
type Stack[T any] struct {
	items *vector.Vector[T]
}

// New returns an empty growable stack.
func New[T any](opts ...core.Option) *Stack[T] {
	return &Stack[T]{items: vector.New[T](opts...)}
}

// NewBounded returns a stack that holds at most limit values. Push on a
// full stack fails with core.ErrCapacityExceeded.
func NewBounded[T any](limit int, opts ...core.Option) (*Stack[T], error) {
	if limit <= 0 {
		return nil, core.ArgumentError("stack.NewBounded", "limit must be > 0: %d", limit)
	}
	opts = append(opts[:len(opts):len(opts)], core.WithGrowth(core.GrowFixed))
	items, err := vector.WithCapacity[T](limit, opts...)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{items: items}, nil
}

// Push places value on top.
func (s *Stack[T]) Push(value T) error {
	return errors.Wrap(s.items.PushBack(value), "stack.Push")
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.items.PopBack()
	return v, errors.Wrap(err, "stack.Pop")
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	v, err := s.items.Back()
	return v, errors.Wrap(err, "stack.Peek")
}

func (s *Stack[T]) Len() int    { return s.items.Len() }
func (s *Stack[T]) Cap() int    { return s.items.Cap() }
func (s *Stack[T]) Empty() bool { return s.items.Empty() }
func (s *Stack[T]) Clear()      { s.items.Clear() }
