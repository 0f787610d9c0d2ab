package stack

import (
	"github.com/cockroachdb/errors"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/list"
)

// Linked is a LIFO stack on a singly linked list. Every push allocates one
// node and no push ever copies existing values.
type Linked[T any] struct {
	items *list.Singly[T]
}

// NewLinked returns an empty linked stack.
func NewLinked[T any](opts ...core.Option) *Linked[T] {
	return &Linked[T]{items: list.NewSingly[T](opts...)}
}

// Push places value on top.
func (s *Linked[T]) Push(value T) {
	s.items.PushFront(value)
}

// Pop removes and returns the top value.
func (s *Linked[T]) Pop() (T, error) {
	v, err := s.items.RemoveFront()
	return v, errors.Wrap(err, "stack.Pop")
}

// Peek returns the top value without removing it.
func (s *Linked[T]) Peek() (T, error) {
	v, err := s.items.Front()
	return v, errors.Wrap(err, "stack.Peek")
}

func (s *Linked[T]) Len() int    { return s.items.Len() }
func (s *Linked[T]) Empty() bool { return s.items.Empty() }
func (s *Linked[T]) Clear()      { s.items.Clear() }
