package queue

import (
	"github.com/cockroachdb/errors"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/list"
)

// Queue is a FIFO queue: Push appends at the tail, Pop removes the head.
type Queue[T any] struct {
	items *list.Doubly[T]
}

// New returns an empty queue.
func New[T any](opts ...core.Option) *Queue[T] {
	return &Queue[T]{items: list.NewDoubly[T](opts...)}
}

// Push appends value.
func (q *Queue[T]) Push(value T) {
	q.items.PushTail(value)
}

// Pop removes and returns the oldest value.
func (q *Queue[T]) Pop() (T, error) {
	v, err := q.items.RemoveHead()
	return v, errors.Wrap(err, "queue.Pop")
}

// Front returns the oldest value.
func (q *Queue[T]) Front() (T, error) {
	v, err := q.items.Head()
	return v, errors.Wrap(err, "queue.Front")
}

// Back returns the newest value.
func (q *Queue[T]) Back() (T, error) {
	v, err := q.items.Tail()
	return v, errors.Wrap(err, "queue.Back")
}

func (q *Queue[T]) Len() int    { return q.items.Len() }
func (q *Queue[T]) Empty() bool { return q.items.Empty() }
func (q *Queue[T]) Clear()      { q.items.Clear() }
