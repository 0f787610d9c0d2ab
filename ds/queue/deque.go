package queue

import (
	"github.com/cockroachdb/errors"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/list"
)

// Deque is a double-ended queue with O(1) push and pop at both ends.
type Deque[T any] struct {
	items *list.Doubly[T]
}

// NewDeque returns an empty deque.
func NewDeque[T any](opts ...core.Option) *Deque[T] {
	return &Deque[T]{items: list.NewDoubly[T](opts...)}
}

// DequeOf returns a deque holding values, front to back.
func DequeOf[T any](values ...T) *Deque[T] {
	d := NewDeque[T]()
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

func (d *Deque[T]) PushBack(value T)  { d.items.PushTail(value) }
func (d *Deque[T]) PushFront(value T) { d.items.PushHead(value) }

// PopBack removes and returns the back value.
func (d *Deque[T]) PopBack() (T, error) {
	v, err := d.items.RemoveTail()
	return v, errors.Wrap(err, "deque.PopBack")
}

// PopFront removes and returns the front value.
func (d *Deque[T]) PopFront() (T, error) {
	v, err := d.items.RemoveHead()
	return v, errors.Wrap(err, "deque.PopFront")
}

// Front returns the front value.
func (d *Deque[T]) Front() (T, error) {
	v, err := d.items.Head()
	return v, errors.Wrap(err, "deque.Front")
}

// Back returns the back value.
func (d *Deque[T]) Back() (T, error) {
	v, err := d.items.Tail()
	return v, errors.Wrap(err, "deque.Back")
}

func (d *Deque[T]) Len() int    { return d.items.Len() }
func (d *Deque[T]) Empty() bool { return d.items.Empty() }
func (d *Deque[T]) Clear()      { d.items.Clear() }
