package queue

import (
	"cmp"

	"github.com/cockroachdb/errors"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/list"
)

// Priority is a priority queue kept as an ascending list. Push is O(n);
// Pop takes the largest value from the tail and PopMin the smallest from
// the head, both in O(1). Among equal values Pop returns the most recently
// pushed one and PopMin the earliest.
type Priority[T any] struct {
	items *list.Doubly[T]
	less  func(a, b T) bool
}

// NewPriority returns an empty priority queue ordered by T's natural order.
func NewPriority[T cmp.Ordered](opts ...core.Option) *Priority[T] {
	return NewPriorityFunc(cmp.Less[T], opts...)
}

// NewPriorityFunc returns an empty priority queue ordered by less.
func NewPriorityFunc[T any](less func(a, b T) bool, opts ...core.Option) *Priority[T] {
	return &Priority[T]{items: list.NewDoubly[T](opts...), less: less}
}

// Push inserts value at its ordered position.
func (p *Priority[T]) Push(value T) {
	p.items.PriorityInsertFunc(value, p.less)
}

// Pop removes and returns the largest value.
func (p *Priority[T]) Pop() (T, error) {
	v, err := p.items.RemoveTail()
	return v, errors.Wrap(err, "priority.Pop")
}

// PopMin removes and returns the smallest value.
func (p *Priority[T]) PopMin() (T, error) {
	v, err := p.items.RemoveHead()
	return v, errors.Wrap(err, "priority.PopMin")
}

// Peek returns the largest value.
func (p *Priority[T]) Peek() (T, error) {
	v, err := p.items.Tail()
	return v, errors.Wrap(err, "priority.Peek")
}

// PeekMin returns the smallest value.
func (p *Priority[T]) PeekMin() (T, error) {
	v, err := p.items.Head()
	return v, errors.Wrap(err, "priority.PeekMin")
}

func (p *Priority[T]) Len() int    { return p.items.Len() }
func (p *Priority[T]) Empty() bool { return p.items.Empty() }
func (p *Priority[T]) Clear()      { p.items.Clear() }
