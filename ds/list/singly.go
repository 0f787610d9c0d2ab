package list

import (
	"github.com/cwbudde/algo-ds/ds/core"
)

type link[T any] struct {
	value T
	next  *link[T]
}

// Singly is a singly linked list with positional access. Pushing at either
// end is O(1); everything positional walks from the head.
type Singly[T any] struct {
	head, tail *link[T]
	size       int
	cfg        core.Config
}

// NewSingly returns an empty list.
func NewSingly[T any](opts ...core.Option) *Singly[T] {
	return &Singly[T]{cfg: core.ApplyOptions(opts...)}
}

// SinglyOf returns a list holding values in order.
func SinglyOf[T any](values ...T) *Singly[T] {
	l := NewSingly[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *Singly[T]) Len() int    { return l.size }
func (l *Singly[T]) Empty() bool { return l.head == nil }

// PushFront prepends value.
func (l *Singly[T]) PushFront(value T) {
	l.head = &link[T]{value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// PushBack appends value.
func (l *Singly[T]) PushBack(value T) {
	n := &link[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Insert places value at pos in [0, Len()].
func (l *Singly[T]) Insert(pos int, value T) error {
	if pos < 0 || pos > l.size {
		return l.cfg.Check("list.Insert", core.IndexError("list.Insert", pos, l.size+1))
	}
	switch pos {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		prev := l.walk(pos - 1)
		prev.next = &link[T]{value: value, next: prev.next}
		l.size++
	}
	return nil
}

// Front returns the first value.
func (l *Singly[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.cfg.Check("list.Front", core.EmptyError("list.Front"))
	}
	return l.head.value, nil
}

// RemoveFront unlinks the first node and returns its value.
func (l *Singly[T]) RemoveFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.cfg.Check("list.RemoveFront", core.EmptyError("list.RemoveFront"))
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// RemoveAt unlinks the node at pos and returns its value.
func (l *Singly[T]) RemoveAt(pos int) (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.cfg.Check("list.RemoveAt", core.EmptyError("list.RemoveAt"))
	}
	if pos < 0 || pos >= l.size {
		var zero T
		return zero, l.cfg.Check("list.RemoveAt", core.IndexError("list.RemoveAt", pos, l.size))
	}
	if pos == 0 {
		return l.RemoveFront()
	}
	return l.unlinkAfter(l.walk(pos - 1)), nil
}

// RemoveFunc removes the first value satisfying match and reports whether
// one was found.
func (l *Singly[T]) RemoveFunc(match func(T) bool) bool {
	if l.head == nil {
		return false
	}
	if match(l.head.value) {
		_, _ = l.RemoveFront()
		return true
	}
	for prev := l.head; prev.next != nil; prev = prev.next {
		if match(prev.next.value) {
			l.unlinkAfter(prev)
			return true
		}
	}
	return false
}

// At returns the value at pos.
func (l *Singly[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= l.size {
		var zero T
		return zero, l.cfg.Check("list.At", core.IndexError("list.At", pos, l.size))
	}
	return l.walk(pos).value, nil
}

// Set replaces the value at pos.
func (l *Singly[T]) Set(pos int, value T) error {
	if pos < 0 || pos >= l.size {
		return l.cfg.Check("list.Set", core.IndexError("list.Set", pos, l.size))
	}
	l.walk(pos).value = value
	return nil
}

// Clear removes every node, head first.
func (l *Singly[T]) Clear() {
	for l.head != nil {
		_, _ = l.RemoveFront()
	}
}

// Values returns the values from head to tail.
func (l *Singly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *Singly[T]) walk(pos int) *link[T] {
	n := l.head
	for i := 0; i < pos; i++ {
		n = n.next
	}
	return n
}

// unlinkAfter removes prev.next, which must exist, and returns its value.
func (l *Singly[T]) unlinkAfter(prev *link[T]) T {
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.size--
	return n.value
}
