package list

import (
	"github.com/cwbudde/algo-ds/ds/core"
)

// Node is an element of a Doubly list.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
	// list is the owning list, nil once the node has been removed.
	list       *Doubly[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Doubly is a doubly linked list. head and tail are both nil or both set.
//
// The zero value is an empty strict list.
type Doubly[T any] struct {
	head, tail *Node[T]
	size       int
	cfg        core.Config
}

// NewDoubly returns an empty list.
func NewDoubly[T any](opts ...core.Option) *Doubly[T] {
	return &Doubly[T]{cfg: core.ApplyOptions(opts...)}
}

// DoublyOf returns a list holding values in order.
func DoublyOf[T any](values ...T) *Doubly[T] {
	l := NewDoubly[T]()
	for _, v := range values {
		l.PushTail(v)
	}
	return l
}

// Len returns the number of nodes.
func (l *Doubly[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no nodes.
func (l *Doubly[T]) Empty() bool {
	return l.head == nil
}

// Front returns the head node, or nil for an empty list.
func (l *Doubly[T]) Front() *Node[T] {
	return l.head
}

// Back returns the tail node, or nil for an empty list.
func (l *Doubly[T]) Back() *Node[T] {
	return l.tail
}

// Head returns the first value.
func (l *Doubly[T]) Head() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.cfg.Check("list.Head", core.EmptyError("list.Head"))
	}
	return l.head.Value, nil
}

// Tail returns the last value.
func (l *Doubly[T]) Tail() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, l.cfg.Check("list.Tail", core.EmptyError("list.Tail"))
	}
	return l.tail.Value, nil
}

// PushTail appends value and returns its node.
func (l *Doubly[T]) PushTail(value T) *Node[T] {
	n := &Node[T]{Value: value, prev: l.tail, list: l}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return n
}

// PushHead prepends value and returns its node.
func (l *Doubly[T]) PushHead(value T) *Node[T] {
	n := &Node[T]{Value: value, next: l.head, list: l}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
	return n
}

// InsertBefore links value in front of anchor and returns the new node.
func (l *Doubly[T]) InsertBefore(anchor *Node[T], value T) (*Node[T], error) {
	if err := l.checkAnchor("list.InsertBefore", anchor); err != nil {
		return nil, l.cfg.Check("list.InsertBefore", err)
	}
	if anchor == l.head {
		return l.PushHead(value), nil
	}
	n := &Node[T]{Value: value, next: anchor, prev: anchor.prev, list: l}
	anchor.prev.next = n
	anchor.prev = n
	l.size++
	return n, nil
}

// InsertAfter links value behind anchor and returns the new node.
func (l *Doubly[T]) InsertAfter(anchor *Node[T], value T) (*Node[T], error) {
	if err := l.checkAnchor("list.InsertAfter", anchor); err != nil {
		return nil, l.cfg.Check("list.InsertAfter", err)
	}
	if anchor == l.tail {
		return l.PushTail(value), nil
	}
	n := &Node[T]{Value: value, next: anchor.next, prev: anchor, list: l}
	anchor.next.prev = n
	anchor.next = n
	l.size++
	return n, nil
}

// RemoveHead unlinks the first node and returns its value.
func (l *Doubly[T]) RemoveHead() (T, error) {
	n := l.head
	if n == nil {
		var zero T
		return zero, l.cfg.Check("list.RemoveHead", core.EmptyError("list.RemoveHead"))
	}
	if n == l.tail {
		l.head, l.tail = nil, nil
	} else {
		l.head = n.next
		l.head.prev = nil
	}
	return l.release(n), nil
}

// RemoveTail unlinks the last node and returns its value.
func (l *Doubly[T]) RemoveTail() (T, error) {
	n := l.tail
	if n == nil {
		var zero T
		return zero, l.cfg.Check("list.RemoveTail", core.EmptyError("list.RemoveTail"))
	}
	if n == l.head {
		l.head, l.tail = nil, nil
	} else {
		l.tail = n.prev
		l.tail.next = nil
	}
	return l.release(n), nil
}

// RemoveNode unlinks node in O(1) and returns its value.
func (l *Doubly[T]) RemoveNode(node *Node[T]) (T, error) {
	if err := l.checkAnchor("list.RemoveNode", node); err != nil {
		var zero T
		return zero, l.cfg.Check("list.RemoveNode", err)
	}
	switch node {
	case l.head:
		return l.RemoveHead()
	case l.tail:
		return l.RemoveTail()
	}
	node.prev.next = node.next
	node.next.prev = node.prev
	return l.release(node), nil
}

// RemoveFunc removes the first node whose value satisfies match and
// reports whether one was found.
func (l *Doubly[T]) RemoveFunc(match func(T) bool) bool {
	n := l.Find(match)
	if n == nil {
		return false
	}
	_, err := l.RemoveNode(n)
	return err == nil
}

// Find returns the first node whose value satisfies match, or nil.
func (l *Doubly[T]) Find(match func(T) bool) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if match(n.Value) {
			return n
		}
	}
	return nil
}

// Clear removes every node, head first.
func (l *Doubly[T]) Clear() {
	for l.head != nil {
		_, _ = l.RemoveHead()
	}
}

// Values returns the values from head to tail.
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

func (l *Doubly[T]) checkAnchor(op string, n *Node[T]) error {
	if n == nil {
		if l.head == nil {
			return core.ArgumentError(op, "nil anchor on empty list")
		}
		return core.ArgumentError(op, "nil anchor")
	}
	if n.list != l {
		return core.ArgumentError(op, "node does not belong to this list")
	}
	return nil
}

// release detaches n so it no longer references the chain or the list.
func (l *Doubly[T]) release(n *Node[T]) T {
	value := n.Value
	n.next, n.prev, n.list = nil, nil, nil
	l.size--
	return value
}

// Remove removes the first node equal to value and reports whether one was
// found.
func Remove[T comparable](l *Doubly[T], value T) bool {
	return l.RemoveFunc(func(v T) bool { return v == value })
}
