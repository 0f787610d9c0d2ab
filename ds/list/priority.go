package list

import "cmp"

// PriorityInsertFunc inserts value so the list stays in ascending order
// under less, and returns the new node. The scan starts at the head and
// skips every value not greater than value, so a new value lands after
// existing equal values and ties keep their insertion order. Cost is O(n).
func (l *Doubly[T]) PriorityInsertFunc(value T, less func(a, b T) bool) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if less(value, n.Value) {
			m, _ := l.InsertBefore(n, value)
			return m
		}
	}
	return l.PushTail(value)
}

// PriorityInsert inserts value in ascending order of T.
func PriorityInsert[T cmp.Ordered](l *Doubly[T], value T) *Node[T] {
	return l.PriorityInsertFunc(value, cmp.Less[T])
}
