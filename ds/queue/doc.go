// Package queue provides a FIFO Queue, a double-ended Deque and an
// ordered Priority queue. Each one wraps a single list.Doubly and exposes
// only the operations at its ends.
//
// Priority pops the largest value first. Use PopMin for smallest-first
// order; both ends are O(1), only Push scans.
package queue
