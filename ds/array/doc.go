// Package array provides Array, a bounds-checked sequence whose capacity is
// fixed when it is created.
package array
