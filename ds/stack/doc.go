// Package stack provides LIFO stacks. Stack keeps its values in a
// vector.Vector and can be bounded to a fixed capacity; Linked keeps them
// in a list.Singly.
package stack
