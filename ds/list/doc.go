// Package list provides linked lists: Doubly, with O(1) insertion and
// removal at both ends and around any node it owns plus an ordered insert,
// and Singly, a lighter forward-only list with positional access.
//
// Nodes remember the list that owns them. Passing a node from another list,
// or one that has already been removed, fails with core.ErrInvalidArgument
// instead of corrupting either chain.
package list
