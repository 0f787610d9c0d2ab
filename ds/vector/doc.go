// Package vector provides Vector, a contiguous sequence with random access,
// amortized appends and linear-cost insertion and removal at any position.
//
// Capacity and length are tracked separately: Len counts the occupied
// slots, Cap the allocated ones. Growth always happens before a write, so
// Cap never falls below Len. How capacity grows is chosen per vector with
// core.WithGrowth; the default doubles, core.GrowExact allocates only what
// the pending write needs, and core.GrowFixed turns overflow into
// core.ErrCapacityExceeded.
package vector
