package core

import "github.com/cockroachdb/errors"

// Error kinds shared by every container. Test for them with errors.Is.
var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrEmptyContainer   = errors.New("container is empty")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// IndexError reports that pos falls outside [0, n).
func IndexError(op string, pos, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s: position %d outside [0, %d)", op, pos, n)
}

// EmptyError reports an access on a container holding no elements.
func EmptyError(op string) error {
	return errors.Wrapf(ErrEmptyContainer, "%s", op)
}

// ArgumentError reports a structurally invalid request.
func ArgumentError(op, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: "+format, append([]interface{}{op}, args...)...)
}

// CapacityError reports a write that would need more than capacity slots
// from a buffer that may not grow.
func CapacityError(op string, capacity int) error {
	return errors.Wrapf(ErrCapacityExceeded, "%s: fixed capacity %d", op, capacity)
}

// RangeError reports an inclusive range [from, to] that is reversed or does
// not lie within [0, n).
func RangeError(op string, from, to, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s: range [%d, %d] invalid for length %d", op, from, to, n)
}
