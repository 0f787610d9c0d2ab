// Package core holds what every container in algo-ds shares: the error
// kinds, the strict/lenient reporting mode, the capacity growth policy and
// the functional options that carry them into constructors.
//
// Containers never recover from an invalid operation on their own. In
// Strict mode (the default) the error reaches the caller; in Lenient mode
// it is logged through the configured zap logger and the operation returns
// the zero value instead.
package core
