package interval

import "fmt"

// IndexError is returned by [Interval.At] when the requested position is
// out of range for the interval's atomic count.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("interval: index %d out of range for %d atomic(s)", e.Index, e.Len)
}

// HashError is returned by [Hash] when every atomic of the interval holds
// a bound value that cannot be hashed. Grounded on spec.md §4.7/§7's
// leniency rule: a multi-atomic interval with at least one hashable
// constituent still produces a usable hash.
type HashError struct {
	// Atomics is the number of atomics that failed to hash.
	Atomics int
}

// Error implements the error interface.
func (e *HashError) Error() string {
	return fmt.Sprintf("interval: no hashable bound found across %d atomic(s)", e.Atomics)
}

var (
	_ error = (*IndexError)(nil)
	_ error = (*HashError)(nil)
)
