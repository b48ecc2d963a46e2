// Package interval represents and manipulates arbitrary unions of
// one-dimensional intervals over any totally ordered domain: integers,
// floats, dates, strings, or any user type that admits a strict order.
//
// The single exported abstraction is [Interval]: a canonicalized union of
// zero or more disjoint, non-adjacent atomic intervals. Every combining
// operation (union, intersection, complement, difference) takes one or two
// intervals and returns a fresh interval in canonical form; nothing is ever
// mutated in place.
//
// # Canonical form
//
// An Interval's atomics are always kept sorted by lower bound, free of
// empties, and free of any pair that could be merged into one atomic. This
// is the single source of truth that every operation funnels through, so
// structural equality of two Intervals is exactly semantic equality of the
// point sets they denote.
//
// # Infinities
//
// Bound is a tagged union of -∞, a finite value of T, and +∞. A bound equal
// to -∞ is always reported as open on the left, and a bound equal to +∞ is
// always reported as open on the right; constructing them as closed is
// silently coerced, so closed(-∞, x) and openclosed(-∞, x) denote the same
// atomic. Neither sentinel is ever a member of any interval.
//
// # Building blocks
//
//	Closed(a, b)     // [a, b]
//	Open(a, b)       // (a, b)
//	OpenClosed(a, b) // (a, b]
//	ClosedOpen(a, b) // [a, b)
//	Singleton(x)     // [x, x]
//	Empty[T]()       // the empty interval
//
// A generic bound type that implements [Ordered] can be used directly.
// [Orderable] adapts any built-in ordered type (ints, floats, strings) to
// satisfy Ordered without writing a Compare method.
package interval
