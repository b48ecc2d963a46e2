package interval

// Equal reports whether iv and other denote the same point set. Because
// both are already in canonical form, this is exact structural equality of
// their atomic sequences.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	if len(iv.atomics) != len(other.atomics) {
		return false
	}
	for i := range iv.atomics {
		if !iv.atomics[i].equal(other.atomics[i]) {
			return false
		}
	}
	return true
}

// Less reports whether every atomic of iv lies strictly before every
// atomic of other. Empty intervals are incomparable: Less returns false
// whenever either operand is empty, including iv == other == Empty.
// Grounded on spec.md §4.7's four-way ordering.
func (iv Interval[T]) Less(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	return before(iv.atomics[len(iv.atomics)-1], other.atomics[0])
}

// LessOrEqual reports whether iv is [Less] than other, or iv's upper bound
// is not above other's (compared with the same open/closed tie-breaking
// as every other boundary comparison in this package). Empty intervals
// are incomparable, as with Less.
func (iv Interval[T]) LessOrEqual(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	if iv.Less(other) {
		return true
	}
	return compareUpper(iv.Upper(), iv.Right(), other.Upper(), other.Right()) <= 0
}

// Greater reports whether every atomic of iv lies strictly after every
// atomic of other.
func (iv Interval[T]) Greater(other Interval[T]) bool {
	return other.Less(iv)
}

// GreaterOrEqual reports whether iv is [Greater] than other, or iv's lower
// bound is not below other's. This is not simply other.LessOrEqual(iv):
// LessOrEqual ties on the UPPER bound because "<=" asks whether iv ends no
// later than other; ">=" asks whether iv starts no earlier than other, so
// the tie-break here compares LOWER bounds instead. Empty intervals are
// incomparable, as with Less.
func (iv Interval[T]) GreaterOrEqual(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	if iv.Greater(other) {
		return true
	}
	return compareLower(iv.Lower(), iv.Left(), other.Lower(), other.Left()) >= 0
}

// LessThanValue reports whether iv is [Less] than the singleton interval
// at x, treating x as a one-point interval.
//
// Deprecated: compare against [Singleton] explicitly with Less, or use
// Contains for membership tests. Retained for compatibility with code that
// compares an interval directly to a scalar; emits a notice on
// [Deprecations].
func (iv Interval[T]) LessThanValue(x Bound[T]) bool {
	Deprecations.Deprecated("Interval.LessThanValue", "Interval.Less(Singleton(x))")
	return iv.Less(Singleton(x))
}

// GreaterThanValue reports whether iv is [Greater] than the singleton
// interval at x.
//
// Deprecated: compare against [Singleton] explicitly with Greater, or use
// Contains for membership tests. Emits a notice on [Deprecations].
func (iv Interval[T]) GreaterThanValue(x Bound[T]) bool {
	Deprecations.Deprecated("Interval.GreaterThanValue", "Interval.Greater(Singleton(x))")
	return iv.Greater(Singleton(x))
}
