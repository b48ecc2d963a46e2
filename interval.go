package interval

// Interval is an immutable, canonicalized union of disjoint, non-adjacent
// atomic intervals over an ordered domain T. The zero value is the empty
// interval. Grounded on the teacher's VersionIntervalSet
// (version_interval_set.go), generalized from Version to any Ordered[T].
type Interval[T Ordered[T]] struct {
	atomics []atomic[T]
}

// Empty returns the empty interval.
func Empty[T Ordered[T]]() Interval[T] {
	return Interval[T]{}
}

// Closed returns the atomic interval [a, b].
func Closed[T Ordered[T]](a, b Bound[T]) Interval[T] {
	return fromAtomics(closedAtomic(a, b))
}

// Open returns the atomic interval (a, b).
func Open[T Ordered[T]](a, b Bound[T]) Interval[T] {
	return fromAtomics(openAtomic(a, b))
}

// OpenClosed returns the atomic interval (a, b].
func OpenClosed[T Ordered[T]](a, b Bound[T]) Interval[T] {
	return fromAtomics(newAtomic(Open, a, b, Closed))
}

// ClosedOpen returns the atomic interval [a, b).
func ClosedOpen[T Ordered[T]](a, b Bound[T]) Interval[T] {
	return fromAtomics(newAtomic(Closed, a, b, Open))
}

// Singleton returns the atomic interval [x, x].
func Singleton[T Ordered[T]](x Bound[T]) Interval[T] {
	return Closed(x, x)
}

// FromAtomic builds a one-atomic interval from explicit bound kinds and
// values, applying the infinity normalization and emptiness test from
// spec.md §4.2. If the result is empty, the canonical empty interval is
// returned.
func FromAtomic[T Ordered[T]](left Kind, lower, upper Bound[T], right Kind) Interval[T] {
	return fromAtomics(newAtomic(left, lower, upper, right))
}

func fromAtomics[T Ordered[T]](atomics ...atomic[T]) Interval[T] {
	return Interval[T]{atomics: canonicalize(atomics)}
}

// New builds an Interval from zero or more already-built Intervals,
// unioning and re-canonicalizing them. New() == Empty[T](); this is the Go
// analogue of the source's variadic Interval(*atomics) constructor, which
// also accepts and flattens nested intervals (including other unions).
func New[T Ordered[T]](parts ...Interval[T]) Interval[T] {
	var all []atomic[T]
	for _, p := range parts {
		all = append(all, p.atomics...)
	}
	return Interval[T]{atomics: canonicalize(all)}
}

// IsEmpty reports whether the interval denotes the empty point set.
func (iv Interval[T]) IsEmpty() bool {
	return len(iv.atomics) == 0
}

// IsAtomic reports whether the interval is made of at most one atomic.
func (iv Interval[T]) IsAtomic() bool {
	return len(iv.atomics) <= 1
}

// Lower returns the lower bound of the first atomic, or +∞ for the empty
// interval (spec.md §3).
func (iv Interval[T]) Lower() Bound[T] {
	if iv.IsEmpty() {
		return PosInf[T]()
	}
	return iv.atomics[0].lower
}

// Upper returns the upper bound of the last atomic, or -∞ for the empty
// interval.
func (iv Interval[T]) Upper() Bound[T] {
	if iv.IsEmpty() {
		return NegInf[T]()
	}
	return iv.atomics[len(iv.atomics)-1].upper
}

// Left returns the Kind of the first atomic's lower bound, or Open for the
// empty interval.
func (iv Interval[T]) Left() Kind {
	if iv.IsEmpty() {
		return Open
	}
	return iv.atomics[0].left
}

// Right returns the Kind of the last atomic's upper bound, or Open for the
// empty interval.
func (iv Interval[T]) Right() Kind {
	if iv.IsEmpty() {
		return Open
	}
	return iv.atomics[len(iv.atomics)-1].right
}

// Enclosure returns the smallest single atomic interval containing every
// atomic of iv: (iv.Left(), iv.Lower(), iv.Upper(), iv.Right()).
func (iv Interval[T]) Enclosure() Interval[T] {
	if iv.IsEmpty() {
		return Empty[T]()
	}
	return FromAtomic(iv.Left(), iv.Lower(), iv.Upper(), iv.Right())
}
