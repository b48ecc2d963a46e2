package interval

// atomic is a single contiguous interval (left, lower, upper, right),
// denoting the point set { x : lower <left x <right upper } where <Closed
// is <= and <Open is <. Grounded on the teacher's versionInterval
// (version_interval.go), generalized from Version to any Ordered[T].
type atomic[T Ordered[T]] struct {
	left  Kind
	lower Bound[T]
	upper Bound[T]
	right Kind
}

// Atomic is the read-only view of a single contiguous piece of an Interval,
// returned by [Interval.At] and iteration.
type Atomic[T Ordered[T]] struct {
	Left  Kind
	Lower Bound[T]
	Upper Bound[T]
	Right Kind
}

func (a atomic[T]) export() Atomic[T] {
	return Atomic[T]{Left: a.left, Lower: a.lower, Upper: a.upper, Right: a.right}
}

// normalizeAtInfinity coerces a bound equal to -∞ to open-on-the-left and a
// bound equal to +∞ to open-on-the-right, per spec.md §3. "Normalization at
// infinity": any attempt to construct them as Closed is silently coerced.
func normalizeAtInfinity[T Ordered[T]](left Kind, lower Bound[T], upper Bound[T], right Kind) (Kind, Kind) {
	if lower.IsNegInf() {
		left = Open
	}
	if upper.IsPosInf() {
		right = Open
	}
	return left, right
}

// isEmpty reports whether the atomic denotes the empty point set.
// Grounded on the teacher's versionInterval.isEmpty.
func (a atomic[T]) isEmpty() bool {
	if a.lower.IsPosInf() || a.upper.IsNegInf() {
		return true
	}
	if a.lower.IsNegInf() || a.upper.IsPosInf() {
		return false
	}
	cmp := a.lower.value.Compare(a.upper.value)
	switch {
	case cmp > 0:
		return true
	case cmp < 0:
		return false
	default:
		return a.left != Closed || a.right != Closed
	}
}

// newAtomic applies infinity normalization and returns the atomic, already
// aware of whether it denotes the empty set.
func newAtomic[T Ordered[T]](left Kind, lower, upper Bound[T], right Kind) atomic[T] {
	left, right = normalizeAtInfinity(left, lower, upper, right)
	return atomic[T]{left: left, lower: lower, upper: upper, right: right}
}

// closedAtomic builds the atomic [a, b].
func closedAtomic[T Ordered[T]](a, b Bound[T]) atomic[T] {
	return newAtomic(Closed, a, b, Closed)
}

// openAtomic builds the atomic (a, b).
func openAtomic[T Ordered[T]](a, b Bound[T]) atomic[T] {
	return newAtomic(Open, a, b, Open)
}

// touches reports whether a and b share a boundary point that is included
// by at least one side, making them mergeable into a single atomic. This
// is independent from overlap: closed(0,1) and open(1,2) touch (their
// union [0,2) has no gap) without overlapping (their intersection is
// empty), while open(0,1) and open(1,2) neither touch nor overlap (a gap
// remains at 1). Grounded on the teacher's versionInterval.touches, with
// the boundary rule corrected to spec.md §4.3's "at least one side
// closed" merge condition rather than upperLessThanLower's "at least one
// side open" condition, which answers the overlap question instead.
func touches[T Ordered[T]](a, b atomic[T]) bool {
	switch c := compare(a.upper, b.lower); {
	case c > 0:
		return true
	case c < 0:
		return false
	default:
		return a.right == Closed || b.left == Closed
	}
}

// before reports whether a's point set lies strictly before b's with no
// shared point: a.upper < b.lower, or equal with at least one side
// excluding the shared point (so the point does not belong to both). Used
// for interval ordering (Less) and pointer advancement in
// ContainsInterval, not for merge
// eligibility — before and touches can both hold at once, since a pair
// can be point-disjoint yet gap-free. Grounded on the teacher's
// upperLessThanLower, generalized to the spec's "before" relation
// (spec.md §4.1).
func before[T Ordered[T]](a, b atomic[T]) bool {
	switch {
	case a.upper.IsNegInf():
		return !b.lower.IsNegInf()
	case b.lower.IsPosInf():
		return !a.upper.IsPosInf()
	case a.upper.IsPosInf():
		return false
	case b.lower.IsNegInf():
		return false
	}
	cmp := a.upper.value.Compare(b.lower.value)
	switch {
	case cmp < 0:
		return true
	case cmp > 0:
		return false
	default:
		return a.right == Open || b.left == Open
	}
}

// overlaps reports whether a and b's point sets have a non-empty
// intersection. Sharing only a boundary that is open on at least one side
// does not count, because intersect of such a pair is empty. Grounded on
// the teacher's versionInterval.overlaps.
func overlaps[T Ordered[T]](a, b atomic[T]) bool {
	return !intersect(a, b).isEmpty()
}

// covers reports whether a completely contains b (every point of b is a
// point of a). Grounded on the teacher's versionInterval.covers.
func covers[T Ordered[T]](a, b atomic[T]) bool {
	if compareLower(a.lower, a.left, b.lower, b.left) > 0 {
		return false
	}
	if compareUpper(a.upper, a.right, b.upper, b.right) < 0 {
		return false
	}
	return true
}

// merge combines two touching atomics into the single atomic spanning
// both. Grounded on the teacher's versionInterval.merge.
func merge[T Ordered[T]](a, b atomic[T]) atomic[T] {
	var lower Bound[T]
	var left Kind
	if compareLower(a.lower, a.left, b.lower, b.left) <= 0 {
		lower, left = a.lower, a.left
	} else {
		lower, left = b.lower, b.left
	}

	var upper Bound[T]
	var right Kind
	if compareUpper(a.upper, a.right, b.upper, b.right) >= 0 {
		upper, right = a.upper, a.right
	} else {
		upper, right = b.upper, b.right
	}

	return newAtomic(left, lower, upper, right)
}

// intersect computes the intersection of two atomics. Grounded on the
// teacher's intersectInterval (version_interval_set.go), generalized to
// carry the open/closed Kind of whichever side wins the max/min.
func intersect[T Ordered[T]](a, b atomic[T]) atomic[T] {
	var lower Bound[T]
	var left Kind
	switch c := compareLower(a.lower, a.left, b.lower, b.left); {
	case c > 0:
		lower, left = a.lower, a.left
	case c < 0:
		lower, left = b.lower, b.left
	default:
		lower = a.lower
		left = Closed
		if a.left == Open || b.left == Open {
			left = Open
		}
	}

	var upper Bound[T]
	var right Kind
	switch c := compareUpper(a.upper, a.right, b.upper, b.right); {
	case c < 0:
		upper, right = a.upper, a.right
	case c > 0:
		upper, right = b.upper, b.right
	default:
		upper = a.upper
		right = Closed
		if a.right == Open || b.right == Open {
			right = Open
		}
	}

	return newAtomic(left, lower, upper, right)
}

// complementLowerBound returns the lower bound of the complement atomic
// that sits immediately above a. Grounded on the teacher's
// versionInterval.complementLowerBound.
func (a atomic[T]) complementLowerBound() (Bound[T], Kind) {
	switch {
	case a.upper.IsPosInf():
		return PosInf[T](), Open
	case a.upper.IsNegInf():
		return NegInf[T](), Open
	default:
		return a.upper, a.right.flip()
	}
}

// complementUpperBound returns the upper bound of the complement atomic
// that sits immediately below a. Grounded on the teacher's
// versionInterval.complementUpperBound.
func (a atomic[T]) complementUpperBound() (Bound[T], Kind) {
	switch {
	case a.lower.IsNegInf():
		return NegInf[T](), Open
	case a.lower.IsPosInf():
		return PosInf[T](), Open
	default:
		return a.lower, a.left.flip()
	}
}

// containsValue reports whether x is a member of the atomic's point set.
// Neither infinity sentinel is ever contained, per spec.md §3/§6.
func (a atomic[T]) containsValue(x Bound[T]) bool {
	if x.IsNegInf() || x.IsPosInf() {
		return false
	}
	if !a.lower.IsNegInf() {
		cmp := x.value.Compare(a.lower.value)
		if cmp < 0 || (cmp == 0 && a.left == Open) {
			return false
		}
	}
	if !a.upper.IsPosInf() {
		cmp := x.value.Compare(a.upper.value)
		if cmp > 0 || (cmp == 0 && a.right == Open) {
			return false
		}
	}
	return true
}

func (a atomic[T]) equal(b atomic[T]) bool {
	return a.left == b.left && a.right == b.right &&
		compare(a.lower, b.lower) == 0 && compare(a.upper, b.upper) == 0
}
