package interval

// Union returns the set of points in iv or other. Grounded on the teacher's
// VersionIntervalSet.Union: concatenate both atomic slices and
// re-canonicalize.
func (iv Interval[T]) Union(other Interval[T]) Interval[T] {
	all := make([]atomic[T], 0, len(iv.atomics)+len(other.atomics))
	all = append(all, iv.atomics...)
	all = append(all, other.atomics...)
	return Interval[T]{atomics: canonicalize(all)}
}

// Intersection returns the set of points in both iv and other. Grounded on
// the teacher's VersionIntervalSet.Intersection: merge-walk both sorted
// slices, pairwise-intersecting atomics whose ranges can overlap and
// dropping empties.
func (iv Interval[T]) Intersection(other Interval[T]) Interval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty[T]()
	}

	result := make([]atomic[T], 0, len(iv.atomics))
	i, j := 0, 0
	for i < len(iv.atomics) && j < len(other.atomics) {
		a, b := iv.atomics[i], other.atomics[j]
		if x := intersect(a, b); !x.isEmpty() {
			result = append(result, x)
		}
		if compareUpper(a.upper, a.right, b.upper, b.right) < 0 {
			i++
		} else {
			j++
		}
	}
	return Interval[T]{atomics: canonicalize(result)}
}

// Complement returns the set of points not in iv. Grounded on the teacher's
// VersionIntervalSet.Complement: walk the gaps before, between, and after
// iv's atomics, flipping the bound kind at every shared edge.
func (iv Interval[T]) Complement() Interval[T] {
	if iv.IsEmpty() {
		return Closed(NegInf[T](), PosInf[T]())
	}

	gaps := make([]atomic[T], 0, len(iv.atomics)+1)
	lower, left := NegInf[T](), Open

	for _, a := range iv.atomics {
		upper, right := a.complementUpperBound()
		gap := newAtomic(left, lower, upper, right)
		if !gap.isEmpty() {
			gaps = append(gaps, gap)
		}
		lower, left = a.complementLowerBound()
	}

	tail := newAtomic(left, lower, PosInf[T](), Open)
	if !tail.isEmpty() {
		gaps = append(gaps, tail)
	}

	return Interval[T]{atomics: canonicalize(gaps)}
}

// Difference returns the set of points in iv but not in other: iv ∩ ¬other.
func (iv Interval[T]) Difference(other Interval[T]) Interval[T] {
	return iv.Intersection(other.Complement())
}

// Contains reports whether x is a member of iv. Neither infinity sentinel
// is ever contained.
func (iv Interval[T]) Contains(x Bound[T]) bool {
	for _, a := range iv.atomics {
		if a.containsValue(x) {
			return true
		}
	}
	return false
}

// ContainsInterval reports whether every point of other is a point of iv.
// The empty interval is contained in every interval, including itself; no
// non-empty interval is contained in the empty interval. Grounded on the
// teacher's VersionIntervalSet.IsSubset.
func (iv Interval[T]) ContainsInterval(other Interval[T]) bool {
	if other.IsEmpty() {
		return true
	}
	if iv.IsEmpty() {
		return false
	}

	i, j := 0, 0
	for j < len(other.atomics) {
		if i >= len(iv.atomics) {
			return false
		}
		if covers(iv.atomics[i], other.atomics[j]) {
			j++
			continue
		}
		if before(iv.atomics[i], other.atomics[j]) {
			i++
			continue
		}
		return false
	}
	return true
}

// Overlaps reports whether iv and other share at least one point. Sharing
// only a boundary that is open on at least one side does not count as
// overlap. The empty interval overlaps nothing. Grounded on the teacher's
// VersionIntervalSet.IsDisjoint (negated).
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	i, j := 0, 0
	for i < len(iv.atomics) && j < len(other.atomics) {
		a, b := iv.atomics[i], other.atomics[j]
		if overlaps(a, b) {
			return true
		}
		if compareUpper(a.upper, a.right, b.upper, b.right) < 0 {
			i++
		} else {
			j++
		}
	}
	return false
}

// Adjacent reports whether iv and other are disjoint and their union forms
// a single atomic. The empty interval is adjacent to every interval whose
// own canonical form has at most one atomic (including itself); it is not
// adjacent to any multi-atomic interval.
func (iv Interval[T]) Adjacent(other Interval[T]) bool {
	if iv.Overlaps(other) {
		return false
	}
	return iv.Union(other).IsAtomic()
}
