package interval

import (
	"hash/maphash"
	"iter"
)

// Len returns the number of atomics in iv's canonical form (0 for empty).
func (iv Interval[T]) Len() int {
	return len(iv.atomics)
}

// At returns the k-th atomic in canonical order. A negative k counts from
// the end, as with Python-style indexing. An out-of-range k fails with an
// [IndexError].
func (iv Interval[T]) At(k int) (Atomic[T], error) {
	n := len(iv.atomics)
	idx := k
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return Atomic[T]{}, &IndexError{Index: k, Len: n}
	}
	return iv.atomics[idx].export(), nil
}

// Slice returns the interval built from the atomics in [start, end).
// Indices are clamped into [0, Len()] rather than erroring (unlike a Go
// slice expression, which panics), and start >= end yields the empty
// interval.
func (iv Interval[T]) Slice(start, end int) Interval[T] {
	n := len(iv.atomics)
	start = clampIndex(start, n)
	end = clampIndex(end, n)
	if start >= end {
		return Empty[T]()
	}
	atoms := make([]atomic[T], end-start)
	copy(atoms, iv.atomics[start:end])
	return Interval[T]{atomics: atoms}
}

func clampIndex(i, n int) int {
	switch {
	case i < 0:
		return 0
	case i > n:
		return n
	default:
		return i
	}
}

// All iterates iv's atomics in canonical order. Grounded on the teacher's
// VersionIntervalSet.Intervals, which exposes the same iter.Seq shape over
// versionInterval.
func (iv Interval[T]) All() iter.Seq[Atomic[T]] {
	return func(yield func(Atomic[T]) bool) {
		for _, a := range iv.atomics {
			if !yield(a.export()) {
				return
			}
		}
	}
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of iv's canonical sequence of atomics, stable across
// equal intervals. Hash is a standalone function rather than a method
// because hashing needs T to additionally be comparable, a stronger
// requirement than [Ordered] alone.
//
// Per spec.md §4.7, hashing a bound value can fail: here, that happens
// when T is itself an interface type wrapping a dynamic value that isn't
// actually comparable (e.g. a slice or map), which panics inside
// [maphash.Comparable]; Hash recovers and treats that one atomic as
// unhashable. A non-empty interval hashes successfully as long as at
// least one atomic's bounds hash cleanly; failing that for every atomic
// (in particular for a single atomic, non-empty interval) returns a
// [HashError].
func Hash[T interface {
	Ordered[T]
	comparable
}](iv Interval[T]) (uint64, error) {
	if iv.IsEmpty() {
		return maphash.Comparable(hashSeed, "interval.empty"), nil
	}

	var sum uint64
	failed := 0
	for _, a := range iv.atomics {
		h, ok := hashAtomic(a)
		if !ok {
			failed++
			continue
		}
		sum ^= h
	}
	if failed == len(iv.atomics) {
		return 0, &HashError{Atomics: failed}
	}
	return sum, nil
}

func hashAtomic[T interface {
	Ordered[T]
	comparable
}](a atomic[T]) (h uint64, ok bool) {
	defer func() {
		if recover() != nil {
			h, ok = 0, false
		}
	}()
	key := struct {
		Left  Kind
		Lower Bound[T]
		Upper Bound[T]
		Right Kind
	}{a.left, a.lower, a.upper, a.right}
	return maphash.Comparable(hashSeed, key), true
}
