package interval

import "sort"

// canonicalize reduces an arbitrary slice of atomics to the canonical form
// required by spec.md §4.3: drop empties, sort by (lower, leftIsOpen), then
// sweep left to right merging touching atomics. Grounded on the teacher's
// normalizeIntervals (version_interval.go), generalized from a single
// sorted-slice merge pass over versionInterval to atomic[T].
func canonicalize[T Ordered[T]](atomics []atomic[T]) []atomic[T] {
	filtered := atomics[:0]
	for _, a := range atomics {
		if !a.isEmpty() {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		return compareLower(filtered[i].lower, filtered[i].left, filtered[j].lower, filtered[j].left) < 0
	})

	merged := filtered[:1]
	for _, cur := range filtered[1:] {
		last := &merged[len(merged)-1]
		if touches(*last, cur) {
			*last = merge(*last, cur)
		} else {
			merged = append(merged, cur)
		}
	}

	out := make([]atomic[T], len(merged))
	copy(out, merged)
	return out
}
