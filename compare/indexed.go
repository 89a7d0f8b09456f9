package compare

import "cmp"

// ComparingIndexed returns a comparator imposing the order of an external
// reference sequence: elements rank by the position of their extracted key
// within ref (first match wins when ref contains duplicates).
//
// Elements whose key does not appear in ref all rank before present
// elements when atEndIfMiss is false, and all after them when true. Two
// absent elements rank equally, so their relative order is whatever the
// surrounding sort's stability gives them.
//
//	byStatus := compare.ComparingIndexed(
//	    func(t Task) string { return t.Status },
//	    false,
//	    "open", "blocked", "done",
//	)
//
// Panics if key is nil. The positions are resolved into a lookup table once
// at construction; ref is not retained.
func ComparingIndexed[T any, K comparable](key func(T) K, atEndIfMiss bool, ref ...K) Comparator[T] {
	if key == nil {
		panic("compare: ComparingIndexed called with a nil key extractor")
	}
	rank := make(map[K]int, len(ref))
	for i, k := range ref {
		if _, seen := rank[k]; !seen {
			rank[k] = i
		}
	}
	missing := -1
	if atEndIfMiss {
		missing = len(ref)
	}
	return func(a, b T) int {
		ra, ok := rank[key(a)]
		if !ok {
			ra = missing
		}
		rb, ok := rank[key(b)]
		if !ok {
			rb = missing
		}
		return cmp.Compare(ra, rb)
	}
}
