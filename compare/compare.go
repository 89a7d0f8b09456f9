package compare

import (
	"cmp"
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Core comparison
// ─────────────────────────────────────────────────────────────────────────────

// Compare delegates to the type's own total order: negative when c1 < c2,
// zero when equal, positive when c1 > c2.
func Compare[T cmp.Ordered](c1, c2 T) int {
	return cmp.Compare(c1, c2)
}

// ComparePtr is the null-safe comparison: nil sorts before any non-nil
// value by default; pass true as the optional flag to sort nil after
// instead. Two nils rank equally. When both are non-nil, the type's own
// order decides.
func ComparePtr[T cmp.Ordered](c1, c2 *T, nilGreater ...bool) int {
	greater := len(nilGreater) > 0 && nilGreater[0]
	switch {
	case c1 == c2:
		return 0
	case c1 == nil:
		if greater {
			return 1
		}
		return -1
	case c2 == nil:
		if greater {
			return -1
		}
		return 1
	}
	return cmp.Compare(*c1, *c2)
}

// CompareWith compares c1 and c2 with the supplied comparator. When c is
// nil it falls back to the elements' dynamic ordering capability (a
// [Comparable] implementation or an ordered runtime kind) and panics when
// the runtime type has none. Statically ordered types should use [Compare]
// instead, which resolves the order at compile time.
func CompareWith[T any](c1, c2 T, c Comparator[T]) int {
	if c != nil {
		return c(c1, c2)
	}
	o1, o2 := any(c1), any(c2)
	switch {
	case o1 == nil && o2 == nil:
		return 0
	case o1 == nil:
		return -1
	case o2 == nil:
		return 1
	}
	r, ok := dynamicCompare(o1, o2)
	if !ok {
		panic(fmt.Sprintf("compare: type %T has no ordering and no comparator was supplied", c1))
	}
	return r
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers derived from Compare
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smaller of the two values; ties return t1.
func Min[T cmp.Ordered](t1, t2 T) T {
	if Compare(t1, t2) <= 0 {
		return t1
	}
	return t2
}

// Max returns the larger of the two values; ties return t1.
func Max[T cmp.Ordered](t1, t2 T) T {
	if Compare(t1, t2) >= 0 {
		return t1
	}
	return t2
}

// Equals reports whether c1 and c2 rank equally.
func Equals[T cmp.Ordered](c1, c2 T) bool { return Compare(c1, c2) == 0 }

// Gt reports whether c1 sorts strictly after c2.
func Gt[T cmp.Ordered](c1, c2 T) bool { return Compare(c1, c2) > 0 }

// Ge reports whether c1 sorts after or equal to c2.
func Ge[T cmp.Ordered](c1, c2 T) bool { return Compare(c1, c2) >= 0 }

// Lt reports whether c1 sorts strictly before c2.
func Lt[T cmp.Ordered](c1, c2 T) bool { return Compare(c1, c2) < 0 }

// Le reports whether c1 sorts before or equal to c2.
func Le[T cmp.Ordered](c1, c2 T) bool { return Compare(c1, c2) <= 0 }

// IsIn reports whether value lies in [min(c1,c2), max(c1,c2)]. The bounds
// are normalized first, so their order never matters.
func IsIn[T cmp.Ordered](value, c1, c2 T) bool {
	return Ge(value, Min(c1, c2)) && Le(value, Max(c1, c2))
}

// IsInExclusive reports whether value lies strictly between the two bounds:
// min(c1,c2) < value < max(c1,c2).
func IsInExclusive[T cmp.Ordered](value, c1, c2 T) bool {
	return Gt(value, Min(c1, c2)) && Lt(value, Max(c1, c2))
}
