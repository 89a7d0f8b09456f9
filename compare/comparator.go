package compare

import "cmp"

// Comparator is a pure two-argument ordering function.
//
// It returns a negative value when a sorts before b, zero when they rank
// equally, and a positive value when a sorts after b. A well-formed
// Comparator is reflexive in zero, antisymmetric and transitive; every
// factory in this package produces one. Comparators hold no mutable state
// and may be reused indefinitely, including from multiple goroutines.
type Comparator[T any] func(a, b T) int

// Compare applies the comparator. It exists so a Comparator can be passed
// where an interface-shaped comparer is expected.
func (c Comparator[T]) Compare(a, b T) int { return c(a, b) }

// Reversed returns a comparator imposing the inverse order of c.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Natural returns a comparator delegating to the type's own total order.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// NaturalReverse returns the inverse of [Natural].
func NaturalReverse[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(b, a) }
}

// Reverse returns c reversed. A nil c yields [NaturalReverse].
func Reverse[T cmp.Ordered](c Comparator[T]) Comparator[T] {
	if c == nil {
		return NaturalReverse[T]()
	}
	return c.Reversed()
}

// Comparing returns a comparator ordering elements by the ordered key
// extracted by key.
//
//	byAge := compare.Comparing(func(p Person) int { return p.Age })
//
// Panics if key is nil.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	if key == nil {
		panic("compare: Comparing called with a nil key extractor")
	}
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// ComparingDesc is [Comparing] with the order inverted.
func ComparingDesc[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return Comparing(key).Reversed()
}

// Chain combines comparators into one that applies each in turn until the
// first non-zero result. Useful for multi-field ordering (by age, then by
// name). An empty chain ranks everything equal.
func Chain[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// NilFirst lifts c to a pointer comparator that ranks nil before any
// non-nil value. Two nils rank equally.
func NilFirst[T any](c Comparator[T]) Comparator[*T] {
	return nilSafe(c, false)
}

// NilLast lifts c to a pointer comparator that ranks nil after any
// non-nil value. Two nils rank equally.
func NilLast[T any](c Comparator[T]) Comparator[*T] {
	return nilSafe(c, true)
}

func nilSafe[T any](c Comparator[T], nilGreater bool) Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == b:
			return 0
		case a == nil:
			if nilGreater {
				return 1
			}
			return -1
		case b == nil:
			if nilGreater {
				return -1
			}
			return 1
		}
		return c(*a, *b)
	}
}
