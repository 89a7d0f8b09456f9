// Package compare provides null-safe comparison helpers and factories for
// pluggable comparators, inspired by hutool's comparator utilities.
//
// # Overview
//
// The central type is [Comparator][T], a pure two-argument ordering function
// returning a negative, zero, or positive int. Comparators compose freely and
// plug into any sort routine that accepts an ordering function:
//
//	people := []Person{{"Wu", 40}, {"Li", 30}, {"Zhang", 30}}
//	slices.SortStableFunc(people, compare.Chain(
//	    compare.Comparing(func(p Person) int { return p.Age }),
//	    compare.Comparing(func(p Person) string { return p.Name }),
//	))
//
// # Null safety
//
// Go values of ordered types cannot be nil, so the null-safe comparison
// operates on pointers. The nil policy is explicit and caller-selectable:
// nil sorts before non-nil by default, after it when the optional flag is
// true — never silently inconsistent:
//
//	compare.ComparePtr(nil, &x)       // < 0: nil first
//	compare.ComparePtr(nil, &x, true) // > 0: nil last
//
// [NilFirst] and [NilLast] lift any Comparator[T] to a Comparator[*T] with
// the same two policies.
//
// # Heterogeneous values
//
// [Fallback] orders values of arbitrary, possibly mixed types through an
// explicit, deterministic chain: ordering capability, deep equality,
// structural hash, string rendering. The statically typed helpers never take
// this path; it exists for genuinely untyped collections.
//
// # Derived helpers
//
// [Min], [Max], [Equals], [Gt], [Ge], [Lt], [Le], [IsIn] and
// [IsInExclusive] are derived strictly from [Compare]. The range checks
// normalize their bounds first, so the argument order of the bounds never
// matters.
//
// # Failure semantics
//
// Factories fail fast: a nil key extractor panics at the factory call, not
// at the first comparison. [CompareWith] with a nil comparator resolves the
// element's dynamic ordering capability and panics when the runtime type has
// none. There are no other failure modes; every comparator here is a pure
// function.
package compare
