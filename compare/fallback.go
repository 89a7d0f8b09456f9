package compare

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Comparable is the ordering capability a type can opt into for use with
// [Fallback] and [CompareWith]. CompareTo follows the usual contract:
// negative when the receiver sorts before other, zero when equal, positive
// when after.
type Comparable interface {
	CompareTo(other any) int
}

// Fallback orders two values of arbitrary, possibly different types through
// an explicit chain, in order of precedence:
//
//  1. identical values rank equal
//  2. nil ranks before non-nil, or after it when the optional flag is true
//  3. when both values share an ordering capability — a [Comparable]
//     implementation, or the same ordered runtime kind (integer, unsigned,
//     float, string) — that order decides
//  4. deeply equal values rank equal
//  5. otherwise a 64-bit structural hash of each value decides
//  6. hash collisions tie-break on the string rendering
//
// The chain is deterministic: the same two values always yield the same
// result within a process. It is not reproducible across runs for types
// whose rendering includes pointer identity, so orderings derived from it
// must not be persisted.
func Fallback(o1, o2 any, nilGreater ...bool) int {
	greater := len(nilGreater) > 0 && nilGreater[0]
	if identical(o1, o2) {
		return 0
	}
	switch {
	case o1 == nil:
		if greater {
			return 1
		}
		return -1
	case o2 == nil:
		if greater {
			return -1
		}
		return 1
	}

	if r, ok := dynamicCompare(o1, o2); ok {
		return r
	}
	if reflect.DeepEqual(o1, o2) {
		return 0
	}

	h1, h2 := structuralHash(o1), structuralHash(o2)
	if h1 != h2 {
		return cmp.Compare(h1, h2)
	}
	return strings.Compare(fmt.Sprint(o1), fmt.Sprint(o2))
}

// identical reports whether o1 and o2 are the same value under Go equality,
// guarding against types for which == panics.
func identical(o1, o2 any) bool {
	if o1 == nil || o2 == nil {
		return o1 == nil && o2 == nil
	}
	t1 := reflect.TypeOf(o1)
	if t1 != reflect.TypeOf(o2) || !t1.Comparable() {
		return false
	}
	return o1 == o2
}

// dynamicCompare resolves an ordering capability at runtime. It reports
// false when the two values share none.
func dynamicCompare(o1, o2 any) (int, bool) {
	if c1, ok := o1.(Comparable); ok {
		if _, ok := o2.(Comparable); ok {
			return c1.CompareTo(o2), true
		}
	}

	v1, v2 := reflect.ValueOf(o1), reflect.ValueOf(o2)
	if v1.Kind() != v2.Kind() {
		return 0, false
	}
	switch v1.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(v1.Int(), v2.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(v1.Uint(), v2.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(v1.Float(), v2.Float()), true
	case reflect.String:
		return cmp.Compare(v1.String(), v2.String()), true
	}
	return 0, false
}

// structuralHash hashes the %#v rendering, which carries the type name and
// exported structure of the value.
func structuralHash(o any) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%#v", o))
}
