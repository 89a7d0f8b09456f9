package arr

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hasbyte1/go-toolkit/compare"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest of the given values.
// Returns the zero value and false when called with no arguments.
func Min[T cmp.Ordered](items ...T) (T, bool) {
	return MinBy(items, compare.Natural[T]())
}

// Max returns the largest of the given values.
// Returns the zero value and false when called with no arguments.
func Max[T cmp.Ordered](items ...T) (T, bool) {
	return MaxBy(items, compare.Natural[T]())
}

// MinBy returns the element ranking lowest under c; ties keep the earliest
// element. Returns the zero value and false when items is empty.
func MinBy[T any](items []T, c compare.Comparator[T]) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if c(item, best) < 0 {
			best = item
		}
	}
	return best, true
}

// MaxBy returns the element ranking highest under c; ties keep the earliest
// element. Returns the zero value and false when items is empty.
func MaxBy[T any](items []T, c compare.Comparator[T]) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if c(item, best) > 0 {
			best = item
		}
	}
	return best, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a copy of items sorted by c. The sort is stable: elements
// ranking equally keep their original relative order.
func Sort[T any](items []T, c compare.Comparator[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, c)
	return out
}

// SortDesc returns a copy of items sorted by c inverted.
func SortDesc[T any](items []T, c compare.Comparator[T]) []T {
	return Sort(items, c.Reversed())
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size, each a fresh slice.
// The last group may contain fewer than size elements; an empty input
// yields no groups.
//
// Panics if size < 1.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		panic(fmt.Sprintf("arr: chunk size must be at least 1, got %d", size))
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}
