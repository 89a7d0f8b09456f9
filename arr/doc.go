// Package arr provides slice helpers for searching, ordering and
// restructuring, built on the comparator surface of package compare.
//
// All helpers treat their input as read-only: ordering functions return a
// sorted copy and never mutate the argument slice. Aggregations follow the
// (value, ok) convention — an empty input reports ok == false rather than
// inventing a zero result:
//
//	highest, ok := arr.Max(3, 9, 4)            // 9, true
//	oldest, ok := arr.MaxBy(people, byAge)     // comparator-driven
//	sorted := arr.Sort(names, compare.Natural[string]())
//
// [Chunk] is the materialized counterpart of the lazy iters.Partition and
// shares its contract: consecutive groups in source order, a possibly short
// final group, and a panic on a size below 1.
package arr
