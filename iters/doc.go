// Package iters provides lazy sequence adapters, chief among them the
// fixed-size partitioning iterator.
//
// # Partitioning
//
// [Partition] regroups a flat sequence into consecutive chunks of at most a
// given size, lazily — the source is pulled only as each partition is
// consumed, so it composes with unbounded sources:
//
//	for batch := range iters.Partition(slices.Values(ids), 100) {
//	    store.InsertMany(batch)
//	}
//
// Elements keep their source order within and across partitions; nothing is
// dropped or duplicated. Every partition but the last has exactly size
// elements; the last may be shorter, and an empty source yields no
// partitions at all. Each yielded slice is a fresh buffer owned by the
// consumer — the adapter never retains or reuses it.
//
// [PartitionIter] exposes the same grouping through an explicit pull cursor
// (Next/Stop) for call sites that cannot use a range loop.
//
// # Failure semantics
//
// A partition size below 1 is a programmer error and panics at construction;
// it is never clamped. Both forms are forward-only, non-restartable and
// single-consumer: sharing one across goroutines requires external mutual
// exclusion.
package iters
