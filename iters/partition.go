package iters

import (
	"fmt"
	"iter"
)

// Partition returns a lazy sequence of consecutive chunks of up to size
// elements of seq, in source order. All chunks but the last have exactly
// size elements; the last may be shorter. An empty seq yields no chunks —
// there is never an empty chunk in the result.
//
// Each chunk is a freshly allocated slice clipped to its length; the
// adapter holds no reference to it after yielding. The source is advanced
// only as chunks are consumed, one chunk of read-ahead at most.
//
// Panics if size < 1.
func Partition[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size < 1 {
		panic(fmt.Sprintf("iters: partition size must be at least 1, got %d", size))
	}
	return func(yield func([]T) bool) {
		var buf []T
		for v := range seq {
			if buf == nil {
				buf = make([]T, 0, size)
			}
			buf = append(buf, v)
			if len(buf) == size {
				if !yield(buf) {
					return
				}
				buf = nil
			}
		}
		if len(buf) > 0 {
			yield(buf[:len(buf):len(buf)])
		}
	}
}

// PartitionIter is the pull-cursor form of [Partition]: a forward-only,
// non-restartable iterator over fixed-size partitions of an underlying
// sequence. A single instance must be driven by one consumer at a time.
type PartitionIter[T any] struct {
	next func() (T, bool)
	stop func()
	size int
}

// NewPartitionIter wraps seq in a cursor yielding partitions of up to size
// elements. Callers should arrange for [PartitionIter.Stop] to run once the
// cursor is no longer needed so the underlying sequence is released.
//
// Panics if size < 1.
func NewPartitionIter[T any](seq iter.Seq[T], size int) *PartitionIter[T] {
	if size < 1 {
		panic(fmt.Sprintf("iters: partition size must be at least 1, got %d", size))
	}
	next, stop := iter.Pull(seq)
	return &PartitionIter[T]{next: next, stop: stop, size: size}
}

// Next consumes up to size elements from the source and returns them as the
// next partition. It returns nil and false once the source is exhausted; a
// source that runs out mid-partition produces the short remainder first and
// signals exhaustion on the following call.
func (it *PartitionIter[T]) Next() ([]T, bool) {
	var buf []T
	for len(buf) < it.size {
		v, ok := it.next()
		if !ok {
			break
		}
		if buf == nil {
			buf = make([]T, 0, it.size)
		}
		buf = append(buf, v)
	}
	if buf == nil {
		return nil, false
	}
	return buf[:len(buf):len(buf)], true
}

// Stop releases the underlying sequence. Further Next calls report
// exhaustion. Stop is idempotent.
func (it *PartitionIter[T]) Stop() { it.stop() }
