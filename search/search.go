// Package search implements binary searches over collections that are already
// partitioned or sorted.
//
// None of the functions here verify their precondition; use
// partition.IsPartitioned for that in tests. Given a RandomAccess collection
// with O(1) Distance and Offset every search is O(log n). Collections wrapped
// with collection.Linear give the same answers at O(n) cost.
package search

import (
	"github.com/ar90n/partsearch/collection"
)

// PartitionPoint returns the first index at which p holds, or EndIndex if it
// holds nowhere. c must be partitioned by p with the false elements first, as
// partition.Partition leaves it.
func PartitionPoint[I comparable, T any](c collection.RandomAccess[I, T], p collection.Predicate[T]) (I, error) {
	lo := c.StartIndex()
	return partitionPoint(c, lo, c.Distance(lo, c.EndIndex()), p)
}

// partitionPoint searches the n positions starting at lo.
func partitionPoint[I comparable, T any](c collection.RandomAccess[I, T], lo I, n int, p collection.Predicate[T]) (ret I, _ error) {
	for 0 < n {
		half := n / 2
		middle := c.Offset(lo, half)
		ok, err := p(c.At(middle))
		if err != nil {
			return ret, err
		}
		if ok {
			n = half
		} else {
			lo = c.IndexAfter(middle)
			n -= half + 1
		}
	}
	return lo, nil
}

// LowerBound returns the first index whose element is not ordered before
// value.
func LowerBound[I comparable, T any](c collection.RandomAccess[I, T], value T, less collection.Ordering[T]) (I, error) {
	return PartitionPoint(c, notBefore(value, less))
}

// UpperBound returns the first index whose element value is ordered before.
func UpperBound[I comparable, T any](c collection.RandomAccess[I, T], value T, less collection.Ordering[T]) (I, error) {
	return PartitionPoint(c, after(value, less))
}

// BinarySearch returns the first index holding an element equivalent to value
// and true, or the insertion point and false when there is none.
func BinarySearch[I comparable, T any](c collection.RandomAccess[I, T], value T, less collection.Ordering[T]) (I, bool, error) {
	i, err := LowerBound(c, value, less)
	if err != nil {
		return i, false, err
	}
	if i == c.EndIndex() {
		return i, false, nil
	}
	greater, err := less(value, c.At(i))
	if err != nil {
		return i, false, err
	}
	return i, !greater, nil
}

func notBefore[T any](value T, less collection.Ordering[T]) collection.Predicate[T] {
	return collection.Not[T](func(v T) (bool, error) {
		return less(v, value)
	})
}

func after[T any](value T, less collection.Ordering[T]) collection.Predicate[T] {
	return func(v T) (bool, error) {
		return less(value, v)
	}
}
