// Package partition reorders collections around a predicate and checks that
// they are reordered.
//
// Every function here places the elements for which the predicate is false
// before the elements for which it is true. The returned boundary is the first
// index of the true group, which is also what search.PartitionPoint returns for
// the same predicate afterwards.
package partition

import (
	"github.com/ar90n/partsearch/collection"
)

// Partition reorders c so that elements failing p come first, and returns the
// index of the first element satisfying p. It needs only forward traversal.
//
// The relative order of the elements failing p is kept; the order of the
// others is not. Runs in O(n) with at most O(n) swaps.
//
// If p fails, the error is returned as is and c is left in an unspecified
// order.
func Partition[I comparable, T any](c collection.Mutable[I, T], p collection.Predicate[T]) (ret I, _ error) {
	end := c.EndIndex()
	pivot := c.StartIndex()
	for {
		if pivot == end {
			return pivot, nil
		}
		ok, err := p(c.At(pivot))
		if err != nil {
			return ret, err
		}
		if ok {
			break
		}
		pivot = c.IndexAfter(pivot)
	}

	for i := c.IndexAfter(pivot); i != end; i = c.IndexAfter(i) {
		ok, err := p(c.At(i))
		if err != nil {
			return ret, err
		}
		if !ok {
			c.Swap(i, pivot)
			pivot = c.IndexAfter(pivot)
		}
	}
	return pivot, nil
}

// PartitionBidirectional is Partition for collections that can step
// backwards. It closes in from both ends and makes at most n/2 swaps, but
// keeps neither group in its original order.
func PartitionBidirectional[I comparable, T any](c collection.MutableBidirectional[I, T], p collection.Predicate[T]) (ret I, _ error) {
	lo := c.StartIndex()
	hi := c.EndIndex()

	// At the top of each pass:
	//   p is false on [start, lo) and true on [hi, end).
	for {
		for {
			if lo == hi {
				return lo, nil
			}
			ok, err := p(c.At(lo))
			if err != nil {
				return ret, err
			}
			if ok {
				break
			}
			lo = c.IndexAfter(lo)
		}

		for {
			hi = c.IndexBefore(hi)
			if lo == hi {
				return lo, nil
			}
			ok, err := p(c.At(hi))
			if err != nil {
				return ret, err
			}
			if !ok {
				break
			}
		}

		c.Swap(lo, hi)
		lo = c.IndexAfter(lo)
	}
}

// IsPartitioned reports whether every element failing p precedes every
// element satisfying p. It is a linear scan meant for tests and assertions.
func IsPartitioned[I comparable, T any](c collection.Collection[I, T], p collection.Predicate[T]) (bool, error) {
	end := c.EndIndex()
	i := c.StartIndex()
	for ; i != end; i = c.IndexAfter(i) {
		ok, err := p(c.At(i))
		if err != nil {
			return false, err
		}
		if ok {
			break
		}
	}
	for ; i != end; i = c.IndexAfter(i) {
		ok, err := p(c.At(i))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
