package search

import (
	"github.com/ar90n/partsearch/collection"
)

// EqualRange returns the half-open range of elements equivalent to value.
// When there are none the range is empty and sits at the insertion point.
//
// Once an equivalent element is probed, the two bounds are searched only in
// what is left on either side of it, so the whole call stays O(log n).
func EqualRange[I comparable, T any](c collection.RandomAccess[I, T], value T, less collection.Ordering[T]) (ret collection.Range[I], _ error) {
	lo := c.StartIndex()
	n := c.Distance(lo, c.EndIndex())
	for 0 < n {
		half := n / 2
		middle := c.Offset(lo, half)
		elem := c.At(middle)

		below, err := less(elem, value)
		if err != nil {
			return ret, err
		}
		if below {
			lo = c.IndexAfter(middle)
			n -= half + 1
			continue
		}

		above, err := less(value, elem)
		if err != nil {
			return ret, err
		}
		if above {
			n = half
			continue
		}

		first, err := partitionPoint(c, lo, half, notBefore(value, less))
		if err != nil {
			return ret, err
		}
		last, err := partitionPoint(c, c.IndexAfter(middle), n-half-1, after(value, less))
		if err != nil {
			return ret, err
		}
		return collection.Range[I]{Lo: first, Hi: last}, nil
	}
	return collection.Range[I]{Lo: lo, Hi: lo}, nil
}
