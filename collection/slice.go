package collection

import (
	"github.com/cockroachdb/errors"
)

// Slice exposes a Go slice as a mutable random-access collection indexed by
// int. EndIndex is len(s).
type Slice[T any] []T

var _ MutableBidirectional[int, int] = Slice[int](nil)
var _ RandomAccess[int, int] = Slice[int](nil)

func (s Slice[T]) StartIndex() int { return 0 }

func (s Slice[T]) EndIndex() int { return len(s) }

func (s Slice[T]) IndexAfter(i int) int {
	return s.Offset(i, 1)
}

func (s Slice[T]) IndexBefore(i int) int {
	if i <= 0 || len(s) < i {
		panic(errors.AssertionFailedf("no index before %d in slice of length %d", i, len(s)))
	}
	return i - 1
}

func (s Slice[T]) At(i int) T {
	return s[i]
}

func (s Slice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s Slice[T]) Distance(from, to int) int {
	if to < from {
		panic(errors.AssertionFailedf("distance from %d to %d runs backwards", from, to))
	}
	return to - from
}

func (s Slice[T]) Offset(i int, n int) int {
	j := i + n
	if n < 0 || i < 0 || len(s) < j {
		panic(errors.AssertionFailedf("offset %d from %d leaves slice of length %d", n, i, len(s)))
	}
	return j
}
