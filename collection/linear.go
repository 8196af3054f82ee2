package collection

import (
	"github.com/cockroachdb/errors"
)

// LinearCollection gives a forward-only Collection the RandomAccess methods by
// stepping through it. Distance and Offset cost O(n), so a binary search over
// a LinearCollection still makes O(log n) predicate calls but visits O(n)
// positions in total.
type LinearCollection[I comparable, T any] struct {
	Collection[I, T]
}

// Linear wraps c. Prefer a native RandomAccess implementation when one exists.
func Linear[I comparable, T any](c Collection[I, T]) LinearCollection[I, T] {
	return LinearCollection[I, T]{Collection: c}
}

func (lc LinearCollection[I, T]) Distance(from, to I) int {
	end := lc.EndIndex()
	n := 0
	for i := from; i != to; n++ {
		if i == end {
			panic(errors.AssertionFailedf("distance walked past the end without reaching its target"))
		}
		i = lc.IndexAfter(i)
	}
	return n
}

func (lc LinearCollection[I, T]) Offset(i I, n int) I {
	if n < 0 {
		panic(errors.AssertionFailedf("negative offset %d on a forward collection", n))
	}
	end := lc.EndIndex()
	for ; 0 < n; n-- {
		if i == end {
			panic(errors.AssertionFailedf("offset steps past the end"))
		}
		i = lc.IndexAfter(i)
	}
	return i
}

// ForwardCollection hides every capability of a Mutable except forward
// traversal and Swap.
type ForwardCollection[I comparable, T any] struct {
	c Mutable[I, T]
}

func ForwardOnly[I comparable, T any](c Mutable[I, T]) ForwardCollection[I, T] {
	return ForwardCollection[I, T]{c: c}
}

func (f ForwardCollection[I, T]) StartIndex() I { return f.c.StartIndex() }
func (f ForwardCollection[I, T]) EndIndex() I { return f.c.EndIndex() }
func (f ForwardCollection[I, T]) IndexAfter(i I) I { return f.c.IndexAfter(i) }
func (f ForwardCollection[I, T]) At(i I) T { return f.c.At(i) }
func (f ForwardCollection[I, T]) Swap(i, j I) { f.c.Swap(i, j) }
