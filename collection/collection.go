// Package collection describes the capabilities a sequence must provide to be
// partitioned or searched, together with a few ready-made sequences.
//
// Indices are opaque cursors. Algorithms move them only through IndexAfter,
// IndexBefore, Distance and Offset, so a sequence does not need to be
// contiguous or randomly addressable to take part.
package collection

// Collection is a forward-traversable sequence.
type Collection[I comparable, T any] interface {
	StartIndex() I
	EndIndex() I
	// IndexAfter returns the successor of i. i must not be EndIndex.
	IndexAfter(i I) I
	At(i I) T
}

// Mutable is a Collection whose elements can be exchanged in place.
type Mutable[I comparable, T any] interface {
	Collection[I, T]
	Swap(i, j I)
}

// Bidirectional is a Collection that can also step backwards.
type Bidirectional[I comparable, T any] interface {
	Collection[I, T]
	// IndexBefore returns the predecessor of i. i must not be StartIndex.
	IndexBefore(i I) I
}

// MutableBidirectional can both exchange elements and step backwards, which is
// what the two-cursor partition needs.
type MutableBidirectional[I comparable, T any] interface {
	Mutable[I, T]
	Bidirectional[I, T]
}

// RandomAccess is a Collection that can measure and jump across positions.
//
// Implementations are expected to do both in O(1). Linear adapts any
// Collection by stepping one position at a time; searches over it return the
// same results but cost O(n) rather than O(log n).
type RandomAccess[I comparable, T any] interface {
	Collection[I, T]
	// Distance returns the number of IndexAfter steps from from to to.
	// from must not come after to.
	Distance(from, to I) int
	// Offset returns the index n positions after i. n must be non-negative
	// and must not step past EndIndex.
	Offset(i I, n int) I
}

// Predicate reports whether an element matches. A non-nil error aborts the
// algorithm evaluating it.
type Predicate[T any] func(T) (bool, error)

// Ordering reports whether a is ordered strictly before b.
type Ordering[T any] func(a, b T) (bool, error)

// Match lifts an infallible predicate.
func Match[T any](f func(T) bool) Predicate[T] {
	return func(v T) (bool, error) {
		return f(v), nil
	}
}

// Order lifts an infallible strict ordering.
func Order[T any](less func(a, b T) bool) Ordering[T] {
	return func(a, b T) (bool, error) {
		return less(a, b), nil
	}
}

// Not negates p, passing errors through.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) (bool, error) {
		ok, err := p(v)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
