package collection

import (
	"github.com/cockroachdb/errors"
)

// Range is the half-open span [Lo, Hi). It is empty iff Lo == Hi.
type Range[I comparable] struct {
	Lo I
	Hi I
}

// NewRange builds an int range and panics if lo > hi.
func NewRange(lo, hi int) Range[int] {
	if hi < lo {
		panic(errors.AssertionFailedf("malformed range [%d, %d)", lo, hi))
	}
	return Range[int]{Lo: lo, Hi: hi}
}

func (r Range[I]) IsEmpty() bool {
	return r.Lo == r.Hi
}

// Len returns the number of positions covered by r in c.
func Len[I comparable, T any](c RandomAccess[I, T], r Range[I]) int {
	return c.Distance(r.Lo, r.Hi)
}
