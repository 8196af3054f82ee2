package constraints

import (
	"golang.org/x/exp/constraints"
)

type Ordered interface {
	constraints.Ordered
}

func Less[T Ordered](x, y T) bool {
	return x < y
}

func Max[T Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}
