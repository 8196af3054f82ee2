// Package partsearch partitions and binary-searches Go slices.
//
// It is a thin layer over the partition and search packages, which work on
// any collection.Collection. The slice functions here take plain, infallible
// predicates.
//
// Convention: partitioning puts the elements failing the predicate first, and
// PartitionPoint expects exactly that layout. On a slice sorted ascending,
// LowerBound(s, v) == PartitionPoint(s, func(x T) bool { return x >= v }).
package partsearch

import (
	"github.com/ar90n/partsearch/collection"
	"github.com/ar90n/partsearch/constraints"
	"github.com/ar90n/partsearch/partition"
	"github.com/ar90n/partsearch/search"
)

// Range is a half-open span of slice indices.
type Range = collection.Range[int]

// Partition reorders s so that elements failing pred precede elements
// satisfying pred, and returns the index of the first element satisfying
// pred. It uses the two-pointer strategy.
func Partition[T any](s []T, pred func(T) bool) int {
	i, _ := partition.PartitionBidirectional[int, T](collection.Slice[T](s), collection.Match(pred))
	return i
}

// PartitionForward is Partition using the single forward cursor, which keeps
// the elements failing pred in their original order.
func PartitionForward[T any](s []T, pred func(T) bool) int {
	i, _ := partition.Partition[int, T](collection.Slice[T](s), collection.Match(pred))
	return i
}

func IsPartitioned[T any](s []T, pred func(T) bool) bool {
	ok, _ := partition.IsPartitioned[int, T](collection.Slice[T](s), collection.Match(pred))
	return ok
}

// PartitionPoint returns the first index at which pred holds, given that s is
// partitioned by pred with the false elements first.
func PartitionPoint[T any](s []T, pred func(T) bool) int {
	i, _ := search.PartitionPoint[int, T](collection.Slice[T](s), collection.Match(pred))
	return i
}

func LowerBound[T constraints.Ordered](s []T, value T) int {
	return LowerBoundFunc(s, value, constraints.Less[T])
}

func LowerBoundFunc[T any](s []T, value T, less func(a, b T) bool) int {
	i, _ := search.LowerBound[int, T](collection.Slice[T](s), value, collection.Order(less))
	return i
}

func UpperBound[T constraints.Ordered](s []T, value T) int {
	return UpperBoundFunc(s, value, constraints.Less[T])
}

func UpperBoundFunc[T any](s []T, value T, less func(a, b T) bool) int {
	i, _ := search.UpperBound[int, T](collection.Slice[T](s), value, collection.Order(less))
	return i
}

// BinarySearch returns the index of the first occurrence of value in the
// sorted slice s and true, or the insertion point and false.
func BinarySearch[T constraints.Ordered](s []T, value T) (int, bool) {
	return BinarySearchFunc(s, value, constraints.Less[T])
}

func BinarySearchFunc[T any](s []T, value T, less func(a, b T) bool) (int, bool) {
	i, found, _ := search.BinarySearch[int, T](collection.Slice[T](s), value, collection.Order(less))
	return i, found
}

// EqualRange returns the range of elements equal to value in the sorted
// slice s. An absent value yields an empty range at its insertion point.
func EqualRange[T constraints.Ordered](s []T, value T) Range {
	return EqualRangeFunc(s, value, constraints.Less[T])
}

func EqualRangeFunc[T any](s []T, value T, less func(a, b T) bool) Range {
	r, _ := search.EqualRange[int, T](collection.Slice[T](s), value, collection.Order(less))
	return r
}
