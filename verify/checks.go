// Package verify checks the partition and search algorithms against their
// contracts on concrete inputs, and runs those checks over many random inputs.
package verify

import (
	"container/list"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/ar90n/partsearch/collection"
	"github.com/ar90n/partsearch/partition"
	"github.com/ar90n/partsearch/search"
)

// ErrViolation marks every error reporting a broken property.
var ErrViolation = errors.New("property violated")

var intLess = collection.Order(func(a, b int) bool { return a < b })

func violationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrViolation, format, args...)
}

// A Check inspects s, which must not be modified, for one property. Sorted
// checks are handed s in ascending order.
type Check struct {
	Name   string
	Sorted bool
	Run    func(s []int, v int) error
}

var Checks = []Check{
	{Name: "partition", Run: CheckPartition},
	{Name: "partition-point", Run: CheckPartitionPoint},
	{Name: "lower-bound", Sorted: true, Run: CheckLowerBound},
	{Name: "equal-range", Sorted: true, Run: CheckEqualRange},
	{Name: "binary-search", Sorted: true, Run: CheckBinarySearch},
	{Name: "linear", Sorted: true, Run: CheckLinear},
}

func atLeast(v int) collection.Predicate[int] {
	return collection.Match(func(x int) bool { return v <= x })
}

func countBelow(s []int, v int) int {
	n := 0
	for _, x := range s {
		if x < v {
			n++
		}
	}
	return n
}

// CheckPartition partitions copies of s around v with both strategies and
// confirms the result is partitioned, is a permutation of s, and has its
// boundary at the number of elements below v.
func CheckPartition(s []int, v int) error {
	want := countBelow(s, v)
	p := atLeast(v)

	strategies := map[string]func(c collection.Slice[int]) (int, error){
		"forward": func(c collection.Slice[int]) (int, error) {
			return partition.Partition[int, int](c, p)
		},
		"bidirectional": func(c collection.Slice[int]) (int, error) {
			return partition.PartitionBidirectional[int, int](c, p)
		},
	}
	for name, run := range strategies {
		c := append(collection.Slice[int]{}, s...)
		boundary, err := run(c)
		if err != nil {
			return errors.Wrapf(err, "%s partition", name)
		}
		if boundary != want {
			return violationf("%s partition of %v at %d: boundary %d, want %d", name, s, v, boundary, want)
		}
		ok, err := partition.IsPartitioned[int, int](c, p)
		if err != nil {
			return err
		}
		if !ok {
			return violationf("%s partition of %v at %d left %v", name, s, v, c)
		}
		if !samePermutation(s, c) {
			return violationf("%s partition of %v changed its elements to %v", name, s, c)
		}
	}
	return nil
}

// CheckPartitionPoint confirms PartitionPoint finds the boundary Partition
// returned.
func CheckPartitionPoint(s []int, v int) error {
	p := atLeast(v)
	c := append(collection.Slice[int]{}, s...)
	boundary, err := partition.PartitionBidirectional[int, int](c, p)
	if err != nil {
		return err
	}
	point, err := search.PartitionPoint[int, int](c, p)
	if err != nil {
		return err
	}
	if point != boundary {
		return violationf("partition point of %v at %d is %d, partition returned %d", c, v, point, boundary)
	}
	return nil
}

func CheckLowerBound(s []int, v int) error {
	lb, err := search.LowerBound[int, int](collection.Slice[int](s), v, intLess)
	if err != nil {
		return err
	}
	for i, x := range s {
		if i < lb && v <= x {
			return violationf("lower bound of %d in %v is %d but s[%d] = %d", v, s, lb, i, x)
		}
		if lb <= i && x < v {
			return violationf("lower bound of %d in %v is %d but s[%d] = %d", v, s, lb, i, x)
		}
	}
	return nil
}

func CheckEqualRange(s []int, v int) error {
	c := collection.Slice[int](s)
	lb, err := search.LowerBound[int, int](c, v, intLess)
	if err != nil {
		return err
	}
	ub, err := search.UpperBound[int, int](c, v, intLess)
	if err != nil {
		return err
	}
	r, err := search.EqualRange[int, int](c, v, intLess)
	if err != nil {
		return err
	}
	if r.Lo != lb || r.Hi != ub {
		return violationf("equal range of %d in %v is [%d, %d), bounds give [%d, %d)", v, s, r.Lo, r.Hi, lb, ub)
	}
	return nil
}

func CheckBinarySearch(s []int, v int) error {
	want := -1
	for i, x := range s {
		if x == v {
			want = i
			break
		}
	}

	i, found, err := search.BinarySearch[int, int](collection.Slice[int](s), v, intLess)
	if err != nil {
		return err
	}
	switch {
	case found != (want != -1):
		return violationf("binary search for %d in %v: found=%t", v, s, found)
	case found && i != want:
		return violationf("binary search for %d in %v: index %d, first occurrence %d", v, s, i, want)
	}
	return nil
}

// CheckLinear confirms that a forward-only list searched through
// collection.Linear agrees with the slice.
func CheckLinear(s []int, v int) error {
	l := collection.NewList(s...)
	lin := collection.Linear[*list.Element, int](l)

	r, err := search.EqualRange[*list.Element, int](lin, v, intLess)
	if err != nil {
		return err
	}
	want, err := search.EqualRange[int, int](collection.Slice[int](s), v, intLess)
	if err != nil {
		return err
	}
	lo := lin.Distance(l.StartIndex(), r.Lo)
	got := collection.NewRange(lo, lo+collection.Len[*list.Element, int](lin, r))
	if got != want {
		return violationf("linear equal range of %d in %v is %s, slice gives %s", v, s, format(got), format(want))
	}
	return nil
}

func format(r collection.Range[int]) string {
	return fmt.Sprintf("[%d, %d)", r.Lo, r.Hi)
}

func samePermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := map[int]int{}
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
		if counts[x] < 0 {
			return false
		}
	}
	return true
}
