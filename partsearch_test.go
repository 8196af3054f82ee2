package partsearch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ar90n/partsearch/collection"
)

func TestSortedInts(t *testing.T) {
	s := []int{1, 2, 3, 3, 4, 4, 4, 4, 4, 5, 5, 6, 8, 9, 10}

	type TestCase struct {
		Value int
		Lower int
		Upper int
		Found bool
	}

	for _, tc := range []TestCase{
		{Value: 0, Lower: 0, Upper: 0, Found: false},
		{Value: 1, Lower: 0, Upper: 1, Found: true},
		{Value: 3, Lower: 2, Upper: 4, Found: true},
		{Value: 4, Lower: 4, Upper: 9, Found: true},
		{Value: 5, Lower: 9, Upper: 11, Found: true},
		{Value: 7, Lower: 12, Upper: 12, Found: false},
		{Value: 10, Lower: 14, Upper: 15, Found: true},
		{Value: 11, Lower: 15, Upper: 15, Found: false},
	} {
		t.Run(fmt.Sprint(tc.Value), func(t *testing.T) {
			assert.Equal(t, tc.Lower, LowerBound(s, tc.Value))
			assert.Equal(t, tc.Upper, UpperBound(s, tc.Value))
			assert.Equal(t, collection.NewRange(tc.Lower, tc.Upper), EqualRange(s, tc.Value))

			i, found := BinarySearch(s, tc.Value)
			assert.Equal(t, tc.Found, found)
			assert.Equal(t, tc.Lower, i)
		})
	}

	assert.Equal(t, 12, PartitionPoint(s, func(v int) bool { return 7 <= v }))
}

func TestFuncVariants(t *testing.T) {
	words := []string{"Apple", "banana", "Cherry", "cherry", "date"}
	fold := func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) }

	assert.Equal(t, collection.NewRange(2, 4), EqualRangeFunc(words, "CHERRY", fold))
	assert.Equal(t, 2, LowerBoundFunc(words, "cherry", fold))
	assert.Equal(t, 4, UpperBoundFunc(words, "cherry", fold))

	i, found := BinarySearchFunc(words, "BANANA", fold)
	assert.True(t, found)
	assert.Equal(t, 1, i)

	_, found = BinarySearchFunc(words, "fig", fold)
	assert.False(t, found)
}

func TestPartitionSlices(t *testing.T) {
	vowel := func(r rune) bool { return strings.ContainsRune("aeiou", r) }

	s := []rune("partition")
	i := Partition(s, vowel)
	assert.Equal(t, 5, i)
	assert.True(t, IsPartitioned(s, vowel))
	assert.Equal(t, i, PartitionPoint(s, vowel))

	f := []rune("partition")
	j := PartitionForward(f, vowel)
	assert.Equal(t, 5, j)
	assert.Equal(t, "prttn", string(f[:j]))
	assert.True(t, IsPartitioned(f, vowel))

	assert.False(t, IsPartitioned([]rune("ab"), vowel))
}
