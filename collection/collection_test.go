package collection

import (
	"container/list"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Slice(t *testing.T) {
	s := Slice[int]{10, 20, 30}

	assert.Equal(t, 0, s.StartIndex())
	assert.Equal(t, 3, s.EndIndex())
	assert.Equal(t, 1, s.IndexAfter(0))
	assert.Equal(t, 3, s.IndexAfter(2))
	assert.Equal(t, 2, s.IndexBefore(3))
	assert.Equal(t, 3, s.Distance(0, 3))
	assert.Equal(t, 0, s.Distance(2, 2))
	assert.Equal(t, 3, s.Offset(1, 2))

	s.Swap(0, 2)
	assert.Equal(t, Slice[int]{30, 20, 10}, s)
	assert.Equal(t, 20, s.At(1))

	assert.Panics(t, func() { s.IndexAfter(3) })
	assert.Panics(t, func() { s.IndexBefore(0) })
	assert.Panics(t, func() { s.Offset(2, 2) })
	assert.Panics(t, func() { s.Offset(1, -1) })
	assert.Panics(t, func() { s.Distance(2, 1) })
}

func Test_List(t *testing.T) {
	l := NewList(1, 2, 3)
	require.Equal(t, 3, l.Len())

	var got []int
	for e := l.StartIndex(); e != l.EndIndex(); e = l.IndexAfter(e) {
		got = append(got, l.At(e))
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	last := l.IndexBefore(l.EndIndex())
	assert.Equal(t, 3, l.At(last))
	l.Swap(l.StartIndex(), last)
	assert.Equal(t, []int{3, 2, 1}, l.Values())

	assert.Panics(t, func() { l.IndexAfter(l.EndIndex()) })
	assert.Panics(t, func() { l.IndexBefore(l.StartIndex()) })
	assert.Panics(t, func() { NewList[int]().IndexBefore(nil) })
}

func Test_ListEndIndex(t *testing.T) {
	assertionFailure := func(f func()) (failed bool) {
		defer func() {
			if err, ok := recover().(error); ok {
				failed = errors.HasAssertionFailure(err)
			}
		}()
		f()
		return false
	}

	l := NewList(1, 2)
	assert.True(t, assertionFailure(func() { l.At(l.EndIndex()) }))
	assert.True(t, assertionFailure(func() { l.Swap(l.EndIndex(), l.StartIndex()) }))
	assert.True(t, assertionFailure(func() { l.Swap(l.StartIndex(), nil) }))
	assert.Equal(t, []int{1, 2}, l.Values())
}

func Test_Linear(t *testing.T) {
	l := NewList(5, 6, 7, 8)
	lin := Linear[*list.Element, int](l)

	assert.Equal(t, 4, lin.Distance(lin.StartIndex(), lin.EndIndex()))
	third := lin.Offset(lin.StartIndex(), 2)
	assert.Equal(t, 7, lin.At(third))
	assert.Equal(t, 2, lin.Distance(third, lin.EndIndex()))
	assert.Nil(t, lin.Offset(third, 2))

	assert.Panics(t, func() { lin.Offset(third, 3) })
	assert.Panics(t, func() { lin.Offset(third, -1) })
	assert.Panics(t, func() { lin.Distance(third, lin.StartIndex()) })

	empty := Linear[*list.Element, int](NewList[int]())
	assert.Equal(t, 0, empty.Distance(empty.StartIndex(), empty.EndIndex()))
}

func Test_Range(t *testing.T) {
	r := NewRange(2, 5)
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 3, Len[int, int](Slice[int]{0, 0, 0, 0, 0}, r))
	assert.True(t, NewRange(4, 4).IsEmpty())

	defer func() {
		v := recover()
		require.NotNil(t, v)
		err, ok := v.(error)
		require.True(t, ok)
		assert.True(t, errors.HasAssertionFailure(err))
	}()
	NewRange(5, 2)
}

func Test_Predicates(t *testing.T) {
	errBoom := errors.New("boom")
	even := Match(func(v int) bool { return v%2 == 0 })

	ok, err := even(4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Not(even)(4)
	require.NoError(t, err)
	assert.False(t, ok)

	failing := Predicate[int](func(int) (bool, error) { return true, errBoom })
	_, err = Not(failing)(1)
	assert.ErrorIs(t, err, errBoom)

	less := Order(func(a, b string) bool { return a < b })
	ok, err = less("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
}
