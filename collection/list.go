package collection

import (
	"container/list"

	"github.com/cockroachdb/errors"
)

// List is a doubly linked sequence. It can step in both directions but has no
// O(1) Distance or Offset; wrap it with Linear to search it.
//
// Indices are list elements; EndIndex is nil.
type List[T any] struct {
	l *list.List
}

var _ MutableBidirectional[*list.Element, int] = (*List[int])(nil)

func NewList[T any](values ...T) *List[T] {
	l := &List[T]{l: list.New()}
	for _, v := range values {
		l.l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int {
	return l.l.Len()
}

func (l *List[T]) StartIndex() *list.Element {
	return l.l.Front()
}

func (l *List[T]) EndIndex() *list.Element {
	return nil
}

func (l *List[T]) IndexAfter(e *list.Element) *list.Element {
	if e == nil {
		panic(errors.AssertionFailedf("no index after the end of a list"))
	}
	return e.Next()
}

func (l *List[T]) IndexBefore(e *list.Element) *list.Element {
	if e == nil {
		if l.l.Len() == 0 {
			panic(errors.AssertionFailedf("no index before the start of an empty list"))
		}
		return l.l.Back()
	}

	prev := e.Prev()
	if prev == nil {
		panic(errors.AssertionFailedf("no index before the start of a list"))
	}
	return prev
}

func (l *List[T]) At(e *list.Element) T {
	if e == nil {
		panic(errors.AssertionFailedf("no element at the end of a list"))
	}
	return e.Value.(T)
}

func (l *List[T]) Swap(a, b *list.Element) {
	if a == nil || b == nil {
		panic(errors.AssertionFailedf("cannot swap the end of a list"))
	}
	a.Value, b.Value = b.Value, a.Value
}

// Values copies the elements out in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.l.Len())
	for e := l.l.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(T))
	}
	return values
}
