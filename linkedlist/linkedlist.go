// Package linkedlist is a singly-linked sequence with O(1) insertion at both ends and removal at the front.
//
// Nodes live in an arena and link to each other by handle. Values are never moved once stored, so the
// pointers returned by PushBack, PushFront and Ref stay valid until the element is removed or the list
// is cleared.
package linkedlist

import (
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/internal/arena"
	"iter"
)

type node[T any] struct {
	value T
	next  arena.Handle
}

// List - A singly-linked sequence. The zero value is an empty list ready to use.
type List[T any] struct {
	nodes arena.Arena[node[T]]
	front arena.Handle
	back  arena.Handle
	size  int
}

// New - Returns a pointer to a new list holding values in the given order
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Len - Returns the number of elements
func (L *List[T]) Len() int {
	return L.size
}

// IsEmpty - Returns true if the list holds no elements
func (L *List[T]) IsEmpty() bool {
	return L.size == 0
}

// PushBack - Appends value after the last element.
// It returns a pointer to the stored value.
func (L *List[T]) PushBack(value T) *T {
	h, n := L.nodes.Alloc(node[T]{value: value})

	if L.back.IsNil() {
		L.front = h
	} else {
		L.node(L.back).next = h
	}
	L.back = h
	L.size++

	return &n.value
}

// PushFront - Inserts value before the first element.
// It returns a pointer to the stored value.
func (L *List[T]) PushFront(value T) *T {
	h, n := L.nodes.Alloc(node[T]{value: value, next: L.front})

	L.front = h
	if L.back.IsNil() {
		L.back = h
	}
	L.size++

	return &n.value
}

// PullFront - Removes the earliest inserted element that is still present.
// It returns:
//   - value is the removed element
//   - err is of type dserr.EmptyCollection if the list has no elements
func (L *List[T]) PullFront() (value T, err error) {
	if L.front.IsNil() {
		err = dserr.EmptyCollection{}
		return
	}

	h := L.front
	n := L.node(h)
	value = n.value

	L.front = n.next
	if L.front.IsNil() {
		L.back = arena.Nil
	}
	L.nodes.Free(h)
	L.size--

	return
}

// Front - Returns the first element without removing it, or dserr.EmptyCollection
func (L *List[T]) Front() (value T, err error) {
	if L.front.IsNil() {
		err = dserr.EmptyCollection{}
		return
	}

	value = L.node(L.front).value

	return
}

// At - Returns the element at index, walking from the front.
// It returns:
//   - value is the element at index
//   - err is of type dserr.OutOfRange if index is not a valid position
func (L *List[T]) At(index int) (value T, err error) {
	ref, err := L.Ref(index)
	if err != nil {
		return
	}

	value = *ref

	return
}

// Ref - Returns a pointer to the element at index, or dserr.OutOfRange
func (L *List[T]) Ref(index int) (ref *T, err error) {
	if index < 0 || index >= L.size {
		err = dserr.NewOutOfRange(index, L.size)
		return
	}

	h := L.front
	for i := 0; i < index; i++ {
		h = L.node(h).next
	}

	ref = &L.node(h).value

	return
}

// Set - Replaces the element at index, or returns dserr.OutOfRange
func (L *List[T]) Set(index int, value T) (err error) {
	ref, err := L.Ref(index)
	if err != nil {
		return
	}

	*ref = value

	return
}

// Clear - Releases every node. Pointers previously handed out must no longer be used.
func (L *List[T]) Clear() {
	L.nodes.Reset()
	L.front = arena.Nil
	L.back = arena.Nil
	L.size = 0
}

// Clone - Returns a deep copy of the chain with the same order. Values are copied with plain assignment.
func (L *List[T]) Clone() *List[T] {
	c := &List[T]{}
	for it := L.Begin(); it.Valid(); it.Next() {
		c.PushBack(it.Value())
	}

	return c
}

// All - Returns a sequence of the elements from front to back
func (L *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := L.Begin(); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Refs - Returns a sequence of pointers to the elements from front to back
func (L *List[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := L.Begin(); it.Valid(); it.Next() {
			if !yield(it.Ref()) {
				return
			}
		}
	}
}

// Slice - Returns the elements from front to back in a new slice
func (L *List[T]) Slice() []T {
	s := make([]T, 0, L.size)
	for v := range L.All() {
		s = append(s, v)
	}

	return s
}

// node - Returns the node addressed by h, which must be live
func (L *List[T]) node(h arena.Handle) *node[T] {
	n, ok := L.nodes.Get(h)
	if !ok {
		panic("linkedlist: stale node handle")
	}

	return n
}
