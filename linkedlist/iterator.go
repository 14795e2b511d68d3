package linkedlist

import "github.com/gostonefire/landstat/internal/arena"

// Iterator - Forward-only position in a List. The end of the list is an iterator at no node.
// Removing the element an iterator is positioned at invalidates the iterator.
type Iterator[T any] struct {
	list    *List[T]
	current arena.Handle
}

// Begin - Returns an iterator positioned at the first element, or at the end if the list is empty.
// It can be called again at any time to restart the iteration.
func (L *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: L, current: L.front}
}

// End - Returns the iterator that every iteration finishes at
func (L *List[T]) End() Iterator[T] {
	return Iterator[T]{list: L, current: arena.Nil}
}

// Valid - Returns true while the iterator is positioned at an element
func (I Iterator[T]) Valid() bool {
	return !I.current.IsNil()
}

// Value - Returns the element at the current position
func (I Iterator[T]) Value() T {
	return I.list.node(I.current).value
}

// Ref - Returns a pointer to the element at the current position
func (I Iterator[T]) Ref() *T {
	return &I.list.node(I.current).value
}

// Next - Moves to the following element. At the end it stays at the end.
func (I *Iterator[T]) Next() {
	if I.current.IsNil() {
		return
	}

	I.current = I.list.node(I.current).next
}

// Equal - Returns true if both iterators are at the same position of the same list
func (I Iterator[T]) Equal(other Iterator[T]) bool {
	return I.list == other.list && I.current == other.current
}
