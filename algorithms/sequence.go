// Package algorithms holds the sort and filter operations. They work on any Sequence, a random-access
// container addressed by position, and order elements with a three-way Comparator.
package algorithms

import (
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/linkedlist"
)

// Comparator - Returns a negative number when a orders before b, zero when they are equal and a positive
// number when a orders after b
type Comparator[T any] func(a, b T) int

// Predicate - Tests one element
type Predicate[T any] func(item T) bool

// Sequence - A random-access container the algorithms can read, write and swap in
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, value T)
}

// Slice - Sequence backed by a Go slice
type Slice[T any] []T

func (S Slice[T]) Len() int {
	return len(S)
}

func (S Slice[T]) At(i int) T {
	return S[i]
}

func (S Slice[T]) Set(i int, value T) {
	S[i] = value
}

// Swap - Exchanges the elements at positions i and j
func Swap[T any](seq Sequence[T], i, j int) {
	if i == j {
		return
	}

	tmp := seq.At(i)
	seq.Set(i, seq.At(j))
	seq.Set(j, tmp)
}

// ListSequence - Sequence view of a linked list. Each access walks from the front, so positional access
// costs O(i); suitable for the short lists kept per town name.
type ListSequence[T any] struct {
	list *linkedlist.List[T]
}

// FromList - Returns a Sequence view of list. Writes through the view change the list.
func FromList[T any](list *linkedlist.List[T]) ListSequence[T] {
	return ListSequence[T]{list: list}
}

func (L ListSequence[T]) Len() int {
	return L.list.Len()
}

func (L ListSequence[T]) At(i int) T {
	v, err := L.list.At(i)
	if err != nil {
		panic(err)
	}

	return v
}

func (L ListSequence[T]) Set(i int, value T) {
	if err := L.list.Set(i, value); err != nil {
		panic(err)
	}
}

// checkRange - Validates [start, end) against seq
func checkRange[T any](seq Sequence[T], start, end int) (err error) {
	if end < start {
		err = dserr.NewInvalidRange(start, end)
		return
	}

	if start < 0 {
		err = dserr.NewOutOfRange(start, seq.Len())
		return
	}

	if end > seq.Len() {
		err = dserr.NewOutOfRange(end, seq.Len())
		return
	}

	return
}
