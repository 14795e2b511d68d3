package algorithms

import (
	"iter"
)

// SelectionSort - Sorts the elements in positions [start, end) of seq so that cmp never reports an element
// as ordering before the one preceding it. For each position it finds the minimum of the remainder and
// swaps it into place. Equal elements may change their relative order.
// It returns:
//   - err is of type dserr.InvalidRange if end < start, or dserr.OutOfRange if the range leaves seq
func SelectionSort[T any](seq Sequence[T], start, end int, cmp Comparator[T]) (err error) {
	if err = checkRange(seq, start, end); err != nil {
		return
	}

	for i := start; i < end-1; i++ {
		minPos := i
		for j := i + 1; j < end; j++ {
			if cmp(seq.At(j), seq.At(minPos)) < 0 {
				minPos = j
			}
		}
		Swap(seq, i, minPos)
	}

	return
}

// QuickSort - Sorts the elements in positions [start, end) of seq by recursive partitioning around the
// first element of each range. Errors as for SelectionSort.
func QuickSort[T any](seq Sequence[T], start, end int, cmp Comparator[T]) (err error) {
	if err = checkRange(seq, start, end); err != nil {
		return
	}

	quickSort(seq, start, end, cmp)

	return
}

// quickSort - Partitions [start, end) so that everything before the pivot's final position is less than
// the pivot, then sorts both sides
func quickSort[T any](seq Sequence[T], start, end int, cmp Comparator[T]) {
	if end-start < 2 {
		return
	}

	pivot := seq.At(start)
	boundary := start + 1
	for i := start + 1; i < end; i++ {
		if cmp(seq.At(i), pivot) < 0 {
			Swap(seq, i, boundary)
			boundary++
		}
	}

	Swap(seq, start, boundary-1)

	quickSort(seq, start, boundary-1, cmp)
	quickSort(seq, boundary, end, cmp)
}

// SortAll - Sorts every element of seq with QuickSort
func SortAll[T any](seq Sequence[T], cmp Comparator[T]) error {
	return QuickSort(seq, 0, seq.Len(), cmp)
}

// Select - Copies every element of source that satisfies pred into out, starting at position and keeping
// the source order. Source is not modified.
// It returns:
//   - next is the position after the last element written
//   - err is of type dserr.OutOfRange if out has no room for a match; elements written before that stay
func Select[T any](source iter.Seq[T], out Sequence[T], position int, pred Predicate[T]) (next int, err error) {
	next = position
	if next < 0 {
		err = checkRange(out, next, next)
		return
	}

	for item := range source {
		if !pred(item) {
			continue
		}

		if next >= out.Len() {
			err = checkRange(out, next, next+1)
			return
		}

		out.Set(next, item)
		next++
	}

	return
}

// Filter - Returns the elements of source that satisfy pred, in source order
func Filter[T any](source iter.Seq[T], pred Predicate[T]) (matched []T) {
	for item := range source {
		if pred(item) {
			matched = append(matched, item)
		}
	}

	return
}
