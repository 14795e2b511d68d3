//go:build unit

package algorithms

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

type sorter func(seq Sequence[int], start, end int, cmp Comparator[int]) error

type TestCaseSort struct {
	name string
	sort sorter
}

var sorters = []TestCaseSort{
	{name: "SelectionSort", sort: SelectionSort[int]},
	{name: "QuickSort", sort: QuickSort[int]},
}

func ascending(a, b int) int  { return a - b }
func descending(a, b int) int { return b - a }

func TestSort(t *testing.T) {
	for _, test := range sorters {
		t.Run(test.name+" ascending", func(t *testing.T) {
			// Prepare
			seq := Slice[int]{5, 6, 7, 1, 3, 2, 4, 9, 8}

			// Execute
			err := test.sort(seq, 0, seq.Len(), ascending)

			// Check
			assert.NoError(t, err, "sort")
			assert.Equal(t, Slice[int]{1, 2, 3, 4, 5, 6, 7, 8, 9}, seq, "ascending order")
		})

		t.Run(test.name+" descending", func(t *testing.T) {
			// Prepare
			seq := Slice[int]{5, 6, 7, 1, 3, 2, 4, 9, 8}

			// Execute
			err := test.sort(seq, 0, seq.Len(), descending)

			// Check
			assert.NoError(t, err, "sort")
			assert.Equal(t, Slice[int]{9, 8, 7, 6, 5, 4, 3, 2, 1}, seq, "descending order")
		})

		t.Run(test.name+" sorted input is unchanged", func(t *testing.T) {
			// Prepare
			seq := Slice[int]{1, 2, 2, 3, 5, 8, 13}

			// Execute
			err := test.sort(seq, 0, seq.Len(), ascending)

			// Check
			assert.NoError(t, err, "sort")
			assert.Equal(t, Slice[int]{1, 2, 2, 3, 5, 8, 13}, seq, "same sequence")
		})

		t.Run(test.name+" sorts only the given range", func(t *testing.T) {
			// Prepare
			seq := Slice[int]{9, 4, 3, 2, 1, 0}

			// Execute
			err := test.sort(seq, 1, 5, ascending)

			// Check
			assert.NoError(t, err, "sort")
			assert.Equal(t, Slice[int]{9, 1, 2, 3, 4, 0}, seq, "outside positions untouched")
		})

		t.Run(test.name+" random input matches slices.Sort", func(t *testing.T) {
			// Prepare
			faker := gofakeit.New(11)
			seq := make(Slice[int], 300)
			for i := range seq {
				seq[i] = faker.IntRange(-50, 50)
			}
			expected := slices.Clone([]int(seq))
			slices.Sort(expected)

			// Execute
			err := test.sort(seq, 0, seq.Len(), ascending)

			// Check
			assert.NoError(t, err, "sort")
			assert.Equal(t, expected, []int(seq), "sorted")
		})

		t.Run(test.name+" rejects bad ranges", func(t *testing.T) {
			// Prepare
			seq := Slice[int]{3, 2, 1}

			// Execute
			errInvalid := test.sort(seq, 2, 1, ascending)
			errOut := test.sort(seq, 0, 4, ascending)
			errNeg := test.sort(seq, -1, 2, ascending)

			// Check
			assert.ErrorIs(t, errInvalid, dserr.InvalidRange{}, "end before start")
			assert.ErrorIs(t, errOut, dserr.OutOfRange{}, "end past length")
			assert.ErrorIs(t, errNeg, dserr.OutOfRange{}, "negative start")
			assert.Equal(t, Slice[int]{3, 2, 1}, seq, "nothing touched")
		})
	}

	t.Run("sorts a linked list in place", func(t *testing.T) {
		// Prepare
		list := linkedlist.New(4, 1, 3, 2)

		// Execute
		err := SortAll[int](FromList(list), ascending)

		// Check
		assert.NoError(t, err, "sort all")
		assert.Equal(t, []int{1, 2, 3, 4}, list.Slice(), "list order")
	})
}

func TestSelect(t *testing.T) {
	isEven := func(v int) bool { return v%2 == 0 }

	t.Run("copies matches in source order", func(t *testing.T) {
		// Prepare
		source := []int{1, 2, 3, 4, 5, 6}
		out := make(Slice[int], len(source))

		// Execute
		next, err := Select(slices.Values(source), out, 0, isEven)

		// Check
		assert.NoError(t, err, "select")
		assert.Equal(t, 3, next, "three written")
		assert.Equal(t, []int{2, 4, 6}, []int(out[:next]), "evens in order")
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, source, "source unmodified")
	})

	t.Run("output too small", func(t *testing.T) {
		// Prepare
		out := make(Slice[int], 2)

		// Execute
		next, err := Select(slices.Values([]int{2, 4, 6}), out, 0, isEven)

		// Check
		assert.ErrorIs(t, err, dserr.OutOfRange{}, "get correct error")
		assert.Equal(t, 2, next, "written up to capacity")
		assert.Equal(t, Slice[int]{2, 4}, out, "partial output kept")
	})

	t.Run("filter from a linked list", func(t *testing.T) {
		// Prepare
		list := linkedlist.New(1, 2, 3, 4, 5, 6)

		// Execute
		matched := Filter(list.All(), isEven)

		// Check
		require.Len(t, matched, 3, "three matches")
		assert.Equal(t, []int{2, 4, 6}, matched, "evens in order")
		assert.Equal(t, 6, list.Len(), "list unmodified")
	})
}
