//go:build unit

package linkedlist

import (
	"github.com/gostonefire/landstat/dserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestList_PushBack(t *testing.T) {
	t.Run("appends in order and returns stable references", func(t *testing.T) {
		// Prepare
		l := New[int]()

		// Execute
		first := l.PushBack(1)
		for i := 2; i <= 500; i++ {
			l.PushBack(i)
		}

		// Check
		assert.Equal(t, 500, l.Len(), "all values stored")
		assert.Equal(t, 1, *first, "first reference still valid")
		*first = 100
		v, err := l.At(0)
		assert.NoError(t, err, "get first value")
		assert.Equal(t, 100, v, "write through reference visible")
		last, err := l.At(499)
		assert.NoError(t, err, "get last value")
		assert.Equal(t, 500, last, "last value")
	})
}

func TestList_PushFront(t *testing.T) {
	t.Run("prepends", func(t *testing.T) {
		// Prepare
		l := New(2, 3)

		// Execute
		l.PushFront(1)

		// Check
		assert.Equal(t, []int{1, 2, 3}, l.Slice(), "prepended")
	})

	t.Run("into empty list sets both ends", func(t *testing.T) {
		// Prepare
		l := New[string]()

		// Execute
		l.PushFront("a")
		l.PushBack("b")

		// Check
		assert.Equal(t, []string{"a", "b"}, l.Slice(), "both ends linked")
	})
}

func TestList_PullFront(t *testing.T) {
	t.Run("removes in FIFO order", func(t *testing.T) {
		// Prepare
		l := New("a", "b", "c")

		// Execute
		v1, err1 := l.PullFront()
		v2, err2 := l.PullFront()

		// Check
		assert.NoError(t, err1, "first pull")
		assert.NoError(t, err2, "second pull")
		assert.Equal(t, "a", v1, "first in first out")
		assert.Equal(t, "b", v2, "second in second out")
		assert.Equal(t, 1, l.Len(), "one left")
	})

	t.Run("fails on empty list", func(t *testing.T) {
		// Prepare
		l := New(1)
		_, err := l.PullFront()
		require.NoError(t, err, "pull only element")

		// Execute
		_, err = l.PullFront()

		// Check
		assert.ErrorIs(t, err, dserr.EmptyCollection{}, "get correct error")
		assert.True(t, l.IsEmpty(), "empty")

		l.PushBack(2)
		assert.Equal(t, []int{2}, l.Slice(), "usable after being emptied")
	})

	t.Run("interleaved with push back behaves as a queue", func(t *testing.T) {
		// Prepare
		l := New[int]()
		var out []int

		// Execute
		for i := 0; i < 100; i++ {
			l.PushBack(i)
			if i%3 == 2 {
				v, err := l.PullFront()
				require.NoError(t, err, "pull")
				out = append(out, v)
			}
		}
		for !l.IsEmpty() {
			v, _ := l.PullFront()
			out = append(out, v)
		}

		// Check
		require.Len(t, out, 100, "every value pulled")
		for i, v := range out {
			assert.Equalf(t, i, v, "value #%d in order", i)
		}
	})
}

func TestList_At(t *testing.T) {
	t.Run("fails outside valid positions", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 3)

		// Execute
		_, errNeg := l.At(-1)
		_, errEnd := l.At(3)
		errSet := l.Set(5, 0)

		// Check
		assert.ErrorIs(t, errNeg, dserr.OutOfRange{}, "negative index")
		assert.ErrorIs(t, errEnd, dserr.OutOfRange{}, "index equal to size")
		assert.ErrorIs(t, errSet, dserr.OutOfRange{}, "set beyond size")
	})

	t.Run("set replaces value", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 3)

		// Execute
		err := l.Set(1, 20)

		// Check
		assert.NoError(t, err, "set value")
		assert.Equal(t, []int{1, 20, 3}, l.Slice(), "replaced")
	})

	t.Run("front returns first without removing", func(t *testing.T) {
		// Prepare
		l := New(7, 8)

		// Execute
		v, err := l.Front()

		// Check
		assert.NoError(t, err, "front")
		assert.Equal(t, 7, v, "first value")
		assert.Equal(t, 2, l.Len(), "nothing removed")

		_, err = New[int]().Front()
		assert.ErrorIs(t, err, dserr.EmptyCollection{}, "front of empty list")
	})
}

func TestList_Clear(t *testing.T) {
	t.Run("releases all nodes", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 3)

		// Execute
		l.Clear()

		// Check
		assert.Equal(t, 0, l.Len(), "no elements")
		assert.False(t, l.Begin().Valid(), "begin is end")
		l.PushBack(4)
		assert.Equal(t, []int{4}, l.Slice(), "usable after clear")
	})
}

func TestList_Clone(t *testing.T) {
	t.Run("deep copies preserving order", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 3)

		// Execute
		c := l.Clone()
		_ = c.Set(0, 10)
		c.PushBack(4)

		// Check
		assert.Equal(t, []int{1, 2, 3}, l.Slice(), "original unchanged")
		assert.Equal(t, []int{10, 2, 3, 4}, c.Slice(), "copy modified")
	})
}

func TestList_Iterator(t *testing.T) {
	t.Run("walks front to back and ends at the end sentinel", func(t *testing.T) {
		// Prepare
		l := New("x", "y", "z")
		var seen []string

		// Execute
		it := l.Begin()
		for ; it.Valid(); it.Next() {
			seen = append(seen, it.Value())
		}

		// Check
		assert.Equal(t, []string{"x", "y", "z"}, seen, "all values in order")
		assert.True(t, it.Equal(l.End()), "finished at end")
		it.Next()
		assert.False(t, it.Valid(), "next at end stays at end")

		restarted := l.Begin()
		assert.Equal(t, "x", restarted.Value(), "restartable")
	})

	t.Run("refs allow in place updates", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 3)

		// Execute
		for ref := range l.Refs() {
			*ref *= 10
		}

		// Check
		assert.Equal(t, []int{10, 20, 30}, l.Slice(), "updated in place")
	})

	t.Run("all stops early when asked", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 3, 4)
		var seen []int

		// Execute
		for v := range l.All() {
			if v == 3 {
				break
			}
			seen = append(seen, v)
		}

		// Check
		assert.Equal(t, []int{1, 2}, seen, "stopped at 3")
	})
}
