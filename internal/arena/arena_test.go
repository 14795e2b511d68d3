//go:build unit

package arena

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestArena_Alloc(t *testing.T) {
	t.Run("stores and returns values", func(t *testing.T) {
		// Prepare
		var a Arena[string]

		// Execute
		h1, p1 := a.Alloc("first")
		h2, _ := a.Alloc("second")

		// Check
		assert.False(t, h1.IsNil(), "handle is not nil")
		assert.NotEqual(t, h1, h2, "handles differ")
		assert.Equal(t, 2, a.Len(), "two live values")

		v, ok := a.Get(h1)
		assert.True(t, ok, "value found")
		assert.Same(t, p1, v, "same pointer as returned from alloc")
		assert.Equal(t, "first", *v, "correct value")
	})

	t.Run("pointers survive growth past several chunks", func(t *testing.T) {
		// Prepare
		var a Arena[int]
		_, first := a.Alloc(-1)

		// Execute
		for i := 0; i < chunkSize*5; i++ {
			a.Alloc(i)
		}

		// Check
		assert.Equal(t, -1, *first, "first value intact")
		*first = 42
		v, ok := a.Get(Handle{index: 0, generation: 1})
		assert.True(t, ok, "found by handle")
		assert.Equal(t, 42, *v, "write through pointer visible")
	})
}

func TestArena_Free(t *testing.T) {
	t.Run("stale handle is rejected after reuse", func(t *testing.T) {
		// Prepare
		var a Arena[string]
		h1, _ := a.Alloc("old")

		// Execute
		freed := a.Free(h1)
		h2, _ := a.Alloc("new")

		// Check
		assert.True(t, freed, "freed")
		assert.Equal(t, h1.Index(), h2.Index(), "slot reused")
		_, ok := a.Get(h1)
		assert.False(t, ok, "old handle rejected")
		v, ok := a.Get(h2)
		assert.True(t, ok, "new handle accepted")
		assert.Equal(t, "new", *v, "new value")
		assert.False(t, a.Free(h1), "double free rejected")
	})

	t.Run("nil handle is never found", func(t *testing.T) {
		// Prepare
		var a Arena[int]
		a.Alloc(1)

		// Execute
		_, ok := a.Get(Nil)

		// Check
		assert.False(t, ok, "nil handle not found")
	})
}

func TestArena_Reset(t *testing.T) {
	t.Run("invalidates every handle", func(t *testing.T) {
		// Prepare
		var a Arena[int]
		handles := make([]Handle, 0, 10)
		for i := 0; i < 10; i++ {
			h, _ := a.Alloc(i)
			handles = append(handles, h)
		}

		// Execute
		a.Reset()

		// Check
		assert.Equal(t, 0, a.Len(), "empty after reset")
		for _, h := range handles {
			_, ok := a.Get(h)
			assert.False(t, ok, "handle stale after reset")
		}

		h, _ := a.Alloc(99)
		v, ok := a.Get(h)
		assert.True(t, ok, "alloc after reset works")
		assert.Equal(t, 99, *v, "correct value")
	})
}
