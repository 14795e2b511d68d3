// Package arena is a generation-checked slot map.
//
// Values are stored in fixed-size chunks that are never moved, so a pointer obtained from Alloc or
// Get stays valid until the slot is freed. Handles carry the generation of the slot they were issued
// for; a handle to a freed (and possibly reused) slot is rejected instead of aliasing the new value.
package arena

// chunkSize - Number of slots allocated at once
const chunkSize = 64

// Handle - Addresses one slot in an Arena. The zero Handle is never issued and acts as "no node".
type Handle struct {
	index      uint32
	generation uint32
}

// Nil - The handle that refers to nothing
var Nil = Handle{}

// IsNil - Returns true if the handle refers to nothing
func (H Handle) IsNil() bool {
	return H.generation == 0
}

// Index - Returns the slot index, stable for the lifetime of the value
func (H Handle) Index() uint32 {
	return H.index
}

type slot[T any] struct {
	value      T
	generation uint32
	used       bool
}

// Arena - Owns values of type T. The zero value is an empty arena ready to use.
type Arena[T any] struct {
	chunks []*[chunkSize]slot[T]
	free   []uint32
	next   uint32
	length int
}

// Alloc - Stores value in a free slot.
// It returns:
//   - handle addressing the new slot
//   - ptr to the stored value
func (A *Arena[T]) Alloc(value T) (handle Handle, ptr *T) {
	var index uint32
	if n := len(A.free); n > 0 {
		index = A.free[n-1]
		A.free = A.free[:n-1]
	} else {
		index = A.next
		A.next++
		if int(index/chunkSize) >= len(A.chunks) {
			A.chunks = append(A.chunks, new([chunkSize]slot[T]))
		}
	}

	s := A.slot(index)
	if s.generation == 0 {
		s.generation = 1
	}
	s.value = value
	s.used = true
	A.length++

	handle = Handle{index: index, generation: s.generation}
	ptr = &s.value

	return
}

// Get - Returns a pointer to the value addressed by handle, or false if the handle is stale or nil
func (A *Arena[T]) Get(handle Handle) (ptr *T, ok bool) {
	if handle.IsNil() || handle.index >= A.next {
		return
	}

	s := A.slot(handle.index)
	if !s.used || s.generation != handle.generation {
		return
	}

	return &s.value, true
}

// Free - Releases the slot addressed by handle. Returns false if the handle was already stale.
func (A *Arena[T]) Free(handle Handle) bool {
	if _, ok := A.Get(handle); !ok {
		return false
	}

	A.release(handle.index)

	return true
}

// Len - Returns the number of live values
func (A *Arena[T]) Len() int {
	return A.length
}

// Reset - Frees every slot. Chunks are kept for reuse and every outstanding handle becomes stale.
func (A *Arena[T]) Reset() {
	for i := uint32(0); i < A.next; i++ {
		if A.slot(i).used {
			A.release(i)
		}
	}
}

// slot - Returns the slot at index, which must have been handed out already
func (A *Arena[T]) slot(index uint32) *slot[T] {
	return &A.chunks[index/chunkSize][index%chunkSize]
}

// release - Zeroes the value and bumps the generation so old handles no longer match
func (A *Arena[T]) release(index uint32) {
	var zero T

	s := A.slot(index)
	s.value = zero
	s.used = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	A.free = append(A.free, index)
	A.length--
}
