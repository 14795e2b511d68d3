package separatechaining

import (
	"github.com/gostonefire/landstat/internal/arena"
	"github.com/gostonefire/landstat/internal/utils"
)

// entry - One key/value pair and the link to the next entry in the same bucket
type entry[K, V any] struct {
	key   K
	value V
	next  arena.Handle
}

// find - Walks the chain of key's bucket and returns the first entry with an equal key, or nil
func (S *SCTable[K, V]) find(key K) (handle arena.Handle, e *entry[K, V]) {
	if len(S.buckets) == 0 {
		return
	}

	bucketNo := S.hashAlgorithm.HashFunc1(key)
	for h := S.buckets[bucketNo]; !h.IsNil(); h = e.next {
		e = S.entry(h)
		if S.equal(key, e.key) {
			handle = h
			return
		}
	}

	return arena.Nil, nil
}

// insert - Grows if needed and links a new entry at the head of its bucket. The key must not be present.
func (S *SCTable[K, V]) insert(key K, value V) (e *entry[K, V]) {
	if utils.NeedsGrowth(S.nOccupied, int64(len(S.buckets))) {
		S.grow()
	}

	bucketNo := S.hashAlgorithm.HashFunc1(key)

	var h arena.Handle
	h, e = S.entries.Alloc(entry[K, V]{key: key, value: value, next: S.buckets[bucketNo]})
	S.buckets[bucketNo] = h
	S.nOccupied++

	return
}

// grow - Allocates a bucket array of the next capacity and re-links every entry into it.
// Entries are not copied, only their next links change.
func (S *SCTable[K, V]) grow() {
	newCapacity := utils.NextCapacity(int64(len(S.buckets)))
	newBuckets := make([]arena.Handle, newCapacity)
	S.hashAlgorithm.SetTableSize(newCapacity)

	for _, head := range S.buckets {
		h := head
		for !h.IsNil() {
			e := S.entry(h)
			next := e.next

			bucketNo := S.hashAlgorithm.HashFunc1(e.key)
			e.next = newBuckets[bucketNo]
			newBuckets[bucketNo] = h

			h = next
		}
	}

	S.buckets = newBuckets
	S.nResizes++
}

// entry - Returns the entry addressed by h, which must be live
func (S *SCTable[K, V]) entry(h arena.Handle) *entry[K, V] {
	e, ok := S.entries.Get(h)
	if !ok {
		panic("separatechaining: stale entry handle")
	}

	return e
}
