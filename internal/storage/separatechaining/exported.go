package separatechaining

import (
	"fmt"
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/hashfunc"
	"github.com/gostonefire/landstat/internal/arena"
	"github.com/gostonefire/landstat/internal/hash"
	"github.com/gostonefire/landstat/internal/model"
	"github.com/gostonefire/landstat/internal/utils"
	"iter"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket heads a singly linked chain of entries whose key hashed to it. Entries are allocated
// once and only re-linked when the table grows, so a pointer to a stored value stays valid for the
// lifetime of the table.
type SCTable[K, V any] struct {
	entries       arena.Arena[entry[K, V]]
	buckets       []arena.Handle
	nOccupied     int64
	nResizes      int64
	hashAlgorithm *hash.SeparateChainingHashAlgorithm[K]
	equal         hashfunc.EqualFunc[K]
}

// NewSCTable - Returns a pointer to a new, empty Separate Chaining table. No buckets are allocated
// until the first insert.
//   - hashFunc selects the bucket as hashFunc(key) mod capacity
//   - equalFunc decides whether two keys are the same key
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable[K, V any](hashFunc hashfunc.HashFunc[K], equalFunc hashfunc.EqualFunc[K]) (table *SCTable[K, V], err error) {
	if hashFunc == nil || equalFunc == nil {
		err = fmt.Errorf("both a hash function and an equal function must be given")
		return
	}

	table = &SCTable[K, V]{
		hashAlgorithm: hash.NewSeparateChainingHashAlgorithm(hashFunc, 0),
		equal:         equalFunc,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBuckets:              int64(len(S.buckets)),
		NumberOfOccupiedRecords:      S.nOccupied,
		NumberOfResizes:              S.nResizes,
	}

	return
}

// Insert - Adds a new entry.
// An equal key already present makes the call fail without touching the table. Otherwise the table
// first grows if it is filled to utils.MaxFillRatio or more, then links the entry at the head of
// its bucket's chain.
//
// It returns:
//   - err is of type dserr.DuplicateKey if an equal key is already stored
func (S *SCTable[K, V]) Insert(key K, value V) (err error) {
	if _, found := S.find(key); found != nil {
		err = dserr.NewDuplicateKey(key)
		return
	}

	S.insert(key, value)

	return
}

// Get - Gets the value stored for key.
// It returns:
//   - value is the stored value if found
//   - err is of type dserr.KeyNotFound if no equal key is stored
func (S *SCTable[K, V]) Get(key K) (value V, err error) {
	_, e := S.find(key)
	if e == nil {
		err = dserr.NewKeyNotFound(key)
		return
	}

	value = e.value

	return
}

// Lookup - Gets the value stored for key and whether it was found
func (S *SCTable[K, V]) Lookup(key K) (value V, ok bool) {
	if _, e := S.find(key); e != nil {
		value, ok = e.value, true
	}

	return
}

// Contains - Returns true if an equal key is stored
func (S *SCTable[K, V]) Contains(key K) bool {
	_, e := S.find(key)
	return e != nil
}

// Ref - Returns a pointer to the value stored for key, inserting the zero value of V first if the key
// is absent. The pointer stays valid for the lifetime of the table.
func (S *SCTable[K, V]) Ref(key K) *V {
	if _, e := S.find(key); e != nil {
		return &e.value
	}

	return &S.insert(key, *new(V)).value
}

// Len - Returns the number of stored entries
func (S *SCTable[K, V]) Len() int64 {
	return S.nOccupied
}

// Capacity - Returns the number of buckets
func (S *SCTable[K, V]) Capacity() int64 {
	return int64(len(S.buckets))
}

// FillRatio - Returns stored entries divided by number of buckets
func (S *SCTable[K, V]) FillRatio() float64 {
	return utils.FillRatio(S.nOccupied, S.Capacity())
}

// All - Returns a sequence over every key and value, bucket by bucket
func (S *SCTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range S.buckets {
			for h := head; !h.IsNil(); {
				e := S.entry(h)
				if !yield(e.key, e.value) {
					return
				}
				h = e.next
			}
		}
	}
}

// BucketDistribution - Returns the number of entries in each bucket
func (S *SCTable[K, V]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, len(S.buckets))
	for i, head := range S.buckets {
		for h := head; !h.IsNil(); h = S.entry(h).next {
			distribution[i]++
		}
	}

	return
}
