package openaddressing

import (
	"fmt"
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/hashfunc"
	"github.com/gostonefire/landstat/internal/hash"
	"github.com/gostonefire/landstat/internal/model"
	"github.com/gostonefire/landstat/internal/utils"
	"iter"
)

// OATable - Represents an implementation of the Linear Probing Collision Resolution Technique.
// It uses one flat array of buckets where each bucket holds at most one entry. In case of a collision it
// probes the following buckets, wrapping around, until an empty one is found.
//
// Deleted entries leave a tombstone (model.RecordDeleted) behind. Lookups skip tombstones and stop only
// at an empty bucket, inserts reuse the first tombstone on the probe path. Tombstones count as used when
// deciding whether to grow, so there is always an empty bucket to end a probe, and they are dropped when
// the table grows.
//
// Values are moved when the table grows, so pointers from Ref are only valid until the next insert.
type OATable[K, V any] struct {
	buckets       []bucket[K, V]
	nOccupied     int64
	nDeleted      int64
	nResizes      int64
	hashAlgorithm *hash.LinearProbingHashAlgorithm[K]
	equal         hashfunc.EqualFunc[K]
}

// NewOATable - Returns a pointer to a new, empty Linear Probing table. No buckets are allocated until the
// first insert.
//   - hashFunc selects the home bucket as hashFunc(key) mod capacity
//   - equalFunc decides whether two keys are the same key
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[K, V any](hashFunc hashfunc.HashFunc[K], equalFunc hashfunc.EqualFunc[K]) (table *OATable[K, V], err error) {
	if hashFunc == nil || equalFunc == nil {
		err = fmt.Errorf("both a hash function and an equal function must be given")
		return
	}

	table = &OATable[K, V]{
		hashAlgorithm: hash.NewLinearProbingHashAlgorithm(hashFunc, 0),
		equal:         equalFunc,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		NumberOfBuckets:              int64(len(Q.buckets)),
		NumberOfOccupiedRecords:      Q.nOccupied,
		NumberOfDeletedRecords:       Q.nDeleted,
		NumberOfResizes:              Q.nResizes,
	}

	return
}

// Insert - Adds a new entry.
// An equal key already present makes the call fail without touching the table. Otherwise the table
// first grows if used buckets (occupied and tombstones) reach utils.MaxFillRatio, then the entry is
// placed at the first tombstone or empty bucket on its probe path.
//
// It returns:
//   - err is of type dserr.DuplicateKey if an equal key is already stored
func (Q *OATable[K, V]) Insert(key K, value V) (err error) {
	if _, found := Q.probingForGet(key); found {
		err = dserr.NewDuplicateKey(key)
		return
	}

	_, err = Q.insert(key, value)

	return
}

// Get - Gets the value stored for key.
// It returns:
//   - value is the stored value if found
//   - err is of type dserr.KeyNotFound if no equal key is stored
func (Q *OATable[K, V]) Get(key K) (value V, err error) {
	bucketNo, found := Q.probingForGet(key)
	if !found {
		err = dserr.NewKeyNotFound(key)
		return
	}

	value = Q.buckets[bucketNo].value

	return
}

// Lookup - Gets the value stored for key and whether it was found
func (Q *OATable[K, V]) Lookup(key K) (value V, ok bool) {
	bucketNo, found := Q.probingForGet(key)
	if found {
		value, ok = Q.buckets[bucketNo].value, true
	}

	return
}

// Contains - Returns true if an equal key is stored
func (Q *OATable[K, V]) Contains(key K) bool {
	_, found := Q.probingForGet(key)
	return found
}

// Ref - Returns a pointer to the value stored for key, inserting the zero value of V first if the key
// is absent. The pointer is valid until the next insert that grows the table.
func (Q *OATable[K, V]) Ref(key K) *V {
	bucketNo, found := Q.probingForGet(key)
	if !found {
		var err error
		bucketNo, err = Q.insert(key, *new(V))
		if err != nil {
			// Growth keeps an empty bucket on every probe path
			panic(err)
		}
	}

	return &Q.buckets[bucketNo].value
}

// Delete - Removes the entry for key by turning its bucket into a tombstone
// It returns:
//   - err is of type dserr.KeyNotFound if no equal key is stored
func (Q *OATable[K, V]) Delete(key K) (err error) {
	bucketNo, found := Q.probingForGet(key)
	if !found {
		err = dserr.NewKeyNotFound(key)
		return
	}

	Q.buckets[bucketNo] = bucket[K, V]{state: model.RecordDeleted}
	Q.updateUtilizationInfo(model.RecordOccupied, model.RecordDeleted)

	return
}

// Len - Returns the number of stored entries
func (Q *OATable[K, V]) Len() int64 {
	return Q.nOccupied
}

// Capacity - Returns the number of buckets
func (Q *OATable[K, V]) Capacity() int64 {
	return int64(len(Q.buckets))
}

// FillRatio - Returns stored entries divided by number of buckets
func (Q *OATable[K, V]) FillRatio() float64 {
	return utils.FillRatio(Q.nOccupied, Q.Capacity())
}

// All - Returns a sequence over every key and value in bucket order
func (Q *OATable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range Q.buckets {
			if Q.buckets[i].state != model.RecordOccupied {
				continue
			}
			if !yield(Q.buckets[i].key, Q.buckets[i].value) {
				return
			}
		}
	}
}

// BucketDistribution - Returns 1 for each occupied bucket and 0 for empty buckets and tombstones
func (Q *OATable[K, V]) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, len(Q.buckets))
	for i := range Q.buckets {
		if Q.buckets[i].state == model.RecordOccupied {
			distribution[i] = 1
		}
	}

	return
}
