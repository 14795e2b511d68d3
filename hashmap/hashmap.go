// Package hashmap is the public face of the hash tables. A HashMap is backed by either the Separate
// Chaining or the Linear Probing implementation, chosen with a crt constant when it is created; both give
// the same insert and lookup contract.
package hashmap

import (
	"fmt"
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/hashfunc"
	"github.com/gostonefire/landstat/internal/model"
	"github.com/gostonefire/landstat/internal/storage/openaddressing"
	"github.com/gostonefire/landstat/internal/storage/separatechaining"
	"iter"
)

// storage - Interface for any hash table implementation
type storage[K, V any] interface {
	Insert(key K, value V) (err error)
	Get(key K) (value V, err error)
	Lookup(key K) (value V, ok bool)
	Contains(key K) bool
	Ref(key K) *V
	Len() int64
	Capacity() int64
	FillRatio() float64
	All() iter.Seq2[K, V]
	BucketDistribution() []int64
	GetStorageParameters() model.StorageParameters
}

// deleter - Implemented by storages that support removal
type deleter[K any] interface {
	Delete(key K) (err error)
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - DeletedRecords is the number of tombstones (always 0 for Separate Chaining)
//   - Capacity is the number of buckets
//   - FillRatio is Records divided by Capacity
//   - Resizes is the number of times the table has grown
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Records            int64
	DeletedRecords     int64
	Capacity           int64
	FillRatio          float64
	Resizes            int64
	BucketDistribution []int64
}

// HashMap - The main implementation struct
type HashMap[K, V any] struct {
	storage   storage[K, V]
	technique int
}

// New - Returns a new, empty hash map.
//   - technique is crt.SeparateChaining or crt.LinearProbing
//   - hashFunc gives the hash value that selects the bucket (hash mod capacity)
//   - equalFunc decides whether two keys are the same key
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal go Error which should be nil if everything went ok
func New[K, V any](technique int, hashFunc hashfunc.HashFunc[K], equalFunc hashfunc.EqualFunc[K]) (hashMap *HashMap[K, V], err error) {
	var s storage[K, V]

	switch technique {
	case crt.SeparateChaining:
		s, err = separatechaining.NewSCTable[K, V](hashFunc, equalFunc)
	case crt.LinearProbing:
		s, err = openaddressing.NewOATable[K, V](hashFunc, equalFunc)
	default:
		err = crt.UnknownTechnique{}
	}
	if err != nil {
		err = fmt.Errorf("error while creating %s hash map: %w", crt.Name(technique), err)
		return
	}

	hashMap = &HashMap[K, V]{storage: s, technique: technique}

	return
}

// NewStringMap - Returns a new hash map keyed by strings, hashed with hashfunc.String
func NewStringMap[V any](technique int) (hashMap *HashMap[string, V], err error) {
	return New[string, V](technique, hashfunc.String, hashfunc.Equal[string])
}

// Technique - Returns the crt constant the map was created with
func (H *HashMap[K, V]) Technique() int {
	return H.technique
}

// Insert - Adds a new entry, failing with dserr.DuplicateKey if an equal key is already stored.
// A rejected insert leaves the map untouched.
func (H *HashMap[K, V]) Insert(key K, value V) error {
	return H.storage.Insert(key, value)
}

// Get - Returns the value stored for key, or dserr.KeyNotFound
func (H *HashMap[K, V]) Get(key K) (V, error) {
	return H.storage.Get(key)
}

// Lookup - Returns the value stored for key and whether it was found
func (H *HashMap[K, V]) Lookup(key K) (V, bool) {
	return H.storage.Lookup(key)
}

// Contains - Returns true if an equal key is stored
func (H *HashMap[K, V]) Contains(key K) bool {
	return H.storage.Contains(key)
}

// Ref - Returns a pointer to the value for key, inserting the zero value of V when absent.
// With Separate Chaining the pointer is stable for the life of the map; with Linear Probing it is only
// valid until the next insert.
func (H *HashMap[K, V]) Ref(key K) *V {
	return H.storage.Ref(key)
}

// Delete - Removes the entry for key. Only Linear Probing supports removal.
func (H *HashMap[K, V]) Delete(key K) (err error) {
	d, ok := H.storage.(deleter[K])
	if !ok {
		err = fmt.Errorf("delete is not supported with %s", crt.Name(H.technique))
		return
	}

	return d.Delete(key)
}

// Len - Returns the number of stored entries
func (H *HashMap[K, V]) Len() int64 {
	return H.storage.Len()
}

// Capacity - Returns the number of buckets
func (H *HashMap[K, V]) Capacity() int64 {
	return H.storage.Capacity()
}

// All - Returns a sequence over every key and value, in no particular order
func (H *HashMap[K, V]) All() iter.Seq2[K, V] {
	return H.storage.All()
}

// Stat - Returns statistics on usage and distribution over buckets
func (H *HashMap[K, V]) Stat() (stat HashMapStat) {
	sp := H.storage.GetStorageParameters()

	stat = HashMapStat{
		Records:            sp.NumberOfOccupiedRecords,
		DeletedRecords:     sp.NumberOfDeletedRecords,
		Capacity:           sp.NumberOfBuckets,
		FillRatio:          H.storage.FillRatio(),
		Resizes:            sp.NumberOfResizes,
		BucketDistribution: H.storage.BucketDistribution(),
	}

	return
}
