package openaddressing

import (
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/internal/model"
	"github.com/gostonefire/landstat/internal/utils"
)

// bucket - One slot of the table with its state
type bucket[K, V any] struct {
	state uint8
	key   K
	value V
}

// insert - Grows if needed and places a new entry. The key must not be present.
func (Q *OATable[K, V]) insert(key K, value V) (bucketNo int64, err error) {
	if utils.NeedsGrowth(Q.nOccupied+Q.nDeleted, int64(len(Q.buckets))) {
		err = Q.grow()
		if err != nil {
			return
		}
	}

	bucketNo, err = Q.probingForSet(key)
	if err != nil {
		return
	}

	fromState := Q.buckets[bucketNo].state
	Q.buckets[bucketNo] = bucket[K, V]{state: model.RecordOccupied, key: key, value: value}
	Q.updateUtilizationInfo(fromState, model.RecordOccupied)

	return
}

// grow - Allocates an all-empty bucket array of the next capacity and reinserts every occupied bucket
// using the same probing. Tombstones are not carried over.
func (Q *OATable[K, V]) grow() (err error) {
	old := Q.buckets

	newCapacity := utils.NextCapacity(int64(len(old)))
	Q.buckets = make([]bucket[K, V], newCapacity)
	Q.hashAlgorithm.SetTableSize(newCapacity)
	Q.nOccupied = 0
	Q.nDeleted = 0

	var bucketNo int64
	for i := range old {
		if old[i].state != model.RecordOccupied {
			continue
		}

		bucketNo, err = Q.probingForSet(old[i].key)
		if err != nil {
			return
		}
		Q.buckets[bucketNo] = old[i]
		Q.nOccupied++
	}

	Q.nResizes++

	return
}

// probingForGet - Is the Probing Collision Resolution Technique algorithm for finding the bucket of a key.
// Tombstones are stepped over, an empty bucket ends the search.
func (Q *OATable[K, V]) probingForGet(key K) (bucketNo int64, found bool) {
	tableSize := int64(len(Q.buckets))
	if tableSize == 0 {
		return
	}

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	for i := int64(0); i < tableSize; i++ {
		probe := Q.hashAlgorithm.ProbeIteration(hf1Value, i)

		switch Q.buckets[probe].state {
		case model.RecordEmpty:
			return

		case model.RecordOccupied:
			if Q.equal(key, Q.buckets[probe].key) {
				bucketNo, found = probe, true
				return
			}
		}
	}

	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding a bucket to place a
// key in. The key must not be present. The first tombstone on the probe path is preferred over the empty
// bucket that ends it.
func (Q *OATable[K, V]) probingForSet(key K) (bucketNo int64, err error) {
	var deletedNo int64
	var hasCached bool

	tableSize := int64(len(Q.buckets))
	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	for i := int64(0); i < tableSize; i++ {
		probe := Q.hashAlgorithm.ProbeIteration(hf1Value, i)

		switch Q.buckets[probe].state {
		case model.RecordEmpty:
			if hasCached {
				bucketNo = deletedNo
			} else {
				bucketNo = probe
			}
			return

		case model.RecordDeleted:
			if !hasCached {
				deletedNo = probe
				hasCached = true
			}
		}
	}

	// Every bucket visited without finding an empty one
	if hasCached {
		bucketNo = deletedNo
		return
	}

	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Updates the counters of occupied and deleted buckets
func (Q *OATable[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.RecordOccupied:
		Q.nOccupied--
	case model.RecordDeleted:
		Q.nDeleted--
	}

	switch toState {
	case model.RecordOccupied:
		Q.nOccupied++
	case model.RecordDeleted:
		Q.nDeleted++
	}
}
