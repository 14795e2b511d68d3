package hash

import "github.com/gostonefire/landstat/hashfunc"

// LinearProbingHashAlgorithm - Bucket selection for Linear Probing: the home bucket is
// hash(key) mod tableSize and iteration i probes the i:th bucket after it, wrapping around.
type LinearProbingHashAlgorithm[K any] struct {
	hashFunc  hashfunc.HashFunc[K]
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm[K any](hashFunc hashfunc.HashFunc[K], tableSize int64) *LinearProbingHashAlgorithm[K] {
	ha := &LinearProbingHashAlgorithm[K]{hashFunc: hashFunc}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (L *LinearProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return reduce(L.hashFunc(key), L.tableSize)
}

// GetTableSize - Returns the table size the hash function is currently reducing to
func (L *LinearProbingHashAlgorithm[K]) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing. A table without buckets always probes bucket 0.
func (L *LinearProbingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	if L.tableSize <= 0 {
		return 0
	}

	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe %= L.tableSize
	}

	return probe
}
