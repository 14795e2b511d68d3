package hash

import "github.com/gostonefire/landstat/hashfunc"

// SeparateChainingHashAlgorithm - Bucket selection for Separate Chaining: bucket = hash(key) mod tableSize
type SeparateChainingHashAlgorithm[K any] struct {
	hashFunc  hashfunc.HashFunc[K]
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K any](hashFunc hashfunc.HashFunc[K], tableSize int64) *SeparateChainingHashAlgorithm[K] {
	ha := &SeparateChainingHashAlgorithm[K]{hashFunc: hashFunc}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table addresses
func (S *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return reduce(S.hashFunc(key), S.tableSize)
}

// GetTableSize - Returns the table size the hash function is currently reducing to
func (S *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return S.tableSize
}

// reduce - Returns hashValue mod tableSize, or 0 for a table without buckets
func reduce(hashValue uint64, tableSize int64) int64 {
	if tableSize <= 0 {
		return 0
	}

	return int64(hashValue % uint64(tableSize))
}
