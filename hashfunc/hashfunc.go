// Package hashfunc holds the pluggable placement and equality functions used by the hash tables,
// together with a few ready-made implementations.
package hashfunc

import (
	"bytes"
	"github.com/spaolacci/murmur3"
	"hash/crc32"
)

// HashFunc - Given key it generates a hash value. The table reduces it to a bucket with
// hash mod capacity, so the function need not care about the table size.
type HashFunc[K any] func(key K) uint64

// EqualFunc - Returns true if a and b are to be regarded as the same key.
// Keys that are equal must produce the same hash value.
type EqualFunc[K any] func(a, b K) bool

// String - Hashes a string with murmur3 (default seed)
func String(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

// StringCRC32 - Hashes a string with crc32.ChecksumIEEE
func StringCRC32(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// Bytes - Hashes a byte slice with crc32.ChecksumIEEE
func Bytes(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// BytesEqual - Returns true if a and b are equal both in size and contents
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Int - Hashes an int with the splitmix64 finalizer
func Int(key int) uint64 {
	z := uint64(key) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Equal - Returns a == b for any comparable key
func Equal[K comparable](a, b K) bool {
	return a == b
}
