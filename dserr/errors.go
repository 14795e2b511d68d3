// Package dserr holds the error types returned by the containers and algorithms.
//
// Each type carries an optional message. Matching with errors.Is is done on the type only, so
//
//	errors.Is(err, dserr.KeyNotFound{})
//
// holds for any KeyNotFound regardless of its message.
package dserr

import "fmt"

// DuplicateKey - Custom error to inform that a key is already present in a hash table
type DuplicateKey struct {
	msg string
}

// NewDuplicateKey - Returns a DuplicateKey error mentioning the key
func NewDuplicateKey(key any) DuplicateKey {
	return DuplicateKey{msg: fmt.Sprintf("duplicate key: %v", key)}
}

// Error - Used to notify that the key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// Is - Matches any DuplicateKey
func (E DuplicateKey) Is(target error) bool {
	_, ok := target.(DuplicateKey)
	return ok
}

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// NewKeyNotFound - Returns a KeyNotFound error mentioning the key
func NewKeyNotFound(key any) KeyNotFound {
	return KeyNotFound{msg: fmt.Sprintf("key not found: %v", key)}
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Matches any KeyNotFound
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// EmptyCollection - Custom error to inform that an element was requested from an empty collection
type EmptyCollection struct {
	msg string
}

// Error - Used to notify that the collection is empty
func (E EmptyCollection) Error() string {
	if E.msg == "" {
		return "collection is empty"
	}
	return E.msg
}

// Is - Matches any EmptyCollection
func (E EmptyCollection) Is(target error) bool {
	_, ok := target.(EmptyCollection)
	return ok
}

// OutOfRange - Custom error to inform that an index is not a valid position
type OutOfRange struct {
	msg string
}

// NewOutOfRange - Returns an OutOfRange error mentioning the index and the valid size
func NewOutOfRange(index, size int) OutOfRange {
	return OutOfRange{msg: fmt.Sprintf("index %d out of range [0, %d)", index, size)}
}

// Error - Used to notify that the index is out of range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// Is - Matches any OutOfRange
func (E OutOfRange) Is(target error) bool {
	_, ok := target.(OutOfRange)
	return ok
}

// InvalidRange - Custom error to inform that the end of a range precedes its start,
// or that some other argument describing an amount is negative
type InvalidRange struct {
	msg string
}

// NewInvalidRange - Returns an InvalidRange error mentioning start and end
func NewInvalidRange(start, end int) InvalidRange {
	return InvalidRange{msg: fmt.Sprintf("invalid range [%d, %d)", start, end)}
}

// Error - Used to notify that the range is invalid
func (E InvalidRange) Error() string {
	if E.msg == "" {
		return "invalid range"
	}
	return E.msg
}

// Is - Matches any InvalidRange
func (E InvalidRange) Is(target error) bool {
	_, ok := target.(InvalidRange)
	return ok
}

// InvalidCategory - Custom error to inform that an enumerated category is not recognized
type InvalidCategory struct {
	msg string
}

// NewInvalidCategory - Returns an InvalidCategory error mentioning the category
func NewInvalidCategory(category any) InvalidCategory {
	return InvalidCategory{msg: fmt.Sprintf("unexpected category: %v", category)}
}

// Error - Used to notify that the category is not recognized
func (E InvalidCategory) Error() string {
	if E.msg == "" {
		return "unexpected category"
	}
	return E.msg
}

// Is - Matches any InvalidCategory
func (E InvalidCategory) Is(target error) bool {
	_, ok := target.(InvalidCategory)
	return ok
}
