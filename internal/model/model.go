package model

// RecordEmpty - State indicating a bucket that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a bucket that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a bucket that has been in use but was deleted (a tombstone)
const RecordDeleted uint8 = 2

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	NumberOfOccupiedRecords      int64
	NumberOfDeletedRecords       int64
	NumberOfResizes              int64
}
