package utils

// BaseCapacity - Capacity of a hash table after its first growth
const BaseCapacity int64 = 8

// MaxFillRatio - Fill ratio at or above which a hash table grows before placing a new entry
const MaxFillRatio float64 = 0.80

// NextCapacity - Returns the capacity to grow to, BaseCapacity if the table has none yet, otherwise double
func NextCapacity(capacity int64) int64 {
	if capacity <= 0 {
		return BaseCapacity
	}

	return capacity * 2
}

// FillRatio - Returns used divided by capacity, a table without capacity counts as full
func FillRatio(used, capacity int64) float64 {
	if capacity <= 0 {
		return 1
	}

	return float64(used) / float64(capacity)
}

// NeedsGrowth - Returns true if the fill ratio is at or above MaxFillRatio
// The comparison is done in integers (used/capacity >= 4/5) to stay exact at the boundary.
func NeedsGrowth(used, capacity int64) bool {
	if capacity <= 0 {
		return true
	}

	return used*5 >= capacity*4
}
