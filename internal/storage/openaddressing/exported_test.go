//go:build unit

package openaddressing

import (
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gostonefire/landstat/crt"
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/hashfunc"
	"github.com/gostonefire/landstat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// identityHash - Places int keys at key mod capacity so probe paths are predictable
func identityHash(key int) uint64 {
	return uint64(key)
}

func newIntTable(t *testing.T) *OATable[int, string] {
	table, err := NewOATable[int, string](identityHash, hashfunc.Equal[int])
	require.NoError(t, err, "create new OATable instance")
	return table
}

func TestNewOATable(t *testing.T) {
	t.Run("creates an empty table without buckets", func(t *testing.T) {
		// Execute
		table, err := NewOATable[string, int](hashfunc.String, hashfunc.Equal[string])

		// Check
		assert.NoError(t, err, "create new OATable instance")
		assert.Equal(t, int64(0), table.Capacity(), "no buckets yet")
		sp := table.GetStorageParameters()
		assert.Equal(t, crt.LinearProbing, sp.CollisionResolutionTechnique, "correct crt")
	})

	t.Run("requires hash and equal functions", func(t *testing.T) {
		// Execute
		_, err := NewOATable[string, int](hashfunc.String, nil)

		// Check
		assert.Error(t, err, "missing equal function rejected")
	})
}

func TestOATable_Insert(t *testing.T) {
	t.Run("collision probes to the next bucket", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)

		// Execute
		require.NoError(t, table.Insert(1, "one"), "insert 1")
		require.NoError(t, table.Insert(9, "nine"), "insert 9, same home bucket as 1")

		// Check
		assert.Equal(t, int64(8), table.Capacity(), "base capacity")
		assert.Equal(t, []int64{0, 1, 1, 0, 0, 0, 0, 0}, table.BucketDistribution(), "9 probed into bucket 2")
		v, err := table.Get(9)
		assert.NoError(t, err, "get 9")
		assert.Equal(t, "nine", v, "value of 9")
	})

	t.Run("duplicate key is rejected and keeps original value", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		require.NoError(t, table.Insert(5, "original"), "insert original")

		// Execute
		err := table.Insert(5, "replacement")

		// Check
		assert.ErrorIs(t, err, dserr.DuplicateKey{}, "get correct error")
		assert.Equal(t, int64(1), table.Len(), "occupancy unchanged")
		v, _ := table.Get(5)
		assert.Equal(t, "original", v, "original value kept")
	})

	t.Run("grows at 80 percent and keeps every key", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		for i := 0; i < 7; i++ {
			require.NoError(t, table.Insert(i*8, fmt.Sprint(i)), "insert clustered key")
		}
		require.Equal(t, int64(8), table.Capacity(), "still base capacity")

		// Execute
		err := table.Insert(100, "hundred")

		// Check
		assert.NoError(t, err, "insert")
		assert.Equal(t, int64(16), table.Capacity(), "doubled")
		for i := 0; i < 7; i++ {
			v, err := table.Get(i * 8)
			assert.NoErrorf(t, err, "get %d after growth", i*8)
			assert.Equalf(t, fmt.Sprint(i), v, "value of %d", i*8)
		}
	})

	t.Run("random string keys survive several resizes", func(t *testing.T) {
		// Prepare
		faker := gofakeit.New(7)
		table, _ := NewOATable[string, int](hashfunc.String, hashfunc.Equal[string])
		keys := make(map[string]int)
		for len(keys) < 2000 {
			key := faker.LetterN(12)
			if _, exists := keys[key]; exists {
				continue
			}
			keys[key] = len(keys)
			require.NoError(t, table.Insert(key, keys[key]), "insert")
			assert.LessOrEqual(t, table.Len(), table.Capacity(), "occupancy never above capacity")
		}

		// Execute & Check
		for k, v := range keys {
			got, err := table.Get(k)
			assert.NoErrorf(t, err, "get %s", k)
			assert.Equalf(t, v, got, "value of %s", k)
		}
		_, err := table.Get("not-a-12-letter-key")
		assert.ErrorIs(t, err, dserr.KeyNotFound{}, "missing key")
	})
}

func TestOATable_Delete(t *testing.T) {
	t.Run("leaves a tombstone that lookups step over", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		require.NoError(t, table.Insert(1, "one"), "insert 1")
		require.NoError(t, table.Insert(9, "nine"), "insert 9 behind 1")

		// Execute
		err := table.Delete(1)

		// Check
		assert.NoError(t, err, "delete 1")
		_, err = table.Get(1)
		assert.ErrorIs(t, err, dserr.KeyNotFound{}, "1 is gone")
		v, err := table.Get(9)
		assert.NoError(t, err, "9 still reachable past the tombstone")
		assert.Equal(t, "nine", v, "value of 9")

		sp := table.GetStorageParameters()
		assert.Equal(t, int64(1), sp.NumberOfOccupiedRecords, "one occupied")
		assert.Equal(t, int64(1), sp.NumberOfDeletedRecords, "one tombstone")
	})

	t.Run("duplicate detection looks past tombstones", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		require.NoError(t, table.Insert(1, "one"), "insert 1")
		require.NoError(t, table.Insert(9, "nine"), "insert 9 behind 1")
		require.NoError(t, table.Delete(1), "delete 1")

		// Execute
		err := table.Insert(9, "again")

		// Check
		assert.ErrorIs(t, err, dserr.DuplicateKey{}, "9 found behind tombstone")
	})

	t.Run("insert reuses the first tombstone on the probe path", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		require.NoError(t, table.Insert(1, "one"), "insert 1")
		require.NoError(t, table.Insert(9, "nine"), "insert 9 behind 1")
		require.NoError(t, table.Delete(1), "delete 1")

		// Execute
		err := table.Insert(17, "seventeen")

		// Check
		assert.NoError(t, err, "insert 17")
		assert.Equal(t, []int64{0, 1, 1, 0, 0, 0, 0, 0}, table.BucketDistribution(), "17 took the tombstone in bucket 1")
		sp := table.GetStorageParameters()
		assert.Equal(t, int64(0), sp.NumberOfDeletedRecords, "tombstone consumed")
		assert.Equal(t, model.RecordOccupied, table.buckets[1].state, "bucket 1 occupied")
	})

	t.Run("growth drops tombstones", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		for i := 0; i < 6; i++ {
			require.NoError(t, table.Insert(i, fmt.Sprint(i)), "insert")
		}
		require.NoError(t, table.Delete(0), "delete 0")
		require.NoError(t, table.Delete(1), "delete 1")

		// Execute
		err := table.Insert(6, "6")
		err2 := table.Insert(7, "7")

		// Check
		assert.NoError(t, err, "insert 6")
		assert.NoError(t, err2, "insert 7 grows the table")
		assert.Equal(t, int64(16), table.Capacity(), "grown because tombstones count as used")
		sp := table.GetStorageParameters()
		assert.Equal(t, int64(0), sp.NumberOfDeletedRecords, "no tombstones after growth")
		assert.Equal(t, int64(6), sp.NumberOfOccupiedRecords, "six entries")
	})

	t.Run("missing key fails with KeyNotFound", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)

		// Execute
		err := table.Delete(3)

		// Check
		assert.ErrorIs(t, err, dserr.KeyNotFound{}, "get correct error")
	})
}

func TestOATable_Ref(t *testing.T) {
	t.Run("inserts zero value when absent", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)

		// Execute
		ref := table.Ref(4)
		*ref = "four"

		// Check
		assert.Equal(t, int64(1), table.Len(), "auto inserted")
		v, _ := table.Get(4)
		assert.Equal(t, "four", v, "written through pointer")
		assert.Same(t, ref, table.Ref(4), "same pointer while not grown")
	})
}

func TestOATable_All(t *testing.T) {
	t.Run("visits occupied buckets only", func(t *testing.T) {
		// Prepare
		table := newIntTable(t)
		for i := 0; i < 5; i++ {
			_ = table.Insert(i, fmt.Sprint(i))
		}
		_ = table.Delete(2)
		seen := make(map[int]string)

		// Execute
		for k, v := range table.All() {
			seen[k] = v
		}

		// Check
		assert.Equal(t, map[int]string{0: "0", 1: "1", 3: "3", 4: "4"}, seen, "tombstone skipped")
		assert.InDelta(t, 0.5, table.FillRatio(), 0.0001, "4 of 8")
	})
}
