//go:build unit

package tree

import (
	"github.com/gostonefire/landstat/dserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"strings"
	"testing"
)

// buildSample - Returns the tree
//
//	R
//	├── A
//	│   ├── A1
//	│   └── A2
//	├── B
//	└── C
//	    └── C1
//	        └── C11
func buildSample(t *testing.T) (*Tree[string], map[string]NodeID) {
	tr := New("R")
	ids := map[string]NodeID{"R": tr.Root()}

	add := func(parent, name string) {
		id, err := tr.AppendChild(ids[parent], name)
		require.NoErrorf(t, err, "append %s", name)
		ids[name] = id
	}
	add("R", "A")
	add("R", "B")
	add("A", "A1")
	add("R", "C")
	add("A", "A2")
	add("C", "C1")
	add("C1", "C11")

	return tr, ids
}

func TestTree_AppendChild(t *testing.T) {
	t.Run("children keep append order", func(t *testing.T) {
		// Prepare
		tr, ids := buildSample(t)

		// Execute
		var names []string
		for id := range tr.Children(tr.Root()) {
			name, _ := tr.Item(id)
			names = append(names, name)
		}

		// Check
		assert.Equal(t, []string{"A", "B", "C"}, names, "root children")
		assert.Equal(t, 8, tr.Len(), "node count")
		p, ok := tr.Parent(ids["A2"])
		assert.True(t, ok, "A2 has a parent")
		assert.Equal(t, ids["A"], p, "parent of A2")
		_, ok = tr.Parent(tr.Root())
		assert.False(t, ok, "root has no parent")
	})

	t.Run("stale parent is rejected", func(t *testing.T) {
		// Prepare
		tr, ids := buildSample(t)
		tr.Clear()

		// Execute
		_, err := tr.AppendChild(ids["A"], "X")

		// Check
		assert.ErrorIs(t, err, dserr.KeyNotFound{}, "get correct error")
		assert.Equal(t, 0, tr.Len(), "cleared")
		assert.True(t, tr.Root().IsNil(), "no root")
	})

	t.Run("ancestors run up to the root", func(t *testing.T) {
		// Prepare
		tr, ids := buildSample(t)

		// Execute
		var names []string
		for id := range tr.Ancestors(ids["C11"]) {
			name, _ := tr.Item(id)
			names = append(names, name)
		}

		// Check
		assert.Equal(t, []string{"C1", "C", "R"}, names, "ancestors of C11")
	})
}

func TestCursor_Next(t *testing.T) {
	t.Run("walks the whole tree in level order", func(t *testing.T) {
		// Prepare
		tr, _ := buildSample(t)
		c := tr.Cursor()

		// Execute
		walked := slices.Collect(c.All())

		// Check
		assert.Equal(t, []string{"R", "A", "B", "C", "A1", "A2", "C1", "C11"}, walked, "breadth-first order")
		assert.False(t, c.Valid(), "cursor past the end")
		assert.False(t, c.Next(), "next past the end")
	})

	t.Run("reset starts over from the root", func(t *testing.T) {
		// Prepare
		tr, _ := buildSample(t)
		c := tr.Cursor()
		for c.Next() {
		}

		// Execute
		c.Reset()

		// Check
		assert.True(t, c.Valid(), "valid again")
		assert.Equal(t, "R", c.Item(), "at root")
		assert.Len(t, slices.Collect(c.All()), 8, "full walk again")
	})

	t.Run("walk after a move covers the subtree", func(t *testing.T) {
		// Prepare
		tr, _ := buildSample(t)
		c := tr.Cursor()
		require.True(t, c.MoveToChildren(func(s string) bool { return s == "C" }), "move to C")

		// Execute
		walked := slices.Collect(c.All())

		// Check
		assert.Equal(t, []string{"C", "C1", "C11"}, walked, "subtree of C")
	})
}

func TestCursor_Move(t *testing.T) {
	t.Run("move to parent from root fails", func(t *testing.T) {
		// Prepare
		tr, _ := buildSample(t)
		c := tr.Cursor()

		// Execute
		moved := c.MoveToParent()

		// Check
		assert.False(t, moved, "root has no parent")
		assert.Equal(t, tr.Root(), c.Node(), "still at root")
	})

	t.Run("no matching child leaves the cursor in place", func(t *testing.T) {
		// Prepare
		tr, ids := buildSample(t)
		c, ok := tr.CursorAt(ids["A"])
		require.True(t, ok, "cursor at A")

		// Execute
		moved := c.MoveToChildren(func(s string) bool { return strings.HasPrefix(s, "Z") })

		// Check
		assert.False(t, moved, "nothing matched")
		assert.Equal(t, "A", c.Item(), "still at A")
	})

	t.Run("moves down and back up", func(t *testing.T) {
		// Prepare
		tr, ids := buildSample(t)
		c := tr.Cursor()

		// Execute
		down := c.MoveToChildren(func(s string) bool { return s == "A" }) &&
			c.MoveToChildren(func(s string) bool { return strings.HasSuffix(s, "2") })
		atA2 := c.Node()
		up := c.MoveToParent()

		// Check
		assert.True(t, down, "moved down twice")
		assert.Equal(t, ids["A2"], atA2, "reached A2")
		assert.True(t, up, "moved up")
		assert.Equal(t, "A", c.Item(), "back at A")
	})

	t.Run("cursor at unknown node", func(t *testing.T) {
		// Prepare
		tr, _ := buildSample(t)

		// Execute
		_, ok := tr.CursorAt(NodeID{})

		// Check
		assert.False(t, ok, "nil id rejected")
	})
}
