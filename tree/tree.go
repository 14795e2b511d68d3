// Package tree is a multi-way tree using first-child/next-sibling linkage.
//
// Each node links to its parent, its next sibling and its first child. The children of a node are the
// chain that starts at its first child and follows the sibling links, in the order they were appended.
// Nodes are owned by the tree and addressed by NodeID; an ID of a removed node is rejected rather than
// resolving to whatever reuses its slot.
package tree

import (
	"github.com/gostonefire/landstat/dserr"
	"github.com/gostonefire/landstat/internal/arena"
	"iter"
)

// NodeID - Addresses one node of a Tree. The zero NodeID addresses nothing.
type NodeID struct {
	handle arena.Handle
}

// IsNil - Returns true if the ID addresses nothing
func (N NodeID) IsNil() bool {
	return N.handle.IsNil()
}

type node[E any] struct {
	item    E
	parent  arena.Handle
	sibling arena.Handle
	child   arena.Handle
}

// Tree - A multi-way tree that always has a root
type Tree[E any] struct {
	nodes arena.Arena[node[E]]
	root  arena.Handle
}

// New - Returns a pointer to a new tree whose root holds rootItem
func New[E any](rootItem E) *Tree[E] {
	t := &Tree[E]{}
	t.root, _ = t.nodes.Alloc(node[E]{item: rootItem})

	return t
}

// Root - Returns the ID of the root node, nil after Clear
func (T *Tree[E]) Root() NodeID {
	return NodeID{handle: T.root}
}

// Len - Returns the number of nodes, root included
func (T *Tree[E]) Len() int {
	return T.nodes.Len()
}

// AppendChild - Creates a node holding item as the last child of parent.
// The time taken is proportional to the number of children parent already has.
// It returns:
//   - id of the new node
//   - err is of type dserr.KeyNotFound if parent does not address a node of this tree
func (T *Tree[E]) AppendChild(parent NodeID, item E) (id NodeID, err error) {
	p, ok := T.nodes.Get(parent.handle)
	if !ok {
		err = dserr.KeyNotFound{}
		return
	}

	h, _ := T.nodes.Alloc(node[E]{item: item, parent: parent.handle})

	// Alloc never moves nodes, p is still valid
	if p.child.IsNil() {
		p.child = h
	} else {
		last := T.node(p.child)
		for !last.sibling.IsNil() {
			last = T.node(last.sibling)
		}
		last.sibling = h
	}

	id = NodeID{handle: h}

	return
}

// Item - Returns the item of node id, or dserr.KeyNotFound
func (T *Tree[E]) Item(id NodeID) (item E, err error) {
	n, ok := T.nodes.Get(id.handle)
	if !ok {
		err = dserr.KeyNotFound{}
		return
	}

	item = n.item

	return
}

// Parent - Returns the parent of node id, false for the root or an unknown id
func (T *Tree[E]) Parent(id NodeID) (parent NodeID, ok bool) {
	n, found := T.nodes.Get(id.handle)
	if !found || n.parent.IsNil() {
		return
	}

	return NodeID{handle: n.parent}, true
}

// Children - Returns a sequence of the children of node id, in the order they were appended
func (T *Tree[E]) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		n, ok := T.nodes.Get(id.handle)
		if !ok {
			return
		}

		for h := n.child; !h.IsNil(); h = T.node(h).sibling {
			if !yield(NodeID{handle: h}) {
				return
			}
		}
	}
}

// Ancestors - Returns a sequence starting at the parent of node id and ending at the root
func (T *Tree[E]) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for p, ok := T.Parent(id); ok; p, ok = T.Parent(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Clear - Destroys every node including the root. Every NodeID and Cursor of the tree becomes invalid.
func (T *Tree[E]) Clear() {
	T.nodes.Reset()
	T.root = arena.Nil
}

// node - Returns the node addressed by h, which must be live
func (T *Tree[E]) node(h arena.Handle) *node[E] {
	n, ok := T.nodes.Get(h)
	if !ok {
		panic("tree: stale node handle")
	}

	return n
}
