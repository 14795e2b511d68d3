package tree

import (
	"github.com/gostonefire/landstat/internal/arena"
	"github.com/gostonefire/landstat/linkedlist"
	"iter"
)

// Cursor - A position in a Tree that can be moved explicitly (to the parent, to a matching child) or
// advanced in breadth-first order with Next.
//
// The breadth-first walk keeps a queue of pending first children. Each step moves to the next sibling of
// the current node, enqueueing the current node's first child, and when the sibling chain ends it dequeues
// the next first child. Any explicit move empties the queue, so a walk started after it covers the subtree
// of the node moved to (and that node's later siblings).
type Cursor[E any] struct {
	tree    *Tree[E]
	current arena.Handle
	queue   *linkedlist.List[arena.Handle]
}

// Cursor - Returns a new cursor positioned at the root
func (T *Tree[E]) Cursor() *Cursor[E] {
	return &Cursor[E]{tree: T, current: T.root, queue: linkedlist.New[arena.Handle]()}
}

// CursorAt - Returns a new cursor positioned at node id, false if id does not address a node
func (T *Tree[E]) CursorAt(id NodeID) (cursor *Cursor[E], ok bool) {
	if _, ok = T.nodes.Get(id.handle); !ok {
		return
	}

	cursor = &Cursor[E]{tree: T, current: id.handle, queue: linkedlist.New[arena.Handle]()}

	return
}

// Valid - Returns true while the cursor is positioned at a node
func (C *Cursor[E]) Valid() bool {
	_, ok := C.tree.nodes.Get(C.current)
	return ok
}

// Node - Returns the ID of the current node, nil when the cursor is not valid
func (C *Cursor[E]) Node() NodeID {
	if !C.Valid() {
		return NodeID{}
	}

	return NodeID{handle: C.current}
}

// Item - Returns the item at the current node. Calling it on a cursor that is not valid panics.
func (C *Cursor[E]) Item() E {
	return C.tree.node(C.current).item
}

// MoveToParent - Moves to the parent of the current node. At the root, or when the cursor is not valid,
// it returns false and nothing changes.
func (C *Cursor[E]) MoveToParent() bool {
	n, ok := C.tree.nodes.Get(C.current)
	if !ok || n.parent.IsNil() {
		return false
	}

	C.current = n.parent
	C.queue.Clear()

	return true
}

// MoveToChildren - Moves to the first child of the current node whose item satisfies pred.
// If no child does it returns false and the cursor stays where it was.
func (C *Cursor[E]) MoveToChildren(pred func(E) bool) bool {
	n, ok := C.tree.nodes.Get(C.current)
	if !ok {
		return false
	}

	for h := n.child; !h.IsNil(); {
		child := C.tree.node(h)
		if pred(child.item) {
			C.current = h
			C.queue.Clear()
			return true
		}
		h = child.sibling
	}

	return false
}

// Next - Advances one step in breadth-first order and reports whether the cursor is still valid
func (C *Cursor[E]) Next() bool {
	n, ok := C.tree.nodes.Get(C.current)
	if !ok {
		return false
	}

	if !n.child.IsNil() {
		C.queue.PushBack(n.child)
	}

	switch {
	case !n.sibling.IsNil():
		C.current = n.sibling
	case !C.queue.IsEmpty():
		C.current, _ = C.queue.PullFront()
	default:
		C.current = arena.Nil
	}

	return !C.current.IsNil()
}

// Reset - Moves back to the root and forgets any pending walk
func (C *Cursor[E]) Reset() {
	C.current = C.tree.root
	C.queue.Clear()
}

// All - Returns a sequence of the current item followed by every item Next reaches. Ranging over it moves
// the cursor; after a full walk the cursor is no longer valid.
func (C *Cursor[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for ok := C.Valid(); ok; ok = C.Next() {
			if !yield(C.Item()) {
				return
			}
		}
	}
}
