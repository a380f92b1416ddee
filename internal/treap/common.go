// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand/v2"
)

// Node represents a node in a treap.  Nodes are allocated and owned by the
// caller and handed to a tree for linking, which is what allows one record to
// embed several nodes and be a member of several trees simultaneously.
//
// The priority is drawn once when the node is initialized and is never
// changed afterwards.  It only influences the shape of the tree, never the
// ordering of keys, so it is deliberately not exposed through a setter.
type Node[K any] struct {
	left     *Node[K]
	right    *Node[K]
	parent   *Node[K]
	priority uint32
	key      K
	ref      any
}

// Init prepares the node to be inserted into a tree by setting its key,
// clearing any stale links, attaching the opaque owner reference, and drawing
// a fresh random priority.  It must be called before every insertion and must
// not be called while the node is linked into a tree.
//
// The ref value identifies the record that embeds this node.  The tree never
// inspects it; it exists so a position found in one tree can be mapped back
// to its enclosing record in constant time.
func (n *Node[K]) Init(key K, ref any) {
	n.left = nil
	n.right = nil
	n.parent = nil
	n.priority = rand.Uint32()
	n.key = key
	n.ref = ref
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Ref returns the opaque owner reference that was attached by Init.
func (n *Node[K]) Ref() any {
	return n.ref
}

// isLeft returns whether the node is the left child of its parent.  It must
// only be called on nodes that are linked into a tree, where every node
// except the sentinel has a non-nil parent.
func (n *Node[K]) isLeft() bool {
	return n.parent.left == n
}

// setParent updates the parent link of the passed node when it is non-nil.
// It exists because rebalancing routinely reattaches possibly-empty subtrees.
func setParent[K any](node, parent *Node[K]) {
	if node != nil {
		node.parent = parent
	}
}
