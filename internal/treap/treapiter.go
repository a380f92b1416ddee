// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// Iterator represents a position in a tree.  It is an immutable value: Next
// and Prev return the adjacent position instead of mutating the receiver, and
// two iterators compare equal with == exactly when they reference the same
// node.  A position remains valid until the node it references is erased,
// regardless of any other insertions or erasures performed on the tree.
//
// The zero Iterator does not reference any tree and must not be used.
type Iterator[K any] struct {
	node *Node[K]
}

// At returns an iterator positioned at the passed node, which must be linked
// into a tree.
func At[K any](n *Node[K]) Iterator[K] {
	return Iterator[K]{node: n}
}

// Key returns the key of the node the iterator is positioned at.  It must not
// be called on the end iterator.
func (it Iterator[K]) Key() K {
	return it.node.key
}

// Ref returns the owner reference of the node the iterator is positioned at.
// It must not be called on the end iterator.
func (it Iterator[K]) Ref() any {
	return it.node.ref
}

// Node returns the node the iterator is positioned at.
func (it Iterator[K]) Node() *Node[K] {
	return it.node
}

// Next returns the position of the in-order successor.  Calling Next on the
// end iterator is undefined.
//
// When the node has a right subtree the successor is that subtree's leftmost
// node.  Otherwise the walk climbs while the current node is a right child;
// one more step up is then the successor.  The climb terminates at the
// sentinel, which is every node's ancestor through the root's parent link, so
// advancing past the largest key naturally yields the end iterator.
func (it Iterator[K]) Next() Iterator[K] {
	n := it.node
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		return Iterator[K]{node: n}
	}
	for !n.isLeft() {
		n = n.parent
	}
	return Iterator[K]{node: n.parent}
}

// Prev returns the position of the in-order predecessor.  Calling Prev on an
// iterator positioned at the smallest key is undefined.  Prev of the end
// iterator is the position of the largest key, since the sentinel's left
// subtree is the whole tree.
func (it Iterator[K]) Prev() Iterator[K] {
	n := it.node
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		return Iterator[K]{node: n}
	}
	for n.isLeft() {
		n = n.parent
	}
	return Iterator[K]{node: n.parent}
}
