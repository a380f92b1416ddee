// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// Tree represents a treap over caller-supplied intrusive nodes.  Keys are
// ordered by a strict weak ordering that is fixed at construction, while the
// heap shape is governed by the random per-node priorities, so no explicit
// rotation rules are needed to keep the expected height logarithmic.
//
// The tree keeps a sentinel node that never holds a key.  Its left child is
// the real root (nil when the tree is empty) and an iterator positioned at it
// is the end iterator.  Because the sentinel is embedded in the Tree value, a
// Tree must not be copied once nodes have been inserted.
//
// The tree never rejects duplicate keys on its own; callers must guarantee a
// key is absent before inserting it.  Inserting a duplicate, erasing the end
// iterator, or erasing an iterator that belongs to a different tree is
// undefined behavior.
type Tree[K any] struct {
	less     func(a, b K) bool
	sentinel Node[K]
}

// New returns a new empty tree ordered by the passed less function, which
// must implement a strict weak ordering over K.
func New[K any](less func(a, b K) bool) *Tree[K] {
	return &Tree[K]{less: less}
}

// Empty returns whether the tree contains no nodes.
func (t *Tree[K]) Empty() bool {
	return t.sentinel.left == nil
}

// Clear unlinks every node from the tree, leaving it empty.  The nodes
// themselves remain owned by the caller.
func (t *Tree[K]) Clear() {
	t.sentinel.left = nil
}

// Begin returns an iterator positioned at the node with the smallest key, or
// the end iterator when the tree is empty.
func (t *Tree[K]) Begin() Iterator[K] {
	n := &t.sentinel
	for n.left != nil {
		n = n.left
	}
	return Iterator[K]{node: n}
}

// End returns the iterator positioned one past the node with the largest key.
// It does not reference a key and is the value returned by searches that find
// nothing.
func (t *Tree[K]) End() Iterator[K] {
	return Iterator[K]{node: &t.sentinel}
}

// Find returns an iterator positioned at the node whose key is equivalent to
// the passed key, meaning neither orders before the other, or the end
// iterator when no such node exists.
func (t *Tree[K]) Find(key K) Iterator[K] {
	for n := t.sentinel.left; n != nil; {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return Iterator[K]{node: n}
		}
	}
	return t.End()
}

// LowerBound returns an iterator positioned at the first node whose key does
// not order before the passed key, or the end iterator when every key in the
// tree orders before it.
func (t *Tree[K]) LowerBound(key K) Iterator[K] {
	best := &t.sentinel
	for n := t.sentinel.left; n != nil; {
		if !t.less(n.key, key) {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K]{node: best}
}

// UpperBound returns an iterator positioned at the first node whose key
// orders strictly after the passed key, or the end iterator when no key in
// the tree does.
func (t *Tree[K]) UpperBound(key K) Iterator[K] {
	best := &t.sentinel
	for n := t.sentinel.left; n != nil; {
		if t.less(key, n.key) {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K]{node: best}
}

// Insert links the passed node into the tree and returns an iterator
// positioned at it.  The node must have been prepared with Init and must not
// currently be linked into any tree.  The caller must guarantee the node's
// key is not already present.
//
// Insertion descends by key order until it reaches a subtree whose root has a
// lower priority than the new node.  That subtree is split by the new key
// into the new node's children and the new node is spliced in at that point,
// which restores both the search order and the heap order in one pass.
func (t *Tree[K]) Insert(n *Node[K]) Iterator[K] {
	it := t.insert(&t.sentinel.left, n)
	setParent(t.sentinel.left, &t.sentinel)
	return it
}

// insert links the node into the subtree rooted at *slot, updating *slot when
// the subtree root changes.  Parent links inside the modified subtree are
// repaired on the way back up; the caller repairs the link of *slot itself.
func (t *Tree[K]) insert(slot **Node[K], n *Node[K]) Iterator[K] {
	cur := *slot
	if cur == nil {
		*slot = n
		return Iterator[K]{node: n}
	}

	// The first node on the descent that loses the priority comparison is
	// displaced: its subtree is split around the new key and the halves
	// become the new node's children.
	n.parent = cur.parent
	if n.priority > cur.priority {
		t.split(cur, n.key, &n.left, &n.right)
		setParent(n.left, n)
		setParent(n.right, n)
		*slot = n
		return Iterator[K]{node: n}
	}

	if t.less(n.key, cur.key) {
		it := t.insert(&cur.left, n)
		setParent(cur.left, cur)
		return it
	}
	it := t.insert(&cur.right, n)
	setParent(cur.right, cur)
	return it
}

// split partitions the subtree rooted at cur into two subtrees, one holding
// every node whose key orders before the pivot and one holding the rest, and
// stores their roots through l and r.  Parent links of reattached children
// are repaired; the roots written through l and r are left for the caller.
func (t *Tree[K]) split(cur *Node[K], pivot K, l, r **Node[K]) {
	if cur == nil {
		*l = nil
		*r = nil
		return
	}
	if t.less(pivot, cur.key) {
		t.split(cur.left, pivot, l, &cur.left)
		setParent(cur.left, cur)
		*r = cur
		return
	}
	t.split(cur.right, pivot, &cur.right, r)
	setParent(cur.right, cur)
	*l = cur
}

// Erase unlinks the node the iterator is positioned at and returns an
// iterator positioned at its in-order successor.  The successor is computed
// before any relinking, which is what keeps the returned iterator valid.
// Only iterators positioned at the erased node are invalidated; all other
// positions survive because merging only restructures the erased node's
// former subtree.
//
// Erasing the end iterator or an iterator from a different tree is undefined.
func (t *Tree[K]) Erase(it Iterator[K]) Iterator[K] {
	n := it.node
	parent := n.parent
	next := it.Next()

	merged := merge(n.left, n.right)
	if n.isLeft() {
		parent.left = merged
	} else {
		parent.right = merged
	}
	setParent(merged, parent)

	// Clear the stale links so the node can be reinitialized and reused.
	n.left = nil
	n.right = nil
	n.parent = nil
	return next
}

// merge combines two subtrees in which every key of l orders before every key
// of r into a single subtree and returns its root.  The root with the higher
// priority wins the top position and the other subtree is merged into the
// appropriate side, preserving the heap order.
func merge[K any](l, r *Node[K]) *Node[K] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.priority > r.priority {
		l.right = merge(l.right, r)
		setParent(l.right, l)
		return l
	}
	r.left = merge(l, r.left)
	setParent(r.left, r)
	return r
}
