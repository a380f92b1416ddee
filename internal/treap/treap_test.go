// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand/v2"
	"sort"
	"testing"
)

// intLess is the ordering used by every tree in the tests.
func intLess(a, b int) bool { return a < b }

// insertKey allocates, initializes, and inserts a node for the passed key and
// returns the node.
func insertKey(t *Tree[int], key int) *Node[int] {
	n := &Node[int]{}
	n.Init(key, nil)
	t.Insert(n)
	return n
}

// checkInvariants walks the whole tree and ensures the search order, the heap
// order, and the parent links all hold.  It returns the number of nodes seen.
func checkInvariants(t *testing.T, tree *Tree[int]) int {
	t.Helper()

	var walk func(n, parent *Node[int]) int
	walk = func(n, parent *Node[int]) int {
		if n == nil {
			return 0
		}
		if n.parent != parent {
			t.Fatalf("node %d: parent link mismatch", n.key)
		}
		if n.left != nil {
			if !tree.less(n.left.key, n.key) {
				t.Fatalf("node %d: left child %d violates "+
					"search order", n.key, n.left.key)
			}
			if n.left.priority > n.priority {
				t.Fatalf("node %d: left child priority %d "+
					"exceeds %d", n.key, n.left.priority,
					n.priority)
			}
		}
		if n.right != nil {
			if !tree.less(n.key, n.right.key) {
				t.Fatalf("node %d: right child %d violates "+
					"search order", n.key, n.right.key)
			}
			if n.right.priority > n.priority {
				t.Fatalf("node %d: right child priority %d "+
					"exceeds %d", n.key, n.right.priority,
					n.priority)
			}
		}
		return 1 + walk(n.left, n) + walk(n.right, n)
	}
	return walk(tree.sentinel.left, &tree.sentinel)
}

// collectKeys returns every key in the tree in iteration order.
func collectKeys(tree *Tree[int]) []int {
	var keys []int
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// TestEmpty ensures calling functions on an empty tree works as expected.
func TestEmpty(t *testing.T) {
	t.Parallel()

	tree := New(intLess)
	if !tree.Empty() {
		t.Fatal("Empty: unexpected result - got false, want true")
	}

	// Begin of an empty tree is the end iterator.
	if tree.Begin() != tree.End() {
		t.Fatal("Begin: expected the end iterator on an empty tree")
	}

	// Searches on an empty tree all land on the end iterator.
	if got := tree.Find(0); got != tree.End() {
		t.Fatal("Find: expected the end iterator on an empty tree")
	}
	if got := tree.LowerBound(0); got != tree.End() {
		t.Fatal("LowerBound: expected the end iterator on an empty tree")
	}
	if got := tree.UpperBound(0); got != tree.End() {
		t.Fatal("UpperBound: expected the end iterator on an empty tree")
	}
}

// TestSequential ensures inserting keys in sequential order produces a tree
// that holds all invariants and iterates in sorted order.
func TestSequential(t *testing.T) {
	t.Parallel()

	numItems := 1000
	tree := New(intLess)
	for i := 0; i < numItems; i++ {
		n := insertKey(tree, i)

		// Ensure the key is immediately findable at its node.
		if tree.Find(i).Node() != n {
			t.Fatalf("Find #%d: did not return the inserted node", i)
		}
	}

	// Ensure every structural invariant holds and no node was lost.
	if gotCount := checkInvariants(t, tree); gotCount != numItems {
		t.Fatalf("checkInvariants: unexpected node count - got %d, "+
			"want %d", gotCount, numItems)
	}

	// Ensure iteration yields the keys in sorted order.
	keys := collectKeys(tree)
	if len(keys) != numItems {
		t.Fatalf("iteration: unexpected key count - got %d, want %d",
			len(keys), numItems)
	}
	if !sort.IntsAreSorted(keys) {
		t.Fatal("iteration: keys are not in sorted order")
	}
}

// TestRandomized ensures a tree built from keys inserted in random order
// holds all invariants across interleaved insertions and erasures.
func TestRandomized(t *testing.T) {
	t.Parallel()

	numItems := 500
	perm := rand.Perm(numItems)
	tree := New(intLess)
	for _, key := range perm {
		insertKey(tree, key)
	}
	if gotCount := checkInvariants(t, tree); gotCount != numItems {
		t.Fatalf("checkInvariants: unexpected node count - got %d, "+
			"want %d", gotCount, numItems)
	}

	// Erase every even key through its iterator and reverify.
	for key := 0; key < numItems; key += 2 {
		it := tree.Find(key)
		if it == tree.End() {
			t.Fatalf("Find #%d: key is not in tree", key)
		}
		tree.Erase(it)
	}
	if gotCount := checkInvariants(t, tree); gotCount != numItems/2 {
		t.Fatalf("checkInvariants: unexpected node count - got %d, "+
			"want %d", gotCount, numItems/2)
	}

	// Ensure exactly the odd keys remain, in order.
	keys := collectKeys(tree)
	for i, key := range keys {
		if want := 2*i + 1; key != want {
			t.Fatalf("key #%d: got %d, want %d", i, key, want)
		}
	}
}

// TestFind ensures present keys are found and absent keys land on the end
// iterator.
func TestFind(t *testing.T) {
	t.Parallel()

	tree := New(intLess)
	for _, key := range []int{10, 4, 8, 2, 6} {
		insertKey(tree, key)
	}

	for _, key := range []int{2, 4, 6, 8, 10} {
		it := tree.Find(key)
		if it == tree.End() {
			t.Fatalf("Find %d: key is not in tree", key)
		}
		if gotKey := it.Key(); gotKey != key {
			t.Fatalf("Find %d: unexpected key - got %d", key, gotKey)
		}
	}
	for _, key := range []int{1, 3, 5, 7, 9, 11} {
		if it := tree.Find(key); it != tree.End() {
			t.Fatalf("Find %d: unexpectedly found key %d", key,
				it.Key())
		}
	}
}

// TestBounds ensures LowerBound and UpperBound follow the standard ordered
// bound contract.
func TestBounds(t *testing.T) {
	t.Parallel()

	tree := New(intLess)
	for _, key := range []int{1, 3, 5} {
		insertKey(tree, key)
	}

	tests := []struct {
		name  string
		fn    func(int) Iterator[int]
		key   int
		want  int
		isEnd bool
	}{
		{name: "LowerBound", fn: tree.LowerBound, key: 2, want: 3},
		{name: "LowerBound", fn: tree.LowerBound, key: 3, want: 3},
		{name: "LowerBound", fn: tree.LowerBound, key: 0, want: 1},
		{name: "LowerBound", fn: tree.LowerBound, key: 6, isEnd: true},
		{name: "UpperBound", fn: tree.UpperBound, key: 3, want: 5},
		{name: "UpperBound", fn: tree.UpperBound, key: 2, want: 3},
		{name: "UpperBound", fn: tree.UpperBound, key: 5, isEnd: true},
		{name: "UpperBound", fn: tree.UpperBound, key: 0, want: 1},
	}
	for i, test := range tests {
		it := test.fn(test.key)
		if test.isEnd {
			if it != tree.End() {
				t.Fatalf("%s #%d (%d): expected the end iterator",
					test.name, i, test.key)
			}
			continue
		}
		if it == tree.End() {
			t.Fatalf("%s #%d (%d): unexpected end iterator",
				test.name, i, test.key)
		}
		if gotKey := it.Key(); gotKey != test.want {
			t.Fatalf("%s #%d (%d): got %d, want %d", test.name, i,
				test.key, gotKey, test.want)
		}
	}
}

// TestEraseSuccessor ensures Erase returns the in-order successor of the
// erased node, including the end iterator when the largest key is erased.
func TestEraseSuccessor(t *testing.T) {
	t.Parallel()

	tree := New(intLess)
	for _, key := range []int{1, 2, 3, 4, 5} {
		insertKey(tree, key)
	}

	// Erasing an interior key yields the next larger key.
	next := tree.Erase(tree.Find(3))
	if next == tree.End() || next.Key() != 4 {
		t.Fatal("Erase: expected successor 4")
	}

	// Erasing the largest key yields the end iterator.
	if next := tree.Erase(tree.Find(5)); next != tree.End() {
		t.Fatal("Erase: expected the end iterator after erasing the " +
			"largest key")
	}

	// Erasing the smallest key yields the new smallest key.
	next = tree.Erase(tree.Find(1))
	if next != tree.Begin() || next.Key() != 2 {
		t.Fatal("Erase: expected successor 2 at the new beginning")
	}

	checkInvariants(t, tree)
}

// TestEraseAll ensures a tree drained through iterator erasure ends up empty
// and that erased nodes can be reinitialized and inserted again.
func TestEraseAll(t *testing.T) {
	t.Parallel()

	numItems := 100
	tree := New(intLess)
	nodes := make([]*Node[int], 0, numItems)
	for _, key := range rand.Perm(numItems) {
		nodes = append(nodes, insertKey(tree, key))
	}

	// Drain in iteration order, advancing before erasing.
	for it := tree.Begin(); it != tree.End(); {
		cur := it
		it = it.Next()
		tree.Erase(cur)
	}
	if !tree.Empty() {
		t.Fatal("Empty: tree is not empty after erasing every node")
	}

	// The nodes are unlinked now, so they can go around again.
	for i, n := range nodes {
		n.Init(i, nil)
		tree.Insert(n)
	}
	if gotCount := checkInvariants(t, tree); gotCount != numItems {
		t.Fatalf("checkInvariants: unexpected node count - got %d, "+
			"want %d", gotCount, numItems)
	}
}

// TestIteratorStability ensures iterators positioned at untouched nodes
// survive erasure of other nodes.
func TestIteratorStability(t *testing.T) {
	t.Parallel()

	tree := New(intLess)
	for _, key := range rand.Perm(200) {
		insertKey(tree, key)
	}

	it := tree.Find(100)
	for key := 0; key < 200; key += 2 {
		if key == 100 {
			continue
		}
		tree.Erase(tree.Find(key))
	}

	// The held position still references its node and walks correctly.
	if gotKey := it.Key(); gotKey != 100 {
		t.Fatalf("Key: unexpected key - got %d, want 100", gotKey)
	}
	if gotKey := it.Next().Key(); gotKey != 101 {
		t.Fatalf("Next: unexpected key - got %d, want 101", gotKey)
	}
	if gotKey := it.Prev().Key(); gotKey != 99 {
		t.Fatalf("Prev: unexpected key - got %d, want 99", gotKey)
	}
}

// TestClear ensures Clear leaves the tree empty and usable.
func TestClear(t *testing.T) {
	t.Parallel()

	tree := New(intLess)
	for i := 0; i < 10; i++ {
		insertKey(tree, i)
	}
	tree.Clear()
	if !tree.Empty() {
		t.Fatal("Empty: tree is not empty after Clear")
	}
	insertKey(tree, 42)
	if gotKey := tree.Begin().Key(); gotKey != 42 {
		t.Fatalf("Begin: unexpected key - got %d, want 42", gotKey)
	}
}

// TestRef ensures the opaque owner reference set by Init is recoverable
// through both the node and an iterator.
func TestRef(t *testing.T) {
	t.Parallel()

	type record struct{ tag string }
	rec := &record{tag: "owner"}

	tree := New(intLess)
	n := &Node[int]{}
	n.Init(7, rec)
	it := tree.Insert(n)

	if got := it.Ref(); got != any(rec) {
		t.Fatalf("Ref: unexpected owner - got %v, want %v", got, rec)
	}
	if got := At(n); got != it {
		t.Fatal("At: iterator does not match the insertion result")
	}
}
