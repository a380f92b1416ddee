// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bimap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/ordmap/bimap/internal/treap"
)

// pairNode is the unit of allocation for one (left, right) association.  It
// embeds one tree node per side, so the record is simultaneously a member of
// the left-ordered tree and the right-ordered tree while having a single
// lifetime.  Each embedded node carries a reference back to the record, which
// is what lets an iterator on one side reach the other side in O(1).
type pairNode[L, R any] struct {
	left  treap.Node[L]
	right treap.Node[R]
}

// newPairNode allocates a record for the passed association and prepares both
// of its nodes for insertion.
func newPairNode[L, R any](l L, r R) *pairNode[L, R] {
	pn := &pairNode[L, R]{}
	pn.left.Init(l, pn)
	pn.right.Init(r, pn)
	return pn
}

// Bimap represents a bidirectional ordered map over left values of type L and
// right values of type R.  Both sides are unique: no two pairs share a left
// value and no two pairs share a right value.  See the package documentation
// for the iterator validity and concurrency contracts.
//
// A Bimap must be created with New or NewFunc; the zero value is not usable.
type Bimap[L, R any] struct {
	lessLeft  func(a, b L) bool
	lessRight func(a, b R) bool
	leftTree  *treap.Tree[L]
	rightTree *treap.Tree[R]
	pairs     int
}

// NewFunc returns a new empty map ordered by the passed comparison functions,
// each of which must implement a strict weak ordering over its side.  The
// comparators are fixed for the lifetime of the map.
func NewFunc[L, R any](lessLeft func(a, b L) bool, lessRight func(a, b R) bool) *Bimap[L, R] {
	return &Bimap[L, R]{
		lessLeft:  lessLeft,
		lessRight: lessRight,
		leftTree:  treap.New(lessLeft),
		rightTree: treap.New(lessRight),
	}
}

// New returns a new empty map over naturally ordered types.
func New[L, R cmp.Ordered]() *Bimap[L, R] {
	return NewFunc[L, R](cmp.Less[L], cmp.Less[R])
}

// Len returns the number of pairs stored in the map.
func (m *Bimap[L, R]) Len() int {
	return m.pairs
}

// Empty returns whether the map contains no pairs.
func (m *Bimap[L, R]) Empty() bool {
	return m.pairs == 0
}

// Insert adds the pair (l, r) and returns an iterator positioned at its left
// value.  When l is already present on the left side or r is already present
// on the right side the map is left untouched and the end-of-left iterator is
// returned; a rejected insertion is a normal outcome, not an error, so
// callers that need to know whether the pair went in must compare the result
// against EndLeft.
//
// The duplicate check happens before any mutation, which is what guarantees
// both tree insertions succeed and the record is never linked into only one
// tree.
func (m *Bimap[L, R]) Insert(l L, r R) LeftIterator[L, R] {
	if m.leftTree.Find(l) != m.leftTree.End() ||
		m.rightTree.Find(r) != m.rightTree.End() {

		return m.EndLeft()
	}

	pn := newPairNode(l, r)
	m.rightTree.Insert(&pn.right)
	it := m.leftTree.Insert(&pn.left)
	m.pairs++
	return LeftIterator[L, R]{it: it}
}

// EraseLeft removes the pair at the iterator's position from both sides of
// the map and returns the position of the next larger left value.  Only
// iterators referencing the removed pair, on either side, are invalidated.
// Erasing through the end iterator or an iterator from another map is
// undefined.
func (m *Bimap[L, R]) EraseLeft(it LeftIterator[L, R]) LeftIterator[L, R] {
	pn := it.it.Ref().(*pairNode[L, R])
	next := m.leftTree.Erase(it.it)
	m.rightTree.Erase(treap.At(&pn.right))
	m.pairs--
	return LeftIterator[L, R]{it: next}
}

// EraseRight removes the pair at the iterator's position from both sides of
// the map and returns the position of the next larger right value.  The
// iterator contract matches EraseLeft.
func (m *Bimap[L, R]) EraseRight(it RightIterator[L, R]) RightIterator[L, R] {
	pn := it.it.Ref().(*pairNode[L, R])
	next := m.rightTree.Erase(it.it)
	m.leftTree.Erase(treap.At(&pn.left))
	m.pairs--
	return RightIterator[L, R]{it: next}
}

// DeleteLeft removes the pair whose left value is key and reports whether a
// pair was removed.  It is a no-op on an absent key.
func (m *Bimap[L, R]) DeleteLeft(key L) bool {
	it := m.FindLeft(key)
	if it == m.EndLeft() {
		return false
	}
	m.EraseLeft(it)
	return true
}

// DeleteRight removes the pair whose right value is key and reports whether a
// pair was removed.  It is a no-op on an absent key.
func (m *Bimap[L, R]) DeleteRight(key R) bool {
	it := m.FindRight(key)
	if it == m.EndRight() {
		return false
	}
	m.EraseRight(it)
	return true
}

// EraseLeftRange removes every pair in [first, last) in left order and
// returns last.  The cursor is advanced past the current pair before that
// pair is erased, since erasure invalidates only the erased pair's positions.
func (m *Bimap[L, R]) EraseLeftRange(first, last LeftIterator[L, R]) LeftIterator[L, R] {
	for it := first; it != last; {
		cur := it
		it = it.Next()
		m.EraseLeft(cur)
	}
	return last
}

// EraseRightRange removes every pair in [first, last) in right order and
// returns last.
func (m *Bimap[L, R]) EraseRightRange(first, last RightIterator[L, R]) RightIterator[L, R] {
	for it := first; it != last; {
		cur := it
		it = it.Next()
		m.EraseRight(cur)
	}
	return last
}

// FindLeft returns the position of the pair whose left value is key, or the
// end-of-left iterator when no such pair exists.
func (m *Bimap[L, R]) FindLeft(key L) LeftIterator[L, R] {
	return LeftIterator[L, R]{it: m.leftTree.Find(key)}
}

// FindRight returns the position of the pair whose right value is key, or the
// end-of-right iterator when no such pair exists.
func (m *Bimap[L, R]) FindRight(key R) RightIterator[L, R] {
	return RightIterator[L, R]{it: m.rightTree.Find(key)}
}

// ContainsLeft returns whether a pair with the passed left value exists.
func (m *Bimap[L, R]) ContainsLeft(key L) bool {
	return m.FindLeft(key) != m.EndLeft()
}

// ContainsRight returns whether a pair with the passed right value exists.
func (m *Bimap[L, R]) ContainsRight(key R) bool {
	return m.FindRight(key) != m.EndRight()
}

// AtLeft returns the right value paired with the passed left value.  When the
// key is absent it returns an error wrapping ErrNotFound rather than silently
// producing a default.
func (m *Bimap[L, R]) AtLeft(key L) (R, error) {
	it := m.FindLeft(key)
	if it == m.EndLeft() {
		var zero R
		return zero, fmt.Errorf("left key %v: %w", key, ErrNotFound)
	}
	return it.Value(), nil
}

// AtRight returns the left value paired with the passed right value, or an
// error wrapping ErrNotFound when the key is absent.
func (m *Bimap[L, R]) AtRight(key R) (L, error) {
	it := m.FindRight(key)
	if it == m.EndRight() {
		var zero L
		return zero, fmt.Errorf("right key %v: %w", key, ErrNotFound)
	}
	return it.Value(), nil
}

// AtLeftOrDefault returns the right value paired with the passed left value.
// When the key is absent, the pair (key, zero value of R) is added and the
// zero value is returned.  The right side must stay unique, so a pair that
// already holds the zero value on the right is evicted first; performing the
// eviction before the insertion is what keeps the insertion from being
// rejected.
func (m *Bimap[L, R]) AtLeftOrDefault(key L) R {
	it := m.FindLeft(key)
	if it != m.EndLeft() {
		return it.Value()
	}
	var def R
	m.DeleteRight(def)
	return m.Insert(key, def).Value()
}

// AtRightOrDefault returns the left value paired with the passed right value.
// When the key is absent, the pair (zero value of L, key) is added after
// evicting any pair that already holds the zero value on the left, and the
// zero value is returned.
func (m *Bimap[L, R]) AtRightOrDefault(key R) L {
	it := m.FindRight(key)
	if it != m.EndRight() {
		return it.Value()
	}
	var def L
	m.DeleteLeft(def)
	return m.Insert(def, key).Key()
}

// LowerBoundLeft returns the position of the first pair whose left value does
// not order before key, or the end-of-left iterator when none qualifies.
func (m *Bimap[L, R]) LowerBoundLeft(key L) LeftIterator[L, R] {
	return LeftIterator[L, R]{it: m.leftTree.LowerBound(key)}
}

// UpperBoundLeft returns the position of the first pair whose left value
// orders strictly after key, or the end-of-left iterator when none qualifies.
func (m *Bimap[L, R]) UpperBoundLeft(key L) LeftIterator[L, R] {
	return LeftIterator[L, R]{it: m.leftTree.UpperBound(key)}
}

// LowerBoundRight returns the position of the first pair whose right value
// does not order before key, or the end-of-right iterator when none
// qualifies.
func (m *Bimap[L, R]) LowerBoundRight(key R) RightIterator[L, R] {
	return RightIterator[L, R]{it: m.rightTree.LowerBound(key)}
}

// UpperBoundRight returns the position of the first pair whose right value
// orders strictly after key, or the end-of-right iterator when none
// qualifies.
func (m *Bimap[L, R]) UpperBoundRight(key R) RightIterator[L, R] {
	return RightIterator[L, R]{it: m.rightTree.UpperBound(key)}
}

// BeginLeft returns the position of the smallest left value, or EndLeft when
// the map is empty.
func (m *Bimap[L, R]) BeginLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{it: m.leftTree.Begin()}
}

// EndLeft returns the position one past the largest left value.
func (m *Bimap[L, R]) EndLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{it: m.leftTree.End()}
}

// BeginRight returns the position of the smallest right value, or EndRight
// when the map is empty.
func (m *Bimap[L, R]) BeginRight() RightIterator[L, R] {
	return RightIterator[L, R]{it: m.rightTree.Begin()}
}

// EndRight returns the position one past the largest right value.
func (m *Bimap[L, R]) EndRight() RightIterator[L, R] {
	return RightIterator[L, R]{it: m.rightTree.End()}
}

// ForEachLeft invokes the passed function with every pair in ascending left
// order until the function returns false or the pairs are exhausted.  The
// callback must not mutate the map.
func (m *Bimap[L, R]) ForEachLeft(fn func(l L, r R) bool) {
	for it := m.BeginLeft(); it != m.EndLeft(); it = it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// ForEachRight invokes the passed function with every pair in ascending right
// order until the function returns false or the pairs are exhausted.  The
// callback must not mutate the map.
func (m *Bimap[L, R]) ForEachRight(fn func(r R, l L) bool) {
	for it := m.BeginRight(); it != m.EndRight(); it = it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// AllLeft returns an iterator over every pair in ascending left order for use
// with a range statement.  The map must not be mutated during the iteration.
func (m *Bimap[L, R]) AllLeft() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for it := m.BeginLeft(); it != m.EndLeft(); it = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// AllRight returns an iterator over every pair in ascending right order for
// use with a range statement.  The map must not be mutated during the
// iteration.
func (m *Bimap[L, R]) AllRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for it := m.BeginRight(); it != m.EndRight(); it = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Equal reports whether both maps hold the same pairs in the same left-side
// order.  The comparison steps both maps in left order in lockstep and
// requires every corresponding pair to match on both sides under the
// receiver's comparators, so two maps of equal size that disagree on left
// ordering compare unequal even if they hold the same pair set.  Callers that
// need set semantics should ensure both maps share the same comparators,
// under which identical pair sets always produce identical left orderings.
func (m *Bimap[L, R]) Equal(other *Bimap[L, R]) bool {
	if m.Len() != other.Len() {
		return false
	}

	itA := m.BeginLeft()
	itB := other.BeginLeft()
	for itA != m.EndLeft() && itB != other.EndLeft() {
		la, lb := itA.Key(), itB.Key()
		if m.lessLeft(la, lb) || m.lessLeft(lb, la) {
			return false
		}
		ra, rb := itA.Value(), itB.Value()
		if m.lessRight(ra, rb) || m.lessRight(rb, ra) {
			return false
		}
		itA = itA.Next()
		itB = itB.Next()
	}
	return true
}

// Clone returns a deep copy of the map built by reinserting every pair in
// left order.  Pairs in the source are unique on both sides already, so no
// reinsertion is ever rejected and the copy always ends up with the same
// contents.
func (m *Bimap[L, R]) Clone() *Bimap[L, R] {
	c := NewFunc[L, R](m.lessLeft, m.lessRight)
	for it := m.BeginLeft(); it != m.EndLeft(); it = it.Next() {
		c.Insert(it.Key(), it.Value())
	}
	return c
}

// Clear removes every pair, leaving the map empty.  Every previously obtained
// iterator, including end iterators' neighbors, is invalidated.
func (m *Bimap[L, R]) Clear() {
	m.leftTree.Clear()
	m.rightTree.Clear()
	m.pairs = 0
}
