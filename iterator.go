// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bimap

import (
	"github.com/ordmap/bimap/internal/treap"
)

// LeftIterator represents a position in the left-side ordering of a Bimap.
// It is a small immutable value: the traversal methods return the adjacent
// position instead of mutating the receiver, and two iterators compare equal
// with == exactly when they reference the same position.  A position remains
// valid until the pair it references is removed from the map.
type LeftIterator[L, R any] struct {
	it treap.Iterator[L]
}

// Key returns the left value at the iterator's position.  It must not be
// called on the end iterator.
func (it LeftIterator[L, R]) Key() L {
	return it.it.Key()
}

// Next returns the position of the next larger left value.  Calling Next on
// the end iterator is undefined.
func (it LeftIterator[L, R]) Next() LeftIterator[L, R] {
	return LeftIterator[L, R]{it: it.it.Next()}
}

// Prev returns the position of the next smaller left value.  Prev of the end
// iterator is the position of the largest left value; Prev of the first
// position is undefined.
func (it LeftIterator[L, R]) Prev() LeftIterator[L, R] {
	return LeftIterator[L, R]{it: it.it.Prev()}
}

// Flip returns the position of the same pair in the right-side ordering.  The
// two sides of a pair share one record, so this is a constant-time step with
// no searching involved.  Flip of the end iterator is undefined.
func (it LeftIterator[L, R]) Flip() RightIterator[L, R] {
	pn := it.it.Ref().(*pairNode[L, R])
	return RightIterator[L, R]{it: treap.At(&pn.right)}
}

// Value returns the right value paired with the left value at the iterator's
// position.  It is shorthand for Flip().Key() and must not be called on the
// end iterator.
func (it LeftIterator[L, R]) Value() R {
	return it.Flip().Key()
}

// RightIterator represents a position in the right-side ordering of a Bimap.
// It behaves exactly like LeftIterator with the sides exchanged.
type RightIterator[L, R any] struct {
	it treap.Iterator[R]
}

// Key returns the right value at the iterator's position.  It must not be
// called on the end iterator.
func (it RightIterator[L, R]) Key() R {
	return it.it.Key()
}

// Next returns the position of the next larger right value.  Calling Next on
// the end iterator is undefined.
func (it RightIterator[L, R]) Next() RightIterator[L, R] {
	return RightIterator[L, R]{it: it.it.Next()}
}

// Prev returns the position of the next smaller right value.  Prev of the end
// iterator is the position of the largest right value; Prev of the first
// position is undefined.
func (it RightIterator[L, R]) Prev() RightIterator[L, R] {
	return RightIterator[L, R]{it: it.it.Prev()}
}

// Flip returns the position of the same pair in the left-side ordering in
// constant time.  Flip of the end iterator is undefined.
func (it RightIterator[L, R]) Flip() LeftIterator[L, R] {
	pn := it.it.Ref().(*pairNode[L, R])
	return LeftIterator[L, R]{it: treap.At(&pn.left)}
}

// Value returns the left value paired with the right value at the iterator's
// position.  It is shorthand for Flip().Key() and must not be called on the
// end iterator.
func (it RightIterator[L, R]) Value() L {
	return it.Flip().Key()
}
