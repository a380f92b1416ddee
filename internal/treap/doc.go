// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements an intrusive treap data structure that is used to
hold ordered items using a combination of binary search tree and heap
semantics.  It is a self-organizing and randomized data structure that doesn't
require complex operations to maintain balance.  Search, insert, and delete
operations are all expected O(log n).

Unlike a typical container, the treap does not allocate its own nodes.  The
caller supplies initialized, unlinked nodes and remains responsible for their
lifetime, which allows a single record to embed several nodes and thereby
participate in several independently ordered trees at once.  Every tree keeps
a sentinel node whose left child is the real root; iterators positioned at the
sentinel represent the one-past-the-end position, so positions survive
unrelated structural changes and can be walked in both directions through the
parent links.

The package reports no errors.  Operations whose preconditions are violated,
such as erasing the end iterator or inserting a key that is already present,
are caller bugs with undefined behavior rather than recoverable failures.
*/
package treap
