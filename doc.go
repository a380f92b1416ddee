// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bimap implements a bidirectional ordered map: a collection of pairs
(left, right) in which both the left and the right values are unique within
their side, with expected O(log n) lookup, insertion, and removal through
either side and in-order traversal of both sides.

The container is built from two intrusive treaps, one ordered by the left
values and one by the right values.  Every pair is a single allocation that
embeds one node for each tree, so a position found in one ordering can be
flipped to the paired position in the other ordering in O(1) without any
additional bookkeeping.

Iterators are lightweight position values that stay valid until the pair they
reference is removed; removing other pairs never disturbs them.  Flip, Next,
and Prev on the end iterator, and erasing through an end or foreign iterator,
are caller bugs with undefined behavior, mirroring the conventions of the
underlying tree.

Two maps compare Equal only when they hold the same pairs in the same
left-side order.  Since both sides are unique, two maps holding the same set
of pairs always agree on the left ordering when they share a comparator, so
in practice this is a same-pair-set comparison; it is documented here as
positional because that is the contract Equal implements.

The container is not safe for concurrent use.  Callers that share a map
across goroutines must provide their own synchronization around every
operation, including reads.
*/
package bimap
