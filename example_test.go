// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bimap_test

import (
	"fmt"

	"github.com/ordmap/bimap"
)

// This example builds a small two-way index and resolves it in both
// directions.
func Example() {
	m := bimap.New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	// A colliding insertion is rejected and reported through the returned
	// iterator.
	if m.Insert(3, "tres") == m.EndLeft() {
		fmt.Println("3 is already mapped")
	}

	name, _ := m.AtLeft(2)
	number, _ := m.AtRight("three")
	fmt.Println(name, number)

	// Each side iterates in its own order.
	for l, r := range m.AllLeft() {
		fmt.Println(l, r)
	}

	// Output:
	// 3 is already mapped
	// two 3
	// 1 one
	// 2 two
	// 3 three
}

// This example navigates from a position on one side of the map to the paired
// position on the other side.
func ExampleLeftIterator_Flip() {
	m := bimap.New[string, int]()
	m.Insert("ansible", 12)
	m.Insert("beacon", 7)

	it := m.FindLeft("beacon")
	fmt.Println(it.Flip().Key())

	// Output:
	// 7
}
