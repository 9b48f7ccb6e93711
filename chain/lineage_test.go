// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"
)

func TestValidMating(t *testing.T) {
	t.Parallel()

	gen0A := &Snake{ID: 1}
	gen0B := &Snake{ID: 2}
	gen0C := &Snake{ID: 3}

	// Children of A and B.
	childAB1 := &Snake{ID: 4, MatronID: 1, SireID: 2, Generation: 1}
	childAB2 := &Snake{ID: 5, MatronID: 1, SireID: 2, Generation: 1}
	// Half sibling: shares matron A only.
	childAC := &Snake{ID: 6, MatronID: 1, SireID: 3, Generation: 1}
	// Unrelated second-generation snake.
	childBC := &Snake{ID: 7, MatronID: 2, SireID: 3, Generation: 1}
	grandchild := &Snake{ID: 8, MatronID: 4, SireID: 7, Generation: 2}

	tt := []struct {
		name   string
		matron *Snake
		sire   *Snake
		valid  bool
	}{
		{"self", gen0A, gen0A, false},
		{"two founding snakes", gen0A, gen0B, true},
		{"child with matron", childAB1, gen0A, false},
		{"child with sire", childAB1, gen0B, false},
		{"matron with child", gen0A, childAB1, false},
		{"sire with child", gen0B, childAB1, false},
		{"full siblings", childAB1, childAB2, false},
		{"half siblings via matron", childAB1, childAC, false},
		{"sibling check is symmetric", childAC, childAB1, false},
		{"unrelated gen1", childAB1, childBC, true},
		{"child with unrelated founding snake", childAB1, gen0C, true},
		{"grandchild with grandparent", grandchild, gen0B, true},
		{"grandchild with parent", grandchild, childAB1, false},
	}
	for _, tv := range tt {
		if got := ValidMating(tv.matron, tv.sire); got != tv.valid {
			t.Fatalf("%s: expected %v, got %v", tv.name, tv.valid, got)
		}
		// The predicate must agree in both directions.
		if got := ValidMating(tv.sire, tv.matron); got != tv.valid {
			t.Fatalf("%s (reversed): expected %v, got %v", tv.name, tv.valid, got)
		}
	}
}
