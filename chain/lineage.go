// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// ValidMating decides whether two snakes may produce offspring together.
// It is evaluated both directions by construction and must run before
// any breeding mutation. Zero parent ids never count as shared parents,
// so founding snakes are unrelated to each other.
func ValidMating(matron *Snake, sire *Snake) bool {
	// A snake can't breed with itself.
	if matron.ID == sire.ID {
		return false
	}

	// A snake can't breed with its parents.
	if matron.MatronID == sire.ID || matron.SireID == sire.ID {
		return false
	}
	if sire.MatronID == matron.ID || sire.SireID == matron.ID {
		return false
	}

	// Founding snakes have no recorded lineage to collide on.
	if sire.IsGen0() || matron.IsGen0() {
		return true
	}

	// Siblings (full or half) can't breed.
	if sire.MatronID == matron.MatronID || sire.MatronID == matron.SireID {
		return false
	}
	if sire.SireID == matron.MatronID || sire.SireID == matron.SireID {
		return false
	}
	return true
}
