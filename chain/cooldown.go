// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// CooldownDuration returns the wait applied at the given table index.
// Out-of-range indexes clamp to the final entry.
func CooldownDuration(g *Genesis, index uint32) uint64 {
	if int(index) >= len(g.Cooldowns) {
		return g.Cooldowns[len(g.Cooldowns)-1]
	}
	return g.Cooldowns[index]
}

// NextCooldownIndex advances the index by one, saturating at the last
// table entry.
func NextCooldownIndex(g *Genesis, index uint32) uint32 {
	if int(index)+1 >= len(g.Cooldowns) {
		return uint32(len(g.Cooldowns) - 1)
	}
	return index + 1
}
