// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"
)

func TestCooldownDuration(t *testing.T) {
	t.Parallel()

	g := DefaultGenesis()
	last := uint32(len(g.Cooldowns) - 1)

	if d := CooldownDuration(g, 0); d != g.Cooldowns[0] {
		t.Fatalf("index 0 duration expected %d, got %d", g.Cooldowns[0], d)
	}
	if d := CooldownDuration(g, last); d != g.Cooldowns[last] {
		t.Fatalf("last index duration expected %d, got %d", g.Cooldowns[last], d)
	}
	// Out-of-range indexes clamp to the cap.
	if d := CooldownDuration(g, last+100); d != g.Cooldowns[last] {
		t.Fatalf("clamped duration expected %d, got %d", g.Cooldowns[last], d)
	}

	// Table must be non-decreasing.
	for i := 1; i < len(g.Cooldowns); i++ {
		if g.Cooldowns[i] < g.Cooldowns[i-1] {
			t.Fatalf("cooldown table decreases at %d", i)
		}
	}
}

func TestNextCooldownIndex(t *testing.T) {
	t.Parallel()

	g := DefaultGenesis()
	last := uint32(len(g.Cooldowns) - 1)

	if n := NextCooldownIndex(g, 0); n != 1 {
		t.Fatalf("next of 0 expected 1, got %d", n)
	}
	if n := NextCooldownIndex(g, last-1); n != last {
		t.Fatalf("next of %d expected %d, got %d", last-1, last, n)
	}
	// Saturates at the last entry no matter how often it advances.
	idx := last
	for i := 0; i < len(g.Cooldowns)+2; i++ {
		idx = NextCooldownIndex(g, idx)
	}
	if idx != last {
		t.Fatalf("saturated index expected %d, got %d", last, idx)
	}
}
