// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestBreedSameOwner(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	alice := newAddress(t)
	matron := s.mint(t, 10, alice, 1)
	sire := s.mint(t, 100, alice, 1)

	utx := &BreedTx{
		BaseTx:   &BaseTx{},
		MatronID: matron.ID,
		SireID:   sire.ID,
	}
	if err := utx.Execute(s.context(100, alice)); err != nil {
		t.Fatal(err)
	}

	matron = s.snake(t, matron.ID)
	sire = s.snake(t, sire.ID)
	if matron.SiringWithID != sire.ID {
		t.Fatalf("matron siring with %d, expected %d", matron.SiringWithID, sire.ID)
	}
	if sire.SiringWithID != 0 {
		t.Fatalf("sire unexpectedly gestating with %d", sire.SiringWithID)
	}
	if matron.CooldownIndex != 1 || sire.CooldownIndex != 1 {
		t.Fatalf("cooldown indexes expected 1/1, got %d/%d", matron.CooldownIndex, sire.CooldownIndex)
	}
	expectedEnd := uint64(100) + s.genesis.Cooldowns[1]
	if matron.CooldownEndTime != expectedEnd {
		t.Fatalf("matron cooldown end expected %d, got %d", expectedEnd, matron.CooldownEndTime)
	}
	if sire.CooldownEndTime != expectedEnd {
		t.Fatalf("sire cooldown end expected %d, got %d", expectedEnd, sire.CooldownEndTime)
	}
	a := utx.Activity()
	if a.Typ != Breed || a.CooldownEndTime != expectedEnd {
		t.Fatalf("unexpected activity %+v", a)
	}
}

func TestBreedCooldownEscalation(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	alice := newAddress(t)
	matron := s.mint(t, 10, alice, 1)
	sire := s.mint(t, 100, alice, 1)

	now := uint64(100)
	utx := &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
	if err := utx.Execute(s.context(now, alice)); err != nil {
		t.Fatal(err)
	}

	// Deliver the child, wait out the cooldown, breed again.
	matron = s.snake(t, matron.ID)
	now = matron.CooldownEndTime
	birth := &GiveBirthTx{BaseTx: &BaseTx{}, MatronID: matron.ID}
	if err := birth.Execute(s.context(now, alice)); err != nil {
		t.Fatal(err)
	}
	if err := utx.Execute(s.context(now, alice)); err != nil {
		t.Fatal(err)
	}

	matron = s.snake(t, matron.ID)
	if matron.CooldownIndex != 2 {
		t.Fatalf("matron cooldown index expected 2, got %d", matron.CooldownIndex)
	}
	if expected := now + s.genesis.Cooldowns[2]; matron.CooldownEndTime != expected {
		t.Fatalf("matron cooldown end expected %d, got %d", expected, matron.CooldownEndTime)
	}
}

func TestBreedViaSiringApproval(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	alice, bob := newAddress(t), newAddress(t)
	matron := s.mint(t, 10, alice, 1)
	sire := s.mint(t, 100, bob, 1)

	utx := &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
	if err := utx.Execute(s.context(100, alice)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("breed without approval expected %v, got %v", ErrUnauthorized, err)
	}

	if err := PutSiringApproval(s.db, sire.ID, alice); err != nil {
		t.Fatal(err)
	}
	if err := utx.Execute(s.context(100, alice)); err != nil {
		t.Fatal(err)
	}

	// The approval is one-shot.
	if _, has, err := GetSiringApproval(s.db, sire.ID); err != nil {
		t.Fatal(err)
	} else if has {
		t.Fatal("siring approval not consumed")
	}
}

func TestBreedAutoEscrowsFee(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	alice := newAddress(t)
	matron := s.mint(t, 10, alice, 1)
	sire := s.mint(t, 100, alice, 1)
	fee := s.genesis.AutoBirthFee
	s.fund(t, alice, fee)

	utx := &BreedTx{
		BaseTx:   &BaseTx{Payment: fee},
		MatronID: matron.ID,
		SireID:   sire.ID,
		Auto:     true,
	}
	if err := utx.Execute(s.context(100, alice)); err != nil {
		t.Fatal(err)
	}

	if bal := s.balance(t, alice); bal != 0 {
		t.Fatalf("fee not charged, balance %d", bal)
	}
	incentive, has, err := GetIncentive(s.db, matron.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !has || incentive != fee {
		t.Fatalf("incentive expected %d, got %d (present %t)", fee, incentive, has)
	}
	if a := utx.Activity(); a.Typ != AutoBirth {
		t.Fatalf("activity type expected %q, got %q", AutoBirth, a.Typ)
	}
}

func TestBreedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, s *testState, sender common.Address) *BreedTx
		now   uint64
		err   error
	}{
		{
			name: "paused",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				if err := SetPaused(s.db, true); err != nil {
					t.Fatal(err)
				}
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
			},
			now: 100,
			err: ErrPaused,
		},
		{
			name: "matron missing",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				sire := s.mint(t, 100, sender, 1)
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: 42, SireID: sire.ID}
			},
			now: 100,
			err: ErrSnakeMissing,
		},
		{
			name: "uncontrolled matron",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				stranger := newAddress(t)
				matron := s.mint(t, 10, stranger, 1)
				sire := s.mint(t, 100, sender, 1)
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
			},
			now: 100,
			err: ErrUnauthorized,
		},
		{
			name: "matron in auction",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				if err := PutListing(s.db, &Listing{
					SnakeID:       matron.ID,
					Kind:          SaleListing,
					Seller:        sender,
					StartingPrice: 100,
					EndingPrice:   100,
					Duration:      60,
					StartTime:     1,
				}); err != nil {
					t.Fatal(err)
				}
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
			},
			now: 100,
			err: ErrInEscrow,
		},
		{
			name: "matron gestating",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				other := s.mint(t, 200, sender, 1)
				first := &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: other.ID}
				if err := first.Execute(s.context(50, sender)); err != nil {
					t.Fatal(err)
				}
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
			},
			now: 10_000_000,
			err: ErrNotReady,
		},
		{
			name: "sire cooling down",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				sire.CooldownEndTime = 10_000
				if err := PutSnake(s.db, sire); err != nil {
					t.Fatal(err)
				}
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: matron.ID, SireID: sire.ID}
			},
			now: 100,
			err: ErrNotReady,
		},
		{
			name: "self",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				snake := s.mint(t, 10, sender, 1)
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: snake.ID, SireID: snake.ID}
			},
			now: 100,
			err: ErrInvalidRelation,
		},
		{
			name: "parent and child",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				child, err := CreateSnake(
					s.db, matron.ID, sire.ID, 1, big.NewInt(56).Bytes(), sender, 1)
				if err != nil {
					t.Fatal(err)
				}
				return &BreedTx{BaseTx: &BaseTx{}, MatronID: child.ID, SireID: sire.ID}
			},
			now: 100,
			err: ErrInvalidRelation,
		},
		{
			name: "auto without fee",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				return &BreedTx{
					BaseTx:   &BaseTx{Payment: s.genesis.AutoBirthFee - 1},
					MatronID: matron.ID,
					SireID:   sire.ID,
					Auto:     true,
				}
			},
			now: 100,
			err: ErrInsufficientPayment,
		},
		{
			name: "auto with unfunded sender",
			setup: func(t *testing.T, s *testState, sender common.Address) *BreedTx {
				matron := s.mint(t, 10, sender, 1)
				sire := s.mint(t, 100, sender, 1)
				return &BreedTx{
					BaseTx:   &BaseTx{Payment: s.genesis.AutoBirthFee},
					MatronID: matron.ID,
					SireID:   sire.ID,
					Auto:     true,
				}
			},
			now: 100,
			err: ErrInsufficientBalance,
		},
	}
	for _, tv := range tests {
		tv := tv
		t.Run(tv.name, func(t *testing.T) {
			t.Parallel()

			s := newTestState(t)
			sender := newAddress(t)
			utx := tv.setup(t, s, sender)
			if err := utx.Execute(s.context(tv.now, sender)); !errors.Is(err, tv.err) {
				t.Fatalf("expected %v, got %v", tv.err, err)
			}
		})
	}
}
