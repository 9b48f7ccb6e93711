// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

var zeroAddress = common.Address{}

func (t *TransactionContext) authorized(owner common.Address) bool {
	return bytes.Equal(owner[:], t.Sender[:])
}

// verifyUnpaused gates every state-mutating operation except the admin
// surface. Read-only queries are never gated.
func verifyUnpaused(t *TransactionContext) error {
	paused, err := IsPaused(t.Database)
	if err != nil {
		return err
	}
	if paused {
		return ErrPaused
	}
	return nil
}

func verifySnake(t *TransactionContext, id uint64) (*Snake, error) {
	s, has, err := GetSnake(t.Database, id)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrSnakeMissing
	}
	return s, nil
}

// controlsSnake reports whether the sender owns the snake or holds its
// transfer approval.
func controlsSnake(t *TransactionContext, id uint64) (bool, error) {
	owner, has, err := OwnerOf(t.Database, id)
	if err != nil {
		return false, err
	}
	if !has {
		return false, ErrSnakeMissing
	}
	if t.authorized(owner) {
		return true, nil
	}
	approved, has, err := GetApproval(t.Database, id)
	if err != nil {
		return false, err
	}
	return has && t.authorized(approved), nil
}

// siringPermitted reports whether the sender may use the sire: either
// matron and sire share an owner, or the sire's owner granted the
// sender a one-shot siring approval. The second return value reports
// that the approval (not ownership) is what permits the action, so the
// caller can consume it.
func siringPermitted(t *TransactionContext, matronID uint64, sireID uint64) (bool, bool, error) {
	matronOwner, _, err := OwnerOf(t.Database, matronID)
	if err != nil {
		return false, false, err
	}
	sireOwner, has, err := OwnerOf(t.Database, sireID)
	if err != nil {
		return false, false, err
	}
	if !has {
		return false, false, ErrSnakeMissing
	}
	if bytes.Equal(matronOwner[:], sireOwner[:]) {
		return true, false, nil
	}
	approved, has, err := GetSiringApproval(t.Database, sireID)
	if err != nil {
		return false, false, err
	}
	if has && t.authorized(approved) {
		return true, true, nil
	}
	return false, false, nil
}

// verifyNotEscrowed rejects snakes currently held by an auction.
func verifyNotEscrowed(t *TransactionContext, id uint64) error {
	listed, err := HasListing(t.Database, id)
	if err != nil {
		return err
	}
	if listed {
		return ErrInEscrow
	}
	return nil
}

// applyBreeding performs the gestation transition. All validation must
// already have happened. Returns the matron's new cooldown end time.
func applyBreeding(t *TransactionContext, matron *Snake, sire *Snake) (uint64, error) {
	g := t.Genesis

	matron.SiringWithID = sire.ID
	matron.CooldownIndex = NextCooldownIndex(g, matron.CooldownIndex)
	matron.CooldownEndTime = t.BlockTime + CooldownDuration(g, matron.CooldownIndex)

	sire.CooldownIndex = NextCooldownIndex(g, sire.CooldownIndex)
	sire.CooldownEndTime = t.BlockTime + CooldownDuration(g, sire.CooldownIndex)

	if err := PutSnake(t.Database, matron); err != nil {
		return 0, err
	}
	if err := PutSnake(t.Database, sire); err != nil {
		return 0, err
	}
	return matron.CooldownEndTime, nil
}

// escrowAutoBirthFee charges the auto-birth fee to the sender and holds
// it against the matron until the matching birth is triggered.
func escrowAutoBirthFee(t *TransactionContext, matronID uint64) error {
	fee := t.Genesis.AutoBirthFee
	if _, err := ModifyBalance(t.Database, t.Sender, false, fee); err != nil {
		return err
	}
	return PutIncentive(t.Database, matronID, fee)
}
