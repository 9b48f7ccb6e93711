// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var (
	_ UnsignedTransaction = &ApproveTx{}
	_ UnsignedTransaction = &ApproveSiringTx{}
)

// ApproveTx grants another address the right to take ownership of a
// snake. Overwritten by re-approval, cleared on transfer.
type ApproveTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID uint64         `serialize:"true" json:"snakeId"`
	To      common.Address `serialize:"true" json:"to"`
}

func (a *ApproveTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}
	owner, has, err := OwnerOf(t.Database, a.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return ErrSnakeMissing
	}
	if !t.authorized(owner) {
		return ErrUnauthorized
	}
	return PutApproval(t.Database, a.SnakeID, a.To)
}

func (a *ApproveTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, a.To[:])
	return &ApproveTx{
		BaseTx:  a.BaseTx.Copy(),
		SnakeID: a.SnakeID,
		To:      common.BytesToAddress(to),
	}
}

func (a *ApproveTx) Activity() *Activity {
	return &Activity{
		Typ:     Approve,
		SnakeID: a.SnakeID,
		To:      a.To.Hex(),
	}
}

// ApproveSiringTx grants another address a one-shot right to use the
// snake as a sire. Consumed by the breeding that uses it.
type ApproveSiringTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID uint64         `serialize:"true" json:"snakeId"`
	To      common.Address `serialize:"true" json:"to"`
}

func (a *ApproveSiringTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}
	owner, has, err := OwnerOf(t.Database, a.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return ErrSnakeMissing
	}
	if !t.authorized(owner) {
		return ErrUnauthorized
	}
	return PutSiringApproval(t.Database, a.SnakeID, a.To)
}

func (a *ApproveSiringTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, a.To[:])
	return &ApproveSiringTx{
		BaseTx:  a.BaseTx.Copy(),
		SnakeID: a.SnakeID,
		To:      common.BytesToAddress(to),
	}
}

func (a *ApproveSiringTx) Activity() *Activity {
	return &Activity{
		Typ:     ApproveSiring,
		SnakeID: a.SnakeID,
		To:      a.To.Hex(),
	}
}
