// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &TransferTx{}

type TransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID uint64         `serialize:"true" json:"snakeId"`
	To      common.Address `serialize:"true" json:"to"`
}

func (tr *TransferTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}
	// Sending to the zero address would orphan the snake. Sending to
	// the system account is allowed (that is how discarding works).
	if bytes.Equal(tr.To[:], zeroAddress[:]) {
		return ErrZeroAddress
	}
	if bytes.Equal(tr.To[:], t.Sender[:]) {
		return ErrNonActionable
	}
	ok, err := controlsSnake(t, tr.SnakeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	if err := verifyNotEscrowed(t, tr.SnakeID); err != nil {
		return err
	}
	return SetOwner(t.Database, tr.SnakeID, tr.To)
}

func (tr *TransferTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, tr.To[:])
	return &TransferTx{
		BaseTx:  tr.BaseTx.Copy(),
		SnakeID: tr.SnakeID,
		To:      common.BytesToAddress(to),
	}
}

func (tr *TransferTx) Activity() *Activity {
	return &Activity{
		Typ:     Transfer,
		SnakeID: tr.SnakeID,
		To:      tr.To.Hex(),
	}
}
