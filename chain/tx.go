// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digest []byte
	bytes  []byte
	id     ids.ID
	sender common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

func UnsignedBytes(utx UnsignedTransaction) ([]byte, error) {
	return Marshal(utx)
}

func (t *Transaction) Init() error {
	utx, err := UnsignedBytes(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digest = DigestHash(utx)

	pk, err := DeriveSender(t.digest, t.Signature)
	if err != nil {
		return err
	}
	t.sender = crypto.PubkeyToAddress(*pk)

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	h := DigestHash(t.bytes)
	id, err := ids.ToID(h)
	if err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) DigestHash() []byte { return t.digest }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Sender() common.Address { return t.sender }

// Execute runs the operation against the supplied (versioned) database.
// The caller is responsible for committing on success and discarding on
// failure.
func (t *Transaction) Execute(g *Genesis, db database.Database, blockTime uint64) error {
	if err := t.UnsignedTransaction.ExecuteBase(); err != nil {
		return err
	}
	// A processed tx id must not be executed again.
	has, err := HasTransaction(db, t.id)
	if err != nil {
		return err
	}
	if has {
		return ErrDuplicateTx
	}
	tc := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    t.sender,
	}
	if err := t.UnsignedTransaction.Execute(tc); err != nil {
		return err
	}
	return SetTransaction(db, t)
}
