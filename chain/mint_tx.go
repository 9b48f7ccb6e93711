// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &MintTx{}

// MintTx creates a promotional founding snake with chosen genes,
// counted against the genesis promo limit. COO only.
type MintTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Genes []byte `serialize:"true" json:"genes"`

	// To receives the snake; the COO itself when zero.
	To common.Address `serialize:"true" json:"to"`

	snakeID uint64
}

func (m *MintTx) ExecuteBase() error {
	if len(m.Genes) == 0 {
		return ErrInvalidGenes
	}
	return nil
}

func (m *MintTx) Execute(t *TransactionContext) error {
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.COO) {
		return ErrUnauthorized
	}
	count, err := PromoCount(t.Database)
	if err != nil {
		return err
	}
	if count >= t.Genesis.PromoLimit {
		return ErrMintLimit
	}

	to := m.To
	if bytes.Equal(to[:], zeroAddress[:]) {
		to = roles.COO
	}
	s, err := CreateSnake(t.Database, 0, 0, 0, m.Genes, to, t.BlockTime)
	if err != nil {
		return err
	}
	m.snakeID = s.ID
	return incCounter(t.Database, promoCountTag)
}

func (m *MintTx) Copy() UnsignedTransaction {
	genes := make([]byte, len(m.Genes))
	copy(genes, m.Genes)
	to := make([]byte, common.AddressLength)
	copy(to, m.To[:])
	return &MintTx{
		BaseTx: m.BaseTx.Copy(),
		Genes:  genes,
		To:     common.BytesToAddress(to),
	}
}

func (m *MintTx) Activity() *Activity {
	return &Activity{
		Typ:     Mint,
		SnakeID: m.snakeID,
		To:      m.To.Hex(),
	}
}
