// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Payment is the value attached to the operation. Paying operations
	// treat it as a ceiling: only the computed price or fee is actually
	// charged, so overpayment never leaves the sender's account.
	Payment uint64 `serialize:"true" json:"payment"`
}

func (b *BaseTx) GetPayment() uint64 { return b.Payment }

func (b *BaseTx) ExecuteBase() error { return nil }

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{Payment: b.Payment}
}
