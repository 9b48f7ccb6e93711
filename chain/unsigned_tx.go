// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetPayment() uint64

	// ExecuteBase performs stateless validation.
	ExecuteBase() error
	// Execute validates every precondition against state and only then
	// mutates. The first violated condition aborts the whole operation.
	Execute(*TransactionContext) error
	// Activity reports what happened; only meaningful after a
	// successful Execute.
	Activity() *Activity
}
