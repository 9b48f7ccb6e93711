// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"crypto/ecdsa"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/ava-labs/snakevm/chain"
)

type Op struct {
	pollTx bool
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its acceptance.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// Signs and issues the transaction.
func SignIssueTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	ub, err := chain.UnsignedBytes(utx)
	if err != nil {
		return ids.Empty, err
	}
	sig, err := chain.Sign(chain.DigestHash(ub), priv)
	if err != nil {
		return ids.Empty, err
	}

	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return ids.Empty, err
	}

	txID, err = cli.IssueRawTx(tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		accepted, err := cli.PollTx(ctx, txID)
		if err != nil {
			return ids.Empty, err
		}
		if !accepted {
			color.Yellow("transaction %s not accepted", txID)
		} else {
			color.Green("transaction %s accepted", txID)
		}
	}

	return txID, nil
}
