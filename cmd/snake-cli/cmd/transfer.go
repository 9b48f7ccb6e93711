// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/chain"
	"github.com/ava-labs/snakevm/client"
)

var transferCmd = &cobra.Command{
	Use:   "transfer [snake id] [to address]",
	Short: "Transfers a snake to another address",
	RunE:  transferFunc,
}

func transferFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("expected exactly 2 arguments")
	}
	snakeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	to := common.HexToAddress(args[1])
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.TransferTx{
		BaseTx:  &chain.BaseTx{},
		SnakeID: snakeID,
		To:      to,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("transferred snake %d to %s (%s)", snakeID, to.Hex(), txID)
	return nil
}
