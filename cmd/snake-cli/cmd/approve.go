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

var approveCmd = &cobra.Command{
	Use:   "approve [snake id] [to address]",
	Short: "Grants another address the right to take a snake",
	RunE:  approveFunc,
}

func approveFunc(cmd *cobra.Command, args []string) error {
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
	utx := &chain.ApproveTx{
		BaseTx:  &chain.BaseTx{},
		SnakeID: snakeID,
		To:      to,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("approved %s for snake %d (%s)", to.Hex(), snakeID, txID)
	return nil
}

var approveSiringCmd = &cobra.Command{
	Use:   "approve-siring [sire id] [to address]",
	Short: "Grants another address a one-shot right to use a snake as sire",
	RunE:  approveSiringFunc,
}

func approveSiringFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("expected exactly 2 arguments")
	}
	sireID, err := parseID(args[0])
	if err != nil {
		return err
	}
	to := common.HexToAddress(args[1])
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.ApproveSiringTx{
		BaseTx:  &chain.BaseTx{},
		SnakeID: sireID,
		To:      to,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("approved %s to sire with snake %d (%s)", to.Hex(), sireID, txID)
	return nil
}
