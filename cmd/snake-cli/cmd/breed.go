// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/chain"
	"github.com/ava-labs/snakevm/client"
)

var (
	breedAuto    bool
	breedPayment uint64
)

func init() {
	breedCmd.PersistentFlags().BoolVar(
		&breedAuto,
		"auto",
		false,
		"escrow the auto-birth fee so a worker delivers the birth",
	)
	breedCmd.PersistentFlags().Uint64Var(
		&breedPayment,
		"payment",
		0,
		"payment ceiling attached to the transaction",
	)
}

var breedCmd = &cobra.Command{
	Use:   "breed [matron id] [sire id] [options]",
	Short: "Breeds two snakes; the matron becomes gestating",
	RunE:  breedFunc,
}

func breedFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("expected exactly 2 arguments")
	}
	matronID, err := parseID(args[0])
	if err != nil {
		return err
	}
	sireID, err := parseID(args[1])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	ok, err := cli.CanBreedWith(matronID, sireID)
	if err != nil {
		return err
	}
	if !ok {
		return chain.ErrInvalidRelation
	}

	utx := &chain.BreedTx{
		BaseTx:   &chain.BaseTx{Payment: breedPayment},
		MatronID: matronID,
		SireID:   sireID,
		Auto:     breedAuto,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("bred matron %d with sire %d (%s)", matronID, sireID, txID)
	return nil
}
