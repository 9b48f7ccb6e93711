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

var mintTo string

func init() {
	mintCmd.PersistentFlags().StringVar(
		&mintTo,
		"to",
		"",
		"recipient address (the COO itself when empty)",
	)
}

var mintCmd = &cobra.Command{
	Use:   "mint [genes] [options]",
	Short: "Mints a promotional founding snake (COO only)",
	RunE:  mintFunc,
}

func mintFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	genes, err := parseGenes(args[0])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.MintTx{
		BaseTx: &chain.BaseTx{},
		Genes:  genes,
		To:     common.HexToAddress(mintTo),
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("minted promo snake (%s)", txID)
	return nil
}
