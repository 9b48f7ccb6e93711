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

var giveBirthCmd = &cobra.Command{
	Use:   "give-birth [matron id]",
	Short: "Delivers a due birth and claims any escrowed incentive",
	RunE:  giveBirthFunc,
}

func giveBirthFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	matronID, err := parseID(args[0])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.GiveBirthTx{
		BaseTx:   &chain.BaseTx{},
		MatronID: matronID,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("delivered birth for matron %d (%s)", matronID, txID)
	return nil
}
