// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/client"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Fetches an account balance (own address when omitted)",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	var addr common.Address
	if len(args) == 1 {
		addr = common.HexToAddress(args[0])
	} else {
		priv, err := crypto.LoadECDSA(privateKeyFile)
		if err != nil {
			return err
		}
		addr = crypto.PubkeyToAddress(priv.PublicKey)
	}

	cli := client.New(uri, requestTimeout)
	bal, err := cli.Balance(addr)
	if err != nil {
		return err
	}

	color.Green("address %s balance %d", addr.Hex(), bal)
	return nil
}
