// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/chain"
	"github.com/ava-labs/snakevm/client"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Halts all non-admin operations (any C-level)",
	RunE:  pauseFunc,
}

func pauseFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	txID, err := client.SignIssueTx(
		context.Background(), cli, &chain.PauseTx{BaseTx: &chain.BaseTx{}}, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("paused (%s)", txID)
	return nil
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resumes operation (CEO only)",
	RunE:  unpauseFunc,
}

func unpauseFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	txID, err := client.SignIssueTx(
		context.Background(), cli, &chain.UnpauseTx{BaseTx: &chain.BaseTx{}}, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("unpaused (%s)", txID)
	return nil
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [ceo|cfo|coo] [to address]",
	Short: "Reassigns a privileged identity (CEO only)",
	RunE:  setRoleFunc,
}

func setRoleFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("expected exactly 2 arguments")
	}
	var role chain.Role
	switch args[0] {
	case "ceo":
		role = chain.RoleCEO
	case "cfo":
		role = chain.RoleCFO
	case "coo":
		role = chain.RoleCOO
	default:
		return fmt.Errorf("unknown role %q", args[0])
	}
	to := common.HexToAddress(args[1])
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.SetRoleTx{
		BaseTx: &chain.BaseTx{},
		Role:   role,
		To:     to,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("set %s to %s (%s)", args[0], to.Hex(), txID)
	return nil
}

var setGeneScienceCmd = &cobra.Command{
	Use:   "set-gene-science [name]",
	Short: "Rebinds the gene mixing implementation (CEO only)",
	RunE:  setGeneScienceFunc,
}

func setGeneScienceFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	utx := &chain.SetGeneScienceTx{
		BaseTx: &chain.BaseTx{},
		Name:   args[0],
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("bound gene science %q (%s)", args[0], txID)
	return nil
}

var setUpgradeCmd = &cobra.Command{
	Use:   "set-upgrade [to address]",
	Short: "Designates a replacement system; latches the pause (CEO only)",
	RunE:  setUpgradeFunc,
}

func setUpgradeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	to := common.HexToAddress(args[0])
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	utx := &chain.SetUpgradeTx{
		BaseTx: &chain.BaseTx{},
		To:     to,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("designated replacement %s (%s)", to.Hex(), txID)
	return nil
}

var rescueCmd = &cobra.Command{
	Use:   "rescue [snake id] [to address]",
	Short: "Returns a snake stranded on the system account (COO only)",
	RunE:  rescueFunc,
}

func rescueFunc(cmd *cobra.Command, args []string) error {
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
	utx := &chain.RescueTx{
		BaseTx:  &chain.BaseTx{},
		SnakeID: snakeID,
		To:      to,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("rescued snake %d to %s (%s)", snakeID, to.Hex(), txID)
	return nil
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Moves the accrued system balance to the CFO (CFO only)",
	RunE:  withdrawFunc,
}

func withdrawFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	txID, err := client.SignIssueTx(
		context.Background(), cli, &chain.WithdrawTx{BaseTx: &chain.BaseTx{}}, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("withdrew system balance (%s)", txID)
	return nil
}
