// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "snake-cli" implements snakevm client operation interface.
package cmd

import (
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/chain"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string
	verbose        bool
	workDir        string

	rootCmd = &cobra.Command{
		Use:        "snake-cli",
		Short:      "SnakeVM CLI",
		SuggestFor: []string{"snake-cli", "snakecli", "snakectl"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		networkCmd,
		infoCmd,
		ownedCmd,
		balanceCmd,
		activityCmd,
		mintCmd,
		breedCmd,
		giveBirthCmd,
		transferCmd,
		approveCmd,
		approveSiringCmd,
		auctionCmd,
		bidCmd,
		cancelCmd,
		gen0Cmd,
		pauseCmd,
		unpauseCmd,
		setRoleCmd,
		setGeneScienceCmd,
		setUpgradeCmd,
		rescueCmd,
		withdrawCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".snake-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9090",
		"RPC endpoint for VM",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// parseGenes decodes a decimal genome literal.
func parseGenes(s string) ([]byte, error) {
	g, ok := new(big.Int).SetString(s, 10)
	if !ok || g.Sign() < 0 {
		return nil, chain.ErrNotANumber
	}
	return g.Bytes(), nil
}
