// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/chain"
)

var (
	genesisFile string

	autoBirthFee      int64
	ownerCut          int64
	gen0StartingPrice int64
	gen0Limit         int64
	promoLimit        int64

	ceoAddress string
	cfoAddress string
	cooAddress string
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&autoBirthFee,
		"auto-birth-fee",
		-1,
		"fee escrowed with an auto-incentivized breeding",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&ownerCut,
		"owner-cut",
		-1,
		"auctioneer cut of successful bids, in basis points",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&gen0StartingPrice,
		"gen0-starting-price",
		-1,
		"floor price for founding snake auctions",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&gen0Limit,
		"gen0-limit",
		-1,
		"maximum founding snakes released by auction",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&promoLimit,
		"promo-limit",
		-1,
		"maximum promotional snakes minted directly",
	)
	genesisCmd.PersistentFlags().StringVar(
		&ceoAddress,
		"ceo-address",
		"",
		"CEO address (hex)",
	)
	genesisCmd.PersistentFlags().StringVar(
		&cfoAddress,
		"cfo-address",
		"",
		"CFO address (hex)",
	)
	genesisCmd.PersistentFlags().StringVar(
		&cooAddress,
		"coo-address",
		"",
		"COO address (hex)",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [allocations file] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("invalid args")
		}
		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	if autoBirthFee >= 0 {
		genesis.AutoBirthFee = uint64(autoBirthFee)
	}
	if ownerCut >= 0 {
		genesis.OwnerCut = uint64(ownerCut)
	}
	if gen0StartingPrice >= 0 {
		genesis.Gen0StartingPrice = uint64(gen0StartingPrice)
	}
	if gen0Limit >= 0 {
		genesis.Gen0Limit = uint64(gen0Limit)
	}
	if promoLimit >= 0 {
		genesis.PromoLimit = uint64(promoLimit)
	}
	if len(ceoAddress) > 0 {
		genesis.CEOAddress = common.HexToAddress(ceoAddress)
	}
	if len(cfoAddress) > 0 {
		genesis.CFOAddress = common.HexToAddress(cfoAddress)
	}
	if len(cooAddress) > 0 {
		genesis.COOAddress = common.HexToAddress(cooAddress)
	}

	a, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	allocs := []*chain.CustomAllocation{}
	if err := json.Unmarshal(a, &allocs); err != nil {
		return err
	}
	genesis.CustomAllocation = allocs

	b, err := json.Marshal(genesis)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
