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
	auctionSiring        bool
	auctionStartingPrice uint64
	auctionEndingPrice   uint64
	auctionDuration      uint64
)

func init() {
	auctionCmd.PersistentFlags().BoolVar(
		&auctionSiring,
		"siring",
		false,
		"offer siring rights instead of ownership",
	)
	auctionCmd.PersistentFlags().Uint64Var(
		&auctionStartingPrice,
		"starting-price",
		0,
		"price at the start of the auction",
	)
	auctionCmd.PersistentFlags().Uint64Var(
		&auctionEndingPrice,
		"ending-price",
		0,
		"price at the end of the decay window",
	)
	auctionCmd.PersistentFlags().Uint64Var(
		&auctionDuration,
		"duration",
		86400,
		"seconds over which the price moves linearly",
	)
}

var auctionCmd = &cobra.Command{
	Use:   "auction [snake id] [options]",
	Short: "Opens a declining-price auction for a snake",
	RunE:  auctionFunc,
}

func auctionFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	snakeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	kind := chain.SaleListing
	if auctionSiring {
		kind = chain.SiringListing
	}
	cli := client.New(uri, requestTimeout)
	utx := &chain.CreateAuctionTx{
		BaseTx:        &chain.BaseTx{},
		SnakeID:       snakeID,
		Kind:          kind,
		StartingPrice: auctionStartingPrice,
		EndingPrice:   auctionEndingPrice,
		Duration:      auctionDuration,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green(
		"opened auction for snake %d at %d..%d over %ds (%s)",
		snakeID, auctionStartingPrice, auctionEndingPrice, auctionDuration, txID,
	)
	return nil
}

var bidPayment uint64

func init() {
	bidCmd.PersistentFlags().Uint64Var(
		&bidPayment,
		"payment",
		0,
		"payment ceiling attached to the bid",
	)
	bidCmd.PersistentFlags().Uint64Var(
		&bidMatron,
		"matron",
		0,
		"matron to breed when bidding on a siring auction",
	)
}

var bidMatron uint64

var bidCmd = &cobra.Command{
	Use:   "bid [snake id] [options]",
	Short: "Bids on an open auction",
	RunE:  bidFunc,
}

func bidFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	snakeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	listing, price, err := cli.Auction(snakeID)
	if err != nil {
		return err
	}
	if verbose {
		color.Blue(
			"listing kind=%d seller=%s currentPrice=%d",
			listing.Kind, listing.Seller.Hex(), price,
		)
	}
	payment := bidPayment
	if payment == 0 {
		payment = price
	}

	utx := &chain.BidTx{
		BaseTx:   &chain.BaseTx{Payment: payment},
		SnakeID:  snakeID,
		MatronID: bidMatron,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("bid %d on snake %d (%s)", payment, snakeID, txID)
	return nil
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [snake id]",
	Short: "Cancels an open auction and releases the snake",
	RunE:  cancelFunc,
}

func cancelFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	snakeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.CancelAuctionTx{
		BaseTx:  &chain.BaseTx{},
		SnakeID: snakeID,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("cancelled auction for snake %d (%s)", snakeID, txID)
	return nil
}

var gen0Cmd = &cobra.Command{
	Use:   "gen0 [genes]",
	Short: "Mints a founding snake and lists it for sale (COO only)",
	RunE:  gen0Func,
}

func gen0Func(cmd *cobra.Command, args []string) error {
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
	utx := &chain.CreateGen0AuctionTx{
		BaseTx: &chain.BaseTx{},
		Genes:  genes,
	}
	txID, err := client.SignIssueTx(context.Background(), cli, utx, priv, client.WithPollTx())
	if err != nil {
		return err
	}
	color.Green("opened gen0 auction (%s)", txID)
	return nil
}
