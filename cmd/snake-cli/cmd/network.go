// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/client"
)

var networkCmd = &cobra.Command{
	Use:   "network [options]",
	Short: "View information about this instance of the SnakeVM",
	RunE:  networkFunc,
}

func networkFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	ok, err := cli.Ping()
	if err != nil {
		return err
	}
	paused, err := cli.Paused()
	if err != nil {
		return err
	}
	supply, err := cli.TotalSupply()
	if err != nil {
		return err
	}
	stats, err := cli.Gen0()
	if err != nil {
		return err
	}
	color.Cyan(
		"alive=%t paused=%t snakes=%d gen0=%d promo=%d nextGen0Price=%d",
		ok, paused, supply, stats.Gen0Count, stats.PromoCount, stats.NextPrice,
	)
	return nil
}
