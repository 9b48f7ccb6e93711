// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/snakevm/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [snake id]",
	Short: "Fetches a snake and its owner",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	snake, owner, err := cli.Snake(id)
	if err != nil {
		return err
	}

	color.Green(
		"snake %d: genes=%s generation=%d matron=%d sire=%d owner=%s",
		snake.ID, snake.GenesBig(), snake.Generation, snake.MatronID, snake.SireID, owner.Hex(),
	)
	if snake.IsGestating() {
		color.Yellow("gestating with sire %d, due at %d", snake.SiringWithID, snake.CooldownEndTime)
	} else if snake.CooldownEndTime > 0 {
		color.Yellow("cooldown index %d, ends at %d", snake.CooldownIndex, snake.CooldownEndTime)
	}

	if verbose {
		ready, err := cli.IsReadyToBreed(id)
		if err != nil {
			return err
		}
		color.Blue("readyToBreed=%t", ready)
	}
	return nil
}
