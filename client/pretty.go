// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"time"

	"github.com/fatih/color"

	"github.com/ava-labs/snakevm/chain"
)

// PPActivity pretty prints accepted activity, newest first.
func PPActivity(a []*chain.Activity) error {
	for _, item := range a {
		tmstmp := time.Unix(item.Tmstmp, 0)
		switch item.Typ {
		case chain.Breed, chain.AutoBirth:
			color.Yellow(
				"[%s] %s matron=%d sire=%d cooldownEnd=%d sender=%s",
				tmstmp, item.Typ, item.MatronID, item.SireID, item.CooldownEndTime, item.Sender,
			)
		case chain.Birth:
			color.Green(
				"[%s] %s matron=%d child=%d sender=%s",
				tmstmp, item.Typ, item.MatronID, item.SnakeID, item.Sender,
			)
		case chain.AuctionOpen, chain.AuctionSold, chain.Gen0Open, chain.Withdraw:
			color.Cyan(
				"[%s] %s snake=%d amount=%d sender=%s",
				tmstmp, item.Typ, item.SnakeID, item.Amount, item.Sender,
			)
		default:
			color.White(
				"[%s] %s snake=%d to=%s sender=%s",
				tmstmp, item.Typ, item.SnakeID, item.To, item.Sender,
			)
		}
	}
	return nil
}
