// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Activity types.
const (
	Mint          = "mint"
	Breed         = "breed"
	AutoBirth     = "autobirth"
	Birth         = "birth"
	Transfer      = "transfer"
	Approve       = "approve"
	ApproveSiring = "approveSiring"
	AuctionOpen   = "auctionOpen"
	AuctionSold   = "auctionSold"
	AuctionCancel = "auctionCancel"
	Gen0Open      = "gen0Open"
	Paused        = "paused"
	Unpaused      = "unpaused"
	RoleChange    = "roleChange"
	GeneBinding   = "geneBinding"
	Upgrade       = "upgrade"
	Rescue        = "rescue"
	Withdraw      = "withdraw"
)

// Activity is the outward-facing record of a successful operation. An
// AutoBirth activity carries the matron and its new cooldown end time so
// an external worker can schedule the matching give-birth call.
type Activity struct {
	Tmstmp int64  `serialize:"true" json:"timestamp"`
	Sender string `serialize:"true" json:"sender"`
	Typ    string `serialize:"true" json:"type"`

	SnakeID         uint64 `serialize:"true" json:"snakeId,omitempty"`
	MatronID        uint64 `serialize:"true" json:"matronId,omitempty"`
	SireID          uint64 `serialize:"true" json:"sireId,omitempty"`
	CooldownEndTime uint64 `serialize:"true" json:"cooldownEndTime,omitempty"`
	To              string `serialize:"true" json:"to,omitempty"`
	Amount          uint64 `serialize:"true" json:"amount,omitempty"`
}
