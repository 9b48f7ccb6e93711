// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// basisPoints is the denominator for the auctioneer cut.
	basisPoints = 10000
)

type CustomAllocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Cooldowns is the escalating wait table (in seconds) applied to
	// snakes after each breeding action. The last entry is the cap.
	Cooldowns []uint64 `serialize:"true" json:"cooldowns"`

	// AutoBirthFee is the minimum payment that must accompany an
	// auto-incentivized breeding request. The fee is escrowed and later
	// paid to whoever triggers the matching birth.
	AutoBirthFee uint64 `serialize:"true" json:"autoBirthFee"`

	// OwnerCut is the auctioneer's share of a successful bid, in basis
	// points (out of 10000).
	OwnerCut uint64 `serialize:"true" json:"ownerCut"`

	Gen0StartingPrice   uint64 `serialize:"true" json:"gen0StartingPrice"`
	Gen0AuctionDuration uint64 `serialize:"true" json:"gen0AuctionDuration"`
	Gen0Limit           uint64 `serialize:"true" json:"gen0Limit"`
	PromoLimit          uint64 `serialize:"true" json:"promoLimit"`

	CEOAddress common.Address `serialize:"true" json:"ceoAddress"`
	CFOAddress common.Address `serialize:"true" json:"cfoAddress"`
	COOAddress common.Address `serialize:"true" json:"cooAddress"`

	// GeneScience is the name of the registered gene science
	// implementation bound at genesis. May be rebound later by the CEO.
	GeneScience string `serialize:"true" json:"geneScience"`

	CustomAllocation []*CustomAllocation `serialize:"true" json:"customAllocation"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Cooldowns: []uint64{
			60,        // 1 minute
			2 * 60,    // 2 minutes
			5 * 60,    // 5 minutes
			10 * 60,   // 10 minutes
			30 * 60,   // 30 minutes
			3600,      // 1 hour
			2 * 3600,  // 2 hours
			4 * 3600,  // 4 hours
			8 * 3600,  // 8 hours
			16 * 3600, // 16 hours
			86400,     // 1 day
			2 * 86400, // 2 days
			4 * 86400, // 4 days
			7 * 86400, // 7 days
		},
		AutoBirthFee:        2000,
		OwnerCut:            375, // 3.75%
		Gen0StartingPrice:   10000,
		Gen0AuctionDuration: 86400,
		Gen0Limit:           45000,
		PromoLimit:          5000,
		GeneScience:         DefaultGeneScience,
	}
}

// Load writes the initial state. The system starts paused; the CEO must
// explicitly unpause before any breeding or trading can happen.
func (g *Genesis) Load(db database.Database) error {
	if err := PutRoles(db, &Roles{
		CEO: g.CEOAddress,
		CFO: g.CFOAddress,
		COO: g.COOAddress,
	}); err != nil {
		return err
	}
	if err := SetPaused(db, true); err != nil {
		return err
	}
	if err := SetGeneScienceName(db, g.GeneScience); err != nil {
		return err
	}
	for _, alloc := range g.CustomAllocation {
		if _, err := ModifyBalance(db, alloc.Address, true, alloc.Balance); err != nil {
			return err
		}
	}
	return nil
}
