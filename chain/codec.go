// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

// codecVersion is the current default codec version
const codecVersion = 0

var codecManager codec.Manager

func init() {
	c := linearcodec.NewDefault()
	codecManager = codec.NewDefaultManager()
	errs := wrappers.Errs{}
	errs.Add(
		c.RegisterType(&BaseTx{}),
		c.RegisterType(&MintTx{}),
		c.RegisterType(&BreedTx{}),
		c.RegisterType(&GiveBirthTx{}),
		c.RegisterType(&TransferTx{}),
		c.RegisterType(&ApproveTx{}),
		c.RegisterType(&ApproveSiringTx{}),
		c.RegisterType(&CreateAuctionTx{}),
		c.RegisterType(&BidTx{}),
		c.RegisterType(&CancelAuctionTx{}),
		c.RegisterType(&CreateGen0AuctionTx{}),
		c.RegisterType(&SetRoleTx{}),
		c.RegisterType(&PauseTx{}),
		c.RegisterType(&UnpauseTx{}),
		c.RegisterType(&SetGeneScienceTx{}),
		c.RegisterType(&SetUpgradeTx{}),
		c.RegisterType(&RescueTx{}),
		c.RegisterType(&WithdrawTx{}),
		c.RegisterType(&Transaction{}),
		c.RegisterType(&Snake{}),
		c.RegisterType(&Listing{}),
		c.RegisterType(&Roles{}),
		c.RegisterType(&Gen0Stats{}),
		c.RegisterType(&Genesis{}),
		codecManager.RegisterCodec(codecVersion, c),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return codecManager.Marshal(codecVersion, source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codecManager.Unmarshal(source, destination)
}
