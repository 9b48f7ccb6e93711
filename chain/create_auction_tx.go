// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &CreateAuctionTx{}

type CreateAuctionTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID       uint64      `serialize:"true" json:"snakeId"`
	Kind          ListingKind `serialize:"true" json:"kind"`
	StartingPrice uint64      `serialize:"true" json:"startingPrice"`
	EndingPrice   uint64      `serialize:"true" json:"endingPrice"`
	Duration      uint64      `serialize:"true" json:"duration"`
}

func (c *CreateAuctionTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}
	snake, err := verifySnake(t, c.SnakeID)
	if err != nil {
		return err
	}
	owner, _, err := OwnerOf(t.Database, c.SnakeID)
	if err != nil {
		return err
	}
	if !t.authorized(owner) {
		return ErrUnauthorized
	}
	listed, err := HasListing(t.Database, c.SnakeID)
	if err != nil {
		return err
	}
	if listed {
		return ErrAuctionExists
	}
	// Siring rights can only be offered by a snake that could actually
	// breed right now.
	if c.Kind == SiringListing && !snake.IsReady(t.BlockTime) {
		return ErrNotReady
	}
	return PutListing(t.Database, &Listing{
		SnakeID:       c.SnakeID,
		Kind:          c.Kind,
		Seller:        t.Sender,
		StartingPrice: c.StartingPrice,
		EndingPrice:   c.EndingPrice,
		Duration:      c.Duration,
		StartTime:     t.BlockTime,
	})
}

func (c *CreateAuctionTx) Copy() UnsignedTransaction {
	return &CreateAuctionTx{
		BaseTx:        c.BaseTx.Copy(),
		SnakeID:       c.SnakeID,
		Kind:          c.Kind,
		StartingPrice: c.StartingPrice,
		EndingPrice:   c.EndingPrice,
		Duration:      c.Duration,
	}
}

func (c *CreateAuctionTx) Activity() *Activity {
	return &Activity{
		Typ:     AuctionOpen,
		SnakeID: c.SnakeID,
		Amount:  c.StartingPrice,
	}
}
