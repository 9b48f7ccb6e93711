// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &CancelAuctionTx{}

// CancelAuctionTx releases a listing back to its seller. No cut is
// taken. Works even while the system is paused so sellers are never
// locked out of their own snakes.
type CancelAuctionTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID uint64 `serialize:"true" json:"snakeId"`
}

func (c *CancelAuctionTx) Execute(t *TransactionContext) error {
	listing, has, err := GetListing(t.Database, c.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return ErrAuctionMissing
	}
	if !t.authorized(listing.Seller) {
		return ErrUnauthorized
	}
	return DeleteListing(t.Database, c.SnakeID)
}

func (c *CancelAuctionTx) Copy() UnsignedTransaction {
	return &CancelAuctionTx{
		BaseTx:  c.BaseTx.Copy(),
		SnakeID: c.SnakeID,
	}
}

func (c *CancelAuctionTx) Activity() *Activity {
	return &Activity{
		Typ:     AuctionCancel,
		SnakeID: c.SnakeID,
	}
}
