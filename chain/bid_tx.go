// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &BidTx{}

type BidTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID uint64 `serialize:"true" json:"snakeId"`

	// MatronID names the bidder's snake to be bred when bidding on a
	// siring listing. Ignored for sale listings.
	MatronID uint64 `serialize:"true" json:"matronId"`

	price           uint64
	auto            bool
	cooldownEndTime uint64
}

func (b *BidTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}
	listing, has, err := GetListing(t.Database, b.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return ErrAuctionMissing
	}
	price := listing.CurrentPrice(t.BlockTime)
	if b.Payment < price {
		return ErrInsufficientPayment
	}
	b.price = price

	switch listing.Kind {
	case SaleListing:
		if err := b.executeSale(t, listing, price); err != nil {
			return err
		}
	case SiringListing:
		if err := b.executeSiring(t, listing, price); err != nil {
			return err
		}
	}

	// Settle: the winning bid is charged at the computed price, the cut
	// stays with the system, the rest goes to the seller. Anything
	// above the price never leaves the bidder.
	if _, err := ModifyBalance(t.Database, t.Sender, false, price); err != nil {
		return err
	}
	cut := auctioneerCut(t.Genesis, price)
	if _, err := ModifyBalance(t.Database, SystemAddress, true, cut); err != nil {
		return err
	}
	if _, err := ModifyBalance(t.Database, listing.Seller, true, price-cut); err != nil {
		return err
	}
	return DeleteListing(t.Database, b.SnakeID)
}

func (b *BidTx) executeSale(t *TransactionContext, listing *Listing, price uint64) error {
	if err := SetOwner(t.Database, b.SnakeID, t.Sender); err != nil {
		return err
	}
	// Only system-created founding sales feed the price oracle.
	if listing.Gen0 {
		return RecordGen0Sale(t.Database, price)
	}
	return nil
}

// executeSiring is the auction-breeding bridge: winning the bid triggers
// a breeding transition with the listed sire instead of an ownership
// transfer. If the breeding preconditions fail, the whole bid fails and
// the listing stays active.
func (b *BidTx) executeSiring(t *TransactionContext, listing *Listing, price uint64) error {
	matron, err := verifySnake(t, b.MatronID)
	if err != nil {
		return err
	}
	sire, err := verifySnake(t, b.SnakeID)
	if err != nil {
		return err
	}
	owner, _, err := OwnerOf(t.Database, b.MatronID)
	if err != nil {
		return err
	}
	if !t.authorized(owner) {
		return ErrUnauthorized
	}
	if err := verifyNotEscrowed(t, b.MatronID); err != nil {
		return err
	}
	if !matron.IsReady(t.BlockTime) {
		return ErrNotReady
	}
	if !ValidMating(matron, sire) {
		return ErrInvalidRelation
	}

	end, err := applyBreeding(t, matron, sire)
	if err != nil {
		return err
	}
	b.cooldownEndTime = end

	// A bid that covers price plus the auto-birth fee also buys the
	// incentivized birth.
	if b.Payment-price >= t.Genesis.AutoBirthFee {
		b.auto = true
		return escrowAutoBirthFee(t, b.MatronID)
	}
	return nil
}

func (b *BidTx) Copy() UnsignedTransaction {
	return &BidTx{
		BaseTx:   b.BaseTx.Copy(),
		SnakeID:  b.SnakeID,
		MatronID: b.MatronID,
	}
}

func (b *BidTx) Activity() *Activity {
	if b.auto {
		return &Activity{
			Typ:             AutoBirth,
			MatronID:        b.MatronID,
			SireID:          b.SnakeID,
			CooldownEndTime: b.cooldownEndTime,
			Amount:          b.price,
		}
	}
	return &Activity{
		Typ:     AuctionSold,
		SnakeID: b.SnakeID,
		Amount:  b.price,
	}
}
