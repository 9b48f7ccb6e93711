// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &CreateGen0AuctionTx{}

// CreateGen0AuctionTx mints a founding snake to the system account and
// immediately lists it for sale, starting at the oracle-suggested price
// and decaying to zero. COO only, counted against the gen0 limit.
type CreateGen0AuctionTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Genes []byte `serialize:"true" json:"genes"`

	snakeID       uint64
	startingPrice uint64
}

func (c *CreateGen0AuctionTx) ExecuteBase() error {
	if len(c.Genes) == 0 {
		return ErrInvalidGenes
	}
	return nil
}

func (c *CreateGen0AuctionTx) Execute(t *TransactionContext) error {
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.COO) {
		return ErrUnauthorized
	}
	count, err := Gen0Count(t.Database)
	if err != nil {
		return err
	}
	if count >= t.Genesis.Gen0Limit {
		return ErrMintLimit
	}

	s, err := CreateSnake(t.Database, 0, 0, 0, c.Genes, SystemAddress, t.BlockTime)
	if err != nil {
		return err
	}
	c.snakeID = s.ID

	price, err := NextGen0Price(t.Genesis, t.Database)
	if err != nil {
		return err
	}
	c.startingPrice = price
	if err := PutListing(t.Database, &Listing{
		SnakeID:       s.ID,
		Kind:          SaleListing,
		Seller:        SystemAddress,
		StartingPrice: price,
		EndingPrice:   0,
		Duration:      t.Genesis.Gen0AuctionDuration,
		StartTime:     t.BlockTime,
		Gen0:          true,
	}); err != nil {
		return err
	}
	return incCounter(t.Database, gen0CountTag)
}

func (c *CreateGen0AuctionTx) Copy() UnsignedTransaction {
	genes := make([]byte, len(c.Genes))
	copy(genes, c.Genes)
	return &CreateGen0AuctionTx{
		BaseTx: c.BaseTx.Copy(),
		Genes:  genes,
	}
}

func (c *CreateGen0AuctionTx) Activity() *Activity {
	return &Activity{
		Typ:     Gen0Open,
		SnakeID: c.snakeID,
		Amount:  c.startingPrice,
	}
}
