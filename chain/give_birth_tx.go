// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &GiveBirthTx{}

// GiveBirthTx is deliberately permissionless: anyone may deliver a due
// birth, which is what makes the auto-birth incentive claimable by
// external workers.
type GiveBirthTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	MatronID uint64 `serialize:"true" json:"matronId"`

	childID uint64
}

func (gb *GiveBirthTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}

	matron, err := verifySnake(t, gb.MatronID)
	if err != nil {
		return err
	}
	if !matron.IsGestating() {
		return ErrNotGestating
	}
	if t.BlockTime < matron.CooldownEndTime {
		return ErrNotReady
	}
	sire, err := verifySnake(t, matron.SiringWithID)
	if err != nil {
		return err
	}
	gs, err := BoundGeneScience(t.Database)
	if err != nil {
		return err
	}
	owner, _, err := OwnerOf(t.Database, matron.ID)
	if err != nil {
		return err
	}

	generation := matron.Generation
	if sire.Generation > generation {
		generation = sire.Generation
	}
	childGenes := gs.MixGenes(matron.GenesBig(), sire.GenesBig())
	child, err := CreateSnake(
		t.Database,
		matron.ID,
		sire.ID,
		generation+1,
		childGenes.Bytes(),
		owner,
		t.BlockTime,
	)
	if err != nil {
		return err
	}
	gb.childID = child.ID

	// Gestation ends; the cooldown fields escalated at breeding time
	// keep governing when the matron may breed again.
	matron.SiringWithID = 0
	if err := PutSnake(t.Database, matron); err != nil {
		return err
	}

	// Pay out the auto-birth incentive, if one was escrowed, to whoever
	// delivered the birth.
	incentive, has, err := GetIncentive(t.Database, matron.ID)
	if err != nil {
		return err
	}
	if has {
		if err := DeleteIncentive(t.Database, matron.ID); err != nil {
			return err
		}
		if _, err := ModifyBalance(t.Database, t.Sender, true, incentive); err != nil {
			return err
		}
	}
	return nil
}

func (gb *GiveBirthTx) Copy() UnsignedTransaction {
	return &GiveBirthTx{
		BaseTx:   gb.BaseTx.Copy(),
		MatronID: gb.MatronID,
	}
}

func (gb *GiveBirthTx) Activity() *Activity {
	return &Activity{
		Typ:      Birth,
		MatronID: gb.MatronID,
		SnakeID:  gb.childID,
	}
}
