// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &BreedTx{}

type BreedTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	MatronID uint64 `serialize:"true" json:"matronId"`
	SireID   uint64 `serialize:"true" json:"sireId"`

	// Auto requests an auto-incentivized birth: the attached payment
	// must cover the auto-birth fee, which is escrowed for whoever
	// later triggers the matching give-birth call.
	Auto bool `serialize:"true" json:"auto"`

	cooldownEndTime uint64
}

func (b *BreedTx) Execute(t *TransactionContext) error {
	if err := verifyUnpaused(t); err != nil {
		return err
	}

	matron, err := verifySnake(t, b.MatronID)
	if err != nil {
		return err
	}
	sire, err := verifySnake(t, b.SireID)
	if err != nil {
		return err
	}

	ok, err := controlsSnake(t, b.MatronID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	permitted, viaApproval, err := siringPermitted(t, b.MatronID, b.SireID)
	if err != nil {
		return err
	}
	if !permitted {
		return ErrUnauthorized
	}

	// A snake inside an auction cannot take part in breeding.
	if err := verifyNotEscrowed(t, b.MatronID); err != nil {
		return err
	}
	if err := verifyNotEscrowed(t, b.SireID); err != nil {
		return err
	}

	if !matron.IsReady(t.BlockTime) || !sire.IsReady(t.BlockTime) {
		return ErrNotReady
	}
	if !ValidMating(matron, sire) {
		return ErrInvalidRelation
	}
	if b.Auto && b.Payment < t.Genesis.AutoBirthFee {
		return ErrInsufficientPayment
	}

	// All preconditions hold; mutate.
	if viaApproval {
		if err := DeleteSiringApproval(t.Database, b.SireID); err != nil {
			return err
		}
	}
	end, err := applyBreeding(t, matron, sire)
	if err != nil {
		return err
	}
	b.cooldownEndTime = end
	if b.Auto {
		return escrowAutoBirthFee(t, b.MatronID)
	}
	return nil
}

func (b *BreedTx) Copy() UnsignedTransaction {
	return &BreedTx{
		BaseTx:   b.BaseTx.Copy(),
		MatronID: b.MatronID,
		SireID:   b.SireID,
		Auto:     b.Auto,
	}
}

func (b *BreedTx) Activity() *Activity {
	typ := Breed
	if b.Auto {
		typ = AutoBirth
	}
	return &Activity{
		Typ:             typ,
		MatronID:        b.MatronID,
		SireID:          b.SireID,
		CooldownEndTime: b.cooldownEndTime,
	}
}
