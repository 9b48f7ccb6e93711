// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"math/big"
)

// Snake is the record kept for every minted snake. IDs start at 1; 0 is
// reserved to mean "no snake" in parent and gestation fields.
type Snake struct {
	ID uint64 `serialize:"true" json:"id"`

	// Genes is the opaque genome, big.Int encoded bytes.
	Genes []byte `serialize:"true" json:"genes"`

	BirthTime uint64 `serialize:"true" json:"birthTime"`

	// CooldownIndex only ever increases and saturates at the last entry
	// of the genesis cooldown table.
	CooldownIndex   uint32 `serialize:"true" json:"cooldownIndex"`
	CooldownEndTime uint64 `serialize:"true" json:"cooldownEndTime"`

	// SiringWithID is non-zero while the snake is gestating and holds
	// the id of the sire.
	SiringWithID uint64 `serialize:"true" json:"siringWithId"`

	MatronID   uint64 `serialize:"true" json:"matronId"`
	SireID     uint64 `serialize:"true" json:"sireId"`
	Generation uint32 `serialize:"true" json:"generation"`
}

func (s *Snake) IsGestating() bool {
	return s.SiringWithID != 0
}

// IsReady reports whether the snake may take part in a breeding action:
// not gestating and past its cooldown.
func (s *Snake) IsReady(now uint64) bool {
	return s.SiringWithID == 0 && s.CooldownEndTime <= now
}

// IsGen0 reports whether the snake is a founding snake (no parents).
func (s *Snake) IsGen0() bool {
	return s.MatronID == 0 && s.SireID == 0
}

func (s *Snake) GenesBig() *big.Int {
	return new(big.Int).SetBytes(s.Genes)
}

func (s *Snake) MarshalJSON() ([]byte, error) {
	type Alias Snake
	return json.Marshal(struct {
		*Alias
		Genes string `json:"genes"`
	}{
		Alias: (*Alias)(s),
		Genes: new(big.Int).SetBytes(s.Genes).String(),
	})
}

func (s *Snake) UnmarshalJSON(b []byte) error {
	type Alias Snake
	r := struct {
		Genes string `json:"genes"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	g, ok := new(big.Int).SetString(r.Genes, 10)
	if !ok {
		return ErrNotANumber
	}
	s.Genes = g.Bytes()
	return nil
}

func (s *Snake) Copy() *Snake {
	genes := make([]byte, len(s.Genes))
	copy(genes, s.Genes)
	n := *s
	n.Genes = genes
	return &n
}
