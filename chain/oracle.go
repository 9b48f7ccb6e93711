// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
)

// gen0SaleWindow is how many recent founding-asset sale prices seed the
// next founding listing's starting price.
const gen0SaleWindow = 5

// Gen0Stats is the oracle state: a bounded ring of the latest founding
// sale prices plus their running sum. The average divides by the window
// capacity, not the fill, so early sales are dampened.
type Gen0Stats struct {
	Prices []uint64 `serialize:"true" json:"prices"`
	Cursor uint64   `serialize:"true" json:"cursor"`
	Sum    uint64   `serialize:"true" json:"sum"`
}

func GetGen0Stats(db database.Database) (*Gen0Stats, error) {
	v, err := db.Get(StateKey(gen0StatsTag))
	if err == database.ErrNotFound {
		return &Gen0Stats{Prices: make([]uint64, 0, gen0SaleWindow)}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Gen0Stats
	if _, err := Unmarshal(v, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func PutGen0Stats(db database.Database, s *Gen0Stats) error {
	v, err := Marshal(s)
	if err != nil {
		return err
	}
	return db.Put(StateKey(gen0StatsTag), v)
}

// RecordGen0Sale pushes a completed founding sale price into the
// window, evicting the oldest entry beyond capacity.
func RecordGen0Sale(db database.Database, price uint64) error {
	s, err := GetGen0Stats(db)
	if err != nil {
		return err
	}
	slot := int(s.Cursor % gen0SaleWindow)
	if len(s.Prices) < gen0SaleWindow {
		s.Prices = append(s.Prices, price)
	} else {
		s.Sum -= s.Prices[slot]
		s.Prices[slot] = price
	}
	s.Sum += price
	s.Cursor++
	return PutGen0Stats(db, s)
}

// AverageGen0SalePrice averages over the full window capacity; an empty
// window averages to zero.
func AverageGen0SalePrice(db database.Database) (uint64, error) {
	s, err := GetGen0Stats(db)
	if err != nil {
		return 0, err
	}
	return s.Sum / gen0SaleWindow, nil
}

// NextGen0Price is the starting price for the next system-generated
// founding listing: one and a half times the window average, floored at
// the genesis starting price.
func NextGen0Price(g *Genesis, db database.Database) (uint64, error) {
	avg, err := AverageGen0SalePrice(db)
	if err != nil {
		return 0, err
	}
	next := avg + avg/2
	if next < g.Gen0StartingPrice {
		return g.Gen0StartingPrice, nil
	}
	return next, nil
}
