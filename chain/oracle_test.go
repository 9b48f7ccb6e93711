// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
)

func TestNextGen0PriceEmptyWindow(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()
	g := DefaultGenesis()

	avg, err := AverageGen0SalePrice(db)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 0 {
		t.Fatalf("empty window average expected 0, got %d", avg)
	}
	p, err := NextGen0Price(g, db)
	if err != nil {
		t.Fatal(err)
	}
	if p != g.Gen0StartingPrice {
		t.Fatalf("empty window price expected default %d, got %d", g.Gen0StartingPrice, p)
	}
}

func TestNextGen0PriceSingleSale(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()
	g := DefaultGenesis()

	// One sale well above the floor.
	sale := g.Gen0StartingPrice * 10
	if err := RecordGen0Sale(db, sale); err != nil {
		t.Fatal(err)
	}
	p, err := NextGen0Price(g, db)
	if err != nil {
		t.Fatal(err)
	}
	// The average spreads over the whole window, so the suggestion is
	// positive but well below the sale price.
	if p == 0 || p >= sale {
		t.Fatalf("price after one sale of %d out of range: %d", sale, p)
	}
	if expected := (sale / gen0SaleWindow) * 3 / 2; p != expected {
		t.Fatalf("price after one sale expected %d, got %d", expected, p)
	}
}

func TestGen0WindowEviction(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()
	g := DefaultGenesis()

	// Fill the window with high prices, then push them out with low
	// ones; the average must forget the old entries entirely.
	for i := 0; i < gen0SaleWindow; i++ {
		if err := RecordGen0Sale(db, 100000); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < gen0SaleWindow; i++ {
		if err := RecordGen0Sale(db, 1000); err != nil {
			t.Fatal(err)
		}
	}
	avg, err := AverageGen0SalePrice(db)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 1000 {
		t.Fatalf("average after eviction expected 1000, got %d", avg)
	}
	p, err := NextGen0Price(g, db)
	if err != nil {
		t.Fatal(err)
	}
	// 1500 is below the genesis floor.
	if p != g.Gen0StartingPrice {
		t.Fatalf("floored price expected %d, got %d", g.Gen0StartingPrice, p)
	}
}

func TestGen0PriceEscalation(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()
	g := DefaultGenesis()

	// Enough sales at the floor price: the suggestion grows past it.
	for i := 0; i < 4; i++ {
		if err := RecordGen0Sale(db, g.Gen0StartingPrice); err != nil {
			t.Fatal(err)
		}
	}
	p, err := NextGen0Price(g, db)
	if err != nil {
		t.Fatal(err)
	}
	// (4/5) * (3/2) = 12/10 of the floor.
	if p <= g.Gen0StartingPrice {
		t.Fatalf("escalated price expected above %d, got %d", g.Gen0StartingPrice, p)
	}
}
