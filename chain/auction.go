// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/bits"

	"github.com/ethereum/go-ethereum/common"
)

// SystemAddress collects auction cuts and holds system-minted snakes.
// The CFO can drain its balance; the COO can rescue snakes sent to it.
var SystemAddress = common.BytesToAddress([]byte("snakevm-system"))

type ListingKind uint8

const (
	// SaleListing transfers ownership to the winning bidder.
	SaleListing ListingKind = iota
	// SiringListing grants the winning bidder one breeding with the
	// listed sire instead of ownership.
	SiringListing
)

// Listing is a time-decaying (or time-rising) priced offer for a snake
// or its siring rights. At most one listing exists per snake; while
// listed, the snake is in escrow and can be neither bred nor
// transferred.
type Listing struct {
	SnakeID uint64         `serialize:"true" json:"snakeId"`
	Kind    ListingKind    `serialize:"true" json:"kind"`
	Seller  common.Address `serialize:"true" json:"seller"`

	StartingPrice uint64 `serialize:"true" json:"startingPrice"`
	EndingPrice   uint64 `serialize:"true" json:"endingPrice"`
	Duration      uint64 `serialize:"true" json:"duration"`
	StartTime     uint64 `serialize:"true" json:"startTime"`

	// Gen0 marks system-created founding listings; only their sale
	// prices feed the gen0 price oracle.
	Gen0 bool `serialize:"true" json:"gen0"`
}

// CurrentPrice interpolates linearly from starting to ending price over
// the listing duration, clamping at the ending price once the duration
// has elapsed. The price change truncates toward zero, which favors the
// seller on falling curves and the buyer on rising ones.
func (l *Listing) CurrentPrice(now uint64) uint64 {
	if l.Duration == 0 {
		return l.EndingPrice
	}
	var elapsed uint64
	if now > l.StartTime {
		elapsed = now - l.StartTime
	}
	if elapsed >= l.Duration {
		return l.EndingPrice
	}
	if l.EndingPrice >= l.StartingPrice {
		return l.StartingPrice + priceChange(l.EndingPrice-l.StartingPrice, elapsed, l.Duration)
	}
	return l.StartingPrice - priceChange(l.StartingPrice-l.EndingPrice, elapsed, l.Duration)
}

// priceChange computes delta*elapsed/duration in 128-bit width; the
// product can exceed 64 bits for large listings. Callers guarantee
// elapsed < duration, which bounds the quotient below 2^64.
func priceChange(delta uint64, elapsed uint64, duration uint64) uint64 {
	hi, lo := bits.Mul64(delta, elapsed)
	q, _ := bits.Div64(hi, lo, duration)
	return q
}

// auctioneerCut is the share of a sale price withheld for the system
// account.
func auctioneerCut(g *Genesis, price uint64) uint64 {
	return price * g.OwnerCut / basisPoints
}
