// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// 0x0/ (snake records)
//   -> [snake id]
// 0x1/ (snake owner)
//   -> [snake id]
// 0x2/ (owned index)
//   -> [owner address + snake id]
// 0x3/ (transfer approvals)
//   -> [snake id]
// 0x4/ (siring approvals)
//   -> [snake id]
// 0x5/ (auction listings)
//   -> [snake id]
// 0x6/ (account balances)
//   -> [address]
// 0x7/ (auto-birth incentives)
//   -> [matron id]
// 0x8/ (singleton records)
// 0x9/ (processed tx ids)

const (
	snakePrefix          = 0x0
	ownerPrefix          = 0x1
	ownedPrefix          = 0x2
	approvalPrefix       = 0x3
	siringApprovalPrefix = 0x4
	listingPrefix        = 0x5
	balancePrefix        = 0x6
	incentivePrefix      = 0x7
	statePrefix          = 0x8
	txPrefix             = 0x9

	delimiter = '/'
)

// Singleton record tags under statePrefix.
const (
	rolesTag = iota
	pausedTag
	upgradeTag
	geneScienceTag
	lastSnakeIDTag
	gen0CountTag
	promoCountTag
	gen0StatsTag
)

func packUint64(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

func unpackUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func prefixedIDKey(prefix byte, id uint64) []byte {
	return append([]byte{prefix, delimiter}, packUint64(id)...)
}

func SnakeKey(id uint64) []byte   { return prefixedIDKey(snakePrefix, id) }
func OwnerKey(id uint64) []byte   { return prefixedIDKey(ownerPrefix, id) }
func ListingKey(id uint64) []byte { return prefixedIDKey(listingPrefix, id) }

func OwnedKey(addr common.Address, id uint64) []byte {
	b := append([]byte{ownedPrefix, delimiter}, addr[:]...)
	b = append(b, delimiter)
	return append(b, packUint64(id)...)
}

func OwnedPrefix(addr common.Address) []byte {
	b := append([]byte{ownedPrefix, delimiter}, addr[:]...)
	return append(b, delimiter)
}

func ApprovalKey(id uint64) []byte       { return prefixedIDKey(approvalPrefix, id) }
func SiringApprovalKey(id uint64) []byte { return prefixedIDKey(siringApprovalPrefix, id) }

func BalanceKey(addr common.Address) []byte {
	return append([]byte{balancePrefix, delimiter}, addr[:]...)
}

func IncentiveKey(matronID uint64) []byte { return prefixedIDKey(incentivePrefix, matronID) }

func StateKey(tag byte) []byte { return []byte{statePrefix, delimiter, tag} }

func TxKey(txID ids.ID) []byte {
	return append([]byte{txPrefix, delimiter}, txID[:]...)
}

// Snakes

func GetSnake(db database.Database, id uint64) (*Snake, bool, error) {
	k := SnakeKey(id)
	v, err := db.Get(k)
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var s Snake
	if _, err := Unmarshal(v, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func PutSnake(db database.Database, s *Snake) error {
	v, err := Marshal(s)
	if err != nil {
		return err
	}
	return db.Put(SnakeKey(s.ID), v)
}

// LastSnakeID doubles as total supply: ids are allocated sequentially
// from 1 and never reused.
func LastSnakeID(db database.Database) (uint64, error) {
	v, err := db.Get(StateKey(lastSnakeIDTag))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return unpackUint64(v), nil
}

func nextSnakeID(db database.Database) (uint64, error) {
	last, err := LastSnakeID(db)
	if err != nil {
		return 0, err
	}
	next := last + 1
	return next, db.Put(StateKey(lastSnakeIDTag), packUint64(next))
}

// CreateSnake mints a new snake record and assigns its first owner.
func CreateSnake(
	db database.Database,
	matronID uint64,
	sireID uint64,
	generation uint32,
	genes []byte,
	owner common.Address,
	birthTime uint64,
) (*Snake, error) {
	id, err := nextSnakeID(db)
	if err != nil {
		return nil, err
	}
	s := &Snake{
		ID:         id,
		Genes:      genes,
		BirthTime:  birthTime,
		MatronID:   matronID,
		SireID:     sireID,
		Generation: generation,
	}
	if err := PutSnake(db, s); err != nil {
		return nil, err
	}
	return s, SetOwner(db, id, owner)
}

// Ownership

func OwnerOf(db database.Database, id uint64) (common.Address, bool, error) {
	v, err := db.Get(OwnerKey(id))
	if err == database.ErrNotFound {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, err
	}
	return common.BytesToAddress(v), true, nil
}

// SetOwner reassigns a snake, keeping the per-owner index current and
// clearing any outstanding approvals for the snake.
func SetOwner(db database.Database, id uint64, to common.Address) error {
	prev, has, err := OwnerOf(db, id)
	if err != nil {
		return err
	}
	if has {
		if err := db.Delete(OwnedKey(prev, id)); err != nil {
			return err
		}
	}
	if err := db.Put(OwnerKey(id), to[:]); err != nil {
		return err
	}
	if err := db.Put(OwnedKey(to, id), nil); err != nil {
		return err
	}
	if err := db.Delete(ApprovalKey(id)); err != nil && err != database.ErrNotFound {
		return err
	}
	if err := db.Delete(SiringApprovalKey(id)); err != nil && err != database.ErrNotFound {
		return err
	}
	return nil
}

// Owned enumerates the ids of all snakes held by an address.
func Owned(db database.Database, addr common.Address) ([]uint64, error) {
	p := OwnedPrefix(addr)
	cursor := db.NewIteratorWithPrefix(p)
	defer cursor.Release()
	snakes := []uint64{}
	for cursor.Next() {
		snakes = append(snakes, unpackUint64(cursor.Key()[len(p):]))
	}
	return snakes, cursor.Error()
}

// Approvals

func getAddress(db database.Database, k []byte) (common.Address, bool, error) {
	v, err := db.Get(k)
	if err == database.ErrNotFound {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, err
	}
	return common.BytesToAddress(v), true, nil
}

func GetApproval(db database.Database, id uint64) (common.Address, bool, error) {
	return getAddress(db, ApprovalKey(id))
}

func PutApproval(db database.Database, id uint64, to common.Address) error {
	return db.Put(ApprovalKey(id), to[:])
}

func GetSiringApproval(db database.Database, id uint64) (common.Address, bool, error) {
	return getAddress(db, SiringApprovalKey(id))
}

func PutSiringApproval(db database.Database, id uint64, to common.Address) error {
	return db.Put(SiringApprovalKey(id), to[:])
}

func DeleteSiringApproval(db database.Database, id uint64) error {
	err := db.Delete(SiringApprovalKey(id))
	if err == database.ErrNotFound {
		return nil
	}
	return err
}

// Balances

func GetBalance(db database.Database, addr common.Address) (uint64, error) {
	v, err := db.Get(BalanceKey(addr))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return unpackUint64(v), nil
}

func SetBalance(db database.Database, addr common.Address, bal uint64) error {
	return db.Put(BalanceKey(addr), packUint64(bal))
}

// ModifyBalance credits (add) or debits an account, returning the new
// balance. Debits below zero abort.
func ModifyBalance(db database.Database, addr common.Address, add bool, change uint64) (uint64, error) {
	b, err := GetBalance(db, addr)
	if err != nil {
		return 0, err
	}
	var n uint64
	if add {
		n = b + change
	} else {
		if change > b {
			return 0, ErrInsufficientBalance
		}
		n = b - change
	}
	return n, SetBalance(db, addr, n)
}

// Listings

func GetListing(db database.Database, id uint64) (*Listing, bool, error) {
	v, err := db.Get(ListingKey(id))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var l Listing
	if _, err := Unmarshal(v, &l); err != nil {
		return nil, false, err
	}
	return &l, true, nil
}

func PutListing(db database.Database, l *Listing) error {
	v, err := Marshal(l)
	if err != nil {
		return err
	}
	return db.Put(ListingKey(l.SnakeID), v)
}

func DeleteListing(db database.Database, id uint64) error {
	return db.Delete(ListingKey(id))
}

// HasListing reports whether a snake is currently held in auction
// escrow. A listed snake cannot be bred or transferred.
func HasListing(db database.Database, id uint64) (bool, error) {
	return db.Has(ListingKey(id))
}

// Auto-birth incentives

func GetIncentive(db database.Database, matronID uint64) (uint64, bool, error) {
	v, err := db.Get(IncentiveKey(matronID))
	if err == database.ErrNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return unpackUint64(v), true, nil
}

func PutIncentive(db database.Database, matronID uint64, amount uint64) error {
	return db.Put(IncentiveKey(matronID), packUint64(amount))
}

func DeleteIncentive(db database.Database, matronID uint64) error {
	return db.Delete(IncentiveKey(matronID))
}

// Roles / lifecycle

// Initialized reports whether a genesis has been loaded into db.
func Initialized(db database.Database) (bool, error) {
	return db.Has(StateKey(rolesTag))
}

func GetRoles(db database.Database) (*Roles, error) {
	v, err := db.Get(StateKey(rolesTag))
	if err != nil {
		return nil, err
	}
	var r Roles
	if _, err := Unmarshal(v, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func PutRoles(db database.Database, r *Roles) error {
	v, err := Marshal(r)
	if err != nil {
		return err
	}
	return db.Put(StateKey(rolesTag), v)
}

func IsPaused(db database.Database) (bool, error) {
	v, err := db.Get(StateKey(pausedTag))
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(v) == 1 && v[0] == 1, nil
}

func SetPaused(db database.Database, paused bool) error {
	if paused {
		return db.Put(StateKey(pausedTag), []byte{1})
	}
	return db.Put(StateKey(pausedTag), []byte{0})
}

// GetUpgradeAddress returns the designated replacement system, if any.
// Once set, the system can never be unpaused again.
func GetUpgradeAddress(db database.Database) (common.Address, bool, error) {
	return getAddress(db, StateKey(upgradeTag))
}

func SetUpgradeAddress(db database.Database, to common.Address) error {
	return db.Put(StateKey(upgradeTag), to[:])
}

func GetGeneScienceName(db database.Database) (string, error) {
	v, err := db.Get(StateKey(geneScienceTag))
	if err == database.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func SetGeneScienceName(db database.Database, name string) error {
	return db.Put(StateKey(geneScienceTag), []byte(name))
}

// Mint counters

func getCounter(db database.Database, tag byte) (uint64, error) {
	v, err := db.Get(StateKey(tag))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return unpackUint64(v), nil
}

func incCounter(db database.Database, tag byte) error {
	n, err := getCounter(db, tag)
	if err != nil {
		return err
	}
	return db.Put(StateKey(tag), packUint64(n+1))
}

func Gen0Count(db database.Database) (uint64, error)  { return getCounter(db, gen0CountTag) }
func PromoCount(db database.Database) (uint64, error) { return getCounter(db, promoCountTag) }

// Processed txs

func HasTransaction(db database.Database, txID ids.ID) (bool, error) {
	return db.Has(TxKey(txID))
}

func SetTransaction(db database.Database, tx *Transaction) error {
	return db.Put(TxKey(tx.ID()), nil)
}
