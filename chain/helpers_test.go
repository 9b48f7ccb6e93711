// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/big"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func newAddress(t *testing.T) common.Address {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return crypto.PubkeyToAddress(priv.PublicKey)
}

type testState struct {
	genesis *Genesis
	db      database.Database

	ceo common.Address
	cfo common.Address
	coo common.Address
}

// newTestState loads a default genesis into a fresh memdb and unpauses,
// mirroring the CEO's first action after deployment.
func newTestState(t *testing.T) *testState {
	t.Helper()
	s := &testState{
		genesis: DefaultGenesis(),
		db:      memdb.New(),
		ceo:     newAddress(t),
		cfo:     newAddress(t),
		coo:     newAddress(t),
	}
	s.genesis.CEOAddress = s.ceo
	s.genesis.CFOAddress = s.cfo
	s.genesis.COOAddress = s.coo
	if err := s.genesis.Load(s.db); err != nil {
		t.Fatal(err)
	}
	if err := SetPaused(s.db, false); err != nil {
		t.Fatal(err)
	}
	return s
}

func (s *testState) context(blockTime uint64, sender common.Address) *TransactionContext {
	return &TransactionContext{
		Genesis:   s.genesis,
		Database:  s.db,
		BlockTime: blockTime,
		TxID:      ids.Empty,
		Sender:    sender,
	}
}

// mint creates a founding snake directly, bypassing the role-gated tx
// surface for fixture setup.
func (s *testState) mint(t *testing.T, genes int64, owner common.Address, blockTime uint64) *Snake {
	t.Helper()
	snake, err := CreateSnake(s.db, 0, 0, 0, big.NewInt(genes).Bytes(), owner, blockTime)
	if err != nil {
		t.Fatal(err)
	}
	return snake
}

func (s *testState) snake(t *testing.T, id uint64) *Snake {
	t.Helper()
	snake, has, err := GetSnake(s.db, id)
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Fatalf("snake %d missing", id)
	}
	return snake
}

func (s *testState) owner(t *testing.T, id uint64) common.Address {
	t.Helper()
	owner, has, err := OwnerOf(s.db, id)
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Fatalf("snake %d has no owner", id)
	}
	return owner
}

func (s *testState) balance(t *testing.T, addr common.Address) uint64 {
	t.Helper()
	b, err := GetBalance(s.db, addr)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func (s *testState) fund(t *testing.T, addr common.Address, amount uint64) {
	t.Helper()
	if _, err := ModifyBalance(s.db, addr, true, amount); err != nil {
		t.Fatal(err)
	}
}
