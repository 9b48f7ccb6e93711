// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"crypto/ecdsa"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/snakevm/chain"
)

type testVM struct {
	vm  *VM
	now uint64

	ceoKey *ecdsa.PrivateKey
	cooKey *ecdsa.PrivateKey
	cfoKey *ecdsa.PrivateKey
}

func newKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return priv, crypto.PubkeyToAddress(priv.PublicKey)
}

func newTestVM(t *testing.T) *testVM {
	t.Helper()

	ceoKey, ceo := newKey(t)
	cfoKey, cfo := newKey(t)
	cooKey, coo := newKey(t)

	g := chain.DefaultGenesis()
	g.CEOAddress = ceo
	g.CFOAddress = cfo
	g.COOAddress = coo

	var config Config
	config.SetDefaults()
	vm, err := New(g, memdb.New(), config)
	if err != nil {
		t.Fatal(err)
	}

	tvm := &testVM{
		vm:     vm,
		now:    1000,
		ceoKey: ceoKey,
		cfoKey: cfoKey,
		cooKey: cooKey,
	}
	vm.clock = func() uint64 { return tvm.now }
	return tvm
}

func (tvm *testVM) sign(t *testing.T, utx chain.UnsignedTransaction, priv *ecdsa.PrivateKey) *chain.Transaction {
	t.Helper()
	ub, err := chain.UnsignedBytes(utx)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := chain.Sign(chain.DigestHash(ub), priv)
	if err != nil {
		t.Fatal(err)
	}
	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		t.Fatal(err)
	}
	return tx
}

func (tvm *testVM) submit(t *testing.T, utx chain.UnsignedTransaction, priv *ecdsa.PrivateKey) {
	t.Helper()
	if err := tvm.vm.Submit(tvm.sign(t, utx, priv)); err != nil {
		t.Fatal(err)
	}
}

func (tvm *testVM) unpause(t *testing.T) {
	t.Helper()
	tvm.submit(t, &chain.UnpauseTx{BaseTx: &chain.BaseTx{}}, tvm.ceoKey)
}

func TestVMStartsPaused(t *testing.T) {
	t.Parallel()

	tvm := newTestVM(t)
	paused, err := tvm.vm.IsPaused()
	if err != nil {
		t.Fatal(err)
	}
	if !paused {
		t.Fatal("fresh vm not paused")
	}

	aliceKey, _ := newKey(t)
	mint := &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{1}}
	if err := tvm.vm.Submit(tvm.sign(t, mint, aliceKey)); !errors.Is(err, chain.ErrUnauthorized) {
		t.Fatalf("civilian mint expected %v, got %v", chain.ErrUnauthorized, err)
	}

	tvm.unpause(t)
	paused, err = tvm.vm.IsPaused()
	if err != nil {
		t.Fatal(err)
	}
	if paused {
		t.Fatal("vm still paused after unpause")
	}
}

func TestVMLifecycle(t *testing.T) {
	t.Parallel()

	tvm := newTestVM(t)
	tvm.unpause(t)
	aliceKey, alice := newKey(t)

	// Two promo snakes for alice.
	tvm.submit(t, &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{10}, To: alice}, tvm.cooKey)
	tvm.submit(t, &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{100}, To: alice}, tvm.cooKey)

	owned, err := tvm.vm.Owned(alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(owned) != 2 {
		t.Fatalf("alice's holdings expected 2, got %v", owned)
	}
	matronID, sireID := owned[0], owned[1]

	ok, err := tvm.vm.CanBreedWith(matronID, sireID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("founding pair cannot breed")
	}

	tvm.submit(t, &chain.BreedTx{BaseTx: &chain.BaseTx{}, MatronID: matronID, SireID: sireID}, aliceKey)

	ready, err := tvm.vm.IsReadyToBreed(matronID)
	if err != nil {
		t.Fatal(err)
	}
	if ready {
		t.Fatal("gestating matron reported ready")
	}

	matron, _, err := tvm.vm.GetSnake(matronID)
	if err != nil {
		t.Fatal(err)
	}
	tvm.now = matron.CooldownEndTime
	tvm.submit(t, &chain.GiveBirthTx{BaseTx: &chain.BaseTx{}, MatronID: matronID}, aliceKey)

	supply, err := tvm.vm.TotalSupply()
	if err != nil {
		t.Fatal(err)
	}
	if supply != 3 {
		t.Fatalf("supply expected 3, got %d", supply)
	}
	childOwner, _, err := tvm.vm.OwnerOf(3)
	if err != nil {
		t.Fatal(err)
	}
	if childOwner != alice {
		t.Fatalf("child owner expected %s, got %s", alice, childOwner)
	}

	// Newest first: birth, breed, two mints, unpause.
	activity := tvm.vm.Activity()
	if len(activity) != 5 {
		t.Fatalf("activity length expected 5, got %d", len(activity))
	}
	if activity[0].Typ != chain.Birth || activity[4].Typ != chain.Unpaused {
		t.Fatalf("unexpected activity order: %q .. %q", activity[0].Typ, activity[4].Typ)
	}
	if activity[0].Sender != alice.Hex() {
		t.Fatalf("activity sender expected %s, got %s", alice.Hex(), activity[0].Sender)
	}
}

func TestVMRejectedTxLeavesNoTrace(t *testing.T) {
	t.Parallel()

	tvm := newTestVM(t)
	tvm.unpause(t)
	_, alice := newKey(t)
	bobKey, bob := newKey(t)

	tvm.submit(t, &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{10}, To: alice}, tvm.cooKey)

	// Bob does not own snake 1; nothing must change and the tx id must
	// not be marked processed.
	steal := tvm.sign(t, &chain.TransferTx{BaseTx: &chain.BaseTx{}, SnakeID: 1, To: bob}, bobKey)
	if err := tvm.vm.Submit(steal); !errors.Is(err, chain.ErrUnauthorized) {
		t.Fatalf("expected %v, got %v", chain.ErrUnauthorized, err)
	}
	owner, _, err := tvm.vm.OwnerOf(1)
	if err != nil {
		t.Fatal(err)
	}
	if owner != alice {
		t.Fatalf("owner expected %s, got %s", alice, owner)
	}
	accepted, err := tvm.vm.HasTransaction(steal.ID())
	if err != nil {
		t.Fatal(err)
	}
	if accepted {
		t.Fatal("rejected tx marked accepted")
	}
}

func TestVMDuplicateTx(t *testing.T) {
	t.Parallel()

	tvm := newTestVM(t)
	tvm.unpause(t)
	aliceKey, alice := newKey(t)
	_, bob := newKey(t)

	tvm.submit(t, &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{10}, To: alice}, tvm.cooKey)

	tx := tvm.sign(t, &chain.TransferTx{BaseTx: &chain.BaseTx{}, SnakeID: 1, To: bob}, aliceKey)
	if err := tvm.vm.Submit(tx); err != nil {
		t.Fatal(err)
	}
	if err := tvm.vm.Submit(tx); !errors.Is(err, chain.ErrDuplicateTx) {
		t.Fatalf("replay expected %v, got %v", chain.ErrDuplicateTx, err)
	}
	accepted, err := tvm.vm.HasTransaction(tx.ID())
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Fatal("accepted tx not recorded")
	}
}

func TestVMGen0AuctionFlow(t *testing.T) {
	t.Parallel()

	tvm := newTestVM(t)
	tvm.unpause(t)
	buyerKey, buyer := newKey(t)

	tvm.submit(t, &chain.CreateGen0AuctionTx{BaseTx: &chain.BaseTx{}, Genes: []byte{7}}, tvm.cooKey)

	listing, price, has, err := tvm.vm.GetAuction(1)
	if err != nil {
		t.Fatal(err)
	}
	if !has || !listing.Gen0 {
		t.Fatalf("gen0 listing missing: %+v", listing)
	}
	if price != tvm.vm.Genesis().Gen0StartingPrice {
		t.Fatalf("opening price expected %d, got %d", tvm.vm.Genesis().Gen0StartingPrice, price)
	}

	// Halfway through the decay the bid clears below the opening price.
	tvm.now += tvm.vm.Genesis().Gen0AuctionDuration / 2
	if _, err := chain.ModifyBalance(tvm.vm.db, buyer, true, price); err != nil {
		t.Fatal(err)
	}
	tvm.submit(t, &chain.BidTx{BaseTx: &chain.BaseTx{Payment: price}, SnakeID: 1}, buyerKey)

	owner, _, err := tvm.vm.OwnerOf(1)
	if err != nil {
		t.Fatal(err)
	}
	if owner != buyer {
		t.Fatalf("owner expected %s, got %s", buyer, owner)
	}
	stats, err := tvm.vm.Gen0Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Gen0Count != 1 || stats.AveragePrice == 0 {
		t.Fatalf("unexpected gen0 stats %+v", stats)
	}
}
