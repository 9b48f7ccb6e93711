// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"crypto/ecdsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/snakevm/chain"
	"github.com/ava-labs/snakevm/vm"
)

func newKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return priv, crypto.PubkeyToAddress(priv.PublicKey)
}

// newTestServer mounts the daemon handlers on a local HTTP server and
// returns a client pointed at it.
func newTestServer(t *testing.T) (Client, *ecdsa.PrivateKey, *ecdsa.PrivateKey) {
	t.Helper()

	ceoKey, ceo := newKey(t)
	_, cfo := newKey(t)
	cooKey, coo := newKey(t)

	g := chain.DefaultGenesis()
	g.CEOAddress = ceo
	g.CFOAddress = cfo
	g.COOAddress = coo

	var config vm.Config
	config.SetDefaults()
	v, err := vm.New(g, memdb.New(), config)
	if err != nil {
		t.Fatal(err)
	}
	handlers, err := v.CreateHandlers()
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.Handle(path, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(srv.URL, time.Minute), ceoKey, cooKey
}

func TestClientIssuance(t *testing.T) {
	t.Parallel()

	cli, ceoKey, cooKey := newTestServer(t)

	ok, err := cli.Ping()
	if err != nil || !ok {
		t.Fatalf("ping failed: ok=%v err=%v", ok, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Signed-and-wrapped path.
	txID, err := SignIssueTx(ctx, cli, &chain.UnpauseTx{BaseTx: &chain.BaseTx{}}, ceoKey)
	if err != nil {
		t.Fatalf("unpause over http: %v", err)
	}
	accepted, err := cli.HasTx(txID)
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Fatalf("transaction %s not accepted", txID)
	}
	paused, err := cli.Paused()
	if err != nil {
		t.Fatal(err)
	}
	if paused {
		t.Fatal("still paused after unpause over http")
	}

	// Detached-signature path.
	mint := &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{7}}
	ub, err := chain.UnsignedBytes(mint)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := chain.Sign(chain.DigestHash(ub), cooKey)
	if err != nil {
		t.Fatal(err)
	}
	mintID, err := cli.IssueTx(mint, sig)
	if err != nil {
		t.Fatalf("issueTx over http: %v", err)
	}
	accepted, err = cli.HasTx(mintID)
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Fatalf("mint %s not accepted", mintID)
	}

	supply, err := cli.TotalSupply()
	if err != nil {
		t.Fatal(err)
	}
	if supply != 1 {
		t.Fatalf("supply expected 1, got %d", supply)
	}
	coo := crypto.PubkeyToAddress(cooKey.PublicKey)
	owned, err := cli.Owned(coo)
	if err != nil {
		t.Fatal(err)
	}
	if len(owned) != 1 || owned[0] != 1 {
		t.Fatalf("owned expected [1], got %v", owned)
	}
	snake, owner, err := cli.Snake(1)
	if err != nil {
		t.Fatal(err)
	}
	if owner != coo {
		t.Fatalf("owner expected %s, got %s", coo, owner)
	}
	if snake.Generation != 0 {
		t.Fatalf("generation expected 0, got %d", snake.Generation)
	}
}

func TestClientIssueTxBadSignature(t *testing.T) {
	t.Parallel()

	cli, _, _ := newTestServer(t)

	mint := &chain.MintTx{BaseTx: &chain.BaseTx{}, Genes: []byte{7}}
	if _, err := cli.IssueTx(mint, []byte{0x01}); err == nil {
		t.Fatal("short signature accepted over http")
	}
}
