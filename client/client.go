// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "snakevm" client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/ava-labs/snakevm/chain"
	"github.com/ava-labs/snakevm/vm"
)

// Client defines snakevm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)

	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)
	// Paused returns whether the system currently accepts non-admin
	// operations.
	Paused() (bool, error)

	// Snake returns a snake and its owner.
	Snake(snakeID uint64) (*chain.Snake, common.Address, error)
	// Owned lists the snakes held by an account.
	Owned(addr common.Address) ([]uint64, error)
	// Balance returns the balance of an account.
	Balance(addr common.Address) (uint64, error)
	// TotalSupply returns the number of snakes minted so far.
	TotalSupply() (uint64, error)

	// IsReadyToBreed reports whether a snake could breed right now.
	IsReadyToBreed(snakeID uint64) (bool, error)
	// CanBreedWith reports whether a pair passes kinship and readiness
	// checks.
	CanBreedWith(matronID, sireID uint64) (bool, error)

	// Auction returns the active listing for a snake and its current
	// price.
	Auction(snakeID uint64) (*chain.Listing, uint64, error)
	// Gen0 returns the founding-snake release stats.
	Gen0() (*vm.Gen0Stats, error)

	// RecentActivity returns the latest accepted operations, newest
	// first.
	RecentActivity() ([]*chain.Activity, error)

	// Issues the transaction and returns the transaction ID.
	IssueRawTx(d []byte) (ids.ID, error)
	// Issues an unsigned transaction with a detached signature and
	// returns the transaction ID.
	IssueTx(utx chain.UnsignedTransaction, sig []byte) (ids.ID, error)

	// Checks the status of the transaction, and returns "true" if accepted.
	HasTx(id ids.ID) (bool, error)
	// Polls the transaction until it is accepted.
	PollTx(ctx context.Context, txID ids.ID) (accepted bool, err error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		"snakevm",
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Paused() (bool, error) {
	resp := new(vm.PausedReply)
	if err := cli.req.SendRequest(
		"paused",
		nil,
		resp,
	); err != nil {
		return false, err
	}
	return resp.Paused, nil
}

func (cli *client) Snake(snakeID uint64) (*chain.Snake, common.Address, error) {
	resp := new(vm.SnakeReply)
	if err := cli.req.SendRequest(
		"snake",
		&vm.SnakeArgs{SnakeID: snakeID},
		resp,
	); err != nil {
		return nil, common.Address{}, err
	}
	return resp.Snake, resp.Owner, nil
}

func (cli *client) Owned(addr common.Address) ([]uint64, error) {
	resp := new(vm.OwnedReply)
	if err := cli.req.SendRequest(
		"owned",
		&vm.OwnedArgs{Address: addr},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.SnakeIDs, nil
}

func (cli *client) Balance(addr common.Address) (uint64, error) {
	resp := new(vm.BalanceReply)
	if err := cli.req.SendRequest(
		"balance",
		&vm.BalanceArgs{Address: addr},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) TotalSupply() (uint64, error) {
	resp := new(vm.TotalSupplyReply)
	if err := cli.req.SendRequest(
		"totalSupply",
		nil,
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Supply, nil
}

func (cli *client) IsReadyToBreed(snakeID uint64) (bool, error) {
	resp := new(vm.IsReadyToBreedReply)
	if err := cli.req.SendRequest(
		"isReadyToBreed",
		&vm.IsReadyToBreedArgs{SnakeID: snakeID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Ready, nil
}

func (cli *client) CanBreedWith(matronID, sireID uint64) (bool, error) {
	resp := new(vm.CanBreedWithReply)
	if err := cli.req.SendRequest(
		"canBreedWith",
		&vm.CanBreedWithArgs{MatronID: matronID, SireID: sireID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.CanBreed, nil
}

func (cli *client) Auction(snakeID uint64) (*chain.Listing, uint64, error) {
	resp := new(vm.AuctionReply)
	if err := cli.req.SendRequest(
		"auction",
		&vm.AuctionArgs{SnakeID: snakeID},
		resp,
	); err != nil {
		return nil, 0, err
	}
	return resp.Listing, resp.CurrentPrice, nil
}

func (cli *client) Gen0() (*vm.Gen0Stats, error) {
	resp := new(vm.Gen0StatsReply)
	if err := cli.req.SendRequest(
		"gen0",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

func (cli *client) RecentActivity() ([]*chain.Activity, error) {
	resp := new(vm.RecentActivityReply)
	if err := cli.req.SendRequest(
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

func (cli *client) IssueRawTx(d []byte) (ids.ID, error) {
	resp := new(vm.IssueRawTxReply)
	if err := cli.req.SendRequest(
		"issueRawTx",
		&vm.IssueRawTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) IssueTx(utx chain.UnsignedTransaction, sig []byte) (ids.ID, error) {
	ub, err := chain.UnsignedBytes(utx)
	if err != nil {
		return ids.Empty, err
	}
	resp := new(vm.IssueTxReply)
	if err := cli.req.SendRequest(
		"issueTx",
		&vm.IssueTxArgs{Utx: ub, Signature: sig},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) HasTx(txID ids.ID) (bool, error) {
	resp := new(vm.HasTxReply)
	if err := cli.req.SendRequest(
		"hasTx",
		&vm.HasTxArgs{TxID: txID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (accepted bool, err error) {
done:
	for ctx.Err() == nil {
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
			break done
		}

		accepted, err := cli.HasTx(txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
			continue
		}
		if accepted {
			return true, nil
		}
	}
	return false, ctx.Err()
}
