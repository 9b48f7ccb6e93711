// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/snakevm/chain"
)

// PublicEndpoint is the path the public JSON-RPC service is mounted at.
const PublicEndpoint = "/public"

var ErrInvalidEmptyTx = errors.New("invalid empty transaction")

type PublicService struct {
	vm *VM
}

func NewPublicService(vm *VM) *PublicService {
	return &PublicService{vm: vm}
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type IssueRawTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueRawTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueRawTx(_ *http.Request, args *IssueRawTxArgs, reply *IssueRawTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	err := svc.vm.Submit(tx)
	reply.Success = err == nil
	return err
}

type IssueTxArgs struct {
	// Utx holds the codec bytes of the unsigned transaction. The
	// signature travels detached so the server re-derives the sender.
	Utx       hexutil.Bytes `serialize:"true" json:"unsignedTx"`
	Signature hexutil.Bytes `serialize:"true" json:"signature"`
}

type IssueTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if len(args.Utx) == 0 {
		return ErrInvalidEmptyTx
	}
	var utx chain.UnsignedTransaction
	if _, err := chain.Unmarshal(args.Utx, &utx); err != nil {
		return err
	}
	tx := chain.NewTx(utx, args.Signature[:])

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	err := svc.vm.Submit(tx)
	reply.Success = err == nil
	return err
}

type HasTxArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type HasTxReply struct {
	Accepted bool `serialize:"true" json:"accepted"`
}

func (svc *PublicService) HasTx(_ *http.Request, args *HasTxArgs, reply *HasTxReply) error {
	has, err := svc.vm.HasTransaction(args.TxID)
	if err != nil {
		return err
	}
	reply.Accepted = has
	return nil
}

type SnakeArgs struct {
	SnakeID uint64 `serialize:"true" json:"snakeId"`
}

type SnakeReply struct {
	Snake *chain.Snake   `serialize:"true" json:"snake"`
	Owner common.Address `serialize:"true" json:"owner"`
}

func (svc *PublicService) Snake(_ *http.Request, args *SnakeArgs, reply *SnakeReply) error {
	s, has, err := svc.vm.GetSnake(args.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return chain.ErrSnakeMissing
	}
	reply.Snake = s
	owner, _, err := svc.vm.OwnerOf(args.SnakeID)
	if err != nil {
		return err
	}
	reply.Owner = owner
	return nil
}

type OwnedArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type OwnedReply struct {
	SnakeIDs []uint64 `serialize:"true" json:"snakeIds"`
}

func (svc *PublicService) Owned(_ *http.Request, args *OwnedArgs, reply *OwnedReply) error {
	owned, err := svc.vm.Owned(args.Address)
	if err != nil {
		return err
	}
	reply.SnakeIDs = owned
	return nil
}

type BalanceArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	bal, err := svc.vm.Balance(args.Address)
	if err != nil {
		return err
	}
	reply.Balance = bal
	return nil
}

type TotalSupplyReply struct {
	Supply uint64 `serialize:"true" json:"supply"`
}

func (svc *PublicService) TotalSupply(_ *http.Request, _ *struct{}, reply *TotalSupplyReply) error {
	supply, err := svc.vm.TotalSupply()
	if err != nil {
		return err
	}
	reply.Supply = supply
	return nil
}

type IsReadyToBreedArgs struct {
	SnakeID uint64 `serialize:"true" json:"snakeId"`
}

type IsReadyToBreedReply struct {
	Ready bool `serialize:"true" json:"ready"`
}

func (svc *PublicService) IsReadyToBreed(_ *http.Request, args *IsReadyToBreedArgs, reply *IsReadyToBreedReply) error {
	ready, err := svc.vm.IsReadyToBreed(args.SnakeID)
	if err != nil {
		return err
	}
	reply.Ready = ready
	return nil
}

type CanBreedWithArgs struct {
	MatronID uint64 `serialize:"true" json:"matronId"`
	SireID   uint64 `serialize:"true" json:"sireId"`
}

type CanBreedWithReply struct {
	CanBreed bool `serialize:"true" json:"canBreed"`
}

func (svc *PublicService) CanBreedWith(_ *http.Request, args *CanBreedWithArgs, reply *CanBreedWithReply) error {
	ok, err := svc.vm.CanBreedWith(args.MatronID, args.SireID)
	if err != nil {
		return err
	}
	reply.CanBreed = ok
	return nil
}

type AuctionArgs struct {
	SnakeID uint64 `serialize:"true" json:"snakeId"`
}

type AuctionReply struct {
	Listing      *chain.Listing `serialize:"true" json:"listing"`
	CurrentPrice uint64         `serialize:"true" json:"currentPrice"`
}

func (svc *PublicService) Auction(_ *http.Request, args *AuctionArgs, reply *AuctionReply) error {
	listing, price, has, err := svc.vm.GetAuction(args.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return chain.ErrAuctionMissing
	}
	reply.Listing = listing
	reply.CurrentPrice = price
	return nil
}

type Gen0StatsReply struct {
	Stats *Gen0Stats `serialize:"true" json:"stats"`
}

func (svc *PublicService) Gen0(_ *http.Request, _ *struct{}, reply *Gen0StatsReply) error {
	stats, err := svc.vm.Gen0Stats()
	if err != nil {
		return err
	}
	reply.Stats = stats
	return nil
}

type PausedReply struct {
	Paused bool `serialize:"true" json:"paused"`
}

func (svc *PublicService) Paused(_ *http.Request, _ *struct{}, reply *PausedReply) error {
	paused, err := svc.vm.IsPaused()
	if err != nil {
		return err
	}
	reply.Paused = paused
	return nil
}

type RecentActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.vm.Activity()
	return nil
}
