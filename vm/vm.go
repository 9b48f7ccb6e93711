// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/snakevm/chain"
)

// VM executes signed transactions against the snake state, one at a
// time. Each transaction runs on a versioned overlay that is committed
// only when every check and mutation succeeded, so a failed operation
// can never leave partial writes behind.
type VM struct {
	mu sync.RWMutex

	genesis *chain.Genesis
	config  Config
	db      database.Database

	// clock returns the current unix time. Swapped out in tests.
	clock func() uint64

	activity       []*chain.Activity
	activityCursor uint64
}

func New(genesis *chain.Genesis, db database.Database, config Config) (*VM, error) {
	vm := &VM{
		genesis:  genesis,
		config:   config,
		db:       db,
		clock:    func() uint64 { return uint64(time.Now().Unix()) },
		activity: make([]*chain.Activity, config.ActivityCacheSize),
	}
	initialized, err := chain.Initialized(db)
	if err != nil {
		return nil, err
	}
	if !initialized {
		log.Info("loading genesis state",
			"ceo", genesis.CEOAddress.Hex(),
			"geneScience", genesis.GeneScience,
		)
		if err := genesis.Load(db); err != nil {
			return nil, err
		}
	}
	return vm, nil
}

func (vm *VM) Genesis() *chain.Genesis { return vm.genesis }

// Submit executes tx atomically. The transaction must already be
// initialized (signature recovered, id computed).
func (vm *VM) Submit(tx *chain.Transaction) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	blockTime := vm.clock()
	vdb := versiondb.New(vm.db)
	defer vdb.Abort()

	if err := tx.Execute(vm.genesis, vdb, blockTime); err != nil {
		log.Debug("tx rejected", "txId", tx.ID(), "sender", tx.Sender().Hex(), "err", err)
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}

	a := tx.Activity()
	a.Tmstmp = int64(blockTime)
	a.Sender = tx.Sender().Hex()
	vm.cacheActivity(a)

	log.Debug("tx accepted", "txId", tx.ID(), "type", a.Typ, "sender", a.Sender)
	return nil
}

func (vm *VM) cacheActivity(a *chain.Activity) {
	if len(vm.activity) == 0 {
		return
	}
	vm.activity[vm.activityCursor%uint64(len(vm.activity))] = a
	vm.activityCursor++
}

// Activity returns the cached recent activity, newest first.
func (vm *VM) Activity() []*chain.Activity {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	n := uint64(len(vm.activity))
	if n == 0 {
		return nil
	}
	out := []*chain.Activity{}
	for i := uint64(0); i < n && i < vm.activityCursor; i++ {
		out = append(out, vm.activity[(vm.activityCursor-1-i)%n])
	}
	return out
}

func (vm *VM) HasTransaction(txID ids.ID) (bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.HasTransaction(vm.db, txID)
}

func (vm *VM) GetSnake(id uint64) (*chain.Snake, bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.GetSnake(vm.db, id)
}

func (vm *VM) OwnerOf(id uint64) (common.Address, bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.OwnerOf(vm.db, id)
}

func (vm *VM) Owned(addr common.Address) ([]uint64, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.Owned(vm.db, addr)
}

func (vm *VM) TotalSupply() (uint64, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.LastSnakeID(vm.db)
}

func (vm *VM) Balance(addr common.Address) (uint64, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.GetBalance(vm.db, addr)
}

// IsReadyToBreed reports whether the snake could take part in a
// breeding action right now.
func (vm *VM) IsReadyToBreed(id uint64) (bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	s, has, err := chain.GetSnake(vm.db, id)
	if err != nil {
		return false, err
	}
	if !has {
		return false, chain.ErrSnakeMissing
	}
	listed, err := chain.HasListing(vm.db, id)
	if err != nil {
		return false, err
	}
	return !listed && s.IsReady(vm.clock()), nil
}

// CanBreedWith reports whether the pair passes the kinship and
// readiness checks. Ownership and approvals are not consulted.
func (vm *VM) CanBreedWith(matronID uint64, sireID uint64) (bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	matron, has, err := chain.GetSnake(vm.db, matronID)
	if err != nil {
		return false, err
	}
	if !has {
		return false, chain.ErrSnakeMissing
	}
	sire, has, err := chain.GetSnake(vm.db, sireID)
	if err != nil {
		return false, err
	}
	if !has {
		return false, chain.ErrSnakeMissing
	}
	now := vm.clock()
	if !matron.IsReady(now) || !sire.IsReady(now) {
		return false, nil
	}
	return chain.ValidMating(matron, sire), nil
}

func (vm *VM) GetAuction(id uint64) (*chain.Listing, uint64, bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	listing, has, err := chain.GetListing(vm.db, id)
	if err != nil || !has {
		return nil, 0, has, err
	}
	return listing, listing.CurrentPrice(vm.clock()), true, nil
}

func (vm *VM) IsPaused() (bool, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.IsPaused(vm.db)
}

func (vm *VM) Roles() (*chain.Roles, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return chain.GetRoles(vm.db)
}

// Gen0Stats summarizes the founding-snake release progress and the
// price the next release auction would start at.
type Gen0Stats struct {
	Gen0Count    uint64 `serialize:"true" json:"gen0Count"`
	PromoCount   uint64 `serialize:"true" json:"promoCount"`
	AveragePrice uint64 `serialize:"true" json:"averagePrice"`
	NextPrice    uint64 `serialize:"true" json:"nextPrice"`
}

func (vm *VM) Gen0Stats() (*Gen0Stats, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	gen0, err := chain.Gen0Count(vm.db)
	if err != nil {
		return nil, err
	}
	promo, err := chain.PromoCount(vm.db)
	if err != nil {
		return nil, err
	}
	avg, err := chain.AverageGen0SalePrice(vm.db)
	if err != nil {
		return nil, err
	}
	next, err := chain.NextGen0Price(vm.genesis, vm.db)
	if err != nil {
		return nil, err
	}
	return &Gen0Stats{
		Gen0Count:    gen0,
		PromoCount:   promo,
		AveragePrice: avg,
		NextPrice:    next,
	}, nil
}
