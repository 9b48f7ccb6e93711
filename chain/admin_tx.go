// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

type Role uint8

const (
	RoleCEO Role = iota
	RoleCFO
	RoleCOO
)

// Roles are the privileged identities: the CEO appoints everyone and
// controls lifecycle, the CFO drains accrued system funds, the COO runs
// day-to-day minting.
type Roles struct {
	CEO common.Address `serialize:"true" json:"ceo"`
	CFO common.Address `serialize:"true" json:"cfo"`
	COO common.Address `serialize:"true" json:"coo"`
}

func (r *Roles) IsCLevel(addr common.Address) bool {
	return bytes.Equal(addr[:], r.CEO[:]) ||
		bytes.Equal(addr[:], r.CFO[:]) ||
		bytes.Equal(addr[:], r.COO[:])
}

var (
	_ UnsignedTransaction = &SetRoleTx{}
	_ UnsignedTransaction = &PauseTx{}
	_ UnsignedTransaction = &UnpauseTx{}
	_ UnsignedTransaction = &SetGeneScienceTx{}
	_ UnsignedTransaction = &SetUpgradeTx{}
	_ UnsignedTransaction = &RescueTx{}
	_ UnsignedTransaction = &WithdrawTx{}
)

// SetRoleTx reassigns a privileged identity. CEO only, usable while
// paused.
type SetRoleTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Role Role           `serialize:"true" json:"role"`
	To   common.Address `serialize:"true" json:"to"`
}

func (s *SetRoleTx) Execute(t *TransactionContext) error {
	if bytes.Equal(s.To[:], zeroAddress[:]) {
		return ErrZeroAddress
	}
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.CEO) {
		return ErrUnauthorized
	}
	switch s.Role {
	case RoleCEO:
		roles.CEO = s.To
	case RoleCFO:
		roles.CFO = s.To
	case RoleCOO:
		roles.COO = s.To
	default:
		return ErrNonActionable
	}
	return PutRoles(t.Database, roles)
}

func (s *SetRoleTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, s.To[:])
	return &SetRoleTx{
		BaseTx: s.BaseTx.Copy(),
		Role:   s.Role,
		To:     common.BytesToAddress(to),
	}
}

func (s *SetRoleTx) Activity() *Activity {
	return &Activity{Typ: RoleChange, To: s.To.Hex()}
}

// PauseTx halts all non-admin mutations. Any C-level identity may pull
// the brake.
type PauseTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (p *PauseTx) Execute(t *TransactionContext) error {
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !roles.IsCLevel(t.Sender) {
		return ErrUnauthorized
	}
	paused, err := IsPaused(t.Database)
	if err != nil {
		return err
	}
	if paused {
		return ErrPaused
	}
	return SetPaused(t.Database, true)
}

func (p *PauseTx) Copy() UnsignedTransaction {
	return &PauseTx{BaseTx: p.BaseTx.Copy()}
}

func (p *PauseTx) Activity() *Activity {
	return &Activity{Typ: Paused}
}

// UnpauseTx resumes operation. CEO only, and refused forever once a
// replacement system has been designated.
type UnpauseTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (u *UnpauseTx) Execute(t *TransactionContext) error {
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.CEO) {
		return ErrUnauthorized
	}
	if _, migrated, err := GetUpgradeAddress(t.Database); err != nil {
		return err
	} else if migrated {
		return ErrAlreadyMigrated
	}
	paused, err := IsPaused(t.Database)
	if err != nil {
		return err
	}
	if !paused {
		return ErrNotPaused
	}
	return SetPaused(t.Database, false)
}

func (u *UnpauseTx) Copy() UnsignedTransaction {
	return &UnpauseTx{BaseTx: u.BaseTx.Copy()}
}

func (u *UnpauseTx) Activity() *Activity {
	return &Activity{Typ: Unpaused}
}

// SetGeneScienceTx rebinds the gene mixing implementation. The named
// implementation must pass the capability probe. CEO only.
type SetGeneScienceTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Name string `serialize:"true" json:"name"`
}

func (s *SetGeneScienceTx) Execute(t *TransactionContext) error {
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.CEO) {
		return ErrUnauthorized
	}
	if _, err := ProbeGeneScience(s.Name); err != nil {
		return err
	}
	return SetGeneScienceName(t.Database, s.Name)
}

func (s *SetGeneScienceTx) Copy() UnsignedTransaction {
	return &SetGeneScienceTx{
		BaseTx: s.BaseTx.Copy(),
		Name:   s.Name,
	}
}

func (s *SetGeneScienceTx) Activity() *Activity {
	return &Activity{Typ: GeneBinding, To: s.Name}
}

// SetUpgradeTx designates a replacement system. Only allowed while
// paused; once set, the system can never be unpaused again.
type SetUpgradeTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	To common.Address `serialize:"true" json:"to"`
}

func (s *SetUpgradeTx) Execute(t *TransactionContext) error {
	if bytes.Equal(s.To[:], zeroAddress[:]) {
		return ErrZeroAddress
	}
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.CEO) {
		return ErrUnauthorized
	}
	paused, err := IsPaused(t.Database)
	if err != nil {
		return err
	}
	if !paused {
		return ErrNotPaused
	}
	return SetUpgradeAddress(t.Database, s.To)
}

func (s *SetUpgradeTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, s.To[:])
	return &SetUpgradeTx{
		BaseTx: s.BaseTx.Copy(),
		To:     common.BytesToAddress(to),
	}
}

func (s *SetUpgradeTx) Activity() *Activity {
	return &Activity{Typ: Upgrade, To: s.To.Hex()}
}

// RescueTx returns a snake stranded on the system account to a real
// owner. COO only.
type RescueTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	SnakeID uint64         `serialize:"true" json:"snakeId"`
	To      common.Address `serialize:"true" json:"to"`
}

func (r *RescueTx) Execute(t *TransactionContext) error {
	if bytes.Equal(r.To[:], zeroAddress[:]) {
		return ErrZeroAddress
	}
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.COO) {
		return ErrUnauthorized
	}
	owner, has, err := OwnerOf(t.Database, r.SnakeID)
	if err != nil {
		return err
	}
	if !has {
		return ErrSnakeMissing
	}
	if !bytes.Equal(owner[:], SystemAddress[:]) {
		return ErrNotRescuable
	}
	// A listed system snake (gen0 auction) is not lost.
	if err := verifyNotEscrowed(t, r.SnakeID); err != nil {
		return err
	}
	return SetOwner(t.Database, r.SnakeID, r.To)
}

func (r *RescueTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, r.To[:])
	return &RescueTx{
		BaseTx:  r.BaseTx.Copy(),
		SnakeID: r.SnakeID,
		To:      common.BytesToAddress(to),
	}
}

func (r *RescueTx) Activity() *Activity {
	return &Activity{
		Typ:     Rescue,
		SnakeID: r.SnakeID,
		To:      r.To.Hex(),
	}
}

// WithdrawTx moves the accrued system balance (auction cuts) to the
// CFO's account.
type WithdrawTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	amount uint64
}

func (w *WithdrawTx) Execute(t *TransactionContext) error {
	roles, err := GetRoles(t.Database)
	if err != nil {
		return err
	}
	if !t.authorized(roles.CFO) {
		return ErrUnauthorized
	}
	bal, err := GetBalance(t.Database, SystemAddress)
	if err != nil {
		return err
	}
	if bal == 0 {
		return ErrNonActionable
	}
	if _, err := ModifyBalance(t.Database, SystemAddress, false, bal); err != nil {
		return err
	}
	if _, err := ModifyBalance(t.Database, roles.CFO, true, bal); err != nil {
		return err
	}
	w.amount = bal
	return nil
}

func (w *WithdrawTx) Copy() UnsignedTransaction {
	return &WithdrawTx{BaseTx: w.BaseTx.Copy()}
}

func (w *WithdrawTx) Activity() *Activity {
	return &Activity{Typ: Withdraw, Amount: w.amount}
}
