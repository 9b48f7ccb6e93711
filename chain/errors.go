// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Tx Correctness
	ErrInvalidSignature = errors.New("invalid signature")
	ErrDuplicateTx      = errors.New("duplicate transaction")
	ErrInvalidGenes     = errors.New("invalid genes")

	// Authorization
	ErrUnauthorized = errors.New("sender is not authorized")
	ErrZeroAddress  = errors.New("zero address not allowed")

	// Missing state
	ErrSnakeMissing   = errors.New("snake missing")
	ErrAuctionMissing = errors.New("auction missing")

	// Invalid state
	ErrNotReady      = errors.New("snake not ready")
	ErrGestating     = errors.New("snake is gestating")
	ErrNotGestating  = errors.New("snake is not gestating")
	ErrInEscrow      = errors.New("snake is held by an auction")
	ErrAuctionExists = errors.New("auction already exists")
	ErrNonActionable = errors.New("transaction doesn't do anything")
	ErrMintLimit     = errors.New("mint limit reached")
	ErrNotRescuable  = errors.New("snake is not held by the system account")

	// Lineage
	ErrInvalidRelation = errors.New("snakes are too closely related")

	// Payment
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Lifecycle
	ErrPaused          = errors.New("system is paused")
	ErrNotPaused       = errors.New("system is not paused")
	ErrAlreadyMigrated = errors.New("replacement system has been designated")

	// Gene science
	ErrGeneScienceMissing = errors.New("gene science not bound")
	ErrNotGeneScience     = errors.New("implementation failed gene science probe")

	ErrNotANumber = errors.New("not a number")
)
