// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// TransactionContext carries everything an operation may read or write.
// The host executes transactions one at a time against a version layer
// of the state database, so an Execute that returns an error leaves no
// trace.
type TransactionContext struct {
	Genesis  *Genesis
	Database database.Database

	// BlockTime is the external monotonic clock, supplied per
	// transaction. The core never advances it.
	BlockTime uint64
	TxID      ids.ID
	Sender    common.Address
}
