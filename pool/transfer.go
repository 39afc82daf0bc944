// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/ava-labs/multiswap/codec"
)

// TokenTransferrer delivers the output leg of a swap. Requests are
// fire-and-forget: the pool observes no result, and a delivery failure does
// not re-credit the reserves. Hosts needing reconciliation must layer it on
// top of their transport.
type TokenTransferrer interface {
	RequestTransfer(ctx context.Context, to codec.Address, token codec.Address, amount *uint256.Int)
}

var _ TokenTransferrer = (*NoopTransferrer)(nil)

// NoopTransferrer drops every transfer request. Useful for hosts that settle
// balances through their own ledger after the call returns.
type NoopTransferrer struct{}

func (*NoopTransferrer) RequestTransfer(context.Context, codec.Address, codec.Address, *uint256.Int) {
}
