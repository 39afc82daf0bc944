// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis describes the host-facing pool configuration: the token
// basket and swap fee a pool is created with, both immutable afterwards.
package genesis

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/multiswap/codec"
	"github.com/ava-labs/multiswap/pool"
	"github.com/ava-labs/multiswap/state"
)

// DefaultFee charges 0.3% per swap, the customary constant-product rate.
const DefaultFee uint64 = 3

type Genesis struct {
	Tokens []codec.Address `json:"tokens"`
	Fee    uint64          `json:"fee"`
}

func New(tokens []codec.Address, fee uint64) *Genesis {
	return &Genesis{
		Tokens: tokens,
		Fee:    fee,
	}
}

// Load parses the JSON pool configuration in [b].
func Load(b []byte) (*Genesis, error) {
	g := &Genesis{Fee: DefaultFee}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("unable to parse genesis: %w", err)
	}
	return g, nil
}

// InitializePool creates an empty pool from the configuration. Validation of
// the fee and token basket happens in [pool.New].
func (g *Genesis) InitializePool(
	mu state.Mutable,
	ft pool.TokenTransferrer,
	opts ...pool.Option,
) (*pool.Pool, error) {
	return pool.New(g.Tokens, g.Fee, mu, ft, opts...)
}
