// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/near/borsh-go"

	"github.com/ava-labs/multiswap/codec"
	"github.com/ava-labs/multiswap/state"
)

// poolState is the borsh wire form of a pool's own state. The provider
// share ledger lives in host state and is not part of this encoding.
type poolState struct {
	Tokens      []codec.Address
	Reserves    [][32]uint8
	Fee         uint64
	TotalShares [32]uint8
}

// Bytes returns the borsh encoding of the pool's reserves, fee, token list,
// and share supply. Hosts persist this between calls.
func (p *Pool) Bytes() ([]byte, error) {
	ps := poolState{
		Tokens:      p.Tokens(),
		Reserves:    make([][32]uint8, len(p.reserves)),
		Fee:         p.fee,
		TotalShares: p.totalShares.Bytes32(),
	}
	for i, r := range p.reserves {
		ps.Reserves[i] = r.Bytes32()
	}
	return borsh.Serialize(ps)
}

// ParsePool rebuilds a pool from [b], reattaching the host capabilities the
// encoding does not carry.
func ParsePool(
	b []byte,
	mu state.Mutable,
	ft TokenTransferrer,
	opts ...Option,
) (*Pool, error) {
	var ps poolState
	if err := borsh.Deserialize(&ps, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPoolState, err)
	}
	if len(ps.Reserves) != len(ps.Tokens) {
		return nil, ErrCorruptPoolState
	}
	p, err := New(ps.Tokens, ps.Fee, mu, ft, opts...)
	if err != nil {
		return nil, err
	}
	totalShares := new(uint256.Int).SetBytes(ps.TotalShares[:])
	for i := range ps.Reserves {
		reserve := new(uint256.Int).SetBytes(ps.Reserves[i][:])
		if reserve.IsZero() != totalShares.IsZero() {
			return nil, ErrCorruptPoolState
		}
		p.reserves[i] = reserve
	}
	p.totalShares = totalShares
	return p, nil
}
