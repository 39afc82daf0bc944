// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage maintains the pool's liquidity-share ledger on top of the
// host-injected key-value state.
//
// State layout:
// 0x0/ (shares)
//   -> [provider] => 32-byte big-endian share balance
package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/ava-labs/multiswap/codec"
	"github.com/ava-labs/multiswap/consts"
	"github.com/ava-labs/multiswap/state"
	"github.com/ava-labs/multiswap/umath"
)

const sharesPrefix byte = 0x0

const SharesChunks uint16 = 1

const sharesValueLen = 32

// SharesKey returns the state key holding [provider]'s share balance.
func SharesKey(provider codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k[0] = sharesPrefix
	copy(k[1:], provider[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], SharesChunks)
	return k
}

// GetShares returns [provider]'s share balance and whether an entry exists.
// An absent entry reads as zero.
func GetShares(
	ctx context.Context,
	im state.Immutable,
	provider codec.Address,
) (*uint256.Int, bool, error) {
	v, err := im.GetValue(ctx, SharesKey(provider))
	if errors.Is(err, database.ErrNotFound) {
		return new(uint256.Int), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(v) != sharesValueLen {
		return nil, false, ErrInvalidSharesValue
	}
	return new(uint256.Int).SetBytes(v), true, nil
}

func setShares(
	ctx context.Context,
	mu state.Mutable,
	provider codec.Address,
	shares *uint256.Int,
) error {
	v := shares.Bytes32()
	return mu.Insert(ctx, SharesKey(provider), v[:])
}

// AddShares credits [amount] to [provider], creating the entry if absent.
// Crediting zero to an absent provider is a no-op so that zero-valued
// entries are never written.
func AddShares(
	ctx context.Context,
	mu state.Mutable,
	provider codec.Address,
	amount *uint256.Int,
) error {
	prev, exists, err := GetShares(ctx, mu, provider)
	if err != nil {
		return err
	}
	if amount.IsZero() && !exists {
		return nil
	}
	next, err := umath.Add(prev, amount)
	if err != nil {
		return err
	}
	return setShares(ctx, mu, provider, next)
}

// SubShares debits [amount] from [provider]. The entry is removed outright
// when the balance reaches exactly zero.
func SubShares(
	ctx context.Context,
	mu state.Mutable,
	provider codec.Address,
	amount *uint256.Int,
) error {
	prev, exists, err := GetShares(ctx, mu, provider)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoShares
	}
	next, err := umath.Sub(prev, amount)
	if err != nil {
		return ErrInsufficientShares
	}
	if next.IsZero() {
		return mu.Remove(ctx, SharesKey(provider))
	}
	return setShares(ctx, mu, provider, next)
}
