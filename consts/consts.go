// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/version"
	"github.com/holiman/uint256"
)

const (
	Name = "multiswap"

	// FeeDivisor is the denominator of the pool swap fee. A pool fee is a
	// numerator over this value, so fee=3 charges 0.3% of every swap input.
	FeeDivisor uint64 = 1_000

	// MinNumTokens and MaxNumTokens bound the size of a pool's token basket.
	MinNumTokens = 2
	MaxNumTokens = 10

	Uint16Len = 2
	Uint64Len = 8
	ByteLen   = 1
)

// InitSharesSupply is minted to the first liquidity provider. It is large
// enough that later proportional mints keep precision under floor division.
var InitSharesSupply = uint256.MustFromDecimal("1000000000000000000000") // 10^21

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
