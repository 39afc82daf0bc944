// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"errors"

	"github.com/ava-labs/multiswap/storage"
)

var (
	// Construction errors
	ErrFeeTooLarge    = errors.New("fee must be less than the fee divisor")
	ErrTooManyTokens  = errors.New("too many tokens")
	ErrTooFewTokens   = errors.New("too few tokens")
	ErrDuplicateToken = errors.New("duplicate token")

	// Input errors
	ErrTokenCountMismatch = errors.New("wrong token count")
	ErrZeroAmount         = errors.New("amount is zero")
	ErrUnknownToken       = errors.New("token not in pool")
	ErrInvalidPair        = errors.New("input and output token are identical")
	ErrEmptyReserve       = errors.New("reserve is empty")

	// Economic guarantees
	ErrMinAmountNotMet = errors.New("minimum amount not met")

	// Share ledger state
	ErrNoShares           = storage.ErrNoShares
	ErrInsufficientShares = storage.ErrInsufficientShares

	// Serialization boundary
	ErrCorruptPoolState = errors.New("corrupt pool state")
)
