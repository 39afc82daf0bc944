// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidSharesValue = errors.New("invalid shares value")
	ErrNoShares           = errors.New("provider has no shares")
	ErrInsufficientShares = errors.New("insufficient shares")
)
