// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package umath

import "errors"

var (
	ErrOverflow       = errors.New("result overflows 256 bits")
	ErrUnderflow      = errors.New("result underflows zero")
	ErrDivisionByZero = errors.New("division by zero")
)
