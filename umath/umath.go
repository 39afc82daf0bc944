// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package umath provides overflow-checked 256-bit arithmetic for pool math.
// Cross-multiplying two reserves can exceed 256 bits, so multiply-then-divide
// runs in a wider domain and only the final quotient is narrowed back,
// failing loudly when it does not fit.
package umath

import (
	"math/big"

	"github.com/holiman/uint256"
)

// MulDiv returns floor(x * y / d). The product is taken at full width before
// dividing, so the only overflow possible is the quotient itself exceeding
// 256 bits.
func MulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	product := new(big.Int).Mul(x.ToBig(), y.ToBig())
	quotient := product.Div(product, d.ToBig())
	z, overflow := uint256.FromBig(quotient)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Mul returns x * y, failing on 256-bit overflow.
func Mul(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Add returns x + y, failing on 256-bit overflow.
func Add(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Sub returns x - y, failing if y > x.
func Sub(x, y *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return nil, ErrUnderflow
	}
	return z, nil
}
