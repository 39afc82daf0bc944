// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pool implements a constant-product market maker over a basket of
// 2..10 tokens. Liquidity providers hold shares that are a proportional
// claim on every reserve simultaneously. The host is expected to serialize
// all calls against a given pool; there is no internal locking.
package pool

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ava-labs/multiswap/codec"
	"github.com/ava-labs/multiswap/consts"
	"github.com/ava-labs/multiswap/state"
	"github.com/ava-labs/multiswap/storage"
	"github.com/ava-labs/multiswap/umath"
)

type Pool struct {
	tokens      []codec.Address
	reserves    []*uint256.Int
	fee         uint64
	totalShares *uint256.Int

	mu state.Mutable
	ft TokenTransferrer

	log     logging.Logger
	metrics *metrics
}

// New creates an empty pool over [tokens] charging [fee]/[consts.FeeDivisor]
// on every swap input. [mu] holds the provider share ledger and [ft] delivers
// outbound transfers after swaps. Token order is fixed for the pool's life
// and defines the index every operation uses.
func New(
	tokens []codec.Address,
	fee uint64,
	mu state.Mutable,
	ft TokenTransferrer,
	opts ...Option,
) (*Pool, error) {
	if fee >= consts.FeeDivisor {
		return nil, ErrFeeTooLarge
	}
	if len(tokens) >= consts.MaxNumTokens {
		return nil, ErrTooManyTokens
	}
	if len(tokens) < consts.MinNumTokens {
		return nil, ErrTooFewTokens
	}
	seen := make(map[codec.Address]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			return nil, ErrDuplicateToken
		}
		seen[token] = struct{}{}
	}

	p := &Pool{
		tokens:      make([]codec.Address, len(tokens)),
		reserves:    make([]*uint256.Int, len(tokens)),
		fee:         fee,
		totalShares: new(uint256.Int),
		mu:          mu,
		ft:          ft,
		log:         logging.NoLog{},
	}
	copy(p.tokens, tokens)
	for i := range p.reserves {
		p.reserves[i] = new(uint256.Int)
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddLiquidity deposits [amounts] (one strictly positive entry per pool
// token, in token order) and credits [provider] with newly minted shares.
//
// The first deposit sets the pool's opening price: amounts are taken as-is
// and [consts.InitSharesSupply] shares are minted. Afterwards the mint is
// the minimum share count implied by any single token ratio, and the
// reserve increments are re-derived from that realized mint, so a provider
// overstating one token is credited only what the least generous token
// supports. Any caller excess beyond the derived increments is not pulled
// and is left for the caller to reconcile.
func (p *Pool) AddLiquidity(
	ctx context.Context,
	provider codec.Address,
	amounts []*uint256.Int,
) (*uint256.Int, error) {
	if len(amounts) != len(p.tokens) {
		return nil, ErrTokenCountMismatch
	}
	for _, amount := range amounts {
		if amount.IsZero() {
			return nil, ErrZeroAmount
		}
	}

	var (
		minted      *uint256.Int
		newReserves = make([]*uint256.Int, len(p.tokens))
		newTotal    *uint256.Int
	)
	if p.totalShares.IsZero() {
		minted = new(uint256.Int).Set(consts.InitSharesSupply)
		for i, amount := range amounts {
			newReserves[i] = new(uint256.Int).Set(amount)
		}
		newTotal = new(uint256.Int).Set(consts.InitSharesSupply)
	} else {
		for i, amount := range amounts {
			candidate, err := umath.MulDiv(amount, p.totalShares, p.reserves[i])
			if err != nil {
				return nil, err
			}
			if minted == nil || candidate.Lt(minted) {
				minted = candidate
			}
		}
		if minted.IsZero() {
			// Amounts too small to mint a single share. Nothing is pulled
			// and no zero-valued ledger entry is created.
			return new(uint256.Int), nil
		}
		for i := range p.tokens {
			delta, err := umath.MulDiv(p.reserves[i], minted, p.totalShares)
			if err != nil {
				return nil, err
			}
			newReserves[i], err = umath.Add(p.reserves[i], delta)
			if err != nil {
				return nil, err
			}
		}
		var err error
		newTotal, err = umath.Add(p.totalShares, minted)
		if err != nil {
			return nil, err
		}
	}

	if err := storage.AddShares(ctx, p.mu, provider, minted); err != nil {
		return nil, err
	}
	copy(p.reserves, newReserves)
	p.totalShares = newTotal

	if p.metrics != nil {
		p.metrics.liquidityAdds.Inc()
	}
	p.log.Debug("liquidity added",
		zap.Stringer("provider", provider),
		zap.String("minted", minted.Dec()),
		zap.String("totalShares", p.totalShares.Dec()),
	)
	return new(uint256.Int).Set(minted), nil
}

// RemoveLiquidity burns [shares] of [provider]'s stake and returns the
// proportional amount of every reserve. The call fails before any mutation
// if any computed amount is below the matching entry of [minAmounts].
// Transferring the returned amounts back to the provider is the caller's
// responsibility.
func (p *Pool) RemoveLiquidity(
	ctx context.Context,
	provider codec.Address,
	shares *uint256.Int,
	minAmounts []*uint256.Int,
) ([]*uint256.Int, error) {
	if len(minAmounts) != len(p.tokens) {
		return nil, ErrTokenCountMismatch
	}
	held, exists, err := storage.GetShares(ctx, p.mu, provider)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNoShares
	}
	if held.Lt(shares) {
		return nil, ErrInsufficientShares
	}

	var (
		amounts     = make([]*uint256.Int, len(p.tokens))
		newReserves = make([]*uint256.Int, len(p.tokens))
	)
	for i := range p.tokens {
		amounts[i], err = umath.MulDiv(p.reserves[i], shares, p.totalShares)
		if err != nil {
			return nil, err
		}
		if amounts[i].Lt(minAmounts[i]) {
			return nil, ErrMinAmountNotMet
		}
		newReserves[i], err = umath.Sub(p.reserves[i], amounts[i])
		if err != nil {
			return nil, err
		}
	}
	newTotal, err := umath.Sub(p.totalShares, shares)
	if err != nil {
		return nil, err
	}

	if err := storage.SubShares(ctx, p.mu, provider, shares); err != nil {
		return nil, err
	}
	copy(p.reserves, newReserves)
	p.totalShares = newTotal

	if p.metrics != nil {
		p.metrics.liquidityRemoves.Inc()
	}
	p.log.Debug("liquidity removed",
		zap.Stringer("provider", provider),
		zap.String("burned", shares.Dec()),
		zap.String("totalShares", p.totalShares.Dec()),
	)
	return amounts, nil
}

// Quote prices a swap of [amountIn] of [tokenIn] for [tokenOut] without
// touching pool state.
func (p *Pool) Quote(
	tokenIn codec.Address,
	amountIn *uint256.Int,
	tokenOut codec.Address,
) (*uint256.Int, error) {
	in, out, err := p.pairIndices(tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}
	return p.quote(in, amountIn, out)
}

// Swap trades [amountIn] of [tokenIn] for at least [minAmountOut] of
// [tokenOut]. The caller must have already moved [amountIn] into the pool's
// custody. On success the reserve update is committed and exactly one
// outbound transfer of the output is requested for [sender]; delivery of
// that transfer is the collaborator's concern and is not rolled back here.
func (p *Pool) Swap(
	ctx context.Context,
	sender codec.Address,
	tokenIn codec.Address,
	amountIn *uint256.Int,
	tokenOut codec.Address,
	minAmountOut *uint256.Int,
) (*uint256.Int, error) {
	in, out, err := p.pairIndices(tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}
	amountOut, err := p.quote(in, amountIn, out)
	if err != nil {
		return nil, err
	}
	if amountOut.Lt(minAmountOut) {
		return nil, ErrMinAmountNotMet
	}
	newIn, err := umath.Add(p.reserves[in], amountIn)
	if err != nil {
		return nil, err
	}
	// The constant-product quotient is strictly below the output reserve, so
	// this cannot underflow.
	newOut, err := umath.Sub(p.reserves[out], amountOut)
	if err != nil {
		return nil, err
	}
	p.reserves[in] = newIn
	p.reserves[out] = newOut

	p.ft.RequestTransfer(ctx, sender, p.tokens[out], new(uint256.Int).Set(amountOut))

	if p.metrics != nil {
		p.metrics.swaps.Inc()
	}
	p.log.Debug("swap",
		zap.Stringer("sender", sender),
		zap.Stringer("tokenIn", tokenIn),
		zap.Stringer("tokenOut", tokenOut),
		zap.String("amountIn", amountIn.Dec()),
		zap.String("amountOut", amountOut.Dec()),
	)
	return amountOut, nil
}

// quote prices [amountIn] of token [in] in units of token [out] with the
// fee taken on the input side:
//
//	afterFee = amountIn * (FeeDivisor - fee)
//	amountOut = afterFee * reserveOut / (FeeDivisor * reserveIn + afterFee)
//
// Floor division throughout, so rounding always favors the pool.
func (p *Pool) quote(in int, amountIn *uint256.Int, out int) (*uint256.Int, error) {
	if amountIn.IsZero() {
		return nil, ErrZeroAmount
	}
	reserveIn, reserveOut := p.reserves[in], p.reserves[out]
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrEmptyReserve
	}
	afterFee, err := umath.Mul(amountIn, uint256.NewInt(consts.FeeDivisor-p.fee))
	if err != nil {
		return nil, err
	}
	scaledIn, err := umath.Mul(reserveIn, uint256.NewInt(consts.FeeDivisor))
	if err != nil {
		return nil, err
	}
	denominator, err := umath.Add(scaledIn, afterFee)
	if err != nil {
		return nil, err
	}
	return umath.MulDiv(afterFee, reserveOut, denominator)
}

func (p *Pool) pairIndices(tokenIn, tokenOut codec.Address) (int, int, error) {
	in, err := p.tokenIndex(tokenIn)
	if err != nil {
		return 0, 0, err
	}
	out, err := p.tokenIndex(tokenOut)
	if err != nil {
		return 0, 0, err
	}
	if in == out {
		return 0, 0, ErrInvalidPair
	}
	return in, out, nil
}

func (p *Pool) tokenIndex(token codec.Address) (int, error) {
	for i, t := range p.tokens {
		if t == token {
			return i, nil
		}
	}
	return 0, ErrUnknownToken
}

// Tokens returns the pool's token list in index order.
func (p *Pool) Tokens() []codec.Address {
	tokens := make([]codec.Address, len(p.tokens))
	copy(tokens, p.tokens)
	return tokens
}

// Reserves returns a copy of the current reserve balances in token order.
func (p *Pool) Reserves() []*uint256.Int {
	reserves := make([]*uint256.Int, len(p.reserves))
	for i, r := range p.reserves {
		reserves[i] = new(uint256.Int).Set(r)
	}
	return reserves
}

// Fee returns the swap fee numerator over [consts.FeeDivisor].
func (p *Pool) Fee() uint64 {
	return p.fee
}

// TotalShares returns the outstanding share supply.
func (p *Pool) TotalShares() *uint256.Int {
	return new(uint256.Int).Set(p.totalShares)
}

// Shares returns [provider]'s share balance. An absent entry reads as zero.
func (p *Pool) Shares(ctx context.Context, provider codec.Address) (*uint256.Int, error) {
	shares, _, err := storage.GetShares(ctx, p.mu, provider)
	return shares, err
}
