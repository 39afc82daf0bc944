// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "context"

// Immutable is the read side of the host ledger. Implementations must
// return [database.ErrNotFound] for absent keys.
type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

// Mutable is the durable key-value capability the host injects into the
// pool. The host guarantees calls touching a given pool are serialized, so
// implementations need no internal locking on the pool's behalf.
type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}
