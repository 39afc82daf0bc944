// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestMutableStorage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	mu := MutableStorage{}

	_, err := mu.GetValue(ctx, []byte("k"))
	req.ErrorIs(err, database.ErrNotFound)

	req.NoError(mu.Insert(ctx, []byte("k"), []byte("v")))
	v, err := mu.GetValue(ctx, []byte("k"))
	req.NoError(err)
	req.Equal([]byte("v"), v)

	req.NoError(mu.Remove(ctx, []byte("k")))
	_, err = mu.GetValue(ctx, []byte("k"))
	req.ErrorIs(err, database.ErrNotFound)
}

func TestDatabaseStorage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	mu := NewDatabaseStorage(memdb.New())

	_, err := mu.GetValue(ctx, []byte("k"))
	req.ErrorIs(err, database.ErrNotFound)

	req.NoError(mu.Insert(ctx, []byte("k"), []byte("v")))
	v, err := mu.GetValue(ctx, []byte("k"))
	req.NoError(err)
	req.Equal([]byte("v"), v)

	req.NoError(mu.Remove(ctx, []byte("k")))
	_, err = mu.GetValue(ctx, []byte("k"))
	req.ErrorIs(err, database.ErrNotFound)
}
