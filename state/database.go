// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*DatabaseStorage)(nil)

// DatabaseStorage adapts an avalanchego [database.Database] to [Mutable],
// for hosts that persist pool state directly in a node database.
type DatabaseStorage struct {
	db database.KeyValueReaderWriterDeleter
}

func NewDatabaseStorage(db database.KeyValueReaderWriterDeleter) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

func (s *DatabaseStorage) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return s.db.Get(key)
}

func (s *DatabaseStorage) Insert(_ context.Context, key []byte, value []byte) error {
	return s.db.Put(key, value)
}

func (s *DatabaseStorage) Remove(_ context.Context, key []byte) error {
	return s.db.Delete(key)
}
