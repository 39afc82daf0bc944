// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestAddressText(t *testing.T) {
	req := require.New(t)

	addr := CreateAddress(0x7, ids.ID{0x1, 0x2, 0x3})
	text, err := addr.MarshalText()
	req.NoError(err)

	var parsed Address
	req.NoError(parsed.UnmarshalText(text))
	req.Equal(addr, parsed)

	// The 0x prefix is optional on input.
	req.NoError(parsed.UnmarshalText(text[2:]))
	req.Equal(addr, parsed)
}

func TestAddressUnmarshalErrors(t *testing.T) {
	req := require.New(t)

	var addr Address
	req.Error(addr.UnmarshalText([]byte("0xzz")))
	req.ErrorIs(addr.UnmarshalText([]byte("0x0102")), ErrBadAddressLen)
}
