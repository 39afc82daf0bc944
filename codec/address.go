// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
)

const AddressLen = 33

// Address identifies an account or a token contract: one type byte
// followed by a 32-byte id.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns the [Address] formed by prepending [typeID] to [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	var a Address
	a[0] = typeID
	copy(a[1:], id[:])
	return a
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText returns the 0x-prefixed hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	result := make([]byte, 2+AddressLen*2)
	copy(result, `0x`)
	hex.Encode(result[2:], a[:])
	return result, nil
}

// UnmarshalText parses a hex-encoded address, with or without the 0x prefix.
func (a *Address) UnmarshalText(input []byte) error {
	if len(input) >= 2 && input[0] == '0' && input[1] == 'x' {
		input = input[2:]
	}
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != AddressLen {
		return fmt.Errorf("%w: got %d bytes, expected %d", ErrBadAddressLen, len(decoded), AddressLen)
	}
	copy(a[:], decoded)
	return nil
}
