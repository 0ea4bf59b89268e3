// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package p2pk - Ergo main network pay-to-public-key wallet addresses
//
// An Address can only be obtained from the validating constructors, so
// any non-zero Address held elsewhere in the system has already passed
// the full decode and checksum verification.
package p2pk

import (
	"bytes"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/GitCircles/GitCircles-Github/fault"
)

// miscellaneous constants
const (
	addressLength  = 38
	checksumLength = 4
	checksumStart  = addressLength - checksumLength

	// leading character of every main network P2PK address
	mainNetworkMarker = '9'

	// network(mainnet=0x00)+type(P2PK=0x01) prefix byte
	payToPublicKey = 0x01
)

// Address - a verified main network P2PK wallet address
//
// the zero value is not a valid address, test with IsZero
type Address struct {
	address string
}

// AddressFromBase58 - convert a Base58 encoded string to an address
//
// surrounding white space is removed and the trimmed string becomes
// the canonical form held for key building and display
func AddressFromBase58(addressBase58Encoded string) (Address, error) {

	address := strings.TrimSpace(addressBase58Encoded)
	if "" == address || mainNetworkMarker != address[0] {
		return Address{}, fault.WalletAddressNotMainNetwork
	}

	addressDecoded, err := base58.Decode(address)
	if nil != err {
		return Address{}, fault.CannotDecodeWalletAddress
	}

	if addressLength != len(addressDecoded) {
		return Address{}, fault.InvalidWalletAddressLength
	}

	if payToPublicKey != addressDecoded[0] {
		return Address{}, fault.WalletAddressNotPayToPublicKey
	}

	// compressed public key must start 0x02 or 0x03
	if 0x02 != addressDecoded[1] && 0x03 != addressDecoded[1] {
		return Address{}, fault.InvalidWalletPublicKeyPrefix
	}

	checksum := blake2b.Sum256(addressDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], addressDecoded[checksumStart:]) {
		return Address{}, fault.WalletAddressChecksumMismatch
	}

	return Address{address: address}, nil
}

// String - the canonical Base58 form
func (address Address) String() string {
	return address.address
}

// IsZero - detect the uninitialised zero value
func (address Address) IsZero() bool {
	return "" == address.address
}

// MarshalText - convert an address to its Base58 JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.address), nil
}

// UnmarshalText - convert from the Base58 JSON form
//
// the stored text is fully revalidated
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
