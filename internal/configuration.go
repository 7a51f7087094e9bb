// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal handles the group arithmetic, hashing, and inversion behind the anonymous token protocol.
package internal

import (
	"crypto"
	"crypto/elliptic"
	"fmt"
	"math/big"

	group "github.com/bytemare/crypto"
)

// secp256k1Order is the order n of the secp256k1 group, as per SEC 2.
const secp256k1Order = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

// CiphersuiteIdentifier maps a supported group to its name.
var CiphersuiteIdentifier = map[group.Group]string{
	group.Secp256k1:  "secp256k1-SHA256",
	group.P256Sha256: "P256-SHA256",
}

// A Core holds the cryptographic configuration and methods used for token operations.
type Core struct {
	order *big.Int
	Hash  crypto.Hash
	Group group.Group
}

func makeCore(g group.Group, h crypto.Hash, order *big.Int) *Core {
	return &Core{
		Group: g,
		Hash:  h,
		order: order,
	}
}

// IsSupported returns whether the group can be loaded with LoadConfiguration.
func IsSupported(g group.Group) bool {
	_, ok := CiphersuiteIdentifier[g]
	return ok && g.Available()
}

// LoadConfiguration returns a core configuration given the group. It panics on an unsupported group, so callers
// should check with IsSupported first.
func LoadConfiguration(g group.Group) *Core {
	switch g {
	case group.Secp256k1:
		n, _ := new(big.Int).SetString(secp256k1Order, 16)
		return makeCore(group.Secp256k1, crypto.SHA256, n)
	case group.P256Sha256:
		return makeCore(group.P256Sha256, crypto.SHA256, new(big.Int).Set(elliptic.P256().Params().N))
	default:
		panic(fmt.Sprintf("invalid token dependency - Group: %v", g))
	}
}

// Order returns a copy of the group order n.
func (c *Core) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// ScalarLength returns the byte length of an encoded scalar.
func (c *Core) ScalarLength() int {
	return c.Group.ScalarLength()
}

// ElementLength returns the byte length of a compressed element.
func (c *Core) ElementLength() int {
	return c.Group.ElementLength()
}
