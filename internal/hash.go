// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto/rand"
	"fmt"
	"math/big"

	group "github.com/bytemare/crypto"
	"github.com/bytemare/hash"
)

// SecretLength is the byte length of the per-token secret.
const SecretLength = 32

// Digest returns the hash of the concatenated input with the configured hash function.
func (c *Core) Digest(input ...[]byte) []byte {
	h := hash.FromCrypto(c.Hash).GetHashFunction()
	for _, in := range input {
		_, _ = h.Write(in)
	}

	return h.Sum(nil)
}

// HashToScalar maps the secret to a scalar by interpreting its digest as a big-endian integer reduced modulo the
// group order.
//
// This is not a uniform hash-to-field: there is no rejection sampling nor wide reduction, and the small resulting bias
// is kept on purpose since evaluators recompute this exact mapping to verify tokens.
func (c *Core) HashToScalar(secret []byte) *group.Scalar {
	h := new(big.Int).SetBytes(c.Digest(secret))
	h.Mod(h, c.order)

	s, err := c.ScalarFromBig(h)
	if err != nil {
		// h is reduced, so this can only be a failure in the group backend.
		panic(fmt.Errorf("unexpected scalar decoding failure: %w", err))
	}

	return s
}

// RandomBytes returns random bytes of length len (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := rand.Read(r); err != nil {
		// We can as well not panic and try again in a loop
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}
