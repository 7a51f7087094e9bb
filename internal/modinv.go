// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"errors"
	"math/big"

	group "github.com/bytemare/crypto"
)

var (
	// ErrNotInvertible indicates that gcd(a, n) != 1.
	ErrNotInvertible = errors.New("not invertible")

	errInvalidModulus = errors.New("modulus must be greater than 1")
)

// ModInverse returns the inverse of a modulo n using the extended Euclidean algorithm. The result is in [0, n).
// Neither a nor n are modified.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil, errInvalidModulus
	}

	t, newT := new(big.Int), big.NewInt(1)
	r, newR := new(big.Int).Set(n), new(big.Int).Mod(a, n)
	q, tmp := new(big.Int), new(big.Int)

	for newR.Sign() != 0 {
		q.Quo(r, newR)

		// (t, newT) = (newT, t - q*newT)
		tmp.Mul(q, newT)
		t.Sub(t, tmp)
		t, newT = newT, t

		// (r, newR) = (newR, r - q*newR)
		tmp.Mul(q, newR)
		r.Sub(r, tmp)
		r, newR = newR, r
	}

	if r.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotInvertible
	}

	if t.Sign() < 0 {
		t.Add(t, n)
	}

	return t, nil
}

// InvertScalar returns a new scalar set to the inverse of s modulo the group order.
func (c *Core) InvertScalar(s *group.Scalar) (*group.Scalar, error) {
	inv, err := ModInverse(c.ScalarToBig(s), c.order)
	if err != nil {
		return nil, err
	}

	return c.ScalarFromBig(inv)
}
