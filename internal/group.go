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
	"fmt"
	"math/big"

	group "github.com/bytemare/crypto"
)

var (
	// ErrInvalidPointEncoding indicates the input is not the compressed encoding of a non-identity group element.
	ErrInvalidPointEncoding = errors.New("invalid point encoding")

	// ErrIdentityElement indicates the decoded element is the identity element.
	ErrIdentityElement = errors.New("element is the identity")

	// ErrScalarRange indicates an integer outside of [0, n).
	ErrScalarRange = errors.New("integer is not in the scalar range")
)

// ScalarMultiply returns a new element set to scalar * point. The inputs are left untouched.
func (c *Core) ScalarMultiply(point *group.Element, scalar *group.Scalar) *group.Element {
	return point.Copy().Multiply(scalar)
}

// BasePointMultiply returns a new element set to scalar * G.
func (c *Core) BasePointMultiply(scalar *group.Scalar) *group.Element {
	return c.Group.Base().Multiply(scalar)
}

// Compress returns the fixed size compressed encoding of the point, prefixed with its parity byte.
func (c *Core) Compress(point *group.Element) []byte {
	return point.Encode()
}

// Decompress decodes a compressed point and rejects malformed, off-curve, and identity encodings.
func (c *Core) Decompress(encoded []byte) (*group.Element, error) {
	if len(encoded) != c.ElementLength() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPointEncoding, c.ElementLength(), len(encoded))
	}

	if encoded[0] != 0x02 && encoded[0] != 0x03 {
		return nil, fmt.Errorf("%w: invalid prefix 0x%02x", ErrInvalidPointEncoding, encoded[0])
	}

	e := c.Group.NewElement()
	if err := e.Decode(encoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPointEncoding, err)
	}

	if e.IsIdentity() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPointEncoding, ErrIdentityElement)
	}

	return e, nil
}

// RandomScalar returns a new uniformly random scalar in [1, n-1].
func (c *Core) RandomScalar() *group.Scalar {
	return c.Group.NewScalar().Random()
}

// ScalarFromBig returns the scalar representation of i, which must be in [0, n).
func (c *Core) ScalarFromBig(i *big.Int) (*group.Scalar, error) {
	if i.Sign() < 0 || i.Cmp(c.order) >= 0 {
		return nil, ErrScalarRange
	}

	s := c.Group.NewScalar()
	if i.Sign() == 0 {
		return s, nil
	}

	if err := s.Decode(i.FillBytes(make([]byte, c.ScalarLength()))); err != nil {
		return nil, fmt.Errorf("scalar decoding: %w", err)
	}

	return s, nil
}

// ScalarToBig returns the big-endian integer value of the scalar.
func (c *Core) ScalarToBig(s *group.Scalar) *big.Int {
	return new(big.Int).SetBytes(s.Encode())
}
