// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken

import (
	"strings"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/anontoken/internal"
)

// Ciphersuite identifies the prime-order group and hash function used for token issuance.
type Ciphersuite byte

const (
	// Secp256k1Sha256 identifies the SECp256k1 group and SHA-256. This is the default.
	Secp256k1Sha256 = Ciphersuite(group.Secp256k1)

	// P256Sha256 identifies the NIST P-256 group and SHA-256.
	P256Sha256 = Ciphersuite(group.P256Sha256)
)

// FromName returns the Ciphersuite identified by name, e.g. "secp256k1-SHA256".
func FromName(name string) (Ciphersuite, error) {
	for g, n := range internal.CiphersuiteIdentifier {
		if strings.EqualFold(n, name) {
			return Ciphersuite(g), nil
		}
	}

	return 0, ErrCodeInvalidInput.New("unknown ciphersuite " + name)
}

// Available returns whether the Ciphersuite is supported.
func (c Ciphersuite) Available() bool {
	return internal.IsSupported(group.Group(c))
}

// Group returns the elliptic curve prime-order group of the ciphersuite.
func (c Ciphersuite) Group() group.Group {
	return group.Group(c)
}

// Name returns the identifier of the ciphersuite.
func (c Ciphersuite) Name() string {
	return internal.CiphersuiteIdentifier[group.Group(c)]
}

// String implements the fmt.Stringer interface.
func (c Ciphersuite) String() string {
	return c.Name()
}

// ElementLength returns the length of a compressed element.
func (c Ciphersuite) ElementLength() int {
	return group.Group(c).ElementLength()
}

// TokenLength returns the length of a decoded token, i.e. the secret and a compressed element.
func (c Ciphersuite) TokenLength() int {
	return internal.SecretLength + c.ElementLength()
}

func (c Ciphersuite) core() *internal.Core {
	return internal.LoadConfiguration(group.Group(c))
}

// DecodeElement decodes a compressed element, and rejects the identity element.
func (c Ciphersuite) DecodeElement(e []byte) (*group.Element, error) {
	element, err := c.core().Decompress(e)
	if err != nil {
		return nil, ErrCodeInvalidPointEncoding.New("", err)
	}

	return element, nil
}

// HashPoint returns the element a token secret maps to, i.e. G * (H(secret) mod n).
func (c Ciphersuite) HashPoint(secret []byte) (*group.Element, error) {
	client := internal.NewClient(group.Group(c))
	if err := client.SetSecret(secret); err != nil {
		return nil, ErrCodeInvalidInput.New("", err)
	}

	defer client.Clear()

	p, err := client.HashPoint()
	if err != nil {
		return nil, ErrCodeInvalidInput.New("", err)
	}

	return p, nil
}

// Evaluate is the evaluator's function to evaluate a blinded element with its secret key.
func Evaluate(key *group.Scalar, blinded *group.Element) *group.Element {
	return blinded.Copy().Multiply(key)
}
