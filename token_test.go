// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/anontoken"
	"github.com/bytemare/anontoken/internal"
)

func bigInt(i int64) *big.Int {
	return big.NewInt(i)
}

func TestEncodeToken(t *testing.T) {
	// Every length modulo 3 and bytes that map to '+' and '/' in standard base64.
	for _, b := range [][]byte{
		{},
		{0xfb},
		{0xfb, 0xff},
		{0xfb, 0xff, 0xbf},
		bytes.Repeat([]byte{0xff, 0xfe}, 33),
	} {
		s := anontoken.EncodeToken(b)
		assert.False(t, strings.ContainsAny(s, "+/="), s)

		padded := s + strings.Repeat("=", (4-len(s)%4)%4)
		decoded, err := base64.URLEncoding.DecodeString(padded)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(b, decoded))

		back, err := anontoken.DecodeToken(s)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(b, back))

		back, err = anontoken.DecodeToken(padded)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(b, back))
	}

	_, err := anontoken.DecodeToken("not base64!")
	require.ErrorIs(t, err, anontoken.ErrToken)
}

func TestToken_String(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		session, err := c.client(t, newRecorder(t, c, 3)).NewSession()
		require.NoError(t, err)

		token, err := session.Run(context.Background(), "access-code")
		require.NoError(t, err)

		// 65 bytes encode to 87 unpadded characters.
		s := token.String()
		assert.Len(t, s, 87)

		padded := s + strings.Repeat("=", (4-len(s)%4)%4)
		decoded, err := base64.URLEncoding.DecodeString(padded)
		require.NoError(t, err)
		assert.Equal(t, token.Bytes(), decoded)
		assert.Equal(t, token.Secret, decoded[:internal.SecretLength])
		assert.Equal(t, token.Element, decoded[internal.SecretLength:])
	})
}

func TestDeserializeToken(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		secret := secretOne()
		element := c.expectedElement(t, secret, bigInt(9))
		encoded := anontoken.EncodeToken(append(bytes.Clone(secret), element...))

		token, err := c.ciphersuite.ParseToken(encoded)
		require.NoError(t, err)
		assert.Equal(t, secret, token.Secret)
		assert.Equal(t, element, token.Element)

		_, err = c.ciphersuite.DeserializeToken(secret)
		require.ErrorIs(t, err, anontoken.ErrToken)

		invalid := append(bytes.Clone(secret), make([]byte, c.ciphersuite.ElementLength())...)
		_, err = c.ciphersuite.DeserializeToken(invalid)
		require.ErrorIs(t, err, anontoken.ErrToken)
		require.ErrorIs(t, err, internal.ErrInvalidPointEncoding)

		_, err = c.ciphersuite.ParseToken("%%%")
		require.ErrorIs(t, err, anontoken.ErrToken)
	})
}

func TestCiphersuite(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		assert.True(t, c.ciphersuite.Available())
		assert.Equal(t, c.group, c.ciphersuite.Group())
		assert.Equal(t, 33, c.ciphersuite.ElementLength())
		assert.Equal(t, 65, c.ciphersuite.TokenLength())

		cs, err := anontoken.FromName(strings.ToUpper(c.ciphersuite.String()))
		require.NoError(t, err)
		assert.Equal(t, c.ciphersuite, cs)

		p, err := c.ciphersuite.HashPoint(secretOne())
		require.NoError(t, err)
		assert.Equal(t, c.expectedElement(t, secretOne(), bigInt(1)), p.Encode())

		_, err = c.ciphersuite.HashPoint([]byte("short"))
		require.ErrorIs(t, err, anontoken.ErrInvalidInput)
	})

	_, err := anontoken.FromName("ristretto255-SHA512")
	require.ErrorIs(t, err, anontoken.ErrInvalidInput)
	assert.False(t, anontoken.Ciphersuite(0).Available())
}
