// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/bytemare/anontoken/internal"
)

// Token is an anonymous token: the secret x and the compressed unblinded element G * (H(x) * k).
type Token struct {
	Secret  []byte
	Element []byte
}

// Bytes returns the concatenation of the secret and the element.
func (t *Token) Bytes() []byte {
	return internal.Concatenate(t.Secret, t.Element)
}

// String returns the URL-safe encoding of the token.
func (t *Token) String() string {
	return EncodeToken(t.Bytes())
}

// EncodeToken returns the unpadded base64url encoding of b, i.e. standard base64 with '+' and '/' replaced by '-' and
// '_', and the trailing padding removed.
func EncodeToken(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeToken reverses EncodeToken. Padded input is accepted.
func DecodeToken(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, ErrCodeToken.New("", err)
	}

	return b, nil
}

// DeserializeToken splits a decoded token into its secret and element, and validates the element.
func (c Ciphersuite) DeserializeToken(b []byte) (*Token, error) {
	if len(b) != c.TokenLength() {
		return nil, ErrCodeToken.New(fmt.Sprintf("invalid token length %d, expected %d", len(b), c.TokenLength()))
	}

	if _, err := c.DecodeElement(b[internal.SecretLength:]); err != nil {
		return nil, ErrCodeToken.New("invalid token element", err)
	}

	t := &Token{
		Secret:  make([]byte, internal.SecretLength),
		Element: make([]byte, c.ElementLength()),
	}

	copy(t.Secret, b[:internal.SecretLength])
	copy(t.Element, b[internal.SecretLength:])

	return t, nil
}

// ParseToken decodes and deserializes an encoded token.
func (c Ciphersuite) ParseToken(s string) (*Token, error) {
	b, err := DecodeToken(s)
	if err != nil {
		return nil, err
	}

	return c.DeserializeToken(b)
}

// AppendToFormURL appends the encoded token as the trailing query value of the form URL template, which is expected
// to end with the query key, e.g. "https://example.com/form?entry.1234".
func AppendToFormURL(formURLTemplate, token string) string {
	if strings.HasSuffix(formURLTemplate, "=") {
		return formURLTemplate + url.QueryEscape(token)
	}

	return formURLTemplate + "=" + url.QueryEscape(token)
}
