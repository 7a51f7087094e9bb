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

	group "github.com/bytemare/crypto"
)

var (
	// ErrInvalidSecret indicates that the secret does not have the expected length.
	ErrInvalidSecret = errors.New("invalid secret length")

	// ErrZeroBlind indicates that the provided blind is the zero scalar.
	ErrZeroBlind = errors.New("blinding scalar is zero")

	// ErrIdentityHashPoint indicates that the secret maps to the identity element.
	ErrIdentityHashPoint = errors.New("secret deterministically maps to the identity element")
)

// A Client holds the values of a single blinding and unblinding run. It must not be reused across runs.
type Client struct {
	// Core abstracts configuration dependent operations.
	*Core

	// secret is the token secret x.
	secret []byte

	// blind is the blinding scalar r.
	blind *group.Scalar
}

// NewClient loads the configuration for a new run.
func NewClient(g group.Group) *Client {
	return &Client{
		Core: LoadConfiguration(g),
	}
}

// SetSecret sets the token secret to a copy of secret. If no secret is set, a random one is used.
func (c *Client) SetSecret(secret []byte) error {
	if len(secret) != SecretLength {
		return ErrInvalidSecret
	}

	c.secret = make([]byte, SecretLength)
	copy(c.secret, secret)

	return nil
}

// SetBlind sets the blinding scalar to a copy of blind. If no blind is set, a random one is used.
func (c *Client) SetBlind(blind *group.Scalar) error {
	if blind == nil || blind.IsZero() {
		return ErrZeroBlind
	}

	c.blind = c.Group.NewScalar().Set(blind)

	return nil
}

// Secret returns the token secret.
func (c *Client) Secret() []byte {
	return c.secret
}

// HashPoint returns G * HashToScalar(secret), generating the secret if none was set.
func (c *Client) HashPoint() (*group.Element, error) {
	if c.secret == nil {
		c.secret = RandomBytes(SecretLength)
	}

	h := c.HashToScalar(c.secret)
	if h.IsZero() {
		return nil, ErrIdentityHashPoint
	}

	return c.BasePointMultiply(h), nil
}

// Blind multiplies the hash point with the blinding scalar, generating the blind if none was set, and returns the
// blinded element.
func (c *Client) Blind(hashPoint *group.Element) *group.Element {
	if c.blind == nil {
		c.blind = c.RandomScalar()
	}

	return c.ScalarMultiply(hashPoint, c.blind)
}

// Unblind removes the blind from the evaluated element by multiplying it with the inverse of the blinding scalar.
func (c *Client) Unblind(evaluated *group.Element) (*group.Element, error) {
	inv, err := c.InvertScalar(c.blind)
	if err != nil {
		return nil, err
	}

	return c.ScalarMultiply(evaluated, inv), nil
}

// Clear drops the references to the secret and the blind. Scalars are zeroed in place.
func (c *Client) Clear() {
	if c.secret != nil {
		ClearBytes(c.secret)
		c.secret = nil
	}

	if c.blind != nil {
		c.blind.Zero()
		c.blind = nil
	}
}
