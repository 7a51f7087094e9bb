// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken_test

import (
	"context"
	"crypto/sha256"
	"math/big"
	"sync"
	"testing"

	group "github.com/bytemare/crypto"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/anontoken"
	"github.com/bytemare/anontoken/internal"
)

type configuration struct {
	name        string
	ciphersuite anontoken.Ciphersuite
	group       group.Group
}

var configurationTable = []configuration{
	{
		name:        "Secp256k1Sha256",
		ciphersuite: anontoken.Secp256k1Sha256,
		group:       group.Secp256k1,
	},
	{
		name:        "P256Sha256",
		ciphersuite: anontoken.P256Sha256,
		group:       group.P256Sha256,
	},
}

func testAll(t *testing.T, f func(t *testing.T, c *configuration)) {
	for _, test := range configurationTable {
		t.Run(test.name, func(t *testing.T) {
			f(t, &test)
		})
	}
}

func (c *configuration) order() *big.Int {
	return internal.LoadConfiguration(c.group).Order()
}

// scalar returns the scalar of value i mod n.
func (c *configuration) scalar(t *testing.T, i *big.Int) *group.Scalar {
	t.Helper()

	i = new(big.Int).Mod(i, c.order())
	s := c.group.NewScalar()

	if i.Sign() == 0 {
		return s
	}

	require.NoError(t, s.Decode(i.FillBytes(make([]byte, c.group.ScalarLength()))))

	return s
}

// hashToScalar is an independent computation of SHA-256(secret) mod n.
func (c *configuration) hashToScalar(secret []byte) *big.Int {
	digest := sha256.Sum256(secret)
	h := new(big.Int).SetBytes(digest[:])

	return h.Mod(h, c.order())
}

// expectedElement returns the compressed encoding of G * (H(secret) * k).
func (c *configuration) expectedElement(t *testing.T, secret []byte, k *big.Int) []byte {
	t.Helper()

	m := new(big.Int).Mul(c.hashToScalar(secret), k)

	return c.group.Base().Multiply(c.scalar(t, m)).Encode()
}

func (c *configuration) client(t *testing.T, ev anontoken.Evaluator) *anontoken.Client {
	t.Helper()

	conf := anontoken.DefaultConfiguration()
	conf.Ciphersuite = c.ciphersuite

	client, err := anontoken.NewClient(ev, conf)
	require.NoError(t, err)

	return client
}

// recorder is a deterministic evaluator multiplying blinded elements by k, recording what it receives.
type recorder struct {
	key      *group.Scalar
	suite    anontoken.Ciphersuite
	blinded  [][]byte
	tokens   []string
	mu       sync.Mutex
	hitCount int
}

func newRecorder(t *testing.T, c *configuration, k int64) *recorder {
	return &recorder{
		key:   c.scalar(t, big.NewInt(k)),
		suite: c.ciphersuite,
	}
}

func (r *recorder) Evaluate(_ context.Context, req *anontoken.EvaluationRequest) (*anontoken.EvaluationResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hitCount++
	r.blinded = append(r.blinded, req.Blinded)
	r.tokens = append(r.tokens, req.AccessToken)

	blinded, err := r.suite.DecodeElement(req.Blinded)
	if err != nil {
		return nil, err
	}

	return &anontoken.EvaluationResponse{Evaluated: anontoken.Evaluate(r.key, blinded).Encode()}, nil
}

func secretOne() []byte {
	x := make([]byte, internal.SecretLength)
	x[internal.SecretLength-1] = 0x01

	return x
}
