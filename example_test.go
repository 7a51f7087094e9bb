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
	"errors"
	"fmt"

	"github.com/bytemare/anontoken"
	"github.com/bytemare/anontoken/evaluator"
)

// Example_generate shows how a client obtains an anonymous token and the pre-filled form URL. The evaluator here runs
// in-process: use evaluator.NewHTTPEvaluator to reach a remote one.
func Example_generate() {
	suite := anontoken.Secp256k1Sha256

	// The evaluator's secret key, which it keeps for itself.
	key := suite.Group().NewScalar().Random()

	// Only accept this one access token.
	authorize := func(_ context.Context, accessToken string) error {
		if accessToken != "one-time-access-code" {
			return errors.New("invalid token")
		}

		return nil
	}

	local, err := evaluator.NewLocal(suite, key, authorize)
	if err != nil {
		panic(err)
	}

	client, err := anontoken.NewClient(local, anontoken.DefaultConfiguration())
	if err != nil {
		panic(err)
	}

	result, err := client.Generate(context.Background(), "one-time-access-code", "https://forms.example.com/f?entry.1")
	if err != nil {
		panic(err)
	}

	// The evaluator can later check tokens it is presented with, without being able to link them to a request.
	token, err := suite.ParseToken(result.Token)
	if err != nil {
		panic(err)
	}

	if err = local.Verify(token); err != nil {
		panic(err)
	}

	fmt.Println(result.State)
	// Output: unblinded
}

// Example_rejected shows that a refused access token still lets the user reach the form to paste a token manually.
func Example_rejected() {
	suite := anontoken.Secp256k1Sha256

	local, err := evaluator.NewLocal(suite, suite.Group().NewScalar().Random(), func(context.Context, string) error {
		return errors.New("expired token")
	})
	if err != nil {
		panic(err)
	}

	client, err := anontoken.NewClient(local, nil)
	if err != nil {
		panic(err)
	}

	result, err := client.Generate(context.Background(), "old-access-code", "https://forms.example.com/f?entry.1")
	fmt.Println(err, errors.Is(err, anontoken.ErrEvaluatorRejected))
	fmt.Println(result.ManualEntry, result.FormURL)
	// Output:
	// expired token true
	// true https://forms.example.com/f?entry.1
}
