// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package anontoken issues single-use, unlinkable anonymous tokens with an Elliptic Curve Oblivious Pseudorandom
// Function (EC-OPRF) exchange.
//
// A client draws a random secret x, maps it to the element H = G * (SHA-256(x) mod n), blinds it with a random scalar
// r, and sends r * H along with an access token to an evaluator holding a secret key k. The evaluator returns
// k * r * H, which the client unblinds to k * H. The token is x || compress(k * H), encoded in unpadded base64url.
// The evaluator can later verify a token with k, but can't link it to the request that produced it.
//
// The default ciphersuite uses secp256k1 and SHA-256.
package anontoken
