// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package evaluator implements the evaluation round trip of github.com/bytemare/anontoken over JSON and HTTP: an
// Evaluator for clients, and a reference Handler and Verify function for evaluators holding the secret key.
package evaluator
