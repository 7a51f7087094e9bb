// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken

import (
	"log/slog"
	"time"
)

// DefaultSlowThreshold is the time after which a pending evaluation is reported as slow.
const DefaultSlowThreshold = 60 * time.Second

// Configuration represents the client's setup. The Ciphersuite must match the evaluator's.
type Configuration struct {
	// Logger receives state transitions at debug level, and failures at warning level. Secrets, blinds, and tokens
	// are never logged. If nil, nothing is logged.
	Logger *slog.Logger

	// Ciphersuite identifies the group and hash function.
	Ciphersuite Ciphersuite

	// Timeout bounds the evaluation round trip. Zero means no timeout other than the caller's context.
	Timeout time.Duration

	// SlowThreshold is the delay after which a still pending evaluation is logged as slow. It does not abort the
	// run. Zero disables the notice.
	SlowThreshold time.Duration
}

// DefaultConfiguration returns a default configuration with strong parameters.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Ciphersuite:   Secp256k1Sha256,
		Timeout:       0,
		SlowThreshold: DefaultSlowThreshold,
		Logger:        nil,
	}
}

func (c *Configuration) verify() error {
	if !c.Ciphersuite.Available() {
		return ErrCodeInvalidInput.New("unsupported ciphersuite")
	}

	if c.Timeout < 0 || c.SlowThreshold < 0 {
		return ErrCodeInvalidInput.New("negative duration in configuration")
	}

	return nil
}

func (c *Configuration) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return c.Logger
}
