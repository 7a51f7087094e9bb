// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken

import (
	group "github.com/bytemare/crypto"
)

// SessionOptions override the internally generated values of a session.
// Only use this if you know what you're doing. Reusing a secret or a blind across sessions makes tokens linkable,
// and breaks the unlinkability of the protocol.
type SessionOptions struct {
	// Blind is the blinding scalar r. It must not be zero.
	Blind *group.Scalar

	// Secret is the token secret x. It must be 32 bytes long.
	Secret []byte
}

func (s *Session) parseOptions(options []*SessionOptions) error {
	if len(options) == 0 || options[0] == nil {
		return nil
	}

	if options[0].Secret != nil {
		if err := s.client.SetSecret(options[0].Secret); err != nil {
			return ErrCodeInvalidInput.New("invalid secret option", err)
		}
	}

	if options[0].Blind != nil {
		if err := s.client.SetBlind(options[0].Blind); err != nil {
			return ErrCodeInvalidInput.New("invalid blind option", err)
		}
	}

	return nil
}
