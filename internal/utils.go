// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto/subtle"
)

// CTEqual returns whether a and b are equal, in constant time with regard to their content.
func CTEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Concatenate returns a new buffer holding the input slices one after the other.
func Concatenate(input ...[]byte) []byte {
	length := 0
	for _, in := range input {
		length += len(in)
	}

	buf := make([]byte, 0, length)

	for _, in := range input {
		buf = append(buf, in...)
	}

	return buf
}

// ClearBytes overwrites b with zeros.
func ClearBytes(b []byte) {
	clear(b)
}
