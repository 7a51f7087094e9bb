// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrInvalidInput indicates that the caller provided unusable input.
	ErrInvalidInput = ErrCodeInvalidInput.New("")

	// ErrInvalidPointEncoding indicates a malformed, off-curve, or identity element encoding.
	ErrInvalidPointEncoding = ErrCodeInvalidPointEncoding.New("")

	// ErrNotInvertible indicates a degenerate blinding scalar.
	ErrNotInvertible = ErrCodeNotInvertible.New("")

	// ErrEvaluatorRejected indicates that the evaluator refused to evaluate, e.g. for an expired access token.
	ErrEvaluatorRejected = ErrCodeEvaluatorRejected.New("")

	// ErrTransport indicates that the evaluator could not be reached or did not answer in time.
	ErrTransport = ErrCodeTransport.New("")

	// ErrState indicates a session that is used more than once.
	ErrState = ErrCodeState.New("")

	// ErrToken indicates an invalid token encoding.
	ErrToken = ErrCodeToken.New("")
)

// ErrorCode represents the category of a token issuance failure.
type ErrorCode byte //nolint:errname // This is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unknown error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeInvalidInput represents missing or unusable caller input.
	ErrCodeInvalidInput

	// ErrCodeInvalidPointEncoding represents an element that does not decode to a valid non-identity point.
	ErrCodeInvalidPointEncoding

	// ErrCodeNotInvertible represents a blinding scalar without inverse modulo the group order.
	ErrCodeNotInvertible

	// ErrCodeEvaluatorRejected represents a non-success answer from the evaluator.
	ErrCodeEvaluatorRejected

	// ErrCodeTransport represents a network, timeout, or cancellation failure when reaching the evaluator.
	ErrCodeTransport

	// ErrCodeState represents an invalid session state transition.
	ErrCodeState

	// ErrCodeToken represents a token that can't be decoded.
	ErrCodeToken
)

// New creates a new Error with the given message and errors.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = strings.ReplaceAll(c.String(), "_", " ")
	}

	return &Error{
		Code:    c,
		Message: message,
		Err:     errors.Join(errs...),
	}
}

// String returns the string representation of the ErrorCode. If the code is not recognized, it returns "unknown_error".
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidInput:
		return "invalid_input"
	case ErrCodeInvalidPointEncoding:
		return "invalid_point_encoding"
	case ErrCodeNotInvertible:
		return "not_invertible"
	case ErrCodeEvaluatorRejected:
		return "evaluator_rejected"
	case ErrCodeTransport:
		return "transport_failure"
	case ErrCodeState:
		return "invalid_state"
	case ErrCodeToken:
		return "invalid_token"
	case ErrCodeUnknown:
		fallthrough
	default:
		return "unknown_error"
	}
}

// Error implements the error interface for the ErrorCode type. It returns a string representation of the error code.
func (c ErrorCode) Error() string {
	return c.String()
}

// Is implements the errors.Is method for the ErrorCode type.
// It allows checking if the error is of a specific ErrorCode.
func (c ErrorCode) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return byte(c) == byte(errCode)
	}

	return false
}

// Error represents a token issuance failure. Its Message is the human-readable reason.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements the error interface for the Error type. By convention, we return only the concise form of the
// current error, without the cause. The cause can be retrieved with the Unwrap() method.
func (e *Error) Error() string { return e.Message }

// Unwrap implements the errors.Unwrap method for the Error type. It allows retrieving the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Join wraps the provided error to the current error.
func (e *Error) Join(errs ...error) error {
	return errors.Join(e, errors.Join(errs...))
}

// Is implements the errors.Is method for the Error type. An Error matches any ErrorCode or Error of the same code, so
// that errors.Is(err, ErrTransport) holds whatever the message.
func (e *Error) Is(target error) bool {
	switch t := target.(type) { //nolint:errorlint // direct targets only, the chain is walked by errors.Is
	case ErrorCode:
		return e.Code == t
	case *Error:
		return t != nil && e.Code == t.Code
	default:
		return false
	}
}

// As implements the errors.As method for the Error type. It allows type assertion to specific error types.
func (e *Error) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = e.Code
		return true
	case **Error:
		*t = e
		return true
	default:
		return false
	}
}

// LogValue implements the slog.LogValuer interface for the Error type.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// Format implements the fmt.Formatter interface for the Error type. It allows formatting the error in different ways.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			e.formatV(f)
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.Error())
	}
}

func printV(f fmt.State, err error, depth int) {
	if err == nil {
		return
	}

	prefix := strings.Repeat("  ", depth)
	_, _ = fmt.Fprintf(f, "\n%s↳ %v", prefix, err)

	if multi, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // walking the tree by hand
		for _, child := range multi.Unwrap() {
			printV(f, child, depth+1)
		}

		return
	}

	if single, ok := err.(interface{ Unwrap() error }); ok { //nolint:errorlint // walking the tree by hand
		printV(f, single.Unwrap(), depth+1)
	}
}

func (e *Error) formatV(f fmt.State) {
	_, _ = fmt.Fprintf(f, "code=%d(%s)", e.Code, e.Code.String())
	if e.Message != "" {
		_, _ = fmt.Fprintf(f, " message=%q", e.Message)
	}

	if e.Err != nil {
		printV(f, e.Err, 0)
	}
}
