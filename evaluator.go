// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package anontoken

import (
	"context"
	"fmt"
)

// EvaluationRequest is what the client hands to the evaluator: the compressed blinded element and the access token
// proving the client is entitled to a token.
type EvaluationRequest struct {
	Blinded     []byte
	AccessToken string
}

// EvaluationResponse holds the evaluator's compressed evaluated element.
type EvaluationResponse struct {
	Evaluated []byte
}

// An Evaluator runs the server side of the exchange. Implementations should honour ctx cancellation, return a
// *RejectionError when the evaluator answers with a failure status, and any other error on transport failures.
type Evaluator interface {
	Evaluate(ctx context.Context, req *EvaluationRequest) (*EvaluationResponse, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, req *EvaluationRequest) (*EvaluationResponse, error)

// Evaluate calls f(ctx, req).
func (f EvaluatorFunc) Evaluate(ctx context.Context, req *EvaluationRequest) (*EvaluationResponse, error) {
	return f(ctx, req)
}

// RejectionError is returned by an Evaluator when the evaluator explicitly refuses the request, e.g. because the
// access token is invalid or expired.
type RejectionError struct {
	// Reason is the evaluator's error message.
	Reason string

	// Status is the evaluator's status code, e.g. the HTTP status.
	Status int
}

// Error implements the error interface.
func (r *RejectionError) Error() string {
	return fmt.Sprintf("evaluator rejected the request (status %d): %s", r.Status, r.Reason)
}
