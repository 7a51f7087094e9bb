// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package evaluator

import (
	"encoding/hex"
	"errors"

	"github.com/bytemare/anontoken"
)

var (
	errMissingBlinded   = errors.New("missing blinded element")
	errMissingToken     = errors.New("missing access token")
	errMissingEvaluated = errors.New("missing evaluated element")
)

// Request is the JSON body sent to the evaluator.
type Request struct {
	// Blinded is the hex encoded compressed blinded element.
	Blinded string `json:"blinded"`

	// Token is the access token, passed verbatim.
	Token string `json:"token"`
}

// Response is the JSON body returned by the evaluator. Evaluated is set on success, and Error on failure.
type Response struct {
	// Evaluated is the hex encoded compressed evaluated element.
	Evaluated string `json:"evaluated,omitempty"`

	// Error is the evaluator's failure reason.
	Error string `json:"error,omitempty"`
}

func newRequest(req *anontoken.EvaluationRequest) *Request {
	return &Request{
		Blinded: hex.EncodeToString(req.Blinded),
		Token:   req.AccessToken,
	}
}

func (r *Request) decode() (*anontoken.EvaluationRequest, error) {
	if r.Blinded == "" {
		return nil, errMissingBlinded
	}

	if r.Token == "" {
		return nil, errMissingToken
	}

	blinded, err := hex.DecodeString(r.Blinded)
	if err != nil {
		return nil, anontoken.ErrCodeInvalidPointEncoding.New("blinded element is not hex encoded", err)
	}

	return &anontoken.EvaluationRequest{
		Blinded:     blinded,
		AccessToken: r.Token,
	}, nil
}

func (r *Response) decode() (*anontoken.EvaluationResponse, error) {
	if r.Evaluated == "" {
		return nil, anontoken.ErrCodeInvalidPointEncoding.New("", errMissingEvaluated)
	}

	evaluated, err := hex.DecodeString(r.Evaluated)
	if err != nil {
		return nil, anontoken.ErrCodeInvalidPointEncoding.New("evaluated element is not hex encoded", err)
	}

	return &anontoken.EvaluationResponse{Evaluated: evaluated}, nil
}
