// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package evaluator

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/anontoken"
	"github.com/bytemare/anontoken/internal"
)

var (
	errInvalidPrivateKey = errors.New("private key is nil or zero")
	errInvalidSuite      = errors.New("unsupported ciphersuite")
	errTokenMismatch     = errors.New("token element does not match the secret")
	errMethodNotAllowed  = errors.New("method not allowed")
	errMalformedRequest  = errors.New("malformed request")
)

// Authorizer decides whether an access token entitles its holder to an evaluation. A non-nil error rejects the
// request, and its message is returned to the client.
type Authorizer func(ctx context.Context, accessToken string) error

// Local evaluates blinded elements in-process with a secret key. It implements anontoken.Evaluator.
type Local struct {
	authorize Authorizer
	key       *group.Scalar
	suite     anontoken.Ciphersuite
}

// NewLocal returns an in-process evaluator. If authorize is nil, all access tokens are accepted.
func NewLocal(suite anontoken.Ciphersuite, key *group.Scalar, authorize Authorizer) (*Local, error) {
	if !suite.Available() {
		return nil, errInvalidSuite
	}

	if key == nil || key.IsZero() {
		return nil, errInvalidPrivateKey
	}

	return &Local{
		authorize: authorize,
		key:       suite.Group().NewScalar().Set(key),
		suite:     suite,
	}, nil
}

// Evaluate checks the access token and returns the blinded element multiplied by the secret key. A refused access
// token yields an *anontoken.RejectionError with status 403.
func (l *Local) Evaluate(ctx context.Context, req *anontoken.EvaluationRequest) (*anontoken.EvaluationResponse, error) {
	if l.authorize != nil {
		if err := l.authorize(ctx, req.AccessToken); err != nil {
			return nil, &anontoken.RejectionError{
				Reason: err.Error(),
				Status: http.StatusForbidden,
			}
		}
	}

	blinded, err := l.suite.DecodeElement(req.Blinded)
	if err != nil {
		return nil, err
	}

	return &anontoken.EvaluationResponse{
		Evaluated: anontoken.Evaluate(l.key, blinded).Encode(),
	}, nil
}

// Verify checks that the token's element is the evaluation of its secret under the key.
func (l *Local) Verify(token *anontoken.Token) error {
	return Verify(l.suite, l.key, token)
}

// Verify checks that token.Element == k * G * (H(token.Secret) mod n), in constant time.
func Verify(suite anontoken.Ciphersuite, key *group.Scalar, token *anontoken.Token) error {
	if key == nil || key.IsZero() {
		return errInvalidPrivateKey
	}

	hashPoint, err := suite.HashPoint(token.Secret)
	if err != nil {
		return err
	}

	expected := anontoken.Evaluate(key, hashPoint).Encode()
	if !internal.CTEqual(expected, token.Element) {
		return errTokenMismatch
	}

	return nil
}

// Handler serves evaluation requests over HTTP with a Local evaluator.
type Handler struct {
	local  *Local
	logger *slog.Logger
}

// NewHandler returns an http.Handler evaluating requests with the given key. If logger is nil, nothing is logged.
func NewHandler(local *Local, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Handler{
		local:  local,
		logger: logger,
	}
}

func (h *Handler) reply(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("writing evaluation response", slog.Any("error", err))
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.reply(w, http.StatusMethodNotAllowed, &Response{Error: errMethodNotAllowed.Error()})
		return
	}

	var body Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxResponseSize)).Decode(&body); err != nil {
		h.reply(w, http.StatusBadRequest, &Response{Error: errMalformedRequest.Error()})
		return
	}

	req, err := body.decode()
	if err != nil {
		h.reply(w, http.StatusBadRequest, &Response{Error: err.Error()})
		return
	}

	resp, err := h.local.Evaluate(r.Context(), req)
	if err != nil {
		var rejection *anontoken.RejectionError
		if errors.As(err, &rejection) {
			h.logger.Info("evaluation rejected", slog.String("reason", rejection.Reason))
			h.reply(w, rejection.Status, &Response{Error: rejection.Reason})

			return
		}

		h.reply(w, http.StatusBadRequest, &Response{Error: err.Error()})

		return
	}

	h.reply(w, http.StatusOK, &Response{Evaluated: hex.EncodeToString(resp.Evaluated)})
}
