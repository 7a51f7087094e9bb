// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytemare/anontoken"
)

// maxResponseSize bounds the evaluator's response bodies.
const maxResponseSize = 1 << 16

var errEmptyURL = errors.New("empty evaluator URL")

// HTTPEvaluator reaches an evaluator with a JSON POST request. It implements anontoken.Evaluator.
type HTTPEvaluator struct {
	client *http.Client
	url    string
}

// NewHTTPEvaluator returns an evaluator posting to url. If client is nil, http.DefaultClient is used.
func NewHTTPEvaluator(url string, client *http.Client) (*HTTPEvaluator, error) {
	if url == "" {
		return nil, errEmptyURL
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPEvaluator{
		client: client,
		url:    url,
	}, nil
}

// Evaluate sends the blinded element and access token to the evaluator, and returns its evaluated element. Non-2xx
// answers are returned as *anontoken.RejectionError carrying the evaluator's error message, or the status text if the
// body has none.
func (h *HTTPEvaluator) Evaluate(
	ctx context.Context,
	req *anontoken.EvaluationRequest,
) (*anontoken.EvaluationResponse, error) {
	body, err := json.Marshal(newRequest(req))
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("posting to evaluator: %w", err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var r Response
	decodeErr := json.Unmarshal(raw, &r)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := strings.TrimSpace(r.Error)
		if decodeErr != nil || reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}

		return nil, &anontoken.RejectionError{
			Reason: reason,
			Status: resp.StatusCode,
		}
	}

	if decodeErr != nil {
		return nil, anontoken.ErrCodeInvalidPointEncoding.New("malformed evaluator response", decodeErr)
	}

	return r.decode()
}
