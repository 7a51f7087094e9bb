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
	"log/slog"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/anontoken/internal"
)

// Client issues anonymous tokens against an Evaluator. A Client only holds configuration: every call to Generate or
// NewSession uses fresh secrets and blinds, so it is safe for concurrent use.
type Client struct {
	evaluator Evaluator
	conf      Configuration
}

// NewClient returns a client using the evaluator and configuration. If conf is nil, DefaultConfiguration is used.
func NewClient(evaluator Evaluator, conf *Configuration) (*Client, error) {
	if evaluator == nil {
		return nil, ErrCodeInvalidInput.New("nil evaluator")
	}

	if conf == nil {
		conf = DefaultConfiguration()
	}

	if err := conf.verify(); err != nil {
		return nil, err
	}

	return &Client{
		evaluator: evaluator,
		conf:      *conf,
	}, nil
}

// Ciphersuite returns the client's ciphersuite.
func (c *Client) Ciphersuite() Ciphersuite {
	return c.conf.Ciphersuite
}

// NewSession returns a fresh single-use Session.
func (c *Client) NewSession(options ...*SessionOptions) (*Session, error) {
	s := &Session{
		client:    internal.NewClient(group.Group(c.conf.Ciphersuite)),
		evaluator: c.evaluator,
		logger:    c.conf.logger(),
		timeout:   c.conf.Timeout,
		slow:      c.conf.SlowThreshold,
		state:     StateInit,
	}

	if err := s.parseOptions(options); err != nil {
		return nil, err
	}

	return s, nil
}

// Result is the outcome of Generate.
type Result struct {
	// Token is the encoded token, empty on failure.
	Token string

	// FormURL is the form URL template with the token appended on success, and the unmodified template on failure.
	FormURL string

	// State is the terminal state of the run.
	State State

	// ManualEntry indicates that, although generation failed, the user may still proceed to the form and paste a
	// token manually.
	ManualEntry bool
}

// Generate runs one issuance with the access token, and appends the resulting token to the form URL template.
// The returned Result is never nil. On failure the error is an *Error, and Result.FormURL is formURLTemplate.
func (c *Client) Generate(ctx context.Context, accessToken, formURLTemplate string) (*Result, error) {
	result := &Result{
		FormURL: formURLTemplate,
		State:   StateInit,
	}

	if accessToken == "" || formURLTemplate == "" {
		result.State = StateFailed
		return result, ErrCodeInvalidInput.New("missing token or form parameter")
	}

	session, err := c.NewSession()
	if err != nil {
		result.State = StateFailed
		return result, err
	}

	token, err := session.Run(ctx, accessToken)
	result.State = session.State()

	if err != nil {
		result.ManualEntry = true
		return result, err
	}

	result.Token = token.String()
	result.FormURL = AppendToFormURL(formURLTemplate, result.Token)

	c.conf.logger().Info("anonymous token generated", slog.String("ciphersuite", c.conf.Ciphersuite.Name()))

	return result, nil
}
