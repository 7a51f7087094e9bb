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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytemare/anontoken/internal"
)

// State is the position of a Session in the issuance protocol.
type State byte

const (
	// StateInit is the state of a fresh session.
	StateInit State = iota

	// StateBlinded means the hash point of the secret has been blinded.
	StateBlinded

	// StateAwaitingEvaluation means the blinded element has been handed to the evaluator.
	StateAwaitingEvaluation

	// StateUnblinded is the terminal success state: a token has been produced.
	StateUnblinded

	// StateFailed is the terminal failure state.
	StateFailed
)

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateBlinded:
		return "blinded"
	case StateAwaitingEvaluation:
		return "awaiting_evaluation"
	case StateUnblinded:
		return "unblinded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal returns whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == StateUnblinded || s == StateFailed
}

// A Session runs the issuance protocol exactly once. It owns its secret, blind, and intermediate elements, which are
// discarded whatever the outcome. A Session must not be used concurrently.
type Session struct {
	client    *internal.Client
	evaluator Evaluator
	logger    *slog.Logger
	err       *Error
	timeout   time.Duration
	slow      time.Duration
	state     State
}

// State returns the current state of the session.
func (s *Session) State() State {
	return s.state
}

// Err returns the failure reason if the session is in the failed state, and nil otherwise.
func (s *Session) Err() error {
	if s.err == nil {
		return nil
	}

	return s.err
}

func (s *Session) transition(to State) {
	s.logger.Debug("token session transition", slog.String("from", s.state.String()), slog.String("to", to.String()))
	s.state = to
}

func (s *Session) fail(err *Error) *Error {
	s.err = err
	s.logger.Warn("token generation failed", slog.String("state", s.state.String()), slog.Any("error", err))
	s.state = StateFailed

	return err
}

// Run blinds a fresh secret, has the evaluator evaluate it given the access token, and unblinds the result into a
// Token. On failure, the session ends in StateFailed and the returned error is an *Error. No partial token is ever
// returned.
func (s *Session) Run(ctx context.Context, accessToken string) (token *Token, err error) {
	if s.state != StateInit {
		return nil, ErrCodeState.New(fmt.Sprintf("session already used, in state %s", s.state))
	}

	defer s.client.Clear()

	defer func() {
		if r := recover(); r != nil {
			token = nil
			err = s.fail(ErrCodeUnknown.New(fmt.Sprintf("internal error: %v", r)))
		}
	}()

	token, e := s.run(ctx, accessToken)
	if e != nil {
		return nil, s.fail(e)
	}

	s.transition(StateUnblinded)

	return token, nil
}

func (s *Session) run(ctx context.Context, accessToken string) (*Token, *Error) {
	// Init.
	hashPoint, err := s.client.HashPoint()
	if err != nil {
		return nil, ErrCodeInvalidInput.New("", err)
	}

	// Blinded.
	blinded := s.client.Blind(hashPoint)
	s.transition(StateBlinded)

	// AwaitingEvaluation.
	s.transition(StateAwaitingEvaluation)

	resp, e := s.evaluate(ctx, &EvaluationRequest{
		Blinded:     s.client.Compress(blinded),
		AccessToken: accessToken,
	})
	if e != nil {
		return nil, e
	}

	evaluated, err := s.client.Decompress(resp.Evaluated)
	if err != nil {
		return nil, ErrCodeInvalidPointEncoding.New("invalid evaluated element", err)
	}

	// Unblinded.
	final, err := s.client.Unblind(evaluated)
	if err != nil {
		return nil, ErrCodeNotInvertible.New("", err)
	}

	secret := make([]byte, internal.SecretLength)
	copy(secret, s.client.Secret())

	return &Token{
		Secret:  secret,
		Element: s.client.Compress(final),
	}, nil
}

type evaluation struct {
	resp *EvaluationResponse
	err  error
}

// evaluate is the single suspend point of the protocol. It returns as soon as the evaluator answers or ctx is done,
// whichever comes first.
func (s *Session) evaluate(ctx context.Context, req *EvaluationRequest) (*EvaluationResponse, *Error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)

		defer cancel()
	}

	if s.slow > 0 {
		timer := time.AfterFunc(s.slow, func() {
			s.logger.Warn("evaluator is taking too long to respond", slog.Duration("after", s.slow))
		})

		defer timer.Stop()
	}

	done := make(chan evaluation, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- evaluation{err: fmt.Errorf("evaluator panic: %v", r)}
			}
		}()

		resp, err := s.evaluator.Evaluate(ctx, req)
		done <- evaluation{resp: resp, err: err}
	}()

	var ev evaluation

	select {
	case ev = <-done:
	case <-ctx.Done():
		return nil, ErrCodeTransport.New("evaluation abandoned: "+ctx.Err().Error(), ctx.Err())
	}

	if ev.err != nil {
		return nil, classifyEvaluationError(ev.err)
	}

	if ev.resp == nil || len(ev.resp.Evaluated) == 0 {
		return nil, ErrCodeInvalidPointEncoding.New("missing evaluated element")
	}

	return ev.resp, nil
}

func classifyEvaluationError(err error) *Error {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return ErrCodeEvaluatorRejected.New(rejection.Reason, err)
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return ErrCodeTransport.New("could not reach the evaluator: "+err.Error(), err)
}
