// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Command anontoken requests an anonymous token from an evaluator and prints it along with the form URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/bytemare/anontoken"
	"github.com/bytemare/anontoken/evaluator"
)

func main() {
	evaluatorURL := flag.String("evaluator", "", "evaluator URL")
	accessToken := flag.String("token", "", "one-time access token")
	form := flag.String("form", "", "form URL template, ending with the query key the token is set to")
	timeout := flag.Duration("timeout", 90*time.Second, "evaluation timeout")
	suite := flag.String("suite", anontoken.Secp256k1Sha256.Name(), "ciphersuite")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	os.Exit(run(logger, *evaluatorURL, *accessToken, *form, *suite, *timeout))
}

func run(logger *slog.Logger, evaluatorURL, accessToken, form, suite string, timeout time.Duration) int {
	cs, err := anontoken.FromName(suite)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ev, err := evaluator.NewHTTPEvaluator(evaluatorURL, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	conf := anontoken.DefaultConfiguration()
	conf.Ciphersuite = cs
	conf.Timeout = timeout
	conf.Logger = logger

	client, err := anontoken.NewClient(ev, conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := client.Generate(ctx, accessToken, form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to verify access token: %v\n", err)

		if !result.ManualEntry {
			return 2
		}

		var e *anontoken.Error
		if errors.As(err, &e) && e.Code == anontoken.ErrCodeEvaluatorRejected {
			fmt.Fprintln(os.Stderr, "The access token was refused.")
		}

		fmt.Fprintln(os.Stderr, "You can still access the form but must paste your token manually.")
		fmt.Println(result.FormURL)

		return 1
	}

	fmt.Println(result.Token)
	fmt.Println(result.FormURL)

	return 0
}
