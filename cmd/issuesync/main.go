/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements issuesync, a command that keeps the open issues of
// a GitHub repository in step with a report of findings.
//
// Typical use from a GitHub Actions workflow, after a scanner has written
// report.json:
//
//	issuesync --report report.json --token "$GITHUB_TOKEN" --labels "security sast bandit"
//
// The changeset is printed to stdout as JSON before any issue is created or
// closed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "issuesync failed: %v", err)
	}
}
