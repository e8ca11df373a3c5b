/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package tracker talks to the GitHub issues API and loads the open issues
// that a report is reconciled against.
//
// # Client
//
// Client wraps a go-github client authenticated with a bearer token. It
// exposes the three calls the reconciler needs: fetching one page of open
// issues, creating an issue and updating (closing) an issue.
//
//	c, err := tracker.New(ctx, token, "org/repo",
//	    tracker.WithBaseURL(os.Getenv("GITHUB_API_URL")),
//	)
//
// # Loading
//
// LoadOpenIssues follows pagination until the tracker returns an empty page
// and maps every issue to a record.Record. A failure on any page fails the
// whole load; partial results are never returned, since an incomplete
// baseline would cause live issues to be closed.
//
// When no label filter is given, DefaultLabels ("nolabels") is used so that
// only issues carrying that marker label are considered.
package tracker
