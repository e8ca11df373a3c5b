/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tracker

import (
	"context"
	"fmt"
	"slices"

	"chainguard.dev/issuesync/record"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// DefaultLabels is the label filter used when the caller supplies none.
var DefaultLabels = []string{"nolabels"}

// PageFetcher returns a single page of open issues matching all labels.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int, labels []string) ([]*github.Issue, error)
}

// FetchError is returned when any page of the open-issue listing fails.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching open issues (page %d): %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LabelsOrDefault returns labels, or DefaultLabels when labels is empty.
func LabelsOrDefault(labels []string) []string {
	if len(labels) == 0 {
		return slices.Clone(DefaultLabels)
	}
	return labels
}

// LoadOpenIssues fetches every open issue matching all of labels, following
// pagination until an empty page, and maps each one to a record. Pull
// requests, which the issues listing also returns, are skipped.
func LoadOpenIssues(ctx context.Context, f PageFetcher, labels []string, opts ...LoadOption) ([]record.Record, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	labels = LabelsOrDefault(labels)
	log := clog.FromContext(ctx).With("labels", labels)

	var recs []record.Record
	for page := 1; ; page++ {
		if o.maxPages > 0 && page > o.maxPages {
			return nil, &FetchError{Page: page, Err: fmt.Errorf("no empty page within %d pages", o.maxPages)}
		}
		if err := ctx.Err(); err != nil {
			return nil, &FetchError{Page: page, Err: err}
		}

		issues, err := f.FetchPage(ctx, page, labels)
		if err != nil {
			return nil, &FetchError{Page: page, Err: err}
		}
		if len(issues) == 0 {
			break
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				log.With("number", issue.GetNumber()).Debug("Skipping pull request")
				continue
			}
			recs = append(recs, FromIssue(issue))
		}
	}

	log.With("issues", len(recs)).Info("Loaded open issues")
	return recs, nil
}

// FromIssue maps a tracker issue to a record. An absent body becomes "".
func FromIssue(issue *github.Issue) record.Record {
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}
	return record.Record{
		ID:     issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Labels: labels,
	}
}
