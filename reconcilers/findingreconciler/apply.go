/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

import (
	"context"
	"errors"

	"chainguard.dev/issuesync/record"
	"github.com/chainguard-dev/clog"
)

// Tracker is the subset of the tracker client needed to apply a changeset.
type Tracker interface {
	CreateIssue(ctx context.Context, r record.Record) error
	UpdateIssue(ctx context.Context, id int, r record.Record) error
}

// Reconciler applies changesets to a tracker.
type Reconciler struct {
	tracker Tracker
	dryRun  bool
}

// New creates a Reconciler that applies changesets to t.
func New(t Tracker, opts ...Option) *Reconciler {
	r := &Reconciler{tracker: t}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result summarizes an Apply.
type Result struct {
	Created int
	Closed  int
	// Errors holds one *CloseIssueError or *CreateIssueError per failed record.
	Errors []error
}

// Err joins the per-record failures, or returns nil if there were none.
func (res *Result) Err() error {
	return errors.Join(res.Errors...)
}

// Apply closes every record of cs.ToClose and then creates every record of
// cs.New. A failure on one record does not stop the others. If ctx is
// canceled, the records not yet attempted are reported as failed.
func (r *Reconciler) Apply(ctx context.Context, cs Changeset) *Result {
	log := clog.FromContext(ctx)
	res := &Result{}

	for _, rec := range cs.ToClose {
		closed := rec.Closed()
		log := log.With("number", rec.ID, "title", rec.Title)

		if r.dryRun {
			log.Info("Dry run, not closing issue")
			continue
		}

		err := ctx.Err()
		if err == nil {
			err = r.tracker.UpdateIssue(ctx, rec.ID, closed)
		}
		if err != nil {
			log.With("error", err).Error("Failed to close issue")
			applyFailures.WithLabelValues("close").Inc()
			res.Errors = append(res.Errors, &CloseIssueError{Record: rec, Err: err})
			continue
		}

		log.Info("Closed issue")
		issuesClosed.Inc()
		res.Closed++
	}

	for _, rec := range cs.New {
		log := log.With("title", rec.Title)

		if r.dryRun {
			log.Info("Dry run, not creating issue")
			continue
		}

		err := ctx.Err()
		if err == nil {
			err = r.tracker.CreateIssue(ctx, rec)
		}
		if err != nil {
			log.With("error", err).Error("Failed to create issue")
			applyFailures.WithLabelValues("create").Inc()
			res.Errors = append(res.Errors, &CreateIssueError{Record: rec, Err: err})
			continue
		}

		log.Info("Created issue")
		issuesCreated.Inc()
		res.Created++
	}

	return res
}
