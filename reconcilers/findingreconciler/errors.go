/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

import (
	"fmt"

	"chainguard.dev/issuesync/record"
)

// CreateIssueError is returned when a single new record could not be created.
type CreateIssueError struct {
	Record record.Record
	Err    error
}

func (e *CreateIssueError) Error() string {
	return fmt.Sprintf("creating issue %q: %v", e.Record.Title, e.Err)
}

func (e *CreateIssueError) Unwrap() error {
	return e.Err
}

// CloseIssueError is returned when a single stale issue could not be closed.
type CloseIssueError struct {
	Record record.Record
	Err    error
}

func (e *CloseIssueError) Error() string {
	return fmt.Sprintf("closing issue #%d %q: %v", e.Record.ID, e.Record.Title, e.Err)
}

func (e *CloseIssueError) Unwrap() error {
	return e.Err
}
