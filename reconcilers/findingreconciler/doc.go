/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package findingreconciler reconciles a report of findings against the
// open issues of a tracker.
//
// The reconciliation flow is:
//
//  1. Load the reported records (package report)
//  2. Load the current open issues (package tracker)
//  3. Reconcile the two into a Changeset
//  4. Print the Changeset
//  5. Apply the Changeset: close stale issues, then create new ones
//
// # Reconcile
//
// Reconcile is a pure function. A reported record with no equal record among
// the current issues is new; a current issue with no equal reported record is
// closed. Equality is record.Equal, so identifiers and label order are
// ignored. Records found on both sides are left alone, which makes running
// the reconciler twice against the same report a no-op.
//
// Records that are equal to each other within the report are evaluated
// independently: if a report lists the same finding twice and the tracker has
// no matching issue, both copies are new. Changeset.DuplicateNew lists those
// copies so callers can warn about them.
//
// # Apply
//
//	r := findingreconciler.New(client)
//	res := r.Apply(ctx, cs)
//	if err := res.Err(); err != nil {
//	    // some creates or closes failed; all were attempted
//	}
//
// Failures are isolated per record: a failed close or create is logged,
// recorded in the Result, and the remaining records are still attempted.
package findingreconciler
