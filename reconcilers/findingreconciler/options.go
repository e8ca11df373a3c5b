/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDryRun makes Apply log the calls it would make without issuing them.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}
