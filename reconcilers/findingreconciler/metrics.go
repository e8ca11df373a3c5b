/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the reconciler's metrics. It is separate from the default
// registry so that a run can be exported as a node_exporter textfile without
// process and runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	issuesCreated = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "issuesync_issues_created_total",
			Help: "Total number of issues created for new findings",
		},
	)

	issuesClosed = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "issuesync_issues_closed_total",
			Help: "Total number of issues closed because their finding disappeared",
		},
	)

	applyFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "issuesync_apply_failures_total",
			Help: "Total number of create or close calls that failed",
		},
		[]string{"action"},
	)
)

// WriteMetrics writes the current metric values to path in the Prometheus
// text exposition format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
