/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// StateClosed is the state sent to the tracker when a record is closed.
	StateClosed = "closed"

	// ResolvedLabel is appended to the labels of a record when it is closed.
	ResolvedLabel = "resolved"
)

// Record is a normalized issue used for comparison.
type Record struct {
	// ID is the tracker's issue number. It is zero for reported records.
	ID int `json:"id,omitempty"`

	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`

	// State is empty for loaded records, which are implicitly open.
	State string `json:"state,omitempty"`
}

// Closed returns a copy of r marked closed with the resolved label appended.
// The title and body are left unchanged and r's labels are not modified.
func (r Record) Closed() Record {
	labels := make([]string, 0, len(r.Labels)+1)
	labels = append(labels, r.Labels...)
	r.Labels = append(labels, ResolvedLabel)
	r.State = StateClosed
	return r
}

// NormalizeLabels returns a sorted copy of labels with duplicates removed.
func NormalizeLabels(labels []string) []string {
	out := slices.Clone(labels)
	slices.Sort(out)
	return slices.Compact(out)
}

// Equal reports whether a and b describe the same issue.
func Equal(a, b Record) bool {
	return a.Title == b.Title &&
		a.Body == b.Body &&
		slices.Equal(NormalizeLabels(a.Labels), NormalizeLabels(b.Labels))
}

// Key returns the canonical form of r. Records are Equal exactly when their
// keys are equal.
func Key(r Record) string {
	var sb strings.Builder
	// Length-prefix every component so no two distinct tuples collide.
	writeField := func(s string) {
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	writeField(r.Title)
	writeField(r.Body)
	labels := NormalizeLabels(r.Labels)
	sb.WriteString(strconv.Itoa(len(labels)))
	sb.WriteByte('#')
	for _, l := range labels {
		writeField(l)
	}
	return sb.String()
}

// Contains reports whether any record in rs is Equal to r.
func Contains(rs []Record, r Record) bool {
	return slices.ContainsFunc(rs, func(o Record) bool {
		return Equal(o, r)
	})
}
