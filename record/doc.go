/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package record defines the normalized issue record shared by the report
// loader, the tracker loader and the reconciler.
//
// # Equality
//
// Two records describe the same issue when their titles, bodies and label
// sets are equal. The tracker identifier, the state and the order (or
// repetition) of labels never take part in the comparison:
//
//	a := record.Record{ID: 7, Title: "X", Body: "Y", Labels: []string{"b", "a"}}
//	b := record.Record{Title: "X", Body: "Y", Labels: []string{"a", "b", "a"}}
//	record.Equal(a, b) // true
//
// Key returns the canonical form used for set lookups, so that
// Equal(a, b) == (Key(a) == Key(b)) for every pair of records.
package record
