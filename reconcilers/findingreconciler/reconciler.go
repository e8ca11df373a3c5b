/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

import (
	"chainguard.dev/issuesync/record"
)

// Changeset is the set of tracker mutations needed to match a report.
type Changeset struct {
	// New holds the reported records to create, in report order.
	New []record.Record `json:"new"`
	// ToClose holds the tracker records to close, in tracker order.
	ToClose []record.Record `json:"to_close"`
}

// Empty reports whether the changeset requires no tracker calls.
func (cs Changeset) Empty() bool {
	return len(cs.New) == 0 && len(cs.ToClose) == 0
}

// DuplicateNew returns every record of New that is equal to an earlier
// record of New, in order.
func (cs Changeset) DuplicateNew() []record.Record {
	seen := make(map[string]struct{}, len(cs.New))
	var dups []record.Record
	for _, r := range cs.New {
		k := record.Key(r)
		if _, ok := seen[k]; ok {
			dups = append(dups, r)
			continue
		}
		seen[k] = struct{}{}
	}
	return dups
}

// Reconcile compares the current tracker records with the reported records.
// Records are matched with record.Equal semantics via their canonical keys.
func Reconcile(current, reported []record.Record) Changeset {
	currentKeys := keySet(current)
	reportedKeys := keySet(reported)

	cs := Changeset{
		New:     []record.Record{},
		ToClose: []record.Record{},
	}
	for _, r := range reported {
		if _, ok := currentKeys[record.Key(r)]; !ok {
			cs.New = append(cs.New, r)
		}
	}
	for _, r := range current {
		if _, ok := reportedKeys[record.Key(r)]; !ok {
			cs.ToClose = append(cs.ToClose, r)
		}
	}
	return cs
}

func keySet(rs []record.Record) map[string]struct{} {
	keys := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		keys[record.Key(r)] = struct{}{}
	}
	return keys
}
