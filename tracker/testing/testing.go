/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package testing provides an in-memory tracker for tests.
package testing

import (
	"context"
	"slices"
	"sync"

	"chainguard.dev/issuesync/record"
	"github.com/google/go-github/v84/github"
)

// Update is a recorded UpdateIssue call.
type Update struct {
	ID     int
	Record record.Record
}

// Fetch is a recorded FetchPage call.
type Fetch struct {
	Page   int
	Labels []string
}

// Tracker is an in-memory stand-in for the GitHub issues API. It implements
// tracker.PageFetcher and the create/update calls used when applying a
// changeset. The zero value serves no issues and accepts every call.
type Tracker struct {
	mu sync.Mutex

	// Issues are the open issues served by FetchPage, filtered by label.
	Issues []*github.Issue
	// PerPage is the page size; zero means 100.
	PerPage int

	// FetchErrors fails FetchPage for the given page numbers.
	FetchErrors map[int]error
	// CreateError, when set, decides whether a CreateIssue call fails.
	CreateError func(record.Record) error
	// UpdateError, when set, decides whether an UpdateIssue call fails.
	UpdateError func(id int, r record.Record) error

	fetches []Fetch
	created []record.Record
	updated []Update
}

// Issue builds an open tracker issue for tests.
func Issue(number int, title, body string, labels ...string) *github.Issue {
	issue := &github.Issue{
		Number: github.Ptr(number),
		Title:  github.Ptr(title),
		Body:   github.Ptr(body),
		State:  github.Ptr("open"),
	}
	for _, l := range labels {
		issue.Labels = append(issue.Labels, &github.Label{Name: github.Ptr(l)})
	}
	return issue
}

// FetchPage serves the issues carrying every label, PerPage at a time.
func (t *Tracker) FetchPage(_ context.Context, page int, labels []string) ([]*github.Issue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.fetches = append(t.fetches, Fetch{Page: page, Labels: slices.Clone(labels)})
	if err := t.FetchErrors[page]; err != nil {
		return nil, err
	}

	var matching []*github.Issue
	for _, issue := range t.Issues {
		if hasAll(issue, labels) {
			matching = append(matching, issue)
		}
	}

	perPage := t.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	start := (page - 1) * perPage
	if page < 1 || start >= len(matching) {
		return []*github.Issue{}, nil
	}
	return matching[start:min(start+perPage, len(matching))], nil
}

// CreateIssue records r unless CreateError rejects it.
func (t *Tracker) CreateIssue(_ context.Context, r record.Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.CreateError != nil {
		if err := t.CreateError(r); err != nil {
			return err
		}
	}
	t.created = append(t.created, r)
	return nil
}

// UpdateIssue records the update unless UpdateError rejects it.
func (t *Tracker) UpdateIssue(_ context.Context, id int, r record.Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.UpdateError != nil {
		if err := t.UpdateError(id, r); err != nil {
			return err
		}
	}
	t.updated = append(t.updated, Update{ID: id, Record: r})
	return nil
}

// Fetches returns the FetchPage calls made so far.
func (t *Tracker) Fetches() []Fetch {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.fetches)
}

// Created returns the records successfully created so far.
func (t *Tracker) Created() []record.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.created)
}

// Updated returns the successful UpdateIssue calls made so far.
func (t *Tracker) Updated() []Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.updated)
}

func hasAll(issue *github.Issue, labels []string) bool {
	for _, want := range labels {
		if !slices.ContainsFunc(issue.Labels, func(l *github.Label) bool {
			return l.GetName() == want
		}) {
			return false
		}
	}
	return true
}
