/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"chainguard.dev/issuesync/record"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// Client is a GitHub issues client scoped to a single repository.
type Client struct {
	gh      *github.Client
	owner   string
	repo    string
	perPage int
}

// New creates a Client for repo ("owner/name") that authenticates every
// request with token as a bearer credential.
func New(ctx context.Context, token, repo string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}

	o := options{perPage: DefaultPerPage}
	for _, opt := range opts {
		opt(&o)
	}
	if o.perPage <= 0 {
		return nil, fmt.Errorf("per page must be positive, got %d", o.perPage)
	}

	if o.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	}
	gh := github.NewClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})))

	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing API URL %q: %w", o.baseURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("API URL %q must be absolute", o.baseURL)
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:      gh,
		owner:   owner,
		repo:    name,
		perPage: o.perPage,
	}, nil
}

// ParseRepo splits "owner/name" into its components.
func ParseRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("repository must be of the form owner/name, got %q", repo)
	}
	return owner, name, nil
}

// Repo returns the "owner/name" the client is scoped to.
func (c *Client) Repo() string {
	return c.owner + "/" + c.repo
}

// FetchPage returns one page of open issues carrying every label in labels.
// Pages are numbered from 1; a page past the end is empty.
func (c *Client) FetchPage(ctx context.Context, page int, labels []string) ([]*github.Issue, error) {
	clog.FromContext(ctx).With("page", page, "labels", labels).Debug("Fetching open issues")

	issues, _, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, &github.IssueListByRepoOptions{
		State:  "open",
		Labels: labels,
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: c.perPage,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("listing issues for %s: %w", c.Repo(), err)
	}
	return issues, nil
}

// CreateIssue opens a new issue with r's title, body and labels.
func (c *Client) CreateIssue(ctx context.Context, r record.Record) error {
	issue, _, err := c.gh.Issues.Create(ctx, c.owner, c.repo, &github.IssueRequest{
		Title:  github.Ptr(r.Title),
		Body:   github.Ptr(r.Body),
		Labels: labelsOf(r),
	})
	if err != nil {
		return fmt.Errorf("creating issue in %s: %w", c.Repo(), err)
	}

	clog.FromContext(ctx).With("number", issue.GetNumber(), "url", issue.GetHTMLURL()).Debug("Created issue")
	return nil
}

// UpdateIssue replaces the state, labels, title and body of issue id with
// those of r. An empty state is left unchanged.
func (c *Client) UpdateIssue(ctx context.Context, id int, r record.Record) error {
	req := &github.IssueRequest{
		Title:  github.Ptr(r.Title),
		Body:   github.Ptr(r.Body),
		Labels: labelsOf(r),
	}
	if r.State != "" {
		req.State = github.Ptr(r.State)
	}

	if _, _, err := c.gh.Issues.Edit(ctx, c.owner, c.repo, id, req); err != nil {
		return fmt.Errorf("updating issue #%d in %s: %w", id, c.Repo(), err)
	}
	return nil
}

// labelsOf never returns a pointer to nil so the labels key is always sent.
func labelsOf(r record.Record) *[]string {
	labels := r.Labels
	if labels == nil {
		labels = []string{}
	}
	return &labels
}
