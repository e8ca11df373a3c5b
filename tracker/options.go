/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tracker

import "net/http"

// DefaultPerPage is the page size requested from the tracker.
const DefaultPerPage = 100

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	perPage    int
}

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise Server instance ("https://ghe.example.com/api/v3"). An empty
// value keeps the public GitHub API.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithHTTPClient sets the underlying HTTP client that the bearer token
// transport wraps.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithPerPage sets the number of issues requested per page.
func WithPerPage(n int) Option {
	return func(o *options) {
		o.perPage = n
	}
}

// LoadOption configures LoadOpenIssues.
type LoadOption func(*loadOptions)

type loadOptions struct {
	maxPages int
}

// WithMaxPages bounds the number of pages LoadOpenIssues will request.
// Reaching the bound without seeing an empty page is an error. Zero, the
// default, fetches until the empty page.
func WithMaxPages(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxPages = n
	}
}
