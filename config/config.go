/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package config resolves command-line flags and environment variables into
// a single Config that is passed explicitly to the loaders and the apply
// step.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"chainguard.dev/issuesync/tracker"
	"github.com/sethvargo/go-envconfig"
)

// DefaultAPIURL is used when neither --api-url nor GITHUB_API_URL is set.
const DefaultAPIURL = "https://api.github.com"

// env holds the environment fallbacks. In GitHub Actions these are set for
// every job.
type env struct {
	Token  string `env:"GITHUB_TOKEN"`
	Repo   string `env:"GITHUB_REPOSITORY"`
	APIURL string `env:"GITHUB_API_URL"`
}

// Flags are the raw command-line values. Empty strings mean "not given".
type Flags struct {
	Report      string
	Token       string
	Repo        string
	APIURL      string
	Labels      string
	DryRun      bool
	Summary     bool
	MetricsFile string
	LogLevel    string
}

// Config is the resolved configuration of a run.
type Config struct {
	ReportPath  string
	Token       string
	Repo        string
	APIURL      string
	Labels      []string
	DryRun      bool
	Summary     bool
	MetricsFile string
	LogLevel    slog.Level
}

// Resolve combines flags with the environment read through lookuper. Flags
// take precedence. A nil lookuper reads the process environment.
func Resolve(ctx context.Context, f Flags, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var e env
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &e,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	cfg := &Config{
		ReportPath:  f.Report,
		Token:       firstNonEmpty(f.Token, e.Token),
		Repo:        firstNonEmpty(f.Repo, e.Repo),
		APIURL:      firstNonEmpty(f.APIURL, e.APIURL, DefaultAPIURL),
		Labels:      tracker.LabelsOrDefault(ParseLabels(f.Labels)),
		DryRun:      f.DryRun,
		Summary:     f.Summary,
		MetricsFile: f.MetricsFile,
	}

	if f.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.LogLevel)); err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed setting.
func (c *Config) Validate() error {
	var errs []error
	if c.ReportPath == "" {
		errs = append(errs, errors.New("--report is required"))
	}
	if c.Token == "" {
		errs = append(errs, errors.New("--token is required (or set GITHUB_TOKEN)"))
	}
	if c.Repo == "" {
		errs = append(errs, errors.New("--repo is required (or set GITHUB_REPOSITORY)"))
	} else if _, _, err := tracker.ParseRepo(c.Repo); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLabels splits a space-separated label list. Repeated spaces are
// ignored.
func ParseLabels(s string) []string {
	return strings.Fields(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
