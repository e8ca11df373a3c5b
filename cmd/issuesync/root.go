/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"chainguard.dev/issuesync/config"
	"chainguard.dev/issuesync/reconcilers/findingreconciler"
	"chainguard.dev/issuesync/report"
	"chainguard.dev/issuesync/tracker"
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

// trackerClient is what a run needs from the tracker: loading the baseline
// and applying the changeset.
type trackerClient interface {
	tracker.PageFetcher
	findingreconciler.Tracker
}

// newTrackerFunc builds the tracker client once configuration is resolved.
type newTrackerFunc func(ctx context.Context, cfg *config.Config) (trackerClient, error)

func newGitHubTracker(ctx context.Context, cfg *config.Config) (trackerClient, error) {
	return tracker.New(ctx, cfg.Token, cfg.Repo, tracker.WithBaseURL(cfg.APIURL))
}

func newRootCommand() *cobra.Command {
	return newCommand(newGitHubTracker)
}

func newCommand(newTracker newTrackerFunc) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "issuesync",
		Short: "Reconcile a findings report with open GitHub issues",
		Long: `Reconcile a findings report with open GitHub issues.

Issues are created for findings that have no matching open issue, and open
issues whose finding no longer appears in the report are closed and labeled
"resolved". Two issues match when their title, body and set of labels are
equal.

Only open issues carrying every label given by --labels are considered. When
--labels is not set, only issues labeled "nolabels" are considered.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Context(), flags, nil)
			if err != nil {
				return err
			}

			logger := clog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
			ctx := clog.WithLogger(cmd.Context(), logger)

			return run(ctx, cfg, newTracker, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Report, "report", "", "Path to the findings report (JSON array of {title, body, labels}; .yaml/.yml also accepted)")
	f.StringVar(&flags.Token, "token", "", "GitHub token (defaults to $GITHUB_TOKEN)")
	f.StringVar(&flags.Repo, "repo", "", "GitHub repository, e.g. org/repo (defaults to $GITHUB_REPOSITORY)")
	f.StringVar(&flags.APIURL, "api-url", "", "GitHub API URL (defaults to $GITHUB_API_URL, then "+config.DefaultAPIURL+")")
	f.StringVar(&flags.Labels, "labels", "", "Space-separated labels used to select and compare issues, e.g. 'security sast bandit'")
	f.BoolVar(&flags.DryRun, "dry-run", false, "Print the changeset without creating or closing issues")
	f.BoolVar(&flags.Summary, "summary", false, "Write a table of the changeset to stderr")
	f.StringVar(&flags.MetricsFile, "metrics-file", "", "Write Prometheus metrics for this run to the given file")
	f.StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

// run loads both sides, prints the changeset and applies it. Loading
// failures abort before anything is changed; apply failures are collected
// and returned after every record has been attempted.
func run(ctx context.Context, cfg *config.Config, newTracker newTrackerFunc, stdout, stderr io.Writer) error {
	log := clog.FromContext(ctx).With("repo", cfg.Repo)

	if cfg.MetricsFile != "" {
		defer func() {
			if merr := findingreconciler.WriteMetrics(cfg.MetricsFile); merr != nil {
				log.With("error", merr).Warn("Failed to write metrics file")
			}
		}()
	}

	reported, err := report.Load(cfg.ReportPath)
	if err != nil {
		return err
	}
	log.With("findings", len(reported)).Info("Loaded report")

	client, err := newTracker(ctx, cfg)
	if err != nil {
		return fmt.Errorf("creating tracker client: %w", err)
	}

	current, err := tracker.LoadOpenIssues(ctx, client, cfg.Labels)
	if err != nil {
		return err
	}

	cs := findingreconciler.Reconcile(current, reported)
	for _, dup := range cs.DuplicateNew() {
		log.With("title", dup.Title).Warn("Report lists the same finding more than once, an issue will be created for each copy")
	}

	if err := cs.WriteJSON(stdout); err != nil {
		return fmt.Errorf("writing changeset: %w", err)
	}
	if cfg.Summary {
		if err := cs.WriteSummary(stderr); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	res := findingreconciler.New(client, findingreconciler.WithDryRun(cfg.DryRun)).Apply(ctx, cs)
	log.With("created", res.Created, "closed", res.Closed, "failed", len(res.Errors)).Info("Reconciliation complete")

	if err := res.Err(); err != nil {
		return fmt.Errorf("%d of %d changes failed: %w", len(res.Errors), len(cs.New)+len(cs.ToClose), err)
	}
	return nil
}
