/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report loads the locally generated list of findings that is
// reconciled against the tracker.
//
// A report is an array of objects, each with a title, a body and a list of
// labels:
//
//	[
//	  {"title": "B105: hardcoded password", "body": "app/settings.py:12", "labels": ["security", "sast"]}
//	]
//
// Files ending in .yaml or .yml are decoded as YAML with the same schema;
// everything else is decoded as JSON. Any deviation from the schema is
// reported as a *MalformedInputError.
package report
