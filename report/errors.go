/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import "fmt"

// MalformedInputError is returned when a report is missing, unreadable or
// does not match the expected structure.
type MalformedInputError struct {
	// Path is the report file, empty when parsing from a reader.
	Path string
	// Index is the offending element, or -1 when the document as a whole is malformed.
	Index int
	Err   error
}

func (e *MalformedInputError) Error() string {
	src := e.Path
	if src == "" {
		src = "report"
	}
	if e.Index >= 0 {
		return fmt.Sprintf("malformed %s: element %d: %v", src, e.Index, e.Err)
	}
	return fmt.Sprintf("malformed %s: %v", src, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
