/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package record_test

import (
	"fmt"

	"chainguard.dev/issuesync/record"
)

// ExampleEqual shows that the tracker identifier and label order do not take
// part in the comparison.
func ExampleEqual() {
	tracked := record.Record{ID: 12, Title: "B105", Body: "hardcoded password", Labels: []string{"sast", "security"}}
	reported := record.Record{Title: "B105", Body: "hardcoded password", Labels: []string{"security", "sast"}}

	fmt.Println(record.Equal(tracked, reported))

	// Output:
	// true
}

// ExampleRecord_Closed shows the record submitted to the tracker when an
// issue is closed.
func ExampleRecord_Closed() {
	r := record.Record{ID: 12, Title: "B105", Body: "hardcoded password", Labels: []string{"sast"}}
	c := r.Closed()

	fmt.Println(c.State, c.Labels)

	// Output:
	// closed [sast resolved]
}
