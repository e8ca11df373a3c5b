/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

import (
	"bytes"
	"strings"
	"testing"

	"chainguard.dev/issuesync/record"
)

func TestWriteJSON(t *testing.T) {
	cs := Changeset{
		New:     []record.Record{{Title: "X", Body: "a <b>", Labels: []string{"a"}}},
		ToClose: []record.Record{{ID: 3, Title: "Z", Body: "", Labels: []string{}}},
	}

	var buf bytes.Buffer
	if err := cs.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	want := `{
    "new": [
        {
            "title": "X",
            "body": "a <b>",
            "labels": [
                "a"
            ]
        }
    ],
    "to_close": [
        {
            "id": 3,
            "title": "Z",
            "body": "",
            "labels": []
        }
    ]
}
`
	if got := buf.String(); got != want {
		t.Errorf("WriteJSON() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Reconcile(nil, nil).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	want := "{\n    \"new\": [],\n    \"to_close\": []\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteJSON() = %q, want %q", got, want)
	}
}

func TestWriteSummary(t *testing.T) {
	cs := Changeset{
		New:     []record.Record{{Title: "B105 hardcoded password", Labels: []string{"sast", "security"}}},
		ToClose: []record.Record{{ID: 42, Title: "B101 assert used", Labels: []string{"sast"}}},
	}

	var buf bytes.Buffer
	if err := cs.WriteSummary(&buf); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"create", "close", "#42", "B105 hardcoded password", "B101 assert used", "sast, security"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteSummary() output missing %q:\n%s", want, out)
		}
	}
	// Closes are listed before creates, matching the order they are applied.
	if strings.Index(out, "#42") > strings.Index(out, "B105") {
		t.Errorf("WriteSummary() lists creates before closes:\n%s", out)
	}
}

func TestWriteSummaryAlignsIssueNumbers(t *testing.T) {
	cs := Changeset{
		New: []record.Record{{Title: "fresh", Labels: []string{"sast"}}},
		ToClose: []record.Record{
			{ID: 7, Title: "old", Labels: []string{"sast"}},
			{ID: 1234, Title: "older", Labels: []string{"sast"}},
		},
	}

	var buf bytes.Buffer
	if err := cs.WriteSummary(&buf); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	// The Issue column is as wide as "#1234", so shorter values are padded on the left.
	out := buf.String()
	for _, want := range []string{"   #7 |", "#1234 |", "    - |"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteSummary() output missing right-aligned cell %q:\n%s", want, out)
		}
	}
}
