/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want bool
	}{{
		name: "identical",
		a:    Record{Title: "X", Body: "Y", Labels: []string{"a"}},
		b:    Record{Title: "X", Body: "Y", Labels: []string{"a"}},
		want: true,
	}, {
		name: "label order ignored",
		a:    Record{Title: "X", Body: "Y", Labels: []string{"a", "b"}},
		b:    Record{Title: "X", Body: "Y", Labels: []string{"b", "a"}},
		want: true,
	}, {
		name: "duplicate labels ignored",
		a:    Record{Title: "X", Body: "Y", Labels: []string{"a", "a", "b"}},
		b:    Record{Title: "X", Body: "Y", Labels: []string{"b", "a"}},
		want: true,
	}, {
		name: "id ignored",
		a:    Record{ID: 1, Title: "X", Body: "Y", Labels: []string{"a"}},
		b:    Record{ID: 2, Title: "X", Body: "Y", Labels: []string{"a"}},
		want: true,
	}, {
		name: "state ignored",
		a:    Record{Title: "X", Body: "Y", State: StateClosed},
		b:    Record{Title: "X", Body: "Y"},
		want: true,
	}, {
		name: "nil and empty labels",
		a:    Record{Title: "X", Body: "Y"},
		b:    Record{Title: "X", Body: "Y", Labels: []string{}},
		want: true,
	}, {
		name: "different title",
		a:    Record{Title: "X", Body: "Y"},
		b:    Record{Title: "Z", Body: "Y"},
		want: false,
	}, {
		name: "different body",
		a:    Record{Title: "X", Body: "Y"},
		b:    Record{Title: "X", Body: "Z"},
		want: false,
	}, {
		name: "extra label",
		a:    Record{Title: "X", Body: "Y", Labels: []string{"a"}},
		b:    Record{Title: "X", Body: "Y", Labels: []string{"a", "b"}},
		want: false,
	}, {
		name: "label case matters",
		a:    Record{Title: "X", Body: "Y", Labels: []string{"a"}},
		b:    Record{Title: "X", Body: "Y", Labels: []string{"A"}},
		want: false,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
			if got := Key(tt.a) == Key(tt.b); got != tt.want {
				t.Errorf("Key(a) == Key(b) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualAllPermutations(t *testing.T) {
	labels := []string{"security", "sast", "bandit"}
	base := Record{Title: "B101", Body: "assert used", Labels: labels}

	perms := [][]string{
		{"security", "sast", "bandit"},
		{"security", "bandit", "sast"},
		{"sast", "security", "bandit"},
		{"sast", "bandit", "security"},
		{"bandit", "security", "sast"},
		{"bandit", "sast", "security"},
	}
	for i, p := range perms {
		other := Record{ID: i + 1, Title: base.Title, Body: base.Body, Labels: p}
		if !Equal(base, other) {
			t.Errorf("Equal(%v, %v) = false, want true", base.Labels, p)
		}
	}
}

func TestKeyNoAmbiguity(t *testing.T) {
	// Components that concatenate to the same text must not collide.
	a := Record{Title: "ab", Body: "c"}
	b := Record{Title: "a", Body: "bc"}
	if Key(a) == Key(b) {
		t.Errorf("Key(%+v) == Key(%+v) = %q", a, b, Key(a))
	}

	c := Record{Title: "t", Body: "b", Labels: []string{"x,y"}}
	d := Record{Title: "t", Body: "b", Labels: []string{"x", "y"}}
	if Key(c) == Key(d) {
		t.Errorf("Key(%+v) == Key(%+v) = %q", c, d, Key(c))
	}
}

func TestNormalizeLabels(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	got := NormalizeLabels(in)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("NormalizeLabels() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a", "b", "c", "a"}, in); diff != "" {
		t.Errorf("NormalizeLabels() modified its input (-want +got):\n%s", diff)
	}
}

func TestClosed(t *testing.T) {
	labels := make([]string, 2, 8)
	copy(labels, []string{"security", "sast"})
	r := Record{ID: 4, Title: "X", Body: "Y", Labels: labels}

	got := r.Closed()
	want := Record{
		ID:     4,
		Title:  "X",
		Body:   "Y",
		Labels: []string{"security", "sast", ResolvedLabel},
		State:  StateClosed,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Closed() mismatch (-want +got):\n%s", diff)
	}

	// The original record must be untouched, even with spare capacity.
	if r.State != "" {
		t.Errorf("original State = %q, want empty", r.State)
	}
	if diff := cmp.Diff([]string{"security", "sast"}, r.Labels); diff != "" {
		t.Errorf("original Labels changed (-want +got):\n%s", diff)
	}
	if extended := labels[:3]; extended[2] != "" {
		t.Errorf("Closed() wrote into the original backing array: %q", extended[2])
	}
}

func TestContains(t *testing.T) {
	rs := []Record{
		{ID: 1, Title: "X", Body: "Y", Labels: []string{"a", "b"}},
		{ID: 2, Title: "Z", Body: "W"},
	}

	if !Contains(rs, Record{Title: "X", Body: "Y", Labels: []string{"b", "a"}}) {
		t.Error("Contains() = false for an equal record, want true")
	}
	if Contains(rs, Record{Title: "X", Body: "Y"}) {
		t.Error("Contains() = true for a record with a different label set, want false")
	}
	if Contains(nil, Record{Title: "X"}) {
		t.Error("Contains(nil) = true, want false")
	}
}
