/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chainguard.dev/issuesync/record"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax of a report.
type Format int

const (
	// JSON is the default report syntax.
	JSON Format = iota
	// YAML reports share the JSON schema.
	YAML
)

// FormatFor picks the report format from a file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Load reads and parses the report at path.
func Load(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Index: -1, Err: err}
	}
	defer f.Close()

	recs, err := Parse(f, FormatFor(path))
	if err != nil {
		var mie *MalformedInputError
		if errors.As(err, &mie) {
			mie.Path = path
		}
		return nil, err
	}
	return recs, nil
}

// Parse decodes a report document from r.
func Parse(r io.Reader, format Format) ([]record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &MalformedInputError{Index: -1, Err: fmt.Errorf("reading report: %w", err)}
	}

	if format == YAML {
		return parseYAML(data)
	}
	return parseJSON(data)
}

// parseYAML walks the node tree so scalars keep their literal text: an
// unquoted 2024-01-01 stays "2024-01-01" rather than a timestamp.
func parseYAML(data []byte) ([]record.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{Index: -1, Err: fmt.Errorf("decoding yaml: %w", err)}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	root = deref(root)
	if root.Kind != yaml.SequenceNode {
		return nil, &MalformedInputError{Index: -1, Err: errors.New("expected a sequence of mappings")}
	}

	recs := make([]record.Record, 0, len(root.Content))
	for i, elem := range root.Content {
		rec, err := parseNode(elem)
		if err != nil {
			return nil, &MalformedInputError{Index: i, Err: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseNode(n *yaml.Node) (record.Record, error) {
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return record.Record{}, errors.New("expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = deref(n.Content[i+1])
	}

	for _, key := range []string{"title", "body", "labels"} {
		if _, ok := fields[key]; !ok {
			return record.Record{}, fmt.Errorf("missing %q", key)
		}
	}

	var rec record.Record
	title := fields["title"]
	if isNullNode(title) || title.Kind != yaml.ScalarNode {
		return record.Record{}, errors.New(`"title" must be a string`)
	}
	rec.Title = title.Value

	if body := fields["body"]; !isNullNode(body) {
		if body.Kind != yaml.ScalarNode {
			return record.Record{}, errors.New(`"body" must be a string`)
		}
		rec.Body = body.Value
	}

	labels := fields["labels"]
	if labels.Kind != yaml.SequenceNode {
		return record.Record{}, errors.New(`"labels" must be a sequence of strings`)
	}
	rec.Labels = make([]string, 0, len(labels.Content))
	for _, l := range labels.Content {
		l = deref(l)
		if isNullNode(l) || l.Kind != yaml.ScalarNode {
			return record.Record{}, errors.New(`"labels" must be a sequence of strings`)
		}
		rec.Labels = append(rec.Labels, l.Value)
	}
	return rec, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNullNode(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func parseJSON(data []byte) ([]record.Record, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &elems); err != nil {
		return nil, &MalformedInputError{Index: -1, Err: fmt.Errorf("expected an array of objects: %w", err)}
	}
	if elems == nil {
		// A literal null decodes without error.
		return nil, &MalformedInputError{Index: -1, Err: errors.New("expected an array of objects, got null")}
	}

	recs := make([]record.Record, 0, len(elems))
	for i, elem := range elems {
		rec, err := parseElement(elem)
		if err != nil {
			return nil, &MalformedInputError{Index: i, Err: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseElement(elem json.RawMessage) (record.Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		return record.Record{}, errors.New("expected an object")
	}

	for _, key := range []string{"title", "body", "labels"} {
		if _, ok := fields[key]; !ok {
			return record.Record{}, fmt.Errorf("missing %q", key)
		}
	}

	var rec record.Record
	if isNull(fields["title"]) {
		return record.Record{}, errors.New(`"title" must be a string`)
	}
	if err := json.Unmarshal(fields["title"], &rec.Title); err != nil {
		return record.Record{}, fmt.Errorf(`"title" must be a string: %w`, err)
	}

	// A null body is treated as an empty one, as the tracker does.
	if !isNull(fields["body"]) {
		if err := json.Unmarshal(fields["body"], &rec.Body); err != nil {
			return record.Record{}, fmt.Errorf(`"body" must be a string: %w`, err)
		}
	}

	if isNull(fields["labels"]) {
		return record.Record{}, errors.New(`"labels" must be an array of strings`)
	}
	if err := json.Unmarshal(fields["labels"], &rec.Labels); err != nil {
		return record.Record{}, fmt.Errorf(`"labels" must be an array of strings: %w`, err)
	}
	if rec.Labels == nil {
		rec.Labels = []string{}
	}
	return rec, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
