/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package findingreconciler

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"chainguard.dev/issuesync/record"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteJSON writes cs to w as indented JSON.
func (cs Changeset) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(cs)
}

// WriteSummary writes a table of the changeset to w, one row per record.
func (cs Changeset) WriteSummary(w io.Writer) error {
	table := newSummaryTable(w)
	for _, r := range cs.ToClose {
		if err := table.Append(summaryRow("close", r)); err != nil {
			return err
		}
	}
	for _, r := range cs.New {
		if err := table.Append(summaryRow("create", r)); err != nil {
			return err
		}
	}
	return table.Render()
}

// summaryColumns lays out the summary table. Issue numbers are
// right-aligned so they line up by digit; new records show "-".
var summaryColumns = []struct {
	header string
	align  tw.Align
}{
	{"Action", tw.AlignLeft},
	{"Issue", tw.AlignRight},
	{"Title", tw.AlignLeft},
	{"Labels", tw.AlignLeft},
}

func summaryRow(action string, r record.Record) []string {
	id := "-"
	if r.ID != 0 {
		id = "#" + strconv.Itoa(r.ID)
	}
	return []string{action, id, r.Title, strings.Join(record.NormalizeLabels(r.Labels), ", ")}
}

// newSummaryTable renders as a markdown table so the summary can be pasted
// into a job summary as-is. Long titles wrap instead of widening the table.
func newSummaryTable(w io.Writer) *tablewriter.Table {
	header := make([]string, 0, len(summaryColumns))
	align := make([]tw.Align, 0, len(summaryColumns))
	for _, c := range summaryColumns {
		header = append(header, c.header)
		align = append(align, c.align)
	}

	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft, PerColumn: align},
			},
			MaxWidth: 120,
		}),
		tablewriter.WithHeader(header),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.Off, Bottom: tw.Off},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNormal),
	)
}
