package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderKeyValueTable draws rows under a Key/Value header. Header text keeps
// its case so it matches the config keys printed beneath it.
func renderKeyValueTable(rows [][2]string) string {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault

	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"Key", "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}
