package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// metric is one row of a summary table.
type metric struct {
	name  string
	value string
}

// renderMetrics draws a rounded two-column table with values aligned right.
func renderMetrics(metrics []metric) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	for _, m := range metrics {
		tw.AppendRow(table.Row{m.name, m.value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
