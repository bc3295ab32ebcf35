package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableColumn describes one rendered column. Numeric columns (counts,
// match scores) are right-aligned; everything else reads left to right.
type tableColumn struct {
	header  string
	numeric bool
}

// rowTint picks display colors for one rendered row; nil leaves it plain.
type rowTint func(cells []string) text.Colors

func renderTable(columns []tableColumn, rows [][]string) string {
	return renderTintedTable(columns, rows, nil)
}

// renderTintedTable renders rows under the rounded style, padding short
// rows with empty cells. Tinting is reserved for interactive summaries;
// machine-read output paths pass nil.
func renderTintedTable(columns []tableColumn, rows [][]string, tint rowTint) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = col.header
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		cells := make(table.Row, len(columns))
		for i := range columns {
			if i < len(row) {
				cells[i] = row[i]
			} else {
				cells[i] = ""
			}
		}
		tw.AppendRow(cells)
	}

	if tint != nil {
		tw.SetRowPainter(func(row table.Row) text.Colors {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i], _ = cell.(string)
			}
			return tint(cells)
		})
	}

	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, col := range columns {
		align := text.AlignLeft
		if col.numeric {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
