package main

import (
	"strconv"
)

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/report_generator/domain/models"
)

// GenerateSummaryTable renders the dataset totals as a text table for the
// browser view.
func GenerateSummaryTable(p *models.Profile) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Total Records", p.TotalRows},
		{"Total Columns", p.TotalColumns},
		{"Numeric Columns", len(p.NumericColumns)},
		{"Categorical Columns", len(p.CategoricalColumns)},
	})
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateStatsTable renders one row of descriptive statistics per numeric
// column, in header order.
func GenerateStatsTable(p *models.Profile) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Count", "Mean", "Std", "Min", "P25", "Median", "P75", "Max"})
	for _, col := range p.NumericColumns {
		s := p.Stats[col]
		t.AppendRows([]table.Row{
			{col, s.Count, formatStat(s.Mean), formatStat(s.Std), formatStat(s.Min),
				formatStat(s.P25), formatStat(s.Median), formatStat(s.P75), formatStat(s.Max)},
		})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateMissingTable renders the per-column missing-value counts in source
// column order.
func GenerateMissingTable(t *models.Table, p *models.Profile) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Column", "Missing"})
	for _, col := range t.Headers {
		w.AppendRows([]table.Row{{col, p.MissingValues[col]}})
	}
	w.SetStyle(table.StyleDefault)
	return w.Render()
}

// GeneratePreviewTable renders the header plus the first n data rows, with
// long cells truncated the same way the PDF preview truncates them.
func GeneratePreviewTable(t *models.Table, n int) string {
	w := table.NewWriter()
	header := table.Row{}
	for _, name := range t.Headers {
		header = append(header, name)
	}
	w.AppendHeader(header)
	for i, row := range t.Rows {
		if i >= n {
			break
		}
		cells := table.Row{}
		for _, cell := range row {
			cells = append(cells, truncateCell(cell))
		}
		w.AppendRows([]table.Row{cells})
	}
	w.SetStyle(table.StyleDefault)
	return w.Render()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
