// charts.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pivolan/report_generator/domain/models"
	"github.com/pivolan/report_generator/plot"
)

// RenderCharts produces the fixed chart sequence for the PDF report: a bar
// chart of the first numeric column over the first 10 rows, and a line chart
// of the second numeric column (when present) over the first 20 rows. No
// numeric columns means no charts, not an error.
func RenderCharts(t *models.Table, p *models.Profile) ([]models.Chart, error) {
	charts := []models.Chart{}
	if len(p.NumericColumns) == 0 {
		return charts, nil
	}

	first := p.NumericColumns[0]
	labels, values := columnHead(t, first, 10)
	title := fmt.Sprintf("%s - Top 10 Records", first)
	png, err := plot.DrawBar(labels, values, title, first)
	if err != nil {
		return nil, &models.RenderError{Chart: title, Err: err}
	}
	charts = append(charts, models.Chart{Title: title, PNG: png, Width: plot.ChartWidth, Height: plot.ChartHeight})

	if len(p.NumericColumns) >= 2 {
		second := p.NumericColumns[1]
		xs, ys := columnHeadXY(t, second, 20)
		title := fmt.Sprintf("%s - Trend Analysis", second)
		png, err := plot.DrawLine(xs, ys, title, second)
		if err != nil {
			return nil, &models.RenderError{Chart: title, Err: err}
		}
		charts = append(charts, models.Chart{Title: title, PNG: png, Width: plot.ChartWidth, Height: plot.ChartHeight})
	}

	return charts, nil
}

// columnHead takes the parseable values of a column within the first n rows,
// labeled with their row index.
func columnHead(t *models.Table, name string, n int) (labels []string, values []float64) {
	col := t.ColumnIndex(name)
	if col < 0 {
		return nil, nil
	}
	for i, row := range t.Rows {
		if i >= n {
			break
		}
		cell := row[col]
		if isMissing(cell) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			continue
		}
		labels = append(labels, strconv.Itoa(i))
		values = append(values, v)
	}
	return labels, values
}

func columnHeadXY(t *models.Table, name string, n int) (xs []float64, ys []float64) {
	labels, values := columnHead(t, name, n)
	for i := range labels {
		x, _ := strconv.ParseFloat(labels[i], 64)
		xs = append(xs, x)
		ys = append(ys, values[i])
	}
	return xs, ys
}
