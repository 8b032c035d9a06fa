// echarts.go
package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/report_generator/domain/models"
	"github.com/pivolan/report_generator/plot"
)

const onScreenHistograms = 2

// RenderChartsPage writes the interactive distribution page shown in the
// browser: one histogram per numeric column, capped at the first two. These
// never reach the PDF.
func RenderChartsPage(w io.Writer, t *models.Table, p *models.Profile) error {
	page := components.NewPage()
	page.PageTitle = "Data Visualizations"

	drawn := 0
	for _, col := range p.NumericColumns {
		if drawn >= onScreenHistograms {
			break
		}
		values := NumericValues(t, col)
		if len(values) == 0 {
			continue
		}
		page.AddCharts(histogramBar(col, values))
		drawn++
	}

	return page.Render(w)
}

func histogramBar(col string, values []float64) *charts.Bar {
	starts, ends, counts := plot.Bins(values, 10)

	labels := make([]string, len(starts))
	data := make([]opts.BarData, len(starts))
	for i := range starts {
		labels[i] = fmt.Sprintf("%.1f-%.1f", starts[i], ends[i])
		data[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribution of " + col}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "450px"}),
	)
	bar.SetXAxis(labels).AddSeries(col, data)
	return bar
}
