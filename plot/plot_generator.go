package plot

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// rendered image dimensions
const (
	ChartWidth  = 800
	ChartHeight = 400
)

// DrawBar renders a labeled bar chart to PNG.
func DrawBar(labels []string, values []float64, title string, yName string) ([]byte, error) {
	if len(labels) != len(values) {
		return nil, errors.New("labels and values length mismatch")
	}
	if len(values) == 0 {
		return nil, errors.New("no values to draw")
	}

	var bars []chart.Value
	for i := range values {
		bars = append(bars, chart.Value{
			Value: values[i],
			Label: labels[i],
			Style: chart.Style{
				FillColor: drawing.ColorFromHex("667eea").WithAlpha(220),
			},
		})
	}

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorFromHex("efefef"),
			StrokeWidth: 1,
			Padding: chart.Box{
				Top:    40,
				Bottom: 20,
			},
		},
		Width:    ChartWidth,
		Height:   ChartHeight,
		BarWidth: 30,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: yName,
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: findMaxValue(values),
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering bar chart: %v", err)
	}

	return buffer.Bytes(), nil
}

// DrawLine renders a line chart of y over x to PNG. Needs at least two
// points, anything less is degenerate input.
func DrawLine(xValues []float64, yValues []float64, title string, yName string) ([]byte, error) {
	if len(xValues) != len(yValues) {
		return nil, errors.New("x and y length mismatch")
	}
	if len(xValues) < 2 {
		return nil, errors.New("need at least two points for a line chart")
	}

	series := &chart.ContinuousSeries{
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("764ba2"),
			StrokeWidth: 2,
		},
	}

	graph := chart.Chart{
		Title: title,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  ChartWidth,
		Height: ChartHeight,
		XAxis: chart.XAxis{
			Name: "Row",
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.0f", vf)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: yName,
		},
		Series: []chart.Series{series},
	}
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering line chart: %v", err)
	}

	return buffer.Bytes(), nil
}

// DrawHistogram bins the values and renders the distribution as a bar chart.
func DrawHistogram(values []float64, title string) ([]byte, error) {
	if len(values) == 0 {
		return nil, errors.New("no values to draw")
	}

	starts, ends, counts := Bins(values, 10)
	labels := make([]string, len(starts))
	for i := range starts {
		labels[i] = fmt.Sprintf("%.1f-%.1f", starts[i], ends[i])
	}
	return DrawBar(labels, counts, title, "Frequency")
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}
