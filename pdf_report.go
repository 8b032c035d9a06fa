// pdf_report.go
package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mozillazg/go-unidecode"

	"github.com/pivolan/report_generator/domain/models"
)

const (
	previewRowLimit = 10
	statsColLimit   = 3
	cellTextLimit   = 20
)

// ComposeReport assembles the paginated PDF: title page, executive summary,
// column information, per-column statistics, data preview and chart images.
// The whole document is written to w only on success; any assembly failure
// surfaces as CompositionError and nothing is emitted.
func ComposeReport(t *models.Table, p *models.Profile, charts []models.Chart, w io.Writer) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	printable := pageW - 144

	// title block
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(102, 126, 234)
	pdf.CellFormat(0, 30, "Automated Data Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	generated := "Generated on: " + time.Now().Format("January 02, 2006 at 03:04 PM")
	pdf.CellFormat(0, 16, generated, "", 1, "L", false, 0, "")
	pdf.Ln(20)

	writeHeading(pdf, "Executive Summary")
	writeKeyValueTable(pdf, [][2]string{
		{"Total Records", strconv.Itoa(p.TotalRows)},
		{"Total Columns", strconv.Itoa(p.TotalColumns)},
		{"Numeric Columns", strconv.Itoa(len(p.NumericColumns))},
		{"Categorical Columns", strconv.Itoa(len(p.CategoricalColumns))},
	}, 216, 24)
	pdf.Ln(20)

	writeHeading(pdf, "Column Information")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 14, asciiText("Numeric Columns: "+joinOrNone(p.NumericColumns)), "", "L", false)
	pdf.Ln(10)
	pdf.MultiCell(0, 14, asciiText("Categorical Columns: "+joinOrNone(p.CategoricalColumns)), "", "L", false)
	pdf.Ln(20)

	if len(p.NumericColumns) > 0 {
		writeHeading(pdf, "Statistical Summary")
		for i, col := range p.NumericColumns {
			if i >= statsColLimit {
				break
			}
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(0, 18, asciiText(col), "", 1, "L", false, 0, "")
			writeKeyValueTable(pdf, statRows(p.Stats[col]), 144, 20)
			pdf.Ln(12)
		}
	}

	pdf.AddPage()
	writeHeading(pdf, fmt.Sprintf("Data Preview (First %d Rows)", previewRowLimit))
	writePreviewTable(pdf, t, printable)

	if len(charts) > 0 {
		pdf.AddPage()
		writeHeading(pdf, "Data Visualizations")
		for i, c := range charts {
			name := fmt.Sprintf("chart_%d", i)
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(c.PNG))
			// 6in x 3in, centered on the printable width
			x := 72 + (printable-432)/2
			pdf.ImageOptions(name, x, 0, 432, 216, true, opts, 0, "")
			pdf.Ln(20)
		}
	}

	if err := pdf.Output(w); err != nil {
		return &models.CompositionError{Err: err}
	}
	return nil
}

func writeHeading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(118, 75, 162)
	pdf.CellFormat(0, 22, text, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func writeKeyValueTable(pdf *fpdf.Fpdf, rows [][2]string, colW float64, rowH float64) {
	pdf.SetFillColor(245, 247, 250)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(colW, rowH, asciiText(row[0]), "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(colW, rowH, asciiText(row[1]), "1", 1, "L", true, 0, "")
	}
}

func writePreviewTable(pdf *fpdf.Fpdf, t *models.Table, printable float64) {
	colW := printable / float64(t.ColumnCount())

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(102, 126, 234)
	pdf.SetTextColor(255, 255, 255)
	for _, name := range t.Headers {
		pdf.CellFormat(colW, 22, truncateCell(asciiText(name)), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(22)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range t.Rows {
		if i >= previewRowLimit {
			break
		}
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 247, 250)
		}
		for _, cell := range row {
			pdf.CellFormat(colW, 18, truncateCell(asciiText(cell)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(18)
	}
}

// statRows lays the column statistics out in pandas describe() order.
func statRows(s models.ColumnStat) [][2]string {
	return [][2]string{
		{"count", strconv.Itoa(s.Count)},
		{"mean", fmt.Sprintf("%.2f", s.Mean)},
		{"std", fmt.Sprintf("%.2f", s.Std)},
		{"min", fmt.Sprintf("%.2f", s.Min)},
		{"25%", fmt.Sprintf("%.2f", s.P25)},
		{"50%", fmt.Sprintf("%.2f", s.Median)},
		{"75%", fmt.Sprintf("%.2f", s.P75)},
		{"max", fmt.Sprintf("%.2f", s.Max)},
	}
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

func truncateCell(text string) string {
	runes := []rune(text)
	if len(runes) > cellTextLimit {
		return string(runes[:cellTextLimit]) + "..."
	}
	return text
}

// asciiText transliterates to ASCII so the PDF core fonts can always encode
// the cell content.
func asciiText(s string) string {
	return unidecode.Unidecode(s)
}
