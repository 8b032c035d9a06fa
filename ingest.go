package main

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pivolan/go_utils"
	"github.com/xuri/excelize/v2"

	"github.com/pivolan/report_generator/domain/models"
)

const SEPARATOR = ','

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// DetectFormat maps an uploaded file name to a declared table format.
func DetectFormat(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case ext == ".csv":
		return FormatCSV, nil
	case go_utils.InArray(ext, []string{".xlsx", ".xls"}):
		return FormatExcel, nil
	}
	return "", &models.ParseError{Reason: "unsupported file extension " + ext}
}

// ParseTable reads an uploaded byte stream in the declared format and builds
// a Table. Malformed input surfaces as ParseError, a file with no data rows
// or no columns as EmptyDatasetError.
func ParseTable(r io.Reader, format string) (*models.Table, error) {
	switch format {
	case FormatCSV:
		return parseCSV(r)
	case FormatExcel:
		return parseExcel(r)
	}
	return nil, &models.ParseError{Reason: "unknown format " + format}
}

func parseCSV(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = SEPARATOR
	reader.LazyQuotes = true

	firstRow, err := reader.Read()
	if err == io.EOF {
		return nil, &models.ParseError{Reason: "empty file"}
	}
	if err != nil {
		return nil, &models.ParseError{Reason: "unreadable csv", Err: err}
	}

	analysis := AnalyzeHeaders(firstRow)
	if analysis == nil {
		return nil, &models.ParseError{Reason: "empty first row"}
	}

	rows := [][]string{}
	if analysis.FirstRowIsData {
		rows = append(rows, analysis.FirstDataRow)
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &models.ParseError{Reason: "malformed csv row", Err: err}
		}
		rows = append(rows, record)
	}

	return buildTable(analysis.Headers, rows)
}

func parseExcel(r io.Reader) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &models.ParseError{Reason: "unreadable excel file", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &models.ParseError{Reason: "no sheets in workbook"}
	}

	// first sheet only, like pandas.read_excel defaults
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &models.ParseError{Reason: "unreadable sheet " + sheets[0], Err: err}
	}
	if len(records) == 0 {
		return nil, &models.EmptyDatasetError{Rows: 0, Columns: 0}
	}

	analysis := AnalyzeHeaders(records[0])
	if analysis == nil {
		return nil, &models.ParseError{Reason: "empty first row"}
	}

	rows := [][]string{}
	if analysis.FirstRowIsData {
		rows = append(rows, analysis.FirstDataRow)
	}
	rows = append(rows, records[1:]...)

	return buildTable(analysis.Headers, rows)
}

// buildTable normalizes row widths (excel readers trim trailing empty cells)
// and enforces the non-empty invariants.
func buildTable(headers []string, rows [][]string) (*models.Table, error) {
	width := len(headers)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for len(headers) < width {
		headers = append(headers, generateColumnName(len(headers)))
	}
	headers = ValidateHeaders(headers)

	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	if len(headers) == 0 || len(rows) == 0 {
		return nil, &models.EmptyDatasetError{Rows: len(rows), Columns: len(headers)}
	}

	return &models.Table{Headers: headers, Rows: rows}, nil
}
