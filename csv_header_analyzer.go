// csv_header_analyzer.go
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type HeaderAnalysis struct {
	Headers        []string // final column names
	FirstRowIsData bool     // whether the first row holds data
	FirstDataRow   []string // the row as read from source
}

var headerDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}\.\d+$`),
}

// AnalyzeHeaders inspects the first row of a file and decides whether it is a
// header row or already data. Column names are kept as read from the source,
// trimmed and deduplicated; when the first row is data the names are generated
// as column_1..column_N.
func AnalyzeHeaders(firstRow []string) *HeaderAnalysis {
	if len(firstRow) == 0 {
		return nil
	}

	result := &HeaderAnalysis{
		Headers:        make([]string, len(firstRow)),
		FirstRowIsData: false,
		FirstDataRow:   firstRow,
	}

	headerLikeCount := 0
	for _, field := range firstRow {
		if isLikelyHeader(field) {
			headerLikeCount++
		}
	}

	if float64(headerLikeCount)/float64(len(firstRow)) >= 0.5 {
		for i, header := range firstRow {
			name := strings.TrimSpace(header)
			if name == "" || !isLikelyHeader(name) {
				name = generateColumnName(i)
			}
			result.Headers[i] = name
		}
	} else {
		result.FirstRowIsData = true
		for i := range firstRow {
			result.Headers[i] = generateColumnName(i)
		}
	}

	result.Headers = ValidateHeaders(result.Headers)
	return result
}

// isLikelyHeader reports whether a cell looks like a column name rather than
// a data value (numbers and dates are data).
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}

	for _, pattern := range headerDatePatterns {
		if pattern.MatchString(text) {
			return false
		}
	}

	letters := 0
	digits := 0
	specials := 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSpace(r):
		default:
			specials++
		}
	}

	totalChars := letters + digits + specials
	if totalChars == 0 {
		return false
	}

	// mostly-letter cells read as names, mostly-symbol cells as data
	return letters > 0 && float64(letters)/float64(totalChars) >= 0.3
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// ValidateHeaders deduplicates column names with _1, _2 suffixes so the table
// invariant of unique names holds.
func ValidateHeaders(headers []string) []string {
	seen := make(map[string]int)
	result := make([]string, len(headers))

	for i, header := range headers {
		originalHeader := header
		counter := 1

		for {
			if count, exists := seen[header]; exists {
				header = fmt.Sprintf("%s_%d", originalHeader, counter)
				counter++
			} else {
				seen[header] = count + 1
				break
			}
		}

		result[i] = header
	}

	return result
}
