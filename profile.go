// profile.go
package main

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pivolan/go_utils"

	"github.com/pivolan/report_generator/domain/models"
)

// tokens treated as an absent value, the usual pandas NA spellings
var missingTokens = []string{"nan", "NaN", "NAN", "null", "NULL", "Null", "N/A", "n/a", "NA", "na"}

func isMissing(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return true
	}
	return go_utils.InArray(cell, missingTokens)
}

// AnalyzeTable computes the Profile of a table: row/column counts, the
// numeric/categorical partition, missing-value counts and descriptive
// statistics per numeric column. Deterministic, single pass per column.
func AnalyzeTable(t *models.Table) *models.Profile {
	profile := &models.Profile{
		TotalRows:          t.RowCount(),
		TotalColumns:       t.ColumnCount(),
		NumericColumns:     []string{},
		CategoricalColumns: []string{},
		MissingValues:      map[string]int{},
		Stats:              map[string]models.ColumnStat{},
	}

	for col, name := range t.Headers {
		missing := 0
		numeric := true
		values := make([]float64, 0, len(t.Rows))
		for _, row := range t.Rows {
			cell := row[col]
			if isMissing(cell) {
				missing++
				continue
			}
			if !numeric {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				numeric = false
				continue
			}
			values = append(values, v)
		}
		profile.MissingValues[name] = missing

		// a column with zero non-missing numeric cells is categorical
		if numeric && len(values) > 0 {
			profile.NumericColumns = append(profile.NumericColumns, name)
			profile.Stats[name] = columnStats(values)
		} else {
			profile.CategoricalColumns = append(profile.CategoricalColumns, name)
		}
	}

	return profile
}

// NumericValues returns the parsed non-missing values of one column in row
// order. Cells that do not parse are skipped.
func NumericValues(t *models.Table, name string) []float64 {
	values := []float64{}
	for _, cell := range t.ColumnCells(name) {
		if isMissing(cell) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// columnStats computes the sample descriptive statistics of a value slice.
// Empty input degrades to count=0 with NaN placeholders instead of failing.
func columnStats(values []float64) models.ColumnStat {
	nan := math.NaN()
	if len(values) == 0 {
		return models.ColumnStat{Count: 0, Mean: nan, Std: nan, Min: nan, P25: nan, Median: nan, P75: nan, Max: nan}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	// sample standard deviation, Bessel's correction
	std := nan
	if len(values) > 1 {
		sq := 0.0
		for _, v := range values {
			sq += (v - mean) * (v - mean)
		}
		std = math.Sqrt(sq / float64(len(values)-1))
	}

	return models.ColumnStat{
		Count:  len(values),
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		P25:    calculateQuantile(sorted, 0.25),
		Median: calculateQuantile(sorted, 0.5),
		P75:    calculateQuantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// calculateQuantile interpolates linearly between the two nearest order
// statistics, matching the numpy default.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	return lower + fraction*(upper-lower)
}
