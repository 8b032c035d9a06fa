package plot

// Bins splits values into n equal-width bins over [min, max] and counts the
// values per bin. Constant input collapses to a single bin holding
// everything.
func Bins(values []float64, n int) (starts, ends, counts []float64) {
	if len(values) == 0 || n <= 0 {
		return nil, nil, nil
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []float64{min}, []float64{max}, []float64{float64(len(values))}
	}

	width := (max - min) / float64(n)
	starts = make([]float64, n)
	ends = make([]float64, n)
	counts = make([]float64, n)
	for i := 0; i < n; i++ {
		starts[i] = min + width*float64(i)
		ends[i] = starts[i] + width
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= n {
			idx = n - 1 // max lands in the last bin
		}
		counts[idx]++
	}
	return starts, ends, counts
}
