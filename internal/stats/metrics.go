package stats

import (
	"math"
	"sort"
)

// Metrics summarizes one sample sequence.
type Metrics struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	// StdDev is the population standard deviation divided by the mean.
	StdDev float64
}

// ComputeMetrics aggregates samples after dropping the first skip values.
// At least one sample is always kept.
func ComputeMetrics(samples []float64, skip int) Metrics {
	if len(samples) == 0 {
		return Metrics{}
	}
	if skip < 0 {
		skip = 0
	}
	if skip > len(samples)-1 {
		skip = len(samples) - 1
	}
	values := samples[skip:]

	m := Metrics{Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		m.Min = math.Min(m.Min, v)
		m.Max = math.Max(m.Max, v)
		sum += v
	}
	n := float64(len(values))
	// Rounding must not push the mean outside the sample range.
	m.Mean = math.Min(math.Max(sum/n, m.Min), m.Max)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if len(sorted)%2 == 0 {
		m.Median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	} else {
		m.Median = sorted[len(sorted)/2]
	}

	diffSum := 0.0
	for _, v := range values {
		d := v - m.Mean
		diffSum += d * d
	}
	m.StdDev = math.Sqrt(diffSum/n) / m.Mean
	return m
}
