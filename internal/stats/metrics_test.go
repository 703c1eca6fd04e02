package stats

import (
	"math"
	"testing"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		skip    int
		want    Metrics
	}{
		{
			name:    "odd count",
			samples: []float64{3, 1, 2},
			want:    Metrics{Min: 1, Max: 3, Mean: 2, Median: 2, StdDev: math.Sqrt(2.0/3.0) / 2},
		},
		{
			name:    "even count",
			samples: []float64{4, 1, 3, 2},
			want:    Metrics{Min: 1, Max: 4, Mean: 2.5, Median: 2.5, StdDev: math.Sqrt(1.25) / 2.5},
		},
		{
			name:    "warmup skipped",
			samples: []float64{100, 2, 2},
			skip:    1,
			want:    Metrics{Min: 2, Max: 2, Mean: 2, Median: 2, StdDev: 0},
		},
		{
			name:    "warmup clamped",
			samples: []float64{5, 7},
			skip:    10,
			want:    Metrics{Min: 7, Max: 7, Mean: 7, Median: 7, StdDev: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(tt.samples, tt.skip)
			if !closeEnough(got.Min, tt.want.Min) || !closeEnough(got.Max, tt.want.Max) ||
				!closeEnough(got.Mean, tt.want.Mean) || !closeEnough(got.Median, tt.want.Median) ||
				!closeEnough(got.StdDev, tt.want.StdDev) {
				t.Errorf("ComputeMetrics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12*math.Max(1, math.Abs(b))
}

func TestComputeMetrics_Ordering(t *testing.T) {
	sequences := [][]float64{
		{1},
		{0.1, 0.1, 0.1},
		{5, 3, 9, 1, 7},
		{1e-9, 1e9, 3, 3},
		{2.5, 2.5000001, 2.4999999, 2.5},
		{10, 1, 1, 1, 1000},
	}
	for _, seq := range sequences {
		for skip := 0; skip < len(seq); skip++ {
			m := ComputeMetrics(seq, skip)
			if m.Min > m.Median || m.Median > m.Max {
				t.Errorf("%v skip %d: median %v outside [%v, %v]", seq, skip, m.Median, m.Min, m.Max)
			}
			if m.Min > m.Mean || m.Mean > m.Max {
				t.Errorf("%v skip %d: mean %v outside [%v, %v]", seq, skip, m.Mean, m.Min, m.Max)
			}
		}
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	if got := ComputeMetrics(nil, 0); got != (Metrics{}) {
		t.Errorf("ComputeMetrics(nil) = %+v", got)
	}
}
