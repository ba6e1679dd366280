package scheduler

import "gonum.org/v1/gonum/stat"

// CostHistorySummary is a diagnostic summary of a search's cost history. It
// plays no part in the search itself: Optimize never reads it back, and
// accept/reject decisions never depend on it.
type CostHistorySummary struct {
	Mean       float64
	StdDev     float64
	// TrendSlope is the slope of a least-squares line fit to the cost
	// history against iteration index: negative means the search is, on
	// average, still improving.
	TrendSlope float64
	Samples    int
}

// SummarizeCostHistory computes mean, standard deviation and a linear trend
// slope over history. An empty history returns the zero summary; a
// single-sample history sets only Mean and Samples, leaving StdDev and
// TrendSlope zero.
func SummarizeCostHistory(history []float64) CostHistorySummary {
	n := len(history)
	if n == 0 {
		return CostHistorySummary{}
	}
	mean := stat.Mean(history, nil)
	if n == 1 {
		return CostHistorySummary{Mean: mean, Samples: 1}
	}
	stddev := stat.StdDev(history, nil)

	iterations := make([]float64, n)
	for i := range iterations {
		iterations[i] = float64(i)
	}
	_, slope := stat.LinearRegression(iterations, history, nil, false)

	return CostHistorySummary{
		Mean:       mean,
		StdDev:     stddev,
		TrendSlope: slope,
		Samples:    n,
	}
}
