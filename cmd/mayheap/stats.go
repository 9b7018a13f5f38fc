package main

import (
	"fmt"
	"math"
)

// runStats holds aggregate statistics over repeated runs of one scenario.
type runStats struct {
	Mean         float64
	StdDeviation float64
	Min          float64
	Max          float64
}

// newRunStats computes the mean, standard deviation, minimum and maximum
// from an array of float64 values.
func newRunStats(values []float64) runStats {
	if len(values) == 0 {
		return runStats{}
	}

	// initialize min and max with the first value
	min := values[0]
	max := values[0]

	// calculate sum for mean
	var sum float64
	for _, v := range values {
		sum += v

		// update min and max while iterating
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// calculate mean
	mean := sum / float64(len(values))

	// calculate sum of squared differences from mean
	var sumSquaredDiffs float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiffs += diff * diff
	}

	// calculate standard deviation (population formula)
	stdDev := math.Sqrt(sumSquaredDiffs / float64(len(values)))

	return runStats{
		Mean:         mean,
		StdDeviation: stdDev,
		Min:          min,
		Max:          max,
	}
}

// printSummary prints one aggregate line per scenario, collapsing the
// repetitions requested via --count.
func printSummary(outcomes []benchOutcome) {
	groups := make(map[benchScenario][]float64)
	var order []benchScenario
	for _, o := range outcomes {
		if _, ok := groups[o.scenario]; !ok {
			order = append(order, o.scenario)
		}
		groups[o.scenario] = append(groups[o.scenario], math.Max(float64(o.result.NsPerOp()), 1))
	}

	fmt.Println()
	fmt.Println("Summary (ns/op across repetitions):")
	for _, sc := range order {
		s := newRunStats(groups[sc])
		name := fmt.Sprintf("%s/%d", sc.Op, sc.Size)
		fmt.Printf("%-24smean %10.0f   stddev %8.0f   min %10.0f   max %10.0f\n",
			name, s.Mean, s.StdDeviation, s.Min, s.Max)
	}
}
