package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jiaming2012/options-alpha/src/models"
)

type Bucket struct {
	Low   float64
	High  float64
	Count int
}

// Distribution describes the shape of a contract's simulated returns.
type Distribution struct {
	Mean    float64
	Median  float64
	StdDev  float64
	Min     float64
	Max     float64
	Buckets []Bucket
}

// NewDistribution computes summary statistics and a histogram over the
// retained per-path returns of one contract.
func NewDistribution(samples []models.PathSample, bucketCount int) (Distribution, error) {
	if len(samples) == 0 {
		return Distribution{}, fmt.Errorf("NewDistribution: no path samples")
	}

	if bucketCount < 1 {
		return Distribution{}, fmt.Errorf("NewDistribution: bucketCount must be >= 1, found %d", bucketCount)
	}

	returns := make([]float64, 0, len(samples))
	for _, sample := range samples {
		returns = append(returns, sample.TotalReturn)
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return Distribution{}, fmt.Errorf("NewDistribution: mean: %w", err)
	}

	median, err := stats.Median(returns)
	if err != nil {
		return Distribution{}, fmt.Errorf("NewDistribution: median: %w", err)
	}

	stdDev, err := stats.StandardDeviation(returns)
	if err != nil {
		return Distribution{}, fmt.Errorf("NewDistribution: standard deviation: %w", err)
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	min := sorted[0]
	max := sorted[len(sorted)-1]

	distribution := Distribution{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}

	if min == max {
		// Degenerate case: every path returned the same value.
		distribution.Buckets = []Bucket{{Low: min, High: max, Count: len(sorted)}}
		return distribution, nil
	}

	dividers := make([]float64, bucketCount+1)
	floats.Span(dividers, min, max)

	// stat.Histogram buckets are half-open, so the top divider is nudged past
	// the max to keep the largest return countable.
	histDividers := make([]float64, len(dividers))
	copy(histDividers, dividers)
	histDividers[len(histDividers)-1] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, histDividers, sorted, nil)

	buckets := make([]Bucket, 0, bucketCount)
	for i, count := range counts {
		buckets = append(buckets, Bucket{
			Low:   dividers[i],
			High:  dividers[i+1],
			Count: int(count),
		})
	}

	distribution.Buckets = buckets

	return distribution, nil
}
