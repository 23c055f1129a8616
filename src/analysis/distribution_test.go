package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-alpha/src/models"
)

func TestNewDistribution(t *testing.T) {
	t.Run("summary statistics", func(t *testing.T) {
		samples := []models.PathSample{
			{TotalReturn: -1.0},
			{TotalReturn: 0.0},
			{TotalReturn: 1.0},
			{TotalReturn: 2.0},
		}

		distribution, err := NewDistribution(samples, 4)
		require.NoError(t, err)

		assert.InDelta(t, 0.5, distribution.Mean, 1e-12)
		assert.InDelta(t, 0.5, distribution.Median, 1e-12)
		assert.InDelta(t, -1.0, distribution.Min, 1e-12)
		assert.InDelta(t, 2.0, distribution.Max, 1e-12)
	})

	t.Run("bucket counts cover every sample", func(t *testing.T) {
		samples := []models.PathSample{
			{TotalReturn: -1.0},
			{TotalReturn: -0.5},
			{TotalReturn: 0.25},
			{TotalReturn: 1.0},
			{TotalReturn: 2.0},
		}

		distribution, err := NewDistribution(samples, 3)
		require.NoError(t, err)
		require.Len(t, distribution.Buckets, 3)

		total := 0
		for _, bucket := range distribution.Buckets {
			total += bucket.Count
		}

		assert.Equal(t, len(samples), total)
		assert.Equal(t, distribution.Min, distribution.Buckets[0].Low)
		assert.Equal(t, distribution.Max, distribution.Buckets[2].High)
	})

	t.Run("identical returns collapse to one bucket", func(t *testing.T) {
		samples := []models.PathSample{
			{TotalReturn: 0.5},
			{TotalReturn: 0.5},
			{TotalReturn: 0.5},
		}

		distribution, err := NewDistribution(samples, 10)
		require.NoError(t, err)
		require.Len(t, distribution.Buckets, 1)
		assert.Equal(t, 3, distribution.Buckets[0].Count)
	})

	t.Run("rejects empty samples", func(t *testing.T) {
		_, err := NewDistribution(nil, 4)
		require.Error(t, err)
	})

	t.Run("rejects a non-positive bucket count", func(t *testing.T) {
		_, err := NewDistribution([]models.PathSample{{TotalReturn: 1}}, 0)
		require.Error(t, err)
	})
}
