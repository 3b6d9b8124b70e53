package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"app/models"
)

func TestClassifyGrowthIncreasing(t *testing.T) {
	result := classifyGrowth(100, 200)
	assert.Equal(t, models.TrendIncreasing, result.Classification)
	assert.Equal(t, 100.0, result.Growth)
}

func TestClassifyGrowthDecreasing(t *testing.T) {
	result := classifyGrowth(200, 100)
	assert.Equal(t, models.TrendDecreasing, result.Classification)
	assert.Equal(t, -50.0, result.Growth)
}

func TestClassifyGrowthStableWithinThreshold(t *testing.T) {
	assert.Equal(t, models.TrendStable, classifyGrowth(100, 104).Classification)
	assert.Equal(t, models.TrendStable, classifyGrowth(100, 96).Classification)
	// Exactly +/-5% stays stable; only beyond the threshold flips.
	assert.Equal(t, models.TrendStable, classifyGrowth(100, 105).Classification)
	assert.Equal(t, models.TrendStable, classifyGrowth(100, 95).Classification)
}

func TestClassifyGrowthZeroFirstHalf(t *testing.T) {
	// A jump from zero to positive sales is deliberately not flagged as
	// increasing; the ratio would be undefined.
	result := classifyGrowth(0, 100)
	assert.Equal(t, 0.0, result.Growth)
	assert.Equal(t, models.TrendStable, result.Classification)
}

func TestClassifyGrowthIdempotent(t *testing.T) {
	first := classifyGrowth(321.5, 198.25)
	second := classifyGrowth(321.5, 198.25)
	assert.Equal(t, first, second)
}
