package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/model"
)

func TestDataQualityAlwaysAtLeastFiveMessages(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 29, 30, 500} {
		msgs := assessDataQuality(n, 4, n*4)
		assert.GreaterOrEqual(t, len(msgs), 5, "sampleCount=%d", n)
	}
}

func TestDataQualitySampleSizeLevels(t *testing.T) {
	small := assessDataQuality(5, 3, 15)
	assert.Equal(t, model.QualityWarning, small[0].Level)

	medium := assessDataQuality(20, 3, 60)
	assert.Equal(t, model.QualityInfo, medium[0].Level)
	assert.Contains(t, medium[0].Message, "caution")

	large := assessDataQuality(100, 3, 300)
	assert.Equal(t, model.QualityInfo, large[0].Level)
	assert.Contains(t, large[0].Message, "solid sample")
}

func TestDataQualityMissingRate(t *testing.T) {
	// 100 expected, 70 present: 30% missing -> warning.
	msgs := assessDataQuality(25, 4, 70)
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, model.QualityWarning, msgs[1].Level)
	assert.Contains(t, msgs[1].Message, "30.0%")

	// 100 expected, 90 present: 10% missing -> info.
	msgs = assessDataQuality(25, 4, 90)
	assert.Equal(t, model.QualityInfo, msgs[1].Level)
}

func TestDataQualityDeterministic(t *testing.T) {
	a := assessDataQuality(17, 5, 60)
	b := assessDataQuality(17, 5, 60)
	assert.Equal(t, a, b)
}
