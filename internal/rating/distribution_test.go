package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	d := NewDistribution("k9", CohortMLBPeak, []float64{1, 2, 3, 4, 5})

	pct, err := d.Percentile(3, true)
	require.NoError(t, err)
	assert.InDelta(t, 60, pct, 1e-9, "members at or below the value count")

	pct, _ = d.Percentile(3, false)
	assert.InDelta(t, 40, pct, 1e-9, "lower-is-better inverts")

	pct, _ = d.Percentile(2.5, true)
	assert.InDelta(t, 40, pct, 1e-9)

	pct, _ = d.Percentile(0, true)
	assert.InDelta(t, 0, pct, 1e-9)
	pct, _ = d.Percentile(5, true)
	assert.InDelta(t, 100, pct, 1e-9)
	pct, _ = d.Percentile(5, false)
	assert.InDelta(t, 0, pct, 1e-9)
}

func TestPercentileEmpty(t *testing.T) {
	d := NewDistribution("k9", CohortMLBPeak, nil)
	_, err := d.Percentile(3, true)
	assert.ErrorIs(t, err, ErrEmptyDistribution)
}

func TestNewDistributionSortsACopy(t *testing.T) {
	raw := []float64{5, 1, 3}
	d := NewDistribution("k9", CohortMLBPeak, raw)

	assert.Equal(t, []float64{1, 3, 5}, d.Values)
	assert.Equal(t, []float64{5, 1, 3}, raw, "caller slice untouched")
	assert.Equal(t, 3, d.N())
}

func TestValueAtPercentile(t *testing.T) {
	d := NewDistribution(MetricQualPA, CohortQualPA, []float64{10, 20, 30, 40, 50})

	assert.InDelta(t, 10, d.ValueAtPercentile(0), 1e-9)
	assert.InDelta(t, 20, d.ValueAtPercentile(25), 1e-9)
	assert.InDelta(t, 30, d.ValueAtPercentile(50), 1e-9)
	assert.InDelta(t, 50, d.ValueAtPercentile(100), 1e-9)
	assert.InDelta(t, 50, d.ValueAtPercentile(140), 1e-9, "out-of-range percentile clamps")
}

func TestSummarize(t *testing.T) {
	d := NewDistribution("woba", CohortMLBPeak, []float64{10, 20, 30, 40, 50})
	s := d.Summarize()

	assert.Equal(t, "woba", s.Metric)
	assert.Equal(t, CohortMLBPeak, s.Cohort)
	assert.Equal(t, 5, s.N)
	assert.InDelta(t, 10, s.Min, 1e-9)
	assert.InDelta(t, 20, s.P25, 1e-9)
	assert.InDelta(t, 30, s.P50, 1e-9)
	assert.InDelta(t, 40, s.P75, 1e-9)
	assert.InDelta(t, 50, s.Max, 1e-9)

	empty := NewDistribution("woba", CohortMLBPeak, nil).Summarize()
	assert.Zero(t, empty.N)
}

func TestGradeAndStarsFromPercentile(t *testing.T) {
	p := DefaultParams()

	assert.InDelta(t, 20, GradeFromPercentile(p, 0), 1e-9)
	assert.InDelta(t, 50, GradeFromPercentile(p, 50), 1e-9)
	assert.InDelta(t, 80, GradeFromPercentile(p, 100), 1e-9)

	assert.InDelta(t, 0.5, StarsFromPercentile(p, 0), 1e-9)
	assert.InDelta(t, 2.0, StarsFromPercentile(p, 41.2), 1e-9)
	assert.InDelta(t, 2.5, StarsFromPercentile(p, 42), 1e-9)
	assert.InDelta(t, 5.0, StarsFromPercentile(p, 99.9), 1e-9)
}

func TestDistributionSet(t *testing.T) {
	set := DistributionSet{}
	set.Put(NewDistribution("k9", CohortMLBPeak, []float64{7, 8, 9}))
	set.Put(NewDistribution("k9", CohortProspectPool, []float64{6, 7, 8}))

	d, ok := set.Get("k9", CohortMLBPeak)
	require.True(t, ok)
	assert.Equal(t, CohortMLBPeak, d.Cohort)

	_, ok = set.Get("bb9", CohortMLBPeak)
	assert.False(t, ok)
}
