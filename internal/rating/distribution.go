package rating

import (
	"math"
	"sort"
)

// Cohort names for reference distributions.
const (
	CohortMLBPeak      = "mlb-peak"
	CohortProspectPool = "prospect-pool"
	CohortQualPA       = "qual-pa"
)

// Composite metric names beyond the per-component ones.
const (
	MetricPitchWAR = "pitch_war"
	MetricBatWAR   = "bat_war"
	MetricQualPA   = "qual_pa"
)

// ReferenceDistribution is a sorted sample of one metric across a cohort.
// Build once, read many: Values must be ascending and never mutated.
type ReferenceDistribution struct {
	Metric string
	Cohort string
	Values []float64
}

// NewDistribution sorts a sample into a distribution.
func NewDistribution(metric, cohort string, values []float64) *ReferenceDistribution {
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)
	return &ReferenceDistribution{Metric: metric, Cohort: cohort, Values: cp}
}

// N returns the cohort size.
func (d *ReferenceDistribution) N() int { return len(d.Values) }

// Percentile places a value in the cohort: the share of members at or
// below it, times 100. Lower-is-better metrics invert so that a high
// percentile always means good. Result clamps to [0,100].
func (d *ReferenceDistribution) Percentile(v float64, higherBetter bool) (float64, error) {
	n := len(d.Values)
	if n == 0 {
		return 0, ErrEmptyDistribution
	}
	// First index strictly above v; everything before it is <= v.
	count := sort.SearchFloat64s(d.Values, math.Nextafter(v, math.Inf(1)))
	pct := float64(count) / float64(n) * 100
	if !higherBetter {
		pct = 100 - pct
	}
	return clamp(pct, 0, 100), nil
}

// ValueAtPercentile reads the distribution the other way: the member
// value sitting at a percentile rank.
func (d *ReferenceDistribution) ValueAtPercentile(pct float64) float64 {
	n := len(d.Values)
	if n == 0 {
		return 0
	}
	idx := int(math.Round(clamp(pct, 0, 100) / 100 * float64(n-1)))
	return d.Values[idx]
}

// Summary holds the distribution endpoint payload.
type Summary struct {
	Metric string  `json:"metric"`
	Cohort string  `json:"cohort"`
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Summarize produces the five-number summary.
func (d *ReferenceDistribution) Summarize() Summary {
	s := Summary{Metric: d.Metric, Cohort: d.Cohort, N: d.N()}
	if s.N == 0 {
		return s
	}
	s.Min = d.Values[0]
	s.P25 = d.ValueAtPercentile(25)
	s.P50 = d.ValueAtPercentile(50)
	s.P75 = d.ValueAtPercentile(75)
	s.Max = d.Values[len(d.Values)-1]
	return s
}

// DistributionSet is the read-only bundle of distributions a single
// rating computation needs, assembled by the caller so the pipeline
// itself never touches storage.
type DistributionSet map[string]*ReferenceDistribution

func distKey(metric, cohort string) string { return metric + "|" + cohort }

// Put stores a distribution under its metric and cohort.
func (s DistributionSet) Put(d *ReferenceDistribution) {
	s[distKey(d.Metric, d.Cohort)] = d
}

// Get fetches a distribution; the bool reports presence.
func (s DistributionSet) Get(metric, cohort string) (*ReferenceDistribution, bool) {
	d, ok := s[distKey(metric, cohort)]
	return d, ok
}

// GradeFromPercentile maps a percentile linearly onto the 20-80 scale.
func GradeFromPercentile(p Params, pct float64) float64 {
	return p.GradeMin + pct/100*(p.GradeMax-p.GradeMin)
}

// StarsFromPercentile maps a percentile onto the half-star scale through
// the descending breakpoint table.
func StarsFromPercentile(p Params, pct float64) float64 {
	return p.StarBreaks.Lookup(pct)
}
