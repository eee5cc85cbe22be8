package rating

import (
	"github.com/dugoutlabs/ratings-api/internal/models"
)

// AggLine is one component's multi-year weighted aggregate.
type AggLine struct {
	Rate    float64
	Sample  float64 // effective weighted sample (IP or PA)
	Seasons int
}

// Aggregate holds per-component weighted rates plus window totals.
type Aggregate struct {
	Lines [numComponents]AggLine

	// Unweighted totals inside the window, used for role classification
	// and the veteran playing-time blend.
	WindowIP float64
	WindowPA float64

	// Window IP by years-back slot, newest first. The playing-time
	// projection reads the two most recent nonzero slots so preseason
	// runs (empty current year) still see a workload history.
	RecentIP [3]float64
}

// Has reports whether a component accumulated any observed sample.
func (a *Aggregate) Has(c Component) bool {
	return a.Lines[c].Sample > 0
}

// Rate returns the aggregated rate for a component (0 when unobserved).
func (a *Aggregate) Rate(c Component) float64 { return a.Lines[c].Rate }

// Sample returns the effective weighted sample for a component.
func (a *Aggregate) Sample(c Component) float64 { return a.Lines[c].Sample }

// AggregateSeasons folds up to four seasons of stat lines into weighted
// per-component rates. Seasons outside the window or with zero sample
// contribute nothing. The year weights come from the stage vector; when
// levelWeighted is set, each line's sample is additionally scaled by the
// params level weight (the minor-league path). Lines whose Year is
// asOfYear get the current-year weight, asOfYear-1 the next, and so on.
func AggregateSeasons(p Params, class string, lines []models.SeasonStatLine, asOfYear int, stage Stage, levelWeighted bool) Aggregate {
	weights := p.Weights(stage)
	comps := ComponentsFor(class)

	var agg Aggregate
	var num, den [numComponents]float64
	var seasons [numComponents]int

	for i := range lines {
		line := &lines[i]
		back := asOfYear - line.Year
		if back < 0 || back >= len(weights) {
			continue
		}

		if !levelWeighted {
			agg.WindowIP += float64(line.IP)
			agg.WindowPA += float64(line.PA)
			if back < len(agg.RecentIP) && float64(line.IP) > 0 {
				agg.RecentIP[back] += float64(line.IP)
			}
		}

		w := weights[back]
		if w == 0 {
			continue
		}
		levelW := 1.0
		if levelWeighted {
			lw, ok := p.LevelWeights[line.Level]
			if !ok {
				continue
			}
			levelW = lw
		}

		for _, c := range comps {
			rate, sample := c.rate(line)
			if sample <= 0 {
				continue
			}
			sample *= levelW
			num[c] += w * sample * rate
			den[c] += w * sample
			seasons[c]++
		}
	}

	for _, c := range comps {
		if den[c] == 0 {
			continue
		}
		agg.Lines[c] = AggLine{
			Rate:    num[c] / den[c],
			Sample:  den[c] / 10.0,
			Seasons: seasons[c],
		}
	}
	return agg
}

// ClassifyRole derives the pitching role from the unweighted window
// workload. Batters always map to the batter role.
func ClassifyRole(p Params, class string, agg *Aggregate) string {
	if class == models.ClassBatter {
		return models.RoleBatter
	}
	if agg.WindowIP >= p.StarterIPThreshold {
		return models.RoleStarter
	}
	return models.RoleReliever
}
