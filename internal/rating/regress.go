package rating

import (
	"math"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// TierEstimate summarizes a player's aggregated raw rates into one
// quality number: an ERA estimator for pitchers, a wOBA estimate for
// batters. Components without observed sample fall back to league rates
// so a partial stat line still lands in a sensible tier.
func TierEstimate(p Params, class, role string, agg *Aggregate) float64 {
	if class == models.ClassPitcher {
		k9 := rateOrLeague(p, agg, CompK9, role)
		bb9 := rateOrLeague(p, agg, CompBB9, role)
		hr9 := rateOrLeague(p, agg, CompHR9, role)
		return FIP(p, k9, bb9, hr9)
	}
	return WOBA(p, BatRates{
		KPct:      rateOrLeague(p, agg, CompKPct, role),
		BBPct:     rateOrLeague(p, agg, CompBBPct, role),
		HRPct:     rateOrLeague(p, agg, CompHRPct, role),
		HitPct:    rateOrLeague(p, agg, CompHitPct, role),
		GapPct:    rateOrLeague(p, agg, CompGapPct, role),
		TriplePct: rateOrLeague(p, agg, CompTriplePct, role),
	})
}

func rateOrLeague(p Params, agg *Aggregate, c Component, role string) float64 {
	if agg.Has(c) {
		return agg.Rate(c)
	}
	return p.leagueRate(c, role)
}

// Confidence is the sample-size scalar applied to the shrink weight:
// 0.5 at zero sample, 1.0 once the sample clears the class scale.
func Confidence(p Params, class string, sample float64) float64 {
	scale := p.ConfidenceIPScale
	if class == models.ClassBatter {
		scale = p.ConfidencePAScale
	}
	return 0.5 + 0.5*math.Min(1, sample/scale)
}

// RegressComponent shrinks one aggregated raw rate toward a target set by
// the player's quality tier rather than the plain league mean, so good
// players regress toward good and bad toward bad. Callers skip components
// with zero observed sample.
func RegressComponent(p Params, c Component, role string, raw, sample, tier float64) float64 {
	var offset, strength float64
	if c.Class() == models.ClassPitcher {
		offset = p.PitchTierOffsets.Lookup(tier)
		strength = p.PitchStrength.Lookup(tier)
	} else {
		offset = p.BatTierOffsets.Lookup(tier)
		strength = p.BatStrength.Lookup(tier)
	}

	target := p.leagueRate(c, role)
	if c.HigherIsBetter() {
		target -= offset * c.offsetRatio()
	} else {
		target += offset * c.offsetRatio()
	}

	shrinkW := c.Stabilization() * strength * Confidence(p, c.Class(), sample)
	return (raw*sample + target*shrinkW) / (sample + shrinkW)
}
