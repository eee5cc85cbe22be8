package rating

import (
	"math"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// FIP computes the ERA estimator from per-nine rates.
func FIP(p Params, k9, bb9, hr9 float64) float64 {
	return (13*hr9+3*bb9-2*k9)/9.0 + p.FIPConstant
}

// BatRates carries the six batting component rates (percent of PA).
type BatRates struct {
	KPct      float64
	BBPct     float64
	HRPct     float64
	HitPct    float64
	GapPct    float64
	TriplePct float64
}

// WOBA computes the weighted on-base average from component rates. The
// extra-base-hit rate can never exceed the non-HR hit rate; when the gap
// and speed estimates overflow it, both scale down proportionally.
func WOBA(p Params, r BatRates) float64 {
	bb := r.BBPct / 100
	hr := r.HRPct / 100
	hits := math.Max(0, r.HitPct/100)
	dbl := math.Max(0, r.GapPct/100)
	tpl := math.Max(0, r.TriplePct/100)

	if xbh := dbl + tpl; xbh > hits && xbh > 0 {
		scale := hits / xbh
		dbl *= scale
		tpl *= scale
	}
	single := hits - dbl - tpl

	w := p.WOBA
	return w.BB*bb + w.Single*single + w.Double*dbl + w.Triple*tpl + w.HR*hr
}

// PitcherWAR converts a FIP and a workload into wins above replacement.
func PitcherWAR(p Params, fip float64, role string, ip float64) float64 {
	repl, ok := p.ReplacementFIP[role]
	if !ok {
		repl = p.ReplacementFIP[models.RoleStarter]
	}
	return (repl - fip) / p.RunsPerWin * ip / 9.0
}

// BatterWAR converts a wOBA and plate appearances into wins above
// replacement.
func BatterWAR(p Params, woba, pa float64) float64 {
	runsPerPA := (woba - p.ReplacementWOBA) / p.WOBAScale
	return runsPerPA * pa / p.RunsPerWin
}

// ProjectPitcherIP projects next-season innings: a durability-driven base
// scaled by injury proneness and by skill (better run prevention earns a
// longer leash), blended toward the player's own recent workload once a
// real MLB track record exists. peak skips the history blend.
func ProjectPitcherIP(p Params, role string, scout *models.ScoutingProfile, fip, careerIP float64, recent [3]float64, peak bool) float64 {
	pt := p.PT

	durability := 50.0
	injury := models.InjuryNormal
	if scout != nil {
		durability = scout.Durability
		injury = scout.InjuryProne
	}

	base := pt.BaseSP + (durability-50)*pt.SlopeSP
	if role == models.RoleReliever {
		base = pt.BaseRP + (durability-50)*pt.SlopeRP
	}

	injMult := pt.InjuryNormal
	switch injury {
	case models.InjuryDurable:
		injMult = pt.InjuryDurable
	case models.InjuryFragile:
		injMult = pt.InjuryFragile
	}

	lgFIP := FIP(p, p.LeaguePitch(role).K9, p.LeaguePitch(role).BB9, p.LeaguePitch(role).HR9)
	skillMult := clamp(1+(lgFIP-fip)*pt.SkillSlope, pt.SkillMin, pt.SkillMax)

	proj := base * injMult * skillMult

	if !peak && careerIP >= pt.VetCareerIP {
		if hist, ok := recentWorkload(recent); ok {
			proj = (1-pt.HistoryShare)*proj + pt.HistoryShare*hist
		}
	}

	if role == models.RoleReliever {
		return clamp(proj, pt.MinIPRP, pt.MaxIPRP)
	}
	return clamp(proj, pt.MinIPSP, pt.MaxIPSP)
}

// recentWorkload condenses the newest two nonzero workload slots into one
// figure, weighting the newer season double.
func recentWorkload(recent [3]float64) (float64, bool) {
	var vals []float64
	for _, ip := range recent {
		if ip > 0 {
			vals = append(vals, ip)
		}
		if len(vals) == 2 {
			break
		}
	}
	switch len(vals) {
	case 0:
		return 0, false
	case 1:
		return vals[0], true
	default:
		return (2*vals[0] + vals[1]) / 3, true
	}
}

// ProjectBatterPA projects plate appearances by reading the pooled
// qualifying-season PA distribution at an injury-keyed percentile.
func ProjectBatterPA(p Params, scout *models.ScoutingProfile, qualPA *ReferenceDistribution) float64 {
	pt := p.PT

	pct := pt.PANormalPct
	if scout != nil {
		switch scout.InjuryProne {
		case models.InjuryDurable:
			pct = pt.PADurablePct
		case models.InjuryFragile:
			pct = pt.PAFragilePct
		}
	}

	pa := (pt.MinPA + pt.MaxPA) / 2
	if qualPA != nil && qualPA.N() > 0 {
		pa = qualPA.ValueAtPercentile(pct)
	}
	return clamp(pa, pt.MinPA, pt.MaxPA)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
