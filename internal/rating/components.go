package rating

import (
	"github.com/dugoutlabs/ratings-api/internal/models"
)

// Component identifies one rated skill. Each component maps a scouting
// grade to an observable stat rate: pitching rates are per nine innings,
// batting rates are percentages of plate appearances.
type Component int

const (
	CompK9 Component = iota
	CompBB9
	CompHR9
	CompKPct
	CompBBPct
	CompHRPct
	CompHitPct
	CompGapPct
	CompTriplePct

	numComponents
)

// componentInfo is the static descriptor behind a Component. stab is the
// blend stabilization threshold in the class's sample unit (IP or PA);
// ratio converts tier-offset units (FIP or wOBA points) into the
// component's rate units; min/max bound plausible rate values.
type componentInfo struct {
	skill        string // scouting vocabulary, used in rating output
	metric       string // stat vocabulary, used for distributions
	class        string
	higherBetter bool
	stab         float64
	ratio        float64
	min, max     float64
}

var componentTable = [numComponents]componentInfo{
	CompK9:        {"stuff", "k9", models.ClassPitcher, true, 70, 1.40, 2.0, 17.0},
	CompBB9:       {"control", "bb9", models.ClassPitcher, false, 120, 0.90, 0.3, 9.0},
	CompHR9:       {"movement", "hr9", models.ClassPitcher, false, 380, 0.28, 0.05, 3.5},
	CompKPct:      {"avoid_k", "kpct", models.ClassBatter, false, 60, 30.0, 5.0, 45.0},
	CompBBPct:     {"eye", "bbpct", models.ClassBatter, true, 120, 18.0, 0.0, 25.0},
	CompHRPct:     {"power", "hrpct", models.ClassBatter, true, 170, 9.0, 0.0, 9.0},
	CompHitPct:    {"contact", "hitpct", models.ClassBatter, true, 400, 14.0, 8.0, 35.0},
	CompGapPct:    {"gap", "gappct", models.ClassBatter, true, 250, 5.0, 0.5, 10.0},
	CompTriplePct: {"speed", "triplepct", models.ClassBatter, true, 600, 0.8, 0.0, 3.0},
}

// PitcherComponents and BatterComponents list each class's components in
// output order.
var (
	PitcherComponents = []Component{CompK9, CompBB9, CompHR9}
	BatterComponents  = []Component{CompKPct, CompBBPct, CompHRPct, CompHitPct, CompGapPct, CompTriplePct}
)

// ComponentsFor returns the component list for a player class.
func ComponentsFor(class string) []Component {
	if class == models.ClassPitcher {
		return PitcherComponents
	}
	return BatterComponents
}

// Skill returns the scouting-vocabulary name ("stuff", "eye", ...).
func (c Component) Skill() string { return componentTable[c].skill }

// Metric returns the stat-vocabulary name ("k9", "bbpct", ...).
func (c Component) Metric() string { return componentTable[c].metric }

// Class returns the player class the component belongs to.
func (c Component) Class() string { return componentTable[c].class }

// HigherIsBetter reports the direction of the component's rate.
func (c Component) HigherIsBetter() bool { return componentTable[c].higherBetter }

// Stabilization returns the blend stabilization threshold (IP or PA).
func (c Component) Stabilization() float64 { return componentTable[c].stab }

// offsetRatio converts tier-offset units into the component's rate units.
func (c Component) offsetRatio() float64 { return componentTable[c].ratio }

// ClampRate forces a rate into the component's plausible bounds.
func (c Component) ClampRate(v float64) float64 {
	info := componentTable[c]
	if v < info.min {
		return info.min
	}
	if v > info.max {
		return info.max
	}
	return v
}

// ComponentByMetric resolves a stat-vocabulary name back to a Component.
func ComponentByMetric(metric string) (Component, bool) {
	for c := Component(0); c < numComponents; c++ {
		if componentTable[c].metric == metric {
			return c, true
		}
	}
	return 0, false
}

// SeasonStat extracts the component's counting stat and sample from one
// season line, for callers that pool rates across players rather than
// across a player's years.
func (c Component) SeasonStat(line *models.SeasonStatLine) (stat, sample float64) {
	if componentTable[c].class == models.ClassPitcher {
		return c.stat(line), float64(line.IP)
	}
	return c.stat(line), float64(line.PA)
}

// RateScale is the per-sample multiplier turning stat/sample into the
// component's rate unit: per nine innings, or percent of plate
// appearances.
func (c Component) RateScale() float64 {
	if componentTable[c].class == models.ClassPitcher {
		return 9.0
	}
	return 100.0
}

// stat pulls the component's counting stat off a season line.
func (c Component) stat(line *models.SeasonStatLine) float64 {
	switch c {
	case CompK9:
		return float64(line.PitchSO)
	case CompBB9:
		return float64(line.PitchBB)
	case CompHR9:
		return float64(line.PitchHR)
	case CompKPct:
		return float64(line.SO)
	case CompBBPct:
		return float64(line.BB)
	case CompHRPct:
		return float64(line.HR)
	case CompHitPct:
		return float64(line.Hits) - float64(line.HR)
	case CompGapPct:
		return float64(line.Doubles)
	case CompTriplePct:
		return float64(line.Triples)
	}
	return 0
}

// rate converts a season line into the component's rate and sample. A zero
// sample yields (0, 0) and the season contributes nothing downstream.
func (c Component) rate(line *models.SeasonStatLine) (rate, sample float64) {
	if componentTable[c].class == models.ClassPitcher {
		ip := float64(line.IP)
		if ip <= 0 {
			return 0, 0
		}
		return c.stat(line) / ip * 9.0, ip
	}
	pa := float64(line.PA)
	if pa <= 0 {
		return 0, 0
	}
	return c.stat(line) / pa * 100.0, pa
}

// grade picks the component's grade pair off a scouting profile.
func (c Component) grade(p *models.ScoutingProfile) models.Grade {
	switch c {
	case CompK9:
		return p.Stuff
	case CompBB9:
		return p.Control
	case CompHR9:
		return p.Movement
	case CompKPct:
		return p.AvoidK
	case CompBBPct:
		return p.Eye
	case CompHRPct:
		return p.Power
	case CompHitPct:
		return p.Contact
	case CompGapPct:
		return p.GapPower
	case CompTriplePct:
		return p.Speed
	}
	return models.Grade{}
}
