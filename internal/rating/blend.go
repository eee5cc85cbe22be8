package rating

import "math"

// ScoutRate converts a 20-80 grade into the component's expected stat
// rate. The slope runs away from league average in the good direction;
// components with a second segment bend at grade 50. Floors keep extreme
// grades from projecting impossible rates.
func ScoutRate(p Params, c Component, role string, grade float64) float64 {
	grade = clamp(grade, p.GradeMin, p.GradeMax)
	conv := p.Conversion[c]
	league := p.leagueRate(c, role)

	slope := conv.Slope
	if conv.SlopeHigh != 0 && grade > 50 {
		slope = conv.SlopeHigh
	}

	delta := (grade - 50) * slope
	var rate float64
	if c.HigherIsBetter() {
		rate = league + delta
	} else {
		rate = league - delta
	}
	return math.Max(conv.Floor, rate)
}

// StatsWeight is the share of the blend carried by observed stats for a
// given effective sample: sample/(sample+stabilization). It crosses one
// half exactly at the stabilization threshold.
func StatsWeight(c Component, sample float64) float64 {
	if sample <= 0 {
		return 0
	}
	return sample / (sample + c.Stabilization())
}

// BlendCurrent mixes the regressed observed rate with the current-grade
// scouting rate. hasScouting=false passes the regressed rate through
// untouched; callers guard the no-stats no-scouting case.
func BlendCurrent(p Params, c Component, role string, regressed, sample float64, scoutGrade float64, hasScouting bool) float64 {
	if !hasScouting {
		return regressed
	}
	w := StatsWeight(c, sample)
	return w*regressed + (1-w)*ScoutRate(p, c, role, scoutGrade)
}

// PeakRate projects the component rate at peak: the potential-grade
// scouting rate pushed further from league average by the ceiling boost.
// Observed stats do not enter; peak ability is not yet observable.
func PeakRate(p Params, c Component, role string, potentialGrade float64) float64 {
	league := p.leagueRate(c, role)
	scouted := ScoutRate(p, c, role, potentialGrade)
	boosted := league + (scouted-league)*p.CeilingBoost
	return math.Max(p.Conversion[c].Floor, boosted)
}
