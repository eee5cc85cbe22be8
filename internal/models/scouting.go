package models

import "time"

// Injury proneness categories carried on scouting reports.
const (
	InjuryDurable = "durable"
	InjuryNormal  = "normal"
	InjuryFragile = "fragile"
)

// Grade is a 20-80 scale scouting grade pair. Now is present ability,
// Potential the projected peak.
type Grade struct {
	Now       float64 `json:"now"`
	Potential float64 `json:"potential"`
}

// ScoutingProfile is the latest grade sheet for a player from one source.
// Pitching and batting grade sets coexist; which applies depends on the
// player's class. Grades arrive on the 20-80 scale and are clamped to it
// when scanned out of storage.
type ScoutingProfile struct {
	PlayerID   string    `json:"player_id"`
	Source     string    `json:"source"`
	ReportDate time.Time `json:"report_date"`

	// Pitching
	Stuff    Grade `json:"stuff,omitempty"`
	Movement Grade `json:"movement,omitempty"`
	Control  Grade `json:"control,omitempty"`

	// Batting
	Contact  Grade `json:"contact,omitempty"`
	GapPower Grade `json:"gap_power,omitempty"`
	Power    Grade `json:"power,omitempty"`
	Eye      Grade `json:"eye,omitempty"`
	AvoidK   Grade `json:"avoid_k,omitempty"`
	Speed    Grade `json:"speed,omitempty"`

	Durability  float64 `json:"durability"`
	InjuryProne string  `json:"injury_prone"`
}

// ClampGrades forces every grade onto the 20-80 scale in place. Out of
// range values come from hand-edited CSVs, not the sim.
func (p *ScoutingProfile) ClampGrades() {
	for _, g := range []*Grade{
		&p.Stuff, &p.Movement, &p.Control,
		&p.Contact, &p.GapPower, &p.Power, &p.Eye, &p.AvoidK, &p.Speed,
	} {
		g.Now = clampGrade(g.Now)
		g.Potential = clampGrade(g.Potential)
	}
	p.Durability = clampGrade(p.Durability)
	switch p.InjuryProne {
	case InjuryDurable, InjuryNormal, InjuryFragile:
	default:
		p.InjuryProne = InjuryNormal
	}
}

func clampGrade(g float64) float64 {
	if g < 20 {
		return 20
	}
	if g > 80 {
		return 80
	}
	return g
}
