package rating

// PitchLeague holds league-average pitching rates for one role.
type PitchLeague struct {
	K9  float64
	BB9 float64
	HR9 float64
}

// BatLeague holds league-average batting rates (percent of PA).
type BatLeague struct {
	KPct      float64
	BBPct     float64
	HRPct     float64
	HitPct    float64
	GapPct    float64
	TriplePct float64
}

// WOBAWeights are the linear weights applied to per-PA event fractions.
type WOBAWeights struct {
	BB     float64
	Single float64
	Double float64
	Triple float64
	HR     float64
}

// ConvParams maps a 20-80 scouting grade onto a stat rate around the
// league average: rate = league + (grade-50)*Slope, with SlopeHigh taking
// over above grade 50 when the curve bends, and Floor bounding the result.
// Slopes are negative-direction for lower-is-better components by sign of
// use, not of the constant.
type ConvParams struct {
	Slope     float64
	SlopeHigh float64 // 0 means single segment
	Floor     float64
}

// PlayingTime holds the playing-time projection constants.
type PlayingTime struct {
	BaseSP  float64
	SlopeSP float64
	BaseRP  float64
	SlopeRP float64

	InjuryDurable float64
	InjuryNormal  float64
	InjuryFragile float64

	SkillSlope float64
	SkillMin   float64
	SkillMax   float64

	// Veterans blend the model toward their own recent workload.
	HistoryShare float64
	VetCareerIP  float64

	MinIPSP float64
	MaxIPSP float64
	MinIPRP float64
	MaxIPRP float64

	// Batters: percentile points into the qualifying-PA distribution.
	PADurablePct float64
	PANormalPct  float64
	PAFragilePct float64
	MinPA        float64
	MaxPA        float64
}

// Cohorts holds the reference-cohort definitions the normalizer assumes.
type Cohorts struct {
	PeakAgeMin     int
	PeakAgeMax     int
	SeasonsBack    int
	MinIPSeason    float64
	MinPASeason    float64
	ProspectMaxAge int
	ProspectBack   int
	ProspectMinIP  float64
	ProspectMinPA  float64
	QualPAFloor    float64
}

// Params is one immutable formula revision: every constant and table the
// pipeline uses. Values are passed by copy; the contained tables are never
// mutated after construction.
type Params struct {
	Revision string

	LeagueSP  PitchLeague
	LeagueRP  PitchLeague
	LeagueBat BatLeague

	FIPConstant     float64
	WOBA            WOBAWeights
	WOBAScale       float64
	RunsPerWin      float64
	ReplacementFIP  map[string]float64 // by role
	ReplacementWOBA float64

	// Year weights by season stage, current year first, summing to 10.
	StageWeights [numStages][4]float64

	// Minor-league sample weights by level, top level first.
	LevelWeights map[string]float64

	PitchTierOffsets Table
	BatTierOffsets   Table
	PitchStrength    Table
	BatStrength      Table
	StarBreaks       Table

	Conversion [numComponents]ConvParams

	CeilingBoost float64

	ConfidenceIPScale float64
	ConfidencePAScale float64

	StarterIPThreshold float64

	PT PlayingTime

	Cohort Cohorts

	// Development-curve resolution.
	DevSensitivityGrade float64
	DevSensitivityStars float64
	DevObservedFloor    float64

	GradeMin float64
	GradeMax float64
	StarMin  float64
	StarMax  float64
}

// LeaguePitch returns the league rates for a pitching role.
func (p Params) LeaguePitch(role string) PitchLeague {
	if role == "rp" {
		return p.LeagueRP
	}
	return p.LeagueSP
}

// leagueRate returns the league-average rate for a component under a role.
func (p Params) leagueRate(c Component, role string) float64 {
	switch c {
	case CompK9:
		return p.LeaguePitch(role).K9
	case CompBB9:
		return p.LeaguePitch(role).BB9
	case CompHR9:
		return p.LeaguePitch(role).HR9
	case CompKPct:
		return p.LeagueBat.KPct
	case CompBBPct:
		return p.LeagueBat.BBPct
	case CompHRPct:
		return p.LeagueBat.HRPct
	case CompHitPct:
		return p.LeagueBat.HitPct
	case CompGapPct:
		return p.LeagueBat.GapPct
	case CompTriplePct:
		return p.LeagueBat.TriplePct
	}
	return 0
}

// rev2026a is the current formula revision.
var rev2026a = Params{
	Revision: "2026a",

	LeagueSP:  PitchLeague{K9: 8.2, BB9: 3.1, HR9: 1.25},
	LeagueRP:  PitchLeague{K9: 9.1, BB9: 3.5, HR9: 1.15},
	LeagueBat: BatLeague{KPct: 22.0, BBPct: 8.5, HRPct: 3.1, HitPct: 20.5, GapPct: 4.5, TriplePct: 0.40},

	FIPConstant:     3.15,
	WOBA:            WOBAWeights{BB: 0.69, Single: 0.89, Double: 1.27, Triple: 1.62, HR: 2.10},
	WOBAScale:       1.15,
	RunsPerWin:      9.0,
	ReplacementFIP:  map[string]float64{"sp": 5.20, "rp": 4.40},
	ReplacementWOBA: 0.294,

	StageWeights: [numStages][4]float64{
		StagePreseason: {0, 5, 3, 2},
		StageEarly:     {2, 4, 3, 1},
		StageMid:       {3, 4, 2, 1},
		StageLate:      {4, 3, 2, 1},
		StageComplete:  {5, 3, 2, 0},
	},

	LevelWeights: map[string]float64{
		"aaa": 1.0, "aa": 0.8, "hia": 0.6, "a": 0.4, "rk": 0.2,
	},

	PitchTierOffsets: NewTable(PolicyInterpolate,
		Breakpoint{2.80, -0.55},
		Breakpoint{3.30, -0.30},
		Breakpoint{3.80, -0.12},
		Breakpoint{4.20, 0.00},
		Breakpoint{4.70, 0.20},
		Breakpoint{5.30, 0.45},
	),
	BatTierOffsets: NewTable(PolicyInterpolate,
		Breakpoint{0.270, 0.022},
		Breakpoint{0.295, 0.010},
		Breakpoint{0.315, 0.000},
		Breakpoint{0.330, -0.005},
		Breakpoint{0.355, -0.014},
		Breakpoint{0.380, -0.024},
	),
	PitchStrength: NewTable(PolicyStepCeil,
		Breakpoint{3.20, 0.70},
		Breakpoint{3.80, 0.85},
		Breakpoint{4.40, 1.00},
		Breakpoint{5.00, 1.15},
		Breakpoint{6.00, 1.30},
	),
	BatStrength: NewTable(PolicyStepCeil,
		Breakpoint{0.280, 1.30},
		Breakpoint{0.305, 1.15},
		Breakpoint{0.330, 1.00},
		Breakpoint{0.355, 0.85},
		Breakpoint{0.420, 0.70},
	),
	StarBreaks: NewTable(PolicyStepFloor,
		Breakpoint{0, 0.5},
		Breakpoint{6, 1.0},
		Breakpoint{14, 1.5},
		Breakpoint{26, 2.0},
		Breakpoint{42, 2.5},
		Breakpoint{58, 3.0},
		Breakpoint{74, 3.5},
		Breakpoint{85, 4.0},
		Breakpoint{92, 4.5},
		Breakpoint{97, 5.0},
	),

	Conversion: [numComponents]ConvParams{
		CompK9:        {Slope: 0.110},
		CompBB9:       {Slope: 0.055, Floor: 0.8},
		CompHR9:       {Slope: 0.028, SlopeHigh: 0.018, Floor: 0.25},
		CompKPct:      {Slope: 0.300, Floor: 6.0},
		CompBBPct:     {Slope: 0.145, Floor: 1.5},
		CompHRPct:     {Slope: 0.065, SlopeHigh: 0.115, Floor: 0.2},
		CompHitPct:    {Slope: 0.150, Floor: 8.0},
		CompGapPct:    {Slope: 0.055, Floor: 0.5},
		CompTriplePct: {Slope: 0.016, Floor: 0.02},
	},

	CeilingBoost: 1.15,

	ConfidenceIPScale: 100,
	ConfidencePAScale: 500,

	StarterIPThreshold: 250,

	PT: PlayingTime{
		BaseSP: 165, SlopeSP: 1.5,
		BaseRP: 62, SlopeRP: 0.7,
		InjuryDurable: 1.08, InjuryNormal: 1.00, InjuryFragile: 0.85,
		SkillSlope: 0.03, SkillMin: 0.90, SkillMax: 1.10,
		HistoryShare: 0.65, VetCareerIP: 120,
		MinIPSP: 120, MaxIPSP: 260,
		MinIPRP: 40, MaxIPRP: 95,
		PADurablePct: 72, PANormalPct: 55, PAFragilePct: 30,
		MinPA: 250, MaxPA: 690,
	},

	Cohort: Cohorts{
		PeakAgeMin: 25, PeakAgeMax: 29,
		SeasonsBack: 6,
		MinIPSeason: 50, MinPASeason: 200,
		ProspectMaxAge: 23, ProspectBack: 2,
		ProspectMinIP: 40, ProspectMinPA: 150,
		QualPAFloor: 450,
	},

	DevSensitivityGrade: 25,
	DevSensitivityStars: 2.2,
	DevObservedFloor:    10,

	GradeMin: 20, GradeMax: 80,
	StarMin: 0.5, StarMax: 5.0,
}

// Revisions holds every named formula revision by name. Older revisions
// stay available so historical ratings can be reproduced.
var Revisions = map[string]Params{
	"2025a": rev2025a,
	"2026a": rev2026a,
}

// LatestRevision names the default Params.
const LatestRevision = "2026a"

// ParamsFor looks up a revision by name.
func ParamsFor(revision string) (Params, bool) {
	p, ok := Revisions[revision]
	return p, ok
}

// DefaultParams returns the latest revision.
func DefaultParams() Params {
	return Revisions[LatestRevision]
}

// rev2025a is the prior revision: flat scouting conversions (no second
// segment) and a smaller ceiling boost.
var rev2025a = func() Params {
	p := rev2026a
	p.Revision = "2025a"
	p.CeilingBoost = 1.10
	p.Conversion[CompHR9] = ConvParams{Slope: 0.024, Floor: 0.25}
	p.Conversion[CompHRPct] = ConvParams{Slope: 0.090, Floor: 0.2}
	p.DevSensitivityGrade = 20
	return p
}()
