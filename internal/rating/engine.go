package rating

import (
	"math"
	"time"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// Mode selects which rating a computation produces.
type Mode string

const (
	ModeTR  Mode = models.ModeTR
	ModeTFR Mode = models.ModeTFR
)

// Input is everything one rating computation needs. The caller assembles
// it from storage; the engine itself performs no I/O.
type Input struct {
	PlayerID   string
	PlayerName string
	Class      string
	RoleHint   string // from the roster position, used when the stat window is empty
	Age        int
	AsOfYear   int
	Stage      Stage
	Mode       Mode

	MLBSeasons   []models.SeasonStatLine
	MinorSeasons []models.SeasonStatLine
	CareerMLBIP  float64
	CareerMLBPA  float64

	Scouting *models.ScoutingProfile

	Dists DistributionSet

	Trace *Trace
}

// Engine computes ratings under one immutable formula revision.
type Engine struct {
	params Params
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine bound to a formula revision.
func NewEngine(params Params, opts ...Option) *Engine {
	e := &Engine{params: params, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Params exposes the engine's revision constants.
func (e *Engine) Params() Params { return e.params }

// ComputeRating runs the full pipeline for one player and mode.
func (e *Engine) ComputeRating(in Input) (*models.RatingResult, error) {
	p := e.params

	switch in.Mode {
	case ModeTR, ModeTFR:
	default:
		return nil, ErrUnknownMode
	}
	if in.Class != models.ClassPitcher && in.Class != models.ClassBatter {
		return nil, ErrUnknownClass
	}
	if in.Age <= 0 {
		return nil, &MissingDataError{PlayerID: in.PlayerID, What: "age"}
	}

	agg := AggregateSeasons(p, in.Class, in.MLBSeasons, in.AsOfYear, in.Stage, false)
	minors := AggregateSeasons(p, in.Class, in.MinorSeasons, in.AsOfYear, in.Stage, true)
	comps := ComponentsFor(in.Class)

	// Every same-class component shares the season denominators, so one
	// effective sample describes them all.
	sample := agg.Sample(comps[0])
	minorSample := minors.Sample(comps[0])

	if sample == 0 && minorSample == 0 && in.Scouting == nil {
		return nil, &MissingDataError{PlayerID: in.PlayerID, What: "observed statistics or scouting profile"}
	}

	role := e.resolveRole(in, &agg)
	tier := TierEstimate(p, in.Class, role, &agg)
	in.Trace.add("aggregate", "", "effective_sample", sample)
	in.Trace.add("aggregate", "", "minors_sample", minorSample)
	in.Trace.add("regress", "", "tier", tier)

	var regressed [numComponents]float64
	for _, c := range comps {
		if !agg.Has(c) {
			continue
		}
		in.Trace.add("aggregate", c.Metric(), "raw", agg.Rate(c))
		regressed[c] = RegressComponent(p, c, role, agg.Rate(c), agg.Sample(c), tier)
		in.Trace.add("regress", c.Metric(), "regressed", regressed[c])
	}

	switch in.Mode {
	case ModeTFR:
		return e.computeFuture(in, role, sample)
	default:
		return e.computeCurrent(in, role, &agg, &minors, regressed, sample, minorSample)
	}
}

// resolveRole classifies the pitching role from the stat window, falling
// back to the roster hint when the window is too thin to say.
func (e *Engine) resolveRole(in Input, agg *Aggregate) string {
	if in.Class == models.ClassBatter {
		return models.RoleBatter
	}
	if agg.WindowIP < 30 && (in.RoleHint == models.RoleStarter || in.RoleHint == models.RoleReliever) {
		return in.RoleHint
	}
	return ClassifyRole(e.params, in.Class, agg)
}

// peakOutcome carries the future-path intermediates the current path
// reuses for development-curve resolution.
type peakOutcome struct {
	rates    [numComponents]float64
	grades   [numComponents]float64
	pcts     [numComponents]float64
	metric   float64 // peak FIP or wOBA
	war      float64
	pt       float64
	stars    float64
	starsPct float64
}

func (e *Engine) computePeak(in Input, role string) (*peakOutcome, error) {
	p := e.params
	if in.Scouting == nil {
		return nil, &MissingDataError{PlayerID: in.PlayerID, What: "scouting profile"}
	}

	out := &peakOutcome{}
	comps := ComponentsFor(in.Class)

	for _, c := range comps {
		g := c.grade(in.Scouting).Potential
		out.rates[c] = c.ClampRate(PeakRate(p, c, role, g))
		in.Trace.add("peak", c.Metric(), "rate", out.rates[c])

		dist, ok := in.Dists.Get(c.Metric(), CohortMLBPeak)
		if !ok || dist.N() == 0 {
			return nil, &MissingDataError{PlayerID: in.PlayerID, What: "reference distribution " + c.Metric() + "/" + CohortMLBPeak}
		}
		pct, err := dist.Percentile(out.rates[c], c.HigherIsBetter())
		if err != nil {
			return nil, err
		}
		out.pcts[c] = pct
		out.grades[c] = GradeFromPercentile(p, pct)
		in.Trace.add("normalize", c.Metric(), "peak_percentile", pct)
		in.Trace.add("normalize", c.Metric(), "peak_grade", out.grades[c])
	}

	warMetric := MetricPitchWAR
	if in.Class == models.ClassPitcher {
		out.metric = FIP(p, out.rates[CompK9], out.rates[CompBB9], out.rates[CompHR9])
		out.pt = ProjectPitcherIP(p, role, in.Scouting, out.metric, in.CareerMLBIP, [3]float64{}, true)
		out.war = PitcherWAR(p, out.metric, role, out.pt)
	} else {
		warMetric = MetricBatWAR
		out.metric = WOBA(p, batRatesFrom(out.rates))
		qual, _ := in.Dists.Get(MetricQualPA, CohortQualPA)
		out.pt = ProjectBatterPA(p, in.Scouting, qual)
		out.war = BatterWAR(p, out.metric, out.pt)
	}
	in.Trace.add("outcome", "", "peak_metric", out.metric)
	in.Trace.add("outcome", "", "peak_pt", out.pt)
	in.Trace.add("outcome", "", "peak_war", out.war)

	warDist, ok := in.Dists.Get(warMetric, CohortMLBPeak)
	if !ok || warDist.N() == 0 {
		return nil, &MissingDataError{PlayerID: in.PlayerID, What: "reference distribution " + warMetric + "/" + CohortMLBPeak}
	}
	pct, err := warDist.Percentile(out.war, true)
	if err != nil {
		return nil, err
	}
	out.starsPct = pct
	out.stars = StarsFromPercentile(p, pct)
	in.Trace.add("normalize", "", "peak_war_percentile", pct)
	in.Trace.add("normalize", "", "peak_stars", out.stars)
	return out, nil
}

func (e *Engine) computeFuture(in Input, role string, sample float64) (*models.RatingResult, error) {
	peak, err := e.computePeak(in, role)
	if err != nil {
		return nil, err
	}

	res := e.newResult(in, role, sample)
	comps := ComponentsFor(in.Class)
	for _, c := range comps {
		res.Components = append(res.Components, models.ComponentRating{
			Name:       c.Skill(),
			Grade:      round1(peak.grades[c]),
			Rate:       round2(peak.rates[c]),
			Percentile: round1(peak.pcts[c]),
		})
	}
	res.Overall = peak.stars
	res.OverallPercentile = round1(peak.starsPct)
	e.fillMetrics(res, in.Class, peak.metric, peak.war, peak.pt)
	return res, nil
}

func (e *Engine) computeCurrent(in Input, role string, agg, minors *Aggregate, regressed [numComponents]float64, sample, minorSample float64) (*models.RatingResult, error) {
	p := e.params
	comps := ComponentsFor(in.Class)

	if in.Scouting == nil && sample == 0 {
		return nil, &MissingDataError{PlayerID: in.PlayerID, What: "major league sample or scouting profile"}
	}

	// Blended current rates: observed stats shrunk into the regression
	// output, scouting filling the rest of the weight.
	var blended [numComponents]float64
	for _, c := range comps {
		switch {
		case agg.Has(c) && in.Scouting != nil:
			blended[c] = BlendCurrent(p, c, role, regressed[c], agg.Sample(c), c.grade(in.Scouting).Now, true)
		case agg.Has(c):
			blended[c] = regressed[c]
		default:
			blended[c] = ScoutRate(p, c, role, c.grade(in.Scouting).Now)
		}
		blended[c] = c.ClampRate(blended[c])
		in.Trace.add("blend", c.Metric(), "blended", blended[c])
	}

	// Current outcome metrics.
	var metric, pt, war float64
	if in.Class == models.ClassPitcher {
		metric = FIP(p, blended[CompK9], blended[CompBB9], blended[CompHR9])
		pt = ProjectPitcherIP(p, role, in.Scouting, metric, in.CareerMLBIP, agg.RecentIP, false)
		war = PitcherWAR(p, metric, role, pt)
	} else {
		metric = WOBA(p, batRatesFrom(blended))
		qual, _ := in.Dists.Get(MetricQualPA, CohortQualPA)
		pt = ProjectBatterPA(p, in.Scouting, qual)
		war = BatterWAR(p, metric, pt)
	}
	in.Trace.add("outcome", "", "metric", metric)
	in.Trace.add("outcome", "", "projected_pt", pt)
	in.Trace.add("outcome", "", "war", war)

	res := e.newResult(in, role, sample)
	cohort := e.currentCohort(in)

	if in.Scouting != nil {
		// Development-curve path: walk the future rating back to now.
		peak, err := e.computePeak(in, role)
		if err != nil {
			return nil, err
		}

		for _, c := range comps {
			actual, devSample := e.observedFor(c, agg, minors, sample, minorSample, blended[c])
			curve := CurveFor(c).BucketFor(peak.rates[c])
			grade := ResolveDevelopment(DevInput{
				Curve:        curve,
				TFR:          peak.grades[c],
				ScaleMin:     p.GradeMin,
				Age:          float64(in.Age),
				HigherBetter: c.HigherIsBetter(),
				Actual:       actual,
				Sample:       devSample,
				Stab:         c.Stabilization(),
				Sensitivity:  p.DevSensitivityGrade,
			})
			in.Trace.add("develop", c.Metric(), "grade", grade)

			pct := e.informationalPct(in, c, blended[c], cohort)
			res.Components = append(res.Components, models.ComponentRating{
				Name:       c.Skill(),
				Grade:      round1(grade),
				Rate:       round2(blended[c]),
				Percentile: round1(pct),
			})
		}

		compositeActual := math.NaN()
		compositeSample := 0.0
		if sample >= p.DevObservedFloor {
			compositeActual, compositeSample = metric, sample
		} else if minorSample >= p.DevObservedFloor {
			compositeActual = TierEstimate(p, in.Class, role, minors)
			compositeSample = minorSample
		}
		compositeStab := p.ConfidenceIPScale
		higher := false
		if in.Class == models.ClassBatter {
			compositeStab = p.ConfidencePAScale
			higher = true
		}
		res.Overall = snapHalf(ResolveDevelopment(DevInput{
			Curve:        CompositeCurve(in.Class).BucketFor(peak.metric),
			TFR:          peak.stars,
			ScaleMin:     p.StarMin,
			Age:          float64(in.Age),
			HigherBetter: higher,
			Actual:       compositeActual,
			Sample:       compositeSample,
			Stab:         compositeStab,
			Sensitivity:  p.DevSensitivityStars,
		}))
		in.Trace.add("develop", "", "stars", res.Overall)
	} else {
		// No grade sheet: a pure stats rating from the percentile map.
		for _, c := range comps {
			pct := e.informationalPct(in, c, blended[c], cohort)
			res.Components = append(res.Components, models.ComponentRating{
				Name:       c.Skill(),
				Grade:      round1(GradeFromPercentile(p, pct)),
				Rate:       round2(blended[c]),
				Percentile: round1(pct),
			})
		}
		res.Overall = 0 // set below from the WAR percentile
	}

	warMetric := MetricPitchWAR
	if in.Class == models.ClassBatter {
		warMetric = MetricBatWAR
	}
	if warDist, ok := in.Dists.Get(warMetric, CohortMLBPeak); ok {
		if pct, err := warDist.Percentile(war, true); err == nil {
			res.OverallPercentile = round1(pct)
			if in.Scouting == nil {
				res.Overall = StarsFromPercentile(p, pct)
			}
		}
	}

	e.fillMetrics(res, in.Class, metric, war, pt)
	return res, nil
}

// observedFor picks the development-curve observed rate: the MLB blend
// when enough MLB sample exists, the minors aggregate next, NaN when
// neither qualifies.
func (e *Engine) observedFor(c Component, agg, minors *Aggregate, sample, minorSample, blended float64) (float64, float64) {
	floor := e.params.DevObservedFloor
	if sample >= floor && agg.Has(c) {
		return blended, sample
	}
	if minorSample >= floor && minors.Has(c) {
		return minors.Rate(c), minorSample
	}
	return math.NaN(), 0
}

// currentCohort picks the comparison pool for informational percentiles:
// prospects who have never seen MLB compare against fellow prospects.
func (e *Engine) currentCohort(in Input) string {
	p := e.params
	if in.Class == models.ClassPitcher && in.CareerMLBIP == 0 && in.Age <= p.Cohort.ProspectMaxAge {
		return CohortProspectPool
	}
	if in.Class == models.ClassBatter && in.CareerMLBPA == 0 && in.Age <= p.Cohort.ProspectMaxAge {
		return CohortProspectPool
	}
	return CohortMLBPeak
}

func (e *Engine) informationalPct(in Input, c Component, rate float64, cohort string) float64 {
	dist, ok := in.Dists.Get(c.Metric(), cohort)
	if !ok && cohort != CohortMLBPeak {
		dist, ok = in.Dists.Get(c.Metric(), CohortMLBPeak)
	}
	if !ok {
		return 0
	}
	pct, err := dist.Percentile(rate, c.HigherIsBetter())
	if err != nil {
		return 0
	}
	return pct
}

func (e *Engine) newResult(in Input, role string, sample float64) *models.RatingResult {
	res := &models.RatingResult{
		PlayerID:   in.PlayerID,
		PlayerName: in.PlayerName,
		Class:      in.Class,
		Role:       role,
		Age:        in.Age,
		AsOfYear:   in.AsOfYear,
		Stage:      in.Stage.String(),
		Mode:       string(in.Mode),
		Revision:   e.params.Revision,
		ComputedAt: e.now().UTC(),
	}
	if in.Class == models.ClassPitcher {
		res.Sample.EffectiveIP = round1(sample)
	} else {
		res.Sample.EffectivePA = round1(sample)
	}
	res.Sample.Confidence = round2(Confidence(e.params, in.Class, sample))
	return res
}

func (e *Engine) fillMetrics(res *models.RatingResult, class string, metric, war, pt float64) {
	res.Metrics.WAR = round2(war)
	if class == models.ClassPitcher {
		res.Metrics.FIP = round2(metric)
		res.Metrics.ProjectedIP = round1(pt)
	} else {
		res.Metrics.WOBA = round3(metric)
		res.Metrics.ProjectedPA = round1(pt)
	}
}

func batRatesFrom(rates [numComponents]float64) BatRates {
	return BatRates{
		KPct:      rates[CompKPct],
		BBPct:     rates[CompBBPct],
		HRPct:     rates[CompHRPct],
		HitPct:    rates[CompHitPct],
		GapPct:    rates[CompGapPct],
		TriplePct: rates[CompTriplePct],
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// snapHalf rounds onto the half-star display scale. Snapping a value that
// is at or below a half-step ceiling stays at or below it.
func snapHalf(v float64) float64 { return math.Round(v*2) / 2 }
