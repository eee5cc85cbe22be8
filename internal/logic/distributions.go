package logic

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// Distribution lookup errors; handlers map them to 400s.
var (
	ErrUnknownMetric = errors.New("unknown metric")
	ErrUnknownCohort = errors.New("unknown cohort")
)

type distributionService struct {
	ch     driver.Conn
	params rating.Params

	mu   sync.RWMutex
	memo map[string]distMemo
	ttl  time.Duration
}

type distMemo struct {
	set     rating.DistributionSet
	builtAt time.Time
}

func NewDistributionService(ch driver.Conn, params rating.Params) DistributionService {
	return &distributionService{
		ch:     ch,
		params: params,
		memo:   map[string]distMemo{},
		ttl:    15 * time.Minute,
	}
}

// cohortEndYear is the newest season year a cohort may include: the
// in-progress season only counts once it is complete.
func cohortEndYear(year int, stage rating.Stage) int {
	if stage == rating.StageComplete {
		return year
	}
	return year - 1
}

func (s *distributionService) Set(ctx context.Context, year int, stage rating.Stage) (rating.DistributionSet, error) {
	end := cohortEndYear(year, stage)
	key := fmt.Sprintf("%d|%s", end, s.params.Revision)

	s.mu.RLock()
	entry, ok := s.memo[key]
	s.mu.RUnlock()
	if ok && time.Since(entry.builtAt) < s.ttl {
		return entry.set, nil
	}

	set, err := s.build(ctx, end)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.memo[key] = distMemo{set: set, builtAt: time.Now()}
	s.mu.Unlock()
	return set, nil
}

// Invalidate drops every memoized cohort so the next request rebuilds
// from storage. Call after a bulk season load.
func (s *distributionService) Invalidate() {
	s.mu.Lock()
	s.memo = map[string]distMemo{}
	s.mu.Unlock()
}

func (s *distributionService) Summary(ctx context.Context, metric, cohort string, year int, stage rating.Stage) (rating.Summary, error) {
	if !validMetric(metric) {
		return rating.Summary{}, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	switch cohort {
	case rating.CohortMLBPeak, rating.CohortProspectPool, rating.CohortQualPA:
	default:
		return rating.Summary{}, fmt.Errorf("%w: %s", ErrUnknownCohort, cohort)
	}

	set, err := s.Set(ctx, year, stage)
	if err != nil {
		return rating.Summary{}, err
	}
	d, ok := set.Get(metric, cohort)
	if !ok {
		return rating.Summary{}, fmt.Errorf("distribution %s/%s: %w", metric, cohort, ErrNotFound)
	}
	return d.Summarize(), nil
}

func validMetric(metric string) bool {
	if _, ok := rating.ComponentByMetric(metric); ok {
		return true
	}
	switch metric {
	case rating.MetricPitchWAR, rating.MetricBatWAR, rating.MetricQualPA:
		return true
	}
	return false
}

// build assembles every reference distribution from season rows ending at
// endYear. One pass per cohort per class keeps the queries simple enough
// for ClickHouse to stream.
func (s *distributionService) build(ctx context.Context, endYear int) (rating.DistributionSet, error) {
	set := rating.DistributionSet{}

	for _, class := range []string{models.ClassPitcher, models.ClassBatter} {
		if err := s.buildPeak(ctx, set, class, endYear); err != nil {
			return nil, fmt.Errorf("peak cohort %s: %w", class, err)
		}
		if err := s.buildProspect(ctx, set, class, endYear); err != nil {
			return nil, fmt.Errorf("prospect cohort %s: %w", class, err)
		}
	}
	if err := s.buildQualPA(ctx, set, endYear); err != nil {
		return nil, fmt.Errorf("qualifying pa: %w", err)
	}
	return set, nil
}

// playerPool accumulates per-player season sums for one cohort.
type playerPool struct {
	stat   map[rating.Component]float64
	sample map[rating.Component]float64

	seasons  int
	ipTotal  float64
	paTotal  float64
	started  uint32
	relieved uint32
}

func newPlayerPool() *playerPool {
	return &playerPool{
		stat:   map[rating.Component]float64{},
		sample: map[rating.Component]float64{},
	}
}

func (pp *playerPool) add(comps []rating.Component, line *models.SeasonStatLine) {
	for _, c := range comps {
		st, sm := c.SeasonStat(line)
		if sm <= 0 {
			continue
		}
		pp.stat[c] += st
		pp.sample[c] += sm
	}
	pp.seasons++
	pp.ipTotal += float64(line.IP)
	pp.paTotal += float64(line.PA)
	pp.started += line.GamesStarted
	pp.relieved += line.GamesRelieved
}

func (pp *playerPool) rate(c rating.Component) (float64, bool) {
	sm := pp.sample[c]
	if sm <= 0 {
		return 0, false
	}
	return pp.stat[c] / sm * c.RateScale(), true
}

func (s *distributionService) buildPeak(ctx context.Context, set rating.DistributionSet, class string, endYear int) error {
	co := s.params.Cohort
	startYear := endYear - co.SeasonsBack + 1

	rows, err := s.ch.Query(ctx, queryPeakCohort, class, co.PeakAgeMin, co.PeakAgeMax, startYear, endYear)
	if err != nil {
		return err
	}
	lines, err := collectSeasons(rows)
	if err != nil {
		return err
	}

	minSample := co.MinIPSeason
	if class == models.ClassBatter {
		minSample = co.MinPASeason
	}

	pools := map[string]*playerPool{}
	comps := rating.ComponentsFor(class)
	for i := range lines {
		line := &lines[i]
		if line.Sample() < minSample {
			continue
		}
		pp, ok := pools[line.PlayerID]
		if !ok {
			pp = newPlayerPool()
			pools[line.PlayerID] = pp
		}
		pp.add(comps, line)
	}

	values := map[rating.Component][]float64{}
	var wars []float64
	for _, pp := range pools {
		for _, c := range comps {
			if v, ok := pp.rate(c); ok {
				values[c] = append(values[c], v)
			}
		}
		wars = append(wars, s.poolWAR(class, comps, pp))
	}

	for _, c := range comps {
		set.Put(rating.NewDistribution(c.Metric(), rating.CohortMLBPeak, values[c]))
	}
	warMetric := rating.MetricPitchWAR
	if class == models.ClassBatter {
		warMetric = rating.MetricBatWAR
	}
	set.Put(rating.NewDistribution(warMetric, rating.CohortMLBPeak, wars))
	return nil
}

// poolWAR converts one cohort member's pooled rates into a representative
// seasonal WAR using their own average workload.
func (s *distributionService) poolWAR(class string, comps []rating.Component, pp *playerPool) float64 {
	p := s.params
	if class == models.ClassPitcher {
		k9, _ := pp.rate(rating.CompK9)
		bb9, _ := pp.rate(rating.CompBB9)
		hr9, _ := pp.rate(rating.CompHR9)
		role := models.RoleReliever
		if pp.started >= pp.relieved {
			role = models.RoleStarter
		}
		avgIP := pp.ipTotal / float64(pp.seasons)
		return rating.PitcherWAR(p, rating.FIP(p, k9, bb9, hr9), role, avgIP)
	}

	var br rating.BatRates
	br.KPct, _ = pp.rate(rating.CompKPct)
	br.BBPct, _ = pp.rate(rating.CompBBPct)
	br.HRPct, _ = pp.rate(rating.CompHRPct)
	br.HitPct, _ = pp.rate(rating.CompHitPct)
	br.GapPct, _ = pp.rate(rating.CompGapPct)
	br.TriplePct, _ = pp.rate(rating.CompTriplePct)
	avgPA := pp.paTotal / float64(pp.seasons)
	return rating.BatterWAR(p, rating.WOBA(p, br), avgPA)
}

func (s *distributionService) buildProspect(ctx context.Context, set rating.DistributionSet, class string, endYear int) error {
	co := s.params.Cohort
	startYear := endYear - co.ProspectBack + 1

	rows, err := s.ch.Query(ctx, queryProspectCohort, class, co.ProspectMaxAge, startYear, endYear)
	if err != nil {
		return err
	}
	lines, err := collectSeasons(rows)
	if err != nil {
		return err
	}

	pools := map[string]*playerPool{}
	comps := rating.ComponentsFor(class)
	for i := range lines {
		line := &lines[i]
		pp, ok := pools[line.PlayerID]
		if !ok {
			pp = newPlayerPool()
			pools[line.PlayerID] = pp
		}
		pp.add(comps, line)
	}

	minTotal := co.ProspectMinIP
	if class == models.ClassBatter {
		minTotal = co.ProspectMinPA
	}

	values := map[rating.Component][]float64{}
	for _, pp := range pools {
		total := pp.ipTotal
		if class == models.ClassBatter {
			total = pp.paTotal
		}
		if total < minTotal {
			continue
		}
		for _, c := range comps {
			if v, ok := pp.rate(c); ok {
				values[c] = append(values[c], v)
			}
		}
	}

	for _, c := range comps {
		set.Put(rating.NewDistribution(c.Metric(), rating.CohortProspectPool, values[c]))
	}
	return nil
}

func (s *distributionService) buildQualPA(ctx context.Context, set rating.DistributionSet, endYear int) error {
	co := s.params.Cohort
	startYear := endYear - co.SeasonsBack + 1

	rows, err := s.ch.Query(ctx, queryQualPA, uint32(co.QualPAFloor), startYear, endYear)
	if err != nil {
		return err
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var pa uint32
		if err := rows.Scan(&pa); err != nil {
			return err
		}
		values = append(values, float64(pa))
	}
	if err := rows.Err(); err != nil {
		return err
	}

	set.Put(rating.NewDistribution(rating.MetricQualPA, rating.CohortQualPA, values))
	return nil
}
