package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

func TestFIP(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 4.1667, FIP(p, 8.2, 3.1, 1.25), 1e-3, "league-average starter line")
	assert.InDelta(t, 3.2056, FIP(p, 10, 2.5, 1.0), 1e-3)
}

func TestWOBA(t *testing.T) {
	p := DefaultParams()

	league := BatRates{KPct: 22.0, BBPct: 8.5, HRPct: 3.1, HitPct: 20.5, GapPct: 4.5, TriplePct: 0.40}
	assert.InDelta(t, 0.3262, WOBA(p, league), 1e-3)

	// Extra-base hits squeeze down to the available non-HR hits.
	squeezed := BatRates{HitPct: 2.0, GapPct: 4.0, TriplePct: 1.0}
	assert.InDelta(t, 0.0268, WOBA(p, squeezed), 1e-3)
}

func TestWAR(t *testing.T) {
	p := DefaultParams()

	assert.InDelta(t, 3.7778, PitcherWAR(p, 3.5, models.RoleStarter, 180), 1e-3)
	assert.InDelta(t, PitcherWAR(p, 3.5, models.RoleStarter, 180),
		PitcherWAR(p, 3.5, "closer", 180), 1e-9, "unknown role falls back to the starter baseline")
	assert.Negative(t, PitcherWAR(p, 6.0, models.RoleStarter, 150), "below replacement")

	assert.InDelta(t, 2.6667, BatterWAR(p, 0.340, 600), 1e-3)
	assert.Negative(t, BatterWAR(p, 0.280, 600))
}

func TestProjectPitcherIP(t *testing.T) {
	p := DefaultParams()
	lgFIP := FIP(p, p.LeagueSP.K9, p.LeagueSP.BB9, p.LeagueSP.HR9)
	var noHistory [3]float64

	// No grade sheet: league-average durability and health.
	got := ProjectPitcherIP(p, models.RoleStarter, nil, lgFIP, 0, noHistory, false)
	assert.InDelta(t, 165, got, 1e-6)

	durable := &models.ScoutingProfile{Durability: 60, InjuryProne: models.InjuryDurable}
	got = ProjectPitcherIP(p, models.RoleStarter, durable, lgFIP, 0, noHistory, false)
	assert.InDelta(t, 194.4, got, 1e-6)

	// Better run prevention earns a longer leash.
	got = ProjectPitcherIP(p, models.RoleStarter, nil, 3.0, 0, noHistory, false)
	assert.InDelta(t, 170.775, got, 1e-2)

	fragile := &models.ScoutingProfile{Durability: 20, InjuryProne: models.InjuryFragile}
	got = ProjectPitcherIP(p, models.RoleStarter, fragile, lgFIP, 0, noHistory, false)
	assert.InDelta(t, 120, got, 1e-6, "starter floor")

	horse := &models.ScoutingProfile{Durability: 80, InjuryProne: models.InjuryDurable}
	got = ProjectPitcherIP(p, models.RoleReliever, horse, 0.5, 0, noHistory, false)
	assert.InDelta(t, 95, got, 1e-6, "reliever cap")
}

func TestProjectPitcherIPVeteranBlend(t *testing.T) {
	p := DefaultParams()
	lgFIP := FIP(p, p.LeagueSP.K9, p.LeagueSP.BB9, p.LeagueSP.HR9)
	recent := [3]float64{180, 170, 0}

	got := ProjectPitcherIP(p, models.RoleStarter, nil, lgFIP, 1500, recent, false)
	assert.InDelta(t, 172.583, got, 1e-2, "model blends toward recent workload")

	// The peak projection ignores workload history.
	got = ProjectPitcherIP(p, models.RoleStarter, nil, lgFIP, 1500, recent, true)
	assert.InDelta(t, 165, got, 1e-6)

	// Short careers stay on the model.
	got = ProjectPitcherIP(p, models.RoleStarter, nil, lgFIP, 60, recent, false)
	assert.InDelta(t, 165, got, 1e-6)

	// A preseason run sees the two completed seasons in the later slots.
	got = ProjectPitcherIP(p, models.RoleStarter, nil, lgFIP, 1500, [3]float64{0, 180, 170}, false)
	assert.InDelta(t, 172.583, got, 1e-2)
}

func TestProjectBatterPA(t *testing.T) {
	p := DefaultParams()
	qual := NewDistribution(MetricQualPA, CohortQualPA, []float64{450, 500, 550, 600, 650})

	durable := &models.ScoutingProfile{InjuryProne: models.InjuryDurable}
	fragile := &models.ScoutingProfile{InjuryProne: models.InjuryFragile}

	assert.InDelta(t, 600, ProjectBatterPA(p, durable, qual), 1e-9)
	assert.InDelta(t, 550, ProjectBatterPA(p, nil, qual), 1e-9, "no grade sheet reads the median point")
	assert.InDelta(t, 500, ProjectBatterPA(p, fragile, qual), 1e-9)

	assert.InDelta(t, 470, ProjectBatterPA(p, nil, nil), 1e-9, "no distribution falls to the range midpoint")

	wide := NewDistribution(MetricQualPA, CohortQualPA, []float64{100, 200, 300, 700, 800})
	assert.InDelta(t, 690, ProjectBatterPA(p, durable, wide), 1e-9, "cap")
	assert.InDelta(t, 250, ProjectBatterPA(p, fragile, wide), 1e-9, "floor")
}
