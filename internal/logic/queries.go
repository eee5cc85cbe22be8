package logic

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// Season queries against ClickHouse. Every column scan in this package
// goes through scanSeason so the column order lives in one place.
const seasonColumns = `player_id, year, age, level, class,
	ip, batters_faced, pitch_so, pitch_bb, pitch_hr, pitch_hits, games_started, games_relieved,
	pa, hits, doubles, triples, hr, bb, so`

const querySeasonsByPlayer = `
	SELECT ` + seasonColumns + `
	FROM hardball.player_seasons
	WHERE player_id = ?
	ORDER BY year DESC, level
`

// queryPeakCohort pulls the MLB seasons that seed the peak reference
// cohort; per-season minimum samples are applied after scanning because
// innings are stored in thirds notation.
const queryPeakCohort = `
	SELECT ` + seasonColumns + `
	FROM hardball.player_seasons
	WHERE class = ? AND level = 'mlb'
	  AND age BETWEEN ? AND ?
	  AND year BETWEEN ? AND ?
`

const queryProspectCohort = `
	SELECT ` + seasonColumns + `
	FROM hardball.player_seasons
	WHERE class = ? AND level != 'mlb' AND age <= ?
	  AND year BETWEEN ? AND ?
`

const queryQualPA = `
	SELECT pa
	FROM hardball.player_seasons
	WHERE class = 'batter' AND level = 'mlb'
	  AND pa >= ?
	  AND year BETWEEN ? AND ?
`

const queryActivePlayers = `
	SELECT DISTINCT player_id
	FROM hardball.player_seasons
	WHERE class = ? AND year BETWEEN ? AND ?
	ORDER BY player_id
`

// scanSeason reads one player_seasons row in seasonColumns order. Innings
// travel as float64 (stored thirds already expanded).
func scanSeason(rows driver.Rows) (models.SeasonStatLine, error) {
	var (
		line models.SeasonStatLine
		year uint16
		age  uint8
		ip   float64
	)
	err := rows.Scan(
		&line.PlayerID, &year, &age, &line.Level, &line.Class,
		&ip, &line.BattersFaced, &line.PitchSO, &line.PitchBB, &line.PitchHR,
		&line.PitchHits, &line.GamesStarted, &line.GamesRelieved,
		&line.PA, &line.Hits, &line.Doubles, &line.Triples, &line.HR, &line.BB, &line.SO,
	)
	if err != nil {
		return line, err
	}
	line.Year = int(year)
	line.Age = int(age)
	line.IP = models.Innings(ip)
	return line, nil
}

func collectSeasons(rows driver.Rows) ([]models.SeasonStatLine, error) {
	defer rows.Close()
	var out []models.SeasonStatLine
	for rows.Next() {
		line, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, rows.Err()
}
