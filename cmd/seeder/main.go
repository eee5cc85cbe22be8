// Command seeder loads a sim CSV export into the backing stores: rosters
// and scouting sheets into Postgres, season stat lines into ClickHouse.
// Reruns of the same export are safe for Postgres (players upsert,
// scouting replaces per player); season rows accumulate unless -truncate
// is passed.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// playerNamespace seeds the deterministic player IDs. The same franchise
// key hashes to the same UUID on every import, so re-seeding never
// orphans cached ratings or scouting rows.
var playerNamespace = uuid.MustParse("d6e7a5b4-9c31-4a8e-9f0a-2f6d1c8b7e55")

func playerID(franchiseKey string) string {
	return uuid.NewMD5(playerNamespace, []byte(franchiseKey)).String()
}

// Fixed export layout. The sim writes these headers verbatim; anything
// else is a mismatched or truncated export and the load aborts.
var (
	playersHeader = []string{"player_key", "name", "birth_year", "bats", "throws", "position", "class"}

	pitchingHeader = []string{"player_key", "year", "age", "level", "ip",
		"batters_faced", "so", "bb", "hr", "h", "gs", "gr"}

	battingHeader = []string{"player_key", "year", "age", "level", "pa",
		"h", "double", "triple", "hr", "bb", "so"}

	scoutingHeader = []string{"player_key", "source", "report_date",
		"stuff_now", "stuff_pot", "movement_now", "movement_pot", "control_now", "control_pot",
		"contact_now", "contact_pot", "gap_now", "gap_pot", "power_now", "power_pot",
		"eye_now", "eye_pot", "avoidk_now", "avoidk_pot", "speed_now", "speed_pot",
		"durability", "injury_prone"}
)

var playerColumns = []string{"id", "name", "birth_year", "bats", "throws", "position", "class"}

var scoutingColumns = []string{"player_id", "source", "report_date",
	"stuff_now", "stuff_pot", "movement_now", "movement_pot", "control_now", "control_pot",
	"contact_now", "contact_pot", "gap_now", "gap_pot", "power_now", "power_pot",
	"eye_now", "eye_pot", "avoidk_now", "avoidk_pot", "speed_now", "speed_pot",
	"durability", "injury_prone"}

func main() {
	dir := flag.String("dir", "export", "sim CSV export directory")
	truncate := flag.Bool("truncate", false, "delete existing rows before loading")
	dryRun := flag.Bool("dry-run", false, "parse the export and report counts without writing")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	players, err := readPlayers(filepath.Join(*dir, "players.csv"))
	if err != nil {
		sugar.Fatalw("Failed to read players.csv", "error", err)
	}

	seasons, err := readSeasons(*dir, sugar)
	if err != nil {
		sugar.Fatalw("Failed to read season stat files", "error", err)
	}

	reports, err := readScouting(filepath.Join(*dir, "scouting.csv"), sugar)
	if err != nil {
		sugar.Fatalw("Failed to read scouting.csv", "error", err)
	}

	sugar.Infow("Export parsed",
		"dir", *dir,
		"players", len(players),
		"seasons", len(seasons),
		"scouting", len(reports),
	)
	if *dryRun {
		return
	}

	ctx := context.Background()

	ch, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{getenv("CLICKHOUSE_ADDR", "localhost:9000")},
		Auth: clickhouse.Auth{
			Database: getenv("CLICKHOUSE_DB", "hardball"),
			Username: getenv("CLICKHOUSE_USER", "default"),
			Password: os.Getenv("CLICKHOUSE_PASSWORD"),
		},
		DialTimeout: 10 * time.Second,
	})
	if err != nil {
		sugar.Fatalw("Failed to connect to ClickHouse", "error", err)
	}
	defer ch.Close()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		sugar.Fatal("POSTGRES_DSN is required")
	}
	pg, err := pgxpool.New(ctx, dsn)
	if err != nil {
		sugar.Fatalw("Failed to create Postgres pool", "error", err)
	}
	defer pg.Close()

	if *truncate {
		if err := ch.Exec(ctx, "TRUNCATE TABLE hardball.player_seasons"); err != nil {
			sugar.Fatalw("Failed to truncate player_seasons", "error", err)
		}
		// Reports reference players, so they go first.
		if _, err := pg.Exec(ctx, "DELETE FROM scouting_reports"); err != nil {
			sugar.Fatalw("Failed to clear scouting_reports", "error", err)
		}
		if _, err := pg.Exec(ctx, "DELETE FROM players"); err != nil {
			sugar.Fatalw("Failed to clear players", "error", err)
		}
	}

	if err := upsertPlayers(ctx, pg, players); err != nil {
		sugar.Fatalw("Failed to load players", "error", err)
	}
	if err := loadSeasons(ctx, ch, seasons); err != nil {
		sugar.Fatalw("Failed to load seasons", "error", err)
	}
	if err := loadScouting(ctx, pg, reports); err != nil {
		sugar.Fatalw("Failed to load scouting reports", "error", err)
	}

	sugar.Infow("Seed complete",
		"players", len(players),
		"seasons", len(seasons),
		"scouting", len(reports),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openCSV opens one export file and consumes its header row, verifying
// the fixed layout.
func openCSV(path string, header []string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r := csv.NewReader(f)
	first, err := r.Read()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}
	if len(first) != len(header) {
		f.Close()
		return nil, nil, fmt.Errorf("%s: expected %d columns, got %d", filepath.Base(path), len(header), len(first))
	}
	for i, name := range header {
		if first[i] != name {
			f.Close()
			return nil, nil, fmt.Errorf("%s: column %d is %q, expected %q", filepath.Base(path), i, first[i], name)
		}
	}
	return r, f, nil
}

func readPlayers(path string) ([]models.Player, error) {
	r, f, err := openCSV(path, playersHeader)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []models.Player
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		birthYear, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("player %s: bad birth_year %q", rec[0], rec[2])
		}
		class := rec[6]
		if class != models.ClassPitcher && class != models.ClassBatter {
			return nil, fmt.Errorf("player %s: unknown class %q", rec[0], class)
		}
		out = append(out, models.Player{
			ID:        playerID(rec[0]),
			Name:      rec[1],
			BirthYear: birthYear,
			Bats:      rec[3],
			Throws:    rec[4],
			Position:  rec[5],
			Class:     class,
		})
	}
	return out, nil
}

// readSeasons merges the pitching and batting exports into one slice of
// stat lines. Either file may be absent; a pitchers-only export is a
// valid export.
func readSeasons(dir string, sugar *zap.SugaredLogger) ([]models.SeasonStatLine, error) {
	var out []models.SeasonStatLine

	pitching, err := readPitching(filepath.Join(dir, "pitching.csv"))
	if errors.Is(err, os.ErrNotExist) {
		sugar.Infow("No pitching.csv in export, skipping")
	} else if err != nil {
		return nil, err
	}
	out = append(out, pitching...)

	batting, err := readBatting(filepath.Join(dir, "batting.csv"))
	if errors.Is(err, os.ErrNotExist) {
		sugar.Infow("No batting.csv in export, skipping")
	} else if err != nil {
		return nil, err
	}
	out = append(out, batting...)

	return out, nil
}

func readPitching(path string) ([]models.SeasonStatLine, error) {
	r, f, err := openCSV(path, pitchingHeader)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []models.SeasonStatLine
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line := models.SeasonStatLine{
			PlayerID: playerID(rec[0]),
			Level:    rec[3],
			Class:    models.ClassPitcher,
		}
		if line.Year, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("pitching row for %s: bad year %q", rec[0], rec[1])
		}
		if line.Age, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("pitching row for %s: bad age %q", rec[0], rec[2])
		}
		if line.IP, err = models.ParseInnings(rec[4]); err != nil {
			return nil, fmt.Errorf("pitching row for %s: %w", rec[0], err)
		}
		counts := []struct {
			dst *uint32
			col int
		}{
			{&line.BattersFaced, 5}, {&line.PitchSO, 6}, {&line.PitchBB, 7},
			{&line.PitchHR, 8}, {&line.PitchHits, 9},
			{&line.GamesStarted, 10}, {&line.GamesRelieved, 11},
		}
		for _, c := range counts {
			if *c.dst, err = parseCount(rec[c.col]); err != nil {
				return nil, fmt.Errorf("pitching row for %s: %w", rec[0], err)
			}
		}
		out = append(out, line)
	}
	return out, nil
}

func readBatting(path string) ([]models.SeasonStatLine, error) {
	r, f, err := openCSV(path, battingHeader)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []models.SeasonStatLine
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line := models.SeasonStatLine{
			PlayerID: playerID(rec[0]),
			Level:    rec[3],
			Class:    models.ClassBatter,
		}
		if line.Year, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("batting row for %s: bad year %q", rec[0], rec[1])
		}
		if line.Age, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("batting row for %s: bad age %q", rec[0], rec[2])
		}
		counts := []struct {
			dst *uint32
			col int
		}{
			{&line.PA, 4}, {&line.Hits, 5}, {&line.Doubles, 6}, {&line.Triples, 7},
			{&line.HR, 8}, {&line.BB, 9}, {&line.SO, 10},
		}
		for _, c := range counts {
			if *c.dst, err = parseCount(rec[c.col]); err != nil {
				return nil, fmt.Errorf("batting row for %s: %w", rec[0], err)
			}
		}
		out = append(out, line)
	}
	return out, nil
}

func readScouting(path string, sugar *zap.SugaredLogger) ([]models.ScoutingProfile, error) {
	r, f, err := openCSV(path, scoutingHeader)
	if errors.Is(err, os.ErrNotExist) {
		sugar.Infow("No scouting.csv in export, skipping")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []models.ScoutingProfile
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", rec[2])
		if err != nil {
			return nil, fmt.Errorf("scouting row for %s: bad report_date %q", rec[0], rec[2])
		}
		p := models.ScoutingProfile{
			PlayerID:    playerID(rec[0]),
			Source:      rec[1],
			ReportDate:  date,
			InjuryProne: rec[22],
		}
		grades := []struct {
			g   *models.Grade
			col int
		}{
			{&p.Stuff, 3}, {&p.Movement, 5}, {&p.Control, 7},
			{&p.Contact, 9}, {&p.GapPower, 11}, {&p.Power, 13},
			{&p.Eye, 15}, {&p.AvoidK, 17}, {&p.Speed, 19},
		}
		for _, gr := range grades {
			if gr.g.Now, err = parseGrade(rec[gr.col]); err != nil {
				return nil, fmt.Errorf("scouting row for %s: %w", rec[0], err)
			}
			if gr.g.Potential, err = parseGrade(rec[gr.col+1]); err != nil {
				return nil, fmt.Errorf("scouting row for %s: %w", rec[0], err)
			}
		}
		if p.Durability, err = parseGrade(rec[21]); err != nil {
			return nil, fmt.Errorf("scouting row for %s: %w", rec[0], err)
		}
		p.ClampGrades()
		out = append(out, p)
	}
	return out, nil
}

func parseCount(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", s, err)
	}
	return uint32(n), nil
}

func parseGrade(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad grade %q: %w", s, err)
	}
	return n, nil
}

func upsertPlayers(ctx context.Context, pg *pgxpool.Pool, players []models.Player) error {
	if len(players) == 0 {
		return nil
	}
	tx, err := pg.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin players load: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `CREATE TEMP TABLE players_load (LIKE players INCLUDING DEFAULTS) ON COMMIT DROP`)
	if err != nil {
		return fmt.Errorf("create players_load: %w", err)
	}

	rows := make([][]any, 0, len(players))
	for _, p := range players {
		rows = append(rows, []any{p.ID, p.Name, p.BirthYear, p.Bats, p.Throws, p.Position, p.Class})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"players_load"}, playerColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy players: %w", err)
	}

	cols := strings.Join(playerColumns, ", ")
	_, err = tx.Exec(ctx, `
		INSERT INTO players (`+cols+`)
		SELECT `+cols+` FROM players_load
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			birth_year = EXCLUDED.birth_year,
			bats = EXCLUDED.bats,
			throws = EXCLUDED.throws,
			position = EXCLUDED.position,
			class = EXCLUDED.class
	`)
	if err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return tx.Commit(ctx)
}

func loadSeasons(ctx context.Context, ch driver.Conn, seasons []models.SeasonStatLine) error {
	if len(seasons) == 0 {
		return nil
	}
	batch, err := ch.PrepareBatch(ctx, `
		INSERT INTO hardball.player_seasons (
			player_id, year, age, level, class,
			ip, batters_faced, pitch_so, pitch_bb, pitch_hr, pitch_hits, games_started, games_relieved,
			pa, hits, doubles, triples, hr, bb, so
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare season batch: %w", err)
	}
	for _, s := range seasons {
		err := batch.Append(
			s.PlayerID, uint16(s.Year), uint8(s.Age), s.Level, s.Class,
			float64(s.IP), s.BattersFaced, s.PitchSO, s.PitchBB, s.PitchHR,
			s.PitchHits, s.GamesStarted, s.GamesRelieved,
			s.PA, s.Hits, s.Doubles, s.Triples, s.HR, s.BB, s.SO,
		)
		if err != nil {
			return fmt.Errorf("append season row: %w", err)
		}
	}
	return batch.Send()
}

// loadScouting replaces every report for the players named in the export
// and leaves other players' reports alone.
func loadScouting(ctx context.Context, pg *pgxpool.Pool, reports []models.ScoutingProfile) error {
	if len(reports) == 0 {
		return nil
	}
	tx, err := pg.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin scouting load: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `CREATE TEMP TABLE scouting_load (LIKE scouting_reports INCLUDING DEFAULTS) ON COMMIT DROP`)
	if err != nil {
		return fmt.Errorf("create scouting_load: %w", err)
	}

	rows := make([][]any, 0, len(reports))
	for _, p := range reports {
		rows = append(rows, []any{
			p.PlayerID, p.Source, p.ReportDate,
			p.Stuff.Now, p.Stuff.Potential,
			p.Movement.Now, p.Movement.Potential,
			p.Control.Now, p.Control.Potential,
			p.Contact.Now, p.Contact.Potential,
			p.GapPower.Now, p.GapPower.Potential,
			p.Power.Now, p.Power.Potential,
			p.Eye.Now, p.Eye.Potential,
			p.AvoidK.Now, p.AvoidK.Potential,
			p.Speed.Now, p.Speed.Potential,
			p.Durability, p.InjuryProne,
		})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"scouting_load"}, scoutingColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy scouting reports: %w", err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM scouting_reports r
		USING (SELECT DISTINCT player_id FROM scouting_load) l
		WHERE r.player_id = l.player_id
	`)
	if err != nil {
		return fmt.Errorf("clear replaced reports: %w", err)
	}

	cols := strings.Join(scoutingColumns, ", ")
	_, err = tx.Exec(ctx, `INSERT INTO scouting_reports (`+cols+`) SELECT `+cols+` FROM scouting_load`)
	if err != nil {
		return fmt.Errorf("insert scouting reports: %w", err)
	}
	return tx.Commit(ctx)
}
