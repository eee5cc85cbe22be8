package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

// ErrNotFound marks lookups for rows that do not exist; handlers map it
// to a 404.
var ErrNotFound = errors.New("not found")

type playerService struct {
	pg PgPool
	ch driver.Conn
}

func NewPlayerService(pg PgPool, ch driver.Conn) PlayerService {
	return &playerService{pg: pg, ch: ch}
}

func (s *playerService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	var p models.Player
	err := s.pg.QueryRow(ctx, `
		SELECT id, name, birth_year, bats, throws, position, class
		FROM players
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.BirthYear, &p.Bats, &p.Throws, &p.Position, &p.Class)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	return &p, nil
}

func (s *playerService) SearchPlayers(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	rows, err := s.pg.Query(ctx, `
		SELECT id, name, position, class
		FROM players
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	defer rows.Close()

	out := []models.PlayerSummary{}
	for rows.Next() {
		var p models.PlayerSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Class); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Seasons returns a player's stat lines split into MLB and minor-league
// groups, newest first.
func (s *playerService) Seasons(ctx context.Context, id string) ([]models.SeasonStatLine, []models.SeasonStatLine, error) {
	rows, err := s.ch.Query(ctx, querySeasonsByPlayer, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load seasons: %w", err)
	}
	all, err := collectSeasons(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("scan seasons: %w", err)
	}

	var mlb, minors []models.SeasonStatLine
	for _, line := range all {
		if line.IsMLB() {
			mlb = append(mlb, line)
		} else {
			minors = append(minors, line)
		}
	}
	return mlb, minors, nil
}

func (s *playerService) GetProfile(ctx context.Context, id string) (*models.PlayerProfile, error) {
	profile := &models.PlayerProfile{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.GetPlayer(ctx, id)
		if err != nil {
			return err
		}
		profile.Player = *p
		return nil
	})

	g.Go(func() error {
		mlb, minors, err := s.Seasons(ctx, id)
		if err != nil {
			return err
		}
		profile.MLBSeasons = mlb
		profile.MinorLeague = minors
		return nil
	})

	g.Go(func() error {
		var n int
		err := s.pg.QueryRow(ctx, `
			SELECT count(*) FROM scouting_reports WHERE player_id = $1
		`, id).Scan(&n)
		if err != nil {
			return fmt.Errorf("count scouting reports: %w", err)
		}
		profile.HasScouting = n > 0
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListActivePlayerIDs returns players of a class with any stat line in
// the last four seasons ending at asOfYear. Retired players fall off the
// batch boards without a roster flag.
func (s *playerService) ListActivePlayerIDs(ctx context.Context, class string, asOfYear int) ([]string, error) {
	rows, err := s.ch.Query(ctx, queryActivePlayers, class, asOfYear-3, asOfYear)
	if err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
