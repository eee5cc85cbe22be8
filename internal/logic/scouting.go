package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dugoutlabs/ratings-api/internal/models"
)

type scoutingService struct {
	pg PgPool
}

func NewScoutingService(pg PgPool) ScoutingService {
	return &scoutingService{pg: pg}
}

// Latest returns the newest grade sheet for a player, or nil when none
// exists. Absence is a normal state, not an error; the rating pipeline
// degrades to stats-only handling.
func (s *scoutingService) Latest(ctx context.Context, playerID string) (*models.ScoutingProfile, error) {
	var p models.ScoutingProfile
	err := s.pg.QueryRow(ctx, `
		SELECT player_id, source, report_date,
		       stuff_now, stuff_pot, movement_now, movement_pot, control_now, control_pot,
		       contact_now, contact_pot, gap_now, gap_pot, power_now, power_pot,
		       eye_now, eye_pot, avoidk_now, avoidk_pot, speed_now, speed_pot,
		       durability, injury_prone
		FROM scouting_reports
		WHERE player_id = $1
		ORDER BY report_date DESC
		LIMIT 1
	`, playerID).Scan(
		&p.PlayerID, &p.Source, &p.ReportDate,
		&p.Stuff.Now, &p.Stuff.Potential,
		&p.Movement.Now, &p.Movement.Potential,
		&p.Control.Now, &p.Control.Potential,
		&p.Contact.Now, &p.Contact.Potential,
		&p.GapPower.Now, &p.GapPower.Potential,
		&p.Power.Now, &p.Power.Potential,
		&p.Eye.Now, &p.Eye.Potential,
		&p.AvoidK.Now, &p.AvoidK.Potential,
		&p.Speed.Now, &p.Speed.Potential,
		&p.Durability, &p.InjuryProne,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load scouting report: %w", err)
	}

	p.ClampGrades()
	return &p, nil
}
