package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

type ratingService struct {
	players  PlayerService
	scouting ScoutingService
	dists    DistributionService
	engine   *rating.Engine
	redis    RedisClient
	cacheTTL time.Duration
}

// NewRatingService wires the rating engine to its data sources. redis may
// be nil; the service then computes every request from scratch.
func NewRatingService(players PlayerService, scouting ScoutingService, dists DistributionService, engine *rating.Engine, redis RedisClient, cacheTTL time.Duration) RatingService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ratingService{
		players:  players,
		scouting: scouting,
		dists:    dists,
		engine:   engine,
		redis:    redis,
		cacheTTL: cacheTTL,
	}
}

func (s *ratingService) Revision() string { return s.engine.Params().Revision }

// ratingCacheKey includes the revision so a params bump invalidates every
// cached result without a flush.
func ratingCacheKey(rev, playerID string, mode rating.Mode, year int, stage rating.Stage) string {
	return fmt.Sprintf("rating:%s:%s:%s:%d:%s", rev, playerID, mode, year, stage)
}

func (s *ratingService) Get(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error) {
	key := ratingCacheKey(s.Revision(), playerID, mode, year, stage)
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, key).Result(); err == nil {
			var res models.RatingResult
			if err := json.Unmarshal([]byte(raw), &res); err == nil {
				return &res, nil
			}
		}
	}

	res, err := s.compute(ctx, playerID, mode, year, stage, nil)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(res); err == nil {
			s.redis.Set(ctx, key, raw, s.cacheTTL)
		}
	}
	return res, nil
}

func (s *ratingService) Pair(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error) {
	cur, err := s.Get(ctx, playerID, rating.ModeTR, year, stage)
	if err != nil {
		return nil, err
	}
	pair := &models.RatingPair{Current: cur}

	fut, err := s.Get(ctx, playerID, rating.ModeTFR, year, stage)
	switch {
	case err == nil:
		pair.Future = fut
	case rating.IsMissingData(err):
		// Veterans without a grade sheet have no future rating.
	default:
		return nil, err
	}
	return pair, nil
}

func (s *ratingService) Trace(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, *rating.Trace, error) {
	tr := &rating.Trace{}
	res, err := s.compute(ctx, playerID, mode, year, stage, tr)
	if err != nil {
		return nil, nil, err
	}
	return res, tr, nil
}

// compute assembles the engine input from storage and runs the pipeline.
// The four fetches are independent, so they fan out.
func (s *ratingService) compute(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage, tr *rating.Trace) (*models.RatingResult, error) {
	var (
		player      *models.Player
		mlb, minors []models.SeasonStatLine
		scout       *models.ScoutingProfile
		dists       rating.DistributionSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		player, err = s.players.GetPlayer(gctx, playerID)
		return err
	})
	g.Go(func() error {
		var err error
		if mlb, minors, err = s.players.Seasons(gctx, playerID); err != nil {
			return fmt.Errorf("seasons for %s: %w", playerID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if scout, err = s.scouting.Latest(gctx, playerID); err != nil {
			return fmt.Errorf("scouting for %s: %w", playerID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dists, err = s.dists.Set(gctx, year, stage); err != nil {
			return fmt.Errorf("distributions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var careerIP, careerPA float64
	for i := range mlb {
		careerIP += float64(mlb[i].IP)
		careerPA += float64(mlb[i].PA)
	}

	return s.engine.ComputeRating(rating.Input{
		PlayerID:     player.ID,
		PlayerName:   player.Name,
		Class:        player.Class,
		RoleHint:     roleHint(player.Position),
		Age:          player.AgeAt(year),
		AsOfYear:     year,
		Stage:        stage,
		Mode:         mode,
		MLBSeasons:   mlb,
		MinorSeasons: minors,
		CareerMLBIP:  careerIP,
		CareerMLBPA:  careerPA,
		Scouting:     scout,
		Dists:        dists,
		Trace:        tr,
	})
}

// roleHint maps a roster position to a pitching role hint. Position
// players carry none.
func roleHint(position string) string {
	switch position {
	case "SP":
		return models.RoleStarter
	case "RP", "CL":
		return models.RoleReliever
	}
	return ""
}
