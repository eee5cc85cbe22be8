package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for the Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
	TxPipeline() redis.Pipeliner
}

// PlayerService serves roster master data and season stat lines.
type PlayerService interface {
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	GetProfile(ctx context.Context, id string) (*models.PlayerProfile, error)
	SearchPlayers(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error)
	Seasons(ctx context.Context, id string) (mlb, minors []models.SeasonStatLine, err error)
	ListActivePlayerIDs(ctx context.Context, class string, asOfYear int) ([]string, error)
}

// ScoutingService serves grade sheets.
type ScoutingService interface {
	Latest(ctx context.Context, playerID string) (*models.ScoutingProfile, error)
}

// DistributionService builds and serves reference distributions.
type DistributionService interface {
	Set(ctx context.Context, year int, stage rating.Stage) (rating.DistributionSet, error)
	Summary(ctx context.Context, metric, cohort string, year int, stage rating.Stage) (rating.Summary, error)
	Invalidate()
}

// RatingService computes and caches player ratings.
type RatingService interface {
	Get(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error)
	Pair(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error)
	Trace(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, *rating.Trace, error)
	Revision() string
}

// LeaderboardService reads built boards out of Redis.
type LeaderboardService interface {
	Board(ctx context.Context, class string, year int, stage rating.Stage, limit int) (*models.Board, error)
}
