package handlers

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// BoardBuilder is the slice of the worker pool the API needs: queueing
// board rebuilds and reporting the backlog.
type BoardBuilder interface {
	RunFullBoard(ctx context.Context, year int, stage rating.Stage) (string, error)
	QueueDepth() int
}

type Config struct {
	WorkerPool BoardBuilder
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger

	InternalToken string

	// Services
	Players       logic.PlayerService
	Ratings       logic.RatingService
	Distributions logic.DistributionService
	Leaderboard   logic.LeaderboardService
}

type Handler struct {
	pool          BoardBuilder
	pg            *pgxpool.Pool
	ch            driver.Conn
	redis         *redis.Client
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	internalToken string
	players       logic.PlayerService
	ratings       logic.RatingService
	distributions logic.DistributionService
	leaderboard   logic.LeaderboardService

	// now feeds the default year and stage; tests pin it.
	now func() time.Time
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:          cfg.WorkerPool,
		pg:            cfg.Postgres,
		ch:            cfg.ClickHouse,
		redis:         cfg.Redis,
		logger:        cfg.Logger.Sugar(),
		validator:     validator.New(),
		internalToken: cfg.InternalToken,
		players:       cfg.Players,
		ratings:       cfg.Ratings,
		distributions: cfg.Distributions,
		leaderboard:   cfg.Leaderboard,
		now:           time.Now,
	}
}
