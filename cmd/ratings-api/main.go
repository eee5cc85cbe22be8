// Command ratings-api serves the player rating service. ClickHouse holds
// the season stat lines, Postgres the rosters and scouting reports, and
// Redis the rating cache plus the precomputed leaderboards.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/dugoutlabs/ratings-api/docs"
	"github.com/dugoutlabs/ratings-api/internal/config"
	"github.com/dugoutlabs/ratings-api/internal/handlers"
	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/rating"
	"github.com/dugoutlabs/ratings-api/internal/worker"
)

// @title Dugout Labs Ratings API
// @version 1.0
// @description Current and future player ratings computed from season stat lines and scouting reports.
// @BasePath /api

// @securityDefinitions.apikey InternalToken
// @in header
// @name X-Internal-Token
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	revision := cfg.RatingRevision
	if revision == "" {
		revision = rating.LatestRevision
	}
	params, ok := rating.ParamsFor(revision)
	if !ok {
		sugar.Fatalw("Unknown rating revision", "revision", revision)
	}
	engine := rating.NewEngine(params)

	ch, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.ClickHouseAddr},
		Auth: clickhouse.Auth{
			Database: cfg.ClickHouseDB,
			Username: cfg.ClickHouseUser,
			Password: cfg.ClickHousePassword,
		},
		DialTimeout: 10 * time.Second,
	})
	if err != nil {
		sugar.Fatalw("Failed to connect to ClickHouse", "error", err)
	}
	defer ch.Close()

	pg, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		sugar.Fatalw("Failed to create Postgres pool", "error", err)
	}
	defer pg.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	players := logic.NewPlayerService(pg, ch)
	scouting := logic.NewScoutingService(pg)
	dists := logic.NewDistributionService(ch, params)
	ratings := logic.NewRatingService(players, scouting, dists, engine, rdb, cfg.RatingsCacheTTL)
	leaderboard := logic.NewLeaderboardService(rdb)

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Ratings:       ratings,
		Players:       players,
		Redis:         rdb,
		Logger:        logger,
	})
	pool.Start()
	defer pool.Stop()

	if cfg.WarmBoardOnStart {
		go func() {
			now := time.Now().UTC()
			if _, err := pool.RunFullBoard(ctx, now.Year(), rating.StageForMonth(now.Month())); err != nil {
				sugar.Warnw("Startup board warm failed", "error", err)
			}
		}()
	}

	h := handlers.New(handlers.Config{
		WorkerPool:    pool,
		Postgres:      pg,
		ClickHouse:    ch,
		Redis:         rdb,
		Logger:        logger,
		InternalToken: cfg.InternalToken,
		Players:       players,
		Ratings:       ratings,
		Distributions: dists,
		Leaderboard:   leaderboard,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router(cfg, logger, h),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		sugar.Infow("Starting HTTP server", "port", cfg.Port, "revision", params.Revision)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
}

func router(cfg *config.Config, logger *zap.Logger, h *handlers.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Internal-Token"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", swaggerDoc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)

		r.Group(func(r chi.Router) {
			r.Use(handlers.CacheControl(10 * time.Minute))
			r.Get("/players/search", h.SearchPlayers)
			r.Get("/players/{playerID}", h.GetPlayerProfile)
		})

		// Rating and board responses stay cacheable for as long as the
		// corresponding Redis entries live.
		r.Group(func(r chi.Router) {
			r.Use(handlers.CacheControl(cfg.RatingsCacheTTL))
			r.Get("/players/{playerID}/ratings", h.GetPlayerRatings)
		})

		r.Group(func(r chi.Router) {
			r.Use(handlers.CacheControl(cfg.BoardCacheTTL))
			r.Get("/leaderboard", h.GetLeaderboard)
		})

		r.Group(func(r chi.Router) {
			r.Use(handlers.CacheControl(time.Hour))
			r.Get("/distributions/{metric}", h.GetDistributionSummary)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.InternalAuthMiddleware)
			r.Post("/internal/rebuild", h.RebuildBoards)
		})
	})

	return r
}

// newLogger builds the zap logger for the configured environment.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// requestLogger emits one structured line per request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	sugar := logger.Sugar()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			sugar.Infow("Request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// swaggerDoc serves the generated OpenAPI document.
func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, "swagger doc unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
