package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// newTestHandler wires a handler with a nop logger and a clock pinned to
// August 2026, which defaults season params to year 2026 stage late.
func newTestHandler(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	h := New(cfg)
	h.now = func() time.Time {
		return time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	}
	return h
}

// MockPlayerService implements logic.PlayerService
type MockPlayerService struct {
	GetProfileFunc    func(ctx context.Context, id string) (*models.PlayerProfile, error)
	SearchPlayersFunc func(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return nil, errors.New("not used")
}

func (m *MockPlayerService) GetProfile(ctx context.Context, id string) (*models.PlayerProfile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, id)
	}
	return &models.PlayerProfile{}, nil
}

func (m *MockPlayerService) SearchPlayers(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error) {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(ctx, q, limit)
	}
	return []models.PlayerSummary{}, nil
}

func (m *MockPlayerService) Seasons(ctx context.Context, id string) ([]models.SeasonStatLine, []models.SeasonStatLine, error) {
	return nil, nil, errors.New("not used")
}

func (m *MockPlayerService) ListActivePlayerIDs(ctx context.Context, class string, asOfYear int) ([]string, error) {
	return nil, errors.New("not used")
}

// MockRatingService implements logic.RatingService
type MockRatingService struct {
	GetFunc  func(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error)
	PairFunc func(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error)
}

func (m *MockRatingService) Get(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, playerID, mode, year, stage)
	}
	return &models.RatingResult{PlayerID: playerID}, nil
}

func (m *MockRatingService) Pair(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error) {
	if m.PairFunc != nil {
		return m.PairFunc(ctx, playerID, year, stage)
	}
	return &models.RatingPair{Current: &models.RatingResult{PlayerID: playerID}}, nil
}

func (m *MockRatingService) Trace(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, *rating.Trace, error) {
	return nil, nil, errors.New("not used")
}

func (m *MockRatingService) Revision() string { return "2026a" }

// MockDistributionService implements logic.DistributionService
type MockDistributionService struct {
	SummaryFunc     func(ctx context.Context, metric, cohort string, year int, stage rating.Stage) (rating.Summary, error)
	InvalidateCalls int
}

func (m *MockDistributionService) Set(ctx context.Context, year int, stage rating.Stage) (rating.DistributionSet, error) {
	return nil, errors.New("not used")
}

func (m *MockDistributionService) Invalidate() { m.InvalidateCalls++ }

func (m *MockDistributionService) Summary(ctx context.Context, metric, cohort string, year int, stage rating.Stage) (rating.Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, metric, cohort, year, stage)
	}
	return rating.Summary{Metric: metric, Cohort: cohort}, nil
}

// MockLeaderboardService implements logic.LeaderboardService
type MockLeaderboardService struct {
	BoardFunc func(ctx context.Context, class string, year int, stage rating.Stage, limit int) (*models.Board, error)
}

func (m *MockLeaderboardService) Board(ctx context.Context, class string, year int, stage rating.Stage, limit int) (*models.Board, error) {
	if m.BoardFunc != nil {
		return m.BoardFunc(ctx, class, year, stage, limit)
	}
	return &models.Board{Class: class, Year: year, Stage: stage.String(), Entries: []models.BoardEntry{}}, nil
}

// MockBoardBuilder implements BoardBuilder
type MockBoardBuilder struct {
	RunFunc  func(ctx context.Context, year int, stage rating.Stage) (string, error)
	RunCalls int
	Depth    int
}

func (m *MockBoardBuilder) RunFullBoard(ctx context.Context, year int, stage rating.Stage) (string, error) {
	m.RunCalls++
	if m.RunFunc != nil {
		return m.RunFunc(ctx, year, stage)
	}
	return "run-test", nil
}

func (m *MockBoardBuilder) QueueDepth() int { return m.Depth }

// MockCHConn implements driver.Conn for the readiness probe
type MockCHConn struct {
	driver.Conn
	PingErr error
}

func (m *MockCHConn) Ping(ctx context.Context) error { return m.PingErr }
