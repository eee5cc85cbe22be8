// Package worker runs the batch rating computations behind the
// leaderboard. A rebuild enqueues one job per active player; workers
// compute both rating modes, collect board rows and flush them to Redis
// in batches so a full league rebuild is a handful of pipelines instead
// of thousands of round trips.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dugoutlabs/ratings-api/internal/logic"
	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

var (
	ratingsJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_jobs_total",
			Help: "Rating jobs by outcome",
		},
		[]string{"status"},
	)
	ratingsQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ratings_queue_depth",
			Help: "Rating jobs waiting in the queue",
		},
	)
	ratingsBatchFlushDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ratings_batch_flush_duration_seconds",
			Help:    "Time spent writing one board batch to Redis",
			Buckets: prometheus.DefBuckets,
		},
	)
	ratingsBoardEntriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ratings_board_entries_total",
			Help: "Board entries written to Redis",
		},
	)
)

// Outcome labels for ratings_jobs_total.
const (
	statusOK          = "ok"
	statusMissingData = "missing_data"
	statusFailed      = "failed"
	statusDropped     = "dropped"
)

// Boards expire a day after the last flush that touched them.
const boardTTL = 24 * time.Hour

// PlayerJob asks the pool to rate one player and place the result on the
// board for the given year and stage.
type PlayerJob struct {
	PlayerID string
	Class    string
	Year     int
	Stage    rating.Stage
}

// boardItem pairs a computed board row with its destination key.
type boardItem struct {
	key   string
	entry models.BoardEntry
}

// PoolConfig holds the worker pool configuration.
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration

	Ratings logic.RatingService
	Players logic.PlayerService
	Redis   logic.RedisClient
	Logger  *zap.Logger
}

// Pool manages a fixed set of workers draining a shared job queue.
type Pool struct {
	config   PoolConfig
	jobQueue chan PlayerJob
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	// pending counts jobs accepted but not yet flushed or abandoned. A
	// rebuild is finished when it drops back to zero.
	pending atomic.Int64

	// building tracks boards whose rebuild flag is set in Redis, so the
	// flags can be cleared once the queue drains.
	flagMu   sync.Mutex
	building map[string]struct{}
}

// NewPool creates a worker pool. Zero or negative config values fall
// back to defaults sized for a full league rebuild.
func NewPool(config PoolConfig) *Pool {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 4096
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 64
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = 2 * time.Second
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		config:   config,
		jobQueue: make(chan PlayerJob, config.QueueSize),
		ctx:      ctx,
		cancel:   cancel,
		logger:   config.Logger.Sugar(),
		building: make(map[string]struct{}),
	}
}

// Start launches the workers and the queue depth reporter.
func (p *Pool) Start() {
	p.logger.Infow("Starting rating worker pool",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
		"flushInterval", p.config.FlushInterval,
	)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()
}

// Stop drains the queue, flushes every in-flight batch and clears any
// rebuild flags left behind by the drain.
func (p *Pool) Stop() {
	p.logger.Info("Stopping rating worker pool")
	close(p.jobQueue)
	p.wg.Wait()
	p.clearBuildingFlags()
	p.cancel()
}

// Enqueue adds a job without blocking. It reports false when the queue
// is full or the pool is shutting down.
func (p *Pool) Enqueue(job PlayerJob) bool {
	// Sending on the closed queue panics; during shutdown that just
	// means the job is dropped.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Job dropped during shutdown", "player", job.PlayerID)
		}
	}()

	select {
	case p.jobQueue <- job:
		p.pending.Add(1)
		return true
	default:
		ratingsJobsTotal.WithLabelValues(statusDropped).Inc()
		p.logger.Warnw("Job queue full, dropping job",
			"player", job.PlayerID,
			"queueSize", p.config.QueueSize,
		)
		return false
	}
}

// QueueDepth returns the number of jobs waiting in the queue.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// RunFullBoard queues a rating job for every active player in both
// classes and returns an identifier for the run. The boards keep serving
// their previous entries while the rebuild is in flight; a building flag
// in Redis lets the leaderboard endpoint say so.
func (p *Pool) RunFullBoard(ctx context.Context, year int, stage rating.Stage) (string, error) {
	runID := uuid.NewString()

	queued := 0
	total := 0
	for _, class := range []string{models.ClassPitcher, models.ClassBatter} {
		ids, err := p.config.Players.ListActivePlayerIDs(ctx, class, year)
		if err != nil {
			return "", fmt.Errorf("list active %ss: %w", class, err)
		}

		key := logic.BoardKey(class, year, stage)
		if err := p.config.Redis.Set(ctx, key+":building", runID, time.Hour).Err(); err != nil {
			p.logger.Warnw("Failed to set building flag", "board", key, "error", err)
		}
		p.flagMu.Lock()
		p.building[key] = struct{}{}
		p.flagMu.Unlock()

		total += len(ids)
		for _, id := range ids {
			if p.Enqueue(PlayerJob{PlayerID: id, Class: class, Year: year, Stage: stage}) {
				queued++
			}
		}
	}

	go p.watchDrain(runID)

	p.logger.Infow("Board rebuild queued",
		"run", runID,
		"year", year,
		"stage", stage.String(),
		"queued", queued,
		"players", total,
	)
	return runID, nil
}

// watchDrain waits for the queue to empty and then clears the building
// flags. pending is global, so an overlapping rebuild keeps every flag
// up until both runs finish. That errs on the honest side.
func (p *Pool) watchDrain(runID string) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			if p.pending.Load() != 0 {
				continue
			}
			p.clearBuildingFlags()
			p.logger.Infow("Board rebuild complete", "run", runID)
			return
		}
	}
}

// clearBuildingFlags deletes every tracked rebuild flag from Redis.
func (p *Pool) clearBuildingFlags() {
	p.flagMu.Lock()
	keys := make([]string, 0, len(p.building))
	for key := range p.building {
		keys = append(keys, key)
	}
	p.building = make(map[string]struct{})
	p.flagMu.Unlock()

	if len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, key := range keys {
		if err := p.config.Redis.Del(ctx, key+":building").Err(); err != nil {
			p.logger.Warnw("Failed to clear building flag", "board", key, "error", err)
		}
	}
}

// worker consumes jobs, batches the resulting board rows and flushes
// them on size or on the flush interval, whichever comes first.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]boardItem, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		start := time.Now()
		if err := p.flushBatch(batch); err != nil {
			p.logger.Errorw("Failed to flush board batch",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			ratingsJobsTotal.WithLabelValues(statusFailed).Add(float64(len(batch)))
		} else {
			ratingsJobsTotal.WithLabelValues(statusOK).Add(float64(len(batch)))
			ratingsBoardEntriesTotal.Add(float64(len(batch)))
		}
		ratingsBatchFlushDuration.Observe(time.Since(start).Seconds())
		p.pending.Add(-int64(len(batch)))
		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}

			item, err := p.computeEntry(job)
			if err != nil {
				if rating.IsMissingData(err) {
					ratingsJobsTotal.WithLabelValues(statusMissingData).Inc()
				} else {
					p.logger.Warnw("Rating job failed",
						"player", job.PlayerID,
						"year", job.Year,
						"stage", job.Stage.String(),
						"error", err,
					)
					ratingsJobsTotal.WithLabelValues(statusFailed).Inc()
				}
				p.pending.Add(-1)
				continue
			}

			batch = append(batch, item)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// computeEntry rates one player in both modes. A player without a
// scouting sheet has no future rating and boards with the current value
// in both columns.
func (p *Pool) computeEntry(job PlayerJob) (boardItem, error) {
	ctx, cancel := context.WithTimeout(p.ctx, 30*time.Second)
	defer cancel()

	pair, err := p.config.Ratings.Pair(ctx, job.PlayerID, job.Year, job.Stage)
	if err != nil {
		return boardItem{}, err
	}

	cur := pair.Current
	entry := models.BoardEntry{
		PlayerID:   cur.PlayerID,
		PlayerName: cur.PlayerName,
		Class:      cur.Class,
		Role:       cur.Role,
		Age:        cur.Age,
		Current:    cur.Overall,
		Future:     cur.Overall,
		WAR:        cur.Metrics.WAR,
	}
	if pair.Future != nil {
		entry.Future = pair.Future.Overall
	}

	return boardItem{key: logic.BoardKey(job.Class, job.Year, job.Stage), entry: entry}, nil
}

// flushBatch writes a batch in one pipeline: the ranking zset keyed by
// WAR, the payload hash, and a refreshed TTL plus build timestamp for
// every board the batch touched.
func (p *Pool) flushBatch(batch []boardItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pipe := p.config.Redis.TxPipeline()
	touched := make(map[string]struct{})
	for _, item := range batch {
		payload, err := json.Marshal(item.entry)
		if err != nil {
			p.logger.Warnw("Failed to marshal board entry",
				"player", item.entry.PlayerID,
				"error", err,
			)
			continue
		}
		pipe.ZAdd(ctx, item.key, redis.Z{Score: item.entry.WAR, Member: item.entry.PlayerID})
		pipe.HSet(ctx, item.key+":payload", item.entry.PlayerID, payload)
		touched[item.key] = struct{}{}
	}

	builtAt := time.Now().UTC().Format(time.RFC3339)
	for key := range touched {
		pipe.Expire(ctx, key, boardTTL)
		pipe.Expire(ctx, key+":payload", boardTTL)
		pipe.Set(ctx, key+":built_at", builtAt, boardTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("board pipeline: %w", err)
	}
	return nil
}

// reportQueueDepth periodically exports the queue depth gauge.
func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ratingsQueueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
