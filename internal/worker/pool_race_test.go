package worker

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

func TestPool_RaceCondition(t *testing.T) {
	pairs := make(map[string]*models.RatingPair)
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("p%03d", i)
		pairs[id] = boardPair(id, "Player "+id, models.ClassPitcher, models.RoleStarter, float64(i)/10, 3.0, 3.5)
	}

	rdb := newFakeRedis()
	pool := NewPool(PoolConfig{
		WorkerCount:   4,
		QueueSize:     2000,
		BatchSize:     10,
		FlushInterval: 10 * time.Millisecond,
		Ratings:       &fakeRatings{pairs: pairs},
		Players:       &fakePlayers{},
		Redis:         rdb,
		Logger:        zap.NewNop(),
	})
	pool.Start()

	// Hammer the queue from many producers at once.
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pool.Enqueue(PlayerJob{
					PlayerID: fmt.Sprintf("p%03d", j),
					Class:    models.ClassPitcher,
					Year:     2026,
					Stage:    rating.StageComplete,
				})
			}
		}()
	}
	wg.Wait()
	pool.Stop()

	// Duplicate jobs collapse onto the same zset member.
	scores := rdb.zset("board:pitcher:2026:complete")
	if len(scores) == 0 {
		t.Fatal("no board entries written")
	}
	if len(scores) > 100 {
		t.Errorf("zset has %d members, want at most 100", len(scores))
	}
}
