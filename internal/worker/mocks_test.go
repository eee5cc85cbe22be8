package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

// fakeRatings serves canned rating pairs keyed by player ID. Configure it
// before Start; workers read it concurrently.
type fakeRatings struct {
	pairs map[string]*models.RatingPair
	errs  map[string]error
}

func (f *fakeRatings) Get(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, error) {
	return nil, errors.New("not used")
}

func (f *fakeRatings) Pair(ctx context.Context, playerID string, year int, stage rating.Stage) (*models.RatingPair, error) {
	if err, ok := f.errs[playerID]; ok {
		return nil, err
	}
	if pair, ok := f.pairs[playerID]; ok {
		return pair, nil
	}
	return nil, &rating.MissingDataError{PlayerID: playerID, What: "season stats"}
}

func (f *fakeRatings) Trace(ctx context.Context, playerID string, mode rating.Mode, year int, stage rating.Stage) (*models.RatingResult, *rating.Trace, error) {
	return nil, nil, errors.New("not used")
}

func (f *fakeRatings) Revision() string { return "2026a" }

// boardPair builds the rating pair fixture for one player.
func boardPair(id, name, class, role string, war, current, future float64) *models.RatingPair {
	cur := &models.RatingResult{
		PlayerID:   id,
		PlayerName: name,
		Class:      class,
		Role:       role,
		Age:        27,
		Overall:    current,
		Metrics:    models.RatingMetrics{WAR: war},
	}
	fut := *cur
	fut.Overall = future
	return &models.RatingPair{Current: cur, Future: &fut}
}

// fakePlayers serves active ID lists keyed by class.
type fakePlayers struct {
	active map[string][]string
	err    error
}

func (f *fakePlayers) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return nil, errors.New("not used")
}

func (f *fakePlayers) GetProfile(ctx context.Context, id string) (*models.PlayerProfile, error) {
	return nil, errors.New("not used")
}

func (f *fakePlayers) SearchPlayers(ctx context.Context, q string, limit int) ([]models.PlayerSummary, error) {
	return nil, errors.New("not used")
}

func (f *fakePlayers) Seasons(ctx context.Context, id string) ([]models.SeasonStatLine, []models.SeasonStatLine, error) {
	return nil, nil, errors.New("not used")
}

func (f *fakePlayers) ListActivePlayerIDs(ctx context.Context, class string, asOfYear int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active[class], nil
}

// fakeRedis is an in-memory stand-in for the board store. Pipelines
// record their commands and apply them on Exec.
type fakeRedis struct {
	mu      sync.Mutex
	strings map[string]string
	hashes  map[string]map[string]string
	zsets   map[string]map[string]float64
	deleted []string

	execErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		strings: make(map[string]string),
		hashes:  make(map[string]map[string]string),
		zsets:   make(map[string]map[string]float64),
	}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.strings[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strings[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.strings, key)
		f.deleted = append(f.deleted, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeRedis) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, key := range keys {
		if _, ok := f.strings[key]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if h, ok := f.hashes[key]; ok {
		if v, ok := h[field]; ok {
			return redis.NewStringResult(v, nil)
		}
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	return redis.NewZSliceCmdResult(nil, nil)
}

func (f *fakeRedis) TxPipeline() redis.Pipeliner {
	return &fakePipe{store: f}
}

// value lookups used by assertions

func (f *fakeRedis) str(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.strings[key]
	return v, ok
}

func (f *fakeRedis) zset(key string) map[string]float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]float64, len(f.zsets[key]))
	for m, s := range f.zsets[key] {
		out[m] = s
	}
	return out
}

func (f *fakeRedis) hash(key string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.hashes[key]))
	for fld, v := range f.hashes[key] {
		out[fld] = v
	}
	return out
}

type pipeZAdd struct {
	key    string
	member redis.Z
}

type pipeHSet struct {
	key, field, value string
}

type pipeSet struct {
	key, value string
}

// fakePipe records pipeline commands and applies them atomically on
// Exec. Only the methods the pool uses are implemented; anything else
// panics through the embedded nil interface.
type fakePipe struct {
	redis.Pipeliner
	store *fakeRedis

	zadds   []pipeZAdd
	hsets   []pipeHSet
	sets    []pipeSet
	expires []string
}

func (p *fakePipe) ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	for _, m := range members {
		p.zadds = append(p.zadds, pipeZAdd{key: key, member: m})
	}
	return redis.NewIntResult(int64(len(members)), nil)
}

func (p *fakePipe) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	for i := 0; i+1 < len(values); i += 2 {
		field := fmt.Sprint(values[i])
		var value string
		switch v := values[i+1].(type) {
		case []byte:
			value = string(v)
		default:
			value = fmt.Sprint(v)
		}
		p.hsets = append(p.hsets, pipeHSet{key: key, field: field, value: value})
	}
	return redis.NewIntResult(int64(len(values) / 2), nil)
}

func (p *fakePipe) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	p.sets = append(p.sets, pipeSet{key: key, value: fmt.Sprint(value)})
	return redis.NewStatusResult("OK", nil)
}

func (p *fakePipe) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	p.expires = append(p.expires, key)
	return redis.NewBoolResult(true, nil)
}

func (p *fakePipe) Exec(ctx context.Context) ([]redis.Cmder, error) {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.execErr != nil {
		return nil, s.execErr
	}

	for _, z := range p.zadds {
		if s.zsets[z.key] == nil {
			s.zsets[z.key] = make(map[string]float64)
		}
		s.zsets[z.key][fmt.Sprint(z.member.Member)] = z.member.Score
	}
	for _, h := range p.hsets {
		if s.hashes[h.key] == nil {
			s.hashes[h.key] = make(map[string]string)
		}
		s.hashes[h.key][h.field] = h.value
	}
	for _, kv := range p.sets {
		s.strings[kv.key] = kv.value
	}
	return nil, nil
}
