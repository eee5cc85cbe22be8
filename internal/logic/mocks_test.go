package logic

import (
	"context"
	"reflect"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// MockCHConn implements driver.Conn for testing
type MockCHConn struct {
	driver.Conn
	QueryCalls int
	QueryFunc  func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error)
}

func (m *MockCHConn) Query(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
	m.QueryCalls++
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, args...)
	}
	return &MockCHRows{}, nil
}

// MockCHRows implements driver.Rows for testing
type MockCHRows struct {
	driver.Rows
	Data  [][]interface{}
	Index int
}

func (m *MockCHRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockCHRows) Scan(dest ...interface{}) error {
	if m.Index > len(m.Data) {
		return nil
	}
	row := m.Data[m.Index-1]
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockCHRows) Close() error { return nil }
func (m *MockCHRows) Err() error   { return nil }

func setDest(dest interface{}, val interface{}) {
	v := reflect.ValueOf(dest).Elem()
	valV := reflect.ValueOf(val)
	// Handle type conversion if needed (e.g. int to uint32)
	if valV.Type().ConvertibleTo(v.Type()) {
		v.Set(valV.Convert(v.Type()))
	} else {
		v.Set(valV)
	}
}

// MockPgPool implements PgPool for testing
type MockPgPool struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockPgRows{}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockPgRow{Err: pgx.ErrNoRows}
}

func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// MockPgRows implements pgx.Rows for testing
type MockPgRows struct {
	pgx.Rows
	Data  [][]interface{}
	Index int
}

func (m *MockPgRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockPgRows) Scan(dest ...any) error {
	if m.Index > len(m.Data) {
		return nil
	}
	row := m.Data[m.Index-1]
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockPgRows) Close()     {}
func (m *MockPgRows) Err() error { return nil }

// MockPgRow implements pgx.Row for testing
type MockPgRow struct {
	Data []interface{}
	Err  error
}

func (m *MockPgRow) Scan(dest ...any) error {
	if m.Err != nil {
		return m.Err
	}
	for i, val := range m.Data {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

// MockRedis implements RedisClient over in-memory maps. Sorted sets are
// stored already ranked descending.
type MockRedis struct {
	Store    map[string]string
	Hashes   map[string]map[string]string
	ZSets    map[string][]redis.Z
	SetCalls int
	GetCalls int
}

func NewMockRedis() *MockRedis {
	return &MockRedis{
		Store:  map[string]string{},
		Hashes: map[string]map[string]string{},
		ZSets:  map[string][]redis.Z{},
	}
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.GetCalls++
	if v, ok := m.Store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.SetCalls++
	switch v := value.(type) {
	case string:
		m.Store[key] = v
	case []byte:
		m.Store[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.Store[k]; ok {
			delete(m.Store, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *MockRedis) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.Store[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *MockRedis) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	if h, ok := m.Hashes[key]; ok {
		if v, ok := h[field]; ok {
			return redis.NewStringResult(v, nil)
		}
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	zs := m.ZSets[key]
	if start >= int64(len(zs)) {
		return redis.NewZSliceCmdResult(nil, nil)
	}
	if stop < 0 || stop >= int64(len(zs)) {
		stop = int64(len(zs)) - 1
	}
	out := make([]redis.Z, 0, stop-start+1)
	for i := start; i <= stop; i++ {
		out = append(out, zs[i])
	}
	return redis.NewZSliceCmdResult(out, nil)
}

func (m *MockRedis) TxPipeline() redis.Pipeliner { return nil }

// chPitcherRow builds one player_seasons row in seasonColumns order with
// the batting side zeroed.
func chPitcherRow(id string, year, age int, level string, ip float64, so, bb, hr, gs, gr uint32) []interface{} {
	return []interface{}{
		id, uint16(year), uint8(age), level, "pitcher",
		ip, uint32(0), so, bb, hr, uint32(0), gs, gr,
		uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0),
	}
}

func chBatterRow(id string, year, age int, level string, pa, h, double, triple, hr, bb, so uint32) []interface{} {
	return []interface{}{
		id, uint16(year), uint8(age), level, "batter",
		0.0, uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0), uint32(0),
		pa, h, double, triple, hr, bb, so,
	}
}
