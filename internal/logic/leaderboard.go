package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dugoutlabs/ratings-api/internal/models"
	"github.com/dugoutlabs/ratings-api/internal/rating"
)

type leaderboardService struct {
	redis RedisClient
}

func NewLeaderboardService(redis RedisClient) LeaderboardService {
	return &leaderboardService{redis: redis}
}

// BoardKey is the sorted-set key for one board. The payload hash, the
// build timestamp and the in-progress flag hang off it as suffixes.
func BoardKey(class string, year int, stage rating.Stage) string {
	return fmt.Sprintf("board:%s:%d:%s", class, year, stage)
}

func (s *leaderboardService) Board(ctx context.Context, class string, year int, stage rating.Stage, limit int) (*models.Board, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	key := BoardKey(class, year, stage)

	board := &models.Board{
		Class:   class,
		Year:    year,
		Stage:   stage.String(),
		Entries: []models.BoardEntry{},
	}

	if n, err := s.redis.Exists(ctx, key+":building").Result(); err == nil && n > 0 {
		board.Building = true
	}
	if raw, err := s.redis.Get(ctx, key+":built_at").Result(); err == nil {
		if t, perr := time.Parse(time.RFC3339, raw); perr == nil {
			board.BuiltAt = t
		}
	}

	members, err := s.redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", key, err)
	}

	for i, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		raw, err := s.redis.HGet(ctx, key+":payload", id).Result()
		if err != nil {
			continue
		}
		var entry models.BoardEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		entry.Rank = i + 1
		entry.WAR = m.Score
		board.Entries = append(board.Entries, entry)
	}
	return board, nil
}
