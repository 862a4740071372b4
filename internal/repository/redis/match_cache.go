package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// MatchCacheRepository keeps ranked match lists hot for repeat page loads.
// Entries are invalidated by TTL only; a quiz re-submission always
// recomputes and overwrites.
type MatchCacheRepository struct {
	client *redis.Client
}

var _ quiz.MatchCache = (*MatchCacheRepository)(nil)

func NewMatchCacheRepository(client *redis.Client) *MatchCacheRepository {
	return &MatchCacheRepository{
		client: client,
	}
}

func matchKey(userID uint, topN int) string {
	return fmt.Sprintf("match:user:%d:top:%d", userID, topN)
}

func (r *MatchCacheRepository) Get(ctx context.Context, userID uint, topN int) ([]matching.RankedVehicle, bool, error) {
	val, err := r.client.Get(ctx, matchKey(userID, topN)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get match cache: %w", err)
	}

	var recs []matching.RankedVehicle
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached matches: %w", err)
	}

	metrics.MatchCacheHitsTotal.Inc()

	return recs, true, nil
}

func (r *MatchCacheRepository) Set(ctx context.Context, userID uint, topN int, recs []matching.RankedVehicle, ttl time.Duration) error {
	jsonData, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}

	if err := r.client.Set(ctx, matchKey(userID, topN), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache matches: %w", err)
	}

	return nil
}

// Invalidate drops every cached list for the user, regardless of topN.
func (r *MatchCacheRepository) Invalidate(ctx context.Context, userID uint) error {
	pattern := fmt.Sprintf("match:user:%d:top:*", userID)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to invalidate match cache: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan match cache keys: %w", err)
	}

	return nil
}
