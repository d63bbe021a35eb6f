package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/skilltrack/internal/logger"
)

// ReportCacheRepository provides cached analytics reports using Redis
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached reports
}

// NewReportCacheRepository creates a new repository instance with optional TTL
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetReport fetches a cached report and unmarshals it into dest.
func (r *ReportCacheRepository) GetReport(ctx context.Context, name string, dest any) error {
	key := fmt.Sprintf("analytics_report:%s", name)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return fmt.Errorf("report not found in cache for %s", name)
		}
		return err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return nil
}

// SetReport caches a marshalled report in Redis with expiration.
func (r *ReportCacheRepository) SetReport(ctx context.Context, name string, report any) error {
	key := fmt.Sprintf("analytics_report:%s", name)

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
