package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/talentra/hrm-backend/internal/config"
	"github.com/talentra/hrm-backend/internal/model"
)

// ReportCache keeps the employees-by-department report in Redis under a
// short TTL and drops it on any employee or department write. A nil client
// disables caching entirely, which keeps the read path correct without
// Redis (and in tests).
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewReportCache creates a new ReportCache.
func NewReportCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached report, or ok=false on miss or cache error.
func (c *ReportCache) Get(ctx context.Context) ([]model.DepartmentHeadcount, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, config.CacheKey.EmployeesByDepartmentKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("report cache read failed")
		}
		return nil, false
	}

	var report []model.DepartmentHeadcount
	if err := json.Unmarshal(payload, &report); err != nil {
		c.log.Warn().Err(err).Msg("report cache payload corrupt")
		return nil, false
	}
	return report, true
}

// Set stores the report under the configured TTL. Failures are logged and
// ignored; the cache is best-effort.
func (c *ReportCache) Set(ctx context.Context, report []model.DepartmentHeadcount) {
	if c == nil || c.rdb == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		c.log.Warn().Err(err).Msg("report cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, config.CacheKey.EmployeesByDepartmentKey(), payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("report cache write failed")
	}
}

// Invalidate drops the cached report.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, config.CacheKey.EmployeesByDepartmentKey()).Err(); err != nil {
		c.log.Warn().Err(err).Msg("report cache invalidation failed")
	}
}
