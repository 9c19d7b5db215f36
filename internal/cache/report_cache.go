package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	reportKeyPrefix  = "analytics:report:"
	cacheCheckPeriod = 30 * time.Second
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// ReportCache stores computed analytics reports for a fixed TTL.
// Values are stored encoded so callers never share memory with the cache.
type ReportCache interface {
	// Get decodes the cached report under key into dest or returns ErrCacheMiss
	Get(ctx context.Context, key string, dest any) error

	// Set stores report under key
	Set(ctx context.Context, key string, report any) error

	// Flush drops every cached report
	Flush(ctx context.Context) error
}

// ReportKey builds the cache key of a report
func ReportKey(report string) string {
	return reportKeyPrefix + report
}

// MemoryReportCache keeps reports in process with go-cache
type MemoryReportCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryReportCache creates an in-process report cache
func NewMemoryReportCache(ttl time.Duration) *MemoryReportCache {
	return &MemoryReportCache{
		cache: gocache.New(ttl, cacheCheckPeriod),
		ttl:   ttl,
	}
}

// Get decodes the cached report under key into dest
func (c *MemoryReportCache) Get(_ context.Context, key string, dest any) error {
	data, found := c.cache.Get(key)
	if !found {
		metrics.CacheMisses.WithLabelValues("analytics_report").Inc()
		return ErrCacheMiss
	}

	raw, ok := data.([]byte)
	if !ok {
		logger.Error("Invalid cache data type", zap.String("key", key))
		c.cache.Delete(key)
		metrics.CacheMisses.WithLabelValues("analytics_report").Inc()
		return ErrCacheMiss
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.cache.Delete(key)
		return fmt.Errorf("failed to decode cached report %s: %w", key, err)
	}

	metrics.CacheHits.WithLabelValues("analytics_report").Inc()
	return nil
}

// Set stores report under key for the cache TTL
func (c *MemoryReportCache) Set(_ context.Context, key string, report any) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report %s: %w", key, err)
	}
	c.cache.Set(key, raw, c.ttl)
	return nil
}

// Flush drops every cached report
func (c *MemoryReportCache) Flush(_ context.Context) error {
	c.cache.Flush()
	logger.Info("Analytics report cache flushed")
	return nil
}

// NoopReportCache never stores anything; used when caching is disabled
type NoopReportCache struct{}

func (NoopReportCache) Get(context.Context, string, any) error { return ErrCacheMiss }
func (NoopReportCache) Set(context.Context, string, any) error { return nil }
func (NoopReportCache) Flush(context.Context) error            { return nil }

var (
	_ ReportCache = (*MemoryReportCache)(nil)
	_ ReportCache = NoopReportCache{}
)
