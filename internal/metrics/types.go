package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

// BusinessMetric is a named domain event such as a created link or a redirect.
type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

type InfraMetric struct {
	Time          time.Time
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	CallbackQueue int
	Goroutines    int
	HeapAllocMB   float64
}

func (m HTTPMetric) row() []any {
	return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
}

func (m InfraMetric) row() []any {
	return []any{
		m.Time, m.CacheHits, m.CacheMisses, m.CacheHitRatio,
		m.CallbackQueue, m.Goroutines, m.HeapAllocMB,
	}
}

var (
	httpColumns     = []string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"}
	businessColumns = []string{"time", "metric_name", "value", "labels"}
	infraColumns    = []string{
		"time", "cache_hits", "cache_misses", "cache_hit_ratio",
		"callback_queue", "goroutines", "heap_alloc_mb",
	}
)

const schema = `
CREATE TABLE IF NOT EXISTS http_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	method      TEXT             NOT NULL,
	path        TEXT             NOT NULL,
	status_code INTEGER          NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip   TEXT,
	error       TEXT
);
CREATE TABLE IF NOT EXISTS business_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	metric_name TEXT             NOT NULL,
	value       DOUBLE PRECISION NOT NULL,
	labels      JSONB
);
CREATE TABLE IF NOT EXISTS infra_metrics (
	time            TIMESTAMPTZ      NOT NULL,
	cache_hits      BIGINT,
	cache_misses    BIGINT,
	cache_hit_ratio DOUBLE PRECISION,
	callback_queue  INTEGER,
	goroutines      INTEGER,
	heap_alloc_mb   DOUBLE PRECISION
);
CREATE INDEX IF NOT EXISTS business_metrics_name_time_idx ON business_metrics (metric_name, time DESC);
`
