package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkshortener/internal/config"
)

// Writer is the part of pgxpool.Pool the recorder writes through.
type Writer interface {
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

type Recorder struct {
	writer Writer
	logger *slog.Logger
	cfg    *config.MetricsConfig

	http     *sink[HTTPMetric]
	business *sink[BusinessMetric]
	infra    *sink[InfraMetric]

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// Open connects to the metrics database and creates the metric tables.
func Open(ctx context.Context, cfg *config.MetricsConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to metrics database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping metrics database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create metric tables: %w", err)
	}
	return pool, nil
}

// NewRecorder builds a recorder. writer may be nil when metrics are disabled.
func NewRecorder(writer Writer, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		writer:     writer,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
	r.http = newSink("http", cfg.BufferSize, r.writeHTTP)
	r.business = newSink("business", cfg.BufferSize, r.writeBusiness)
	r.infra = newSink("infra", cfg.BufferSize, r.writeInfra)
	return r
}

func (r *Recorder) enabled() bool {
	return r.cfg.Enabled && r.writer != nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled() {
		return
	}
	r.http.offer(m, r.logger)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.enabled() {
		return
	}
	r.business.offer(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}, r.logger)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.enabled() {
		return
	}
	r.infra.offer(m, r.logger)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled() {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go r.http.run(ctx, r, flushInterval)
	go r.business.run(ctx, r, flushInterval)
	go r.infra.run(ctx, r, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close flushes buffered metrics and stops the flush goroutines.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) writeHTTP(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = m.row()
	}
	return r.copy(ctx, "http_metrics", httpColumns, rows)
}

func (r *Recorder) writeBusiness(ctx context.Context, batch []BusinessMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		labelsJSON, _ := json.Marshal(m.Labels)
		rows[i] = []any{m.Time, m.MetricName, m.Value, labelsJSON}
	}
	return r.copy(ctx, "business_metrics", businessColumns, rows)
}

func (r *Recorder) writeInfra(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = m.row()
	}
	return r.copy(ctx, "infra_metrics", infraColumns, rows)
}

func (r *Recorder) copy(ctx context.Context, table string, columns []string, rows [][]any) error {
	_, err := r.writer.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	return err
}
