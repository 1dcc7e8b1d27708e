package metrics

import (
	"context"
	"log/slog"
	"time"
)

// sink buffers one kind of metric and hands batches to write.
type sink[T any] struct {
	name  string
	ch    chan T
	write func(ctx context.Context, batch []T) error
}

func newSink[T any](name string, size int, write func(context.Context, []T) error) *sink[T] {
	return &sink[T]{
		name:  name,
		ch:    make(chan T, max(1, size)),
		write: write,
	}
}

func (s *sink[T]) offer(m T, logger *slog.Logger) {
	select {
	case s.ch <- m:
	default:
		logger.Warn("metrics buffer full, dropping metric", slog.String("kind", s.name))
	}
}

func (s *sink[T]) run(ctx context.Context, r *Recorder, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			s.drain(r, batch)
			return
		case <-r.shutdownCh:
			s.drain(r, batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				s.flush(ctx, r, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, r, batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *sink[T]) drain(r *Recorder, batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				s.flush(ctx, r, batch)
				cancel()
			}
			return
		}
	}
}

func (s *sink[T]) flush(ctx context.Context, r *Recorder, batch []T) {
	if err := s.write(ctx, batch); err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("kind", s.name),
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
