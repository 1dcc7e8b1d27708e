package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"linkshortener/internal/config"
)

// New builds the service logger: JSON to out, plus JSON batches to the remote
// log API when one is configured. The returned Sender is nil without one.
func New(cfg *config.LogConfig, out io.Writer) (*slog.Logger, *Sender) {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	local := slog.NewJSONHandler(out, opts)

	if cfg.Endpoint == "" {
		return slog.New(local), nil
	}

	sender := NewSender(cfg)
	remote := slog.NewJSONHandler(sender, opts)
	return slog.New(fanout{local, remote}), sender
}

// fanout passes every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
