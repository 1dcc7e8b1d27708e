package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

// Notifier delivers visit events to per-link callback URLs from a bounded
// queue. Delivery is best effort: a full queue drops the event and failed
// deliveries are only logged.
type Notifier struct {
	client  *http.Client
	logger  *slog.Logger
	workers int
	queue   chan domain.CallbackEvent

	mu     sync.RWMutex
	closed bool

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func New(cfg *config.CallbackConfig, logger *slog.Logger) *Notifier {
	return &Notifier{
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		workers: max(1, cfg.Workers),
		queue:   make(chan domain.CallbackEvent, max(1, cfg.QueueSize)),
	}
}

func (n *Notifier) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)

	n.wg.Add(n.workers)
	for range n.workers {
		go n.work(base)
	}

	n.logger.Info("callback notifier started",
		slog.Int("workers", n.workers),
		slog.Int("queue_size", cap(n.queue)))
}

// Notify enqueues ev without blocking. It reports whether the event was accepted.
func (n *Notifier) Notify(ev domain.CallbackEvent) bool {
	if ev.CallbackURL == "" {
		return false
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Event == "" {
		ev.Event = domain.EventLinkVisited
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return false
	}

	select {
	case n.queue <- ev:
		return true
	default:
		n.logger.Warn("callback queue full, dropping event",
			slog.String("slug", ev.Slug),
			slog.String("event_id", ev.ID))
		return false
	}
}

func (n *Notifier) QueueLen() int {
	return len(n.queue)
}

// Close stops accepting events and waits for queued ones to be delivered.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()

		n.wg.Wait()
	})
}

func (n *Notifier) work(ctx context.Context) {
	defer n.wg.Done()
	for ev := range n.queue {
		if err := n.deliver(ctx, ev); err != nil {
			n.logger.Warn("callback delivery failed",
				slog.String("slug", ev.Slug),
				slog.String("event_id", ev.ID),
				slog.String("error", err.Error()))
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, ev domain.CallbackEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ev.CallbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-ID", ev.ID)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
