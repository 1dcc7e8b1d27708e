package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"linkshortener/internal/config"
)

type batchPayload struct {
	ProjectID string            `json:"project_id"`
	Entries   []json.RawMessage `json:"entries"`
}

// Sender is an io.Writer that collects JSON log lines and posts them to the
// remote log API in batches. Writes never block; lines are dropped when the
// buffer is full.
type Sender struct {
	endpoint  string
	projectID string
	apiKey    string
	batchSize int
	interval  time.Duration
	client    *http.Client

	lines   chan json.RawMessage
	dropped atomic.Int64
	failed  atomic.Int64

	wg        sync.WaitGroup
	stopCh    chan struct{}
	closeOnce sync.Once
}

func NewSender(cfg *config.LogConfig) *Sender {
	return &Sender{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		projectID: cfg.ProjectID,
		apiKey:    cfg.APIKey,
		batchSize: max(1, cfg.BatchSize),
		interval:  cfg.FlushInterval,
		client:    &http.Client{Timeout: 5 * time.Second},
		lines:     make(chan json.RawMessage, max(1, cfg.BufferSize)),
		stopCh:    make(chan struct{}),
	}
}

func (s *Sender) Write(p []byte) (int, error) {
	line := bytes.TrimSpace(p)
	if len(line) == 0 {
		return len(p), nil
	}

	select {
	case s.lines <- json.RawMessage(bytes.Clone(line)):
	default:
		s.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped returns how many lines were discarded because the buffer was full.
func (s *Sender) Dropped() int64 {
	return s.dropped.Load()
}

// Failed returns how many lines were lost to failed posts.
func (s *Sender) Failed() int64 {
	return s.failed.Load()
}

func (s *Sender) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(context.WithoutCancel(ctx))
}

// Close flushes buffered lines and stops the sender.
func (s *Sender) Close() {
	s.closeOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
	})
}

func (s *Sender) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	batch := make([]json.RawMessage, 0, s.batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.post(ctx, batch); err != nil {
			s.failed.Add(int64(len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-s.stopCh:
			for {
				select {
				case line := <-s.lines:
					batch = append(batch, line)
					if len(batch) >= s.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case line := <-s.lines:
			batch = append(batch, line)
			if len(batch) >= s.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *Sender) post(ctx context.Context, batch []json.RawMessage) error {
	body, err := json.Marshal(batchPayload{ProjectID: s.projectID, Entries: batch})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("log api returned status %d", resp.StatusCode)
	}
	return nil
}
