package callback_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/callback"
	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

func newNotifier(workers, queue int) *callback.Notifier {
	return callback.New(&config.CallbackConfig{
		Timeout:   time.Second,
		Workers:   workers,
		QueueSize: queue,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotifier_Delivers(t *testing.T) {
	var (
		mu       sync.Mutex
		received []domain.CallbackEvent
		eventIDs []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev domain.CallbackEvent
		_ = json.NewDecoder(r.Body).Decode(&ev)

		mu.Lock()
		received = append(received, ev)
		eventIDs = append(eventIDs, r.Header.Get("X-Event-ID"))
		mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := newNotifier(2, 10)
	n.Start(context.Background())

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ok := n.Notify(domain.CallbackEvent{
		Slug:        "abc123",
		URL:         "https://example.com",
		IP:          "198.51.100.4",
		UserAgent:   "curl/8.0",
		Timestamp:   ts,
		CallbackURL: srv.URL,
	})
	require.True(t, ok)

	n.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, domain.EventLinkVisited, received[0].Event)
	assert.Equal(t, "abc123", received[0].Slug)
	assert.Equal(t, "198.51.100.4", received[0].IP)
	assert.True(t, ts.Equal(received[0].Timestamp))
	assert.NotEmpty(t, received[0].ID)
	assert.Equal(t, received[0].ID, eventIDs[0])
}

func TestNotifier_SkipsWithoutURL(t *testing.T) {
	n := newNotifier(1, 1)
	n.Start(context.Background())
	defer n.Close()

	assert.False(t, n.Notify(domain.CallbackEvent{Slug: "abc"}))
}

func TestNotifier_DropsWhenFull(t *testing.T) {
	// not started, so nothing drains the queue
	n := newNotifier(1, 1)

	ev := domain.CallbackEvent{Slug: "abc", CallbackURL: "http://127.0.0.1:1/hook"}
	assert.True(t, n.Notify(ev))
	assert.False(t, n.Notify(ev))
	assert.Equal(t, 1, n.QueueLen())
}

func TestNotifier_RejectsAfterClose(t *testing.T) {
	n := newNotifier(1, 1)
	n.Start(context.Background())
	n.Close()

	assert.False(t, n.Notify(domain.CallbackEvent{Slug: "abc", CallbackURL: "http://example.com"}))
	// idempotent
	n.Close()
}

func TestNotifier_FailureDoesNotBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := newNotifier(1, 4)
	n.Start(context.Background())

	for range 3 {
		assert.True(t, n.Notify(domain.CallbackEvent{Slug: "abc", CallbackURL: srv.URL}))
	}

	done := make(chan struct{})
	go func() {
		n.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("close did not return")
	}
}
