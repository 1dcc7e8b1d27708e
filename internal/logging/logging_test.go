package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/config"
	"linkshortener/internal/logging"
)

type captured struct {
	ProjectID string           `json:"project_id"`
	Entries   []map[string]any `json:"entries"`
}

func newLogServer(t *testing.T) (*httptest.Server, func() []captured) {
	t.Helper()
	var (
		mu      sync.Mutex
		batches []captured
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.Header.Get("X-API-Key"))

		var c captured
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		mu.Lock()
		batches = append(batches, c)
		mu.Unlock()
	}))
	t.Cleanup(srv.Close)

	return srv, func() []captured {
		mu.Lock()
		defer mu.Unlock()
		return append([]captured(nil), batches...)
	}
}

func TestNew_LocalOnly(t *testing.T) {
	var out bytes.Buffer
	logger, sender := logging.New(&config.LogConfig{Level: slog.LevelInfo}, &out)
	assert.Nil(t, sender)

	logger.Debug("hidden")
	logger.Info("shown", slog.String("slug", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "abc", line["slug"])
}

func TestNew_RemoteBatches(t *testing.T) {
	srv, batches := newLogServer(t)

	var out bytes.Buffer
	logger, sender := logging.New(&config.LogConfig{
		Level:         slog.LevelInfo,
		Endpoint:      srv.URL,
		ProjectID:     "links",
		APIKey:        "key-1",
		BufferSize:    16,
		FlushInterval: time.Hour,
		BatchSize:     2,
	}, &out)
	require.NotNil(t, sender)
	sender.Start(context.Background())

	child := logger.With(slog.String("component", "test"))
	child.Info("first")
	child.Warn("second")
	child.Error("third")
	sender.Close()

	got := batches()
	require.Len(t, got, 2)
	assert.Equal(t, "links", got[0].ProjectID)
	assert.Len(t, got[0].Entries, 2)
	assert.Len(t, got[1].Entries, 1)
	assert.Equal(t, "third", got[1].Entries[0]["msg"])
	assert.Equal(t, "test", got[1].Entries[0]["component"])

	// local output still receives everything
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestSender_DropsWhenFull(t *testing.T) {
	s := logging.NewSender(&config.LogConfig{
		Endpoint:      "http://127.0.0.1:1",
		BufferSize:    1,
		FlushInterval: time.Hour,
		BatchSize:     10,
	})

	_, _ = s.Write([]byte(`{"msg":"a"}`))
	_, _ = s.Write([]byte(`{"msg":"b"}`))

	assert.Equal(t, int64(1), s.Dropped())
}
