package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"linkshortener/internal/metrics"
	"linkshortener/internal/middleware"
	"linkshortener/internal/middleware/mocks"
)

func recordOne(t *testing.T, method, route, target string, h echo.HandlerFunc) metrics.HTTPMetric {
	t.Helper()

	rec := mocks.NewMockHTTPRecorder(t)
	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.Add(method, route, h)

	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "10.1.2.3:5555"
	e.ServeHTTP(httptest.NewRecorder(), req)

	return captured
}

func TestMetrics_Redirect(t *testing.T) {
	m := recordOne(t, http.MethodGet, "/:slug", "/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com/docs")
	})

	assert.Equal(t, http.MethodGet, m.Method)
	assert.Equal(t, "/:slug", m.Path)
	assert.Equal(t, http.StatusFound, m.StatusCode)
	assert.Equal(t, "10.1.2.3", m.ClientIP)
	assert.GreaterOrEqual(t, m.DurationMs, 0.0)
	assert.Empty(t, m.Error)
	assert.False(t, m.Time.IsZero())
}

func TestMetrics_StatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
		wantError  string
	}{
		{
			name: "http error",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusGone, "link is disabled")
			},
			wantStatus: http.StatusGone,
			wantError:  "code=410, message=link is disabled",
		},
		{
			name: "plain error before response",
			handler: func(c echo.Context) error {
				return errors.New("store unavailable")
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "store unavailable",
		},
		{
			name: "plain error after response",
			handler: func(c echo.Context) error {
				if err := c.NoContent(http.StatusAccepted); err != nil {
					return err
				}
				return errors.New("late failure")
			},
			wantStatus: http.StatusAccepted,
			wantError:  "late failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := recordOne(t, http.MethodPost, "/shorten", "/shorten", tt.handler)

			assert.Equal(t, tt.wantStatus, m.StatusCode)
			assert.Equal(t, tt.wantError, m.Error)
		})
	}
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)
	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, captured.StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
