package middleware

//go:generate go tool mockery

import "linkshortener/internal/metrics"

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

type TokenVerifier interface {
	Verify(raw string) (string, error)
}
