package handler_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/domain"
	"linkshortener/internal/service"
	"linkshortener/internal/validation"
)

func TestListLinks_Defaults(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().ListLinks(mock.Anything, domain.LinkFilter{Page: 1, PageSize: service.DefaultPageSize}).
		Return(&domain.LinkPage{Data: []domain.Link{{ID: "1", Slug: "docs"}}, Page: 1, PageSize: 20, Total: 1}, nil)

	rec := do(e, http.MethodGet, "/admin/links", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), `"slug":"docs"`)
}

func TestListLinks_Filters(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().ListLinks(mock.Anything, mock.MatchedBy(func(f domain.LinkFilter) bool {
		return f.Slug == "do" &&
			f.Name == "guide" &&
			f.Tag == "eng" &&
			f.Page == 2 &&
			f.PageSize == 50 &&
			f.Active != nil && !*f.Active &&
			f.IncludeDeleted &&
			f.CreatedFrom.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			f.CreatedTo.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
	})).Return(&domain.LinkPage{Page: 2, PageSize: 50}, nil)

	rec := do(e, http.MethodGet,
		"/admin/links?slug=do&name=guide&tag=eng&page=2&page_size=50&is_active=false&include_deleted=true&date_from=2024-03-01&date_to=2024-03-01", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListLinks_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"page size too large", "page_size=101"},
		{"page size zero", "page_size=0"},
		{"page zero", "page=0"},
		{"page not a number", "page=two"},
		{"page too large", "page=100001"},
		{"page near int max", "page=9223372036854775807"},
		{"bad bool", "is_active=maybe"},
		{"bad date", "date_from=03/01/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t)

			rec := do(e, http.MethodGet, "/admin/links?"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestExportLinks(t *testing.T) {
	e, d := newTestServer(t)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d.admin.EXPECT().ExportLinks(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.LinkFilter, fn func(*domain.Link) error) error {
			return fn(&domain.Link{
				ID:        "7",
				Slug:      "docs",
				Name:      "Docs, internal",
				URL:       "https://example.com",
				Tags:      []string{"eng", "wiki"},
				Active:    true,
				CreatedAt: created,
			})
		})

	rec := do(e, http.MethodGet, "/admin/links/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Regexp(t, `attachment; filename="links-\d{8}-\d{4}\.csv"`, rec.Header().Get(echo.HeaderContentDisposition))

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "qr_svg", rows[0][len(rows[0])-1])
	assert.Equal(t, []string{"7", "docs", "Docs, internal", "https://example.com", "", "eng|wiki", "true", "false",
		"2024-05-01T12:00:00Z", "", "", "0", "", "", ""}, rows[1])
}

func TestExportLinks_Empty(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().ExportLinks(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	rec := do(e, http.MethodGet, "/admin/links/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,slug,name,url"))
}

func TestExportLinks_FailsBeforeFirstRow(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().ExportLinks(mock.Anything, mock.Anything, mock.Anything).Return(service.ErrUnavailable)

	rec := do(e, http.MethodGet, "/admin/links/export", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func TestGetLink(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().GetLink(mock.Anything, "42").Return(&domain.Link{ID: "42", Slug: "docs"}, nil)

	rec := do(e, http.MethodGet, "/admin/links/42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"42"`)
}

func TestGetLink_NotFound(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().GetLink(mock.Anything, "404").Return(nil, service.ErrNotFound)

	rec := do(e, http.MethodGet, "/admin/links/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"link not found"}`, rec.Body.String())
}

func TestUpdateLink(t *testing.T) {
	e, d := newTestServer(t)

	d.validator.EXPECT().ValidateUpdate(mock.MatchedBy(func(u domain.LinkUpdate) bool {
		return u.Active != nil && !*u.Active && u.Name == nil
	})).Return(nil)
	d.admin.EXPECT().UpdateLink(mock.Anything, "42", mock.Anything).
		Return(&domain.Link{ID: "42", Slug: "docs", Active: false}, nil)

	rec := do(e, http.MethodPatch, "/admin/links/42", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}

func TestUpdateLink_Empty(t *testing.T) {
	e, d := newTestServer(t)

	d.validator.EXPECT().ValidateUpdate(domain.LinkUpdate{}).Return(validation.ErrEmptyUpdate)

	rec := do(e, http.MethodPatch, "/admin/links/42", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"no fields to update"}`, rec.Body.String())
}

func TestDeleteLink(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().DeleteLink(mock.Anything, "42").Return(nil)

	rec := do(e, http.MethodDelete, "/admin/links/42", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteLink_NotFound(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().DeleteLink(mock.Anything, "42").Return(service.ErrNotFound)

	rec := do(e, http.MethodDelete, "/admin/links/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccessLogs(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().AccessLogs(mock.Anything, "docs", 10).
		Return([]domain.AccessLog{{ID: "l1", Slug: "docs", IP: "10.0.0.1"}}, nil)

	rec := do(e, http.MethodGet, "/admin/logs/docs?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ip":"10.0.0.1"`)
}

func TestAccessLogs_DefaultLimit(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().AccessLogs(mock.Anything, "docs", service.DefaultLogLimit).Return(nil, service.ErrNoAccessLogs)

	rec := do(e, http.MethodGet, "/admin/logs/docs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccessLogs_LimitOutOfRange(t *testing.T) {
	for _, q := range []string{"limit=0", "limit=1001", "limit=x"} {
		e, _ := newTestServer(t)

		rec := do(e, http.MethodGet, "/admin/logs/docs?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestExportAccessLogs(t *testing.T) {
	e, d := newTestServer(t)

	ts := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	d.admin.EXPECT().ExportAccessLogs(mock.Anything, "docs", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*domain.AccessLog) error) error {
			return fn(&domain.AccessLog{
				ID:        "l1",
				Slug:      "docs",
				IP:        "10.0.0.1",
				Timestamp: ts,
				UserAgent: "curl/8.0",
				ClientInfo: domain.ClientInfo{
					Browser: "curl",
					OS:      "Other",
					Device:  "Other",
				},
			})
		})

	rec := do(e, http.MethodGet, "/admin/logs/docs/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `filename="accesslog-docs-\d{8}-\d{4}\.csv"`, rec.Header().Get(echo.HeaderContentDisposition))

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "timestamp", rows[0][1])
	assert.Equal(t, "2024-05-02T08:30:00Z", rows[1][1])
	assert.Equal(t, "curl/8.0", rows[1][4])
}

func TestExportAccessLogs_NoLogs(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().ExportAccessLogs(mock.Anything, "docs", mock.Anything).Return(service.ErrNoAccessLogs)

	rec := do(e, http.MethodGet, "/admin/logs/docs/export", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportAccessLogs_FailsMidStream(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().ExportAccessLogs(mock.Anything, "docs", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*domain.AccessLog) error) error {
			if err := fn(&domain.AccessLog{ID: "l1", Slug: "docs"}); err != nil {
				return err
			}
			return errors.New("cursor died")
		})

	rec := do(e, http.MethodGet, "/admin/logs/docs/export", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "l1,")
}

func TestRegenerateQR(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().RegenerateQR(mock.Anything, mock.MatchedBy(func(r domain.RegenerateQRRequest) bool {
		return len(r.Slugs) == 2 && r.Force != nil && !*r.Force
	})).Return(&domain.RegenerateQRResponse{
		Updated: 1,
		Results: []domain.QRResult{
			{Slug: "docs", OK: true},
			{Slug: "gone", Reason: "not_found"},
		},
	}, nil)

	rec := do(e, http.MethodPost, "/admin/qr/regenerate", `{"slugs":["docs","gone"],"force":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":1`)
	assert.Contains(t, rec.Body.String(), `"reason":"not_found"`)
}

func TestRegenerateQR_NoSlugs(t *testing.T) {
	e, d := newTestServer(t)

	d.admin.EXPECT().RegenerateQR(mock.Anything, mock.Anything).Return(nil, service.ErrNoSlugs)

	rec := do(e, http.MethodPost, "/admin/qr/regenerate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
