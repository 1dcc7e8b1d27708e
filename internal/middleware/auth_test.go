package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"linkshortener/internal/middleware"
	"linkshortener/internal/middleware/mocks"
)

func newAdminEcho(verifier middleware.TokenVerifier) *echo.Echo {
	e := echo.New()
	g := e.Group("/admin", middleware.RequireAdmin(verifier))
	g.Any("/links", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.AdminFrom(c))
	})
	return e
}

func TestRequireAdmin_MissingCredentials(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier(t)
	e := newAdminEcho(verifier)

	headers := []string{"", "Bearer", "Bearer   ", "Basic dXNlcjpwYXNz", "token-without-scheme"}
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}

	for _, h := range headers {
		for _, m := range methods {
			req := httptest.NewRequest(m, "/admin/links", nil)
			if h != "" {
				req.Header.Set(echo.HeaderAuthorization, h)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %q", m, h)
			assert.JSONEq(t, `{"error":"missing credentials"}`, rec.Body.String())
		}
	}
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("bad").Return("", errors.New("expired")).Times(2)
	e := newAdminEcho(verifier)

	for _, m := range []string{http.MethodGet, http.MethodDelete} {
		req := httptest.NewRequest(m, "/admin/links", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())
	}
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("good").Return("alice", nil).Once()
	e := newAdminEcho(verifier)

	req := httptest.NewRequest(http.MethodGet, "/admin/links", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}
