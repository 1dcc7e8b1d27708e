package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const adminContextKey = "admin"

var (
	errMissingCredentials = map[string]string{"error": "missing credentials"}
	errInvalidToken       = map[string]string{"error": "invalid token"}
)

// RequireAdmin rejects requests without a valid bearer token and stores the
// token subject in the request context.
func RequireAdmin(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return c.JSON(http.StatusUnauthorized, errMissingCredentials)
			}

			subject, err := verifier.Verify(raw)
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
				return c.JSON(http.StatusUnauthorized, errInvalidToken)
			}

			c.Set(adminContextKey, subject)
			return next(c)
		}
	}
}

// AdminFrom returns the authenticated admin username set by RequireAdmin.
func AdminFrom(c echo.Context) string {
	s, _ := c.Get(adminContextKey).(string)
	return s
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
