package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/service"
	"linkshortener/internal/validation"
)

var (
	errInvalidBody  = map[string]string{"error": "invalid request body"}
	errInvalidQuery = map[string]string{"error": "invalid query parameters"}
	errUnavailable  = map[string]string{"error": "service unavailable"}
	errInternal     = map[string]string{"error": "internal server error"}
	respHealthOK    = map[string]string{"status": "ok"}
)

// errorStatus maps domain errors to HTTP status codes. The response body is
// the sentinel's own message.
var errorStatus = []struct {
	err    error
	status int
}{
	{validation.ErrEmptyUpdate, http.StatusBadRequest},
	{service.ErrNoSlugs, http.StatusBadRequest},
	{service.ErrInvalidRange, http.StatusBadRequest},
	{service.ErrInvalidGroupBy, http.StatusBadRequest},
	{service.ErrInvalidUsername, http.StatusBadRequest},
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrRegistrationClosed, http.StatusForbidden},
	{service.ErrInvalidCreationToken, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrNoAccessLogs, http.StatusNotFound},
	{service.ErrSlugConflict, http.StatusConflict},
	{service.ErrAdminExists, http.StatusConflict},
	{service.ErrLinkDisabled, http.StatusGone},
}

type Deps struct {
	Links     LinkService
	Admin     AdminService
	Stats     StatsService
	Auth      AuthService
	Validator Validator
}

type Handler struct {
	links     LinkService
	admin     AdminService
	stats     StatsService
	auth      AuthService
	validator Validator
	logger    *slog.Logger
}

func New(deps Deps, logger *slog.Logger) *Handler {
	return &Handler{
		links:     deps.Links,
		admin:     deps.Admin,
		stats:     deps.Stats,
		auth:      deps.Auth,
		validator: deps.Validator,
		logger:    logger,
	}
}

// Register mounts every route. adminAuth guards the /admin group.
func (h *Handler) Register(e *echo.Echo, adminAuth echo.MiddlewareFunc) {
	e.GET("/health", h.Health)
	e.POST("/shorten", h.Shorten)

	auth := e.Group("/auth")
	auth.POST("/register", h.RegisterAdmin)
	auth.POST("/login", h.Login)

	admin := e.Group("/admin", adminAuth)
	admin.GET("/links", h.ListLinks)
	admin.GET("/links/export", h.ExportLinks)
	admin.GET("/links/:id", h.GetLink)
	admin.PATCH("/links/:id", h.UpdateLink)
	admin.DELETE("/links/:id", h.DeleteLink)
	admin.GET("/logs/:slug", h.AccessLogs)
	admin.GET("/logs/:slug/export", h.ExportAccessLogs)
	admin.POST("/qr/regenerate", h.RegenerateQR)
	admin.GET("/dash/overview", h.Overview)
	admin.GET("/dash/links/:slug/stats", h.LinkStats)

	e.GET("/:slug", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// fail writes the response for err. Unknown errors are logged and hidden.
func (h *Handler) fail(c echo.Context, op string, err error) error {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fe.Err.Error(),
			"field": fe.Field,
		})
	}

	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return c.JSON(m.status, map[string]string{"error": m.err.Error()})
		}
	}

	h.logger.Error("request failed",
		slog.String("op", op),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))

	if errors.Is(err, service.ErrUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, errUnavailable)
	}
	return c.JSON(http.StatusInternalServerError, errInternal)
}
