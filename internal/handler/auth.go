package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
)

func (h *Handler) RegisterAdmin(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	admin, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "register", err)
	}

	h.logger.Info("admin registered", slog.String("username", admin.Username))
	return c.JSON(http.StatusCreated, admin)
}

func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	token, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "login", err)
	}
	return c.JSON(http.StatusOK, token)
}
