package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
)

func (h *Handler) Shorten(c echo.Context) error {
	var req domain.ShortenRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateShorten(req); err != nil {
		return h.fail(c, "shorten", err)
	}

	resp, err := h.links.Shorten(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "shorten", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Redirect(c echo.Context) error {
	req := c.Request()

	target, err := h.links.Visit(req.Context(), c.Param("slug"), domain.Visit{
		IP:        c.RealIP(),
		UserAgent: req.UserAgent(),
		Referer:   req.Referer(),
	})
	if err != nil {
		return h.fail(c, "redirect", err)
	}

	return c.Redirect(http.StatusFound, target)
}
