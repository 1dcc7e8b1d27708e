package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
)

func (h *Handler) ListLinks(c echo.Context) error {
	filter, err := parseLinkFilter(c)
	if err != nil {
		return h.rejectQuery(c, err)
	}

	page, err := h.admin.ListLinks(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, "list links", err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) ExportLinks(c echo.Context) error {
	filter, err := parseLinkFilter(c)
	if err != nil {
		return h.rejectQuery(c, err)
	}

	out := newCSVStream(c, exportFilename("links", time.Now()), linkColumns)
	err = h.admin.ExportLinks(c.Request().Context(), filter, func(l *domain.Link) error {
		return out.write(linkRecord(l))
	})
	return out.finish(h, "export links", err)
}

func (h *Handler) GetLink(c echo.Context) error {
	link, err := h.admin.GetLink(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "get link", err)
	}
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) UpdateLink(c echo.Context) error {
	var update domain.LinkUpdate
	if err := c.Bind(&update); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateUpdate(update); err != nil {
		return h.fail(c, "update link", err)
	}

	link, err := h.admin.UpdateLink(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return h.fail(c, "update link", err)
	}
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) DeleteLink(c echo.Context) error {
	if err := h.admin.DeleteLink(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, "delete link", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AccessLogs(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return h.rejectQuery(c, err)
	}

	logs, err := h.admin.AccessLogs(c.Request().Context(), c.Param("slug"), limit)
	if err != nil {
		return h.fail(c, "access logs", err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *Handler) ExportAccessLogs(c echo.Context) error {
	slug := c.Param("slug")

	out := newCSVStream(c, exportFilename("accesslog-"+slug, time.Now()), accessLogColumns)
	err := h.admin.ExportAccessLogs(c.Request().Context(), slug, func(a *domain.AccessLog) error {
		return out.write(accessLogRecord(a))
	})
	return out.finish(h, "export access logs", err)
}

func (h *Handler) RegenerateQR(c echo.Context) error {
	var req domain.RegenerateQRRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	resp, err := h.admin.RegenerateQR(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "regenerate qr", err)
	}
	return c.JSON(http.StatusOK, resp)
}
