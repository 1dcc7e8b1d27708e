package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
)

func (h *Handler) statsRange(c echo.Context) (domain.StatsRange, error) {
	return h.stats.ResolveRange(domain.RangeParams{
		From:     c.QueryParam("from"),
		To:       c.QueryParam("to"),
		TimeZone: c.QueryParam("tz"),
	})
}

func parseTop(c echo.Context) (int, error) {
	var top int
	err := echo.QueryParamsBinder(c).Int("top", &top).BindError()
	return top, err
}

func (h *Handler) Overview(c echo.Context) error {
	top, err := parseTop(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidQuery)
	}

	rng, err := h.statsRange(c)
	if err != nil {
		return h.fail(c, "overview", err)
	}

	overview, err := h.stats.Overview(c.Request().Context(), rng, top)
	if err != nil {
		return h.fail(c, "overview", err)
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *Handler) LinkStats(c echo.Context) error {
	top, err := parseTop(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidQuery)
	}

	rng, err := h.statsRange(c)
	if err != nil {
		return h.fail(c, "link stats", err)
	}

	stats, err := h.stats.LinkStats(c.Request().Context(), c.Param("slug"), rng, c.QueryParam("group_by"), top)
	if err != nil {
		return h.fail(c, "link stats", err)
	}
	return c.JSON(http.StatusOK, stats)
}
