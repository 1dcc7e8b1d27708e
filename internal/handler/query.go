package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
	"linkshortener/internal/service"
)

var (
	errPageSizeRange = map[string]string{"error": "page_size must be between 1 and 100"}
	errPageRange     = map[string]string{"error": "page must be between 1 and 100000"}
	errLimitRange    = map[string]string{"error": "limit must be between 1 and 1000"}
	errInvalidDate   = map[string]string{"error": "dates must be YYYY-MM-DD"}
	errInvalidBool   = map[string]string{"error": "boolean parameters must be true or false"}
)

// queryError carries the response body for a rejected query parameter.
type queryError struct {
	body map[string]string
}

func (e *queryError) Error() string {
	return e.body["error"]
}

func (h *Handler) rejectQuery(c echo.Context, err error) error {
	var qe *queryError
	if errors.As(err, &qe) {
		return c.JSON(400, qe.body)
	}
	return c.JSON(400, errInvalidQuery)
}

// parseLinkFilter reads the admin link filters from the query string.
func parseLinkFilter(c echo.Context) (domain.LinkFilter, error) {
	f := domain.LinkFilter{
		Slug: c.QueryParam("slug"),
		Name: c.QueryParam("name"),
		URL:  c.QueryParam("url"),
		Tag:  c.QueryParam("tag"),
		Page: 1,
	}

	pageSize := service.DefaultPageSize
	err := echo.QueryParamsBinder(c).
		Int("page", &f.Page).
		Int("page_size", &pageSize).
		BindError()
	if err != nil {
		return f, err
	}
	if f.Page < 1 || f.Page > service.MaxPage {
		return f, &queryError{errPageRange}
	}
	if pageSize < 1 || pageSize > service.MaxPageSize {
		return f, &queryError{errPageSizeRange}
	}
	f.PageSize = pageSize

	if f.Active, err = optionalBool(c.QueryParam("is_active")); err != nil {
		return f, err
	}
	includeDeleted, err := optionalBool(c.QueryParam("include_deleted"))
	if err != nil {
		return f, err
	}
	f.IncludeDeleted = includeDeleted != nil && *includeDeleted

	if f.CreatedFrom, err = optionalDate(c.QueryParam("date_from"), false); err != nil {
		return f, err
	}
	if f.CreatedTo, err = optionalDate(c.QueryParam("date_to"), true); err != nil {
		return f, err
	}
	return f, nil
}

func parseLimit(c echo.Context) (int, error) {
	limit := service.DefaultLogLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return 0, err
	}
	if limit < 1 || limit > service.MaxLogLimit {
		return 0, &queryError{errLimitRange}
	}
	return limit, nil
}

func optionalBool(v string) (*bool, error) {
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, &queryError{errInvalidBool}
	}
	return &b, nil
}

// optionalDate parses a UTC calendar date. With endOfDay the result is the
// last instant of that day so the bound is inclusive.
func optionalDate(v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, &queryError{errInvalidDate}
	}
	if endOfDay {
		d = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &d, nil
}
