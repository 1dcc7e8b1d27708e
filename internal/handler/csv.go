package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
)

var linkColumns = []string{
	"id", "slug", "name", "url", "notes", "tags", "is_active", "deleted",
	"created_at", "updated_at", "deleted_at", "click_count", "callback_url", "qr_png", "qr_svg",
}

var accessLogColumns = []string{
	"id", "timestamp", "slug", "ip", "user_agent", "referer", "browser", "browser_version",
	"os", "os_version", "device", "is_mobile", "is_tablet", "is_pc", "is_bot",
}

// csvStream writes a CSV attachment. Headers go out with the first row, so
// an error before any row can still become a normal JSON error response.
type csvStream struct {
	c        echo.Context
	w        *csv.Writer
	filename string
	columns  []string
	started  bool
}

func newCSVStream(c echo.Context, filename string, columns []string) *csvStream {
	return &csvStream{
		c:        c,
		w:        csv.NewWriter(c.Response()),
		filename: filename,
		columns:  columns,
	}
}

func (s *csvStream) start() error {
	s.started = true
	h := s.c.Response().Header()
	h.Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	h.Set(echo.HeaderContentDisposition, `attachment; filename="`+s.filename+`"`)
	s.c.Response().WriteHeader(http.StatusOK)
	return s.w.Write(s.columns)
}

func (s *csvStream) write(record []string) error {
	if !s.started {
		if err := s.start(); err != nil {
			return err
		}
	}
	return s.w.Write(record)
}

// finish completes the response. err is the producer's error, if any.
func (s *csvStream) finish(h *Handler, op string, err error) error {
	if err != nil && !s.started {
		return h.fail(s.c, op, err)
	}
	if err != nil {
		// Headers are already sent; the client sees a truncated file.
		h.logger.Error("csv export aborted",
			slog.String("op", op),
			slog.String("error", err.Error()))
		s.w.Flush()
		return nil
	}
	if !s.started {
		if err := s.start(); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func exportFilename(prefix string, now time.Time) string {
	return prefix + "-" + now.UTC().Format("20060102-1504") + ".csv"
}

func linkRecord(l *domain.Link) []string {
	return []string{
		l.ID,
		l.Slug,
		l.Name,
		l.URL,
		l.Notes,
		strings.Join(l.Tags, "|"),
		strconv.FormatBool(l.Active),
		strconv.FormatBool(l.Deleted),
		formatTime(&l.CreatedAt),
		formatTime(l.UpdatedAt),
		formatTime(l.DeletedAt),
		strconv.FormatInt(l.ClickCount, 10),
		l.CallbackURL,
		l.QRPNG,
		l.QRSVG,
	}
}

func accessLogRecord(a *domain.AccessLog) []string {
	return []string{
		a.ID,
		formatTime(&a.Timestamp),
		a.Slug,
		a.IP,
		a.UserAgent,
		a.Referer,
		a.Browser,
		a.BrowserVersion,
		a.OS,
		a.OSVersion,
		a.Device,
		strconv.FormatBool(a.IsMobile),
		strconv.FormatBool(a.IsTablet),
		strconv.FormatBool(a.IsPC),
		strconv.FormatBool(a.IsBot),
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
