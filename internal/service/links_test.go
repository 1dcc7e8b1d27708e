package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
	"linkshortener/internal/service/mocks"
)

var fixedNow = time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

type linkMocks struct {
	links    *mocks.MockLinkStore
	visits   *mocks.MockVisitStore
	slugs    *mocks.MockSlugGenerator
	qr       *mocks.MockQRStore
	cache    *mocks.MockCache
	notifier *mocks.MockNotifier
	agents   *mocks.MockAgentParser
	recorder *mocks.MockBusinessRecorder
}

func newLinkService(t *testing.T) (*service.LinkService, linkMocks) {
	m := linkMocks{
		links:    mocks.NewMockLinkStore(t),
		visits:   mocks.NewMockVisitStore(t),
		slugs:    mocks.NewMockSlugGenerator(t),
		qr:       mocks.NewMockQRStore(t),
		cache:    mocks.NewMockCache(t),
		notifier: mocks.NewMockNotifier(t),
		agents:   mocks.NewMockAgentParser(t),
		recorder: mocks.NewMockBusinessRecorder(t),
	}
	m.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Maybe()

	svc := service.NewLinkService(service.LinkServiceDeps{
		Links:    m.links,
		Visits:   m.visits,
		Slugs:    m.slugs,
		QR:       m.qr,
		Cache:    m.cache,
		Notifier: m.notifier,
		Agents:   m.agents,
		Recorder: m.recorder,
	}, "http://go.test/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.WithClock(func() time.Time { return fixedNow })
	return svc, m
}

func expectRefs(m linkMocks) {
	m.qr.EXPECT().Refs(mock.Anything).RunAndReturn(func(slug string) (string, string) {
		return "http://go.test/static/" + slug + ".png", "http://go.test/static/" + slug + ".svg"
	}).Maybe()
}

func TestShorten_GeneratedSlug(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	m.links.EXPECT().NextID(mock.Anything).Return(7, nil)
	m.slugs.EXPECT().Generate(uint64(7)).Return("Xk9", nil)
	m.links.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(l *domain.Link) bool {
		return l.Slug == "Xk9" &&
			l.Name == "Docs" &&
			l.URL == "https://example.com/docs" &&
			l.Active && !l.Deleted &&
			l.QRPNG == "http://go.test/static/Xk9.png" &&
			l.CreatedAt.Equal(fixedNow) &&
			l.ID != ""
	})).Return(nil)
	m.qr.EXPECT().Write("Xk9", "http://go.test/Xk9").Return(nil)

	resp, err := svc.Shorten(context.Background(), domain.ShortenRequest{
		Name: "  Docs ",
		URL:  " https://example.com/docs ",
	})
	require.NoError(t, err)
	assert.Equal(t, &domain.ShortenResponse{
		Slug:     "Xk9",
		ShortURL: "http://go.test/Xk9",
		QRPNG:    "http://go.test/static/Xk9.png",
		QRSVG:    "http://go.test/static/Xk9.svg",
	}, resp)
}

func TestShorten_GeneratedSlugRetriesOnCollision(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	m.links.EXPECT().NextID(mock.Anything).Return(1, nil).Once()
	m.links.EXPECT().NextID(mock.Anything).Return(2, nil).Once()
	m.slugs.EXPECT().Generate(uint64(1)).Return("taken", nil)
	m.slugs.EXPECT().Generate(uint64(2)).Return("fresh", nil)
	m.links.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(l *domain.Link) bool { return l.Slug == "taken" })).
		Return(repository.ErrDuplicateKey)
	m.links.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(l *domain.Link) bool { return l.Slug == "fresh" })).
		Return(nil)
	m.qr.EXPECT().Write("fresh", mock.Anything).Return(nil)

	resp, err := svc.Shorten(context.Background(), domain.ShortenRequest{Name: "n", URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Slug)
}

func TestShorten_GeneratedSlugExhausted(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	m.links.EXPECT().NextID(mock.Anything).Return(1, nil).Times(3)
	m.slugs.EXPECT().Generate(uint64(1)).Return("taken", nil).Times(3)
	m.links.EXPECT().CreateLink(mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey).Times(3)

	_, err := svc.Shorten(context.Background(), domain.ShortenRequest{Name: "n", URL: "https://example.com"})
	assert.ErrorIs(t, err, service.ErrSlugExhausted)
}

func TestShorten_CustomSlug(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(nil, repository.ErrNotFound)
	m.links.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(l *domain.Link) bool {
		return l.Slug == "docs" && l.CallbackURL == "https://hooks.test/visit"
	})).Return(nil)
	m.qr.EXPECT().Write("docs", "http://go.test/docs").Return(nil)

	resp, err := svc.Shorten(context.Background(), domain.ShortenRequest{
		Name:        "Docs",
		URL:         "https://example.com",
		Slug:        "docs",
		CallbackURL: "https://hooks.test/visit",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://go.test/docs", resp.ShortURL)
}

func TestShorten_CustomSlugConflict(t *testing.T) {
	t.Run("active link holds slug", func(t *testing.T) {
		svc, m := newLinkService(t)
		m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(&domain.Link{Slug: "docs"}, nil)

		_, err := svc.Shorten(context.Background(), domain.ShortenRequest{Name: "n", URL: "https://e.com", Slug: "docs"})
		assert.ErrorIs(t, err, service.ErrSlugConflict)
	})

	t.Run("lost the race on insert", func(t *testing.T) {
		svc, m := newLinkService(t)
		expectRefs(m)
		m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(nil, repository.ErrNotFound)
		m.links.EXPECT().CreateLink(mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey)

		_, err := svc.Shorten(context.Background(), domain.ShortenRequest{Name: "n", URL: "https://e.com", Slug: "docs"})
		assert.ErrorIs(t, err, service.ErrSlugConflict)
	})
}

func TestShorten_QRWriteFailureKeepsLink(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(nil, repository.ErrNotFound)
	m.links.EXPECT().CreateLink(mock.Anything, mock.Anything).Return(nil)
	m.qr.EXPECT().Write("docs", mock.Anything).Return(errors.New("disk full"))

	resp, err := svc.Shorten(context.Background(), domain.ShortenRequest{Name: "n", URL: "https://e.com", Slug: "docs"})
	require.NoError(t, err)
	assert.Equal(t, "docs", resp.Slug)
	m.recorder.AssertCalled(t, "RecordBusiness", "qr_write_failed", float64(1), mock.Anything)
}

func TestShorten_StoreUnavailable(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().NextID(mock.Anything).Return(0, repository.ErrUnavailable)

	_, err := svc.Shorten(context.Background(), domain.ShortenRequest{Name: "n", URL: "https://e.com"})
	assert.ErrorIs(t, err, service.ErrUnavailable)
}

var testVisit = domain.Visit{IP: "10.1.2.3", UserAgent: "Mozilla/5.0 (iPhone)", Referer: "https://wiki.test/"}

func TestVisit_CacheHit(t *testing.T) {
	svc, m := newLinkService(t)

	m.cache.EXPECT().Get("docs").Return(domain.Redirect{
		LinkID: "l1", Slug: "docs", URL: "https://example.com/docs", Active: true,
	}, true)
	m.agents.EXPECT().Parse(testVisit.UserAgent).Return(domain.ClientInfo{Browser: "Mobile Safari", IsMobile: true})
	m.visits.EXPECT().RecordVisit(mock.Anything, mock.MatchedBy(func(a *domain.AccessLog) bool {
		return a.LinkID == "l1" &&
			a.Slug == "docs" &&
			a.IP == "10.1.2.3" &&
			a.Referer == "https://wiki.test/" &&
			a.Timestamp.Equal(fixedNow) &&
			a.IsMobile
	})).Return(nil)

	target, err := svc.Visit(context.Background(), "docs", testVisit)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs", target)
}

func TestVisit_CacheMissFillsCache(t *testing.T) {
	svc, m := newLinkService(t)

	link := &domain.Link{ID: "l1", Slug: "docs", URL: "https://example.com", Active: true}
	m.cache.EXPECT().Get("docs").Return(domain.Redirect{}, false)
	m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(link, nil)
	m.cache.EXPECT().Set(link.Redirect()).Return()
	m.agents.EXPECT().Parse(mock.Anything).Return(domain.ClientInfo{})
	m.visits.EXPECT().RecordVisit(mock.Anything, mock.Anything).Return(nil)

	target, err := svc.Visit(context.Background(), "docs", testVisit)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
}

func TestVisit_NotFound(t *testing.T) {
	svc, m := newLinkService(t)

	m.cache.EXPECT().Get("nope").Return(domain.Redirect{}, false)
	m.links.EXPECT().FindActiveBySlug(mock.Anything, "nope").Return(nil, repository.ErrNotFound)

	_, err := svc.Visit(context.Background(), "nope", testVisit)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestVisit_DisabledWritesNoLog(t *testing.T) {
	svc, m := newLinkService(t)

	m.cache.EXPECT().Get("docs").Return(domain.Redirect{Slug: "docs", URL: "https://e.com", Active: false}, true)

	_, err := svc.Visit(context.Background(), "docs", testVisit)
	assert.ErrorIs(t, err, service.ErrLinkDisabled)
	m.visits.AssertNotCalled(t, "RecordVisit", mock.Anything, mock.Anything)
}

func TestVisit_NotifiesCallback(t *testing.T) {
	svc, m := newLinkService(t)

	m.cache.EXPECT().Get("docs").Return(domain.Redirect{
		LinkID: "l1", Slug: "docs", URL: "https://e.com", CallbackURL: "https://hooks.test/v", Active: true,
	}, true)
	m.agents.EXPECT().Parse(mock.Anything).Return(domain.ClientInfo{})
	m.visits.EXPECT().RecordVisit(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().Notify(mock.MatchedBy(func(ev domain.CallbackEvent) bool {
		return ev.Event == domain.EventLinkVisited &&
			ev.Slug == "docs" &&
			ev.URL == "https://e.com" &&
			ev.IP == "10.1.2.3" &&
			ev.CallbackURL == "https://hooks.test/v" &&
			ev.Timestamp.Equal(fixedNow)
	})).Return(true)

	_, err := svc.Visit(context.Background(), "docs", testVisit)
	require.NoError(t, err)
}

func TestVisit_LogWriteFailureFailsRedirect(t *testing.T) {
	svc, m := newLinkService(t)

	m.cache.EXPECT().Get("docs").Return(domain.Redirect{Slug: "docs", URL: "https://e.com", Active: true}, true)
	m.agents.EXPECT().Parse(mock.Anything).Return(domain.ClientInfo{})
	m.visits.EXPECT().RecordVisit(mock.Anything, mock.Anything).Return(repository.ErrUnavailable)

	_, err := svc.Visit(context.Background(), "docs", testVisit)
	assert.ErrorIs(t, err, service.ErrUnavailable)
}

func TestVisit_ClickCountFailureStillRedirects(t *testing.T) {
	svc, m := newLinkService(t)

	m.cache.EXPECT().Get("docs").Return(domain.Redirect{Slug: "docs", URL: "https://e.com", Active: true}, true)
	m.agents.EXPECT().Parse(mock.Anything).Return(domain.ClientInfo{})
	m.visits.EXPECT().RecordVisit(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: %w", repository.ErrClickCount, repository.ErrUnavailable))

	url, err := svc.Visit(context.Background(), "docs", testVisit)
	require.NoError(t, err)
	assert.Equal(t, "https://e.com", url)
}
