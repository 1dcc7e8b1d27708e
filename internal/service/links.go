package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
)

const maxSlugAttempts = 3

type LinkServiceDeps struct {
	Links    LinkStore
	Visits   VisitStore
	Slugs    SlugGenerator
	QR       QRStore
	Cache    Cache
	Notifier Notifier
	Agents   AgentParser
	Recorder BusinessRecorder
}

type LinkService struct {
	links    LinkStore
	visits   VisitStore
	slugs    SlugGenerator
	qr       QRStore
	cache    Cache
	notifier Notifier
	agents   AgentParser
	recorder BusinessRecorder
	logger   *slog.Logger
	baseURL  string
	now      func() time.Time
}

func NewLinkService(deps LinkServiceDeps, baseURL string, logger *slog.Logger) *LinkService {
	return &LinkService{
		links:    deps.Links,
		visits:   deps.Visits,
		slugs:    deps.Slugs,
		qr:       deps.QR,
		cache:    deps.Cache,
		notifier: deps.Notifier,
		agents:   deps.Agents,
		recorder: deps.Recorder,
		logger:   logger,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Used in tests.
func (s *LinkService) WithClock(now func() time.Time) *LinkService {
	s.now = now
	return s
}

func (s *LinkService) Shorten(ctx context.Context, req domain.ShortenRequest) (*domain.ShortenResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.URL = strings.TrimSpace(req.URL)
	req.CallbackURL = strings.TrimSpace(req.CallbackURL)

	var (
		link *domain.Link
		err  error
	)
	if req.Slug != "" {
		link, err = s.createWithCustomSlug(ctx, req)
	} else {
		link, err = s.createWithGeneratedSlug(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	if err := s.qr.Write(link.Slug, s.shortURL(link.Slug)); err != nil {
		s.logger.Error("failed to write qr code",
			slog.String("slug", link.Slug),
			slog.String("error", err.Error()))
		s.recorder.RecordBusiness("qr_write_failed", 1, map[string]string{"slug": link.Slug})
	}

	s.recorder.RecordBusiness("link_created", 1, map[string]string{
		"custom_slug":  strconv.FormatBool(req.Slug != ""),
		"has_callback": strconv.FormatBool(link.CallbackURL != ""),
	})

	return &domain.ShortenResponse{
		Slug:     link.Slug,
		ShortURL: s.shortURL(link.Slug),
		QRPNG:    link.QRPNG,
		QRSVG:    link.QRSVG,
	}, nil
}

func (s *LinkService) createWithCustomSlug(ctx context.Context, req domain.ShortenRequest) (*domain.Link, error) {
	// The unique index is authoritative; this only gives a cheap early answer.
	_, err := s.links.FindActiveBySlug(ctx, req.Slug)
	switch {
	case err == nil:
		return nil, ErrSlugConflict
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	link := s.newLink(req.Slug, req)
	if err := s.links.CreateLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

func (s *LinkService) createWithGeneratedSlug(ctx context.Context, req domain.ShortenRequest) (*domain.Link, error) {
	for range maxSlugAttempts {
		id, err := s.links.NextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get next id: %w", err)
		}

		slug, err := s.slugs.Generate(id)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}

		link := s.newLink(slug, req)
		err = s.links.CreateLink(ctx, link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
		s.logger.Warn("generated slug taken, retrying", slog.String("slug", slug))
	}
	return nil, ErrSlugExhausted
}

func (s *LinkService) newLink(slug string, req domain.ShortenRequest) *domain.Link {
	png, svg := s.qr.Refs(slug)
	return &domain.Link{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        req.Name,
		URL:         req.URL,
		CallbackURL: req.CallbackURL,
		Tags:        []string{},
		Active:      true,
		QRPNG:       png,
		QRSVG:       svg,
		CreatedAt:   s.now(),
	}
}

func (s *LinkService) shortURL(slug string) string {
	return s.baseURL + "/" + slug
}

// Visit resolves slug, records the access and returns the destination URL.
func (s *LinkService) Visit(ctx context.Context, slug string, v domain.Visit) (string, error) {
	target, err := s.resolve(ctx, slug)
	if err != nil {
		return "", err
	}
	if !target.Active {
		s.recorder.RecordBusiness("redirect_disabled", 1, map[string]string{"slug": slug})
		return "", ErrLinkDisabled
	}

	now := s.now()
	client := s.agents.Parse(v.UserAgent)
	err = s.visits.RecordVisit(ctx, &domain.AccessLog{
		ID:         uuid.NewString(),
		LinkID:     target.LinkID,
		Slug:       target.Slug,
		IP:         v.IP,
		Timestamp:  now,
		UserAgent:  v.UserAgent,
		Referer:    v.Referer,
		ClientInfo: client,
	})
	switch {
	case errors.Is(err, repository.ErrClickCount):
		s.logger.Warn("failed to update click count",
			slog.String("slug", target.Slug),
			slog.String("error", err.Error()))
	case err != nil:
		return "", fmt.Errorf("failed to record visit: %w", err)
	}

	if target.CallbackURL != "" {
		s.notifier.Notify(domain.CallbackEvent{
			ID:          uuid.NewString(),
			Event:       domain.EventLinkVisited,
			Slug:        target.Slug,
			URL:         target.URL,
			IP:          v.IP,
			UserAgent:   v.UserAgent,
			Timestamp:   now,
			CallbackURL: target.CallbackURL,
		})
	}

	s.recorder.RecordBusiness("redirect", 1, map[string]string{
		"slug":   target.Slug,
		"device": client.DeviceType(),
	})

	return target.URL, nil
}

func (s *LinkService) resolve(ctx context.Context, slug string) (domain.Redirect, error) {
	if r, ok := s.cache.Get(slug); ok {
		return r, nil
	}

	link, err := s.links.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.recorder.RecordBusiness("redirect_not_found", 1, map[string]string{"slug": slug})
			return domain.Redirect{}, ErrNotFound
		}
		return domain.Redirect{}, fmt.Errorf("failed to find link: %w", err)
	}

	r := link.Redirect()
	s.cache.Set(r)
	return r, nil
}
