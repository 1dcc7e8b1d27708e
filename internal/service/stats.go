package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"linkshortener/internal/config"
	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
)

const (
	defaultTop = 10
	maxTop     = 100
)

type StatsService struct {
	stats       StatsStore
	links       LinkStore
	location    *time.Location
	defaultDays int
	now         func() time.Time
}

func NewStatsService(stats StatsStore, links LinkStore, cfg *config.DashboardConfig) (*StatsService, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}
	return &StatsService{
		stats:       stats,
		links:       links,
		location:    loc,
		defaultDays: max(1, cfg.DefaultDays),
		now:         time.Now,
	}, nil
}

// WithClock replaces the time source. Used in tests.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// ResolveRange turns query parameters into a reporting window. Bounds accept
// YYYY-MM-DD (whole day) or RFC3339; missing bounds default to the configured
// number of days ending now; reversed bounds are swapped.
func (s *StatsService) ResolveRange(p domain.RangeParams) (domain.StatsRange, error) {
	loc := s.location
	if p.TimeZone != "" {
		l, err := time.LoadLocation(p.TimeZone)
		if err != nil {
			return domain.StatsRange{}, fmt.Errorf("%w: unknown time zone", ErrInvalidRange)
		}
		loc = l
	}

	to := s.now().In(loc)
	if p.To != "" {
		t, err := parseBound(p.To, loc, true)
		if err != nil {
			return domain.StatsRange{}, err
		}
		to = t
	}

	from := to.AddDate(0, 0, -s.defaultDays)
	if p.From != "" {
		t, err := parseBound(p.From, loc, false)
		if err != nil {
			return domain.StatsRange{}, err
		}
		from = t
	}

	if from.After(to) {
		from, to = to, from
	}
	return domain.StatsRange{From: from, To: to, Location: loc.String()}, nil
}

func parseBound(v string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if d, err := time.ParseInLocation(time.DateOnly, v, loc); err == nil {
		if endOfDay {
			return d.AddDate(0, 0, 1).Add(-time.Millisecond), nil
		}
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD or RFC3339", ErrInvalidRange, v)
}

func (s *StatsService) Overview(ctx context.Context, rng domain.StatsRange, top int) (*domain.Overview, error) {
	overview, err := s.stats.Overview(ctx, query(rng, repository.GroupByDay, top))
	if err != nil {
		return nil, fmt.Errorf("failed to build overview: %w", err)
	}
	overview.Range = rng
	return overview, nil
}

func (s *StatsService) LinkStats(ctx context.Context, slug string, rng domain.StatsRange, groupBy string, top int) (*domain.LinkStats, error) {
	if groupBy == "" {
		groupBy = repository.GroupByDay
	}
	if groupBy != repository.GroupByDay && groupBy != repository.GroupByHour {
		return nil, ErrInvalidGroupBy
	}

	stats, err := s.stats.LinkStats(ctx, slug, query(rng, groupBy, top))
	if err != nil {
		return nil, fmt.Errorf("failed to build link stats: %w", err)
	}
	stats.Range = rng

	link, err := s.links.FindActiveBySlug(ctx, slug)
	switch {
	case err == nil:
		stats.Link = link
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return stats, nil
}

func query(rng domain.StatsRange, groupBy string, top int) domain.StatsQuery {
	if top <= 0 {
		top = defaultTop
	}
	return domain.StatsQuery{
		From:     rng.From.UTC(),
		To:       rng.To.UTC(),
		Location: rng.Location,
		GroupBy:  groupBy,
		Top:      min(top, maxTop),
	}
}
