package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 100000

	DefaultLogLimit = 50
	MaxLogLimit     = 1000
)

// VersionedSlug is the slug a soft-deleted link and its history move to.
// '~' is outside the custom slug alphabet, so it never collides with a live slug.
func VersionedSlug(slug string, deletedAt time.Time) string {
	return slug + "~deleted-" + deletedAt.UTC().Format("20060102T150405Z")
}

func (s *LinkService) ListLinks(ctx context.Context, filter domain.LinkFilter) (*domain.LinkPage, error) {
	filter.Page = min(max(filter.Page, 1), MaxPage)
	if filter.PageSize <= 0 {
		filter.PageSize = DefaultPageSize
	}
	filter.PageSize = min(filter.PageSize, MaxPageSize)

	links, total, err := s.links.ListLinks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return &domain.LinkPage{
		Data:     links,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}

// ExportLinks calls fn for every link matching filter, ignoring paging.
func (s *LinkService) ExportLinks(ctx context.Context, filter domain.LinkFilter, fn func(*domain.Link) error) error {
	filter.Page, filter.PageSize = 0, 0
	if err := s.links.EachLink(ctx, filter, fn); err != nil {
		return fmt.Errorf("failed to export links: %w", err)
	}
	return nil
}

func (s *LinkService) GetLink(ctx context.Context, id string) (*domain.Link, error) {
	link, err := s.links.FindLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}

func (s *LinkService) UpdateLink(ctx context.Context, id string, update domain.LinkUpdate) (*domain.Link, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.Tags != nil {
		tags := normalizeTags(*update.Tags)
		update.Tags = &tags
	}

	link, err := s.links.UpdateLink(ctx, id, update, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	s.cache.Delete(link.Slug)
	s.recorder.RecordBusiness("link_updated", 1, map[string]string{"slug": link.Slug})
	return link, nil
}

// DeleteLink soft-deletes a link. The link and its access logs move to a
// versioned slug and the original slug becomes free. Deleting a link whose
// logs were left behind by an interrupted delete finishes the move.
func (s *LinkService) DeleteLink(ctx context.Context, id string) error {
	link, err := s.links.FindLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find link: %w", err)
	}
	if link.Deleted {
		return s.finishDelete(ctx, link)
	}

	now := s.now()
	versioned := VersionedSlug(link.Slug, now)

	if err := s.links.SoftDeleteLink(ctx, link.ID, link.Slug, versioned, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	s.cache.Delete(link.Slug)

	if err := s.qr.Remove(link.Slug); err != nil {
		s.logger.Warn("failed to remove qr files",
			slog.String("slug", link.Slug),
			slog.String("error", err.Error()))
	}

	moved, err := s.visits.RenameSlug(ctx, link.Slug, versioned, now)
	if err != nil {
		return fmt.Errorf("failed to move access logs: %w", err)
	}

	s.logger.Info("link deleted",
		slog.String("id", link.ID),
		slog.String("slug", link.Slug),
		slog.String("versioned_slug", versioned),
		slog.Int64("logs_moved", moved))
	s.recorder.RecordBusiness("link_deleted", 1, map[string]string{"slug": link.Slug})
	return nil
}

// finishDelete moves logs still recorded under the original slug of a deleted
// link. Only logs up to the deletion time move, so a newer link that reuses
// the slug keeps its own history.
func (s *LinkService) finishDelete(ctx context.Context, link *domain.Link) error {
	if link.OriginalSlug == "" || link.DeletedAt == nil {
		return ErrNotFound
	}

	moved, err := s.visits.RenameSlug(ctx, link.OriginalSlug, link.Slug, *link.DeletedAt)
	if err != nil {
		return fmt.Errorf("failed to move access logs: %w", err)
	}
	if moved == 0 {
		return ErrNotFound
	}

	s.logger.Info("link delete completed",
		slog.String("id", link.ID),
		slog.String("slug", link.OriginalSlug),
		slog.String("versioned_slug", link.Slug),
		slog.Int64("logs_moved", moved))
	return nil
}

func (s *LinkService) AccessLogs(ctx context.Context, slug string, limit int) ([]domain.AccessLog, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	limit = min(limit, MaxLogLimit)

	logs, err := s.visits.ListAccessLogs(ctx, slug, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, ErrNoAccessLogs
	}
	return logs, nil
}

// ExportAccessLogs calls fn for every access log of slug, newest first.
// It returns ErrNoAccessLogs before calling fn when there are none.
func (s *LinkService) ExportAccessLogs(ctx context.Context, slug string, fn func(*domain.AccessLog) error) error {
	if _, err := s.AccessLogs(ctx, slug, 1); err != nil {
		return err
	}
	if err := s.visits.EachAccessLog(ctx, slug, fn); err != nil {
		return fmt.Errorf("failed to export access logs: %w", err)
	}
	return nil
}

func (s *LinkService) RegenerateQR(ctx context.Context, req domain.RegenerateQRRequest) (*domain.RegenerateQRResponse, error) {
	slugs := regenerateTargets(req)
	if len(slugs) == 0 {
		return nil, ErrNoSlugs
	}
	force := req.Force == nil || *req.Force

	resp := &domain.RegenerateQRResponse{Results: make([]domain.QRResult, 0, len(slugs))}
	for _, slug := range slugs {
		result, err := s.regenerateOne(ctx, slug, force)
		if err != nil {
			return nil, err
		}
		if result.OK && result.Reason == "" {
			resp.Updated++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func (s *LinkService) regenerateOne(ctx context.Context, slug string, force bool) (domain.QRResult, error) {
	link, err := s.links.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.QRResult{Slug: slug, Reason: "not_found"}, nil
		}
		return domain.QRResult{}, fmt.Errorf("failed to find link: %w", err)
	}

	png, svg := s.qr.Refs(slug)
	if !force && !s.qr.Missing(slug) {
		return domain.QRResult{Slug: slug, OK: true, Reason: "exists", QRPNG: png, QRSVG: svg}, nil
	}

	if err := s.qr.Write(slug, s.shortURL(slug)); err != nil {
		s.logger.Error("failed to write qr code",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return domain.QRResult{Slug: slug, Reason: "write_failed"}, nil
	}

	if err := s.links.SetQRCodes(ctx, link.ID, png, svg, s.now()); err != nil {
		return domain.QRResult{}, fmt.Errorf("failed to store qr refs: %w", err)
	}
	return domain.QRResult{Slug: slug, OK: true, QRPNG: png, QRSVG: svg}, nil
}

func regenerateTargets(req domain.RegenerateQRRequest) []string {
	var slugs []string
	for _, s := range append([]string{req.Slug}, req.Slugs...) {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(slugs, s) {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
