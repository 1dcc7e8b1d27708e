package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"linkshortener/internal/domain"
)

type CleanupOptions struct {
	Months        int
	IncludeActive bool
	KeepDBRefs    bool
	DryRun        bool
}

type FixMissingOptions struct {
	OnlyActive bool
	DryRun     bool
}

type MaintenanceReport struct {
	Scanned  int
	Eligible int
	Changed  int
}

// QRMaintenance reconciles QR files on disk with the references stored on links.
type QRMaintenance struct {
	links  LinkStore
	visits VisitStore
	qr     QRStore
	logger *slog.Logger
	now    func() time.Time
}

func NewQRMaintenance(links LinkStore, visits VisitStore, qr QRStore, logger *slog.Logger) *QRMaintenance {
	return &QRMaintenance{
		links:  links,
		visits: visits,
		qr:     qr,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Used in tests.
func (m *QRMaintenance) WithClock(now func() time.Time) *QRMaintenance {
	m.now = now
	return m
}

// Cleanup removes QR files of links not accessed for opts.Months. A link that
// was never accessed is judged by its creation time.
func (m *QRMaintenance) Cleanup(ctx context.Context, opts CleanupOptions) (MaintenanceReport, error) {
	var report MaintenanceReport
	now := m.now()
	cutoff := now.AddDate(0, -opts.Months, 0)

	filter := domain.LinkFilter{HasQRCodes: true}
	if !opts.IncludeActive {
		inactive := false
		filter.Active = &inactive
	}

	err := m.links.EachLink(ctx, filter, func(link *domain.Link) error {
		report.Scanned++

		last, ok, err := m.visits.LastAccess(ctx, link.Slug)
		if err != nil {
			return fmt.Errorf("failed to get last access of %s: %w", link.Slug, err)
		}
		if !ok {
			last = link.CreatedAt
		}
		if !last.Before(cutoff) {
			return nil
		}
		report.Eligible++

		if opts.DryRun {
			m.logger.Info("would remove qr files",
				slog.String("slug", link.Slug),
				slog.Time("last_access", last))
			return nil
		}

		if err := m.qr.Remove(link.Slug); err != nil {
			m.logger.Warn("failed to remove qr files",
				slog.String("slug", link.Slug),
				slog.String("error", err.Error()))
			return nil
		}
		if !opts.KeepDBRefs {
			if err := m.links.ClearQRCodes(ctx, link.ID, false, now); err != nil {
				return fmt.Errorf("failed to clear qr refs of %s: %w", link.Slug, err)
			}
		}
		report.Changed++
		return nil
	})
	if err != nil {
		return report, err
	}

	m.logger.Info("qr cleanup finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("eligible", report.Eligible),
		slog.Int("changed", report.Changed),
		slog.Bool("dry_run", opts.DryRun))
	return report, nil
}

// FixMissing clears the QR references of links whose files are gone and
// disables those links.
func (m *QRMaintenance) FixMissing(ctx context.Context, opts FixMissingOptions) (MaintenanceReport, error) {
	var report MaintenanceReport
	now := m.now()

	filter := domain.LinkFilter{HasQRCodes: true}
	if opts.OnlyActive {
		active := true
		filter.Active = &active
	}

	err := m.links.EachLink(ctx, filter, func(link *domain.Link) error {
		report.Scanned++
		if !m.qr.Missing(link.Slug) {
			return nil
		}
		report.Eligible++

		if opts.DryRun {
			m.logger.Info("would clear qr refs and disable link", slog.String("slug", link.Slug))
			return nil
		}

		if err := m.links.ClearQRCodes(ctx, link.ID, true, now); err != nil {
			return fmt.Errorf("failed to fix %s: %w", link.Slug, err)
		}
		report.Changed++
		return nil
	})
	if err != nil {
		return report, err
	}

	m.logger.Info("qr fix-missing finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("eligible", report.Eligible),
		slog.Int("changed", report.Changed),
		slog.Bool("dry_run", opts.DryRun))
	return report, nil
}
