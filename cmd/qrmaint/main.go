// Command qrmaint reconciles QR code files with the links that reference them.
//
//	QRMAINT_MODE=cleanup      remove QR files of links idle for QRMAINT_MONTHS
//	QRMAINT_MODE=fix-missing  clear QR refs whose files are gone and disable those links
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"linkshortener/internal/config"
	"linkshortener/internal/logging"
	"linkshortener/internal/qrcode"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
)

const (
	modeCleanup    = "cleanup"
	modeFixMissing = "fix-missing"
)

type Config struct {
	Mode          string `env:"QRMAINT_MODE" envDefault:"cleanup"`
	Months        int    `env:"QRMAINT_MONTHS" envDefault:"6"`
	IncludeActive bool   `env:"QRMAINT_INCLUDE_ACTIVE" envDefault:"false"`
	KeepDBRefs    bool   `env:"QRMAINT_KEEP_DB_REFS" envDefault:"false"`
	OnlyActive    bool   `env:"QRMAINT_ONLY_ACTIVE" envDefault:"false"`
	DryRun        bool   `env:"QRMAINT_DRY_RUN" envDefault:"false"`

	Mongo config.MongoConfig
	App   config.AppConfig
	Log   config.LogConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).
			Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Remote shipping is for the long-running service only.
	cfg.Log.Endpoint = ""
	logger, _ := logging.New(&cfg.Log, os.Stdout)

	if err := run(ctx, &cfg, logger); err != nil {
		logger.Error("qr maintenance failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	if cfg.Months < 0 {
		return fmt.Errorf("QRMAINT_MONTHS must not be negative")
	}

	repo, err := repository.New(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close(context.WithoutCancel(ctx))

	maint := service.NewQRMaintenance(repo, repo, qrcode.New(cfg.App.StaticDir, cfg.App.BaseURL), logger)

	var report service.MaintenanceReport
	switch cfg.Mode {
	case modeCleanup:
		report, err = maint.Cleanup(ctx, service.CleanupOptions{
			Months:        cfg.Months,
			IncludeActive: cfg.IncludeActive,
			KeepDBRefs:    cfg.KeepDBRefs,
			DryRun:        cfg.DryRun,
		})
	case modeFixMissing:
		report, err = maint.FixMissing(ctx, service.FixMissingOptions{
			OnlyActive: cfg.OnlyActive,
			DryRun:     cfg.DryRun,
		})
	default:
		return fmt.Errorf("unknown QRMAINT_MODE %q", cfg.Mode)
	}
	if err != nil {
		return err
	}

	logger.Info("done",
		slog.String("mode", cfg.Mode),
		slog.Int("scanned", report.Scanned),
		slog.Int("eligible", report.Eligible),
		slog.Int("changed", report.Changed),
		slog.Bool("dry_run", cfg.DryRun))
	return nil
}
