package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"linkshortener/internal/auth"
	"linkshortener/internal/cache"
	"linkshortener/internal/callback"
	"linkshortener/internal/config"
	"linkshortener/internal/handler"
	"linkshortener/internal/logging"
	"linkshortener/internal/metrics"
	custommiddleware "linkshortener/internal/middleware"
	"linkshortener/internal/qrcode"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
	"linkshortener/internal/shortener"
	"linkshortener/internal/useragent"
	"linkshortener/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).
			Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, sender := logging.New(&cfg.Log, os.Stdout)
	if sender != nil {
		sender.Start(ctx)
	}

	err = run(ctx, cfg, logger)
	if err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
	}
	if sender != nil {
		sender.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repo, err := repository.New(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.Warn("failed to close repository", slog.String("error", err.Error()))
		}
	}()

	var writer metrics.Writer
	if cfg.Metrics.Enabled {
		pool, err := metrics.Open(ctx, &cfg.Metrics)
		if err != nil {
			return fmt.Errorf("failed to open metrics database: %w", err)
		}
		defer pool.Close()
		writer = pool
	}

	recorder := metrics.NewRecorder(writer, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	short, err := shortener.New()
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	linkCache, err := cache.New(&cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer linkCache.Close()

	tokens, err := auth.NewTokens(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	notifier := callback.New(&cfg.Callback, logger)
	notifier.Start(ctx)
	defer notifier.Close()

	go collectInfraMetrics(ctx, recorder, linkCache, notifier)

	links := service.NewLinkService(service.LinkServiceDeps{
		Links:    repo,
		Visits:   repo,
		Slugs:    short,
		QR:       qrcode.New(cfg.App.StaticDir, cfg.App.BaseURL),
		Cache:    linkCache,
		Notifier: notifier,
		Agents:   useragent.NewParser(),
		Recorder: recorder,
	}, cfg.App.BaseURL, logger)

	stats, err := service.NewStatsService(repo, repo, &cfg.Dashboard)
	if err != nil {
		return fmt.Errorf("failed to create stats service: %w", err)
	}

	authService := service.NewAuthService(repo, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, cfg.Auth.CreationToken)

	h := handler.New(handler.Deps{
		Links:     links,
		Admin:     links,
		Stats:     stats,
		Auth:      authService,
		Validator: validation.New(&cfg.Validation),
	}, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.CORS())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	e.Static("/static", cfg.App.StaticDir)
	h.Register(e, custommiddleware.RequireAdmin(tokens))

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	g, gctx := errgroup.WithContext(ctx)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	httpServer := newServer(e, &cfg.Server)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("base_url", cfg.App.BaseURL),
		slog.Int("max_connections", cfg.Server.MaxConnections))
	g.Go(func() error {
		return serve(httpServer, httpListener)
	})

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		httpsServer = newServer(e, &cfg.Server)
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))
		g.Go(func() error {
			return serve(httpsServer, tlsListener)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		if httpsServer != nil {
			if err := httpsServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("https server shutdown failed: %w", err)
			}
		}
		return nil
	})

	return g.Wait()
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

func newServer(h http.Handler, cfg *config.ServerConfig) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener) error {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, linkCache *cache.LinkCache, notifier *callback.Notifier) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits, misses, ratio := linkCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				CacheHits:     int64(hits),
				CacheMisses:   int64(misses),
				CacheHitRatio: ratio,
				CallbackQueue: notifier.QueueLen(),
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
