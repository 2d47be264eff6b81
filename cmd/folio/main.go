// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/config"
	"github.com/olegiv/folio/internal/handler"
	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/logging"
	"github.com/olegiv/folio/internal/metrics"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/scheduler"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/session"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/version"
	"github.com/olegiv/folio/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "folio - bilingual portfolio, blog and store\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SESSION_SECRET    CSRF key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DB_PATH           SQLite database path (default: ./data/folio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SITE_URL          Public base URL (default: http://<host>:<port>)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ADMIN_EMAIL       Admin account created on first start\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ADMIN_PASSWORD    Admin password for the first start\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_REDIS_URL         Shared sitemap cache (default: no cache)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("folio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Warnings and errors also go to the event log shown on the dashboard
	logger = slog.New(logging.NewEventLogHandler(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}), db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := store.Seed(ctx, db, store.AdminSeed{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	}); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Purge once at startup, then on schedule
	cleanup := scheduler.EventCleanup(service.NewEventService(db), cfg.EventRetention)
	if err := cleanup(ctx); err != nil {
		slog.Error("failed to delete old events", "error", err)
	}
	sched := scheduler.New(logger)
	if err := sched.Add("event_cleanup", cfg.EventCleanupSchedule, cleanup); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	guideFS, err := fs.Sub(web.Guide, "guide")
	if err != nil {
		return fmt.Errorf("getting guide fs: %w", err)
	}

	if cfg.MetricsEnabled {
		if err := metrics.RegisterDB(db); err != nil {
			slog.Warn("failed to register database metrics", "error", err)
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.IsDevelopment() {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.RedirectSlashes)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics)
	}
	r.Use(middleware.Language)
	r.Use(middleware.RequestPath)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerAddr())))

	loginProtection := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit:       cfg.LoginRateLimit,
		IPBurst:           cfg.LoginBurst,
		MaxFailedAttempts: cfg.LoginMaxAttempts,
		LockoutDuration:   cfg.LoginLockout,
	})
	defer loginProtection.Close()
	apiRateLimiter := middleware.NewGlobalRateLimiter(cfg.APIRateLimit, cfg.APIBurst)

	// A nil Public builds every response from the database.
	var public *cache.Public
	if cfg.CacheEnabled() {
		publicCache, fellBack := cache.New(cache.Config{
			RedisURL:   cfg.RedisURL,
			Prefix:     "folio:",
			DefaultTTL: cfg.CacheTTL,
		})
		defer func() { _ = publicCache.Close() }()
		if fellBack {
			slog.Warn("shared cache unavailable, output is cached per instance")
		}
		public = cache.NewPublic(publicCache)
	}

	frontendHandler := handler.NewFrontendHandler(db, renderer, cfg.BaseURL()).WithCache(public)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer, guideFS)
	contentHandler := handler.NewContentHandler(db, renderer)
	healthHandler := handler.NewHealthHandler(db, versionInfo)
	apiHandler := api.NewHandler(db)

	// Stateless routes, no session
	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))
	r.Get(handler.RouteSitemap, frontendHandler.Sitemap)
	r.Get(handler.RouteRobots, frontendHandler.Robots)
	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Get(handler.RouteHealth+"/live", healthHandler.Liveness)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiRateLimiter.Middleware())
		apiHandler.Routes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)

		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.Get(handler.RouteBlog, frontendHandler.BlogList)
		r.Get(handler.RouteBlog+handler.RouteParamSlug, frontendHandler.BlogPost)
		r.Get(handler.RouteStore, frontendHandler.Store)
		r.Get(handler.RouteStore+handler.RouteParamSlug, frontendHandler.Product)

		r.Get(handler.RouteAuth, authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post(handler.RouteAuth, authHandler.Login)
		r.Post(handler.RouteLogout, authHandler.Logout)

		r.Route(handler.RouteAdmin, func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, service.NewUserService(db)))

			r.Get(handler.RouteRoot, adminHandler.Dashboard)
			r.Get(handler.RouteContent, contentHandler.Edit)
			r.Post(handler.RouteContent, contentHandler.Save)

			handler.NewExperiencesHandler(db, renderer).Routes(r)
			handler.NewEducationHandler(db, renderer).Routes(r)
			handler.NewBlogAdminHandler(db, renderer).OnWrite(public.Invalidate).Routes(r)
			handler.NewProductsHandler(db, renderer).OnWrite(public.Invalidate).Routes(r)
		})

		r.NotFound(frontendHandler.NotFound)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
