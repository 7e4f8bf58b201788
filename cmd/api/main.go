package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowworks-backend/internal/admin"
	"flowworks-backend/internal/auth"
	"flowworks-backend/internal/cache"
	"flowworks-backend/internal/casestudies"
	"flowworks-backend/internal/config"
	"flowworks-backend/internal/contact"
	"flowworks-backend/internal/db"
	"flowworks-backend/internal/notifications"
	"flowworks-backend/internal/services"
	"flowworks-backend/internal/site"
	"flowworks-backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	cases := casestudies.Catalog()
	if err := casestudies.ValidateCatalog(cases); err != nil {
		logger.Error("case study catalog invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := services.ValidateCatalog(services.Catalog(), casestudies.Known(cases)); err != nil {
		logger.Error("service catalog invalid", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	siteHandler := site.NewHandler(site.Info{
		SiteURL:               cfg.SiteURL,
		CalendlyURL:           cfg.CalendlyURL,
		ContactSuccessClearMs: cfg.ContactSuccessClearMs,
	}, logger)

	var contactRepo contact.Repository = contact.NewMemoryRepository()
	if cfg.MongoEnabled() {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, cols); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		contactRepo = contact.NewMongoRepository(cols.ContactMessages)
		siteHandler.AddCheck("mongo", func(ctx context.Context) error { return client.Ping(ctx, nil) })
	} else {
		logger.Warn("mongo disabled, contact inquiries kept in memory")
	}

	var cacheStore cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		defer redisCache.Close()
		cacheStore = redisCache
		siteHandler.AddCheck("redis", redisCache.Ping)
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "flowworks-backend",
		}
	}

	adminCreds := admin.Credentials{
		Username:     cfg.AdminUser,
		PasswordHash: cfg.AdminPasswordHash,
	}
	if err := adminCreds.Check(cfg.BcryptCost); err != nil {
		if !errors.Is(err, admin.ErrWeakHash) {
			logger.Error("admin credentials invalid", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Warn("admin credentials: rehash with sitectl hash-password", slog.String("error", err.Error()))
	}

	var notifier contact.Notifier
	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ContactNotifyEmail, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		notifier = mailer
	}

	val := validation.New(cfg.PhoneDefaultRegion)
	ttl := cfg.CacheTTL()

	contactService := contact.NewService(contactRepo, cfg.Location(), notifier, cfg.PhoneDefaultRegion)

	handler := newRouter(routerDeps{
		cfg:         cfg,
		log:         logger,
		jwt:         jwtManager,
		caseStudies: casestudies.NewHandler(casestudies.NewService(casestudies.NewRepository()), cacheStore, ttl, logger),
		services:    services.NewHandler(services.NewService(services.NewRepository()), cacheStore, ttl, logger),
		contact:     contact.NewHandler(contactService, val, logger, cfg.ContactSuccessClearMs),
		admin:       admin.NewHandler(jwtManager, adminCreds, cfg.CookieSecure, val, logger),
		site:        siteHandler,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
