package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/ParkSpot/internal/cache"
	"github.com/stpnv0/ParkSpot/internal/config"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/handler"
	"github.com/stpnv0/ParkSpot/internal/metrics"
	"github.com/stpnv0/ParkSpot/internal/middleware"
	"github.com/stpnv0/ParkSpot/internal/notification"
	"github.com/stpnv0/ParkSpot/internal/repository"
	"github.com/stpnv0/ParkSpot/internal/router"
	"github.com/stpnv0/ParkSpot/internal/scheduler"
	"github.com/stpnv0/ParkSpot/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg           *config.Config
	log           logger.Logger
	db            *dbpg.DB
	redis         *redis.Client
	httpServer    *http.Server
	metricsServer *http.Server
	scheduler     *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ParkSpot",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	app.initMetrics()

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis leaves the client nil when redis is not configured or not
// reachable; the spot cache then falls through to postgres.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis addr is empty, spot cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.log.Warn("redis unavailable, spot cache disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		_ = client.Close()
		return
	}

	a.redis = client
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
}

func (a *App) initServices() error {
	spotRepo := repository.NewSpotRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	slipRepo := repository.NewSlipRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	spotCache := cache.NewSpotCache(a.redis, a.cfg.Redis.CacheTTL, a.log)

	authService := service.NewAuthService(userRepo, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.log)
	spotService := service.NewSpotService(spotRepo, spotCache, a.log)
	bookingService := service.NewBookingService(bookingRepo, spotRepo, userRepo, spotCache, n, a.log)
	slipService := service.NewSlipService(slipRepo, bookingRepo, spotRepo, userRepo, spotCache, n, a.log)

	a.scheduler = scheduler.New(
		slipService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	guards := router.Guards{
		Admin: []ginext.HandlerFunc{
			middleware.Auth(authService),
			middleware.RequireRole(domain.RoleOwner),
		},
	}
	if a.cfg.RateLimit.RPS > 0 {
		guards.BookingLimit = middleware.NewIPRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst).Middleware()
	}

	h := handler.NewHandler(authService, spotService, bookingService, slipService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		guards,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) initMetrics() {
	if !a.cfg.Metrics.Enabled {
		return
	}
	metrics.Register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 2)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.metricsServer != nil {
		go func() {
			a.log.LogAttrs(ctx, logger.InfoLevel, "metrics server starting",
				logger.String("addr", a.metricsServer.Addr),
			)
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown: %w", err)
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
