package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/GymOps/internal/auth"
	"github.com/stpnv0/GymOps/internal/cache"
	"github.com/stpnv0/GymOps/internal/config"
	"github.com/stpnv0/GymOps/internal/handler"
	"github.com/stpnv0/GymOps/internal/metrics"
	"github.com/stpnv0/GymOps/internal/middleware"
	"github.com/stpnv0/GymOps/internal/notification"
	"github.com/stpnv0/GymOps/internal/repository"
	"github.com/stpnv0/GymOps/internal/repository/memory"
	"github.com/stpnv0/GymOps/internal/router"
	"github.com/stpnv0/GymOps/internal/scheduler"
	"github.com/stpnv0/GymOps/internal/service"
	"github.com/stpnv0/GymOps/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type repositories struct {
	directory ports.DirectoryRepo
	classes   ports.ClassRepo
	timeline  ports.TimelineRepo
	invoices  ports.InvoiceRepo
	equipment ports.EquipmentRepo
}

// Services is the command surface shared by the HTTP server and the seed tool.
type Services struct {
	Directory *service.DirectoryService
	Schedule  *service.ScheduleService
	Billing   *service.BillingService
	Asset     *service.AssetService
}

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *redis.Client
	services    *Services
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
	rateLimiter *middleware.RateLimiter
}

func New(cfg *config.Config) (*App, error) {
	app, err := newCore(cfg)
	if err != nil {
		return nil, err
	}

	if err = app.initHTTP(); err != nil {
		return nil, fmt.Errorf("init http: %w", err)
	}

	return app, nil
}

// NewServices builds storage and services without the HTTP layer.
func NewServices(cfg *config.Config) (*Services, func() error, error) {
	app, err := newCore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.services, app.closeStorage, nil
}

func newCore(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GymOps",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	repos, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(repos); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*repositories, error) {
	if a.cfg.Storage.Driver == "memory" {
		a.log.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			directory: a.withCache(memory.NewDirectoryRepo(store)),
			classes:   memory.NewClassRepo(store),
			timeline:  memory.NewTimelineRepo(store),
			invoices:  memory.NewInvoiceRepo(store),
			equipment: memory.NewEquipmentRepo(store),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return &repositories{
		directory: a.withCache(repository.NewDirectoryRepo(a.db)),
		classes:   repository.NewClassRepo(a.db),
		timeline:  repository.NewTimelineRepo(a.db),
		invoices:  repository.NewInvoiceRepo(a.db),
		equipment: repository.NewEquipmentRepo(a.db),
	}, nil
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

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// withCache wraps the directory with the redis read-through cache when
// redis is configured.
func (a *App) withCache(repo ports.DirectoryRepo) ports.DirectoryRepo {
	if a.cfg.Redis.Addr == "" {
		return repo
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.redis.Ping(ctx).Err(); err != nil {
		a.log.Warn("redis unreachable, directory lookups will fall back to storage",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	} else {
		a.log.Info("directory cache enabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.Duration("ttl", a.cfg.Redis.TTL),
		)
	}

	return cache.NewDirectory(repo, a.redis, a.cfg.Redis.TTL, a.log)
}

func (a *App) initServices(repos *repositories) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.services = &Services{
		Directory: service.NewDirectoryService(repos.directory, a.log),
		Schedule:  service.NewScheduleService(repos.classes, repos.timeline, repos.directory, n, a.log),
		Billing:   service.NewBillingService(repos.invoices, repos.directory, n, a.log),
		Asset:     service.NewAssetService(repos.equipment, repos.directory, a.log),
	}

	return nil
}

func (a *App) initHTTP() error {
	a.scheduler = scheduler.New(
		a.services.Schedule,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	m := metrics.New()
	tokens := auth.NewManager(a.cfg.Auth.Secret, a.cfg.Auth.Issuer, a.cfg.Auth.TokenTTL)

	h := handler.NewHandler(
		a.services.Directory,
		a.services.Schedule,
		a.services.Billing,
		a.services.Asset,
		m,
	)

	apiMiddleware := []ginext.HandlerFunc{middleware.Auth(tokens)}
	if a.cfg.RateLimit.RPS > 0 {
		a.rateLimiter = middleware.NewRateLimiter(a.cfg.RateLimit.RPS, max(a.cfg.RateLimit.Burst, 1), a.log)
		apiMiddleware = append(apiMiddleware, a.rateLimiter.Handler())
	}

	r := router.InitRouter(a.cfg.Gin.Mode, h, router.Options{
		Middleware: []ginext.HandlerFunc{
			middleware.RequestID(),
			middleware.RequestLogger(a.log),
			middleware.Recovery(a.log),
			middleware.Metrics(m),
		},
		APIMiddleware: apiMiddleware,
		Metrics:       m.Handler(),
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)
	if a.rateLimiter != nil {
		go a.cleanupLimiters(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) cleanupLimiters(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.RateLimit.IdleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.rateLimiter.Cleanup(a.cfg.RateLimit.IdleTimeout)
		}
	}
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

	if err := a.closeStorage(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeStorage() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db == nil {
		return nil
	}
	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

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
