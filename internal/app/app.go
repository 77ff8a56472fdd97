package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/survey-dashboard/api/v1"
	"github.com/godilite/survey-dashboard/internal/config"
	"github.com/godilite/survey-dashboard/internal/dataset"
	handler "github.com/godilite/survey-dashboard/internal/grpc"
	"github.com/godilite/survey-dashboard/internal/repository"
	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
	"github.com/godilite/survey-dashboard/pkg/cache"
	dbbuilder "github.com/godilite/survey-dashboard/pkg/database"
	grpcsrv "github.com/godilite/survey-dashboard/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      handler.Cacher
	grpcServer *grpcsrv.Server
}

// Stats bundles the seeded statistics database with the service reading it.
type Stats struct {
	DB      *sql.DB
	Service *service.StatsService
}

// Close releases the database.
func (s *Stats) Close() error {
	return s.DB.Close()
}

// OpenStats opens the stats database, creates its schema and loads ds into it.
func OpenStats(ctx context.Context, cfg *config.Config, ds *dataset.Dataset, logger *zap.Logger) (*Stats, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	repo := repository.NewSurveyStatsRepository(dbPool)
	if err := repo.Migrate(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	if err := repo.Seed(ctx, ds); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database seed failed: %w", err)
	}
	logger.Info("Survey answers loaded", zap.Int("questions", len(ds.AllQuestions())))

	return &Stats{
		DB:      dbPool,
		Service: service.NewStatsService(repo, ds, logger),
	}, nil
}

// NewDispatcher builds the hover formatter for the configured locale.
func NewDispatcher(cfg *config.Config, logger *zap.Logger) *tooltip.Dispatcher {
	locale, ok := tooltip.LocaleByName(cfg.Locale)
	if !ok {
		logger.Warn("unknown locale, using default",
			zap.String("locale", cfg.Locale),
			zap.String("default", tooltip.LocaleES.Name))
		locale = tooltip.LocaleES
	}
	return tooltip.NewDispatcher(tooltip.WithLocale(locale))
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	ds := dataset.Builtin()
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("built-in dataset is inconsistent: %w", err)
	}

	stats, err := OpenStats(ctx, cfg, ds, logger)
	if err != nil {
		return nil, err
	}

	var cacheClient handler.Cacher = cache.Noop{}
	if cfg.CacheEnabled {
		c, err := cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
		)
		if err != nil {
			stats.Close()
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		cacheClient = c
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	} else {
		logger.Info("Cache disabled")
	}

	grpcHandlers := handler.NewGRPCHandlers(stats.Service, NewDispatcher(cfg, logger), ds, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithUnaryInterceptors(grpcsrv.RequestIDInterceptor()),
		grpcsrv.WithLogging(true),
	)
	if err != nil {
		cacheClient.Close()
		stats.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.Register(pb.ServiceName, func(r grpc.ServiceRegistrar) {
		pb.RegisterSurveyDashboardServer(r, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     stats.DB,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Addr is the address the gRPC server listens on.
func (a *App) Addr() string {
	return a.grpcServer.Addr().String()
}

// Run starts the application and blocks until a shutdown signal is received
// or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.logger.Info("application shutting down")
	a.grpcServer.SetServiceHealth(pb.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.grpcServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("shutdown completed but deadline exceeded", zap.Error(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")
	_ = a.logger.Sync()
	return nil
}
