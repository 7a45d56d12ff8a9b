package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/hyperacing/internal/cache"
	"github.com/GlebRadaev/hyperacing/internal/config"
	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/events"
	"github.com/GlebRadaev/hyperacing/internal/handlers"
	"github.com/GlebRadaev/hyperacing/internal/metrics"
	"github.com/GlebRadaev/hyperacing/internal/oddsfeed"
	"github.com/GlebRadaev/hyperacing/internal/pg"
	"github.com/GlebRadaev/hyperacing/internal/repo"
	"github.com/GlebRadaev/hyperacing/internal/service"
	"github.com/GlebRadaev/hyperacing/pkg/clients"
	"github.com/GlebRadaev/hyperacing/pkg/logger"
)

const (
	eventWorkers    = 4
	eventQueueSize  = 256
	shutdownTimeout = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type betEventPublisher interface {
	PublishBetPlaced(ctx context.Context, bet domain.Bet) error
	Close() error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	feed     *oddsfeed.Service
	registry *prometheus.Registry
	events   betEventPublisher

	pool    *pgxpool.Pool
	closers []func() error

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh:  make(chan error),
		events: events.NopPublisher{},
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.initStorage(ctx); err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(a.registry)

	deps := service.Deps{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Metrics:   m,
	}
	if oddsCache := a.initCache(ctx); oddsCache != nil {
		deps.OddsCache = oddsCache
	}
	a.initEvents()
	deps.BetEvents = a.events

	a.srv = service.New(a.repo, deps)
	a.api = handlers.New(a.srv)

	if cfg.OddsFeedURL != "" {
		a.feed = oddsfeed.New(cfg.OddsFeedURL, cfg.OddsFeedInterval, clients.NewHTTPClient(), a.srv.OddsPublisher, m)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startMetricsServer(ctx)
	a.startOddsFeed(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.Bool("configured", cfg.Configured()))
	return nil
}

// initStorage connects to postgres and runs migrations. With required
// settings missing the repositories are backed by pg.Unconfigured instead.
func (a *Application) initStorage(ctx context.Context) error {
	if !a.cfg.Configured() {
		zap.L().Warn("running in not-configured mode", zap.Strings("missing", a.cfg.Missing()))
		a.repo = repo.New(pg.Unconfigured{}, pg.Unconfigured{})
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.closers = append(a.closers, func() error {
		pool.Close()
		return nil
	})

	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

// initCache returns nil when redis is not set up or unreachable; odds are
// then read straight from the store.
func (a *Application) initCache(ctx context.Context) *cache.OddsCache {
	if a.cfg.RedisAddress == "" {
		return nil
	}
	rdb, err := cache.ConnectRedis(ctx, a.cfg.RedisAddress)
	if err != nil {
		zap.L().Warn("redis unavailable, odds cache disabled", zap.String("addr", a.cfg.RedisAddress), zap.Error(err))
		return nil
	}
	a.closers = append(a.closers, rdb.Close)
	zap.L().Info("odds cache enabled", zap.String("addr", a.cfg.RedisAddress), zap.Duration("ttl", a.cfg.OddsCacheTTL))
	return cache.NewOddsCache(rdb, a.cfg.OddsCacheTTL)
}

func (a *Application) initEvents() {
	if a.cfg.KafkaBrokers == "" {
		return
	}
	publisher := events.NewKafkaPublisher(
		events.NewWriter(a.cfg.KafkaBrokers, a.cfg.KafkaBetTopic),
		events.NewWorkerPool(eventWorkers, eventQueueSize),
	)
	a.events = publisher
	a.closers = append(a.closers, publisher.Close)
	zap.L().Info("bet events enabled", zap.String("brokers", a.cfg.KafkaBrokers), zap.String("topic", a.cfg.KafkaBetTopic))
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) health(ctx context.Context) error {
	if a.pool == nil {
		return domain.ErrNotConfigured
	}
	return a.pool.Ping(ctx)
}

func (a *Application) serve(ctx context.Context, name string, server *http.Server) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("server shutdown failed", zap.String("server", name), zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting server", zap.String("server", name), zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("%s server exited with error: %w", name, err)
		}
	}()
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.serve(ctx, "http", &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: shutdownTimeout,
	})
	return nil
}

func (a *Application) startMetricsServer(ctx context.Context) {
	if a.cfg.MetricsAddress == "" {
		return
	}
	a.serve(ctx, "metrics", metrics.NewServer(a.cfg.MetricsAddress, metrics.Handler(a.registry, a.health)))
}

func (a *Application) startOddsFeed(ctx context.Context) {
	if a.feed == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.feed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.errCh <- fmt.Errorf("odds feed exited with error: %w", err)
		}
	}()
}

// close releases the clients opened in Start.
func (a *Application) close() error {
	var g errgroup.Group
	for i := len(a.closers) - 1; i >= 0; i-- {
		closeFn := a.closers[i]
		g.Go(closeFn)
	}
	return g.Wait()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if err := a.close(); err != nil {
		zap.L().Error("closing clients failed", zap.Error(err))
		if appErr == nil {
			appErr = err
		}
	}

	return appErr
}
