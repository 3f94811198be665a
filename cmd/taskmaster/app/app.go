package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stumble/wpgx"

	"github.com/canvassing/pax-rewards/internal/database/cache"
	wpgxInitor "github.com/canvassing/pax-rewards/internal/database/wpgx"
	"github.com/canvassing/pax-rewards/internal/metric"
	logger "github.com/canvassing/pax-rewards/internal/zerolog"
	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/nonce"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/config"
	"github.com/canvassing/pax-rewards/pkg/repos/records"
	"github.com/canvassing/pax-rewards/pkg/taskmaster"
	"github.com/canvassing/pax-rewards/pkg/taskmaster/api"
	"github.com/canvassing/pax-rewards/pkg/taskmaster/event"
)

const (
	appName         = "taskmaster"
	dbInitTimeout   = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App holds all the dependencies of a running task master.
type App struct {
	ctx context.Context
	cfg *config.Config

	authority     signer.Authority
	chainManager  *ethereum.Manager
	signingClient ethereum.ChainClient
	db            *wpgx.Pool
	caches        *cache.Caches
	recordsRepo   *records.Queries
	nonces        *nonce.Generator
	assembler     *taskmaster.Assembler
	listener      event.EventListenerService
	apiServer     *api.Server
	metricServer  *metric.Server
}

// New creates a new application instance
func New(ctx context.Context, cfg *config.Config) *App {
	return &App{
		ctx: ctx,
		cfg: cfg,
	}
}

// Run initializes every component, serves until ctx is done, then shuts down.
func (a *App) Run() error {
	if err := a.init(); err != nil {
		a.Shutdown()
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil {
			errChan <- fmt.Errorf("api server: %w", err)
		}
	}()

	log.Info().
		Str("task_master", a.authority.Address().Hex()).
		Str("task_manager", a.signingClient.Address().Hex()).
		Str("chain_id", a.signingClient.ChainID().String()).
		Msg("[Main] Task master started")

	var runErr error
	select {
	case <-a.ctx.Done():
		log.Info().Msg("[Main] Shutting down")
	case runErr = <-errChan:
	}
	return errors.Join(runErr, a.Shutdown())
}

func (a *App) init() error {
	if err := a.initLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := a.initMetrics(); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	if err := a.initAuthority(); err != nil {
		return fmt.Errorf("failed to initialize signing authority: %w", err)
	}
	if err := a.initChain(); err != nil {
		return fmt.Errorf("failed to initialize chain client: %w", err)
	}
	if err := a.initDatabase(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := a.initAssembler(); err != nil {
		return fmt.Errorf("failed to initialize assembler: %w", err)
	}
	if err := a.initEventListener(); err != nil {
		return fmt.Errorf("failed to initialize event listener: %w", err)
	}
	if err := a.initAPI(); err != nil {
		return fmt.Errorf("failed to initialize API: %w", err)
	}
	return nil
}

// Shutdown releases everything that was initialized, in reverse order.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if a.apiServer != nil {
		errs = append(errs, a.apiServer.Stop(ctx))
	}
	if a.listener != nil {
		a.listener.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.caches != nil {
		errs = append(errs, a.caches.Redis.Close())
	}
	if a.chainManager != nil {
		errs = append(errs, a.chainManager.Close())
	}
	errs = append(errs, logger.Shutdown(ctx))
	return errors.Join(errs...)
}

func (a *App) initLogger() error {
	logger.InitDefaultLogger()
	return logger.Configure(a.cfg.Logging.Level, a.cfg.Logging.Format)
}

// initMetrics starts the metrics server
func (a *App) initMetrics() error {
	a.metricServer = metric.New(&metric.Config{
		Port: a.cfg.Metric.Port,
	})
	go func() {
		if err := a.metricServer.Start(); err != nil {
			metric.RecordError("metric_server_start_failed")
			log.Error().Err(err).Msg("[Main] Metric server stopped")
		}
	}()
	return nil
}

func (a *App) initAuthority() error {
	authority, err := signer.New(a.ctx, &a.cfg.Signer)
	if err != nil {
		metric.RecordError("signer_init_failed")
		return err
	}
	a.authority = authority
	return nil
}

func (a *App) initChain() error {
	manager, client, err := ConnectSigningChain(a.ctx, a.cfg, a.authority)
	if err != nil {
		metric.RecordError("chain_manager_init_failed")
		return err
	}
	a.chainManager = manager
	a.signingClient = client
	return nil
}

// initDatabase connects to postgres and redis
func (a *App) initDatabase() error {
	db, err := wpgxInitor.InitDB(a.ctx, dbInitTimeout, []string{records.Schema},
		wpgxInitor.WithLiveConnsOnly(), wpgxInitor.WithAppName(appName))
	if err != nil {
		metric.RecordError("database_connection_failed")
		return err
	}
	a.db = db

	a.caches, err = cache.InitCache(a.ctx, appName)
	if err != nil {
		metric.RecordError("cache_init_failed")
		return err
	}
	a.recordsRepo = records.New(a.db.WConn(), a.caches.DCache)
	return nil
}

func (a *App) initAssembler() error {
	a.nonces = nonce.NewGenerator(nil)
	assembler, err := taskmaster.NewAssembler(&taskmaster.Config{
		Authority: a.authority,
		Domain:    a.signingClient.Domain(),
		Guard:     taskmaster.NewRedisGuard(a.caches.Redis, a.cfg.Guard.TTL),
		Nonces:    a.nonces,
	})
	if err != nil {
		return err
	}
	a.assembler = assembler
	return nil
}

// initEventListener keeps records and the status cache in step with the chain
func (a *App) initEventListener() error {
	listener, err := event.NewEventListener(a.ctx, &event.Config{
		MainnetClient: a.signingClient,
		RecordsRepo:   a.recordsRepo,
		StatusCache:   a.caches.Chain,
		StartBlock:    a.cfg.Signing().StartBlock,
	})
	if err != nil {
		metric.RecordError("event_listener_creation_failed")
		return err
	}
	a.listener = listener
	return nil
}

func (a *App) initAPI() error {
	handler, err := api.NewHandler(&api.Config{
		Assembler:   a.assembler,
		ChainClient: a.signingClient,
		RecordsRepo: a.recordsRepo,
		StatusCache: a.caches.Chain,
		Nonces:      a.nonces,
	})
	if err != nil {
		metric.RecordError("api_handler_creation_failed")
		return err
	}
	a.apiServer = api.NewServer(handler, api.ServerConfig{
		Host:      a.cfg.HTTP.Host,
		Port:      a.cfg.HTTP.Port,
		RateLimit: a.cfg.HTTP.RateLimit,
		Burst:     a.cfg.HTTP.Burst,
	})
	return nil
}
