package infrastructure

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"banksystem/internal/config"
	"banksystem/internal/metrics"
	"banksystem/internal/repository"
	transportHTTP "banksystem/internal/transport/http"
	transportNATS "banksystem/internal/transport/nats"
	"banksystem/internal/worker"
)

var errNatsDisconnected = errors.New("nats: not connected")

// Bootstrap connects every backing service named in cfg and wires up the application.
// Returns the App, a cleanup function, or an error.
func Bootstrap(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	nc, err := connectNats(cfg.NatsAddr(), log)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){nc.Close}
	var servers []Server

	core := transportNATS.NewCoreClient(nc, cfg.CoreTimeout, log)
	deps := transportHTTP.Deps{
		Balance:        core,
		Customer:       core,
		Transaction:    core,
		Logger:         log,
		IdempotencyTTL: cfg.IdempotencyTTL,
	}

	if cfg.AuditEnabled {
		deps.Audit = transportNATS.NewBus(nc)
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = connectRedis(cfg.RedisAddr())
		if err != nil {
			return nil, runCleanup(cleanupFns), err
		}
		cleanupFns = append(cleanupFns, func() { _ = rdb.Close() })
		deps.Idempotency = repository.NewIdempotencyRepo(rdb)
	} else {
		log.Warn("redis not configured, idempotency keys are ignored")
	}

	var db *pgxpool.Pool
	if cfg.AuditWorkerEnabled {
		db, err = connectPostgres(cfg.DSN())
		if err != nil {
			return nil, runCleanup(cleanupFns), err
		}
		cleanupFns = append(cleanupFns, db.Close)
		servers = append(servers, worker.NewAuditWorker(repository.NewAuditRepo(db), nc, log))
	}

	servers = append(servers, transportHTTP.NewServer(cfg.ApiAddr(), deps))

	if addr, mErr := cfg.MetricsAddr(); mErr == nil {
		servers = append(servers, metrics.NewServer(addr, healthCheck(nc.IsConnected, rdb, db)))
	} else {
		log.Info("metrics server disabled", zap.Error(mErr))
	}

	return NewApp(servers, log), runCleanup(cleanupFns), nil
}

// healthCheck reports unhealthy when any configured dependency is down.
// rdb and db may be nil.
func healthCheck(natsUp func() bool, rdb *redis.Client, db *pgxpool.Pool) metrics.HealthFunc {
	return func(ctx context.Context) error {
		if !natsUp() {
			return errNatsDisconnected
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return err
			}
		}
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

// runCleanup returns a single function that calls all cleanup functions in reverse order.
func runCleanup(fns []func()) func() {
	return func() {
		for i := len(fns) - 1; i >= 0; i-- {
			fns[i]()
		}
	}
}
