package app

import (
	"context"
	"fmt"

	"wallet-ledger-service/config"
	pgStorage "wallet-ledger-service/internal/adapter/storage/postgres"
	redisStorage "wallet-ledger-service/internal/adapter/storage/redis"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// App is the composition root: it owns the store connections and the fully
// wired ledger engine. Embedders construct one App per process and share the
// Ledger across callers; the engine itself is stateless, so this is safe.
type App struct {
	Ledger         ports.LedgerService
	HealthCheckers []ports.HealthChecker

	pool  *pgxpool.Pool
	redis *goredis.Client
}

// New connects to PostgreSQL and (optionally) Redis and wires the engine.
// Redis is the reference-replay cache; when cfg.Redis.Host is empty the
// engine runs without it and repeated reference ids re-execute.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	a := &App{pool: pool}
	a.HealthCheckers = append(a.HealthCheckers, pgStorage.NewHealthCheck(pool))

	var refCache ports.ReferenceCache
	if cfg.Redis.Host != "" {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		a.redis = rdb
		refCache = redisStorage.NewReferenceCache(rdb)
		a.HealthCheckers = append(a.HealthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	a.Ledger = service.NewLedgerService(
		pgStorage.NewWalletRepo(pool),
		pgStorage.NewTransactionRepo(pool),
		pgStorage.NewTransactor(pool),
		refCache,
		cfg.Ledger,
		log,
	)
	return a, nil
}

// MigrateUp applies pending schema migrations before serving.
func (a *App) MigrateUp(cfg config.DatabaseConfig) error {
	return pgStorage.RunMigrations(cfg.DSN(), cfg.MigrationsPath)
}

// Healthy pings every wired dependency and reports the first failure.
func (a *App) Healthy(ctx context.Context) error {
	for _, hc := range a.HealthCheckers {
		if err := hc.Ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", hc.Name(), err)
		}
	}
	return nil
}

// Close releases the store connections.
func (a *App) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
