package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"identity-service/app/config"
)

// Pool sizing. The service holds row locks only for the duration of a
// credential fetch, so a modest pool is enough.
const (
	poolMaxConns    = int32(25)
	poolMinConns    = int32(5)
	connMaxLifetime = time.Hour
	connMaxIdleTime = 30 * time.Minute
	connectTimeout  = 30 * time.Second
)

// DB wraps the pgx connection pool used by the repositories.
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection opens a pgx pool against the configured database and
// verifies it with a ping before handing it out.
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = connMaxLifetime
	poolConfig.MaxConnIdleTime = connMaxIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database pool ready",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName,
		"max_conns", poolMaxConns)

	return &DB{pool: pool, logger: logger}, nil
}

// Pool exposes the underlying pool for repository construction.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Close drains and closes the pool.
func (db *DB) Close() {
	if db.pool == nil {
		return
	}
	stats := db.pool.Stat()
	db.pool.Close()
	db.logger.Info("database pool closed", "total_conns", stats.TotalConns())
}

// HealthCheck pings the database with a short deadline.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

func dsn(cfg *config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
}
