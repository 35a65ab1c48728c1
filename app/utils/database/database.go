// Package database holds the database/sql connection used by the
// migration tooling. The service itself talks to Postgres through
// pgx; this path exists only for schema management.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Config holds database connection configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	ConnTimeout time.Duration
}

// Connection wraps a database/sql connection for migrations.
type Connection struct {
	db     *sql.DB
	config *Config
	logger *slog.Logger
}

// NewConnection opens and pings a connection.
func NewConnection(config *Config, logger *slog.Logger) (*Connection, error) {
	conn := &Connection{
		config: config,
		logger: logger.With("component", "database"),
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.Database,
		config.SSLMode,
		int(config.ConnTimeout.Seconds()),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn.db = db
	conn.logger.Info("database connection established",
		"host", config.Host,
		"database", config.Database)
	return conn, nil
}

// DB returns the underlying *sql.DB instance
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.db != nil {
		c.logger.Info("closing database connection")
		return c.db.Close()
	}
	return nil
}
