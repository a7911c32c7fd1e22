// Package database opens and manages the PostgreSQL connection shared by the
// service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/database/config"
	"github.com/avsafety/peer-review/internal/database/pool"
	"github.com/avsafety/peer-review/pkg/retry"
)

// connectTimeout bounds the whole retry loop, not a single attempt.
const connectTimeout = 2 * time.Minute

// New opens a connection using the environment-derived configuration.
func New() (*gorm.DB, error) {
	return NewWithConfig(config.LoadConfigFromEnv())
}

// NewWithConfig opens a connection for cfg, retrying transient failures, and
// applies the default pool limits.
func NewWithConfig(cfg config.Config) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dsn := config.BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, config.LoadRetryConfigFromEnv(), func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, pool.DefaultPoolConfig()); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}
	return db, nil
}

func sqlDB(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	conn, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return conn, nil
}

// HealthCheck pings the database within ctx.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	conn, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close shuts the connection down. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	conn, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats reports the connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	conn, err := sqlDB(db)
	if err != nil {
		return nil, err
	}
	stats := conn.Stats()
	return &stats, nil
}
