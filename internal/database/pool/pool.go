// Package pool tunes the sql.DB connection pool behind GORM.
package pool

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Config controls how many connections the pool keeps and for how long.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns pool limits suitable for a single service
// instance against a shared PostgreSQL.
func DefaultPoolConfig() Config {
	return Config{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// SetupConnectionPool validates poolCfg and applies it to the sql.DB
// underlying db.
func SetupConnectionPool(db *gorm.DB, poolCfg Config) error {
	switch {
	case poolCfg.MaxOpenConns <= 0:
		return fmt.Errorf("MaxOpenConns must be greater than 0")
	case poolCfg.MaxIdleConns < 0:
		return fmt.Errorf("MaxIdleConns must be non-negative")
	case poolCfg.MaxIdleConns > poolCfg.MaxOpenConns:
		return fmt.Errorf(
			"MaxIdleConns (%d) cannot be greater than MaxOpenConns (%d)",
			poolCfg.MaxIdleConns, poolCfg.MaxOpenConns)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(poolCfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(poolCfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(poolCfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(poolCfg.ConnMaxIdleTime)

	return nil
}
