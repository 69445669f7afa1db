package db

import (
	"context"
	"fmt"

	"waste-auction/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDB opens a pgx connection pool for the configured Postgres instance
func InitDB(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.PostgresConn == "" {
		return nil, fmt.Errorf("POSTGRES_CONN is required when STORE_DRIVER is postgres")
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresConn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return pool, nil
}
