package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"agency-hub/internal/config/configs"
)

const pingTimeout = 5 * time.Second

// NewPostgresPool opens a pool sized by cfg and pings the server once.
// The pool is closed again if the ping fails. Callers own the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	poolConf.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
