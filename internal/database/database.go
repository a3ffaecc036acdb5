// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package database is the connection provider and operations layer for the
// QuoteMaster store. A DB owns the process-wide pgx pool; Manager exposes
// the lifecycle operations (test, create, drop, reset, info, query) and
// WithTx/WithSession provide the scoped units of work everything runs in.
//
// The pool is built lazily: Connect validates configuration and constructs
// the pool but does not dial. The first acquire, or an explicit Ping,
// establishes connections, so an unreachable server surfaces exactly where
// the operation contract wants it (a false return or a propagated error).
package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"quotemaster/dbctl/internal/config"
	dberrors "quotemaster/dbctl/internal/errors"
)

// DB wraps the process-wide connection pool. One DB is created at startup
// and closed at shutdown; everything else borrows from it.
type DB struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Connect builds the pool from resolved configuration. The server is not
// contacted; use Ping to verify reachability.
func Connect(ctx context.Context, cfg config.Config) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, dberrors.Wrap(dberrors.ConfigInvalid, "parsing pool configuration", err)
	}

	if cfg.Echo {
		poolCfg.ConnConfig.Tracer = &echoTracer{}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, dberrors.Wrap(dberrors.ConfigInvalid, "creating connection pool", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &DB{pool: pool, timeout: timeout}, nil
}

// Ping dials the server and verifies it answers, bounded by the configured
// connect timeout.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()

	if err := db.pool.Ping(ctx); err != nil {
		return dberrors.Wrap(dberrors.ConnectionFailed, "pinging database", err)
	}
	return nil
}

// Close tears the pool down. Called once at process shutdown.
func (db *DB) Close() {
	db.pool.Close()
}
