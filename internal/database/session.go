// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	dberrors "quotemaster/dbctl/internal/errors"
)

// Session is one unit of work: a single pooled connection with one open
// transaction. Sessions are handed to WithSession callbacks and are not
// valid outside them; the scope guarantees the transaction is committed or
// rolled back exactly once and the connection always returns to the pool.
type Session struct {
	conn *pgxpool.Conn
	tx   pgx.Tx
}

// Exec runs a statement within the session's transaction.
func (s *Session) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.tx.Exec(ctx, sql, args...)
}

// Query runs a query within the session's transaction.
func (s *Session) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.tx.Query(ctx, sql, args...)
}

// QueryRow runs a single-row query within the session's transaction.
func (s *Session) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.tx.QueryRow(ctx, sql, args...)
}

// SendBatch runs a batch within the session's transaction.
func (s *Session) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return s.tx.SendBatch(ctx, b)
}

// WithSession runs fn inside a session scope. On a nil return the
// transaction commits; any error (or panic unwinding) rolls it back and the
// error is returned to the caller unchanged. The connection is released on
// every exit path.
func (db *DB) WithSession(ctx context.Context, fn func(*Session) error) error {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return dberrors.Wrap(dberrors.ConnectionFailed, "acquiring connection", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return dberrors.Wrap(dberrors.ConnectionFailed, "beginning transaction", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	if err := fn(&Session{conn: conn, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dberrors.Wrap(dberrors.QueryFailed, "committing transaction", err)
	}
	return nil
}

// WithTx runs fn inside a plain transactional scope. Same commit and
// rollback discipline as WithSession, for callers that want the pgx.Tx
// directly.
func (db *DB) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return dberrors.Wrap(dberrors.ConnectionFailed, "acquiring connection", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return dberrors.Wrap(dberrors.ConnectionFailed, "beginning transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dberrors.Wrap(dberrors.QueryFailed, "committing transaction", err)
	}
	return nil
}
