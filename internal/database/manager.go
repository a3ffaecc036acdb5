// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	dberrors "quotemaster/dbctl/internal/errors"
	"quotemaster/dbctl/internal/schema"
)

// Manager is the stateless operations façade over a DB. Lifecycle
// operations catch every error, log the cause and report a boolean;
// ExecuteQuery is the exception and propagates errors to the caller.
type Manager struct {
	db *DB
}

// NewManager creates a Manager operating through db.
func NewManager(db *DB) *Manager {
	return &Manager{db: db}
}

// TestConnection reports whether the store answers a trivial round-trip
// query within the configured connect timeout. It never returns an error.
func (m *Manager) TestConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.db.timeout)
	defer cancel()

	var one int
	if err := m.db.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		log.Error().Err(err).Msg("database connection failed")
		return false
	}

	log.Info().Msg("database connection successful")
	return true
}

// CreateTables ensures the uuid extension exists and creates every
// registry table that is missing. The whole run shares one transaction, so
// a failure leaves no partial schema behind.
func (m *Manager) CreateTables(ctx context.Context) bool {
	log.Info().Msg("creating database tables")

	err := m.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, schema.EnsureExtensions); err != nil {
			return dberrors.Wrap(dberrors.SchemaFailed, "ensuring uuid-ossp extension", err)
		}
		for _, tbl := range schema.Tables() {
			if _, err := tx.Exec(ctx, tbl.DDL); err != nil {
				return dberrors.Wrap(dberrors.SchemaFailed, "creating table "+tbl.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("error creating tables")
		return false
	}

	log.Info().Int("tables", len(schema.Tables())).Msg("all tables created")
	return true
}

// DropTables drops every registry table, referencing tables first. Missing
// tables are a no-op.
func (m *Manager) DropTables(ctx context.Context) bool {
	log.Info().Msg("dropping all tables")

	err := m.db.WithTx(ctx, func(tx pgx.Tx) error {
		for _, tbl := range schema.DropOrder() {
			stmt := "DROP TABLE IF EXISTS " + pgx.Identifier{tbl.Name}.Sanitize()
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return dberrors.Wrap(dberrors.SchemaFailed, "dropping table "+tbl.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("error dropping tables")
		return false
	}

	log.Info().Msg("all tables dropped")
	return true
}

// ResetDatabase drops then recreates the schema, short-circuiting when the
// drop fails. Destructive: every row in every registry table is lost.
func (m *Manager) ResetDatabase(ctx context.Context) bool {
	if !m.DropTables(ctx) {
		return false
	}
	return m.CreateTables(ctx)
}
