package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

const listPublicTables = `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name`

// TableInfo is a snapshot of the public schema: which tables exist and how
// many rows each holds. When introspection fails, Error carries the cause
// and the other fields are empty.
type TableInfo struct {
	Tables       []string         `json:"tables"`
	RecordCounts map[string]int64 `json:"record_counts"`
	Error        string           `json:"error,omitempty"`
}

// GetTableInfo lists the tables in the public schema together with a row
// count per table. It never returns an error; failures are reported in the
// Error field so callers can render them alongside partial UIs.
func (m *Manager) GetTableInfo(ctx context.Context) TableInfo {
	conn, err := m.db.pool.Acquire(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error getting table info")
		return TableInfo{Error: err.Error()}
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, listPublicTables)
	if err != nil {
		log.Error().Err(err).Msg("error getting table info")
		return TableInfo{Error: err.Error()}
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		log.Error().Err(err).Msg("error getting table info")
		return TableInfo{Error: err.Error()}
	}
	if names == nil {
		names = []string{}
	}

	counts := make(map[string]int64, len(names))
	for _, name := range names {
		var n int64
		stmt := "SELECT COUNT(*) FROM " + pgx.Identifier{name}.Sanitize()
		if err := conn.QueryRow(ctx, stmt).Scan(&n); err != nil {
			log.Error().Err(err).Str("table", name).Msg("error getting table info")
			return TableInfo{Error: err.Error()}
		}
		counts[name] = n
	}

	return TableInfo{Tables: names, RecordCounts: counts}
}
