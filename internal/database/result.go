// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	dberrors "quotemaster/dbctl/internal/errors"
)

// Result is a normalized query result. Columns and Rows are populated for
// row-returning statements; RowsAffected carries the command tag count for
// writes.
type Result struct {
	Columns      []string `json:"columns"`
	Rows         [][]any  `json:"rows"`
	RowsAffected int64    `json:"rows_affected,omitempty"`
}

// MarshalJSON converts pgx-native values into JSON-friendly ones. UUIDs
// arrive from the wire as 16-byte arrays and would otherwise marshal as
// base64 or number lists.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	a := alias(r)

	if len(r.Rows) > 0 {
		converted := make([][]any, len(r.Rows))
		for i, row := range r.Rows {
			converted[i] = make([]any, len(row))
			for j, val := range row {
				switch v := val.(type) {
				case [16]byte:
					converted[i][j] = uuid.UUID(v).String()
				case []byte:
					if id, err := uuid.FromBytes(v); err == nil {
						converted[i][j] = id.String()
					} else {
						converted[i][j] = fmt.Sprintf("\\x%x", v)
					}
				default:
					converted[i][j] = v
				}
			}
		}
		a.Rows = converted
	}

	return json.Marshal(a)
}

// ExecuteQuery runs an arbitrary SQL statement inside a managed session
// and returns the collected result. Unlike the lifecycle operations, any
// failure rolls the session back and is returned to the caller.
func (m *Manager) ExecuteQuery(ctx context.Context, sql string, args ...any) (*Result, error) {
	res := &Result{
		Columns: []string{},
		Rows:    [][]any{},
	}

	err := m.db.WithSession(ctx, func(s *Session) error {
		rows, err := s.Query(ctx, sql, args...)
		if err != nil {
			return dberrors.Wrap(dberrors.QueryFailed, "executing query", err)
		}

		fds := rows.FieldDescriptions()
		cols := make([]string, len(fds))
		for i, fd := range fds {
			cols[i] = string(fd.Name)
		}
		res.Columns = cols

		for rows.Next() {
			vals, err := rows.Values()
			if err != nil {
				rows.Close()
				return dberrors.Wrap(dberrors.QueryFailed, "reading row", err)
			}
			res.Rows = append(res.Rows, vals)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return dberrors.Wrap(dberrors.QueryFailed, "executing query", err)
		}

		res.RowsAffected = rows.CommandTag().RowsAffected()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
