// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package schema is the static registry of QuoteMaster tables. The DDL
// below is the single source of truth consumed by create and drop; there
// is no migration chain, every statement is idempotent.
//
// Tables are listed in creation order so foreign keys always point at
// tables that already exist; dropping walks the same list backwards.
package schema

// EnsureExtensions must run before any table DDL. Primary keys default to
// uuid_generate_v4 from uuid-ossp.
const EnsureExtensions = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

// Table pairs a registry name with the statement that creates it.
type Table struct {
	Name string
	DDL  string
}

// registered users of the system
const usersDDL = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// the quote catalog; author_id is the submitting user
const quotesDDL = `
CREATE TABLE IF NOT EXISTS quotes (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    author_id UUID REFERENCES users(id) ON DELETE SET NULL,
    content TEXT NOT NULL,
    attribution TEXT,
    category TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// one conversation between a user and the quote assistant
const chatSessionsDDL = `
CREATE TABLE IF NOT EXISTS chat_sessions (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    topic TEXT,
    started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    ended_at TIMESTAMPTZ
)`

// per-quote engagement events, optionally tied to a chat session
const quoteInteractionsDDL = `
CREATE TABLE IF NOT EXISTS quote_interactions (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    quote_id UUID NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
    chat_session_id UUID REFERENCES chat_sessions(id) ON DELETE SET NULL,
    kind TEXT NOT NULL CHECK (kind IN ('viewed', 'liked', 'shared', 'sent')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var tables = []Table{
	{Name: "users", DDL: usersDDL},
	{Name: "quotes", DDL: quotesDDL},
	{Name: "chat_sessions", DDL: chatSessionsDDL},
	{Name: "quote_interactions", DDL: quoteInteractionsDDL},
}

// Tables returns the registry in creation order.
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// DropOrder returns the registry in reverse, so referencing tables go
// before the tables they point at.
func DropOrder() []Table {
	out := make([]Table, len(tables))
	for i, t := range tables {
		out[len(tables)-1-i] = t
	}
	return out
}

// Names returns the registry table names in creation order.
func Names() []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.Name
	}
	return out
}
