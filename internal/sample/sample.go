// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sample generates demo rows for the QuoteMaster schema. Inserts
// run through a caller-provided session, so a failure part-way leaves
// nothing behind.
package sample

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"quotemaster/dbctl/internal/database"
	dberrors "quotemaster/dbctl/internal/errors"
)

// Options controls how much demo data Insert generates.
type Options struct {
	Users  int
	Quotes int
}

// Summary reports how many rows Insert wrote per table.
type Summary struct {
	Users        int
	Quotes       int
	ChatSessions int
	Interactions int
}

const (
	insertUser        = `INSERT INTO users (username, email, display_name) VALUES ($1, $2, $3) RETURNING id`
	insertQuote       = `INSERT INTO quotes (author_id, content, attribution, category) VALUES ($1, $2, $3, $4) RETURNING id`
	insertSession     = `INSERT INTO chat_sessions (user_id, topic) VALUES ($1, $2) RETURNING id`
	insertInteraction = `INSERT INTO quote_interactions (user_id, quote_id, chat_session_id, kind) VALUES ($1, $2, $3, $4)`
)

var people = []struct {
	username string
	display  string
}{
	{"ada", "Ada Lovelace"},
	{"grace", "Grace Hopper"},
	{"alan", "Alan Turing"},
	{"katherine", "Katherine Johnson"},
	{"edsger", "Edsger Dijkstra"},
	{"barbara", "Barbara Liskov"},
	{"donald", "Donald Knuth"},
	{"margaret", "Margaret Hamilton"},
}

var catalog = []struct {
	content     string
	attribution string
	category    string
}{
	{"Simplicity is prerequisite for reliability.", "Edsger W. Dijkstra", "engineering"},
	{"Premature optimization is the root of all evil.", "Donald Knuth", "engineering"},
	{"The best way to predict the future is to invent it.", "Alan Kay", "vision"},
	{"A ship in port is safe, but that is not what ships are built for.", "Grace Hopper", "courage"},
	{"Programs must be written for people to read, and only incidentally for machines to execute.", "Harold Abelson", "engineering"},
	{"Talk is cheap. Show me the code.", "Linus Torvalds", "humor"},
	{"First, solve the problem. Then, write the code.", "John Johnson", "process"},
	{"Deleted code is debugged code.", "Jeff Sickel", "humor"},
	{"Make it work, make it right, make it fast.", "Kent Beck", "process"},
	{"There are only two hard things in computer science: cache invalidation and naming things.", "Phil Karlton", "humor"},
	{"Testing shows the presence, not the absence of bugs.", "Edsger W. Dijkstra", "testing"},
	{"The question of whether a computer can think is no more interesting than the question of whether a submarine can swim.", "Edsger W. Dijkstra", "philosophy"},
}

var topics = []string{
	"morning motivation",
	"quotes about persistence",
	"something funny",
	"advice for a new engineer",
}

// Insert writes opts.Users sample users and opts.Quotes sample quotes,
// then a chat session per user and a few interactions tying them together.
// Usernames carry a random tag so repeated runs never collide on the
// unique constraints.
func Insert(ctx context.Context, s *database.Session, opts Options) (Summary, error) {
	var sum Summary
	runTag := uuid.NewString()[:8]

	userIDs, err := insertUsers(ctx, s, runTag, opts.Users)
	if err != nil {
		return Summary{}, err
	}
	sum.Users = len(userIDs)

	quoteIDs, err := insertQuotes(ctx, s, userIDs, opts.Quotes)
	if err != nil {
		return Summary{}, err
	}
	sum.Quotes = len(quoteIDs)

	sessionIDs, err := insertSessions(ctx, s, userIDs)
	if err != nil {
		return Summary{}, err
	}
	sum.ChatSessions = len(sessionIDs)

	sum.Interactions, err = insertInteractions(ctx, s, userIDs, quoteIDs, sessionIDs)
	if err != nil {
		return Summary{}, err
	}

	return sum, nil
}

func insertUsers(ctx context.Context, s *database.Session, runTag string, n int) ([]string, error) {
	batch := &pgx.Batch{}
	for i := 0; i < n; i++ {
		p := people[i%len(people)]
		username := fmt.Sprintf("%s_%s_%d", p.username, runTag, i)
		batch.Queue(insertUser, username, username+"@example.com", p.display)
	}
	return collectIDs(ctx, s, batch, "users")
}

func insertQuotes(ctx context.Context, s *database.Session, userIDs []string, n int) ([]string, error) {
	batch := &pgx.Batch{}
	for i := 0; i < n; i++ {
		q := catalog[i%len(catalog)]
		var author any
		if len(userIDs) > 0 {
			author = userIDs[i%len(userIDs)]
		}
		batch.Queue(insertQuote, author, q.content, q.attribution, q.category)
	}
	return collectIDs(ctx, s, batch, "quotes")
}

func insertSessions(ctx context.Context, s *database.Session, userIDs []string) ([]string, error) {
	batch := &pgx.Batch{}
	for i, userID := range userIDs {
		batch.Queue(insertSession, userID, topics[i%len(topics)])
	}
	return collectIDs(ctx, s, batch, "chat_sessions")
}

// insertInteractions gives every user a viewed event inside their chat
// session, and every other user an additional liked event outside any
// session, covering both states of the nullable session reference.
func insertInteractions(ctx context.Context, s *database.Session, userIDs, quoteIDs, sessionIDs []string) (int, error) {
	if len(userIDs) == 0 || len(quoteIDs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i, userID := range userIDs {
		batch.Queue(insertInteraction, userID, quoteIDs[i%len(quoteIDs)], sessionIDs[i], "viewed")
		if i%2 == 0 {
			batch.Queue(insertInteraction, userID, quoteIDs[(i+1)%len(quoteIDs)], nil, "liked")
		}
	}

	n := batch.Len()
	br := s.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < n; i++ {
		if _, err := br.Exec(); err != nil {
			return 0, dberrors.Wrap(dberrors.QueryFailed, "inserting sample quote_interactions", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, dberrors.Wrap(dberrors.QueryFailed, "inserting sample quote_interactions", err)
	}
	return n, nil
}

// collectIDs runs a batch of RETURNING id statements and gathers the ids
// in queue order.
func collectIDs(ctx context.Context, s *database.Session, batch *pgx.Batch, what string) ([]string, error) {
	n := batch.Len()
	if n == 0 {
		return nil, nil
	}
	ids := make([]string, 0, n)

	br := s.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < n; i++ {
		var id string
		if err := br.QueryRow().Scan(&id); err != nil {
			return nil, dberrors.Wrap(dberrors.QueryFailed, "inserting sample "+what, err)
		}
		ids = append(ids, id)
	}
	if err := br.Close(); err != nil {
		return nil, dberrors.Wrap(dberrors.QueryFailed, "inserting sample "+what, err)
	}
	return ids, nil
}
