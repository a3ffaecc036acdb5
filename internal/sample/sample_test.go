package sample

import (
	"context"
	"os"
	"testing"
	"time"

	"quotemaster/dbctl/internal/config"
	"quotemaster/dbctl/internal/database"
)

func TestInsertAgainstServer(t *testing.T) {
	url := os.Getenv("DBCTL_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DBCTL_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, config.Config{
		DatabaseURL:    url,
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(db.Close)

	m := database.NewManager(db)
	if !m.ResetDatabase(ctx) {
		t.Fatal("ResetDatabase reported failure")
	}

	var sum Summary
	err = db.WithSession(ctx, func(s *database.Session) error {
		var err error
		sum, err = Insert(ctx, s, Options{Users: 5, Quotes: 12})
		return err
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// 5 users, one session each, a viewed event per user plus a liked
	// event for users 0, 2 and 4.
	want := Summary{Users: 5, Quotes: 12, ChatSessions: 5, Interactions: 8}
	if sum != want {
		t.Errorf("Summary = %+v, want %+v", sum, want)
	}

	info := m.GetTableInfo(ctx)
	if info.Error != "" {
		t.Fatalf("GetTableInfo: %s", info.Error)
	}
	counts := map[string]int64{
		"users":              int64(want.Users),
		"quotes":             int64(want.Quotes),
		"chat_sessions":      int64(want.ChatSessions),
		"quote_interactions": int64(want.Interactions),
	}
	for table, n := range counts {
		if got := info.RecordCounts[table]; got != n {
			t.Errorf("%s has %d rows, want %d", table, got, n)
		}
	}

	// Reruns must not trip the unique constraints on users.
	err = db.WithSession(ctx, func(s *database.Session) error {
		_, err := Insert(ctx, s, Options{Users: 5, Quotes: 3})
		return err
	})
	if err != nil {
		t.Fatalf("second Insert: %v", err)
	}
}

func TestInsertNothing(t *testing.T) {
	// Zero options mean zero statements; no database round-trip happens,
	// so a nil session is never touched.
	sum, err := Insert(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("Summary = %+v, want zero", sum)
	}
}
