package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"quotemaster/dbctl/internal/config"
	dberrors "quotemaster/dbctl/internal/errors"
	"quotemaster/dbctl/internal/schema"
)

// testManager connects to the database named by DBCTL_TEST_DATABASE_URL,
// skipping the test when the variable is unset. The database is treated as
// scratch space: lifecycle tests create, reset and drop the QuoteMaster
// tables in it.
func testManager(t *testing.T) *Manager {
	t.Helper()
	url := os.Getenv("DBCTL_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DBCTL_TEST_DATABASE_URL not set")
	}
	db, err := Connect(context.Background(), config.Config{
		DatabaseURL:    url,
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(db.Close)
	return NewManager(db)
}

func containsAll(haystack, needles []string) (string, bool) {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return n, false
		}
	}
	return "", true
}

func TestManagerLifecycle(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	if !m.TestConnection(ctx) {
		t.Fatal("TestConnection reported failure against a live server")
	}

	if !m.CreateTables(ctx) {
		t.Fatal("CreateTables reported failure")
	}
	if !m.CreateTables(ctx) {
		t.Fatal("CreateTables is not idempotent")
	}
	if !m.ResetDatabase(ctx) {
		t.Fatal("ResetDatabase reported failure")
	}

	info := m.GetTableInfo(ctx)
	if info.Error != "" {
		t.Fatalf("GetTableInfo: %s", info.Error)
	}
	if missing, ok := containsAll(info.Tables, schema.Names()); !ok {
		t.Fatalf("table %q missing after create", missing)
	}
	for _, name := range schema.Names() {
		if n := info.RecordCounts[name]; n != 0 {
			t.Errorf("fresh table %q has %d rows, want 0", name, n)
		}
	}

	res, err := m.ExecuteQuery(ctx,
		"INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id",
		"ada", "ada@example.com")
	if err != nil {
		t.Fatalf("ExecuteQuery insert: %v", err)
	}
	if res.RowsAffected != 1 || len(res.Rows) != 1 {
		t.Fatalf("insert returned %d rows affected, %d rows", res.RowsAffected, len(res.Rows))
	}

	res, err = m.ExecuteQuery(ctx, "SELECT username FROM users WHERE email = $1", "ada@example.com")
	if err != nil {
		t.Fatalf("ExecuteQuery select: %v", err)
	}
	if len(res.Rows) != 1 || res.Rows[0][0] != "ada" {
		t.Fatalf("select returned %v, want one row with username ada", res.Rows)
	}

	// A failing session must roll back everything it wrote.
	sentinel := errors.New("boom")
	err = m.db.WithSession(ctx, func(s *Session) error {
		if _, err := s.Exec(ctx, "INSERT INTO users (username, email) VALUES ($1, $2)", "ghost", "ghost@example.com"); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("WithSession returned %v, want the callback error unchanged", err)
	}
	res, err = m.ExecuteQuery(ctx, "SELECT COUNT(*) FROM users")
	if err != nil {
		t.Fatalf("ExecuteQuery count: %v", err)
	}
	if res.Rows[0][0] != int64(1) {
		t.Fatalf("user count after rollback = %v, want 1", res.Rows[0][0])
	}

	if !m.ResetDatabase(ctx) {
		t.Fatal("ResetDatabase reported failure")
	}
	info = m.GetTableInfo(ctx)
	if info.Error != "" {
		t.Fatalf("GetTableInfo after reset: %s", info.Error)
	}
	for _, name := range schema.Names() {
		if n := info.RecordCounts[name]; n != 0 {
			t.Errorf("reset left %d rows in %q, want 0", n, name)
		}
	}

	if !m.DropTables(ctx) {
		t.Fatal("DropTables reported failure")
	}
	if !m.DropTables(ctx) {
		t.Fatal("DropTables is not idempotent")
	}
	info = m.GetTableInfo(ctx)
	if info.Error != "" {
		t.Fatalf("GetTableInfo after drop: %s", info.Error)
	}
	for _, name := range schema.Names() {
		for _, got := range info.Tables {
			if got == name {
				t.Errorf("table %q still present after drop", name)
			}
		}
	}
}

func TestExecuteQueryBadSQL(t *testing.T) {
	m := testManager(t)

	_, err := m.ExecuteQuery(context.Background(), "SELECT * FROM no_such_table_anywhere")
	if err == nil {
		t.Fatal("ExecuteQuery succeeded against a missing table")
	}
	if kind := dberrors.KindOf(err); kind != dberrors.QueryFailed {
		t.Errorf("error kind = %v, want QueryFailed", kind)
	}
}

func TestConnectInvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), config.Config{
		DatabaseURL: "postgresql://user@localhost:notaport/db",
	})
	if err == nil {
		t.Fatal("Connect accepted an unparsable URL")
	}
	if kind := dberrors.KindOf(err); kind != dberrors.ConfigInvalid {
		t.Errorf("error kind = %v, want ConfigInvalid", kind)
	}
}

func TestPingUnreachable(t *testing.T) {
	db, err := Connect(context.Background(), config.Config{
		DatabaseURL:    "postgresql://postgres@127.0.0.1:1/quotemaster",
		ConnectTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("Connect dialed eagerly: %v", err)
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err == nil {
		t.Fatal("Ping succeeded with no server listening")
	} else if kind := dberrors.KindOf(err); kind != dberrors.ConnectionFailed {
		t.Errorf("error kind = %v, want ConnectionFailed", kind)
	}

	if NewManager(db).TestConnection(context.Background()) {
		t.Fatal("TestConnection reported success with no server listening")
	}
}
