// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package schema

import (
	"strings"
	"testing"
)

func TestRegistryNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tbl := range Tables() {
		if seen[tbl.Name] {
			t.Errorf("duplicate table name %q in registry", tbl.Name)
		}
		seen[tbl.Name] = true
	}
}

func TestRegistryCreationOrder(t *testing.T) {
	position := make(map[string]int)
	for i, tbl := range Tables() {
		position[tbl.Name] = i
	}

	// Every table a foreign key points at must be created first.
	deps := map[string][]string{
		"quotes":             {"users"},
		"chat_sessions":      {"users"},
		"quote_interactions": {"users", "quotes", "chat_sessions"},
	}
	for table, referenced := range deps {
		for _, ref := range referenced {
			if position[ref] >= position[table] {
				t.Errorf("%s references %s but is created before it", table, ref)
			}
		}
	}
}

func TestDropOrderIsReversed(t *testing.T) {
	created := Tables()
	dropped := DropOrder()

	if len(created) != len(dropped) {
		t.Fatalf("DropOrder() has %d tables, want %d", len(dropped), len(created))
	}
	for i := range created {
		want := created[len(created)-1-i].Name
		if dropped[i].Name != want {
			t.Errorf("DropOrder()[%d] = %s, want %s", i, dropped[i].Name, want)
		}
	}
}

func TestDDLIsIdempotentAndNamed(t *testing.T) {
	for _, tbl := range Tables() {
		if !strings.Contains(tbl.DDL, "CREATE TABLE IF NOT EXISTS "+tbl.Name) {
			t.Errorf("%s DDL does not create the table it is registered under", tbl.Name)
		}
		if !strings.Contains(tbl.DDL, "uuid_generate_v4()") {
			t.Errorf("%s DDL does not use generated UUID primary keys", tbl.Name)
		}
	}
}

func TestNamesMatchRegistry(t *testing.T) {
	names := Names()
	tbls := Tables()
	if len(names) != len(tbls) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(tbls))
	}
	for i, n := range names {
		if n != tbls[i].Name {
			t.Errorf("Names()[%d] = %s, want %s", i, n, tbls[i].Name)
		}
	}
}
