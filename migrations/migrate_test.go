// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_CreatesSettingsTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO settings (key, value) VALUES ('userPin', '4321')`); err != nil {
		t.Fatalf("settings table not usable after migration: %v", err)
	}

	var value string
	if err := db.QueryRow(`SELECT value FROM settings WHERE key = 'userPin'`).Scan(&value); err != nil {
		t.Fatalf("failed to read back setting: %v", err)
	}
	if value != "4321" {
		t.Errorf("expected value '4321', got %q", value)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("first migration failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migration run should be a no-op, got: %v", err)
	}
}

func TestMigrate_ClosedDB(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	db.Close()

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate on closed db, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
