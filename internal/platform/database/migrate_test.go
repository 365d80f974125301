package database

import (
	"testing"

	"qrforge/internal/platform/config"
)

func TestMigrate(t *testing.T) {
	db, err := Open(config.SQLiteConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "up"); err != nil {
		t.Fatalf("Migrate up: %v", err)
	}
	// Up is idempotent
	if err := Migrate(db, "up"); err != nil {
		t.Fatalf("Migrate up twice: %v", err)
	}

	if _, err := db.Exec("INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', 1)"); err != nil {
		t.Errorf("Expected kv_store table to exist: %v", err)
	}

	if err := Migrate(db, "down"); err != nil {
		t.Fatalf("Migrate down: %v", err)
	}
	if _, err := db.Exec("SELECT 1 FROM kv_store"); err == nil {
		t.Error("Expected kv_store table to be dropped")
	}
}

func TestMigrate_InvalidDirection(t *testing.T) {
	db, err := Open(config.SQLiteConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "sideways"); err == nil {
		t.Error("Expected error for invalid direction")
	}
}
