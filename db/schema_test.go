// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open("mysql", "root@/games"); err == nil {
		t.Error("Expected error for unsupported driver")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "schema_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := CreateSchema(conn, DriverSQLite); err != nil {
		t.Fatalf("Second CreateSchema should be a no-op, got: %v", err)
	}
}

func TestCascadeDelete(t *testing.T) {
	conn, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "cascade_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	var deviceID int64
	err = conn.QueryRow(`
		INSERT INTO devices (device_token, created_at) VALUES ($1, $2) RETURNING id
	`, "cascade-test-token", time.Now()).Scan(&deviceID)
	if err != nil {
		t.Fatalf("Failed to insert device: %v", err)
	}

	var gameID int64
	err = conn.QueryRow(`
		INSERT INTO games (device_id, date, created_at) VALUES ($1, $2, $3) RETURNING id
	`, deviceID, "1/15/2026", time.Now()).Scan(&gameID)
	if err != nil {
		t.Fatalf("Failed to insert game: %v", err)
	}

	var teamID int64
	err = conn.QueryRow(`
		INSERT INTO teams (game_id, name, team_number, bonus_points) VALUES ($1, $2, $3, $4) RETURNING id
	`, gameID, "Lions", 1, 0).Scan(&teamID)
	if err != nil {
		t.Fatalf("Failed to insert team: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO players (team_id, name, number, points, fouls) VALUES ($1, $2, $3, $4, $5)
	`, teamID, "A", "3", 10, 1)
	if err != nil {
		t.Fatalf("Failed to insert player: %v", err)
	}

	if _, err := conn.Exec(`DELETE FROM games WHERE id = $1`, gameID); err != nil {
		t.Fatalf("Failed to delete game: %v", err)
	}

	for _, table := range []string{"games", "teams", "players"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("Expected zero %s rows after cascade delete, got %d", table, count)
		}
	}
}
