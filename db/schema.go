// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects using the configured driver. SQLite connections get the
// foreign_keys pragma appended so ON DELETE CASCADE is enforced.
func Open(driver, url string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
		return sql.Open("postgres", url)
	case DriverSQLite:
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		return sql.Open("sqlite", url+sep+"_pragma=foreign_keys(1)&_time_format=sqlite")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, driver string) error {
	schema := schemaPostgres
	if driver == DriverSQLite {
		schema = schemaSQLite
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The aggregate shape is games → teams (exactly two per game) → players.
// Deleting a game must leave no orphan team or player rows, so the
// child tables cascade on delete; application code never deletes teams
// or players directly.

const schemaPostgres = `
-- Devices
CREATE TABLE IF NOT EXISTS devices (
    id SERIAL PRIMARY KEY,
    device_token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_devices_token ON devices(device_token);

-- Games
CREATE TABLE IF NOT EXISTS games (
    id SERIAL PRIMARY KEY,
    device_id INTEGER NOT NULL REFERENCES devices(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_games_device_id ON games(device_id);

-- Teams
CREATE TABLE IF NOT EXISTS teams (
    id SERIAL PRIMARY KEY,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    name TEXT NOT NULL DEFAULT '',
    team_number INTEGER NOT NULL CHECK (team_number IN (1, 2)),
    bonus_points INTEGER NOT NULL DEFAULT 0,
    UNIQUE (game_id, team_number)
);

CREATE INDEX IF NOT EXISTS idx_teams_game_id ON teams(game_id);

-- Players
CREATE TABLE IF NOT EXISTS players (
    id SERIAL PRIMARY KEY,
    team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    number TEXT NOT NULL,
    points INTEGER NOT NULL DEFAULT 0,
    fouls INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
`

const schemaSQLite = `
-- Devices
CREATE TABLE IF NOT EXISTS devices (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_devices_token ON devices(device_token);

-- Games
CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_id INTEGER NOT NULL REFERENCES devices(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_games_device_id ON games(device_id);

-- Teams
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    name TEXT NOT NULL DEFAULT '',
    team_number INTEGER NOT NULL CHECK (team_number IN (1, 2)),
    bonus_points INTEGER NOT NULL DEFAULT 0,
    UNIQUE (game_id, team_number)
);

CREATE INDEX IF NOT EXISTS idx_teams_game_id ON teams(game_id);

-- Players
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    number TEXT NOT NULL,
    points INTEGER NOT NULL DEFAULT 0,
    fouls INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
`
