// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/coleheinz/courtlog/auth"
	"github.com/coleheinz/courtlog/db"
)

// SetupTestDB creates a throwaway sqlite database with the full schema.
// Tests run on sqlite so they need no external service; every query in
// the codebase is identical on both supported drivers.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "courtlog_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestDevice inserts a device row and returns its ID and token
func CreateTestDevice(t *testing.T, conn *sql.DB) (int64, string) {
	t.Helper()

	token := auth.NewDeviceToken()

	var deviceID int64
	err := conn.QueryRow(`
		INSERT INTO devices (device_token, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, token, time.Now()).Scan(&deviceID)
	if err != nil {
		t.Fatalf("Failed to create test device: %v", err)
	}

	return deviceID, token
}

// CreateTestGame inserts a game with two empty teams and returns the
// game ID. Tests that need players go through the create handler.
func CreateTestGame(t *testing.T, conn *sql.DB, deviceID int64, date string) int64 {
	t.Helper()

	var gameID int64
	err := conn.QueryRow(`
		INSERT INTO games (device_id, date, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, deviceID, date, time.Now()).Scan(&gameID)
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	for teamNumber := 1; teamNumber <= 2; teamNumber++ {
		_, err := conn.Exec(`
			INSERT INTO teams (game_id, name, team_number, bonus_points)
			VALUES ($1, $2, $3, $4)
		`, gameID, "", teamNumber, 0)
		if err != nil {
			t.Fatalf("Failed to create test team: %v", err)
		}
	}

	return gameID
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the bearer header map for a device token
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
