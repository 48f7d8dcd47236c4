// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coleheinz/courtlog/models"
	"github.com/coleheinz/courtlog/testutil"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponseShape(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusBadRequest, "Date is required")

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Error != "Date is required" {
		t.Errorf("Expected error message in 'error' field, got %q", body.Error)
	}
}

func TestWithDevice(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceID, token := testutil.CreateTestDevice(t, conn)

	var gotDevice models.Device
	var called bool
	handler := WithDevice(conn, func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotDevice, _ = DeviceFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectCalled   bool
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectCalled:   true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token",
			authHeader:     "Bearer not-a-real-token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called = false

			req := httptest.NewRequest("GET", "/api/games", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
			if called != tc.expectCalled {
				t.Errorf("Expected called=%v, got %v", tc.expectCalled, called)
			}
			if tc.expectCalled && gotDevice.ID != deviceID {
				t.Errorf("Expected device %d in context, got %d", deviceID, gotDevice.ID)
			}
		})
	}
}

func TestDeviceFromMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/games", nil)

	if _, ok := DeviceFrom(req.Context()); ok {
		t.Error("Expected no device in a bare request context")
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the next handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/games", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:19006" {
		t.Errorf("Expected origin echoed back, got %q", origin)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := testutil.MakeRequest("POST", "/api/games", map[string]string{"date": "1/15/2026"}, nil)

	var body struct {
		Date string `json:"date"`
	}
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if body.Date != "1/15/2026" {
		t.Errorf("Expected date to round-trip, got %q", body.Date)
	}
}
