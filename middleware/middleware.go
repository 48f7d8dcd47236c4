// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coleheinz/courtlog/auth"
	"github.com/coleheinz/courtlog/models"
)

type contextKey string

const deviceContextKey contextKey = "device"

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		next(w, r)

		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// WithDevice authenticates the bearer token against the devices table
// and stores the matching device in the request context. A missing or
// unknown token yields 401; the response never distinguishes the two
// beyond the message, so token values cannot be probed for liveness
// details.
func WithDevice(db *sql.DB, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r)
		if err == auth.ErrTokenRequired {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
			return
		}
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid authorization token")
			return
		}

		var device models.Device
		err = db.QueryRow(`
			SELECT id, device_token, created_at FROM devices WHERE device_token = $1
		`, token).Scan(&device.ID, &device.Token, &device.CreatedAt)

		if err == sql.ErrNoRows {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if err != nil {
			slog.Error("failed to query device", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		ctx := context.WithValue(r.Context(), deviceContextKey, device)
		next(w, r.WithContext(ctx))
	}
}

// DeviceFrom returns the authenticated device stored by WithDevice.
func DeviceFrom(ctx context.Context) (models.Device, bool) {
	device, ok := ctx.Value(deviceContextKey).(models.Device)
	return device, ok
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response in the {"error": message}
// shape the client reads
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// CORS middleware allows cross-origin requests from the app shells
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
