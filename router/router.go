// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/coleheinz/courtlog/handlers"
	"github.com/coleheinz/courtlog/middleware"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	deviceHandler := handlers.NewDeviceHandler(db)
	gameHandler := handlers.NewGameHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Device identity (unauthenticated - this is how a device gets its token)
	mux.HandleFunc("POST /api/auth/device", middleware.WithLogging(deviceHandler.Register))

	// Game aggregates (scoped to the authenticated device)
	mux.HandleFunc("GET /api/games", middleware.WithLogging(middleware.WithDevice(db, gameHandler.List)))
	mux.HandleFunc("POST /api/games", middleware.WithLogging(middleware.WithDevice(db, gameHandler.Create)))
	mux.HandleFunc("DELETE /api/games/{id}", middleware.WithLogging(middleware.WithDevice(db, gameHandler.Delete)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("courtlog API v1"))
	})

	return mux
}
