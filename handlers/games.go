// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coleheinz/courtlog/middleware"
	"github.com/coleheinz/courtlog/models"
)

type GameHandler struct {
	db *sql.DB
}

func NewGameHandler(db *sql.DB) *GameHandler {
	return &GameHandler{db: db}
}

// List handles GET /api/games
// Returns every game owned by the authenticated device, newest first.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	device, ok := middleware.DeviceFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	games, err := listGames(h.db, device.ID)
	if err != nil {
		slog.Error("failed to list games", "error", err, "device_id", device.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch games")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, games)
}

// Create handles POST /api/games
// Validates the payload and persists the whole aggregate atomically.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	device, ok := middleware.DeviceFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req models.CreateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Date is required")
		return
	}
	if req.Team1 == nil || req.Team2 == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Both teams are required")
		return
	}

	game, err := createGame(h.db, device.ID, req)
	if err != nil {
		slog.Error("failed to create game", "error", err, "device_id", device.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	slog.Info("game created", "game_id", game.ID, "device_id", device.ID)

	middleware.JSONResponse(w, http.StatusCreated, game)
}

// Delete handles DELETE /api/games/{id}
// Absent and non-owned games both answer 404.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	device, ok := middleware.DeviceFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	gameID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid game ID")
		return
	}

	deleted, err := deleteGame(h.db, gameID, device.ID)
	if err != nil {
		slog.Error("failed to delete game", "error", err, "game_id", gameID, "device_id", device.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete game")
		return
	}

	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}

	slog.Info("game deleted", "game_id", gameID, "device_id", device.ID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteGameResponse{
		Message: "Game deleted successfully",
	})
}
