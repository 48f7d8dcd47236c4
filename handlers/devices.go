// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/coleheinz/courtlog/auth"
	"github.com/coleheinz/courtlog/middleware"
	"github.com/coleheinz/courtlog/models"
)

type DeviceHandler struct {
	db *sql.DB
}

func NewDeviceHandler(db *sql.DB) *DeviceHandler {
	return &DeviceHandler{db: db}
}

// Register handles POST /api/auth/device
// Issues a brand-new device identity and returns its token. No body is
// expected; every call mints a new device, so clients only invoke this
// when their cached token slot is empty or rejected.
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	token := auth.NewDeviceToken()

	var deviceID int64
	err := h.db.QueryRow(`
		INSERT INTO devices (device_token, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, token, time.Now()).Scan(&deviceID)

	if err != nil {
		slog.Error("failed to insert device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	slog.Info("device registered", "device_id", deviceID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterDeviceResponse{
		Token:    token,
		DeviceID: deviceID,
	})
}
