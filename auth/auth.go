// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTokenRequired = errors.New("authorization token required")
	ErrTokenInvalid  = errors.New("invalid authorization token")
)

// NewDeviceToken creates a fresh opaque device token.
// A v4 UUID carries 122 bits of randomness; the UNIQUE constraint on
// devices.device_token rejects the astronomically unlikely collision,
// so issued token values are never reused.
func NewDeviceToken() string {
	return uuid.NewString()
}

// BearerToken extracts the device token from the Authorization header.
// Returns ErrTokenRequired when the header is absent or not a Bearer
// scheme, and ErrTokenInvalid when the token itself is empty.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", ErrTokenRequired
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", ErrTokenInvalid
	}

	return token, nil
}
