// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Authentication

WithDevice is the server half of the token protocol. It extracts the
bearer token, resolves it to a devices row, and stores the device in the
request context for handlers to scope their queries:

	mux.HandleFunc("GET /api/games", middleware.WithDevice(db, gameHandler.List))

	device, ok := middleware.DeviceFrom(r.Context())

Any failure — missing header, empty token, unknown token — is a 401 so
the client's single re-register-and-retry cycle kicks in.

# Helpers

JSONResponse and ErrorResponse write JSON bodies; errors use the
{"error": message} shape. WithLogging logs request start/completion via
slog. CORS handles cross-origin requests and preflights.
*/
package middleware
