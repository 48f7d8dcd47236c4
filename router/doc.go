// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

	POST   /api/auth/device  issue a device token (no auth)
	GET    /api/games        list the device's games
	POST   /api/games        save a game aggregate
	DELETE /api/games/{id}   delete a game
	GET    /health           liveness probe
	GET    /                 API banner

Game routes are wrapped in middleware.WithDevice; everything is wrapped
in request logging. CORS is applied around the whole mux in main.
*/
package router
