// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the courtlog API.

# Handler Types

Each handler is a struct holding the database dependency:

  - DeviceHandler: device identity issuance
  - GameHandler: game aggregate create/list/delete

Handlers are created via constructor functions that accept *sql.DB:

	gameHandler := handlers.NewGameHandler(db)

# Routes

	POST   /api/auth/device → DeviceHandler.Register (no auth)
	GET    /api/games       → GameHandler.List
	POST   /api/games       → GameHandler.Create
	DELETE /api/games/{id}  → GameHandler.Delete

Game routes run behind middleware.WithDevice, which resolves the bearer
token into a device; every query is scoped to that device's ID.

# Aggregate persistence

The persistence functions live in aggregate.go:

	game, err := createGame(db, deviceID, req)

A game is stored and read as one unit: the games row, its two teams
rows (team_number 1 and 2), and their players rows. createGame runs in
a single transaction; reads reconstruct the whole nested structure and
recompute each team's total (player points + bonus points) on the fly.
Lookups scoped to the wrong device behave exactly like lookups of
missing games.
*/
package handlers
