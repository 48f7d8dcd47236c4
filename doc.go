// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the courtlog API server.

Courtlog is a basketball scorekeeping backend: unregistered devices
obtain a durable identity token, then save, list, and delete their game
records (two teams, rosters, points, fouls, bonus points).

# Starting the Server

The server requires a database URL via environment, .env file, or CLI
flag:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -d courtlog.db -t sqlite

# Configuration

  - DATABASE_URL (-d): connection string, required
  - DATABASE_DRIVER (-t): postgres (default) or sqlite
  - PORT (-p): server port (default: 3000)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers and aggregate persistence
  - router: Route definitions using Go 1.22+ routing
  - middleware: device auth, CORS, logging, JSON helpers
  - models: domain and wire types
  - auth: device token issuance and bearer parsing
  - db: driver dispatch and schema creation
  - config: configuration parsing
  - client: Go client library with the token retry discipline

See package documentation for each component.
*/
package main
