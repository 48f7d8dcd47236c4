// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config parses server configuration from CLI flags with
environment variable fallback.

Settings:

  - PORT (-p): listen port (default: 3000)
  - DATABASE_URL (-d): connection string, required
  - DATABASE_DRIVER (-t): "postgres" (default) or "sqlite"

A .env file is loaded by main before ParseFlags runs, so all three can
also live there.
*/
package config
