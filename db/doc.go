// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database connection and creates the schema.

Two drivers are supported:

  - postgres (github.com/lib/pq) for deployments
  - sqlite (modernc.org/sqlite, CGO-free) for local use and tests

All queries in the codebase use $1-style placeholders, which both
dialects accept, so handler code is driver-agnostic. The only dialect
difference lives in the two schema constants here (SERIAL vs INTEGER
PRIMARY KEY AUTOINCREMENT, NOW() vs CURRENT_TIMESTAMP).

Referential integrity does the cascade work: deleting a games row
removes its teams and players rows via ON DELETE CASCADE. Open enables
the sqlite foreign_keys pragma, which is off by default there.
*/
package db
