// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the Go client library for the courtlog API.

# Token lifecycle

The TokenManager owns the device's single cached token slot (a
TokenStore: file-backed or in-memory). The first authenticated call
registers a device identity lazily; a 401 from the server triggers
exactly one invalidate + re-register + retry before the error is
surfaced:

	store := &client.FileTokenStore{Path: filepath.Join(home, ".courtlog-token")}
	c := client.New("https://courtlog.example.com", store)
	games, err := c.Games(ctx)

# Fallback behavior

GameLog layers the app's deliberate availability-over-consistency
choices on top of Client: failed loads continue with an empty log,
failed saves keep a locally-identified record, and deletes always
remove the game from the local view. These fallbacks mean the local
view can diverge from server state until the next successful Load;
that is by intent and callers should not "fix" it silently.

All network calls are bounded by a 10s client timeout. There is no
retry or backoff beyond the single 401 cycle.
*/
package client
