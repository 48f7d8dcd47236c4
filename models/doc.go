// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types shared by the server
and the client library.

The aggregate is Game → Team (always exactly two, numbered 1 and 2) →
Player (zero or more). It is created, read, and deleted as one unit;
teams and players never exist apart from their game.

Wire names are camelCase (bonusPoints, deviceId) to match the mobile
app's JSON. Team.Total is derived — player points plus bonus points —
and is recomputed on every read; it is accepted but ignored on input.
Player.Number is a free-form string ("N/A" is a valid jersey number at
the storage layer).
*/
package models
