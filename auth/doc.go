// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles device token issuance and extraction.

A device token is an opaque v4 UUID acting as the sole credential for
one client installation. The server issues it once via POST
/api/auth/device and the client presents it on every call:

	Authorization: Bearer <token>

Tokens carry no claims and no expiry; validity is simply "a devices row
with this token exists". BearerToken only parses the header — the
database lookup happens in middleware.WithDevice.
*/
package auth
