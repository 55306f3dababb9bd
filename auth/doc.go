// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys for trackers.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(trackerID, salt)
	err := auth.ValidateAdminKey(trackerID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same tracker ID and salt always produce the same key, so keys are never
kept in the tracker store.

# Requests

Mutating endpoints read the key from the X-Admin-Key header, or from
"Authorization: Bearer <key>":

	key := auth.AdminKeyFromRequest(r)
*/
package auth
