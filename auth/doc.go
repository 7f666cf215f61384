// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key and IP hashing utilities.

# Admin Keys

The admin key guards administrative operations (removing entries). It is
an HMAC-SHA256 of AdminScope keyed by ADMIN_KEY_SALT:

	adminKey := auth.GenerateAdminKey(auth.AdminScope, salt)
	err := auth.ValidateAdminKey(auth.AdminScope, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the operator can recompute it from the salt; nothing is
stored. With an empty salt every validation fails with ErrAdminDisabled.

Survey clients themselves are not authenticated.

# IP Hashing

Client addresses are logged only as salted hashes:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
