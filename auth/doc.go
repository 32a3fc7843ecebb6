// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys, slugs and record IDs.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(awardID, salt)
	err := auth.ValidateAdminKey(awardID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same award ID and salt always produce the same key. This allows validation
without storing the key in the database.

# Award Slugs

Public award URLs use a readable slug with a short HMAC suffix:

	slug := auth.AwardSlug("Music Awards 2025", awardID, salt)
	// music-awards-2025-4fQ2x9

The short suffix can collide. AwardSlugs lists longer fallbacks, ending with
the award ID itself.

# ID Generation

Random UUIDs (github.com/google/uuid) for database records and checkout
references:

	id := auth.NewID()
*/
package auth
