// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// NewID returns a random UUID for database records
func NewID() string {
	return uuid.NewString()
}

// GenerateAdminKey creates an HMAC-based admin key for an award
// This is deterministic and verifiable
func GenerateAdminKey(awardID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(awardID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the award
func ValidateAdminKey(awardID, adminKey, salt string) error {
	expected := GenerateAdminKey(awardID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// AwardSlug builds a readable URL slug from the title plus a short
// deterministic suffix, e.g. "music-awards-2025-4fQ2x9"
func AwardSlug(title, awardID, salt string) string {
	suffix := GenerateShareSlug(awardID, salt)
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	base := slugify(title)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// AwardSlugs returns slug candidates in order of preference: the short
// AwardSlug, the same title with the full HMAC suffix, and finally the
// title with the award ID itself, which is unique by construction.
func AwardSlugs(title, awardID, salt string) []string {
	base := slugify(title)
	join := func(suffix string) string {
		if base == "" {
			return suffix
		}
		return base + "-" + suffix
	}
	return []string{
		AwardSlug(title, awardID, salt),
		join(GenerateShareSlug(awardID, salt)),
		join(awardID),
	}
}

// GenerateShareSlug creates a short, deterministic URL slug for an award
// Uses HMAC for determinism and base62 encoding for URL-friendliness
func GenerateShareSlug(awardID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(awardID))
	sum := h.Sum(nil)

	// Take first 8 bytes for a shorter slug
	shortHash := sum[:8]

	// Convert to base62 (alphanumeric only, no special chars)
	return base62Encode(shortHash)
}

// slugify lowercases letters and digits and joins runs of anything else
// with a single dash
func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if len(s) > 48 {
		s = strings.TrimRight(s[:48], "-")
	}
	return s
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
// This creates URL-friendly slugs without special characters
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Convert bytes to a big integer
	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	// Convert to base62
	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
